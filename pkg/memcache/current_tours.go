package memcache

import (
	"sync"

	"cicerone/internal/models/response_models"
)

// CurrentTourStore holds each account's published tour and the
// in-flight flag for tour generation. The flag lets the client show a
// deterministic busy indicator; it is not a lock, and the store does
// not serialize concurrent generation calls for the same account.
type CurrentTourStore interface {
	Current(accountID string) (*response_models.Tour, bool)
	Publish(accountID string, tour *response_models.Tour)
	SetGenerating(accountID string, generating bool)
	IsGenerating(accountID string) bool
}

type currentTours struct {
	mu         sync.RWMutex
	tours      map[string]*response_models.Tour
	generating map[string]bool
}

func NewCurrentTourStore() CurrentTourStore {
	return &currentTours{
		tours:      make(map[string]*response_models.Tour),
		generating: make(map[string]bool),
	}
}

func (s *currentTours) Current(accountID string) (*response_models.Tour, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tour, ok := s.tours[accountID]
	return tour, ok
}

func (s *currentTours) Publish(accountID string, tour *response_models.Tour) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tours[accountID] = tour
}

func (s *currentTours) SetGenerating(accountID string, generating bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generating {
		s.generating[accountID] = true
	} else {
		delete(s.generating, accountID)
	}
}

func (s *currentTours) IsGenerating(accountID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generating[accountID]
}
