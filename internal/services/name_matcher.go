package services

import (
	"strings"

	"cicerone/internal/models/response_models"
)

// NameMatcher resolves a sight name returned by the delegated optimizer
// to a candidate. Isolated behind an interface so the substring
// heuristic can be swapped for stricter matching if the delegated
// service ever returns identifiers instead of names.
type NameMatcher interface {
	Match(name string, candidates []response_models.Sight) (response_models.Sight, bool)
}

// substringMatcher accepts case-insensitive containment in either
// direction: "eiffel tower" matches "The Eiffel Tower" and vice versa.
type substringMatcher struct{}

func NewSubstringMatcher() NameMatcher {
	return &substringMatcher{}
}

func (m *substringMatcher) Match(name string, candidates []response_models.Sight) (response_models.Sight, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return response_models.Sight{}, false
	}
	for _, c := range candidates {
		candName := strings.ToLower(c.Name)
		if strings.Contains(candName, needle) || strings.Contains(needle, candName) {
			return c, true
		}
	}
	return response_models.Sight{}, false
}
