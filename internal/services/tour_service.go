package services

import (
	"context"
	"log"
	"sort"

	"github.com/google/uuid"

	"cicerone/internal/models/db_models"
	"cicerone/internal/models/request_models"
	"cicerone/internal/models/response_models"
	"cicerone/internal/repositories"
	"cicerone/pkg/memcache"
	"cicerone/pkg/utils"
)

// budgetRetryFactor widens the distance filter once before giving up
// when the primary pass matches nothing.
const budgetRetryFactor = 1.5

type TourServiceInterface interface {
	GenerateTour(ctx context.Context, accountID uuid.UUID, userName string, req request_models.GenerateTourRequest) (*response_models.Tour, error)
	CurrentTour(accountID uuid.UUID) (*response_models.Tour, error)
	IsGenerating(accountID uuid.UUID) bool
	SaveCurrentTour(ctx context.Context, accountID uuid.UUID, name string) (*response_models.Tour, error)
	ListSavedTours(ctx context.Context, accountID uuid.UUID) ([]response_models.SavedTourSummary, error)
	LoadTour(ctx context.Context, accountID uuid.UUID, tourID string) (*response_models.Tour, error)
	DeleteTour(ctx context.Context, accountID uuid.UUID, tourID string) error
}

type TourService struct {
	sightService SightServiceInterface
	tourRepo     repositories.TourRepository
	currentTours memcache.CurrentTourStore
	aiClient     utils.AIClientInterface // nil when no credential is configured
	heuristic    RouteOptimizer
	matcher      NameMatcher
}

func NewTourService(
	sightService SightServiceInterface,
	tourRepo repositories.TourRepository,
	currentTours memcache.CurrentTourStore,
	aiClient utils.AIClientInterface,
) TourServiceInterface {
	return &TourService{
		sightService: sightService,
		tourRepo:     tourRepo,
		currentTours: currentTours,
		aiClient:     aiClient,
		heuristic:    NewHeuristicOptimizer(),
		matcher:      NewSubstringMatcher(),
	}
}

// GenerateTour runs the full pipeline: candidate lookup, tier and
// budget filtering, route optimization, assembly, and publication of
// the result as the account's current tour. Filtering, optimization and
// assembly run in strict sequence; the current tour is only replaced on
// success. The generating flag is cleared on every exit path.
func (t *TourService) GenerateTour(ctx context.Context, accountID uuid.UUID, userName string, req request_models.GenerateTourRequest) (*response_models.Tour, error) {
	t.currentTours.SetGenerating(accountID.String(), true)
	defer t.currentTours.SetGenerating(accountID.String(), false)

	settings := req.Settings
	budgetKm := settings.MaxDistanceKm

	// Fetch once at the expanded radius so the retry pass below does
	// not need a second round trip to the catalog.
	candidates, err := t.sightService.NearbySights(ctx, req.Latitude, req.Longitude, budgetRetryFactor*budgetKm)
	if err != nil {
		return nil, err
	}

	tierFiltered := FilterByTier(candidates, settings.InterestTiers)
	primary := FilterByRadius(tierFiltered, budgetKm)

	var route []response_models.Sight
	if len(primary) == 0 {
		expanded := FilterByRadius(tierFiltered, budgetRetryFactor*budgetKm)
		if len(expanded) == 0 {
			return nil, utils.ErrNoSightsMatch
		}
		// The expanded pass found sights the primary pass missed: take
		// the closest ones directly instead of running the optimizer.
		route = closestSights(expanded, maxTourStops)
	} else {
		route = t.optimizer(len(primary), userName).OptimizeRoute(ctx, req.Latitude, req.Longitude, primary, budgetKm, &settings)
		if len(route) == 0 {
			return nil, utils.ErrEmptyRoute
		}
	}

	tour := AssembleTour(route, &settings)
	t.currentTours.Publish(accountID.String(), tour)
	log.Printf("Generated tour %s with %d stops (%.1f km)", tour.ID, len(tour.Stops), tour.TotalDistanceKm)
	return tour, nil
}

// optimizer picks the delegated path when a text-generation credential
// is configured and the candidate set is large enough to benefit.
func (t *TourService) optimizer(candidateCount int, userName string) RouteOptimizer {
	if t.aiClient != nil && candidateCount > delegationMinCandidates {
		return NewDelegatedOptimizer(t.aiClient, t.matcher, t.heuristic, userName)
	}
	return t.heuristic
}

func closestSights(sights []response_models.Sight, limit int) []response_models.Sight {
	sorted := make([]response_models.Sight, len(sights))
	copy(sorted, sights)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := 0.0, 0.0
		if sorted[i].DistanceKm != nil {
			di = *sorted[i].DistanceKm
		}
		if sorted[j].DistanceKm != nil {
			dj = *sorted[j].DistanceKm
		}
		return di < dj
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// IsGenerating reports whether a generation call for the account is in
// flight, for the client's busy indicator.
func (t *TourService) IsGenerating(accountID uuid.UUID) bool {
	return t.currentTours.IsGenerating(accountID.String())
}

func (t *TourService) CurrentTour(accountID uuid.UUID) (*response_models.Tour, error) {
	tour, ok := t.currentTours.Current(accountID.String())
	if !ok {
		return nil, utils.ErrNoCurrentTour
	}
	return tour, nil
}

// SaveCurrentTour persists the account's current tour under the given
// name. Saving again with the same current tour updates the existing
// entry rather than appending a duplicate.
func (t *TourService) SaveCurrentTour(ctx context.Context, accountID uuid.UUID, name string) (*response_models.Tour, error) {
	current, ok := t.currentTours.Current(accountID.String())
	if !ok {
		return nil, utils.ErrNoCurrentTour
	}

	renamed := *current
	renamed.Name = name

	record, err := tourToRecord(&renamed, accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if err := t.tourRepo.Upsert(ctx, record); err != nil {
		log.Printf("Error saving tour %s: %v", renamed.ID, err)
		return nil, utils.ErrDatabaseError
	}

	t.currentTours.Publish(accountID.String(), &renamed)
	return &renamed, nil
}

func (t *TourService) ListSavedTours(ctx context.Context, accountID uuid.UUID) ([]response_models.SavedTourSummary, error) {
	tours, err := t.tourRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SavedTourSummary, 0, len(tours))
	for _, tour := range tours {
		out = append(out, response_models.SavedTourSummary{
			ID:               tour.ID.String(),
			Name:             tour.Name,
			StopCount:        len(tour.Stops),
			TotalDistanceKm:  tour.TotalDistanceKm,
			EstimatedMinutes: tour.EstimatedMinutes,
			CreatedAt:        tour.CreatedAt,
		})
	}
	return out, nil
}

// LoadTour fetches a saved tour and publishes it as the current tour.
func (t *TourService) LoadTour(ctx context.Context, accountID uuid.UUID, tourID string) (*response_models.Tour, error) {
	record, err := t.tourRepo.GetByID(ctx, accountID, tourID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrTourNotFound
	}

	tour := recordToTour(record)
	t.currentTours.Publish(accountID.String(), tour)
	return tour, nil
}

func (t *TourService) DeleteTour(ctx context.Context, accountID uuid.UUID, tourID string) error {
	if err := t.tourRepo.Delete(ctx, accountID, tourID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// tourToRecord maps an assembled tour onto its persistence shape. Stops
// snapshot the sight so saved tours survive catalog edits.
func tourToRecord(tour *response_models.Tour, accountID uuid.UUID) (*db_models.Tour, error) {
	id, err := uuid.Parse(tour.ID)
	if err != nil {
		return nil, err
	}

	record := &db_models.Tour{
		AccountID:        accountID,
		Name:             tour.Name,
		TotalDistanceKm:  tour.TotalDistanceKm,
		EstimatedMinutes: tour.EstimatedMinutes,
	}
	record.ID = id
	record.CreatedAt = tour.CreatedAt

	for _, stop := range tour.Stops {
		sightID, err := uuid.Parse(stop.Sight.ID)
		if err != nil {
			return nil, err
		}
		record.Stops = append(record.Stops, db_models.TourStop{
			TourID:           id,
			Position:         stop.Order,
			SightID:          sightID,
			SightName:        stop.Sight.Name,
			Category:         stop.Sight.Category,
			Latitude:         stop.Sight.Latitude,
			Longitude:        stop.Sight.Longitude,
			Tier:             stop.Sight.Tier,
			Description:      stop.Sight.Descriptions["en"],
			DistanceToNextKm: stop.DistanceToNextKm,
			MinutesToNext:    stop.MinutesToNext,
		})
	}
	return record, nil
}

func recordToTour(record *db_models.Tour) *response_models.Tour {
	stops := make([]response_models.TourStop, 0, len(record.Stops))
	for _, stop := range record.Stops {
		sight := response_models.Sight{
			ID:        stop.SightID.String(),
			Name:      stop.SightName,
			Category:  stop.Category,
			Latitude:  stop.Latitude,
			Longitude: stop.Longitude,
			Tier:      stop.Tier,
		}
		if stop.Description != "" {
			sight.Descriptions = map[string]string{"en": stop.Description}
		}
		stops = append(stops, response_models.TourStop{
			Sight:            sight,
			Order:            stop.Position,
			DistanceToNextKm: stop.DistanceToNextKm,
			MinutesToNext:    stop.MinutesToNext,
		})
	}

	return &response_models.Tour{
		ID:               record.ID.String(),
		Name:             record.Name,
		Stops:            stops,
		TotalDistanceKm:  record.TotalDistanceKm,
		EstimatedMinutes: record.EstimatedMinutes,
		CreatedAt:        record.CreatedAt,
	}
}
