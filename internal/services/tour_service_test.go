package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cicerone/internal/models/db_models"
	"cicerone/internal/models/request_models"
	"cicerone/internal/models/response_models"
	"cicerone/pkg/memcache"
	"cicerone/pkg/utils"
)

// fakeSightService serves a fixed catalog, computing distances from the
// requested origin the same way the real service does.
type fakeSightService struct {
	sights []response_models.Sight
}

func (f *fakeSightService) NearbySights(ctx context.Context, lat, lng, radiusKm float64) ([]response_models.Sight, error) {
	out := make([]response_models.Sight, 0, len(f.sights))
	for _, s := range f.sights {
		d := utils.HaversineKm(lat, lng, s.Latitude, s.Longitude)
		if d > radiusKm {
			continue
		}
		s.DistanceKm = &d
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].DistanceKm < *out[j].DistanceKm
	})
	return out, nil
}

func (f *fakeSightService) GetSightByID(ctx context.Context, id string) (*response_models.Sight, error) {
	for _, s := range f.sights {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, utils.ErrSightNotFound
}

func (f *fakeSightService) CreateSight(ctx context.Context, req request_models.CreateSightRequest) (string, error) {
	return "", errors.New("not supported")
}

func (f *fakeSightService) RelatedSights(ctx context.Context, id string) ([]response_models.Sight, error) {
	return nil, nil
}

func (f *fakeSightService) ListSights(ctx context.Context, page, pageSize int) ([]response_models.Sight, error) {
	return f.sights, nil
}

type fakeTourRepo struct {
	tours map[string]*db_models.Tour
}

func newFakeTourRepo() *fakeTourRepo {
	return &fakeTourRepo{tours: make(map[string]*db_models.Tour)}
}

func (f *fakeTourRepo) Upsert(ctx context.Context, tour *db_models.Tour) error {
	stored := *tour
	f.tours[tour.ID.String()] = &stored
	return nil
}

func (f *fakeTourRepo) GetByID(ctx context.Context, accountID uuid.UUID, id string) (*db_models.Tour, error) {
	tour, ok := f.tours[id]
	if !ok || tour.AccountID != accountID {
		return nil, nil
	}
	return tour, nil
}

func (f *fakeTourRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Tour, error) {
	var out []db_models.Tour
	for _, tour := range f.tours {
		if tour.AccountID == accountID {
			out = append(out, *tour)
		}
	}
	return out, nil
}

func (f *fakeTourRepo) Delete(ctx context.Context, accountID uuid.UUID, id string) error {
	if tour, ok := f.tours[id]; ok && tour.AccountID == accountID {
		delete(f.tours, id)
	}
	return nil
}

// catalogNear places sights along the equator at increasing distances
// from the origin, roughly 0.22 km apart.
func catalogNear(n int) []response_models.Sight {
	sights := make([]response_models.Sight, n)
	for i := range sights {
		sights[i] = response_models.Sight{
			ID:        uuid.New().String(),
			Name:      "Sight " + string(rune('A'+i)),
			Category:  "landmark",
			Latitude:  0,
			Longitude: 0.002 * float64(i+1),
			Tier:      2,
		}
	}
	return sights
}

func generateRequest(budgetKm float64) request_models.GenerateTourRequest {
	return request_models.GenerateTourRequest{
		Latitude:  0,
		Longitude: 0,
		Settings: request_models.TourWizardSettings{
			Days:          1,
			HoursPerDay:   4,
			MaxDistanceKm: budgetKm,
			TransportMode: request_models.TransportWalk,
			TourShape:     request_models.ShapeRoundTrip,
			InterestTiers: []int{1, 2, 3},
			DetailLevel:   request_models.DetailBrief,
		},
	}
}

func newTourServiceForTest(sights []response_models.Sight, repo *fakeTourRepo, aiClient utils.AIClientInterface) (TourServiceInterface, memcache.CurrentTourStore) {
	store := memcache.NewCurrentTourStore()
	svc := NewTourService(&fakeSightService{sights: sights}, repo, store, aiClient)
	return svc, store
}

func TestGenerateTourPublishesCurrentTour(t *testing.T) {
	svc, store := newTourServiceForTest(catalogNear(5), newFakeTourRepo(), nil)
	accountID := uuid.New()

	tour, err := svc.GenerateTour(context.Background(), accountID, "Ada", generateRequest(10))
	require.NoError(t, err)
	require.NotEmpty(t, tour.Stops)

	for i, stop := range tour.Stops {
		assert.Equal(t, i+1, stop.Order)
	}

	current, err := svc.CurrentTour(accountID)
	require.NoError(t, err)
	assert.Equal(t, tour.ID, current.ID)
	assert.False(t, store.IsGenerating(accountID.String()))
}

func TestGenerateTourNoSightsInBudget(t *testing.T) {
	// Closest sight at ~111 km, budget 1 km: even the widened pass
	// finds nothing.
	far := []response_models.Sight{{
		ID: uuid.New().String(), Name: "Remote Fort", Latitude: 0, Longitude: 1, Tier: 2,
	}}
	svc, store := newTourServiceForTest(far, newFakeTourRepo(), nil)
	accountID := uuid.New()

	_, err := svc.GenerateTour(context.Background(), accountID, "", generateRequest(1))
	assert.ErrorIs(t, err, utils.ErrNoSightsMatch)

	_, err = svc.CurrentTour(accountID)
	assert.ErrorIs(t, err, utils.ErrNoCurrentTour)
	assert.False(t, store.IsGenerating(accountID.String()))
}

func TestGenerateTourWidensRadiusOnce(t *testing.T) {
	// ~12.2 km out: outside the 10 km budget, inside the widened pass.
	fringe := []response_models.Sight{{
		ID: uuid.New().String(), Name: "Hilltop Abbey", Latitude: 0, Longitude: 0.11, Tier: 2,
	}}
	svc, _ := newTourServiceForTest(fringe, newFakeTourRepo(), nil)

	tour, err := svc.GenerateTour(context.Background(), uuid.New(), "", generateRequest(10))
	require.NoError(t, err)
	require.Len(t, tour.Stops, 1)
	assert.Equal(t, "Hilltop Abbey", tour.Stops[0].Sight.Name)
}

func TestGenerateTourRespectsInterestTiers(t *testing.T) {
	sights := catalogNear(4)
	sights[0].Tier = 1
	sights[1].Tier = 3
	sights[2].Tier = 3
	sights[3].Tier = 1
	svc, _ := newTourServiceForTest(sights, newFakeTourRepo(), nil)

	req := generateRequest(10)
	req.Settings.InterestTiers = []int{1}

	tour, err := svc.GenerateTour(context.Background(), uuid.New(), "", req)
	require.NoError(t, err)
	require.Len(t, tour.Stops, 2)
	for _, stop := range tour.Stops {
		assert.Equal(t, 1, stop.Sight.Tier)
	}
}

func TestGenerateTourDelegationFailureFallsBack(t *testing.T) {
	sights := catalogNear(6)
	broken := &stubAIClient{err: errors.New("model offline")}
	svc, _ := newTourServiceForTest(sights, newFakeTourRepo(), broken)

	withAI, err := svc.GenerateTour(context.Background(), uuid.New(), "", generateRequest(10))
	require.NoError(t, err)
	assert.True(t, broken.called)

	heuristicOnly, _ := newTourServiceForTest(sights, newFakeTourRepo(), nil)
	withoutAI, err := heuristicOnly.GenerateTour(context.Background(), uuid.New(), "", generateRequest(10))
	require.NoError(t, err)

	require.Len(t, withAI.Stops, len(withoutAI.Stops))
	for i := range withAI.Stops {
		assert.Equal(t, withoutAI.Stops[i].Sight.ID, withAI.Stops[i].Sight.ID)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := newFakeTourRepo()
	svc, _ := newTourServiceForTest(catalogNear(4), repo, nil)
	accountID := uuid.New()
	ctx := context.Background()

	generated, err := svc.GenerateTour(ctx, accountID, "", generateRequest(10))
	require.NoError(t, err)

	saved, err := svc.SaveCurrentTour(ctx, accountID, "Weekend Walk")
	require.NoError(t, err)
	assert.Equal(t, "Weekend Walk", saved.Name)
	assert.Equal(t, generated.ID, saved.ID)

	summaries, err := svc.ListSavedTours(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Weekend Walk", summaries[0].Name)
	assert.Equal(t, len(generated.Stops), summaries[0].StopCount)

	loaded, err := svc.LoadTour(ctx, accountID, generated.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekend Walk", loaded.Name)
	require.Len(t, loaded.Stops, len(generated.Stops))
	for i := range loaded.Stops {
		assert.Equal(t, generated.Stops[i].Sight.ID, loaded.Stops[i].Sight.ID)
		assert.Equal(t, generated.Stops[i].Order, loaded.Stops[i].Order)
	}

	// Loading republishes the saved tour as the current one.
	current, err := svc.CurrentTour(accountID)
	require.NoError(t, err)
	assert.Equal(t, "Weekend Walk", current.Name)
}

func TestSaveCurrentTourWithoutCurrent(t *testing.T) {
	svc, _ := newTourServiceForTest(catalogNear(3), newFakeTourRepo(), nil)

	_, err := svc.SaveCurrentTour(context.Background(), uuid.New(), "Nothing Yet")
	assert.ErrorIs(t, err, utils.ErrNoCurrentTour)
}

func TestSaveTwiceKeepsSingleEntry(t *testing.T) {
	repo := newFakeTourRepo()
	svc, _ := newTourServiceForTest(catalogNear(4), repo, nil)
	accountID := uuid.New()
	ctx := context.Background()

	_, err := svc.GenerateTour(ctx, accountID, "", generateRequest(10))
	require.NoError(t, err)

	_, err = svc.SaveCurrentTour(ctx, accountID, "First Name")
	require.NoError(t, err)
	_, err = svc.SaveCurrentTour(ctx, accountID, "Second Name")
	require.NoError(t, err)

	summaries, err := svc.ListSavedTours(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Second Name", summaries[0].Name)
}

func TestLoadTourUnknownID(t *testing.T) {
	svc, _ := newTourServiceForTest(catalogNear(3), newFakeTourRepo(), nil)

	_, err := svc.LoadTour(context.Background(), uuid.New(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrTourNotFound)
}

func TestLoadTourOtherAccount(t *testing.T) {
	repo := newFakeTourRepo()
	svc, _ := newTourServiceForTest(catalogNear(4), repo, nil)
	owner := uuid.New()
	ctx := context.Background()

	generated, err := svc.GenerateTour(ctx, owner, "", generateRequest(10))
	require.NoError(t, err)
	_, err = svc.SaveCurrentTour(ctx, owner, "Private")
	require.NoError(t, err)

	_, err = svc.LoadTour(ctx, uuid.New(), generated.ID)
	assert.ErrorIs(t, err, utils.ErrTourNotFound)
}

func TestDeleteTour(t *testing.T) {
	repo := newFakeTourRepo()
	svc, _ := newTourServiceForTest(catalogNear(4), repo, nil)
	accountID := uuid.New()
	ctx := context.Background()

	generated, err := svc.GenerateTour(ctx, accountID, "", generateRequest(10))
	require.NoError(t, err)
	_, err = svc.SaveCurrentTour(ctx, accountID, "Short Lived")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTour(ctx, accountID, generated.ID))

	summaries, err := svc.ListSavedTours(ctx, accountID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
