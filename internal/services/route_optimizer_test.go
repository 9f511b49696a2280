package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cicerone/internal/models/response_models"
	"cicerone/pkg/utils"
)

// candidateAt builds a candidate on the equator lngDeg east of the
// origin, with its distance-from-origin precomputed.
func candidateAt(id string, lngDeg float64) response_models.Sight {
	d := utils.HaversineKm(0, 0, 0, lngDeg)
	return response_models.Sight{ID: id, Name: id, Latitude: 0, Longitude: lngDeg, DistanceKm: &d, Tier: TierPopular}
}

func TestHeuristicOptimizerEmptyInput(t *testing.T) {
	o := NewHeuristicOptimizer()
	route := o.OptimizeRoute(context.Background(), 0, 0, nil, 10, nil)
	assert.Empty(t, route)
}

func TestHeuristicOptimizerSingleCandidatePassesThrough(t *testing.T) {
	o := NewHeuristicOptimizer()
	candidates := []response_models.Sight{candidateAt("only", 5)}
	route := o.OptimizeRoute(context.Background(), 0, 0, candidates, 0.001, nil)
	require.Len(t, route, 1)
	assert.Equal(t, "only", route[0].ID)
}

func TestHeuristicOptimizerRespectsStopCap(t *testing.T) {
	candidates := make([]response_models.Sight, 0, 20)
	for i := 0; i < 20; i++ {
		candidates = append(candidates, candidateAt(fmt.Sprintf("s%d", i), 0.001*float64(i+1)))
	}

	o := NewHeuristicOptimizer()
	route := o.OptimizeRoute(context.Background(), 0, 0, candidates, 1000, nil)
	assert.Len(t, route, maxTourStops)
}

func TestHeuristicOptimizerRespectsBudget(t *testing.T) {
	// A (~1 km) and B (~2 km) fit a 10 km budget; C (~100 km) must not
	// be added: accumulated + leg + half the return hop far exceeds
	// 0.9× the budget.
	candidates := []response_models.Sight{
		candidateAt("a", 0.009),
		candidateAt("b", 0.018),
		candidateAt("c", 0.9),
	}

	o := NewHeuristicOptimizer()
	route := o.OptimizeRoute(context.Background(), 0, 0, candidates, 10, nil)
	require.Len(t, route, 2)
	assert.Equal(t, "a", route[0].ID)
	assert.Equal(t, "b", route[1].ID)
}

func TestHeuristicOptimizerBudgetRuleInvariant(t *testing.T) {
	candidates := make([]response_models.Sight, 0, 12)
	for i := 0; i < 12; i++ {
		candidates = append(candidates, candidateAt(fmt.Sprintf("s%d", i), 0.02*float64(i+1)))
	}
	budget := 15.0

	o := NewHeuristicOptimizer()
	route := o.OptimizeRoute(context.Background(), 0, 0, candidates, budget, nil)
	require.NotEmpty(t, route)

	// Replay the walk: every stop after the first must have satisfied
	// the stopping rule when it was added.
	curLat, curLng := 0.0, 0.0
	acc := 0.0
	for i, stop := range route {
		leg := utils.HaversineKm(curLat, curLng, stop.Latitude, stop.Longitude)
		if i > 0 {
			ret := utils.HaversineKm(stop.Latitude, stop.Longitude, 0, 0)
			assert.LessOrEqual(t, acc+leg+0.5*ret, 0.9*budget)
		}
		acc += leg
		curLat, curLng = stop.Latitude, stop.Longitude
	}
}

func TestHeuristicOptimizerNearestFirstAndDeterministic(t *testing.T) {
	candidates := []response_models.Sight{
		candidateAt("far", 0.05),
		candidateAt("near", 0.01),
		candidateAt("mid", 0.03),
	}

	o := NewHeuristicOptimizer()
	first := o.OptimizeRoute(context.Background(), 0, 0, candidates, 1000, nil)
	second := o.OptimizeRoute(context.Background(), 0, 0, candidates, 1000, nil)

	require.Len(t, first, 3)
	assert.Equal(t, "near", first[0].ID)
	assert.Equal(t, "mid", first[1].ID)
	assert.Equal(t, "far", first[2].ID)
	assert.Equal(t, first, second)
}

func TestHeuristicOptimizerTieBreaksOnInputOrder(t *testing.T) {
	// Two candidates equidistant from the origin: the earlier one in
	// input order wins.
	a := response_models.Sight{ID: "a", Name: "a", Latitude: 0.01, Longitude: 0}
	b := response_models.Sight{ID: "b", Name: "b", Latitude: -0.01, Longitude: 0}

	o := NewHeuristicOptimizer()
	route := o.OptimizeRoute(context.Background(), 0, 0, []response_models.Sight{a, b}, 1000, nil)
	require.Len(t, route, 2)
	assert.Equal(t, "a", route[0].ID)
}
