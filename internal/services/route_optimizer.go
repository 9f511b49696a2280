package services

import (
	"context"

	"cicerone/internal/models/request_models"
	"cicerone/internal/models/response_models"
	"cicerone/pkg/utils"
)

const (
	// maxTourStops bounds visiting time regardless of how much
	// geometric slack the budget leaves.
	maxTourStops = 8
	// budgetSlack leaves headroom for real walking distance exceeding
	// the straight-line estimate.
	budgetSlack = 0.9
	// returnWeight is a cheap proxy for keeping enough budget to get
	// back toward the start.
	returnWeight = 0.5
)

// RouteOptimizer selects and orders a subsequence of candidates within
// a straight-line distance budget. Implementations must not return an
// error path: an empty result is the only failure signal.
type RouteOptimizer interface {
	OptimizeRoute(ctx context.Context, originLat, originLng float64, candidates []response_models.Sight, budgetKm float64, settings *request_models.TourWizardSettings) []response_models.Sight
}

// heuristicOptimizer is the nearest-neighbor greedy sequencer. It is
// deterministic for a given candidate order: distance ties go to the
// first candidate in iteration order.
type heuristicOptimizer struct{}

func NewHeuristicOptimizer() RouteOptimizer {
	return &heuristicOptimizer{}
}

func (o *heuristicOptimizer) OptimizeRoute(ctx context.Context, originLat, originLng float64, candidates []response_models.Sight, budgetKm float64, settings *request_models.TourWizardSettings) []response_models.Sight {
	if len(candidates) <= 1 {
		return candidates
	}

	visited := make([]bool, len(candidates))
	route := make([]response_models.Sight, 0, maxTourStops)

	curLat, curLng := originLat, originLng
	accumulatedKm := 0.0

	for len(route) < maxTourStops {
		nearest := -1
		nearestKm := 0.0
		for i, c := range candidates {
			if visited[i] {
				continue
			}
			d := utils.HaversineKm(curLat, curLng, c.Latitude, c.Longitude)
			if nearest == -1 || d < nearestKm {
				nearest = i
				nearestKm = d
			}
		}
		if nearest == -1 {
			break // all visited
		}

		// The first stop is always taken; afterwards, stop before any
		// pick that would leave too little budget for the return leg.
		if len(route) > 0 {
			cand := candidates[nearest]
			returnKm := utils.HaversineKm(cand.Latitude, cand.Longitude, originLat, originLng)
			if accumulatedKm+nearestKm+returnWeight*returnKm > budgetSlack*budgetKm {
				break
			}
		}

		visited[nearest] = true
		route = append(route, candidates[nearest])
		accumulatedKm += nearestKm
		curLat, curLng = candidates[nearest].Latitude, candidates[nearest].Longitude
	}

	return route
}
