package services

import (
	"cicerone/internal/models/response_models"
)

// Candidate filters. Each returns a fresh slice preserving the relative
// order of the input; input sights are never mutated.

// FilterByTier keeps sights whose tier is in the accepted set.
func FilterByTier(sights []response_models.Sight, acceptedTiers []int) []response_models.Sight {
	accepted := make(map[int]bool, len(acceptedTiers))
	for _, t := range acceptedTiers {
		accepted[t] = true
	}

	out := make([]response_models.Sight, 0, len(sights))
	for _, s := range sights {
		if accepted[s.Tier] {
			out = append(out, s)
		}
	}
	return out
}

// FilterByRadius keeps sights whose precomputed distance from the
// origin is within radiusKm. Sights without a computed distance are
// dropped.
func FilterByRadius(sights []response_models.Sight, radiusKm float64) []response_models.Sight {
	out := make([]response_models.Sight, 0, len(sights))
	for _, s := range sights {
		if s.DistanceKm != nil && *s.DistanceKm <= radiusKm {
			out = append(out, s)
		}
	}
	return out
}

// FilterByBoundingBox keeps sights inside a map-viewport window of
// latSpan × lngSpan degrees centered on (centerLat, centerLng). The
// window ignores longitude compression at high latitude; near the
// poles it admits somewhat more than the on-screen area.
func FilterByBoundingBox(sights []response_models.Sight, centerLat, centerLng, latSpan, lngSpan float64) []response_models.Sight {
	minLat := centerLat - latSpan/2
	maxLat := centerLat + latSpan/2
	minLng := centerLng - lngSpan/2
	maxLng := centerLng + lngSpan/2

	out := make([]response_models.Sight, 0, len(sights))
	for _, s := range sights {
		if s.Latitude >= minLat && s.Latitude <= maxLat &&
			s.Longitude >= minLng && s.Longitude <= maxLng {
			out = append(out, s)
		}
	}
	return out
}
