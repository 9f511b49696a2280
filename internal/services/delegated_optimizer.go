package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"cicerone/internal/models/request_models"
	"cicerone/internal/models/response_models"
	"cicerone/pkg/utils"
)

const (
	// delegationMinCandidates: below this the heuristic is used
	// directly; a language model adds nothing over 3 points.
	delegationMinCandidates = 3
	// delegatedMinStops / delegatedMaxStops bound the accepted result:
	// fewer matches than the minimum get topped up with the nearest
	// unused candidates, never past the maximum.
	delegatedMinStops = 3
	delegatedMaxStops = 5
)

// delegatedOptimizer asks a text-generation model to order the stops
// and falls back to the heuristic sequencer on any failure. It never
// surfaces an error: delegation is strictly best-effort.
type delegatedOptimizer struct {
	client   utils.AIClientInterface
	matcher  NameMatcher
	fallback RouteOptimizer
	userName string
}

func NewDelegatedOptimizer(client utils.AIClientInterface, matcher NameMatcher, fallback RouteOptimizer, userName string) RouteOptimizer {
	return &delegatedOptimizer{
		client:   client,
		matcher:  matcher,
		fallback: fallback,
		userName: userName,
	}
}

func (o *delegatedOptimizer) OptimizeRoute(ctx context.Context, originLat, originLng float64, candidates []response_models.Sight, budgetKm float64, settings *request_models.TourWizardSettings) []response_models.Sight {
	if o.client == nil || len(candidates) <= delegationMinCandidates {
		return o.fallback.OptimizeRoute(ctx, originLat, originLng, candidates, budgetKm, settings)
	}

	prompt := o.buildPrompt(originLat, originLng, candidates, budgetKm, settings)

	completion, err := o.client.CompleteText(ctx, prompt)
	if err != nil {
		log.Printf("Delegated optimizer unavailable, using heuristic: %v", err)
		return o.fallback.OptimizeRoute(ctx, originLat, originLng, candidates, budgetKm, settings)
	}

	route := o.parseRoute(completion, candidates)
	if len(route) == 0 {
		log.Printf("Delegated optimizer returned no usable names, using heuristic")
		return o.fallback.OptimizeRoute(ctx, originLat, originLng, candidates, budgetKm, settings)
	}
	if len(route) < delegatedMinStops {
		route = topUpWithNearest(route, candidates, delegatedMaxStops)
	}
	return route
}

func (o *delegatedOptimizer) buildPrompt(originLat, originLng float64, candidates []response_models.Sight, budgetKm float64, settings *request_models.TourWizardSettings) string {
	var b strings.Builder

	b.WriteString("You are planning a sightseeing tour. Pick and order the best stops from the list below.\n\n")
	fmt.Fprintf(&b, "Start location: %.5f, %.5f\n", originLat, originLng)
	fmt.Fprintf(&b, "Maximum total distance: %.1f km\n", budgetKm)
	if settings != nil {
		fmt.Fprintf(&b, "Trip: %d day(s), %d hour(s) per day, transport: %s, shape: %s\n",
			settings.Days, settings.HoursPerDay, settings.TransportMode, settings.TourShape)
		if settings.SpecialInterests != "" {
			fmt.Fprintf(&b, "Special interests: %s\n", settings.SpecialInterests)
		}
	}
	if o.userName != "" {
		fmt.Fprintf(&b, "Traveler: %s\n", o.userName)
	}

	b.WriteString("\nSights:\n")
	for _, c := range candidates {
		fmt.Fprintf(&b, "- %s (%s", c.Name, c.Category)
		if c.DistanceKm != nil {
			fmt.Fprintf(&b, ", %.1f km away", *c.DistanceKm)
		}
		b.WriteString(")\n")
	}

	b.WriteString("\nReply with a comma-separated list of sight names only, in visiting order. No numbering, no extra text.")
	return b.String()
}

// parseRoute splits the completion on commas and fuzzy-matches each
// piece against the candidate names. Unmatched names are dropped;
// duplicate matches keep the first occurrence.
func (o *delegatedOptimizer) parseRoute(completion string, candidates []response_models.Sight) []response_models.Sight {
	seen := make(map[string]bool)
	route := make([]response_models.Sight, 0, delegatedMaxStops)

	for _, part := range strings.Split(completion, ",") {
		sight, ok := o.matcher.Match(part, candidates)
		if !ok || seen[sight.ID] {
			continue
		}
		seen[sight.ID] = true
		route = append(route, sight)
	}
	return route
}

// topUpWithNearest appends unused candidates by ascending distance from
// the origin until the route reaches maxStops or candidates run out.
func topUpWithNearest(route []response_models.Sight, candidates []response_models.Sight, maxStops int) []response_models.Sight {
	used := make(map[string]bool, len(route))
	for _, s := range route {
		used[s.ID] = true
	}

	unused := make([]response_models.Sight, 0, len(candidates))
	for _, c := range candidates {
		if !used[c.ID] {
			unused = append(unused, c)
		}
	}
	sort.SliceStable(unused, func(i, j int) bool {
		di, dj := 0.0, 0.0
		if unused[i].DistanceKm != nil {
			di = *unused[i].DistanceKm
		}
		if unused[j].DistanceKm != nil {
			dj = *unused[j].DistanceKm
		}
		return di < dj
	})

	for _, c := range unused {
		if len(route) >= maxStops {
			break
		}
		route = append(route, c)
	}
	return route
}
