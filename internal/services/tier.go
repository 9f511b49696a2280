package services

// Quality tiers for sights, 1 (top) to 3 (niche).
const (
	TierTop     = 1
	TierPopular = 2
	TierNiche   = 3
)

// ClassifyTier maps a sight's popularity signals to a tier. The checks
// run in fixed priority order: unknown signals first, then the top
// tier, then the niche tier. A heavily reviewed, highly rated sight is
// tier 1 even though its rating alone would not exclude tier 3.
func ClassifyTier(rating *float64, reviewCount *int) int {
	if rating == nil || reviewCount == nil {
		return TierPopular
	}
	if *rating >= 4.3 && *reviewCount >= 500 {
		return TierTop
	}
	if *rating < 4.0 || *reviewCount < 50 {
		return TierNiche
	}
	return TierPopular
}
