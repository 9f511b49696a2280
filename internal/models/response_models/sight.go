package response_models

// Sight is the candidate shape the tour engine consumes: catalog data
// enriched with a computed tier and, once an origin is known, a
// distance from that origin. Instances are treated as immutable within
// one tour-generation call.
type Sight struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	Tier         int               `json:"tier"`
	DistanceKm   *float64          `json:"distance_km,omitempty"`
	Descriptions map[string]string `json:"descriptions,omitempty"`
	Rating       *float64          `json:"rating,omitempty"`
	ReviewCount  *int              `json:"review_count,omitempty"`
	OpenNow      *bool             `json:"open_now,omitempty"`
}

type Narration struct {
	SightID   string `json:"sight_id"`
	Language  string `json:"language"`
	Text      string `json:"text"`
	Generated bool   `json:"generated"`
}
