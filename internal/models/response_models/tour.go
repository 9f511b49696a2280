package response_models

// TourStop is one visit in an assembled tour. DistanceToNextKm and
// MinutesToNext are nil on the final stop.
type TourStop struct {
	Sight            Sight    `json:"sight"`
	Order            int      `json:"order"`
	DistanceToNextKm *float64 `json:"distance_to_next_km,omitempty"`
	MinutesToNext    *int     `json:"minutes_to_next,omitempty"`
}

// Tour aggregates are always recomputed from the stop sequence by the
// assembler; nothing mutates them afterwards.
type Tour struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Stops            []TourStop `json:"stops"`
	TotalDistanceKm  float64    `json:"total_distance_km"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	CreatedAt        int64      `json:"created_at"`
}

type SavedTourSummary struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	StopCount        int     `json:"stop_count"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	CreatedAt        int64   `json:"created_at"`
}
