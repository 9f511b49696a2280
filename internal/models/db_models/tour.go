package db_models

import "github.com/google/uuid"

// Tour is a saved tour. The aggregate columns are snapshots of what the
// assembler computed at save time; they are never edited independently
// of the stop list.
type Tour struct {
	BaseModel
	AccountID        uuid.UUID `gorm:"type:uuid;index"`
	Name             string
	TotalDistanceKm  float64
	EstimatedMinutes int

	Stops []TourStop `gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
}

// TourStop snapshots the sight at assembly time so a saved tour stays
// renderable even if the catalog entry changes later.
type TourStop struct {
	BaseModel
	TourID   uuid.UUID `gorm:"type:uuid;index"`
	Position int

	SightID     uuid.UUID `gorm:"type:uuid"`
	SightName   string
	Category    string
	Latitude    float64
	Longitude   float64
	Tier        int
	Description string

	DistanceToNextKm *float64
	MinutesToNext    *int
}
