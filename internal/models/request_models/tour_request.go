package request_models

// Transport modes accepted by the tour wizard.
const (
	TransportWalk   = "walk"
	TransportTaxi   = "taxi"
	TransportPublic = "public"
	TransportMix    = "mix"
)

// Per-stop narration detail levels. The level drives the dwell time the
// assembler budgets per stop and the narration word budget.
const (
	DetailBrief  = "brief"
	DetailMedium = "medium"
	DetailExpert = "expert"
)

// Tour shapes. Point-to-point is accepted but the heuristic does not
// structurally differentiate the two yet; it only feeds the delegated
// optimizer prompt.
const (
	ShapeRoundTrip    = "roundtrip"
	ShapePointToPoint = "point_to_point"
)

// TourWizardSettings is the user-configurable constraint bundle for one
// tour-generation call.
type TourWizardSettings struct {
	Days             int     `json:"days" binding:"required,min=1"`
	HoursPerDay      int     `json:"hours_per_day" binding:"required,min=1"`
	MaxDistanceKm    float64 `json:"max_distance_km" binding:"min=0"`
	TransportMode    string  `json:"transport_mode" binding:"required,oneof=walk taxi public mix"`
	InterestTiers    []int   `json:"interest_tiers" binding:"required,min=1,dive,min=1,max=3"`
	TourShape        string  `json:"tour_shape" binding:"omitempty,oneof=roundtrip point_to_point"`
	DetailLevel      string  `json:"detail_level" binding:"required,oneof=brief medium expert"`
	SpecialInterests string  `json:"special_interests"`
}

type GenerateTourRequest struct {
	Latitude  float64            `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64            `json:"longitude" binding:"min=-180,max=180"`
	Settings  TourWizardSettings `json:"settings" binding:"required"`
}

type SaveTourRequest struct {
	Name string `json:"name" binding:"required"`
}
