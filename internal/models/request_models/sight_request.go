package request_models

type CreateSightRequest struct {
	Name         string            `json:"name" binding:"required"`
	Category     string            `json:"category" binding:"required"`
	Latitude     float64           `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64           `json:"longitude" binding:"min=-180,max=180"`
	Descriptions map[string]string `json:"descriptions"`
	Rating       *float64          `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewCount  *int              `json:"review_count" binding:"omitempty,min=0"`
	OpenNow      *bool             `json:"open_now"`
}

type NarrationRequest struct {
	Language         string `json:"language"`
	DetailLevel      string `json:"detail_level" binding:"omitempty,oneof=brief medium expert"`
	SpecialInterests string `json:"special_interests"`
}
