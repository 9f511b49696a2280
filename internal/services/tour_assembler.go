package services

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"cicerone/internal/models/request_models"
	"cicerone/internal/models/response_models"
	"cicerone/pkg/utils"
)

// travelMinutesPerKm returns the straight-line time multiplier for a
// transport mode.
func travelMinutesPerKm(mode string) float64 {
	switch mode {
	case request_models.TransportTaxi:
		return 3
	case request_models.TransportPublic:
		return 6
	case request_models.TransportMix:
		return 8
	default: // walk
		return 12
	}
}

// dwellMinutes returns the per-stop time allotment for a narration
// detail level.
func dwellMinutes(detailLevel string) int {
	switch detailLevel {
	case request_models.DetailBrief:
		return 5
	case request_models.DetailExpert:
		return 25
	default: // medium
		return 15
	}
}

func transportLabel(mode string) string {
	switch mode {
	case request_models.TransportTaxi:
		return "Taxi"
	case request_models.TransportPublic:
		return "Transit"
	case request_models.TransportMix:
		return "Mixed"
	default:
		return "Walking"
	}
}

// AssembleTour turns an ordered route into a fully populated Tour:
// 1-based stop ordering, per-leg distance and travel time, and
// aggregates recomputed from the stop sequence.
func AssembleTour(route []response_models.Sight, settings *request_models.TourWizardSettings) *response_models.Tour {
	mode := request_models.TransportWalk
	detail := request_models.DetailMedium
	if settings != nil {
		mode = settings.TransportMode
		detail = settings.DetailLevel
	}
	perKm := travelMinutesPerKm(mode)
	dwell := dwellMinutes(detail)

	stops := make([]response_models.TourStop, len(route))
	totalKm := 0.0
	travelMinutes := 0

	for i, sight := range route {
		stop := response_models.TourStop{
			Sight: sight,
			Order: i + 1,
		}
		if i < len(route)-1 {
			next := route[i+1]
			legKm := utils.HaversineKm(sight.Latitude, sight.Longitude, next.Latitude, next.Longitude)
			legMinutes := int(math.Ceil(legKm * perKm))
			stop.DistanceToNextKm = &legKm
			stop.MinutesToNext = &legMinutes
			totalKm += legKm
			travelMinutes += legMinutes
		}
		stops[i] = stop
	}

	var name string
	if settings != nil {
		name = fmt.Sprintf("%d-Day %s Tour", settings.Days, transportLabel(settings.TransportMode))
	} else {
		name = fmt.Sprintf("%d-Stop Tour", len(route))
	}

	return &response_models.Tour{
		ID:               uuid.New().String(),
		Name:             name,
		Stops:            stops,
		TotalDistanceKm:  totalKm,
		EstimatedMinutes: travelMinutes + len(stops)*dwell,
		CreatedAt:        time.Now().Unix(),
	}
}
