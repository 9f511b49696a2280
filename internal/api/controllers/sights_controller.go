package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cicerone/internal/models/request_models"
	"cicerone/internal/services"
	"cicerone/pkg/utils"
)

const defaultNearbyRadiusKm = 5.0

type SightsController struct {
	sightService     services.SightServiceInterface
	narrationService services.NarrationServiceInterface
}

func NewSightsController(
	sightService services.SightServiceInterface,
	narrationService services.NarrationServiceInterface,
) *SightsController {
	return &SightsController{
		sightService:     sightService,
		narrationService: narrationService,
	}
}

func (s *SightsController) GetNearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or missing lat")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or missing lng")
		return
	}

	radiusKm := defaultNearbyRadiusKm
	if raw := c.Query("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid radius_km")
			return
		}
	}

	sights, err := s.sightService.NearbySights(c.Request.Context(), lat, lng, radiusKm)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// Optional tier filter, e.g. ?tiers=1,2
	if raw := c.QueryArray("tiers"); len(raw) > 0 {
		tiers := make([]int, 0, len(raw))
		for _, t := range raw {
			tier, err := strconv.Atoi(t)
			if err != nil || tier < 1 || tier > 3 {
				utils.RespondError(c, http.StatusBadRequest, "Invalid tier filter")
				return
			}
			tiers = append(tiers, tier)
		}
		sights = services.FilterByTier(sights, tiers)
	}

	utils.RespondSuccess(c, sights, "Sights fetched")
}

// GetInViewport serves the map view: sights inside a lat/lng window
// centered on the viewport, e.g. ?lat=48.85&lng=2.35&lat_span=0.1&lng_span=0.2
func (s *SightsController) GetInViewport(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or missing lat")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or missing lng")
		return
	}
	latSpan, err := strconv.ParseFloat(c.Query("lat_span"), 64)
	if err != nil || latSpan <= 0 || latSpan > 10 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or missing lat_span")
		return
	}
	lngSpan, err := strconv.ParseFloat(c.Query("lng_span"), 64)
	if err != nil || lngSpan <= 0 || lngSpan > 10 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or missing lng_span")
		return
	}

	// Fetch at a radius covering the window's diagonal, then trim to
	// the rectangle.
	radiusKm := (latSpan + lngSpan) / 2 * 111.0
	sights, err := s.sightService.NearbySights(c.Request.Context(), lat, lng, radiusKm)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	sights = services.FilterByBoundingBox(sights, lat, lng, latSpan, lngSpan)

	utils.RespondSuccess(c, sights, "Sights fetched")
}

func (s *SightsController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	sights, err := s.sightService.ListSights(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sights, "Sights fetched")
}

func (s *SightsController) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Sight ID is required")
		return
	}

	sight, err := s.sightService.GetSightByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sight, "Sight fetched")
}

func (s *SightsController) GetRelated(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Sight ID is required")
		return
	}

	sights, err := s.sightService.RelatedSights(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sights, "Related sights fetched")
}

func (s *SightsController) Create(c *gin.Context) {
	var req request_models.CreateSightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.sightService.CreateSight(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Sight created")
}

func (s *SightsController) Narrate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Sight ID is required")
		return
	}

	var req request_models.NarrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	narration, err := s.narrationService.Narrate(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, narration, "Narration ready")
}
