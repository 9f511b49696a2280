package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cicerone/internal/models/request_models"
	"cicerone/internal/services"
	"cicerone/pkg/utils"
)

type ToursController struct {
	tourService services.TourServiceInterface
}

func NewToursController(tourService services.TourServiceInterface) *ToursController {
	return &ToursController{
		tourService: tourService,
	}
}

func (t *ToursController) Generate(c *gin.Context) {
	accountID, userName, ok := accountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.GenerateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tour, err := t.tourService.GenerateTour(c.Request.Context(), accountID, userName, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tour, "Tour generated")
}

func (t *ToursController) Status(c *gin.Context) {
	accountID, _, ok := accountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	utils.RespondSuccess(c, gin.H{"generating": t.tourService.IsGenerating(accountID)}, "Generation status")
}

func (t *ToursController) Current(c *gin.Context) {
	accountID, _, ok := accountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	tour, err := t.tourService.CurrentTour(accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tour, "Current tour")
}

func (t *ToursController) Save(c *gin.Context) {
	accountID, _, ok := accountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.SaveTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tour, err := t.tourService.SaveCurrentTour(c.Request.Context(), accountID, req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tour, "Tour saved")
}

func (t *ToursController) ListSaved(c *gin.Context) {
	accountID, _, ok := accountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	tours, err := t.tourService.ListSavedTours(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tours, "Saved tours fetched")
}

func (t *ToursController) Load(c *gin.Context) {
	accountID, _, ok := accountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	tour, err := t.tourService.LoadTour(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tour, "Tour loaded")
}

func (t *ToursController) Delete(c *gin.Context) {
	accountID, _, ok := accountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := t.tourService.DeleteTour(c.Request.Context(), accountID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Tour deleted")
}
