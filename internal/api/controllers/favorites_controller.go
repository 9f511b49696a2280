package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cicerone/internal/services"
	"cicerone/pkg/utils"
)

type FavoritesController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoritesController(favoriteService services.FavoriteServiceInterface) *FavoritesController {
	return &FavoritesController{
		favoriteService: favoriteService,
	}
}

func (f *FavoritesController) Add(c *gin.Context) {
	accountID, _, ok := accountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := f.favoriteService.AddFavorite(c.Request.Context(), accountID, c.Param("sightId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Favorite added")
}

func (f *FavoritesController) Remove(c *gin.Context) {
	accountID, _, ok := accountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := f.favoriteService.RemoveFavorite(c.Request.Context(), accountID, c.Param("sightId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Favorite removed")
}

func (f *FavoritesController) List(c *gin.Context) {
	accountID, _, ok := accountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	sights, err := f.favoriteService.ListFavorites(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sights, "Favorites fetched")
}
