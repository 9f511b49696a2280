package favorites_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cicerone/internal/api/controllers"
	"cicerone/internal/repositories"
	"cicerone/internal/services"
)

var Module = fx.Provide(
	provideFavoriteRepo,
	provideFavoriteService,
	controllers.NewFavoritesController)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	sightRepo repositories.SightRepository,
) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, sightRepo)
}
