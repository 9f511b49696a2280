package tours_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cicerone/internal/api/controllers"
	"cicerone/internal/repositories"
	"cicerone/internal/services"
	"cicerone/pkg/memcache"
	"cicerone/pkg/utils"
)

var Module = fx.Provide(
	provideTourRepo,
	provideCurrentTourStore,
	provideTourService,
	controllers.NewToursController)

func provideTourRepo(db *gorm.DB) repositories.TourRepository {
	return repositories.NewTourRepository(db)
}

func provideCurrentTourStore() memcache.CurrentTourStore {
	return memcache.NewCurrentTourStore()
}

func provideTourService(
	sightService services.SightServiceInterface,
	tourRepo repositories.TourRepository,
	currentTours memcache.CurrentTourStore,
	aiClient utils.AIClientInterface,
) services.TourServiceInterface {
	return services.NewTourService(sightService, tourRepo, currentTours, aiClient)
}
