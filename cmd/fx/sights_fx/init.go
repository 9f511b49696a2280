package sights_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cicerone/internal/api/controllers"
	"cicerone/internal/repositories"
	"cicerone/internal/services"
	"cicerone/pkg/utils"
)

var Module = fx.Provide(
	provideSightRepo,
	provideEmbeddingRepo,
	provideSightService,
	provideNarrationService,
	controllers.NewSightsController)

func provideSightRepo(db *gorm.DB) repositories.SightRepository {
	return repositories.NewSightRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.SightEmbeddingRepository {
	return repositories.NewSightEmbeddingRepository(db)
}

func provideSightService(
	sightRepo repositories.SightRepository,
	embeddingRepo repositories.SightEmbeddingRepository,
	aiClient utils.AIClientInterface,
) services.SightServiceInterface {
	return services.NewSightService(sightRepo, embeddingRepo, aiClient)
}

func provideNarrationService(
	sightRepo repositories.SightRepository,
	aiClient utils.AIClientInterface,
) services.NarrationServiceInterface {
	return services.NewNarrationService(sightRepo, aiClient)
}
