package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cicerone/internal/api/controllers"
	"cicerone/internal/repositories"
	"cicerone/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAccountService,
	controllers.NewAccountsController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}
