package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"roam/internal/repositories"
	"roam/internal/services"
)

var Module = fx.Provide(
	provideQuotaService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideQuotaService(accountRepo repositories.AccountRepository) services.QuotaServiceInterface {
	return services.NewQuotaService(accountRepo)
}
