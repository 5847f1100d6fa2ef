package receipt

import (
	"github.com/rasidhq/rasid/internal/receipt/repository"
	"github.com/rasidhq/rasid/internal/receipt/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("receipt.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Invoke(func(db *gorm.DB) error {
		return repository.Migrate(db)
	}),
)
