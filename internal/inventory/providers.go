package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/repository"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// ProvideHistoryRepository provides the sales history repository
func ProvideHistoryRepository(db *gorm.DB) domain.HistoryRepository {
	return repository.NewGormHistoryRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideHistoryRepository,
)
