//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/delivery/http"
	"github.com/fxckxanaxx/gestorregmarketing/kafka"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
