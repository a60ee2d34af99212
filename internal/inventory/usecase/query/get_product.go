package query

import (
	"fmt"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	product, err := h.repo.FindByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}
	return product, nil
}
