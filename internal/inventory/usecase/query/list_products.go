package query

import (
	"fmt"
	"strings"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// ListProductsQuery represents the query to list live products
type ListProductsQuery struct {
	Term string // Optional: case-insensitive substring filter
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query. The filter runs over the full set
// rather than in the store, matching client name, product type, status, color
// and size.
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if q.Term == "" {
		return products, nil
	}

	term := strings.ToLower(q.Term)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesTerm(&p, term) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func matchesTerm(p *domain.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.ClientName), term) ||
		strings.Contains(strings.ToLower(p.ProductType), term) ||
		strings.Contains(strings.ToLower(p.Status), term) ||
		strings.Contains(strings.ToLower(p.Color), term) ||
		strings.Contains(strings.ToLower(p.Size), term)
}
