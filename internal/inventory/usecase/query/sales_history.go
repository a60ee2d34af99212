package query

import (
	"fmt"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// SalesHistoryQuery represents the query to list recent archived sales
type SalesHistoryQuery struct {
	Limit int
}

// SalesHistoryHandler handles sales history query
type SalesHistoryHandler struct {
	repo domain.HistoryRepository
}

// NewSalesHistoryHandler creates a new sales history handler
func NewSalesHistoryHandler(repo domain.HistoryRepository) *SalesHistoryHandler {
	return &SalesHistoryHandler{repo: repo}
}

// Handle executes the sales history query
func (h *SalesHistoryHandler) Handle(q SalesHistoryQuery) ([]domain.ArchivedSale, error) {
	// Set defaults
	if q.Limit <= 0 {
		q.Limit = 50
	}

	sales, err := h.repo.FindRecent(q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales history: %w", err)
	}

	return sales, nil
}
