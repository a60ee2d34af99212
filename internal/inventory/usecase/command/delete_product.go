package command

import (
	"context"
	"fmt"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// DeleteProductCommand represents the command to delete a live order
type DeleteProductCommand struct {
	ProductID uint
}

// DeleteProductHandler handles product deletion. Deletion archives the order
// with whatever progress it had; there is no soft-delete state.
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) (*domain.ArchivedSale, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	// No completion date for deletions
	sale, err := h.repo.Archive(ctx, cmd.ProductID, domain.ActionDeleted, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return sale, nil
}
