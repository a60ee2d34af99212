package command

import (
	"context"
	"fmt"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// AddProgressCommand represents the command to record produced units
type AddProgressCommand struct {
	ProductID uint
	Delta     int
	Notes     string
}

// AddProgressHandler handles progress addition command
type AddProgressHandler struct {
	repo domain.ProductRepository
}

// NewAddProgressHandler creates a new add progress handler
func NewAddProgressHandler(repo domain.ProductRepository) *AddProgressHandler {
	return &AddProgressHandler{repo: repo}
}

// Handle executes the add progress command. The caller decides what to do
// when the result reports the order is now complete; no archival happens
// here.
func (h *AddProgressHandler) Handle(ctx context.Context, cmd AddProgressCommand) (*domain.ProgressResult, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}
	if cmd.Delta <= 0 {
		return nil, fmt.Errorf("progress must be a positive number of units")
	}

	// Reject before touching the store
	product, err := h.repo.FindByID(cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}
	if cmd.Delta > product.Remaining() {
		return nil, fmt.Errorf("only %d units remaining", product.Remaining())
	}

	result, err := h.repo.AddProgress(ctx, cmd.ProductID, cmd.Delta, cmd.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to add progress: %w", err)
	}

	return result, nil
}
