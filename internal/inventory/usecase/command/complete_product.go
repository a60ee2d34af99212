package command

import (
	"context"
	"fmt"
	"time"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// CompleteProductCommand represents the command to finish all remaining units
// of an order and move it to history
type CompleteProductCommand struct {
	ProductID uint
}

// CompleteProductHandler handles the complete-all command. It is the explicit
// orchestration of the two steps: record the remaining units as progress,
// then archive the finished order.
type CompleteProductHandler struct {
	repo domain.ProductRepository
}

// NewCompleteProductHandler creates a new complete product handler
func NewCompleteProductHandler(repo domain.ProductRepository) *CompleteProductHandler {
	return &CompleteProductHandler{repo: repo}
}

// Handle executes the complete product command
func (h *CompleteProductHandler) Handle(ctx context.Context, cmd CompleteProductCommand) (*domain.ArchivedSale, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.repo.FindByID(cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	if remaining := product.Remaining(); remaining > 0 {
		if _, err := h.repo.AddProgress(ctx, cmd.ProductID, remaining, "completed in full"); err != nil {
			return nil, fmt.Errorf("failed to complete remaining units: %w", err)
		}
	}

	today := time.Now().Truncate(24 * time.Hour)
	sale, err := h.repo.Archive(ctx, cmd.ProductID, domain.ActionCompleted, &today)
	if err != nil {
		return nil, fmt.Errorf("failed to archive completed product: %w", err)
	}

	return sale, nil
}
