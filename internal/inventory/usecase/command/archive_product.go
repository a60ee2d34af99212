package command

import (
	"context"
	"fmt"
	"time"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// ArchiveProductCommand represents the command to move a product to history
type ArchiveProductCommand struct {
	ProductID     uint
	Action        string
	CompletedDate *time.Time
}

// ArchiveProductHandler handles product archival command
type ArchiveProductHandler struct {
	repo domain.ProductRepository
}

// NewArchiveProductHandler creates a new archive product handler
func NewArchiveProductHandler(repo domain.ProductRepository) *ArchiveProductHandler {
	return &ArchiveProductHandler{repo: repo}
}

// Handle executes the archive product command
func (h *ArchiveProductHandler) Handle(ctx context.Context, cmd ArchiveProductCommand) (*domain.ArchivedSale, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}
	if cmd.Action != domain.ActionCompleted && cmd.Action != domain.ActionDeleted {
		return nil, fmt.Errorf("invalid archive action: %s", cmd.Action)
	}

	sale, err := h.repo.Archive(ctx, cmd.ProductID, cmd.Action, cmd.CompletedDate)
	if err != nil {
		return nil, fmt.Errorf("failed to archive product: %w", err)
	}

	return sale, nil
}
