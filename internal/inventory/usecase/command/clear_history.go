package command

import (
	"fmt"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// ClearHistoryCommand represents the command to wipe the sales history
type ClearHistoryCommand struct{}

// ClearHistoryHandler handles the bulk history clear command
type ClearHistoryHandler struct {
	repo domain.HistoryRepository
}

// NewClearHistoryHandler creates a new clear history handler
func NewClearHistoryHandler(repo domain.HistoryRepository) *ClearHistoryHandler {
	return &ClearHistoryHandler{repo: repo}
}

// Handle executes the clear history command and returns how many rows were
// removed
func (h *ClearHistoryHandler) Handle(cmd ClearHistoryCommand) (int64, error) {
	count, err := h.repo.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count history rows: %w", err)
	}

	if err := h.repo.ClearAll(); err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	return count, nil
}
