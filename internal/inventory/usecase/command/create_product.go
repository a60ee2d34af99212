package command

import (
	"fmt"
	"time"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// CreateProductCommand represents the command to register a new production order
type CreateProductCommand struct {
	ClientName  string
	ProductType string
	Quantity    int
	Size        string
	Color       string
	Status      string
	DueDate     time.Time
	Price       float64
	Notes       string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.ClientName == "" {
		return nil, fmt.Errorf("client name is required")
	}
	if cmd.ProductType == "" {
		return nil, fmt.Errorf("product type is required")
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than 0")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.DueDate.IsZero() {
		return nil, fmt.Errorf("due date is required")
	}

	status := cmd.Status
	if status == "" {
		status = domain.StatusPending
	}
	if status != domain.StatusPending && status != domain.StatusPriority {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	// New orders always start with zero units produced
	product := &domain.Product{
		ClientName:        cmd.ClientName,
		ProductType:       cmd.ProductType,
		Quantity:          cmd.Quantity,
		QuantityCompleted: 0,
		Size:              cmd.Size,
		Color:             cmd.Color,
		Status:            status,
		DueDate:           cmd.DueDate,
		Price:             cmd.Price,
		Notes:             cmd.Notes,
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
