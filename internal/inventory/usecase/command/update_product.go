package command

import (
	"fmt"
	"time"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// UpdateProductCommand represents the command to update an existing order
type UpdateProductCommand struct {
	ID          uint
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

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}
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
	if cmd.Status != domain.StatusPending && cmd.Status != domain.StatusPriority && cmd.Status != domain.StatusCompleted {
		return nil, fmt.Errorf("invalid status: %s", cmd.Status)
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	// The ordered quantity can never drop below what is already produced
	if cmd.Quantity < product.QuantityCompleted {
		return nil, fmt.Errorf("quantity cannot be lower than the %d units already completed", product.QuantityCompleted)
	}

	product.ClientName = cmd.ClientName
	product.ProductType = cmd.ProductType
	product.Quantity = cmd.Quantity
	product.Size = cmd.Size
	product.Color = cmd.Color
	product.Status = cmd.Status
	product.DueDate = cmd.DueDate
	product.Price = cmd.Price
	product.Notes = cmd.Notes

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
