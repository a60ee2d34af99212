package domain

import (
	"context"
	"time"
)

// Product status values
const (
	StatusPending   = "pending"
	StatusPriority  = "priority"
	StatusCompleted = "completed"
)

// Product represents a live production order
type Product struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	ClientName        string    `json:"client_name" gorm:"not null;index"`
	ProductType       string    `json:"product_type" gorm:"not null"`
	Quantity          int       `json:"quantity" gorm:"not null"`
	QuantityCompleted int       `json:"quantity_completed" gorm:"not null;default:0"`
	Size              string    `json:"size"`
	Color             string    `json:"color"`
	Status            string    `json:"status" gorm:"not null;default:'pending'"`
	DueDate           time.Time `json:"due_date" gorm:"type:date;not null"`
	Price             float64   `json:"price" gorm:"not null;default:0"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// Remaining returns the number of units still to produce
func (p *Product) Remaining() int {
	return p.Quantity - p.QuantityCompleted
}

// IsComplete reports whether every ordered unit has been produced
func (p *Product) IsComplete() bool {
	return p.QuantityCompleted >= p.Quantity
}

// OrderValue is the value of the full order
func (p *Product) OrderValue() float64 {
	return p.Price * float64(p.Quantity)
}

// ProgressResult carries the outcome of a progress addition
type ProgressResult struct {
	Product     *Product
	Event       *ProgressEvent
	NowComplete bool
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	// FindAll returns all live products ordered by creation time, newest first.
	FindAll() ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)

	// AddProgress increments quantity_completed by delta and records a
	// ProgressEvent in the same transaction. Status flips to completed when
	// the order is fully produced.
	AddProgress(ctx context.Context, id uint, delta int, notes string) (*ProgressResult, error)

	// Archive snapshots the product into sales_history and deletes the live
	// row in a single transaction.
	Archive(ctx context.Context, id uint, action string, completedDate *time.Time) (*ArchivedSale, error)
}
