package domain

import (
	"time"
)

// Archive actions
const (
	ActionCompleted = "completed"
	ActionDeleted   = "deleted"
)

// ArchivedSale is the terminal snapshot of a product, written once when the
// product leaves the live set
type ArchivedSale struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	OriginalProductID uint       `json:"original_product_id" gorm:"not null;index"`
	ClientName        string     `json:"client_name" gorm:"not null"`
	ProductType       string     `json:"product_type" gorm:"not null"`
	Quantity          int        `json:"quantity" gorm:"not null"`
	QuantityCompleted int        `json:"quantity_completed" gorm:"not null"`
	Price             float64    `json:"price" gorm:"not null"`
	TotalValue        float64    `json:"total_value" gorm:"not null"`
	DueDate           time.Time  `json:"due_date" gorm:"type:date"`
	CompletedDate     *time.Time `json:"completed_date" gorm:"type:date"`
	Action            string     `json:"action" gorm:"not null"`
	ArchivedAt        time.Time  `json:"archived_at" gorm:"not null;index"`
}

// TableName specifies the table name
func (ArchivedSale) TableName() string {
	return "sales_history"
}

// ProgressEvent records a single progress addition. Rows are append-only.
type ProgressEvent struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ProductID      uint      `json:"product_id" gorm:"not null;index"`
	QuantityAdded  int       `json:"quantity_added" gorm:"not null"`
	QuantityBefore int       `json:"quantity_before" gorm:"not null"`
	QuantityAfter  int       `json:"quantity_after" gorm:"not null"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name
func (ProgressEvent) TableName() string {
	return "progress_history"
}

// HistoryRepository defines the contract for sales history access
type HistoryRepository interface {
	// FindRecent returns the most recent limit rows by archival time,
	// newest first.
	FindRecent(limit int) ([]ArchivedSale, error)
	// FindByMonth returns rows archived in [year-month-01, next month) for
	// the monthly report, newest first.
	FindByMonth(year int, month time.Month) ([]ArchivedSale, error)
	ClearAll() error
	Count() (int64, error)
}
