package kafka

import "time"

// ProgressRecordedEvent is emitted after units are recorded against an order
type ProgressRecordedEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	ProductID      uint      `json:"product_id"`
	ClientName     string    `json:"client_name"`
	QuantityAdded  int       `json:"quantity_added"`
	QuantityBefore int       `json:"quantity_before"`
	QuantityAfter  int       `json:"quantity_after"`
	NowComplete    bool      `json:"now_complete"`
	Timestamp      time.Time `json:"timestamp"`
}

// ProductArchivedEvent is emitted when an order moves to sales history
type ProductArchivedEvent struct {
	EventID           string    `json:"event_id"`
	EventType         string    `json:"event_type"`
	OriginalProductID uint      `json:"original_product_id"`
	ClientName        string    `json:"client_name"`
	ProductType       string    `json:"product_type"`
	Action            string    `json:"action"`
	QuantityCompleted int       `json:"quantity_completed"`
	TotalValue        float64   `json:"total_value"`
	Timestamp         time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProgressRecorded = "inventory.progress_recorded"
	EventTypeProductArchived  = "inventory.product_archived"
)

// Kafka topics
const (
	TopicProgressRecorded = "inventory-progress"
	TopicProductArchived  = "inventory-archived"
)
