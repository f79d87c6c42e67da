package dto

import "time"

// Lifecycle event types published to the broker.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

type ProductEvent struct {
	EventType  string    `json:"event_type"`
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}
