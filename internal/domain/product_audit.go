package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const ActionSoftDelete = "soft-delete"

// ProductAudit is an append-only record of a lifecycle event on a product.
// Payload holds a snapshot of the product as it was when the event happened,
// so the row stays useful even after the product itself changes or is purged.
type ProductAudit struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID   string         `gorm:"type:uuid;not null;index" json:"product_id"`
	Action      string         `gorm:"type:varchar(100);not null" json:"action"`
	Payload     datatypes.JSON `gorm:"type:json" json:"payload,omitempty"`
	PerformedBy *string        `gorm:"type:varchar(255)" json:"performed_by,omitempty"`
	PerformedAt time.Time      `gorm:"autoCreateTime" json:"performed_at"`
}

func (ProductAudit) TableName() string { return "product_audit" }

func (a *ProductAudit) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
