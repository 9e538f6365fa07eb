package model

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// Order is the single persisted entity: one row per verified payment.
// The unique index on StripeSessionID makes verification replays idempotent,
// and OrderNumber is the customer-facing label shown in emails and lookups.
type Order struct {
	ID                    string `gorm:"primaryKey;size:36;not null"` // store-assigned uuid
	OrderNumber           string `gorm:"size:64;uniqueIndex;not null"`
	StripeSessionID       string `gorm:"size:128;uniqueIndex;not null"`
	StripePaymentIntentID string `gorm:"size:128"`
	CustomerEmail         string `gorm:"size:255;index;not null"`
	CustomerName          string `gorm:"size:255"`
	ProductID             string `gorm:"size:64;not null"`
	ProductName           string `gorm:"size:255;not null"`
	Amount                int64  `gorm:"not null"`               // minor currency units (cents)
	Currency              string `gorm:"size:8;not null"`        // lower-case ISO 4217
	Status                string `gorm:"size:32;index;not null"` // pending, completed
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
