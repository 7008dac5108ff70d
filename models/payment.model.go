package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const PaymentStatusPaid = "PAID"

// Payment is an append-only record of an observed payment. Rows are created
// once on verified success (or via webhook) and never mutated afterwards,
// except to backfill UserID once the enrolling user is resolved.
type Payment struct {
	gorm.Model
	Email     string         `json:"email" gorm:"index;not null"`
	UserID    *uint          `json:"userId" gorm:"index"`
	OrderID   string         `json:"orderId" gorm:"index;not null"`
	PaymentID string         `json:"paymentId"`
	Signature string         `json:"-"`
	Amount    uint           `json:"amount" gorm:"not null"` // paise
	Currency  string         `json:"currency" gorm:"default:'INR'"`
	Status    string         `json:"status"`
	Method    string         `json:"method"`
	Notes     datatypes.JSON `json:"notes"`
	Raw       datatypes.JSON `json:"-"` // full gateway payload for diagnostics
}
