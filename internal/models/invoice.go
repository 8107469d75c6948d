package models

import (
	"time"

	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceIssued    InvoiceStatus = "ISSUED"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft:  {InvoiceIssued, InvoiceCancelled},
	InvoiceIssued: {InvoicePaid, InvoiceCancelled},
	// PAID and CANCELLED are terminal
}

func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Invoice struct {
	gorm.Model
	Number string        `gorm:"uniqueIndex;size:30;not null" json:"number"`
	Status InvoiceStatus `gorm:"type:varchar(20);not null;default:DRAFT" json:"status"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `json:"-"`

	// Amount is the pre-tax total; TaxAmount and Total are derived from the
	// tax rate in force when the invoice was created.
	Amount    float64 `gorm:"not null" json:"amount"`
	TaxRate   float64 `gorm:"not null" json:"tax_rate"`
	TaxAmount float64 `gorm:"not null" json:"tax_amount"`
	Total     float64 `gorm:"not null" json:"total"`

	IssuedAt *time.Time `json:"issued_at,omitempty"`
	PaidAt   *time.Time `json:"paid_at,omitempty"`

	Notes string `gorm:"type:text" json:"notes"`
}
