package model

import (
	"time"
)

// Payment is one entry in an invoice's append-only payment ledger.
type Payment struct {
	ID                int32     `json:"id"`
	InvoiceID         int32     `json:"invoice_id"`
	OrgID             int64     `json:"org_id"`
	AmountCents       int64     `json:"amount_cents"`
	PaymentMethod     string    `json:"payment_method"`
	PaidAt            time.Time `json:"paid_at"`
	ExternalReference *string   `json:"external_reference,omitempty"`
	Note              *string   `json:"note,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
