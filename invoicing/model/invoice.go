package model

import (
	"time"
)

type Invoice struct {
	ID                    int32         `json:"id"`
	OrgID                 int64         `json:"org_id"`
	ClientID              int64         `json:"client_id"`
	Number                string        `json:"number"`
	Currency              string        `json:"currency"`
	Status                InvoiceStatus `json:"status"`
	AmountCents           int64         `json:"amount_cents"`
	DiscountCents         int64         `json:"discount_cents"`
	TaxCents              int64         `json:"tax_cents"`
	TotalPaidCents        int64         `json:"total_paid_cents"`
	RemainingBalanceCents int64         `json:"remaining_balance_cents"`
	IssuedAt              time.Time     `json:"issued_at"`
	DueAt                 *time.Time    `json:"due_at,omitempty"`
	PaidAt                *time.Time    `json:"paid_at,omitempty"`
	LineItems             []LineItem    `json:"line_items,omitempty"`
	Installments          []Installment `json:"installments,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusSent          InvoiceStatus = "sent"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusVoid          InvoiceStatus = "void"
)

type LineItem struct {
	ID             int32  `json:"id"`
	InvoiceID      int32  `json:"invoice_id"`
	Description    string `json:"description"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	AmountCents    int64  `json:"amount_cents"`
}

// ReconciliationOutcome is the result of recomputing an invoice's derived
// payment fields from its ledger.
type ReconciliationOutcome struct {
	InvoiceID             int32         `json:"invoice_id"`
	OrgID                 int64         `json:"org_id"`
	ClientID              int64         `json:"client_id"`
	TotalPaidCents        int64         `json:"total_paid_cents"`
	RemainingBalanceCents int64         `json:"remaining_balance_cents"`
	Status                InvoiceStatus `json:"status"`
	PreviousStatus        InvoiceStatus `json:"previous_status"`
	StatusChanged         bool          `json:"status_changed"`
	PaidAt                *time.Time    `json:"paid_at,omitempty"`
}
