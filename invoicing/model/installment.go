package model

import (
	"time"
)

type Installment struct {
	ID                 int32             `json:"id"`
	InvoiceID          int32             `json:"invoice_id"`
	OrgID              int64             `json:"org_id"`
	Number             int32             `json:"installment_number"`
	Label              string            `json:"installment_label"`
	AmountCents        int64             `json:"amount_cents"`
	DueDate            *time.Time        `json:"due_date,omitempty"`
	GracePeriodDays    int32             `json:"grace_period_days"`
	Status             InstallmentStatus `json:"status"`
	PaymentLinkRef     *string           `json:"payment_link_ref,omitempty"`
	LastReminderSentOn *time.Time        `json:"last_reminder_sent_on,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type InstallmentStatus string

const (
	InstallmentStatusPending   InstallmentStatus = "pending"
	InstallmentStatusPaid      InstallmentStatus = "paid"
	InstallmentStatusOverdue   InstallmentStatus = "overdue"
	InstallmentStatusFailed    InstallmentStatus = "failed"
	InstallmentStatusCancelled InstallmentStatus = "cancelled"
)

// IsTerminal reports whether the status is never re-evaluated by sweeps.
func (s InstallmentStatus) IsTerminal() bool {
	return s == InstallmentStatusPaid || s == InstallmentStatusCancelled || s == InstallmentStatusFailed
}

// InstallmentSpec describes one installment of a payment plan before it is
// materialized. Exactly one of AmountCents or Percent must be set; DueDate
// and DueInDays are mutually exclusive and both optional.
type InstallmentSpec struct {
	Label           string     `json:"label"`
	AmountCents     *int64     `json:"amount_cents,omitempty"`
	Percent         *float64   `json:"percent,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	DueInDays       *int       `json:"due_in_days,omitempty"`
	GracePeriodDays *int32     `json:"grace_period_days,omitempty"`
}

// PlanInstallment is a scheduled installment produced by BuildPlan, not yet
// persisted.
type PlanInstallment struct {
	Number          int32
	Label           string
	AmountCents     int64
	DueDate         *time.Time
	GracePeriodDays int32
}
