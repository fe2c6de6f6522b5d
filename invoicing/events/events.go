package events

import (
	"time"

	"encore.dev/pubsub"
)

// InvoiceStatusChanged is published after a reconciliation (or explicit
// transition) moved an invoice to a new status. Delivery is decoupled from
// the financial transaction that caused it: publish failures are logged by
// the caller and never roll back the mutation.
type InvoiceStatusChanged struct {
	OrgID                 int64     `json:"org_id"`
	InvoiceID             int32     `json:"invoice_id"`
	ClientID              int64     `json:"client_id"`
	PreviousStatus        string    `json:"previous_status"`
	NewStatus             string    `json:"new_status"`
	TotalPaidCents        int64     `json:"total_paid_cents"`
	RemainingBalanceCents int64     `json:"remaining_balance_cents"`
	OccurredAt            time.Time `json:"occurred_at"`
}

// PaymentReminder asks the notification service to remind a client about a
// due or overdue installment or invoice.
type PaymentReminder struct {
	OrgID         int64      `json:"org_id"`
	InvoiceID     int32      `json:"invoice_id"`
	ClientID      int64      `json:"client_id"`
	InstallmentID *int32     `json:"installment_id,omitempty"`
	Kind          string     `json:"kind"` // due_today or overdue
	DaysOverdue   int        `json:"days_overdue"`
	AmountCents   int64      `json:"amount_cents"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

const (
	ReminderKindDueToday = "due_today"
	ReminderKindOverdue  = "overdue"
)

var InvoiceStatusChangedTopic = pubsub.NewTopic[*InvoiceStatusChanged]("invoice-status-changed", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

var PaymentReminderTopic = pubsub.NewTopic[*PaymentReminder]("payment-reminders", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})
