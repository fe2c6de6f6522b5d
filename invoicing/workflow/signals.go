package workflow

const (
	// Signal names
	PaymentRecordedSignalName = "payment-recorded"
	InvoiceVoidedSignalName   = "invoice-voided"
)

// PaymentRecordedSignal notifies the collection workflow that a payment was
// recorded (or deleted) against the invoice. The workflow only reacts to the
// resulting status; the activity layer re-reads the invoice before acting, so
// a stale signal is harmless.
type PaymentRecordedSignal struct {
	PaymentID int32  `json:"payment_id"`
	Status    string `json:"status"`
}

// InvoiceVoidedSignal tells the collection workflow to stop chasing the
// invoice because it was voided.
type InvoiceVoidedSignal struct {
	Reason string `json:"reason"`
}
