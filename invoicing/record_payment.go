package invoicing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/business/payment"
	"encore.app/invoicing/events"
	"encore.app/invoicing/model"
	"encore.app/invoicing/workflow"
)

type RecordPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	OrgID          int64  `header:"X-Org-ID" json:"-" validate:"required,min=1"`

	AmountCents       int64     `json:"amount_cents" validate:"required,min=1"`
	PaymentMethod     string    `json:"payment_method" validate:"required,oneof=card bank_transfer cash check other"`
	PaidAt            time.Time `json:"paid_at"`
	ExternalReference *string   `json:"external_reference,omitempty" validate:"omitempty,max=100"`
	Note              *string   `json:"note,omitempty" validate:"omitempty,max=500"`
	InstallmentID     *int32    `json:"installment_id,omitempty" validate:"omitempty,min=1"`
}

type PaymentResponse struct {
	Payment        model.Payment               `json:"payment"`
	Reconciliation model.ReconciliationOutcome `json:"reconciliation"`
}

//encore:api public path=/v1/invoices/:id/payments method=POST tag:idempotency
func (s *Service) RecordPayment(ctx context.Context, id int, req *RecordPaymentRequest) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}
	if req.PaidAt.IsZero() {
		req.PaidAt = time.Now()
	}

	entry, outcome, err := s.payments.RecordPayment(ctx, &payment.RecordPaymentInput{
		OrgID:             req.OrgID,
		InvoiceID:         int32(id),
		AmountCents:       req.AmountCents,
		PaymentMethod:     req.PaymentMethod,
		PaidAt:            req.PaidAt,
		ExternalReference: req.ExternalReference,
		Note:              req.Note,
		InstallmentID:     req.InstallmentID,
	})
	if err != nil {
		rlog.Error("failed to record payment", "error", err, "invoice_id", id)
		return nil, err
	}

	s.dispatchReconciliationOutcome(entry.ID, outcome)

	return &PaymentResponse{Payment: *entry, Reconciliation: *outcome}, nil
}

// Validate implements validation for RecordPaymentRequest
func (r *RecordPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// dispatchReconciliationOutcome fans a finished reconciliation out to the
// interested parties: the status-changed topic when the status moved, and the
// invoice's collection workflow so it can stop chasing a settled invoice.
// Both are best effort and run off the request path.
func (s *Service) dispatchReconciliationOutcome(paymentID int32, outcome *model.ReconciliationOutcome) {
	if outcome.StatusChanged {
		ev := &events.InvoiceStatusChanged{
			OrgID:                 outcome.OrgID,
			InvoiceID:             outcome.InvoiceID,
			ClientID:              outcome.ClientID,
			PreviousStatus:        string(outcome.PreviousStatus),
			NewStatus:             string(outcome.Status),
			TotalPaidCents:        outcome.TotalPaidCents,
			RemainingBalanceCents: outcome.RemainingBalanceCents,
			OccurredAt:            time.Now(),
		}
		runAsync("publish-invoice-status-changed", func(ctx context.Context) error {
			return s.publisher.PublishStatusChanged(ctx, ev)
		})
	}

	invoiceID := outcome.InvoiceID
	status := string(outcome.Status)
	runAsync("signal-payment-recorded", func(ctx context.Context) error {
		s.signalCollectionWorkflow(ctx, invoiceID, workflow.PaymentRecordedSignalName, workflow.PaymentRecordedSignal{
			PaymentID: paymentID,
			Status:    status,
		})
		return nil
	})
}
