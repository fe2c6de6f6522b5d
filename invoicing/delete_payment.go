package invoicing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/events"
	"encore.app/invoicing/model"
)

type DeletePaymentRequest struct {
	OrgID int64 `header:"X-Org-ID" json:"-" validate:"required,min=1"`
}

type ReconciliationResponse struct {
	Reconciliation model.ReconciliationOutcome `json:"reconciliation"`
}

//encore:api public path=/v1/payments/:id method=DELETE
func (s *Service) DeletePayment(ctx context.Context, id int, req *DeletePaymentRequest) (*ReconciliationResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid payment ID"}
	}

	outcome, err := s.payments.DeletePayment(ctx, req.OrgID, int32(id))
	if err != nil {
		rlog.Error("failed to delete payment", "error", err, "payment_id", id)
		return nil, err
	}

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

	return &ReconciliationResponse{Reconciliation: *outcome}, nil
}

// Validate implements validation for DeletePaymentRequest
func (r *DeletePaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
