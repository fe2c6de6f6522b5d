package invoicing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/business/payment"
)

type UpdatePaymentRequest struct {
	OrgID int64 `header:"X-Org-ID" json:"-" validate:"required,min=1"`

	AmountCents   int64     `json:"amount_cents" validate:"required,min=1"`
	PaymentMethod string    `json:"payment_method" validate:"required,oneof=card bank_transfer cash check other"`
	PaidAt        time.Time `json:"paid_at" validate:"required"`
	Note          *string   `json:"note,omitempty" validate:"omitempty,max=500"`
}

//encore:api public path=/v1/payments/:id method=PATCH
func (s *Service) UpdatePayment(ctx context.Context, id int, req *UpdatePaymentRequest) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid payment ID"}
	}

	entry, outcome, err := s.payments.UpdatePayment(ctx, &payment.UpdatePaymentInput{
		OrgID:         req.OrgID,
		PaymentID:     int32(id),
		AmountCents:   req.AmountCents,
		PaymentMethod: req.PaymentMethod,
		PaidAt:        req.PaidAt,
		Note:          req.Note,
	})
	if err != nil {
		rlog.Error("failed to update payment", "error", err, "payment_id", id)
		return nil, err
	}

	s.dispatchReconciliationOutcome(entry.ID, outcome)

	return &PaymentResponse{Payment: *entry, Reconciliation: *outcome}, nil
}

// Validate implements validation for UpdatePaymentRequest
func (r *UpdatePaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
