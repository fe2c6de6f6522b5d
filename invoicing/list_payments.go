package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
)

type ListPaymentsRequest struct {
	OrgID int64 `header:"X-Org-ID" json:"-" validate:"required,min=1"`
}

type ListPaymentsResponse struct {
	Payments []model.Payment `json:"payments"`
}

//encore:api public path=/v1/invoices/:id/payments method=GET
func (s *Service) ListPayments(ctx context.Context, id int, req *ListPaymentsRequest) (*ListPaymentsResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	payments, err := s.payments.ListPayments(ctx, req.OrgID, int32(id))
	if err != nil {
		rlog.Error("failed to list payments", "error", err, "invoice_id", id)
		return nil, err
	}

	return &ListPaymentsResponse{Payments: payments}, nil
}

// Validate implements validation for ListPaymentsRequest
func (r *ListPaymentsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
