package invoicing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type ReconcileInvoiceRequest struct {
	OrgID int64 `header:"X-Org-ID" json:"-" validate:"required,min=1"`
}

// ReconcileInvoice recomputes the invoice's paid totals and status from its
// payment ledger. The write path already reconciles after every mutation, so
// this exists for operators repairing drift after a manual database fix.
//
//encore:api public path=/v1/invoices/:id/reconcile method=POST
func (s *Service) ReconcileInvoice(ctx context.Context, id int, req *ReconcileInvoiceRequest) (*ReconciliationResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	outcome, err := s.invoices.Reconcile(ctx, req.OrgID, int32(id), time.Now())
	if err != nil {
		rlog.Error("failed to reconcile invoice", "error", err, "invoice_id", id)
		return nil, err
	}

	return &ReconciliationResponse{Reconciliation: *outcome}, nil
}

// Validate implements validation for ReconcileInvoiceRequest
func (r *ReconcileInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
