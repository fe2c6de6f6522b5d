package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/workflow"
)

type VoidInvoiceRequest struct {
	OrgID int64 `header:"X-Org-ID" json:"-" validate:"required,min=1"`

	Reason string `json:"reason" validate:"required,max=255"`
}

//encore:api public path=/v1/invoices/:id/void method=POST tag:idempotency
func (s *Service) VoidInvoice(ctx context.Context, id int, req *VoidInvoiceRequest) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.invoices.VoidInvoice(ctx, req.OrgID, int32(id))
	if err != nil {
		rlog.Error("failed to void invoice", "error", err, "id", id)
		return nil, err
	}

	// Tell the collection workflow to stop chasing this invoice. The signal
	// is best effort; the reminder activity re-reads the invoice anyway.
	invoiceID := result.ID
	reason := req.Reason
	runAsync("signal-invoice-voided", func(ctx context.Context) error {
		s.signalCollectionWorkflow(ctx, invoiceID, workflow.InvoiceVoidedSignalName, workflow.InvoiceVoidedSignal{Reason: reason})
		return nil
	})

	return &InvoiceResponse{Invoice: *result}, nil
}

// Validate implements validation for VoidInvoiceRequest
func (r *VoidInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// signalCollectionWorkflow delivers a signal to the invoice's collection
// workflow. A missing workflow is not an error: draft invoices and invoices
// without a due date never had one started.
func (s *Service) signalCollectionWorkflow(ctx context.Context, invoiceID int32, signalName string, payload any) {
	workflowID := collectionWorkflowID(invoiceID)
	if err := s.temporal.SignalWorkflow(ctx, workflowID, "", signalName, payload); err != nil {
		rlog.Debug("collection workflow signal not delivered", "invoice_id", invoiceID, "signal", signalName, "error", err)
	}
}
