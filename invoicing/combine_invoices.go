package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
	"encore.app/invoicing/workflow"
)

type CombineInvoicesRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	OrgID          int64  `header:"X-Org-ID" json:"-" validate:"required,min=1"`

	InvoiceIDs []int32 `json:"invoice_ids" validate:"required,min=2,dive,min=1"`
}

//encore:api public path=/v1/invoices/combine method=POST tag:idempotency
func (s *Service) CombineInvoices(ctx context.Context, req *CombineInvoicesRequest) (*InvoiceResponse, error) {
	result, err := s.invoices.CombineInvoices(ctx, req.OrgID, req.InvoiceIDs)
	if err != nil {
		rlog.Error("failed to combine invoices", "error", err, "invoice_ids", req.InvoiceIDs)
		return nil, err
	}

	// The sources were voided; stop their collection workflows.
	sourceIDs := append([]int32(nil), req.InvoiceIDs...)
	runAsync("signal-combined-sources-voided", func(ctx context.Context) error {
		for _, id := range sourceIDs {
			s.signalCollectionWorkflow(ctx, id, workflow.InvoiceVoidedSignalName, workflow.InvoiceVoidedSignal{Reason: "combined"})
		}
		return nil
	})

	// A combined invoice issued as sent gets its own collection workflow.
	if result.DueAt != nil && result.Status != model.InvoiceStatusDraft {
		if wfErr := s.startCollectionWorkflow(ctx, result); wfErr != nil {
			rlog.Error("workflow start issue", "invoice_id", result.ID, "error", wfErr)
		}
	}

	return &InvoiceResponse{Invoice: *result}, nil
}

// Validate implements validation for CombineInvoicesRequest
func (r *CombineInvoicesRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
