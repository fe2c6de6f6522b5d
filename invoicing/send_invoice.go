package invoicing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/workflow"
)

type SendInvoiceRequest struct {
	OrgID int64 `header:"X-Org-ID" json:"-" validate:"required,min=1"`
}

//encore:api public path=/v1/invoices/:id/send method=POST tag:idempotency
func (s *Service) SendInvoice(ctx context.Context, id int, req *SendInvoiceRequest) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.invoices.SendInvoice(ctx, req.OrgID, int32(id))
	if err != nil {
		rlog.Error("failed to send invoice", "error", err, "id", id)
		return nil, err
	}

	// Start the collection workflow that chases payment for this invoice.
	if result.DueAt != nil {
		if wfErr := s.startCollectionWorkflow(ctx, result); wfErr != nil {
			// We intentionally do not fail the overall request, but we emit structured context
			rlog.Error("workflow start issue", "invoice_id", result.ID, "error", wfErr)
		}
	}

	return &InvoiceResponse{Invoice: *result}, nil
}

// Validate implements validation for SendInvoiceRequest
func (r *SendInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// collectionWorkflowID derives the deterministic workflow ID for an invoice,
// so retried sends reuse the running workflow instead of spawning another.
func collectionWorkflowID(invoiceID int32) string {
	return fmt.Sprintf("collect-invoice-%d", invoiceID)
}

// startCollectionWorkflow starts the Temporal workflow that handles overdue
// transitions and payment reminders for a sent invoice.
func (s *Service) startCollectionWorkflow(ctx context.Context, inv *model.Invoice) error {
	return startCollectionWorkflowWith(ctx, s.temporal, inv)
}

func startCollectionWorkflowWith(ctx context.Context, c client.Client, inv *model.Invoice) error {
	workflowID := collectionWorkflowID(inv.ID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.CollectionWorkflowParams{
		InvoiceID:       inv.ID,
		OrgID:           inv.OrgID,
		ClientID:        inv.ClientID,
		DueAt:           *inv.DueAt,
		GracePeriodDays: domain.DefaultGracePeriodDays,
	}

	_, err := c.ExecuteWorkflow(ctx, options, workflow.Collection, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "invoice_id", inv.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
