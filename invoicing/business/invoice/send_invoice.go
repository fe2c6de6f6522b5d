package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

// SendInvoice transitions a draft invoice to sent. Sending an already-sent
// invoice is an idempotent no-op.
func (b *business) SendInvoice(ctx context.Context, orgID int64, id int32) (*model.Invoice, error) {
	var result *model.Invoice

	err := b.stateMachine.ExecuteWithLock(ctx, orgID, id, func(tx domain.Tx, inv invoices.Invoice) error {
		status := model.InvoiceStatus(inv.Status)
		if status == model.InvoiceStatusSent {
			result = ConvertDBInvoiceToModel(inv)
			return nil
		}
		if !domain.CanSend(status) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "only draft invoices can be sent"}
		}

		updated, err := tx.Invoices.UpdateInvoiceStatus(ctx, invoices.UpdateInvoiceStatusParams{
			ID:     id,
			OrgID:  orgID,
			Status: string(model.InvoiceStatusSent),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to send invoice"}
		}

		result = ConvertDBInvoiceToModel(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
