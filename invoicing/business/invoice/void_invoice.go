package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/invoices"
)

// VoidInvoice voids an unpaid invoice and cancels its open installments.
// Paid invoices are never voided. Voiding a void invoice is idempotent.
func (b *business) VoidInvoice(ctx context.Context, orgID int64, id int32) (*model.Invoice, error) {
	var result *model.Invoice

	err := b.stateMachine.ExecuteWithLock(ctx, orgID, id, func(tx domain.Tx, inv invoices.Invoice) error {
		status := model.InvoiceStatus(inv.Status)
		if status == model.InvoiceStatusVoid {
			result = ConvertDBInvoiceToModel(inv)
			return nil
		}
		if !domain.CanVoid(status) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "paid invoices cannot be voided"}
		}

		updated, err := tx.Invoices.UpdateInvoiceStatus(ctx, invoices.UpdateInvoiceStatusParams{
			ID:     id,
			OrgID:  orgID,
			Status: string(model.InvoiceStatusVoid),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to void invoice"}
		}

		if err := tx.Installments.CancelOpenInstallments(ctx, installments.ByInvoiceParams{
			InvoiceID: id,
			OrgID:     orgID,
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to cancel installments"}
		}

		result = ConvertDBInvoiceToModel(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
