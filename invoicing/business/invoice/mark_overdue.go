package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

// MarkOverdue flips a sent invoice to overdue under the row lock. Invoices
// in any other status are left alone: partial payments keep partially_paid,
// and terminal or pre-delivery statuses are never touched by dunning.
func (b *business) MarkOverdue(ctx context.Context, orgID int64, id int32) (bool, error) {
	changed := false

	err := b.stateMachine.ExecuteWithLock(ctx, orgID, id, func(tx domain.Tx, inv invoices.Invoice) error {
		if model.InvoiceStatus(inv.Status) != model.InvoiceStatusSent {
			return nil
		}

		if _, err := tx.Invoices.UpdateInvoiceStatus(ctx, invoices.UpdateInvoiceStatusParams{
			ID:     id,
			OrgID:  orgID,
			Status: string(model.InvoiceStatusOverdue),
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to mark invoice overdue"}
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}
