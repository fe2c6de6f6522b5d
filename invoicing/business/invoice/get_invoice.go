package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/invoices"
)

// GetInvoice retrieves an invoice with its line items and installments,
// scoped to the caller's organization.
func (b *business) GetInvoice(ctx context.Context, orgID int64, id int32) (*model.Invoice, error) {
	dbInvoice, err := b.repo.Invoices.GetInvoice(ctx, invoices.GetInvoiceParams{ID: id, OrgID: orgID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice"}
	}

	inv := ConvertDBInvoiceToModel(dbInvoice)

	dbItems, err := b.repo.Invoices.GetLineItemsByInvoice(ctx, invoices.GetLineItemsByInvoiceParams{InvoiceID: id, OrgID: orgID})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get line items"}
	}
	for _, item := range dbItems {
		inv.LineItems = append(inv.LineItems, convertDBLineItemToModel(item))
	}

	dbInstallments, err := b.repo.Installments.ListInstallmentsByInvoice(ctx, installments.ListInstallmentsByInvoiceParams{InvoiceID: id, OrgID: orgID})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get installments"}
	}
	for _, inst := range dbInstallments {
		inv.Installments = append(inv.Installments, ConvertDBInstallmentToModel(inst))
	}

	return inv, nil
}
