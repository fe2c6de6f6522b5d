package payment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/payments"
)

func (b *business) ListPayments(ctx context.Context, orgID int64, invoiceID int32) ([]model.Payment, error) {
	dbPayments, err := b.repo.Payments.ListPaymentsByInvoice(ctx, payments.ListPaymentsByInvoiceParams{
		InvoiceID: invoiceID,
		OrgID:     orgID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []model.Payment{}, nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list payments"}
	}

	result := make([]model.Payment, len(dbPayments))
	for i, p := range dbPayments {
		result[i] = *convertDBPaymentToModel(p)
	}
	return result, nil
}
