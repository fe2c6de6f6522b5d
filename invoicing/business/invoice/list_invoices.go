package invoice

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

type ListInvoicesInput struct {
	OrgID  int64
	Status *model.InvoiceStatus
	Limit  int32
	Offset int32
}

func (b *business) ListInvoices(ctx context.Context, in ListInvoicesInput) ([]*model.Invoice, int64, error) {
	status := pgtype.Text{}
	if in.Status != nil {
		status = pgtype.Text{String: string(*in.Status), Valid: true}
	}

	dbInvoices, err := b.repo.Invoices.ListInvoices(ctx, invoices.ListInvoicesParams{
		OrgID:  in.OrgID,
		Status: status,
		Limit:  in.Limit,
		Offset: in.Offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list invoices"}
	}

	total, err := b.repo.Invoices.CountInvoices(ctx, invoices.CountInvoicesParams{
		OrgID:  in.OrgID,
		Status: status,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count invoices"}
	}

	result := make([]*model.Invoice, len(dbInvoices))
	for i, dbInvoice := range dbInvoices {
		result[i] = ConvertDBInvoiceToModel(dbInvoice)
	}

	return result, total, nil
}
