package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

type CreateInvoiceInput struct {
	OrgID         int64
	ClientID      int64
	Currency      string
	LineItems     []LineItemInput
	DiscountCents int64
	TaxCents      int64
	IssuedAt      time.Time
	DueAt         *time.Time
	Status        model.InvoiceStatus
}

type LineItemInput struct {
	Description    string
	Quantity       int32
	UnitPriceCents int64
}

// CreateInvoice writes the invoice and its line items in one transaction.
// The invoice amount is derived from the line items minus discount plus tax;
// it is never accepted from the caller.
func (b *business) CreateInvoice(ctx context.Context, in *CreateInvoiceInput) (*model.Invoice, error) {
	if len(in.LineItems) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invoice requires at least one line item"}
	}

	var subtotal int64
	for _, li := range in.LineItems {
		if li.Quantity <= 0 || li.UnitPriceCents <= 0 {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "line item quantity and unit price must be positive"}
		}
		subtotal += int64(li.Quantity) * li.UnitPriceCents
	}

	amount := subtotal - in.DiscountCents + in.TaxCents
	if amount <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invoice amount must be positive after discount and tax"}
	}

	status := in.Status
	if status == "" {
		status = model.InvoiceStatusDraft
	}

	var result *model.Invoice
	err := b.stateMachine.RunInTx(ctx, func(tx domain.Tx) error {
		seq, err := tx.Invoices.NextInvoiceSequence(ctx, in.OrgID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to allocate invoice number"}
		}

		dueAt := pgtype.Timestamptz{}
		if in.DueAt != nil {
			dueAt = pgtype.Timestamptz{Time: *in.DueAt, Valid: true}
		}

		dbInvoice, err := tx.Invoices.CreateInvoice(ctx, invoices.CreateInvoiceParams{
			OrgID:         in.OrgID,
			ClientID:      in.ClientID,
			Number:        fmt.Sprintf("INV-%d-%04d", in.IssuedAt.Year(), seq),
			Currency:      in.Currency,
			Status:        string(status),
			AmountCents:   amount,
			DiscountCents: in.DiscountCents,
			TaxCents:      in.TaxCents,
			IssuedAt:      pgtype.Timestamptz{Time: in.IssuedAt, Valid: true},
			DueAt:         dueAt,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to create invoice"}
		}

		result = ConvertDBInvoiceToModel(dbInvoice)

		for _, li := range in.LineItems {
			dbItem, err := tx.Invoices.CreateLineItem(ctx, invoices.CreateLineItemParams{
				InvoiceID:      dbInvoice.ID,
				OrgID:          in.OrgID,
				Description:    li.Description,
				Quantity:       li.Quantity,
				UnitPriceCents: li.UnitPriceCents,
				AmountCents:    int64(li.Quantity) * li.UnitPriceCents,
			})
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to create line item"}
			}
			result.LineItems = append(result.LineItems, convertDBLineItemToModel(dbItem))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
