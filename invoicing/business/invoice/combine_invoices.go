package invoice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/invoices"
)

// CombineInvoices merges two or more open invoices for the same client into
// one new invoice with a synthetic line item per source, then voids the
// sources. All sources are locked in id order inside a single transaction
// and re-validated under the lock: if any became paid or void concurrently
// the whole operation aborts with a conflict and nothing is changed.
func (b *business) CombineInvoices(ctx context.Context, orgID int64, invoiceIDs []int32) (*model.Invoice, error) {
	ids := dedupeIDs(invoiceIDs)
	if len(ids) < 2 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "combining requires at least two distinct invoices"}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result *model.Invoice
	err := b.stateMachine.RunInTx(ctx, func(tx domain.Tx) error {
		sources := make([]invoices.Invoice, 0, len(ids))
		for _, id := range ids {
			src, err := tx.Invoices.GetInvoiceForUpdate(ctx, invoices.GetInvoiceForUpdateParams{ID: id, OrgID: orgID})
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return &errs.Error{Code: errs.NotFound, Message: fmt.Sprintf("invoice %d not found", id)}
				}
				return &errs.Error{Code: errs.Internal, Message: "failed to lock source invoice"}
			}
			sources = append(sources, src)
		}

		first := sources[0]
		var totalAmount int64
		anySent := false
		for _, src := range sources {
			if src.ClientID != first.ClientID {
				return &errs.Error{Code: errs.InvalidArgument, Message: "all invoices must belong to the same client"}
			}
			if src.Currency != first.Currency {
				return &errs.Error{Code: errs.InvalidArgument, Message: "all invoices must share one currency"}
			}
			if !domain.Combinable(model.InvoiceStatus(src.Status)) {
				return &errs.Error{Code: errs.Aborted, Message: fmt.Sprintf("invoice %s is %s and cannot be combined", src.Number, src.Status)}
			}
			if src.TotalPaidCents > 0 {
				return &errs.Error{Code: errs.FailedPrecondition, Message: fmt.Sprintf("invoice %s has recorded payments and cannot be combined", src.Number)}
			}
			totalAmount += src.AmountCents
			if src.Status == string(model.InvoiceStatusSent) || src.Status == string(model.InvoiceStatusOverdue) {
				anySent = true
			}
		}

		status := model.InvoiceStatusDraft
		if anySent {
			status = model.InvoiceStatusSent
		}

		now := time.Now()
		seq, err := tx.Invoices.NextInvoiceSequence(ctx, orgID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to allocate invoice number"}
		}

		combined, err := tx.Invoices.CreateInvoice(ctx, invoices.CreateInvoiceParams{
			OrgID:       orgID,
			ClientID:    first.ClientID,
			Number:      fmt.Sprintf("INV-%d-%04d", now.Year(), seq),
			Currency:    first.Currency,
			Status:      string(status),
			AmountCents: totalAmount,
			IssuedAt:    pgtype.Timestamptz{Time: now, Valid: true},
			DueAt:       latestDueAt(sources),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to create combined invoice"}
		}

		result = ConvertDBInvoiceToModel(combined)

		for _, src := range sources {
			item, err := tx.Invoices.CreateLineItem(ctx, invoices.CreateLineItemParams{
				InvoiceID:      combined.ID,
				OrgID:          orgID,
				Description:    fmt.Sprintf("Balance of invoice %s", src.Number),
				Quantity:       1,
				UnitPriceCents: src.AmountCents,
				AmountCents:    src.AmountCents,
			})
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to create combined line item"}
			}
			result.LineItems = append(result.LineItems, convertDBLineItemToModel(item))

			if _, err := tx.Invoices.UpdateInvoiceStatus(ctx, invoices.UpdateInvoiceStatusParams{
				ID:     src.ID,
				OrgID:  orgID,
				Status: string(model.InvoiceStatusVoid),
			}); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to void source invoice"}
			}
			if err := tx.Installments.CancelOpenInstallments(ctx, installments.ByInvoiceParams{
				InvoiceID: src.ID,
				OrgID:     orgID,
			}); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to cancel source installments"}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func dedupeIDs(ids []int32) []int32 {
	seen := make(map[int32]bool, len(ids))
	out := make([]int32, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func latestDueAt(sources []invoices.Invoice) pgtype.Timestamptz {
	var latest pgtype.Timestamptz
	for _, src := range sources {
		if src.DueAt.Valid && (!latest.Valid || src.DueAt.Time.After(latest.Time)) {
			latest = src.DueAt
		}
	}
	return latest
}
