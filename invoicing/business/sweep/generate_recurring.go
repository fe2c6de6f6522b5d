package sweep

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	invoicebiz "encore.app/invoicing/business/invoice"
	planbiz "encore.app/invoicing/business/plan"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/recurring"
)

// GenerateRecurringInvoices materializes one invoice per due template. Each
// template is processed in its own transaction: the template row is locked
// and re-checked, the invoice and its line items are written, and the
// schedule advances (or the template cancels past its end date) before
// commit. A crashed or repeated sweep therefore either sees the advanced
// date and skips, or redoes the whole unit.
func (b *business) GenerateRecurringInvoices(ctx context.Context, now time.Time) ([]*model.Invoice, error) {
	due, err := b.repo.Recurring.ListDueTemplates(ctx, pgtype.Date{Time: now.UTC(), Valid: true})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list due templates"}
	}

	var generated []*model.Invoice
	for _, tpl := range due {
		inv, err := b.materializeTemplate(ctx, tpl, now)
		if err != nil {
			rlog.Error("failed to materialize recurring template", "error", err, "template_id", tpl.ID, "org_id", tpl.OrgID)
			continue
		}
		if inv != nil {
			generated = append(generated, inv)
		}
	}

	return generated, nil
}

func (b *business) materializeTemplate(ctx context.Context, stale recurring.RecurringTemplate, now time.Time) (*model.Invoice, error) {
	var result *model.Invoice

	err := b.stateMachine.RunInTx(ctx, func(tx domain.Tx) error {
		tplRow, err := tx.Recurring.GetTemplateForUpdate(ctx, recurring.GetTemplateParams{ID: stale.ID, OrgID: stale.OrgID})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to lock template"}
		}

		// Re-check under the lock: a concurrent or earlier run may have
		// already advanced or cancelled this template.
		if tplRow.Status != string(model.RecurringStatusActive) || tplRow.NextInvoiceDate.Time.After(now.UTC()) {
			return nil
		}

		tpl, err := planbiz.ConvertDBTemplateToModel(tplRow)
		if err != nil {
			return err
		}

		var lineItems []model.TemplateLineItem
		if err := json.Unmarshal(tplRow.LineItems, &lineItems); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to unmarshal template line items"}
		}

		var amount int64
		for _, li := range lineItems {
			amount += int64(li.Quantity) * li.UnitPriceCents
		}
		if amount <= 0 {
			return &errs.Error{Code: errs.Internal, Message: "template line items produce a non-positive amount"}
		}

		seq, err := tx.Invoices.NextInvoiceSequence(ctx, tpl.OrgID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to allocate invoice number"}
		}

		dueAt := now.AddDate(0, 0, int(tpl.DueInDays))
		dbInvoice, err := tx.Invoices.CreateInvoice(ctx, invoices.CreateInvoiceParams{
			OrgID:       tpl.OrgID,
			ClientID:    tpl.ClientID,
			Number:      fmt.Sprintf("INV-%d-%04d", now.Year(), seq),
			Currency:    tpl.Currency,
			Status:      string(model.InvoiceStatusSent),
			AmountCents: amount,
			IssuedAt:    pgtype.Timestamptz{Time: now, Valid: true},
			DueAt:       pgtype.Timestamptz{Time: dueAt, Valid: true},
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to create recurring invoice"}
		}

		result = invoicebiz.ConvertDBInvoiceToModel(dbInvoice)

		for _, li := range lineItems {
			item, err := tx.Invoices.CreateLineItem(ctx, invoices.CreateLineItemParams{
				InvoiceID:      dbInvoice.ID,
				OrgID:          tpl.OrgID,
				Description:    li.Description,
				Quantity:       li.Quantity,
				UnitPriceCents: li.UnitPriceCents,
				AmountCents:    int64(li.Quantity) * li.UnitPriceCents,
			})
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to create recurring line item"}
			}
			result.LineItems = append(result.LineItems, model.LineItem{
				ID:             item.ID,
				InvoiceID:      item.InvoiceID,
				Description:    item.Description,
				Quantity:       item.Quantity,
				UnitPriceCents: item.UnitPriceCents,
				AmountCents:    item.AmountCents,
			})
		}

		next, cancelled, err := planbiz.Advance(tpl, now)
		if err != nil {
			return err
		}
		if cancelled {
			if _, err := tx.Recurring.UpdateTemplateStatus(ctx, recurring.UpdateTemplateStatusParams{
				ID:     tpl.ID,
				OrgID:  tpl.OrgID,
				Status: string(model.RecurringStatusCancelled),
			}); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to cancel exhausted template"}
			}
			return nil
		}

		if _, err := tx.Recurring.UpdateTemplateSchedule(ctx, recurring.UpdateTemplateScheduleParams{
			ID:              tpl.ID,
			OrgID:           tpl.OrgID,
			NextInvoiceDate: pgtype.Date{Time: next, Valid: true},
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to advance template schedule"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
