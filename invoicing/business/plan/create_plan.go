package plan

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	invoicebiz "encore.app/invoicing/business/invoice"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/invoices"
)

// CreatePlan builds and persists the installment schedule for an invoice
// under the invoice row lock, replacing any previous open installments.
// Regenerating a plan that already has settled installments is rejected:
// the settled amounts would break the plan-sum invariant.
func (b *business) CreatePlan(ctx context.Context, in *CreatePlanInput) ([]model.Installment, error) {
	var result []model.Installment

	err := b.stateMachine.ExecuteWithLock(ctx, in.OrgID, in.InvoiceID, func(tx domain.Tx, inv invoices.Invoice) error {
		status := model.InvoiceStatus(inv.Status)
		if status == model.InvoiceStatusPaid || status == model.InvoiceStatusVoid {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "cannot create a payment plan for a settled or void invoice"}
		}

		existing, err := tx.Installments.ListInstallmentsByInvoice(ctx, installments.ListInstallmentsByInvoiceParams{
			InvoiceID: in.InvoiceID,
			OrgID:     in.OrgID,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to list installments"}
		}
		for _, inst := range existing {
			if inst.Status == string(model.InstallmentStatusPaid) {
				return &errs.Error{Code: errs.FailedPrecondition, Message: "plan has settled installments and cannot be regenerated"}
			}
		}

		scheduled, err := BuildPlan(inv.AmountCents, inv.IssuedAt.Time, in.Specs)
		if err != nil {
			return err
		}

		if err := tx.Installments.DeleteOpenInstallments(ctx, installments.ByInvoiceParams{
			InvoiceID: in.InvoiceID,
			OrgID:     in.OrgID,
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to clear previous plan"}
		}

		result = make([]model.Installment, 0, len(scheduled))
		for _, s := range scheduled {
			dueDate := pgtype.Date{}
			if s.DueDate != nil {
				dueDate = pgtype.Date{Time: *s.DueDate, Valid: true}
			}

			created, err := tx.Installments.CreateInstallment(ctx, installments.CreateInstallmentParams{
				InvoiceID:         in.InvoiceID,
				OrgID:             in.OrgID,
				InstallmentNumber: s.Number,
				Label:             s.Label,
				AmountCents:       s.AmountCents,
				DueDate:           dueDate,
				GracePeriodDays:   s.GracePeriodDays,
				Status:            string(model.InstallmentStatusPending),
			})
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to create installment"}
			}
			result = append(result, invoicebiz.ConvertDBInstallmentToModel(created))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
