package plan

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	invoicebiz "encore.app/invoicing/business/invoice"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/installments"
)

// AttachPaymentLink records the external payment-link reference for an
// installment. A link is attached at most once: re-attaching requires the
// explicit regenerate flag, so webhook retries and double-clicks cannot
// mint a second live payment link for the same installment.
func (b *business) AttachPaymentLink(ctx context.Context, in *AttachPaymentLinkInput) (*model.Installment, error) {
	inst, err := b.repo.Installments.GetInstallment(ctx, installments.GetInstallmentParams{
		ID:    in.InstallmentID,
		OrgID: in.OrgID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "installment not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get installment"}
	}

	if model.InstallmentStatus(inst.Status).IsTerminal() {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "installment is settled, no payment link needed"}
	}
	if inst.PaymentLinkRef.Valid && !in.Regenerate {
		return nil, &errs.Error{Code: errs.AlreadyExists, Message: "installment already has a payment link"}
	}

	updated, err := b.repo.Installments.SetPaymentLinkRef(ctx, installments.SetPaymentLinkRefParams{
		ID:             in.InstallmentID,
		OrgID:          in.OrgID,
		PaymentLinkRef: pgtype.Text{String: in.PaymentLinkRef, Valid: true},
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to attach payment link"}
	}

	result := invoicebiz.ConvertDBInstallmentToModel(updated)
	return &result, nil
}
