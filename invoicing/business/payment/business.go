package payment

import (
	"context"
	"time"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository"
)

type Business interface {
	// RecordPayment appends a ledger entry and reconciles the invoice in
	// the same transaction, returning both the entry and the
	// reconciliation outcome.
	RecordPayment(ctx context.Context, in *RecordPaymentInput) (*model.Payment, *model.ReconciliationOutcome, error)

	// DeletePayment removes a ledger entry and reconciles the invoice as
	// if the entry never existed.
	DeletePayment(ctx context.Context, orgID int64, paymentID int32) (*model.ReconciliationOutcome, error)

	// UpdatePayment applies an administrative correction to a ledger
	// entry and reconciles the invoice.
	UpdatePayment(ctx context.Context, in *UpdatePaymentInput) (*model.Payment, *model.ReconciliationOutcome, error)

	ListPayments(ctx context.Context, orgID int64, invoiceID int32) ([]model.Payment, error)
}

type RecordPaymentInput struct {
	OrgID             int64
	InvoiceID         int32
	AmountCents       int64
	PaymentMethod     string
	PaidAt            time.Time
	ExternalReference *string
	Note              *string
	InstallmentID     *int32
}

type UpdatePaymentInput struct {
	OrgID         int64
	PaymentID     int32
	AmountCents   int64
	PaymentMethod string
	PaidAt        time.Time
	Note          *string
}

type business struct {
	repo         *repository.Repository
	stateMachine domain.StateMachine
}

func NewPaymentBusiness(repo *repository.Repository, stateMachine domain.StateMachine) Business {
	return &business{
		repo:         repo,
		stateMachine: stateMachine,
	}
}
