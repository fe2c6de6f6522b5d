package invoice

import (
	"context"
	"time"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository"
)

type Business interface {
	CreateInvoice(ctx context.Context, in *CreateInvoiceInput) (*model.Invoice, error)
	GetInvoice(ctx context.Context, orgID int64, id int32) (*model.Invoice, error)
	ListInvoices(ctx context.Context, in ListInvoicesInput) ([]*model.Invoice, int64, error)
	SendInvoice(ctx context.Context, orgID int64, id int32) (*model.Invoice, error)
	VoidInvoice(ctx context.Context, orgID int64, id int32) (*model.Invoice, error)
	CombineInvoices(ctx context.Context, orgID int64, invoiceIDs []int32) (*model.Invoice, error)

	// Reconcile recomputes the derived payment fields from the ledger
	// under the invoice row lock. It never dispatches notifications; the
	// caller decides what to do with the outcome.
	Reconcile(ctx context.Context, orgID int64, id int32, now time.Time) (*model.ReconciliationOutcome, error)

	// MarkOverdue flips a sent invoice to overdue. Returns false without
	// error when the invoice is in any other status.
	MarkOverdue(ctx context.Context, orgID int64, id int32) (bool, error)
}

type business struct {
	repo         *repository.Repository
	stateMachine domain.StateMachine
}

func NewInvoiceBusiness(repo *repository.Repository, stateMachine domain.StateMachine) Business {
	return &business{
		repo:         repo,
		stateMachine: stateMachine,
	}
}
