package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/payments"
	"encore.app/invoicing/repository/recurring"
)

// Tx bundles transaction-scoped queriers handed to locked callbacks. Every
// read and write inside a callback goes through these, so cross-entity
// invariants (ledger sum vs. invoice totals) are recomputed and written
// under the same transaction that holds the invoice row lock.
type Tx struct {
	Invoices     invoices.Querier
	Payments     payments.Querier
	Installments installments.Querier
	Recurring    recurring.Querier
}

// StateMachine owns transaction boundaries for invoice mutations. Business
// logic runs inside callbacks with the invoice row locked via
// SELECT ... FOR UPDATE.
type StateMachine interface {
	// ExecuteWithLock locks the invoice row and runs businessLogic inside
	// the transaction. The callback receives the locked row and
	// transaction-scoped queriers.
	ExecuteWithLock(ctx context.Context, orgID int64, invoiceID int32, businessLogic func(tx Tx, inv invoices.Invoice) error) error

	// RunInTx runs businessLogic inside a transaction without locking a
	// specific invoice up front. Callbacks lock whatever rows they need
	// through the transaction-scoped queriers.
	RunInTx(ctx context.Context, businessLogic func(tx Tx) error) error
}

// InvoiceStateMachine is the pgx-backed StateMachine.
type InvoiceStateMachine struct {
	db              *pgxpool.Pool
	invoiceRepo     *invoices.Queries
	paymentRepo     *payments.Queries
	installmentRepo *installments.Queries
	recurringRepo   *recurring.Queries
}

func NewInvoiceStateMachine(db *pgxpool.Pool) *InvoiceStateMachine {
	return &InvoiceStateMachine{
		db:              db,
		invoiceRepo:     invoices.New(db),
		paymentRepo:     payments.New(db),
		installmentRepo: installments.New(db),
		recurringRepo:   recurring.New(db),
	}
}

func (sm *InvoiceStateMachine) ExecuteWithLock(ctx context.Context, orgID int64, invoiceID int32, businessLogic func(tx Tx, inv invoices.Invoice) error) error {
	pgtx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer pgtx.Rollback(ctx)

	tx := sm.txQueriers(pgtx)

	currentInvoice, err := tx.Invoices.GetInvoiceForUpdate(ctx, invoices.GetInvoiceForUpdateParams{
		ID:    invoiceID,
		OrgID: orgID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock invoice"}
	}

	if err := businessLogic(tx, currentInvoice); err != nil {
		return err
	}

	if err := pgtx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit invoice mutation"}
	}
	return nil
}

func (sm *InvoiceStateMachine) RunInTx(ctx context.Context, businessLogic func(tx Tx) error) error {
	pgtx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer pgtx.Rollback(ctx)

	if err := businessLogic(sm.txQueriers(pgtx)); err != nil {
		return err
	}

	if err := pgtx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}
	return nil
}

func (sm *InvoiceStateMachine) txQueriers(pgtx pgx.Tx) Tx {
	return Tx{
		Invoices:     sm.invoiceRepo.WithTx(pgtx),
		Payments:     sm.paymentRepo.WithTx(pgtx),
		Installments: sm.installmentRepo.WithTx(pgtx),
		Recurring:    sm.recurringRepo.WithTx(pgtx),
	}
}
