package invoices

import (
	"context"
)

type Querier interface {
	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	GetInvoice(ctx context.Context, arg GetInvoiceParams) (Invoice, error)
	GetInvoiceForUpdate(ctx context.Context, arg GetInvoiceForUpdateParams) (Invoice, error)
	ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error)
	CountInvoices(ctx context.Context, arg CountInvoicesParams) (int64, error)
	NextInvoiceSequence(ctx context.Context, orgID int64) (int64, error)
	UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error)
	UpdateInvoiceReconciliation(ctx context.Context, arg UpdateInvoiceReconciliationParams) (Invoice, error)
	CreateLineItem(ctx context.Context, arg CreateLineItemParams) (InvoiceLineItem, error)
	GetLineItemsByInvoice(ctx context.Context, arg GetLineItemsByInvoiceParams) ([]InvoiceLineItem, error)
}

var _ Querier = (*Queries)(nil)
