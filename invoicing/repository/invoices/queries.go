package invoices

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createInvoice = `
INSERT INTO invoices (
	org_id, client_id, number, currency, status,
	amount_cents, discount_cents, tax_cents,
	total_paid_cents, remaining_balance_cents,
	issued_at, due_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, 0, $6, $9, $10
)
RETURNING id, org_id, client_id, number, currency, status, amount_cents,
	discount_cents, tax_cents, total_paid_cents, remaining_balance_cents,
	issued_at, due_at, paid_at, created_at, updated_at
`

type CreateInvoiceParams struct {
	OrgID         int64
	ClientID      int64
	Number        string
	Currency      string
	Status        string
	AmountCents   int64
	DiscountCents int64
	TaxCents      int64
	IssuedAt      pgtype.Timestamptz
	DueAt         pgtype.Timestamptz
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.OrgID,
		arg.ClientID,
		arg.Number,
		arg.Currency,
		arg.Status,
		arg.AmountCents,
		arg.DiscountCents,
		arg.TaxCents,
		arg.IssuedAt,
		arg.DueAt,
	)
	return scanInvoice(row)
}

const getInvoice = `
SELECT id, org_id, client_id, number, currency, status, amount_cents,
	discount_cents, tax_cents, total_paid_cents, remaining_balance_cents,
	issued_at, due_at, paid_at, created_at, updated_at
FROM invoices
WHERE id = $1 AND org_id = $2
`

type GetInvoiceParams struct {
	ID    int32
	OrgID int64
}

func (q *Queries) GetInvoice(ctx context.Context, arg GetInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, getInvoice, arg.ID, arg.OrgID)
	return scanInvoice(row)
}

const getInvoiceForUpdate = `
SELECT id, org_id, client_id, number, currency, status, amount_cents,
	discount_cents, tax_cents, total_paid_cents, remaining_balance_cents,
	issued_at, due_at, paid_at, created_at, updated_at
FROM invoices
WHERE id = $1 AND org_id = $2
FOR UPDATE
`

type GetInvoiceForUpdateParams struct {
	ID    int32
	OrgID int64
}

func (q *Queries) GetInvoiceForUpdate(ctx context.Context, arg GetInvoiceForUpdateParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, getInvoiceForUpdate, arg.ID, arg.OrgID)
	return scanInvoice(row)
}

const listInvoices = `
SELECT id, org_id, client_id, number, currency, status, amount_cents,
	discount_cents, tax_cents, total_paid_cents, remaining_balance_cents,
	issued_at, due_at, paid_at, created_at, updated_at
FROM invoices
WHERE org_id = $1
	AND ($2::text IS NULL OR status = $2)
ORDER BY id DESC
LIMIT $3 OFFSET $4
`

type ListInvoicesParams struct {
	OrgID  int64
	Status pgtype.Text
	Limit  int32
	Offset int32
}

func (q *Queries) ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoices, arg.OrgID, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}

const countInvoices = `
SELECT COUNT(*) FROM invoices
WHERE org_id = $1
	AND ($2::text IS NULL OR status = $2)
`

type CountInvoicesParams struct {
	OrgID  int64
	Status pgtype.Text
}

func (q *Queries) CountInvoices(ctx context.Context, arg CountInvoicesParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countInvoices, arg.OrgID, arg.Status).Scan(&count)
	return count, err
}

const nextInvoiceSequence = `
SELECT COUNT(*) + 1 FROM invoices WHERE org_id = $1
`

func (q *Queries) NextInvoiceSequence(ctx context.Context, orgID int64) (int64, error) {
	var seq int64
	err := q.db.QueryRow(ctx, nextInvoiceSequence, orgID).Scan(&seq)
	return seq, err
}

const updateInvoiceStatus = `
UPDATE invoices
SET status = $3, updated_at = now()
WHERE id = $1 AND org_id = $2
RETURNING id, org_id, client_id, number, currency, status, amount_cents,
	discount_cents, tax_cents, total_paid_cents, remaining_balance_cents,
	issued_at, due_at, paid_at, created_at, updated_at
`

type UpdateInvoiceStatusParams struct {
	ID     int32
	OrgID  int64
	Status string
}

func (q *Queries) UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoiceStatus, arg.ID, arg.OrgID, arg.Status)
	return scanInvoice(row)
}

const updateInvoiceReconciliation = `
UPDATE invoices
SET status = $3,
	total_paid_cents = $4,
	remaining_balance_cents = $5,
	paid_at = $6,
	updated_at = now()
WHERE id = $1 AND org_id = $2
RETURNING id, org_id, client_id, number, currency, status, amount_cents,
	discount_cents, tax_cents, total_paid_cents, remaining_balance_cents,
	issued_at, due_at, paid_at, created_at, updated_at
`

type UpdateInvoiceReconciliationParams struct {
	ID                    int32
	OrgID                 int64
	Status                string
	TotalPaidCents        int64
	RemainingBalanceCents int64
	PaidAt                pgtype.Timestamptz
}

func (q *Queries) UpdateInvoiceReconciliation(ctx context.Context, arg UpdateInvoiceReconciliationParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoiceReconciliation,
		arg.ID,
		arg.OrgID,
		arg.Status,
		arg.TotalPaidCents,
		arg.RemainingBalanceCents,
		arg.PaidAt,
	)
	return scanInvoice(row)
}

const createLineItem = `
INSERT INTO invoice_line_items (invoice_id, org_id, description, quantity, unit_price_cents, amount_cents)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, invoice_id, org_id, description, quantity, unit_price_cents, amount_cents
`

type CreateLineItemParams struct {
	InvoiceID      int32
	OrgID          int64
	Description    string
	Quantity       int32
	UnitPriceCents int64
	AmountCents    int64
}

func (q *Queries) CreateLineItem(ctx context.Context, arg CreateLineItemParams) (InvoiceLineItem, error) {
	row := q.db.QueryRow(ctx, createLineItem,
		arg.InvoiceID,
		arg.OrgID,
		arg.Description,
		arg.Quantity,
		arg.UnitPriceCents,
		arg.AmountCents,
	)
	var li InvoiceLineItem
	err := row.Scan(&li.ID, &li.InvoiceID, &li.OrgID, &li.Description, &li.Quantity, &li.UnitPriceCents, &li.AmountCents)
	return li, err
}

const getLineItemsByInvoice = `
SELECT id, invoice_id, org_id, description, quantity, unit_price_cents, amount_cents
FROM invoice_line_items
WHERE invoice_id = $1 AND org_id = $2
ORDER BY id
`

type GetLineItemsByInvoiceParams struct {
	InvoiceID int32
	OrgID     int64
}

func (q *Queries) GetLineItemsByInvoice(ctx context.Context, arg GetLineItemsByInvoiceParams) ([]InvoiceLineItem, error) {
	rows, err := q.db.Query(ctx, getLineItemsByInvoice, arg.InvoiceID, arg.OrgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InvoiceLineItem
	for rows.Next() {
		var li InvoiceLineItem
		if err := rows.Scan(&li.ID, &li.InvoiceID, &li.OrgID, &li.Description, &li.Quantity, &li.UnitPriceCents, &li.AmountCents); err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanInvoice(row scanner) (Invoice, error) {
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.OrgID,
		&i.ClientID,
		&i.Number,
		&i.Currency,
		&i.Status,
		&i.AmountCents,
		&i.DiscountCents,
		&i.TaxCents,
		&i.TotalPaidCents,
		&i.RemainingBalanceCents,
		&i.IssuedAt,
		&i.DueAt,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
