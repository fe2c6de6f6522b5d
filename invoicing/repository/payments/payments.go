package payments

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Payment struct {
	ID                int32
	InvoiceID         int32
	OrgID             int64
	AmountCents       int64
	PaymentMethod     pgtype.Text
	PaidAt            pgtype.Timestamptz
	ExternalReference pgtype.Text
	Note              pgtype.Text
	CreatedAt         pgtype.Timestamptz
}

type Querier interface {
	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	GetPayment(ctx context.Context, arg GetPaymentParams) (Payment, error)
	DeletePayment(ctx context.Context, arg DeletePaymentParams) (Payment, error)
	ListPaymentsByInvoice(ctx context.Context, arg ListPaymentsByInvoiceParams) ([]Payment, error)
	SumPaymentsByInvoice(ctx context.Context, arg SumPaymentsByInvoiceParams) (int64, error)
	UpdatePayment(ctx context.Context, arg UpdatePaymentParams) (Payment, error)
}

var _ Querier = (*Queries)(nil)

const createPayment = `
INSERT INTO payments (invoice_id, org_id, amount_cents, payment_method, paid_at, external_reference, note)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, invoice_id, org_id, amount_cents, payment_method, paid_at, external_reference, note, created_at
`

type CreatePaymentParams struct {
	InvoiceID         int32
	OrgID             int64
	AmountCents       int64
	PaymentMethod     pgtype.Text
	PaidAt            pgtype.Timestamptz
	ExternalReference pgtype.Text
	Note              pgtype.Text
}

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, createPayment,
		arg.InvoiceID,
		arg.OrgID,
		arg.AmountCents,
		arg.PaymentMethod,
		arg.PaidAt,
		arg.ExternalReference,
		arg.Note,
	)
	return scanPayment(row)
}

const getPayment = `
SELECT id, invoice_id, org_id, amount_cents, payment_method, paid_at, external_reference, note, created_at
FROM payments
WHERE id = $1 AND org_id = $2
`

type GetPaymentParams struct {
	ID    int32
	OrgID int64
}

func (q *Queries) GetPayment(ctx context.Context, arg GetPaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, getPayment, arg.ID, arg.OrgID)
	return scanPayment(row)
}

const deletePayment = `
DELETE FROM payments
WHERE id = $1 AND org_id = $2
RETURNING id, invoice_id, org_id, amount_cents, payment_method, paid_at, external_reference, note, created_at
`

type DeletePaymentParams struct {
	ID    int32
	OrgID int64
}

func (q *Queries) DeletePayment(ctx context.Context, arg DeletePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, deletePayment, arg.ID, arg.OrgID)
	return scanPayment(row)
}

const listPaymentsByInvoice = `
SELECT id, invoice_id, org_id, amount_cents, payment_method, paid_at, external_reference, note, created_at
FROM payments
WHERE invoice_id = $1 AND org_id = $2
ORDER BY paid_at, id
`

type ListPaymentsByInvoiceParams struct {
	InvoiceID int32
	OrgID     int64
}

func (q *Queries) ListPaymentsByInvoice(ctx context.Context, arg ListPaymentsByInvoiceParams) ([]Payment, error) {
	rows, err := q.db.Query(ctx, listPaymentsByInvoice, arg.InvoiceID, arg.OrgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const sumPaymentsByInvoice = `
SELECT COALESCE(SUM(amount_cents), 0)::bigint
FROM payments
WHERE invoice_id = $1 AND org_id = $2
`

type SumPaymentsByInvoiceParams struct {
	InvoiceID int32
	OrgID     int64
}

func (q *Queries) SumPaymentsByInvoice(ctx context.Context, arg SumPaymentsByInvoiceParams) (int64, error) {
	var sum int64
	err := q.db.QueryRow(ctx, sumPaymentsByInvoice, arg.InvoiceID, arg.OrgID).Scan(&sum)
	return sum, err
}

const updatePayment = `
UPDATE payments
SET amount_cents = $3, payment_method = $4, paid_at = $5, note = $6
WHERE id = $1 AND org_id = $2
RETURNING id, invoice_id, org_id, amount_cents, payment_method, paid_at, external_reference, note, created_at
`

type UpdatePaymentParams struct {
	ID            int32
	OrgID         int64
	AmountCents   int64
	PaymentMethod pgtype.Text
	PaidAt        pgtype.Timestamptz
	Note          pgtype.Text
}

func (q *Queries) UpdatePayment(ctx context.Context, arg UpdatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, updatePayment,
		arg.ID,
		arg.OrgID,
		arg.AmountCents,
		arg.PaymentMethod,
		arg.PaidAt,
		arg.Note,
	)
	return scanPayment(row)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row scanner) (Payment, error) {
	var p Payment
	err := row.Scan(
		&p.ID,
		&p.InvoiceID,
		&p.OrgID,
		&p.AmountCents,
		&p.PaymentMethod,
		&p.PaidAt,
		&p.ExternalReference,
		&p.Note,
		&p.CreatedAt,
	)
	return p, err
}
