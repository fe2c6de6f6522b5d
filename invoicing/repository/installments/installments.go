package installments

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Installment struct {
	ID                 int32
	InvoiceID          int32
	OrgID              int64
	InstallmentNumber  int32
	Label              string
	AmountCents        int64
	DueDate            pgtype.Date
	GracePeriodDays    int32
	Status             string
	PaymentLinkRef     pgtype.Text
	LastReminderSentOn pgtype.Date
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

// ListDueInstallmentsRow joins the owning invoice's client for reminder
// dispatch without a second lookup per installment.
type ListDueInstallmentsRow struct {
	Installment   Installment
	ClientID      int64
	InvoiceStatus string
}

type Querier interface {
	CreateInstallment(ctx context.Context, arg CreateInstallmentParams) (Installment, error)
	GetInstallment(ctx context.Context, arg GetInstallmentParams) (Installment, error)
	ListInstallmentsByInvoice(ctx context.Context, arg ListInstallmentsByInvoiceParams) ([]Installment, error)
	ListDueInstallments(ctx context.Context, dueOnOrBefore pgtype.Date) ([]ListDueInstallmentsRow, error)
	UpdateInstallmentStatus(ctx context.Context, arg UpdateInstallmentStatusParams) (Installment, error)
	SetPaymentLinkRef(ctx context.Context, arg SetPaymentLinkRefParams) (Installment, error)
	SetLastReminderSentOn(ctx context.Context, arg SetLastReminderSentOnParams) error
	MarkOpenInstallmentsPaid(ctx context.Context, arg ByInvoiceParams) error
	CancelOpenInstallments(ctx context.Context, arg ByInvoiceParams) error
	DeleteOpenInstallments(ctx context.Context, arg ByInvoiceParams) error
}

var _ Querier = (*Queries)(nil)

const installmentColumns = `id, invoice_id, org_id, installment_number, installment_label,
	amount_cents, due_date, grace_period_days, status, payment_link_ref,
	last_reminder_sent_on, created_at, updated_at`

const createInstallment = `
INSERT INTO installments (invoice_id, org_id, installment_number, installment_label,
	amount_cents, due_date, grace_period_days, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + installmentColumns

type CreateInstallmentParams struct {
	InvoiceID         int32
	OrgID             int64
	InstallmentNumber int32
	Label             string
	AmountCents       int64
	DueDate           pgtype.Date
	GracePeriodDays   int32
	Status            string
}

func (q *Queries) CreateInstallment(ctx context.Context, arg CreateInstallmentParams) (Installment, error) {
	row := q.db.QueryRow(ctx, createInstallment,
		arg.InvoiceID,
		arg.OrgID,
		arg.InstallmentNumber,
		arg.Label,
		arg.AmountCents,
		arg.DueDate,
		arg.GracePeriodDays,
		arg.Status,
	)
	return scanInstallment(row)
}

const getInstallment = `
SELECT ` + installmentColumns + `
FROM installments
WHERE id = $1 AND org_id = $2
`

type GetInstallmentParams struct {
	ID    int32
	OrgID int64
}

func (q *Queries) GetInstallment(ctx context.Context, arg GetInstallmentParams) (Installment, error) {
	row := q.db.QueryRow(ctx, getInstallment, arg.ID, arg.OrgID)
	return scanInstallment(row)
}

const listInstallmentsByInvoice = `
SELECT ` + installmentColumns + `
FROM installments
WHERE invoice_id = $1 AND org_id = $2
ORDER BY installment_number
`

type ListInstallmentsByInvoiceParams struct {
	InvoiceID int32
	OrgID     int64
}

func (q *Queries) ListInstallmentsByInvoice(ctx context.Context, arg ListInstallmentsByInvoiceParams) ([]Installment, error) {
	rows, err := q.db.Query(ctx, listInstallmentsByInvoice, arg.InvoiceID, arg.OrgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Installment
	for rows.Next() {
		in, err := scanInstallment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, in)
	}
	return items, rows.Err()
}

const listDueInstallments = `
SELECT i.id, i.invoice_id, i.org_id, i.installment_number, i.installment_label,
	i.amount_cents, i.due_date, i.grace_period_days, i.status, i.payment_link_ref,
	i.last_reminder_sent_on, i.created_at, i.updated_at,
	inv.client_id, inv.status
FROM installments i
JOIN invoices inv ON inv.id = i.invoice_id AND inv.org_id = i.org_id
WHERE i.status IN ('pending', 'overdue')
	AND i.due_date IS NOT NULL
	AND i.due_date <= $1
	AND inv.status NOT IN ('void', 'draft', 'paid')
ORDER BY i.org_id, i.invoice_id, i.installment_number
`

func (q *Queries) ListDueInstallments(ctx context.Context, dueOnOrBefore pgtype.Date) ([]ListDueInstallmentsRow, error) {
	rows, err := q.db.Query(ctx, listDueInstallments, dueOnOrBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListDueInstallmentsRow
	for rows.Next() {
		var r ListDueInstallmentsRow
		if err := rows.Scan(
			&r.Installment.ID,
			&r.Installment.InvoiceID,
			&r.Installment.OrgID,
			&r.Installment.InstallmentNumber,
			&r.Installment.Label,
			&r.Installment.AmountCents,
			&r.Installment.DueDate,
			&r.Installment.GracePeriodDays,
			&r.Installment.Status,
			&r.Installment.PaymentLinkRef,
			&r.Installment.LastReminderSentOn,
			&r.Installment.CreatedAt,
			&r.Installment.UpdatedAt,
			&r.ClientID,
			&r.InvoiceStatus,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const updateInstallmentStatus = `
UPDATE installments
SET status = $3, updated_at = now()
WHERE id = $1 AND org_id = $2
RETURNING ` + installmentColumns

type UpdateInstallmentStatusParams struct {
	ID     int32
	OrgID  int64
	Status string
}

func (q *Queries) UpdateInstallmentStatus(ctx context.Context, arg UpdateInstallmentStatusParams) (Installment, error) {
	row := q.db.QueryRow(ctx, updateInstallmentStatus, arg.ID, arg.OrgID, arg.Status)
	return scanInstallment(row)
}

const setPaymentLinkRef = `
UPDATE installments
SET payment_link_ref = $3, updated_at = now()
WHERE id = $1 AND org_id = $2
RETURNING ` + installmentColumns

type SetPaymentLinkRefParams struct {
	ID             int32
	OrgID          int64
	PaymentLinkRef pgtype.Text
}

func (q *Queries) SetPaymentLinkRef(ctx context.Context, arg SetPaymentLinkRefParams) (Installment, error) {
	row := q.db.QueryRow(ctx, setPaymentLinkRef, arg.ID, arg.OrgID, arg.PaymentLinkRef)
	return scanInstallment(row)
}

const setLastReminderSentOn = `
UPDATE installments
SET last_reminder_sent_on = $3, updated_at = now()
WHERE id = $1 AND org_id = $2
`

type SetLastReminderSentOnParams struct {
	ID     int32
	OrgID  int64
	SentOn pgtype.Date
}

func (q *Queries) SetLastReminderSentOn(ctx context.Context, arg SetLastReminderSentOnParams) error {
	_, err := q.db.Exec(ctx, setLastReminderSentOn, arg.ID, arg.OrgID, arg.SentOn)
	return err
}

const markOpenInstallmentsPaid = `
UPDATE installments
SET status = 'paid', updated_at = now()
WHERE invoice_id = $1 AND org_id = $2 AND status IN ('pending', 'overdue')
`

type ByInvoiceParams struct {
	InvoiceID int32
	OrgID     int64
}

func (q *Queries) MarkOpenInstallmentsPaid(ctx context.Context, arg ByInvoiceParams) error {
	_, err := q.db.Exec(ctx, markOpenInstallmentsPaid, arg.InvoiceID, arg.OrgID)
	return err
}

const cancelOpenInstallments = `
UPDATE installments
SET status = 'cancelled', updated_at = now()
WHERE invoice_id = $1 AND org_id = $2 AND status IN ('pending', 'overdue')
`

func (q *Queries) CancelOpenInstallments(ctx context.Context, arg ByInvoiceParams) error {
	_, err := q.db.Exec(ctx, cancelOpenInstallments, arg.InvoiceID, arg.OrgID)
	return err
}

const deleteOpenInstallments = `
DELETE FROM installments
WHERE invoice_id = $1 AND org_id = $2 AND status IN ('pending', 'overdue')
`

func (q *Queries) DeleteOpenInstallments(ctx context.Context, arg ByInvoiceParams) error {
	_, err := q.db.Exec(ctx, deleteOpenInstallments, arg.InvoiceID, arg.OrgID)
	return err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanInstallment(row scanner) (Installment, error) {
	var i Installment
	err := row.Scan(
		&i.ID,
		&i.InvoiceID,
		&i.OrgID,
		&i.InstallmentNumber,
		&i.Label,
		&i.AmountCents,
		&i.DueDate,
		&i.GracePeriodDays,
		&i.Status,
		&i.PaymentLinkRef,
		&i.LastReminderSentOn,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
