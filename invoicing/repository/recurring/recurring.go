package recurring

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type RecurringTemplate struct {
	ID              int32
	OrgID           int64
	ClientID        int64
	Currency        string
	Frequency       string
	DayOfMonth      pgtype.Int4
	DueInDays       int32
	LineItems       []byte
	NextInvoiceDate pgtype.Date
	EndDate         pgtype.Date
	Status          string
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type Querier interface {
	CreateTemplate(ctx context.Context, arg CreateTemplateParams) (RecurringTemplate, error)
	GetTemplate(ctx context.Context, arg GetTemplateParams) (RecurringTemplate, error)
	GetTemplateForUpdate(ctx context.Context, arg GetTemplateParams) (RecurringTemplate, error)
	ListDueTemplates(ctx context.Context, dueOnOrBefore pgtype.Date) ([]RecurringTemplate, error)
	UpdateTemplateSchedule(ctx context.Context, arg UpdateTemplateScheduleParams) (RecurringTemplate, error)
	UpdateTemplateStatus(ctx context.Context, arg UpdateTemplateStatusParams) (RecurringTemplate, error)
}

var _ Querier = (*Queries)(nil)

const templateColumns = `id, org_id, client_id, currency, frequency, day_of_month, due_in_days,
	line_items, next_invoice_date, end_date, status, created_at, updated_at`

const createTemplate = `
INSERT INTO recurring_templates (org_id, client_id, currency, frequency, day_of_month, due_in_days,
	line_items, next_invoice_date, end_date, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + templateColumns

type CreateTemplateParams struct {
	OrgID           int64
	ClientID        int64
	Currency        string
	Frequency       string
	DayOfMonth      pgtype.Int4
	DueInDays       int32
	LineItems       []byte
	NextInvoiceDate pgtype.Date
	EndDate         pgtype.Date
	Status          string
}

func (q *Queries) CreateTemplate(ctx context.Context, arg CreateTemplateParams) (RecurringTemplate, error) {
	row := q.db.QueryRow(ctx, createTemplate,
		arg.OrgID,
		arg.ClientID,
		arg.Currency,
		arg.Frequency,
		arg.DayOfMonth,
		arg.DueInDays,
		arg.LineItems,
		arg.NextInvoiceDate,
		arg.EndDate,
		arg.Status,
	)
	return scanTemplate(row)
}

const getTemplate = `
SELECT ` + templateColumns + `
FROM recurring_templates
WHERE id = $1 AND org_id = $2
`

type GetTemplateParams struct {
	ID    int32
	OrgID int64
}

func (q *Queries) GetTemplate(ctx context.Context, arg GetTemplateParams) (RecurringTemplate, error) {
	row := q.db.QueryRow(ctx, getTemplate, arg.ID, arg.OrgID)
	return scanTemplate(row)
}

const getTemplateForUpdate = getTemplate + `FOR UPDATE
`

func (q *Queries) GetTemplateForUpdate(ctx context.Context, arg GetTemplateParams) (RecurringTemplate, error) {
	row := q.db.QueryRow(ctx, getTemplateForUpdate, arg.ID, arg.OrgID)
	return scanTemplate(row)
}

const listDueTemplates = `
SELECT ` + templateColumns + `
FROM recurring_templates
WHERE status = 'active' AND next_invoice_date <= $1
ORDER BY org_id, id
`

func (q *Queries) ListDueTemplates(ctx context.Context, dueOnOrBefore pgtype.Date) ([]RecurringTemplate, error) {
	rows, err := q.db.Query(ctx, listDueTemplates, dueOnOrBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecurringTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const updateTemplateSchedule = `
UPDATE recurring_templates
SET next_invoice_date = $3, updated_at = now()
WHERE id = $1 AND org_id = $2
RETURNING ` + templateColumns

type UpdateTemplateScheduleParams struct {
	ID              int32
	OrgID           int64
	NextInvoiceDate pgtype.Date
}

func (q *Queries) UpdateTemplateSchedule(ctx context.Context, arg UpdateTemplateScheduleParams) (RecurringTemplate, error) {
	row := q.db.QueryRow(ctx, updateTemplateSchedule, arg.ID, arg.OrgID, arg.NextInvoiceDate)
	return scanTemplate(row)
}

const updateTemplateStatus = `
UPDATE recurring_templates
SET status = $3, updated_at = now()
WHERE id = $1 AND org_id = $2
RETURNING ` + templateColumns

type UpdateTemplateStatusParams struct {
	ID     int32
	OrgID  int64
	Status string
}

func (q *Queries) UpdateTemplateStatus(ctx context.Context, arg UpdateTemplateStatusParams) (RecurringTemplate, error) {
	row := q.db.QueryRow(ctx, updateTemplateStatus, arg.ID, arg.OrgID, arg.Status)
	return scanTemplate(row)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTemplate(row scanner) (RecurringTemplate, error) {
	var t RecurringTemplate
	err := row.Scan(
		&t.ID,
		&t.OrgID,
		&t.ClientID,
		&t.Currency,
		&t.Frequency,
		&t.DayOfMonth,
		&t.DueInDays,
		&t.LineItems,
		&t.NextInvoiceDate,
		&t.EndDate,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}
