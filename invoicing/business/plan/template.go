package plan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/recurring"
)

type CreateTemplateInput struct {
	OrgID           int64
	ClientID        int64
	Currency        string
	Frequency       model.RecurringFrequency
	DayOfMonth      *int32
	DueInDays       int32
	LineItems       []model.TemplateLineItem
	NextInvoiceDate time.Time
	EndDate         *time.Time
}

func (b *business) CreateTemplate(ctx context.Context, in *CreateTemplateInput) (*model.RecurringTemplate, error) {
	if len(in.LineItems) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "template requires at least one line item"}
	}
	if in.Frequency == model.FrequencyMonthly && in.DayOfMonth != nil && (*in.DayOfMonth < 1 || *in.DayOfMonth > 31) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "day_of_month must be between 1 and 31"}
	}
	if in.EndDate != nil && in.EndDate.Before(in.NextInvoiceDate) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "end_date precedes the first invoice date"}
	}

	lineItemsJSON, err := json.Marshal(in.LineItems)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to marshal line items"}
	}

	dayOfMonth := pgtype.Int4{}
	if in.DayOfMonth != nil {
		dayOfMonth = pgtype.Int4{Int32: *in.DayOfMonth, Valid: true}
	}
	endDate := pgtype.Date{}
	if in.EndDate != nil {
		endDate = pgtype.Date{Time: *in.EndDate, Valid: true}
	}

	created, err := b.repo.Recurring.CreateTemplate(ctx, recurring.CreateTemplateParams{
		OrgID:           in.OrgID,
		ClientID:        in.ClientID,
		Currency:        in.Currency,
		Frequency:       string(in.Frequency),
		DayOfMonth:      dayOfMonth,
		DueInDays:       in.DueInDays,
		LineItems:       lineItemsJSON,
		NextInvoiceDate: pgtype.Date{Time: in.NextInvoiceDate, Valid: true},
		EndDate:         endDate,
		Status:          string(model.RecurringStatusActive),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create recurring template"}
	}

	return ConvertDBTemplateToModel(created)
}

// UpdateTemplateStatus pauses, resumes or cancels a template. Cancelled is
// terminal.
func (b *business) UpdateTemplateStatus(ctx context.Context, orgID int64, id int32, status model.RecurringStatus) (*model.RecurringTemplate, error) {
	existing, err := b.repo.Recurring.GetTemplate(ctx, recurring.GetTemplateParams{ID: id, OrgID: orgID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "recurring template not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get recurring template"}
	}

	if existing.Status == string(model.RecurringStatusCancelled) {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "cancelled templates cannot be reactivated"}
	}

	updated, err := b.repo.Recurring.UpdateTemplateStatus(ctx, recurring.UpdateTemplateStatusParams{
		ID:     id,
		OrgID:  orgID,
		Status: string(status),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update template status"}
	}

	return ConvertDBTemplateToModel(updated)
}

// ConvertDBTemplateToModel converts a database RecurringTemplate to its domain model.
func ConvertDBTemplateToModel(dbTpl recurring.RecurringTemplate) (*model.RecurringTemplate, error) {
	tpl := &model.RecurringTemplate{
		ID:              dbTpl.ID,
		OrgID:           dbTpl.OrgID,
		ClientID:        dbTpl.ClientID,
		Currency:        dbTpl.Currency,
		Frequency:       model.RecurringFrequency(dbTpl.Frequency),
		DueInDays:       dbTpl.DueInDays,
		NextInvoiceDate: dbTpl.NextInvoiceDate.Time,
		Status:          model.RecurringStatus(dbTpl.Status),
		CreatedAt:       dbTpl.CreatedAt.Time,
		UpdatedAt:       dbTpl.UpdatedAt.Time,
	}

	if dbTpl.DayOfMonth.Valid {
		tpl.DayOfMonth = &dbTpl.DayOfMonth.Int32
	}
	if dbTpl.EndDate.Valid {
		tpl.EndDate = &dbTpl.EndDate.Time
	}

	if len(dbTpl.LineItems) > 0 {
		if err := json.Unmarshal(dbTpl.LineItems, &tpl.LineItems); err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to unmarshal template line items"}
		}
	}

	return tpl, nil
}
