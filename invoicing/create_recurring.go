package invoicing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/business/plan"
	"encore.app/invoicing/model"
)

type CreateRecurringTemplateRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	OrgID          int64  `header:"X-Org-ID" json:"-" validate:"required,min=1"`

	ClientID        int64                   `json:"client_id" validate:"required,min=1"`
	Currency        string                  `json:"currency" validate:"required,len=3,alpha"`
	Frequency       string                  `json:"frequency" validate:"required,oneof=weekly biweekly monthly quarterly annually"`
	DayOfMonth      *int32                  `json:"day_of_month,omitempty" validate:"omitempty,min=1,max=31"`
	DueInDays       int32                   `json:"due_in_days" validate:"min=0,max=365"`
	LineItems       []TemplateLineItemInput `json:"line_items" validate:"required,min=1,dive"`
	NextInvoiceDate time.Time               `json:"next_invoice_date" validate:"required"`
	EndDate         *time.Time              `json:"end_date,omitempty"`
}

type TemplateLineItemInput struct {
	Description    string `json:"description" validate:"required,max=255"`
	Quantity       int32  `json:"quantity" validate:"required,min=1"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"required,min=1"`
}

type RecurringTemplateResponse struct {
	Template model.RecurringTemplate `json:"template"`
}

//encore:api public path=/v1/recurring method=POST tag:idempotency
func (s *Service) CreateRecurringTemplate(ctx context.Context, req *CreateRecurringTemplateRequest) (*RecurringTemplateResponse, error) {
	lineItems := make([]model.TemplateLineItem, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		lineItems = append(lineItems, model.TemplateLineItem{
			Description:    li.Description,
			Quantity:       li.Quantity,
			UnitPriceCents: li.UnitPriceCents,
		})
	}

	result, err := s.plans.CreateTemplate(ctx, &plan.CreateTemplateInput{
		OrgID:           req.OrgID,
		ClientID:        req.ClientID,
		Currency:        req.Currency,
		Frequency:       model.RecurringFrequency(req.Frequency),
		DayOfMonth:      req.DayOfMonth,
		DueInDays:       req.DueInDays,
		LineItems:       lineItems,
		NextInvoiceDate: req.NextInvoiceDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		rlog.Error("failed to create recurring template", "error", err)
		return nil, err
	}

	return &RecurringTemplateResponse{Template: *result}, nil
}

// Validate implements validation for CreateRecurringTemplateRequest
func (r *CreateRecurringTemplateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.EndDate != nil && r.EndDate.Before(r.NextInvoiceDate) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "end_date must not precede next_invoice_date"}
	}

	return nil
}
