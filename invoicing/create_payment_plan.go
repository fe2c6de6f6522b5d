package invoicing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/business/plan"
	"encore.app/invoicing/model"
)

type CreatePaymentPlanRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	OrgID          int64  `header:"X-Org-ID" json:"-" validate:"required,min=1"`

	Installments []InstallmentSpecInput `json:"installments" validate:"required,min=1,dive"`
}

type InstallmentSpecInput struct {
	Label           string     `json:"label" validate:"omitempty,max=100"`
	AmountCents     *int64     `json:"amount_cents,omitempty" validate:"omitempty,min=1"`
	Percent         *float64   `json:"percent,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	DueInDays       *int       `json:"due_in_days,omitempty" validate:"omitempty,min=0"`
	GracePeriodDays *int32     `json:"grace_period_days,omitempty" validate:"omitempty,min=0"`
}

type PaymentPlanResponse struct {
	Installments []model.Installment `json:"installments"`
}

//encore:api public path=/v1/invoices/:id/plan method=POST tag:idempotency
func (s *Service) CreatePaymentPlan(ctx context.Context, id int, req *CreatePaymentPlanRequest) (*PaymentPlanResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	specs := make([]model.InstallmentSpec, 0, len(req.Installments))
	for _, in := range req.Installments {
		specs = append(specs, model.InstallmentSpec{
			Label:           in.Label,
			AmountCents:     in.AmountCents,
			Percent:         in.Percent,
			DueDate:         in.DueDate,
			DueInDays:       in.DueInDays,
			GracePeriodDays: in.GracePeriodDays,
		})
	}

	installments, err := s.plans.CreatePlan(ctx, &plan.CreatePlanInput{
		OrgID:     req.OrgID,
		InvoiceID: int32(id),
		Specs:     specs,
	})
	if err != nil {
		rlog.Error("failed to create payment plan", "error", err, "invoice_id", id)
		return nil, err
	}

	return &PaymentPlanResponse{Installments: installments}, nil
}

// Validate implements validation for CreatePaymentPlanRequest
func (r *CreatePaymentPlanRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
