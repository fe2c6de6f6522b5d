package invoicing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/business/invoice"
	"encore.app/invoicing/model"
)

type CreateInvoiceRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	OrgID          int64  `header:"X-Org-ID" json:"-" validate:"required,min=1"`

	ClientID      int64                  `json:"client_id" validate:"required,min=1"`
	Currency      string                 `json:"currency" validate:"required,len=3,alpha"`
	LineItems     []InvoiceLineItemInput `json:"line_items" validate:"required,min=1,dive"`
	DiscountCents int64                  `json:"discount_cents" validate:"min=0"`
	TaxCents      int64                  `json:"tax_cents" validate:"min=0"`
	IssuedAt      time.Time              `json:"issued_at"`
	DueAt         *time.Time             `json:"due_at,omitempty"`
}

type InvoiceLineItemInput struct {
	Description    string `json:"description" validate:"required,max=255"`
	Quantity       int32  `json:"quantity" validate:"required,min=1"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"required,min=1"`
}

type InvoiceResponse struct {
	Invoice model.Invoice `json:"invoice"`
}

//encore:api public path=/v1/invoices method=POST tag:idempotency
func (s *Service) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*InvoiceResponse, error) {
	if req.IssuedAt.IsZero() {
		req.IssuedAt = time.Now()
	}

	lineItems := make([]invoice.LineItemInput, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		lineItems = append(lineItems, invoice.LineItemInput{
			Description:    li.Description,
			Quantity:       li.Quantity,
			UnitPriceCents: li.UnitPriceCents,
		})
	}

	result, err := s.invoices.CreateInvoice(ctx, &invoice.CreateInvoiceInput{
		OrgID:         req.OrgID,
		ClientID:      req.ClientID,
		Currency:      req.Currency,
		LineItems:     lineItems,
		DiscountCents: req.DiscountCents,
		TaxCents:      req.TaxCents,
		IssuedAt:      req.IssuedAt,
		DueAt:         req.DueAt,
		Status:        model.InvoiceStatusDraft,
	})
	if err != nil {
		rlog.Error("failed to create invoice", "error", err)
		return nil, err
	}

	return &InvoiceResponse{Invoice: *result}, nil
}

// Validate implements validation for CreateInvoiceRequest using go-playground/validator
func (r *CreateInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.DueAt != nil && !r.IssuedAt.IsZero() && r.DueAt.Before(r.IssuedAt) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "due_at must not precede issued_at"}
	}

	return nil
}
