package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/business/invoice"
	"encore.app/invoicing/model"
)

type ListInvoicesRequest struct {
	OrgID int64 `header:"X-Org-ID" json:"-" validate:"required,min=1"`

	Status string `query:"status" validate:"omitempty,oneof=draft sent paid partially_paid overdue void"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type ListInvoicesResponse struct {
	Invoices   []model.Invoice `json:"invoices"`
	TotalCount int64           `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

//encore:api public path=/v1/invoices method=GET
func (s *Service) ListInvoices(ctx context.Context, req *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	in := invoice.ListInvoicesInput{
		OrgID:  req.OrgID,
		Limit:  int32(req.Limit),
		Offset: int32(req.Offset),
	}
	if req.Status != "" {
		status := model.InvoiceStatus(req.Status)
		in.Status = &status
	}

	invoices, totalCount, err := s.invoices.ListInvoices(ctx, in)
	if err != nil {
		rlog.Error("failed to list invoices", "error", err)
		return nil, err
	}

	response := &ListInvoicesResponse{
		Invoices:   make([]model.Invoice, len(invoices)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	for i, inv := range invoices {
		response.Invoices[i] = *inv
	}

	return response, nil
}

// Validate implements validation for ListInvoicesRequest
func (r *ListInvoicesRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
