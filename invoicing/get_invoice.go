package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type GetInvoiceRequest struct {
	OrgID int64 `header:"X-Org-ID" json:"-" validate:"required,min=1"`
}

//encore:api public path=/v1/invoices/:id method=GET
func (s *Service) GetInvoice(ctx context.Context, id int, req *GetInvoiceRequest) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.invoices.GetInvoice(ctx, req.OrgID, int32(id))
	if err != nil {
		rlog.Error("failed to get invoice", "error", err, "id", id)
		return nil, err
	}

	return &InvoiceResponse{Invoice: *result}, nil
}

// Validate implements validation for GetInvoiceRequest
func (r *GetInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
