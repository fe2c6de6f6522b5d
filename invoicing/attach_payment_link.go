package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/business/plan"
	"encore.app/invoicing/model"
)

type AttachPaymentLinkRequest struct {
	OrgID int64 `header:"X-Org-ID" json:"-" validate:"required,min=1"`

	PaymentLinkRef string `json:"payment_link_ref" validate:"required,max=255"`
	Regenerate     bool   `json:"regenerate"`
}

type InstallmentResponse struct {
	Installment model.Installment `json:"installment"`
}

//encore:api public path=/v1/installments/:id/payment-link method=POST
func (s *Service) AttachPaymentLink(ctx context.Context, id int, req *AttachPaymentLinkRequest) (*InstallmentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid installment ID"}
	}

	result, err := s.plans.AttachPaymentLink(ctx, &plan.AttachPaymentLinkInput{
		OrgID:          req.OrgID,
		InstallmentID:  int32(id),
		PaymentLinkRef: req.PaymentLinkRef,
		Regenerate:     req.Regenerate,
	})
	if err != nil {
		rlog.Error("failed to attach payment link", "error", err, "installment_id", id)
		return nil, err
	}

	return &InstallmentResponse{Installment: *result}, nil
}

// Validate implements validation for AttachPaymentLinkRequest
func (r *AttachPaymentLinkRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
