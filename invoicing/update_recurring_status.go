package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
)

type UpdateRecurringStatusRequest struct {
	OrgID int64 `header:"X-Org-ID" json:"-" validate:"required,min=1"`

	Status string `json:"status" validate:"required,oneof=active paused cancelled"`
}

//encore:api public path=/v1/recurring/:id/status method=PATCH
func (s *Service) UpdateRecurringStatus(ctx context.Context, id int, req *UpdateRecurringStatusRequest) (*RecurringTemplateResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid template ID"}
	}

	result, err := s.plans.UpdateTemplateStatus(ctx, req.OrgID, int32(id), model.RecurringStatus(req.Status))
	if err != nil {
		rlog.Error("failed to update recurring template status", "error", err, "template_id", id)
		return nil, err
	}

	return &RecurringTemplateResponse{Template: *result}, nil
}

// Validate implements validation for UpdateRecurringStatusRequest
func (r *UpdateRecurringStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
