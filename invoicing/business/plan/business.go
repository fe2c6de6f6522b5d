package plan

import (
	"context"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository"
)

type Business interface {
	// CreatePlan builds the installment schedule for an invoice and
	// replaces any previous open plan. The installment amounts always
	// sum exactly to the invoice amount.
	CreatePlan(ctx context.Context, in *CreatePlanInput) ([]model.Installment, error)

	// AttachPaymentLink stores the opaque external payment-link reference
	// for an installment, at most once unless regenerate is set.
	AttachPaymentLink(ctx context.Context, in *AttachPaymentLinkInput) (*model.Installment, error)

	CreateTemplate(ctx context.Context, in *CreateTemplateInput) (*model.RecurringTemplate, error)
	UpdateTemplateStatus(ctx context.Context, orgID int64, id int32, status model.RecurringStatus) (*model.RecurringTemplate, error)
}

type CreatePlanInput struct {
	OrgID     int64
	InvoiceID int32
	Specs     []model.InstallmentSpec
}

type AttachPaymentLinkInput struct {
	OrgID          int64
	InstallmentID  int32
	PaymentLinkRef string
	Regenerate     bool
}

type business struct {
	repo         *repository.Repository
	stateMachine domain.StateMachine
}

func NewPlanBusiness(repo *repository.Repository, stateMachine domain.StateMachine) Business {
	return &business{
		repo:         repo,
		stateMachine: stateMachine,
	}
}
