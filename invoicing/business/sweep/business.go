package sweep

import (
	"context"
	"time"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/events"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository"
)

type Business interface {
	// RunReminderSweep classifies every open installment, flips lapsed
	// ones to overdue and dispatches due-today/overdue reminders. Safe to
	// re-run within the same calendar day: an installment is reminded at
	// most once per day.
	RunReminderSweep(ctx context.Context, now time.Time) (*ReminderSweepResult, error)

	// GenerateRecurringInvoices materializes every active template whose
	// next_invoice_date has arrived and advances its schedule in the same
	// transaction, so an interrupted or repeated run never produces a
	// duplicate invoice.
	GenerateRecurringInvoices(ctx context.Context, now time.Time) ([]*model.Invoice, error)
}

type ReminderSweepResult struct {
	DueTodayReminders  int `json:"due_today_reminders"`
	OverdueReminders   int `json:"overdue_reminders"`
	OverdueTransitions int `json:"overdue_transitions"`
	Skipped            int `json:"skipped"`
}

type business struct {
	repo         *repository.Repository
	stateMachine domain.StateMachine
	publisher    events.Publisher
}

func NewSweepBusiness(repo *repository.Repository, stateMachine domain.StateMachine, publisher events.Publisher) Business {
	return &business{
		repo:         repo,
		stateMachine: stateMachine,
		publisher:    publisher,
	}
}
