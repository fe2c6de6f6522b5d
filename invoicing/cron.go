package invoicing

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/client"

	"encore.dev/cron"
	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/invoicing/business/sweep"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/events"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository"
)

// The two daily jobs are deliberately offset so recurring invoices created
// on a due date are already in place when the reminder sweep runs.
var _ = cron.NewJob("generate-recurring-invoices", cron.JobConfig{
	Title:    "Generate invoices from recurring templates",
	Schedule: "0 5 * * *",
	Endpoint: GenerateRecurringInvoices,
})

var _ = cron.NewJob("payment-reminder-sweep", cron.JobConfig{
	Title:    "Send due and overdue payment reminders",
	Schedule: "0 6 * * *",
	Endpoint: RunPaymentReminderSweep,
})

// newSweepBusiness builds a sweep business wired straight to the database.
// Cron endpoints are package-level functions, so they assemble their own
// dependencies instead of going through the service struct.
func newSweepBusiness() sweep.Business {
	pgxdb := sqldb.Driver(invoicingDB)
	repo := repository.NewRepository(pgxdb)
	stateMachine := domain.NewInvoiceStateMachine(pgxdb)
	return sweep.NewSweepBusiness(repo, stateMachine, events.TopicPublisher{})
}

type ReminderSweepResponse struct {
	Result sweep.ReminderSweepResult `json:"result"`
}

// RunPaymentReminderSweep classifies open installments, marks lapsed ones
// overdue and dispatches reminders. Safe to invoke again within the same
// day: each installment is reminded at most once per calendar day.
//
//encore:api private method=POST path=/internal/sweeps/reminders
func RunPaymentReminderSweep(ctx context.Context) (*ReminderSweepResponse, error) {
	result, err := newSweepBusiness().RunReminderSweep(ctx, time.Now())
	if err != nil {
		rlog.Error("payment reminder sweep failed", "error", err)
		return nil, err
	}

	rlog.Info("payment reminder sweep finished",
		"due_today", result.DueTodayReminders,
		"overdue", result.OverdueReminders,
		"transitions", result.OverdueTransitions,
		"skipped", result.Skipped)

	return &ReminderSweepResponse{Result: *result}, nil
}

type GenerateRecurringResponse struct {
	Generated []model.Invoice `json:"generated"`
}

// GenerateRecurringInvoices materializes due recurring templates into sent
// invoices and starts a collection workflow for each one.
//
//encore:api private method=POST path=/internal/sweeps/recurring
func GenerateRecurringInvoices(ctx context.Context) (*GenerateRecurringResponse, error) {
	generated, err := newSweepBusiness().GenerateRecurringInvoices(ctx, time.Now())
	if err != nil {
		rlog.Error("recurring invoice generation failed", "error", err)
		return nil, err
	}

	response := &GenerateRecurringResponse{Generated: make([]model.Invoice, len(generated))}
	for i, inv := range generated {
		response.Generated[i] = *inv
	}

	if len(generated) > 0 {
		if err := startCollectionWorkflows(ctx, generated); err != nil {
			rlog.Error("failed to start collection workflows for generated invoices", "error", err)
		}
	}

	rlog.Info("recurring invoice generation finished", "generated", len(generated))
	return response, nil
}

// startCollectionWorkflows dials a short-lived Temporal client and starts a
// collection workflow for every generated invoice that has a due date.
func startCollectionWorkflows(ctx context.Context, generated []*model.Invoice) error {
	c, err := client.Dial(client.Options{})
	if err != nil {
		return fmt.Errorf("create temporal client: %w", err)
	}
	defer c.Close()

	for _, inv := range generated {
		if inv.DueAt == nil {
			continue
		}
		if err := startCollectionWorkflowWith(ctx, c, inv); err != nil {
			rlog.Error("workflow start issue", "invoice_id", inv.ID, "error", err)
		}
	}
	return nil
}
