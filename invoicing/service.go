package invoicing

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/invoicing/business/invoice"
	"encore.app/invoicing/business/payment"
	"encore.app/invoicing/business/plan"
	"encore.app/invoicing/business/sweep"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/events"
	"encore.app/invoicing/repository"
	"encore.app/invoicing/workflow"
)

var invoicingDB = sqldb.NewDatabase("invoicing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

// taskQueue is the Temporal task queue shared by the worker and every
// collection workflow this service starts.
const taskQueue = "invoicing"

var validate = validator.New()

//encore:service
type Service struct {
	invoices  invoice.Business
	payments  payment.Business
	plans     plan.Business
	sweeps    sweep.Business
	publisher events.Publisher

	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(invoicingDB)

	repo := repository.NewRepository(pgxdb)
	stateMachine := domain.NewInvoiceStateMachine(pgxdb)
	publisher := events.TopicPublisher{}

	invoices := invoice.NewInvoiceBusiness(repo, stateMachine)
	payments := payment.NewPaymentBusiness(repo, stateMachine)
	plans := plan.NewPlanBusiness(repo, stateMachine)
	sweeps := sweep.NewSweepBusiness(repo, stateMachine, publisher)

	c, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.Collection)
	w.RegisterActivity(workflow.MarkInvoiceOverdueActivity)
	w.RegisterActivity(workflow.SendInvoiceReminderActivity)
	workflow.SetActivityDependencies(invoices, publisher)

	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("invoicing service initialized", "taskQueue", taskQueue)

	return &Service{
		invoices:  invoices,
		payments:  payments,
		plans:     plans,
		sweeps:    sweeps,
		publisher: publisher,
		temporal:  c,
		worker:    w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
