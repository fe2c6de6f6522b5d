package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/events"
	invoicemock "encore.app/invoicing/mocks/business/invoice_business"
	publishermock "encore.app/invoicing/mocks/events/publisher"
	"encore.app/invoicing/model"
)

func newWorkflowEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *invoicemock.MockBusiness, *publishermock.MockPublisher) {
	ctrl := gomock.NewController(t)
	mockBiz := invoicemock.NewMockBusiness(ctrl)
	mockPub := publishermock.NewMockPublisher(ctrl)
	SetActivityDependencies(mockBiz, mockPub)
	t.Cleanup(func() { SetActivityDependencies(nil, nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(MarkInvoiceOverdueActivity)
	env.RegisterActivity(SendInvoiceReminderActivity)
	return env, mockBiz, mockPub
}

func outstandingInvoice(status model.InvoiceStatus) *model.Invoice {
	due := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	return &model.Invoice{
		ID:                    101,
		OrgID:                 1,
		ClientID:              42,
		Status:                status,
		AmountCents:           20000,
		RemainingBalanceCents: 20000,
		DueAt:                 &due,
	}
}

func TestCollectionWorkflow_PaidSignalBeforeDueDate(t *testing.T) {
	env, _, _ := newWorkflowEnv(t)

	// No activity expectations: a paid signal before the first checkpoint
	// ends the workflow without a single reminder.
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(PaymentRecordedSignalName, PaymentRecordedSignal{
			PaymentID: 7, Status: string(model.InvoiceStatusPaid),
		})
	}, time.Hour)

	params := CollectionWorkflowParams{
		InvoiceID: 101, OrgID: 1, ClientID: 42,
		DueAt:           time.Now().AddDate(0, 0, 2),
		GracePeriodDays: 3,
	}
	env.ExecuteWorkflow(Collection, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestCollectionWorkflow_PartialPaymentSignalKeepsCollecting(t *testing.T) {
	env, mockBiz, mockPub := newWorkflowEnv(t)

	mockBiz.EXPECT().GetInvoice(gomock.Any(), int64(1), int32(101)).
		Return(outstandingInvoice(model.InvoiceStatusPartiallyPaid), nil)
	mockPub.EXPECT().PublishReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, ev *events.PaymentReminder) error {
			assert.Equal(t, events.ReminderKindDueToday, ev.Kind)
			assert.Equal(t, int64(20000), ev.AmountCents)
			return nil
		})

	// A partial payment signal must not settle the workflow; the due-today
	// checkpoint still fires. The second delayed void lets the test finish
	// without walking the whole overdue schedule.
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(PaymentRecordedSignalName, PaymentRecordedSignal{
			PaymentID: 7, Status: string(model.InvoiceStatusPartiallyPaid),
		})
	}, time.Hour)
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(InvoiceVoidedSignalName, InvoiceVoidedSignal{Reason: "written off"})
	}, 36*time.Hour)

	params := CollectionWorkflowParams{
		InvoiceID: 101, OrgID: 1, ClientID: 42,
		DueAt:           time.Now().AddDate(0, 0, 1),
		GracePeriodDays: 3,
	}
	env.ExecuteWorkflow(Collection, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestCollectionWorkflow_MarksOverdueAfterGrace(t *testing.T) {
	env, mockBiz, mockPub := newWorkflowEnv(t)

	// Due-today checkpoint: invoice still outstanding.
	mockBiz.EXPECT().GetInvoice(gomock.Any(), int64(1), int32(101)).
		Return(outstandingInvoice(model.InvoiceStatusSent), nil)
	mockPub.EXPECT().PublishReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, ev *events.PaymentReminder) error {
			assert.Equal(t, events.ReminderKindDueToday, ev.Kind)
			assert.Equal(t, 0, ev.DaysOverdue)
			return nil
		})

	// First overdue checkpoint: transition, then the re-read finds the
	// invoice paid, so no overdue reminder goes out.
	mockBiz.EXPECT().MarkOverdue(gomock.Any(), int64(1), int32(101)).Return(true, nil)
	mockBiz.EXPECT().GetInvoice(gomock.Any(), int64(1), int32(101)).
		Return(outstandingInvoice(model.InvoiceStatusPaid), nil)

	params := CollectionWorkflowParams{
		InvoiceID: 101, OrgID: 1, ClientID: 42,
		DueAt:           time.Now().AddDate(0, 0, 1),
		GracePeriodDays: 3,
	}
	env.ExecuteWorkflow(Collection, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestCollectionWorkflow_StopsWhenInvoiceSettledWithoutSignal(t *testing.T) {
	env, mockBiz, _ := newWorkflowEnv(t)

	// A lost payment signal is harmless: the first checkpoint re-reads the
	// invoice, finds it paid and stops.
	mockBiz.EXPECT().GetInvoice(gomock.Any(), int64(1), int32(101)).
		Return(outstandingInvoice(model.InvoiceStatusPaid), nil)

	params := CollectionWorkflowParams{
		InvoiceID: 101, OrgID: 1, ClientID: 42,
		DueAt:           time.Now().AddDate(0, 0, 1),
		GracePeriodDays: 3,
	}
	env.ExecuteWorkflow(Collection, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestCollectionWorkflow_VoidSignalStopsCollection(t *testing.T) {
	env, _, _ := newWorkflowEnv(t)

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(InvoiceVoidedSignalName, InvoiceVoidedSignal{Reason: "duplicate"})
	}, 2*time.Hour)

	params := CollectionWorkflowParams{
		InvoiceID: 101, OrgID: 1, ClientID: 42,
		DueAt:           time.Now().AddDate(0, 0, 5),
		GracePeriodDays: 3,
	}
	env.ExecuteWorkflow(Collection, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestCollectionCheckpointsSchedule(t *testing.T) {
	due := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	cps := collectionCheckpoints(due, 3)

	require.Len(t, cps, 1+maxOverdueReminders)

	assert.Equal(t, due, cps[0].at)
	assert.Equal(t, events.ReminderKindDueToday, cps[0].kind)
	assert.False(t, cps[0].markOverdue)

	// Grace ends June 13; June 14 is overdue day one.
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), cps[1].at)
	assert.Equal(t, 1, cps[1].daysOverdue)
	assert.True(t, cps[1].markOverdue)

	assert.Equal(t, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), cps[2].at)
	assert.Equal(t, 7, cps[2].daysOverdue)
	assert.False(t, cps[2].markOverdue)

	last := cps[len(cps)-1]
	assert.Equal(t, 49, last.daysOverdue)
}

func TestActivities_FailurePaths(t *testing.T) {
	testErr := errors.New("boom")

	run := func(name string, expect func(biz *invoicemock.MockBusiness, pub *publishermock.MockPublisher), invoke func(env *testsuite.TestActivityEnvironment) error) {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockBiz := invoicemock.NewMockBusiness(ctrl)
			mockPub := publishermock.NewMockPublisher(ctrl)
			SetActivityDependencies(mockBiz, mockPub)
			t.Cleanup(func() { SetActivityDependencies(nil, nil) })

			var ts testsuite.WorkflowTestSuite
			env := ts.NewTestActivityEnvironment()
			env.RegisterActivity(MarkInvoiceOverdueActivity)
			env.RegisterActivity(SendInvoiceReminderActivity)

			expect(mockBiz, mockPub)
			err := invoke(env)
			if err == nil {
				t.Fatalf("expected error from activity but got nil")
			}
			assert.Contains(t, err.Error(), testErr.Error())
		})
	}

	run("MarkInvoiceOverdueActivity failure", func(biz *invoicemock.MockBusiness, _ *publishermock.MockPublisher) {
		biz.EXPECT().MarkOverdue(gomock.Any(), int64(1), int32(101)).Return(false, testErr)
	}, func(env *testsuite.TestActivityEnvironment) error {
		fut, err := env.ExecuteActivity(MarkInvoiceOverdueActivity, int64(1), int32(101))
		if err != nil {
			return err
		}
		var out interface{}
		return fut.Get(&out)
	})

	run("SendInvoiceReminderActivity load failure", func(biz *invoicemock.MockBusiness, _ *publishermock.MockPublisher) {
		biz.EXPECT().GetInvoice(gomock.Any(), int64(1), int32(101)).Return(nil, testErr)
	}, func(env *testsuite.TestActivityEnvironment) error {
		fut, err := env.ExecuteActivity(SendInvoiceReminderActivity, int64(1), int32(101), events.ReminderKindDueToday, 0)
		if err != nil {
			return err
		}
		var outstanding bool
		return fut.Get(&outstanding)
	})

	run("SendInvoiceReminderActivity publish failure", func(biz *invoicemock.MockBusiness, pub *publishermock.MockPublisher) {
		biz.EXPECT().GetInvoice(gomock.Any(), int64(1), int32(101)).
			Return(outstandingInvoice(model.InvoiceStatusOverdue), nil)
		pub.EXPECT().PublishReminder(gomock.Any(), gomock.Any()).Return(testErr)
	}, func(env *testsuite.TestActivityEnvironment) error {
		fut, err := env.ExecuteActivity(SendInvoiceReminderActivity, int64(1), int32(101), events.ReminderKindOverdue, 8)
		if err != nil {
			return err
		}
		var outstanding bool
		return fut.Get(&outstanding)
	})
}
