package sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/events"
	"encore.app/invoicing/mocks/events/publisher"
	"encore.app/invoicing/mocks/repository/installment_repo"
	"encore.app/invoicing/mocks/repository/organization_repo"
	"encore.app/invoicing/repository"
	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/organizations"
)

type sweepMocks struct {
	installments *installment_repo.MockQuerier
	orgs         *organization_repo.MockQuerier
	publisher    *publisher.MockPublisher
}

func newSweepBusiness(ctrl *gomock.Controller) (*business, sweepMocks) {
	m := sweepMocks{
		installments: installment_repo.NewMockQuerier(ctrl),
		orgs:         organization_repo.NewMockQuerier(ctrl),
		publisher:    publisher.NewMockPublisher(ctrl),
	}
	b := &business{
		repo: &repository.Repository{
			Installments:  m.installments,
			Organizations: m.orgs,
		},
		publisher: m.publisher,
	}
	return b, m
}

func dueRow(id int32, dueDate time.Time, status string, graceDays int32, lastSentOn pgtype.Date) installments.ListDueInstallmentsRow {
	return installments.ListDueInstallmentsRow{
		Installment: installments.Installment{
			ID:                 id,
			InvoiceID:          7,
			OrgID:              1,
			InstallmentNumber:  1,
			AmountCents:        5000,
			DueDate:            pgtype.Date{Time: dueDate, Valid: true},
			GracePeriodDays:    graceDays,
			Status:             status,
			LastReminderSentOn: lastSentOn,
		},
		ClientID:      42,
		InvoiceStatus: "sent",
	}
}

func utcOrg() organizations.Organization {
	return organizations.Organization{ID: 1, Name: "Test Org"}
}

func TestRunReminderSweepDueToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newSweepBusiness(ctrl)

	now := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	m.installments.EXPECT().
		ListDueInstallments(gomock.Any(), pgtype.Date{Time: now.AddDate(0, 0, 1), Valid: true}).
		Return([]installments.ListDueInstallmentsRow{
			dueRow(21, due, "pending", 3, pgtype.Date{}),
		}, nil)

	m.orgs.EXPECT().GetOrganization(gomock.Any(), int64(1)).Return(utcOrg(), nil)

	m.publisher.EXPECT().
		PublishReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *events.PaymentReminder) error {
			assert.Equal(t, events.ReminderKindDueToday, ev.Kind)
			assert.Equal(t, int32(7), ev.InvoiceID)
			assert.Equal(t, int64(42), ev.ClientID)
			require.NotNil(t, ev.InstallmentID)
			assert.Equal(t, int32(21), *ev.InstallmentID)
			assert.Equal(t, 0, ev.DaysOverdue)
			return nil
		})

	m.installments.EXPECT().
		SetLastReminderSentOn(gomock.Any(), installments.SetLastReminderSentOnParams{
			ID:     21,
			OrgID:  1,
			SentOn: pgtype.Date{Time: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Valid: true},
		}).
		Return(nil)

	result, err := b.RunReminderSweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, result.DueTodayReminders)
	assert.Equal(t, 0, result.OverdueReminders)
	assert.Equal(t, 0, result.OverdueTransitions)
	assert.Equal(t, 0, result.Skipped)
}

func TestRunReminderSweepMarksOverdueAndReminds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newSweepBusiness(ctrl)

	// Due March 10, grace 3: March 14 is the first overdue day.
	now := time.Date(2025, 3, 14, 6, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	m.installments.EXPECT().
		ListDueInstallments(gomock.Any(), gomock.Any()).
		Return([]installments.ListDueInstallmentsRow{
			dueRow(21, due, "pending", 3, pgtype.Date{}),
		}, nil)

	m.orgs.EXPECT().GetOrganization(gomock.Any(), int64(1)).Return(utcOrg(), nil)

	m.installments.EXPECT().
		UpdateInstallmentStatus(gomock.Any(), installments.UpdateInstallmentStatusParams{
			ID: 21, OrgID: 1, Status: "overdue",
		}).
		Return(installments.Installment{ID: 21, Status: "overdue"}, nil)

	m.publisher.EXPECT().
		PublishReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *events.PaymentReminder) error {
			assert.Equal(t, events.ReminderKindOverdue, ev.Kind)
			assert.Equal(t, 1, ev.DaysOverdue)
			return nil
		})

	m.installments.EXPECT().SetLastReminderSentOn(gomock.Any(), gomock.Any()).Return(nil)

	result, err := b.RunReminderSweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, result.OverdueTransitions)
	assert.Equal(t, 1, result.OverdueReminders)
}

func TestRunReminderSweepIdempotentWithinDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newSweepBusiness(ctrl)

	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	alreadySent := pgtype.Date{Time: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Valid: true}

	m.installments.EXPECT().
		ListDueInstallments(gomock.Any(), gomock.Any()).
		Return([]installments.ListDueInstallmentsRow{
			dueRow(21, due, "pending", 3, alreadySent),
		}, nil)

	m.orgs.EXPECT().GetOrganization(gomock.Any(), int64(1)).Return(utcOrg(), nil)

	// No publish and no marker write: the morning run already reminded.
	result, err := b.RunReminderSweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 0, result.DueTodayReminders)
	assert.Equal(t, 0, result.OverdueReminders)
	assert.Equal(t, 0, result.Skipped)
}

func TestRunReminderSweepSkipsNonCadenceDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newSweepBusiness(ctrl)

	// Day 3 overdue: already transitioned, not a reminder day.
	now := time.Date(2025, 3, 16, 6, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	m.installments.EXPECT().
		ListDueInstallments(gomock.Any(), gomock.Any()).
		Return([]installments.ListDueInstallmentsRow{
			dueRow(21, due, "overdue", 3, pgtype.Date{}),
		}, nil)

	m.orgs.EXPECT().GetOrganization(gomock.Any(), int64(1)).Return(utcOrg(), nil)

	result, err := b.RunReminderSweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 0, result.OverdueReminders)
	assert.Equal(t, 0, result.OverdueTransitions)
}

func TestRunReminderSweepPublishFailureRetriesNextDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newSweepBusiness(ctrl)

	now := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	m.installments.EXPECT().
		ListDueInstallments(gomock.Any(), gomock.Any()).
		Return([]installments.ListDueInstallmentsRow{
			dueRow(21, due, "pending", 3, pgtype.Date{}),
		}, nil)

	m.orgs.EXPECT().GetOrganization(gomock.Any(), int64(1)).Return(utcOrg(), nil)

	m.publisher.EXPECT().
		PublishReminder(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	// The sent-on marker must not be written, so the next run retries.
	result, err := b.RunReminderSweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 0, result.DueTodayReminders)
	assert.Equal(t, 0, result.Skipped)
}

func TestRunReminderSweepBadRowDoesNotStallOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newSweepBusiness(ctrl)

	now := time.Date(2025, 3, 14, 6, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	bad := dueRow(21, due, "pending", 3, pgtype.Date{})
	good := dueRow(22, now, "pending", 3, pgtype.Date{})

	m.installments.EXPECT().
		ListDueInstallments(gomock.Any(), gomock.Any()).
		Return([]installments.ListDueInstallmentsRow{bad, good}, nil)

	m.orgs.EXPECT().GetOrganization(gomock.Any(), int64(1)).Return(utcOrg(), nil)

	m.installments.EXPECT().
		UpdateInstallmentStatus(gomock.Any(), gomock.Any()).
		Return(installments.Installment{}, errors.New("deadlock detected"))

	m.publisher.EXPECT().
		PublishReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *events.PaymentReminder) error {
			require.NotNil(t, ev.InstallmentID)
			assert.Equal(t, int32(22), *ev.InstallmentID)
			return nil
		})
	m.installments.EXPECT().SetLastReminderSentOn(gomock.Any(), gomock.Any()).Return(nil)

	result, err := b.RunReminderSweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.DueTodayReminders)
}
