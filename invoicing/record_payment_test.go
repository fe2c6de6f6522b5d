package invoicing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/business/payment"
	"encore.app/invoicing/events"
	"encore.app/invoicing/mocks/business/payment_business"
	"encore.app/invoicing/mocks/events/publisher"
	"encore.app/invoicing/model"
)

// runAsyncInline replaces the goroutine indirection for the duration of a
// test so dispatched events and signals happen before assertions run.
func runAsyncInline(t *testing.T) {
	prev := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) {
		_ = fn(context.Background())
	}
	t.Cleanup(func() { runAsync = prev })
}

func TestRecordPayment(t *testing.T) {
	runAsyncInline(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayments := payment_business.NewMockBusiness(ctrl)
	mockPublisher := publisher.NewMockPublisher(ctrl)
	mockTemporal := mocks.NewClient(t)
	service := &Service{payments: mockPayments, publisher: mockPublisher, temporal: mockTemporal}

	paidAt := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	entry := &model.Payment{ID: 9, InvoiceID: 5, OrgID: 1, AmountCents: 20000, PaymentMethod: "card", PaidAt: paidAt}
	outcome := &model.ReconciliationOutcome{
		InvoiceID: 5, OrgID: 1, ClientID: 42,
		TotalPaidCents: 20000, RemainingBalanceCents: 0,
		Status: model.InvoiceStatusPaid, PreviousStatus: model.InvoiceStatusSent,
		StatusChanged: true, PaidAt: &paidAt,
	}

	mockPayments.EXPECT().
		RecordPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *payment.RecordPaymentInput) (*model.Payment, *model.ReconciliationOutcome, error) {
			assert.Equal(t, int64(1), input.OrgID)
			assert.Equal(t, int32(5), input.InvoiceID)
			assert.Equal(t, int64(20000), input.AmountCents)
			assert.False(t, input.PaidAt.IsZero(), "zero paid_at should default to now")
			return entry, outcome, nil
		})

	mockPublisher.EXPECT().
		PublishStatusChanged(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *events.InvoiceStatusChanged) error {
			assert.Equal(t, int32(5), ev.InvoiceID)
			assert.Equal(t, string(model.InvoiceStatusSent), ev.PreviousStatus)
			assert.Equal(t, string(model.InvoiceStatusPaid), ev.NewStatus)
			assert.Equal(t, int64(0), ev.RemainingBalanceCents)
			return nil
		})

	mockTemporal.On("SignalWorkflow",
		mock.Anything, "collect-invoice-5", "", "payment-recorded",
		mock.MatchedBy(func(sig any) bool { return true }),
	).Return(nil)

	response, err := service.RecordPayment(context.Background(), 5, &RecordPaymentRequest{
		OrgID:         1,
		AmountCents:   20000,
		PaymentMethod: "card",
	})

	assert.NoError(t, err)
	assert.NotNil(t, response)
	assert.Equal(t, entry.ID, response.Payment.ID)
	assert.Equal(t, model.InvoiceStatusPaid, response.Reconciliation.Status)
	assert.True(t, response.Reconciliation.StatusChanged)
}

func TestRecordPaymentUnchangedStatusSkipsEvent(t *testing.T) {
	runAsyncInline(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayments := payment_business.NewMockBusiness(ctrl)
	mockPublisher := publisher.NewMockPublisher(ctrl)
	mockTemporal := mocks.NewClient(t)
	service := &Service{payments: mockPayments, publisher: mockPublisher, temporal: mockTemporal}

	entry := &model.Payment{ID: 10, InvoiceID: 5, OrgID: 1, AmountCents: 1000, PaymentMethod: "cash", PaidAt: time.Now()}
	outcome := &model.ReconciliationOutcome{
		InvoiceID: 5, OrgID: 1, ClientID: 42,
		TotalPaidCents: 6000, RemainingBalanceCents: 14000,
		Status: model.InvoiceStatusPartiallyPaid, PreviousStatus: model.InvoiceStatusPartiallyPaid,
		StatusChanged: false,
	}

	mockPayments.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(entry, outcome, nil)

	// No PublishStatusChanged expectation: the status did not move. The
	// workflow still gets the payment signal.
	mockTemporal.On("SignalWorkflow",
		mock.Anything, "collect-invoice-5", "", "payment-recorded", mock.Anything,
	).Return(nil)

	response, err := service.RecordPayment(context.Background(), 5, &RecordPaymentRequest{
		OrgID: 1, AmountCents: 1000, PaymentMethod: "cash",
	})

	assert.NoError(t, err)
	assert.False(t, response.Reconciliation.StatusChanged)
}

func TestRecordPaymentBusinessError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayments := payment_business.NewMockBusiness(ctrl)
	service := &Service{payments: mockPayments}

	mockPayments.EXPECT().
		RecordPayment(gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("payment exceeds remaining balance"))

	response, err := service.RecordPayment(context.Background(), 5, &RecordPaymentRequest{
		OrgID: 1, AmountCents: 999999, PaymentMethod: "card",
	})

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "exceeds remaining balance")
}

func TestRecordPaymentRejectsInvalidID(t *testing.T) {
	service := &Service{}

	response, err := service.RecordPayment(context.Background(), -1, &RecordPaymentRequest{
		OrgID: 1, AmountCents: 100, PaymentMethod: "card",
	})
	assert.Error(t, err)
	assert.Nil(t, response)
}

// TestRecordPaymentRequest_Validation tests the validation logic
func TestRecordPaymentRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *RecordPaymentRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &RecordPaymentRequest{OrgID: 1, AmountCents: 100, PaymentMethod: "card"},
		},
		{
			name:          "zero_amount",
			request:       &RecordPaymentRequest{OrgID: 1, PaymentMethod: "card"},
			expectedError: "required",
		},
		{
			name:          "unknown_method",
			request:       &RecordPaymentRequest{OrgID: 1, AmountCents: 100, PaymentMethod: "barter"},
			expectedError: "oneof",
		},
		{
			name:          "missing_org",
			request:       &RecordPaymentRequest{AmountCents: 100, PaymentMethod: "card"},
			expectedError: "required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
