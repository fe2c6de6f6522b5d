package payment

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/mocks/domain/state_machine"
	"encore.app/invoicing/mocks/repository/installment_repo"
	"encore.app/invoicing/mocks/repository/invoice_repo"
	"encore.app/invoicing/mocks/repository/payment_repo"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/payments"
)

type paymentMocks struct {
	sm           *state_machine.MockStateMachine
	invoices     *invoice_repo.MockQuerier
	payments     *payment_repo.MockQuerier
	installments *installment_repo.MockQuerier
}

func newPaymentMocks(ctrl *gomock.Controller) paymentMocks {
	return paymentMocks{
		sm:           state_machine.NewMockStateMachine(ctrl),
		invoices:     invoice_repo.NewMockQuerier(ctrl),
		payments:     payment_repo.NewMockQuerier(ctrl),
		installments: installment_repo.NewMockQuerier(ctrl),
	}
}

// lockedInvoice wires ExecuteWithLock to run the callback against the mock
// queriers with inv as the locked row, mirroring the real state machine.
func (m paymentMocks) lockedInvoice(inv invoices.Invoice) {
	m.sm.EXPECT().
		ExecuteWithLock(gomock.Any(), inv.OrgID, inv.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ int32, fn func(domain.Tx, invoices.Invoice) error) error {
			return fn(domain.Tx{
				Invoices:     m.invoices,
				Payments:     m.payments,
				Installments: m.installments,
			}, inv)
		})
}

func sentInvoice(amountCents int64) invoices.Invoice {
	return invoices.Invoice{
		ID:          7,
		OrgID:       1,
		ClientID:    42,
		Number:      "INV-2025-0007",
		Currency:    "USD",
		Status:      "sent",
		AmountCents: amountCents,
		DueAt:       pgtype.Timestamptz{Time: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Valid: true},
	}
}

func TestRecordPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newPaymentMocks(ctrl)
	inv := sentInvoice(10000)
	m.lockedInvoice(inv)

	paidAt := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	ref := "stripe-ch-123"

	m.payments.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg payments.CreatePaymentParams) (payments.Payment, error) {
			assert.Equal(t, int64(4000), arg.AmountCents)
			assert.Equal(t, "card", arg.PaymentMethod.String)
			assert.Equal(t, ref, arg.ExternalReference.String)

			return payments.Payment{
				ID:                11,
				InvoiceID:         arg.InvoiceID,
				OrgID:             arg.OrgID,
				AmountCents:       arg.AmountCents,
				PaymentMethod:     arg.PaymentMethod,
				PaidAt:            arg.PaidAt,
				ExternalReference: arg.ExternalReference,
			}, nil
		})

	// Reconciliation reads the fresh ledger aggregate inside the same
	// transaction as the insert.
	m.payments.EXPECT().
		SumPaymentsByInvoice(gomock.Any(), payments.SumPaymentsByInvoiceParams{InvoiceID: 7, OrgID: 1}).
		Return(int64(4000), nil)

	m.invoices.EXPECT().
		UpdateInvoiceReconciliation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg invoices.UpdateInvoiceReconciliationParams) (invoices.Invoice, error) {
			assert.Equal(t, "partially_paid", arg.Status)
			assert.Equal(t, int64(4000), arg.TotalPaidCents)
			assert.Equal(t, int64(6000), arg.RemainingBalanceCents)
			updated := inv
			updated.Status = arg.Status
			return updated, nil
		})

	business := &business{stateMachine: m.sm}

	entry, outcome, err := business.RecordPayment(context.Background(), &RecordPaymentInput{
		OrgID:             1,
		InvoiceID:         7,
		AmountCents:       4000,
		PaymentMethod:     "card",
		PaidAt:            paidAt,
		ExternalReference: &ref,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(11), entry.ID)
	assert.Equal(t, int64(4000), entry.AmountCents)
	require.NotNil(t, entry.ExternalReference)
	assert.Equal(t, ref, *entry.ExternalReference)

	assert.Equal(t, model.InvoiceStatusPartiallyPaid, outcome.Status)
	assert.True(t, outcome.StatusChanged)
	assert.Equal(t, int64(6000), outcome.RemainingBalanceCents)
}

func TestRecordPaymentSettlesMatchedInstallment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newPaymentMocks(ctrl)
	inv := sentInvoice(10000)
	m.lockedInvoice(inv)

	installmentID := int32(21)

	m.payments.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(payments.Payment{ID: 11, InvoiceID: 7, OrgID: 1, AmountCents: 5000}, nil)

	m.installments.EXPECT().
		GetInstallment(gomock.Any(), installments.GetInstallmentParams{ID: installmentID, OrgID: 1}).
		Return(installments.Installment{ID: installmentID, InvoiceID: 7, OrgID: 1, Status: "pending"}, nil)
	m.installments.EXPECT().
		UpdateInstallmentStatus(gomock.Any(), installments.UpdateInstallmentStatusParams{ID: installmentID, OrgID: 1, Status: "paid"}).
		Return(installments.Installment{ID: installmentID, Status: "paid"}, nil)

	m.payments.EXPECT().
		SumPaymentsByInvoice(gomock.Any(), gomock.Any()).
		Return(int64(5000), nil)
	m.invoices.EXPECT().
		UpdateInvoiceReconciliation(gomock.Any(), gomock.Any()).
		Return(inv, nil)

	business := &business{stateMachine: m.sm}

	_, _, err := business.RecordPayment(context.Background(), &RecordPaymentInput{
		OrgID:         1,
		InvoiceID:     7,
		AmountCents:   5000,
		PaymentMethod: "bank_transfer",
		PaidAt:        time.Now(),
		InstallmentID: &installmentID,
	})
	require.NoError(t, err)
}

func TestRecordPaymentErrors(t *testing.T) {
	installmentID := int32(21)

	testCases := []struct {
		name         string
		invoice      invoices.Invoice
		setup        func(m paymentMocks)
		input        *RecordPaymentInput
		expectedCode errs.ErrCode
		expectedMsg  string
	}{
		{
			name: "void_invoice_rejects_payment",
			invoice: invoices.Invoice{
				ID: 7, OrgID: 1, Status: "void", AmountCents: 10000,
			},
			setup:        func(m paymentMocks) {},
			input:        &RecordPaymentInput{OrgID: 1, InvoiceID: 7, AmountCents: 1000, PaymentMethod: "card", PaidAt: time.Now()},
			expectedCode: errs.FailedPrecondition,
			expectedMsg:  "invoice is void",
		},
		{
			name:    "duplicate_external_reference",
			invoice: sentInvoice(10000),
			setup: func(m paymentMocks) {
				m.payments.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					Return(payments.Payment{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			input:        &RecordPaymentInput{OrgID: 1, InvoiceID: 7, AmountCents: 1000, PaymentMethod: "card", PaidAt: time.Now()},
			expectedCode: errs.AlreadyExists,
			expectedMsg:  "already recorded",
		},
		{
			name:    "installment_from_other_invoice",
			invoice: sentInvoice(10000),
			setup: func(m paymentMocks) {
				m.payments.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					Return(payments.Payment{ID: 11}, nil)
				m.installments.EXPECT().
					GetInstallment(gomock.Any(), gomock.Any()).
					Return(installments.Installment{ID: installmentID, InvoiceID: 99, Status: "pending"}, nil)
			},
			input:        &RecordPaymentInput{OrgID: 1, InvoiceID: 7, AmountCents: 1000, PaymentMethod: "card", PaidAt: time.Now(), InstallmentID: &installmentID},
			expectedCode: errs.InvalidArgument,
			expectedMsg:  "does not belong",
		},
		{
			name:    "already_settled_installment",
			invoice: sentInvoice(10000),
			setup: func(m paymentMocks) {
				m.payments.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					Return(payments.Payment{ID: 11}, nil)
				m.installments.EXPECT().
					GetInstallment(gomock.Any(), gomock.Any()).
					Return(installments.Installment{ID: installmentID, InvoiceID: 7, Status: "paid"}, nil)
			},
			input:        &RecordPaymentInput{OrgID: 1, InvoiceID: 7, AmountCents: 1000, PaymentMethod: "card", PaidAt: time.Now(), InstallmentID: &installmentID},
			expectedCode: errs.FailedPrecondition,
			expectedMsg:  "already settled",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newPaymentMocks(ctrl)
			m.lockedInvoice(tc.invoice)
			tc.setup(m)

			business := &business{stateMachine: m.sm}

			_, _, err := business.RecordPayment(context.Background(), tc.input)
			require.Error(t, err)

			var e *errs.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tc.expectedCode, e.Code)
			assert.Contains(t, e.Message, tc.expectedMsg)
		})
	}
}
