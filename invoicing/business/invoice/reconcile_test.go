package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/mocks/repository/installment_repo"
	"encore.app/invoicing/mocks/repository/invoice_repo"
	"encore.app/invoicing/mocks/repository/payment_repo"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/payments"
)

func reconcileFixture(status string, amountCents int64) invoices.Invoice {
	return invoices.Invoice{
		ID:          7,
		OrgID:       1,
		ClientID:    42,
		Number:      "INV-2025-0007",
		Currency:    "USD",
		Status:      status,
		AmountCents: amountCents,
		IssuedAt:    pgtype.Timestamptz{Time: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		DueAt:       pgtype.Timestamptz{Time: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Valid: true},
	}
}

func TestReconcileLocked(t *testing.T) {
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		invoice          invoices.Invoice
		ledgerSum        int64
		expectedStatus   model.InvoiceStatus
		expectedRemain   int64
		expectChanged    bool
		expectPaidAtSet  bool
		expectSettlement bool
	}{
		{
			name:           "partial_payment_moves_sent_to_partially_paid",
			invoice:        reconcileFixture("sent", 10000),
			ledgerSum:      4000,
			expectedStatus: model.InvoiceStatusPartiallyPaid,
			expectedRemain: 6000,
			expectChanged:  true,
		},
		{
			name:             "covering_payment_moves_to_paid",
			invoice:          reconcileFixture("partially_paid", 10000),
			ledgerSum:        10000,
			expectedStatus:   model.InvoiceStatusPaid,
			expectedRemain:   0,
			expectChanged:    true,
			expectPaidAtSet:  true,
			expectSettlement: true,
		},
		{
			name:             "overpayment_clamps_remaining_to_zero",
			invoice:          reconcileFixture("sent", 10000),
			ledgerSum:        12000,
			expectedStatus:   model.InvoiceStatusPaid,
			expectedRemain:   0,
			expectChanged:    true,
			expectPaidAtSet:  true,
			expectSettlement: true,
		},
		{
			name:           "empty_ledger_reverts_partially_paid_to_sent",
			invoice:        reconcileFixture("partially_paid", 10000),
			ledgerSum:      0,
			expectedStatus: model.InvoiceStatusSent,
			expectedRemain: 10000,
			expectChanged:  true,
		},
		{
			name:           "void_invoice_keeps_status",
			invoice:        reconcileFixture("void", 10000),
			ledgerSum:      4000,
			expectedStatus: model.InvoiceStatusVoid,
			expectedRemain: 6000,
		},
		{
			name:           "draft_invoice_keeps_status",
			invoice:        reconcileFixture("draft", 10000),
			ledgerSum:      0,
			expectedStatus: model.InvoiceStatusDraft,
			expectedRemain: 10000,
		},
		{
			name:           "overdue_with_partial_payment_becomes_partially_paid",
			invoice:        reconcileFixture("overdue", 10000),
			ledgerSum:      2500,
			expectedStatus: model.InvoiceStatusPartiallyPaid,
			expectedRemain: 7500,
			expectChanged:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPayments := payment_repo.NewMockQuerier(ctrl)
			mockInvoices := invoice_repo.NewMockQuerier(ctrl)
			mockInstallments := installment_repo.NewMockQuerier(ctrl)

			mockPayments.EXPECT().
				SumPaymentsByInvoice(gomock.Any(), payments.SumPaymentsByInvoiceParams{
					InvoiceID: tc.invoice.ID,
					OrgID:     tc.invoice.OrgID,
				}).
				Return(tc.ledgerSum, nil)

			mockInvoices.EXPECT().
				UpdateInvoiceReconciliation(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, arg invoices.UpdateInvoiceReconciliationParams) (invoices.Invoice, error) {
					assert.Equal(t, string(tc.expectedStatus), arg.Status)
					assert.Equal(t, tc.ledgerSum, arg.TotalPaidCents)
					assert.Equal(t, tc.expectedRemain, arg.RemainingBalanceCents)
					assert.Equal(t, tc.expectPaidAtSet, arg.PaidAt.Valid)

					updated := tc.invoice
					updated.Status = arg.Status
					updated.TotalPaidCents = arg.TotalPaidCents
					updated.RemainingBalanceCents = arg.RemainingBalanceCents
					updated.PaidAt = arg.PaidAt
					return updated, nil
				})

			if tc.expectSettlement {
				mockInstallments.EXPECT().
					MarkOpenInstallmentsPaid(gomock.Any(), installments.ByInvoiceParams{
						InvoiceID: tc.invoice.ID,
						OrgID:     tc.invoice.OrgID,
					}).
					Return(nil)
			}

			tx := domain.Tx{
				Invoices:     mockInvoices,
				Payments:     mockPayments,
				Installments: mockInstallments,
			}

			outcome, err := ReconcileLocked(context.Background(), tx, tc.invoice, now, now)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedStatus, outcome.Status)
			assert.Equal(t, model.InvoiceStatus(tc.invoice.Status), outcome.PreviousStatus)
			assert.Equal(t, tc.expectChanged, outcome.StatusChanged)
			assert.Equal(t, tc.ledgerSum, outcome.TotalPaidCents)
			assert.Equal(t, tc.expectedRemain, outcome.RemainingBalanceCents)
			assert.Equal(t, tc.invoice.OrgID, outcome.OrgID)
			assert.Equal(t, tc.invoice.ClientID, outcome.ClientID)
			if tc.expectPaidAtSet {
				require.NotNil(t, outcome.PaidAt)
				assert.Equal(t, now, *outcome.PaidAt)
			} else {
				assert.Nil(t, outcome.PaidAt)
			}
		})
	}
}

func TestReconcileLockedRevertsToOverdueAfterGrace(t *testing.T) {
	// Ledger emptied long past due+grace: the invoice falls back to
	// overdue, not sent.
	inv := reconcileFixture("paid", 10000)
	inv.PaidAt = pgtype.Timestamptz{Time: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC), Valid: true}
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayments := payment_repo.NewMockQuerier(ctrl)
	mockInvoices := invoice_repo.NewMockQuerier(ctrl)

	mockPayments.EXPECT().
		SumPaymentsByInvoice(gomock.Any(), gomock.Any()).
		Return(int64(0), nil)

	mockInvoices.EXPECT().
		UpdateInvoiceReconciliation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg invoices.UpdateInvoiceReconciliationParams) (invoices.Invoice, error) {
			assert.Equal(t, "overdue", arg.Status)
			assert.False(t, arg.PaidAt.Valid)
			updated := inv
			updated.Status = arg.Status
			updated.PaidAt = arg.PaidAt
			return updated, nil
		})

	tx := domain.Tx{Invoices: mockInvoices, Payments: mockPayments}

	outcome, err := ReconcileLocked(context.Background(), tx, inv, now, now)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusOverdue, outcome.Status)
	assert.True(t, outcome.StatusChanged)
	assert.Nil(t, outcome.PaidAt)
}
