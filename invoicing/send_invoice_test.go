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

	"encore.app/invoicing/mocks/business/invoice_business"
	"encore.app/invoicing/model"
)

func TestSendInvoice(t *testing.T) {
	due := time.Now().AddDate(0, 0, 14)

	testCases := []struct {
		name              string
		invoiceID         int
		mockReturn        *model.Invoice
		mockError         error
		mockTemporalError error
		expectedError     string
		expectWorkflow    bool
	}{
		{
			name:      "send_starts_collection_workflow",
			invoiceID: 1,
			mockReturn: &model.Invoice{
				ID: 1, OrgID: 1, ClientID: 42,
				Status: model.InvoiceStatusSent, DueAt: &due,
			},
			expectWorkflow: true,
		},
		{
			name:      "send_succeeds_when_workflow_start_fails",
			invoiceID: 2,
			mockReturn: &model.Invoice{
				ID: 2, OrgID: 1, ClientID: 42,
				Status: model.InvoiceStatusSent, DueAt: &due,
			},
			mockTemporalError: errors.New("temporal unavailable"),
			expectWorkflow:    true,
		},
		{
			name:      "no_due_date_skips_workflow",
			invoiceID: 3,
			mockReturn: &model.Invoice{
				ID: 3, OrgID: 1, ClientID: 42,
				Status: model.InvoiceStatusSent,
			},
			expectWorkflow: false,
		},
		{
			name:          "send_fails",
			invoiceID:     4,
			mockError:     errors.New("invoice not found"),
			expectedError: "invoice not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockInvoices := invoice_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)
			service := &Service{invoices: mockInvoices, temporal: mockTemporal}

			mockInvoices.EXPECT().
				SendInvoice(gomock.Any(), int64(1), int32(tc.invoiceID)).
				Return(tc.mockReturn, tc.mockError).
				Times(1)

			if tc.expectWorkflow {
				mockTemporal.On("ExecuteWorkflow",
					mock.Anything, // context
					mock.Anything, // StartWorkflowOptions
					mock.Anything, // workflow function
					mock.Anything, // workflow args
				).Return(nil, tc.mockTemporalError)
			}

			response, err := service.SendInvoice(context.Background(), tc.invoiceID, &SendInvoiceRequest{OrgID: 1})

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockReturn.ID, response.Invoice.ID)
				assert.Equal(t, model.InvoiceStatusSent, response.Invoice.Status)
			}
		})
	}
}

func TestSendInvoiceRejectsInvalidID(t *testing.T) {
	service := &Service{}

	response, err := service.SendInvoice(context.Background(), 0, &SendInvoiceRequest{OrgID: 1})
	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "invalid invoice ID")
}

func TestCollectionWorkflowID(t *testing.T) {
	assert.Equal(t, "collect-invoice-42", collectionWorkflowID(42))
}
