package invoice

import (
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/invoices"
)

// ConvertDBInvoiceToModel converts a database Invoice to a domain model Invoice.
func ConvertDBInvoiceToModel(dbInvoice invoices.Invoice) *model.Invoice {
	inv := &model.Invoice{
		ID:                    dbInvoice.ID,
		OrgID:                 dbInvoice.OrgID,
		ClientID:              dbInvoice.ClientID,
		Number:                dbInvoice.Number,
		Currency:              dbInvoice.Currency,
		Status:                model.InvoiceStatus(dbInvoice.Status),
		AmountCents:           dbInvoice.AmountCents,
		DiscountCents:         dbInvoice.DiscountCents,
		TaxCents:              dbInvoice.TaxCents,
		TotalPaidCents:        dbInvoice.TotalPaidCents,
		RemainingBalanceCents: dbInvoice.RemainingBalanceCents,
		IssuedAt:              dbInvoice.IssuedAt.Time,
		CreatedAt:             dbInvoice.CreatedAt.Time,
		UpdatedAt:             dbInvoice.UpdatedAt.Time,
	}

	if dbInvoice.DueAt.Valid {
		inv.DueAt = &dbInvoice.DueAt.Time
	}

	if dbInvoice.PaidAt.Valid {
		inv.PaidAt = &dbInvoice.PaidAt.Time
	}

	return inv
}

func convertDBLineItemToModel(dbItem invoices.InvoiceLineItem) model.LineItem {
	return model.LineItem{
		ID:             dbItem.ID,
		InvoiceID:      dbItem.InvoiceID,
		Description:    dbItem.Description,
		Quantity:       dbItem.Quantity,
		UnitPriceCents: dbItem.UnitPriceCents,
		AmountCents:    dbItem.AmountCents,
	}
}

// ConvertDBInstallmentToModel converts a database Installment to a domain model Installment.
func ConvertDBInstallmentToModel(dbInst installments.Installment) model.Installment {
	inst := model.Installment{
		ID:              dbInst.ID,
		InvoiceID:       dbInst.InvoiceID,
		OrgID:           dbInst.OrgID,
		Number:          dbInst.InstallmentNumber,
		Label:           dbInst.Label,
		AmountCents:     dbInst.AmountCents,
		GracePeriodDays: dbInst.GracePeriodDays,
		Status:          model.InstallmentStatus(dbInst.Status),
		CreatedAt:       dbInst.CreatedAt.Time,
		UpdatedAt:       dbInst.UpdatedAt.Time,
	}

	if dbInst.DueDate.Valid {
		inst.DueDate = &dbInst.DueDate.Time
	}

	if dbInst.PaymentLinkRef.Valid {
		inst.PaymentLinkRef = &dbInst.PaymentLinkRef.String
	}

	if dbInst.LastReminderSentOn.Valid {
		inst.LastReminderSentOn = &dbInst.LastReminderSentOn.Time
	}

	return inst
}
