package domain

import (
	"encore.app/invoicing/model"
)

// CanSend reports whether an invoice may transition to sent.
func CanSend(status model.InvoiceStatus) bool {
	return status == model.InvoiceStatusDraft
}

// CanVoid reports whether an invoice may be voided. Paid invoices are never
// voided or deleted; "void implies never paid" is relied on by the
// combination operation.
func CanVoid(status model.InvoiceStatus) bool {
	return status != model.InvoiceStatusPaid && status != model.InvoiceStatusVoid
}

// AcceptsPayments reports whether ledger entries may be appended.
func AcceptsPayments(status model.InvoiceStatus) bool {
	return status != model.InvoiceStatusVoid
}

// Combinable reports whether an invoice may be a source of a combination.
func Combinable(status model.InvoiceStatus) bool {
	return status != model.InvoiceStatusPaid && status != model.InvoiceStatusVoid
}
