package invoices

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Invoice struct {
	ID                    int32
	OrgID                 int64
	ClientID              int64
	Number                string
	Currency              string
	Status                string
	AmountCents           int64
	DiscountCents         int64
	TaxCents              int64
	TotalPaidCents        int64
	RemainingBalanceCents int64
	IssuedAt              pgtype.Timestamptz
	DueAt                 pgtype.Timestamptz
	PaidAt                pgtype.Timestamptz
	CreatedAt             pgtype.Timestamptz
	UpdatedAt             pgtype.Timestamptz
}

type InvoiceLineItem struct {
	ID             int32
	InvoiceID      int32
	OrgID          int64
	Description    string
	Quantity       int32
	UnitPriceCents int64
	AmountCents    int64
}
