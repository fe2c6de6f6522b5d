package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/organizations"
	"encore.app/invoicing/repository/payments"
	"encore.app/invoicing/repository/recurring"
)

// Repository combines all domain-specific queriers.
type Repository struct {
	Invoices      invoices.Querier
	Payments      payments.Querier
	Installments  installments.Querier
	Recurring     recurring.Querier
	Organizations organizations.Querier
}

// NewRepository creates a new Repository with all domain queriers.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Invoices:      invoices.New(db),
		Payments:      payments.New(db),
		Installments:  installments.New(db),
		Recurring:     recurring.New(db),
		Organizations: organizations.New(db),
	}
}
