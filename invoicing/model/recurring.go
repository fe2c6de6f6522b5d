package model

import (
	"time"
)

type RecurringTemplate struct {
	ID              int32              `json:"id"`
	OrgID           int64              `json:"org_id"`
	ClientID        int64              `json:"client_id"`
	Currency        string             `json:"currency"`
	Frequency       RecurringFrequency `json:"frequency"`
	DayOfMonth      *int32             `json:"day_of_month,omitempty"`
	DueInDays       int32              `json:"due_in_days"`
	LineItems       []TemplateLineItem `json:"line_items"`
	NextInvoiceDate time.Time          `json:"next_invoice_date"`
	EndDate         *time.Time         `json:"end_date,omitempty"`
	Status          RecurringStatus    `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type TemplateLineItem struct {
	Description    string `json:"description"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type RecurringFrequency string

const (
	FrequencyWeekly    RecurringFrequency = "weekly"
	FrequencyBiweekly  RecurringFrequency = "biweekly"
	FrequencyMonthly   RecurringFrequency = "monthly"
	FrequencyQuarterly RecurringFrequency = "quarterly"
	FrequencyAnnually  RecurringFrequency = "annually"
)

type RecurringStatus string

const (
	RecurringStatusActive    RecurringStatus = "active"
	RecurringStatusPaused    RecurringStatus = "paused"
	RecurringStatusCancelled RecurringStatus = "cancelled"
)
