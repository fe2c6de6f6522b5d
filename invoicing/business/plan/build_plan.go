package plan

import (
	"fmt"
	"math"
	"time"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
)

// BuildPlan derives the concrete installment schedule from a list of specs.
// Percentage amounts are rounded to whole cents and any rounding remainder
// lands on the last installment, so the sum always equals totalAmountCents
// exactly; downstream reconciliation compares sums exactly and a plan that
// is off by a cent would never settle. All-explicit plans that do not sum
// to the total are rejected instead of silently adjusted.
func BuildPlan(totalAmountCents int64, issuedAt time.Time, specs []model.InstallmentSpec) ([]model.PlanInstallment, error) {
	if totalAmountCents <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "plan total must be positive"}
	}
	if len(specs) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "plan requires at least one installment"}
	}

	result := make([]model.PlanInstallment, len(specs))
	var sum int64
	anyPercent := false

	for i, spec := range specs {
		if (spec.AmountCents == nil) == (spec.Percent == nil) {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("installment %d must set exactly one of amount or percent", i+1)}
		}
		if spec.DueDate != nil && spec.DueInDays != nil {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("installment %d sets both a due date and a due offset", i+1)}
		}
		if spec.GracePeriodDays != nil && *spec.GracePeriodDays < 0 {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("installment %d has a negative grace period", i+1)}
		}

		var amount int64
		switch {
		case spec.AmountCents != nil:
			amount = *spec.AmountCents
		default:
			anyPercent = true
			if *spec.Percent <= 0 || *spec.Percent > 100 {
				return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("installment %d percent must be in (0, 100]", i+1)}
			}
			amount = int64(math.Round(float64(totalAmountCents) * *spec.Percent / 100))
		}
		if amount <= 0 {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("installment %d amount must be positive", i+1)}
		}

		grace := int32(domain.DefaultGracePeriodDays)
		if spec.GracePeriodDays != nil {
			grace = *spec.GracePeriodDays
		}

		result[i] = model.PlanInstallment{
			Number:          int32(i + 1),
			Label:           spec.Label,
			AmountCents:     amount,
			DueDate:         dueDateFor(spec, issuedAt),
			GracePeriodDays: grace,
		}
		sum += amount
	}

	if remainder := totalAmountCents - sum; remainder != 0 {
		if !anyPercent {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "installment amounts must sum to the invoice total"}
		}
		last := &result[len(result)-1]
		last.AmountCents += remainder
		if last.AmountCents <= 0 {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "rounding remainder drives the last installment below one cent"}
		}
	}

	return result, nil
}

func dueDateFor(spec model.InstallmentSpec, issuedAt time.Time) *time.Time {
	if spec.DueDate != nil {
		return spec.DueDate
	}
	if spec.DueInDays != nil {
		d := issuedAt.AddDate(0, 0, *spec.DueInDays)
		return &d
	}
	return nil
}
