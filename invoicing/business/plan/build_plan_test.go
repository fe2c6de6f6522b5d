package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
)

func amountSpec(cents int64) model.InstallmentSpec {
	return model.InstallmentSpec{AmountCents: &cents}
}

func percentSpec(pct float64) model.InstallmentSpec {
	return model.InstallmentSpec{Percent: &pct}
}

func TestBuildPlanThreeEqualThirds(t *testing.T) {
	issuedAt := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	// 1000.00 split in thirds: rounding leaves ten cents for the last
	// installment to absorb.
	plan, err := BuildPlan(100000, issuedAt, []model.InstallmentSpec{
		percentSpec(33.33),
		percentSpec(33.33),
		percentSpec(33.34),
	})
	require.NoError(t, err)
	require.Len(t, plan, 3)

	assert.Equal(t, int64(33330), plan[0].AmountCents)
	assert.Equal(t, int64(33330), plan[1].AmountCents)
	assert.Equal(t, int64(33340), plan[2].AmountCents)

	var sum int64
	for _, inst := range plan {
		sum += inst.AmountCents
	}
	assert.Equal(t, int64(100000), sum)
}

func TestBuildPlanRemainderGoesToLast(t *testing.T) {
	issuedAt := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	// Three times 33.33% of 100.01 rounds to 3333+3333+3333 = 9999;
	// the last installment absorbs the two missing cents.
	plan, err := BuildPlan(10001, issuedAt, []model.InstallmentSpec{
		percentSpec(33.33),
		percentSpec(33.33),
		percentSpec(33.33),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3333), plan[0].AmountCents)
	assert.Equal(t, int64(3333), plan[1].AmountCents)
	assert.Equal(t, int64(3335), plan[2].AmountCents)
}

func TestBuildPlanExplicitAmounts(t *testing.T) {
	issuedAt := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		total         int64
		specs         []model.InstallmentSpec
		expectedError string
	}{
		{
			name:  "amounts_sum_exactly",
			total: 10000,
			specs: []model.InstallmentSpec{amountSpec(4000), amountSpec(6000)},
		},
		{
			name:          "amounts_do_not_sum",
			total:         10000,
			specs:         []model.InstallmentSpec{amountSpec(4000), amountSpec(5000)},
			expectedError: "installment amounts must sum to the invoice total",
		},
		{
			name:  "mixed_amount_and_percent_absorbs_remainder",
			total: 10000,
			specs: []model.InstallmentSpec{amountSpec(5000), percentSpec(50)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := BuildPlan(tc.total, issuedAt, tc.specs)
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)

			var sum int64
			for _, inst := range plan {
				sum += inst.AmountCents
			}
			assert.Equal(t, tc.total, sum)
		})
	}
}

func TestBuildPlanValidation(t *testing.T) {
	issuedAt := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	amount := int64(5000)
	pct := 50.0
	due := issuedAt.AddDate(0, 0, 30)
	days := 30
	negativeGrace := int32(-1)

	testCases := []struct {
		name          string
		total         int64
		specs         []model.InstallmentSpec
		expectedError string
	}{
		{
			name:          "zero_total",
			total:         0,
			specs:         []model.InstallmentSpec{amountSpec(1)},
			expectedError: "plan total must be positive",
		},
		{
			name:          "no_installments",
			total:         10000,
			specs:         nil,
			expectedError: "at least one installment",
		},
		{
			name:          "both_amount_and_percent",
			total:         10000,
			specs:         []model.InstallmentSpec{{AmountCents: &amount, Percent: &pct}},
			expectedError: "exactly one of amount or percent",
		},
		{
			name:          "neither_amount_nor_percent",
			total:         10000,
			specs:         []model.InstallmentSpec{{}},
			expectedError: "exactly one of amount or percent",
		},
		{
			name:          "both_due_date_and_offset",
			total:         10000,
			specs:         []model.InstallmentSpec{{AmountCents: &amount, DueDate: &due, DueInDays: &days}},
			expectedError: "both a due date and a due offset",
		},
		{
			name:          "percent_out_of_range",
			total:         10000,
			specs:         []model.InstallmentSpec{percentSpec(120)},
			expectedError: "percent must be in (0, 100]",
		},
		{
			name:          "negative_grace",
			total:         10000,
			specs:         []model.InstallmentSpec{{AmountCents: &amount, GracePeriodDays: &negativeGrace}},
			expectedError: "negative grace period",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildPlan(tc.total, issuedAt, tc.specs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}

func TestBuildPlanDueDatesAndGrace(t *testing.T) {
	issuedAt := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	explicitDue := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	days := 30
	zeroGrace := int32(0)

	specs := []model.InstallmentSpec{
		{AmountCents: ptrInt64(3000), DueDate: &explicitDue},
		{AmountCents: ptrInt64(3000), DueInDays: &days, GracePeriodDays: &zeroGrace},
		{AmountCents: ptrInt64(4000)},
	}

	plan, err := BuildPlan(10000, issuedAt, specs)
	require.NoError(t, err)

	require.NotNil(t, plan[0].DueDate)
	assert.Equal(t, explicitDue, *plan[0].DueDate)
	assert.Equal(t, int32(domain.DefaultGracePeriodDays), plan[0].GracePeriodDays)

	require.NotNil(t, plan[1].DueDate)
	assert.Equal(t, issuedAt.AddDate(0, 0, 30), *plan[1].DueDate)
	assert.Equal(t, int32(0), plan[1].GracePeriodDays)

	assert.Nil(t, plan[2].DueDate)
	assert.Equal(t, int32(1), plan[0].Number)
	assert.Equal(t, int32(3), plan[2].Number)
}

func ptrInt64(v int64) *int64 { return &v }
