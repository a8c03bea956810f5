package calculation

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/investease/sip-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sipInput(monthly, rate float64, years int) domain.SIPInput {
	return domain.SIPInput{
		MonthlyContribution:     decimal.NewFromFloat(monthly),
		AnnualReturnRatePercent: decimal.NewFromFloat(rate),
		DurationYears:           years,
	}
}

func TestComputeMaturityValue(t *testing.T) {
	tests := []struct {
		name         string
		contribution decimal.Decimal
		ratePct      decimal.Decimal
		months       int
		expected     decimal.Decimal
		tolerance    decimal.Decimal
	}{
		{
			name:         "5000 at 12% over 120 months",
			contribution: decimal.NewFromInt(5000),
			ratePct:      decimal.NewFromInt(12),
			months:       120,
			expected:     decimal.NewFromFloat(1161695.38),
			tolerance:    decimal.NewFromFloat(0.01),
		},
		{
			name:         "single month is contribution grown one period",
			contribution: decimal.NewFromInt(1000),
			ratePct:      decimal.NewFromInt(12),
			months:       1,
			expected:     decimal.NewFromInt(1010), // 1000 * 1.01
			tolerance:    decimal.NewFromFloat(0.000001),
		},
		{
			name:         "zero rate returns principal only",
			contribution: decimal.NewFromInt(2500),
			ratePct:      decimal.Zero,
			months:       36,
			expected:     decimal.NewFromInt(90000),
			tolerance:    decimal.Zero,
		},
		{
			name:         "zero months",
			contribution: decimal.NewFromInt(2500),
			ratePct:      decimal.NewFromInt(10),
			months:       0,
			expected:     decimal.Zero,
			tolerance:    decimal.NewFromFloat(0.000001),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMaturityValue(tt.contribution, tt.ratePct, tt.months)
			assert.True(t, got.Sub(tt.expected).Abs().LessThanOrEqual(tt.tolerance),
				"expected %s, got %s", tt.expected.StringFixed(2), got.StringFixed(2))
		})
	}
}

func TestComputeMaturityValue_NonPositiveInputsYieldZero(t *testing.T) {
	rate := decimal.NewFromInt(10)
	assert.True(t, ComputeMaturityValue(decimal.NewFromInt(1000), rate, -12).IsZero())
	assert.True(t, ComputeMaturityValue(decimal.NewFromInt(-1000), rate, 12).IsZero())
	assert.True(t, ComputeMaturityValue(decimal.NewFromInt(-1000), decimal.Zero, 12).IsZero())
}

func TestProjectSeries_MatchesClosedForm(t *testing.T) {
	for _, in := range []domain.SIPInput{
		sipInput(5000, 7.3, MaxDurationYears),
		sipInput(2500.50, 11.75, 40),
		sipInput(1000, 0, 30),
	} {
		series, err := ProjectSeries(in)
		require.NoError(t, err)
		tolerance := decimal.NewFromFloat(0.000001)
		for _, p := range series {
			want := ComputeMaturityValue(in.MonthlyContribution, in.AnnualReturnRatePercent, p.Year*12)
			assert.True(t, p.CumulativeValue.Sub(want).Abs().LessThan(tolerance),
				"%s at %s%%: got %s want %s", p.Label, in.AnnualReturnRatePercent, p.CumulativeValue, want)
			assert.GreaterOrEqual(t, p.CumulativeValue.Exponent(), -workingPlaces, "%s precision is bounded", p.Label)
		}
	}
}

func TestCompound(t *testing.T) {
	assert.True(t, compound(decimal.NewFromFloat(1.01), 0).Equal(decimalOne))
	assert.Equal(t, "1.126825030131969720661201", compound(decimal.NewFromFloat(1.01), 12).String())
	assert.True(t, compound(decimalOne, 1200).Equal(decimalOne))
	assert.True(t, compound(decimal.NewFromInt(2), 10).Equal(decimal.NewFromInt(1024)))
}

func TestSummarize_ReferenceExample(t *testing.T) {
	res, err := Summarize(sipInput(5000, 12, 10))
	require.NoError(t, err)

	assert.True(t, res.TotalInvested.Equal(decimal.NewFromInt(600000)), "total invested %s", res.TotalInvested)
	assert.Equal(t, "1161695", res.MaturityValue.Round(0).String())
	assert.Equal(t, "561695", res.TotalReturns.Round(0).String())
	assert.Len(t, res.Series, 10)
}

func TestSummarize_OneYear(t *testing.T) {
	res, err := Summarize(sipInput(1000, 8, 1))
	require.NoError(t, err)

	assert.True(t, res.TotalInvested.Equal(decimal.NewFromInt(12000)))
	require.Len(t, res.Series, 1)
	assert.Equal(t, "Year 1", res.Series[0].Label)
	assert.Equal(t, 1, res.Series[0].Year)
	assert.True(t, res.Series[0].CumulativeInvested.Equal(decimal.NewFromInt(12000)))
	assert.True(t, res.MaturityValue.GreaterThan(res.TotalInvested))
}

func TestSummarize_ZeroRate(t *testing.T) {
	res, err := Summarize(sipInput(5000, 0, 10))
	require.NoError(t, err)

	assert.True(t, res.MaturityValue.Equal(res.TotalInvested), "maturity %s invested %s", res.MaturityValue, res.TotalInvested)
	assert.True(t, res.TotalReturns.IsZero())
	for _, p := range res.Series {
		assert.True(t, p.CumulativeValue.Equal(p.CumulativeInvested), "%s", p.Label)
	}
}

func TestSummarize_SeriesProperties(t *testing.T) {
	inputs := []domain.SIPInput{
		sipInput(5000, 12, 10),
		sipInput(1000, 8, 1),
		sipInput(500, 0.1, 50),
		sipInput(2500.50, 7.25, 17),
		sipInput(100000, 30, 25),
		sipInput(5000, 7.3, MaxDurationYears),
	}

	for _, in := range inputs {
		name := fmt.Sprintf("%s@%s%%x%d", in.MonthlyContribution, in.AnnualReturnRatePercent, in.DurationYears)
		t.Run(name, func(t *testing.T) {
			res, err := Summarize(in)
			require.NoError(t, err)
			require.Len(t, res.Series, in.DurationYears)

			for i, p := range res.Series {
				assert.Equal(t, i+1, p.Year)
				assert.Equal(t, fmt.Sprintf("Year %d", i+1), p.Label)
				if i > 0 {
					prev := res.Series[i-1]
					assert.True(t, p.CumulativeInvested.GreaterThan(prev.CumulativeInvested), "invested not increasing at %s", p.Label)
					assert.True(t, p.CumulativeValue.GreaterThan(prev.CumulativeValue), "value not increasing at %s", p.Label)
				}
			}

			last, ok := res.FinalYear()
			require.True(t, ok)
			assert.True(t, last.CumulativeValue.Equal(res.MaturityValue), "final value %s != maturity %s", last.CumulativeValue, res.MaturityValue)
			assert.True(t, last.CumulativeInvested.Equal(res.TotalInvested), "final invested %s != total %s", last.CumulativeInvested, res.TotalInvested)
			assert.True(t, res.TotalReturns.Equal(res.MaturityValue.Sub(res.TotalInvested)))
		})
	}
}

func TestProjectSeries_Restartable(t *testing.T) {
	in := sipInput(3000, 11, 12)
	first, err := ProjectSeries(in)
	require.NoError(t, err)
	second, err := ProjectSeries(in)
	require.NoError(t, err)

	opt := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(first, second, opt); diff != "" {
		t.Fatalf("series differ between runs (-first +second):\n%s", diff)
	}
}

func TestSummarize_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input domain.SIPInput
		field string
	}{
		{"negative contribution", sipInput(-100, 12, 10), FieldMonthlyContribution},
		{"zero contribution", sipInput(0, 12, 10), FieldMonthlyContribution},
		{"negative rate", sipInput(5000, -1, 10), FieldAnnualReturnRate},
		{"zero years", sipInput(5000, 12, 0), FieldDurationYears},
		{"negative years", sipInput(5000, 12, -3), FieldDurationYears},
		{"horizon beyond ceiling", sipInput(5000, 12, MaxDurationYears+1), FieldDurationYears},
		{"missing everything", domain.SIPInput{}, FieldMonthlyContribution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Summarize(tt.input)
			require.Error(t, err)
			assert.Empty(t, res.Series)

			var invalidErr *InvalidInputError
			require.True(t, errors.As(err, &invalidErr), "expected InvalidInputError, got %T", err)
			assert.Equal(t, tt.field, invalidErr.Field)
			assert.Contains(t, err.Error(), tt.field)

			series, err := ProjectSeries(tt.input)
			assert.Error(t, err)
			assert.Nil(t, series)
		})
	}
}

func TestSummarize_ConcurrentCallers(t *testing.T) {
	in := sipInput(5000, 12, 10)
	want, err := Summarize(in)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]domain.SIPResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Summarize(in)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.True(t, got.MaturityValue.Equal(want.MaturityValue))
		assert.Len(t, got.Series, len(want.Series))
	}
}

func TestMonthlyRate(t *testing.T) {
	assert.True(t, MonthlyRate(decimal.NewFromInt(12)).Equal(decimal.NewFromFloat(0.01)))
	assert.True(t, MonthlyRate(decimal.Zero).IsZero())
}
