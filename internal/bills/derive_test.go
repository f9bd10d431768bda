package bills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
)

func f(v float64) *float64 { return &v }

func TestResolveFiguresPrefersStatedMonthly(t *testing.T) {
	figures, warnings, err := ResolveFigures(&entity.BillExtraction{
		MonthlyKWh: f(250),
		RatePerKWh: f(0.40),
	})
	require.NoError(t, err)
	assert.InDelta(t, 250.0, figures.KWhPerMonth, 1e-9)
	assert.InDelta(t, 0.40, figures.RatePerKWh, 1e-9)
	assert.Empty(t, warnings)
}

func TestResolveFiguresDerivesMonthlyFromAnnual(t *testing.T) {
	figures, warnings, err := ResolveFigures(&entity.BillExtraction{
		AnnualKWh:  f(3000),
		RatePerKWh: f(0.40),
	})
	require.NoError(t, err)
	assert.InDelta(t, 250.0, figures.KWhPerMonth, 1e-9)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "annual")
}

func TestResolveFiguresDerivesRateFromCost(t *testing.T) {
	t.Run("from monthly cost", func(t *testing.T) {
		figures, warnings, err := ResolveFigures(&entity.BillExtraction{
			MonthlyKWh:     f(250),
			MonthlyCostEUR: f(100),
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.40, figures.RatePerKWh, 1e-9)
		require.Len(t, warnings, 1)
	})

	t.Run("from annual cost", func(t *testing.T) {
		figures, _, err := ResolveFigures(&entity.BillExtraction{
			MonthlyKWh:    f(250),
			AnnualCostEUR: f(1200),
		})
		require.NoError(t, err)
		assert.InDelta(t, 1200.0/12/250, figures.RatePerKWh, 1e-9)
	})
}

func TestResolveFiguresFailsWithoutUsage(t *testing.T) {
	_, _, err := ResolveFigures(&entity.BillExtraction{
		MonthlyCostEUR: f(100),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestResolveFiguresFailsWithoutRateOrCost(t *testing.T) {
	_, _, err := ResolveFigures(&entity.BillExtraction{
		MonthlyKWh: f(250),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestResolveFiguresNilExtraction(t *testing.T) {
	_, _, err := ResolveFigures(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestConsistencyWarnings(t *testing.T) {
	t.Run("mismatched annual and monthly usage", func(t *testing.T) {
		warnings := consistencyWarnings(&entity.BillExtraction{
			AnnualKWh:  f(3600), // implies 300/month
			MonthlyKWh: f(200),
		})
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "does not match")
	})

	t.Run("consistent figures stay quiet", func(t *testing.T) {
		warnings := consistencyWarnings(&entity.BillExtraction{
			AnnualKWh:      f(3000),
			MonthlyKWh:     f(250),
			AnnualCostEUR:  f(1200),
			MonthlyCostEUR: f(100),
		})
		assert.Empty(t, warnings)
	})

	t.Run("small rounding gaps are tolerated", func(t *testing.T) {
		warnings := consistencyWarnings(&entity.BillExtraction{
			AnnualKWh:  f(3000),
			MonthlyKWh: f(245), // ~2% off 250
		})
		assert.Empty(t, warnings)
	})
}
