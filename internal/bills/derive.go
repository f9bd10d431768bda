package bills

import (
	"fmt"
	"math"
	"time"

	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
)

// timeProvider lets tests pin the confirmation timestamp.
type timeProvider func() time.Time

// Now is the default timeProvider.
func Now() time.Time { return time.Now().UTC() }

// ResolvedFigures is the monthly kWh and rate a confirmed bill yields.
type ResolvedFigures struct {
	KWhPerMonth float64
	RatePerKWh  float64
}

// mismatchTolerance is the relative gap between stated annual and monthly
// figures above which we flag an inconsistency instead of trusting either.
const mismatchTolerance = 0.10

// ResolveFigures derives the monthly figures from a nullable extraction.
// Monthly kWh falls back to annual/12; the rate falls back to cost/kWh on
// whichever period the document provides. Figures that cannot be derived
// fail the resolution; they are never defaulted.
func ResolveFigures(ext *entity.BillExtraction) (ResolvedFigures, []string, error) {
	if ext == nil {
		return ResolvedFigures{}, nil, common.NewAppError("BILL_RESOLVE", "nil extraction", common.ErrInvalidInput)
	}

	var warnings []string

	kwh, kwhWarning, ok := resolveMonthlyKWh(ext)
	if !ok {
		return ResolvedFigures{}, nil, common.NewAppError("BILL_RESOLVE",
			"document shows no monthly or annual kWh", common.ErrExtractionFailed)
	}
	if kwhWarning != "" {
		warnings = append(warnings, kwhWarning)
	}

	rate, rateWarning, ok := resolveRate(ext, kwh)
	if !ok {
		return ResolvedFigures{}, nil, common.NewAppError("BILL_RESOLVE",
			"document shows no per-kWh rate and no cost to derive one from", common.ErrExtractionFailed)
	}
	if rateWarning != "" {
		warnings = append(warnings, rateWarning)
	}

	return ResolvedFigures{KWhPerMonth: kwh, RatePerKWh: rate}, warnings, nil
}

func resolveMonthlyKWh(ext *entity.BillExtraction) (float64, string, bool) {
	if ext.MonthlyKWh != nil && *ext.MonthlyKWh > 0 {
		return *ext.MonthlyKWh, "", true
	}
	if ext.AnnualKWh != nil && *ext.AnnualKWh > 0 {
		return *ext.AnnualKWh / 12, "monthly kWh derived from annual figure", true
	}
	return 0, "", false
}

func resolveRate(ext *entity.BillExtraction, monthlyKWh float64) (float64, string, bool) {
	if ext.RatePerKWh != nil && *ext.RatePerKWh > 0 {
		return *ext.RatePerKWh, "", true
	}
	if ext.MonthlyCostEUR != nil && *ext.MonthlyCostEUR > 0 && monthlyKWh > 0 {
		return *ext.MonthlyCostEUR / monthlyKWh, "per-kWh rate derived from monthly cost", true
	}
	if ext.AnnualCostEUR != nil && *ext.AnnualCostEUR > 0 && monthlyKWh > 0 {
		return *ext.AnnualCostEUR / 12 / monthlyKWh, "per-kWh rate derived from annual cost", true
	}
	return 0, "", false
}

// consistencyWarnings cross-checks annual against monthly figures when the
// document states both. The extractor prompt asks the model to flag these
// too; the local check catches what the model missed.
func consistencyWarnings(ext *entity.BillExtraction) []string {
	var warnings []string
	if ext.AnnualKWh != nil && ext.MonthlyKWh != nil && *ext.MonthlyKWh > 0 {
		derived := *ext.AnnualKWh / 12
		if relativeGap(derived, *ext.MonthlyKWh) > mismatchTolerance {
			warnings = append(warnings, fmt.Sprintf(
				"stated monthly usage (%.0f kWh) does not match annual figure (%.0f kWh/year ≈ %.0f kWh/month)",
				*ext.MonthlyKWh, *ext.AnnualKWh, derived))
		}
	}
	if ext.AnnualCostEUR != nil && ext.MonthlyCostEUR != nil && *ext.MonthlyCostEUR > 0 {
		derived := *ext.AnnualCostEUR / 12
		if relativeGap(derived, *ext.MonthlyCostEUR) > mismatchTolerance {
			warnings = append(warnings, fmt.Sprintf(
				"stated monthly cost (EUR %.2f) does not match annual figure (EUR %.2f/year ≈ EUR %.2f/month)",
				*ext.MonthlyCostEUR, *ext.AnnualCostEUR, derived))
		}
	}
	return warnings
}

func relativeGap(a, b float64) float64 {
	if b == 0 {
		return math.Inf(1)
	}
	return math.Abs(a-b) / math.Abs(b)
}
