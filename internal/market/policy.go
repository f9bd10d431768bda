package market

// Policy holds the switching-cost and decision rules. These are business
// policy, configurable per deployment, not properties of the market data.
type Policy struct {
	// SwitchingCostEUR is the one-off cost of leaving a fixed-term
	// contract early, amortized over AmortizationMonths.
	SwitchingCostEUR   float64
	AmortizationMonths int
	// BonusAmortMonths spreads a one-time welcome bonus over the period
	// the customer is assumed to keep the new contract.
	BonusAmortMonths int
	// SwitchThresholdEUR is the monthly saving strictly above which we
	// recommend switching.
	SwitchThresholdEUR float64
}

// DefaultPolicy reflects the Dutch consumer market: roughly EUR 75 to
// leave a fixed contract, both amortizations over a year, and a EUR 10
// threshold below which switching is not worth the hassle.
func DefaultPolicy() Policy {
	return Policy{
		SwitchingCostEUR:   75,
		AmortizationMonths: 12,
		BonusAmortMonths:   12,
		SwitchThresholdEUR: 10,
	}
}

// SwitchingCostPerMonth is the amortized monthly switching cost.
func (p Policy) SwitchingCostPerMonth() float64 {
	if p.AmortizationMonths <= 0 {
		return 0
	}
	return p.SwitchingCostEUR / float64(p.AmortizationMonths)
}

func (p Policy) bonusPerMonth(bonusEUR float64) float64 {
	if p.BonusAmortMonths <= 0 {
		return 0
	}
	return bonusEUR / float64(p.BonusAmortMonths)
}
