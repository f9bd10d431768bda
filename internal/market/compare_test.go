package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/entity"
)

func TestEffectiveMonthlyCost(t *testing.T) {
	p := DefaultPolicy()
	offer := entity.MarketOffer{Provider: "Budget Energie", RatePerKWh: 0.30, WelcomeBonusEUR: 75}

	t.Run("flexible contract pays no switching cost", func(t *testing.T) {
		cost := EffectiveMonthlyCost(offer, 300, false, p)
		assert.InDelta(t, 0.30*300-75.0/12, cost, 1e-9)
	})

	t.Run("fixed contract pays the amortized switching cost", func(t *testing.T) {
		cost := EffectiveMonthlyCost(offer, 300, true, p)
		assert.InDelta(t, 0.30*300-75.0/12+6.25, cost, 1e-9)
	})

	t.Run("no bonus means no bonus credit", func(t *testing.T) {
		plain := entity.MarketOffer{Provider: "Frank Energie", RatePerKWh: 0.28}
		assert.InDelta(t, 0.28*300, EffectiveMonthlyCost(plain, 300, false, p), 1e-9)
	})
}

func TestRankOrdersByEffectiveCost(t *testing.T) {
	p := DefaultPolicy()
	figures := entity.UsageFigures{KWhPerMonth: 300, RatePerKWh: 0.45}
	offers := []entity.MarketOffer{
		{Provider: "Expensive", RatePerKWh: 0.40},
		{Provider: "CheapRate", RatePerKWh: 0.30},
		// higher rate but a large bonus can still win the ranking
		{Provider: "BigBonus", RatePerKWh: 0.32, WelcomeBonusEUR: 120},
	}

	ranked := Rank(offers, figures, constants.ContractFlexible, p)
	require.Len(t, ranked, 3)
	assert.Equal(t, "BigBonus", ranked[0].Provider)
	assert.Equal(t, "CheapRate", ranked[1].Provider)
	assert.Equal(t, "Expensive", ranked[2].Provider)

	// effective costs are filled in, ascending
	assert.LessOrEqual(t, ranked[0].EffectiveMonthlyCostEUR, ranked[1].EffectiveMonthlyCostEUR)
	assert.LessOrEqual(t, ranked[1].EffectiveMonthlyCostEUR, ranked[2].EffectiveMonthlyCostEUR)
}

func TestRankSwitchingCostDependsOnCurrentContract(t *testing.T) {
	p := DefaultPolicy()
	figures := entity.UsageFigures{KWhPerMonth: 300, RatePerKWh: 0.45}
	offers := []entity.MarketOffer{{Provider: "A", RatePerKWh: 0.30}}

	fixed := Rank(offers, figures, constants.ContractFixed, p)
	flexible := Rank(offers, figures, constants.ContractFlexible, p)
	dynamic := Rank(offers, figures, constants.ContractDynamic, p)

	assert.InDelta(t, p.SwitchingCostPerMonth(), fixed[0].EffectiveMonthlyCostEUR-flexible[0].EffectiveMonthlyCostEUR, 1e-9)
	assert.InDelta(t, flexible[0].EffectiveMonthlyCostEUR, dynamic[0].EffectiveMonthlyCostEUR, 1e-9)
}

func TestDecideThresholdIsStrict(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, constants.RecommendStay, Decide(10.00, p))
	assert.Equal(t, constants.RecommendSwitch, Decide(10.01, p))
	assert.Equal(t, constants.RecommendStay, Decide(0, p))
	assert.Equal(t, constants.RecommendStay, Decide(-5, p))
}

func TestPolicyAmortization(t *testing.T) {
	p := Policy{SwitchingCostEUR: 75, AmortizationMonths: 12, BonusAmortMonths: 12, SwitchThresholdEUR: 10}
	assert.InDelta(t, 6.25, p.SwitchingCostPerMonth(), 1e-9)

	zero := Policy{SwitchingCostEUR: 75}
	assert.Zero(t, zero.SwitchingCostPerMonth())
}
