package market

import (
	"sort"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/entity"
)

// EffectiveMonthlyCost is what the user would pay per month on an offer:
// rate × usage, minus the amortized welcome bonus, plus the amortized
// switching cost when leaving the current contract costs anything.
func EffectiveMonthlyCost(offer entity.MarketOffer, kwhPerMonth float64, applySwitchingCost bool, p Policy) float64 {
	cost := offer.RatePerKWh*kwhPerMonth - p.bonusPerMonth(offer.WelcomeBonusEUR)
	if applySwitchingCost {
		cost += p.SwitchingCostPerMonth()
	}
	return cost
}

// CurrentMonthlyCost is the user's cost on their own contract: plain
// rate × usage, with no bonus or switching terms.
func CurrentMonthlyCost(figures entity.UsageFigures) float64 {
	return figures.RatePerKWh * figures.KWhPerMonth
}

// Rank computes the effective monthly cost of every offer and returns
// them cheapest-first. Switching cost applies to every candidate or to
// none: it is a property of the contract being left, decided solely by
// the current contract type.
func Rank(offers []entity.MarketOffer, figures entity.UsageFigures, currentContract constants.ContractType, p Policy) []entity.MarketOffer {
	applySwitching := currentContract.IncursSwitchingCost()

	ranked := make([]entity.MarketOffer, len(offers))
	copy(ranked, offers)
	for i := range ranked {
		ranked[i].EffectiveMonthlyCostEUR = EffectiveMonthlyCost(ranked[i], figures.KWhPerMonth, applySwitching, p)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EffectiveMonthlyCostEUR < ranked[j].EffectiveMonthlyCostEUR
	})
	return ranked
}

// Decide applies the switch threshold: SWITCH only on savings strictly
// above the threshold. This is a fixed business rule enforced locally; it
// overrides whatever the oracle's own narrative recommends.
func Decide(monthlySavingsEUR float64, p Policy) constants.Recommendation {
	if monthlySavingsEUR > p.SwitchThresholdEUR {
		return constants.RecommendSwitch
	}
	return constants.RecommendStay
}
