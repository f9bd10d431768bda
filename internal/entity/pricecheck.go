package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/constants"
)

// MarketOffer is one competing offer considered in a price check.
// Offers are ephemeral: only the top two plus the winner survive a run.
type MarketOffer struct {
	Provider                string                 `json:"provider"`
	RatePerKWh              float64                `json:"per_kwh_rate"`
	ContractType            constants.ContractType `json:"contract_type"`
	WelcomeBonusEUR         float64                `json:"welkomsbonus,omitempty"`
	EffectiveMonthlyCostEUR float64                `json:"effective_monthly_cost_eur"`
}

// PriceCheckResult is the advisory outcome of one comparator run.
// Cheapest == nil is the empty-market sentinel: no offers could be
// ranked, which is different from a ranked result that saves nothing.
type PriceCheckResult struct {
	ID                uuid.UUID                `json:"id"`
	CheckedAt         time.Time                `json:"checked_at"`
	Source            constants.UsageSource    `json:"source"`
	UsedKWhPerMonth   float64                  `json:"used_kwh_per_month"`
	UsedRatePerKWh    float64                  `json:"used_rate_per_kwh"`
	SnapshotSource    constants.SnapshotSource `json:"snapshot_source"`
	Top2              []MarketOffer            `json:"top2_providers"`
	Cheapest          *MarketOffer             `json:"cheapest_overall,omitempty"`
	Recommendation    constants.Recommendation `json:"recommendation"`
	MonthlySavingsEUR float64                  `json:"monthly_savings"`
	Reasoning         string                   `json:"reasoning,omitempty"`
}

// HasOffers reports whether the run ranked at least one offer.
func (r *PriceCheckResult) HasOffers() bool {
	return r.Cheapest != nil
}
