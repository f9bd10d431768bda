package entity

import (
	"time"

	"github.com/tbruins/stroomadvies/constants"
)

// UsageEstimate is the unverified AI estimate produced at signup.
type UsageEstimate struct {
	KWhPerMonth int                  `json:"kwh_per_month"`
	RatePerKWh  float64              `json:"rate_per_kwh"`
	Confidence  constants.Confidence `json:"confidence"`
	Assumptions []string             `json:"assumptions,omitempty"`
	Reasoning   string               `json:"reasoning,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// VerifiedUsage holds bill-derived figures after the user confirmed the
// extraction. Once present it supersedes the estimate everywhere and is
// never programmatically reverted.
type VerifiedUsage struct {
	KWhPerMonth  float64                `json:"kwh_per_month"`
	RatePerKWh   float64                `json:"rate_per_kwh"`
	Provider     string                 `json:"provider,omitempty"`
	ContractType constants.ContractType `json:"contract_type"`
	Confidence   constants.Confidence   `json:"confidence"`
	Warnings     []string               `json:"warnings,omitempty"`
	ConfirmedAt  time.Time              `json:"confirmed_at"`
}

// BillExtraction is the raw extractor output before user confirmation.
// Numeric fields are nullable: a partial document yields nils plus a
// warning per gap, never a guessed number.
type BillExtraction struct {
	AnnualKWh      *float64               `json:"annual_kwh"`
	MonthlyKWh     *float64               `json:"monthly_kwh"`
	AnnualCostEUR  *float64               `json:"annual_cost_eur"`
	MonthlyCostEUR *float64               `json:"monthly_cost_eur"`
	RatePerKWh     *float64               `json:"per_kwh_rate"`
	ContractType   constants.ContractType `json:"contract_type"`
	Provider       string                 `json:"provider_name,omitempty"`
	Confidence     constants.Confidence   `json:"extraction_confidence"`
	Warnings       []string               `json:"warnings,omitempty"`
}
