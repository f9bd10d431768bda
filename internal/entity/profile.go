package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/common"
)

// HouseholdProfile holds the self-reported household attributes the
// estimator works from. Immutable once captured except through an
// explicit profile edit.
type HouseholdProfile struct {
	Size               constants.HouseholdSize `json:"household_size"`
	Dwelling           constants.DwellingType  `json:"dwelling_type"`
	WorksFromHome      bool                    `json:"works_from_home"`
	HasHeatPump        bool                    `json:"has_heat_pump"`
	HasDistrictHeating bool                    `json:"has_district_heating"`
	HasSolarPanels     bool                    `json:"has_solar_panels"`
}

// ContractSnapshot is the user's self-reported current contract.
type ContractSnapshot struct {
	Provider       string                 `json:"provider"`
	ContractType   constants.ContractType `json:"contract_type"`
	MonthlyCostEUR float64                `json:"monthly_cost_eur"`
}

// Profile aggregates everything the advisor knows about one household.
type Profile struct {
	ID          uuid.UUID         `json:"id"`
	Household   HouseholdProfile  `json:"household"`
	Contract    ContractSnapshot  `json:"contract"`
	Estimate    *UsageEstimate    `json:"estimate,omitempty"`
	Verified    *VerifiedUsage    `json:"verified,omitempty"`
	Tier        constants.Tier    `json:"tier"`
	LatestCheck *PriceCheckResult `json:"latest_check,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// UsageFigures is the resolved authoritative usage for downstream
// computation, tagged with where it came from.
type UsageFigures struct {
	Source      constants.UsageSource `json:"source"`
	KWhPerMonth float64               `json:"kwh_per_month"`
	RatePerKWh  float64               `json:"rate_per_kwh"`
}

// AuthoritativeUsage resolves the figures every downstream computation
// must use. Verified bill data strictly supersedes the AI estimate; a
// profile with neither yields ErrNoUsageData. This is the single place
// that decides which field wins, so callers cannot read the wrong one.
func (p *Profile) AuthoritativeUsage() (UsageFigures, error) {
	if p.Verified != nil {
		return UsageFigures{
			Source:      constants.SourceVerified,
			KWhPerMonth: p.Verified.KWhPerMonth,
			RatePerKWh:  p.Verified.RatePerKWh,
		}, nil
	}
	if p.Estimate != nil {
		return UsageFigures{
			Source:      constants.SourceEstimated,
			KWhPerMonth: float64(p.Estimate.KWhPerMonth),
			RatePerKWh:  p.Estimate.RatePerKWh,
		}, nil
	}
	return UsageFigures{}, common.ErrNoUsageData
}

// IsVerified reports whether bill-derived figures are in force.
func (p *Profile) IsVerified() bool {
	return p.Verified != nil
}

// CurrentContractType returns the contract type in force: the verified
// one when a bill named it, otherwise the self-reported one.
func (p *Profile) CurrentContractType() constants.ContractType {
	if p.Verified != nil && p.Verified.ContractType != constants.ContractUnknown {
		return p.Verified.ContractType
	}
	return p.Contract.ContractType
}
