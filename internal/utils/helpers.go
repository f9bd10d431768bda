package utils

import (
	"encoding/json"
	"time"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/gen/ent"
	stroompb "github.com/tbruins/stroomadvies/gen/proto/stroomadvies/v1"
	"github.com/tbruins/stroomadvies/internal/entity"
)

// ToProfile maps an ent row to the domain aggregate. Edges (estimate,
// verified usage, price checks) are filled in by the repository when
// loaded; this covers the scalar columns only.
func ToProfile(e *ent.Profile) *entity.Profile {
	ct, _ := constants.CanonicalizeContractType(e.ContractType)
	if e.ContractType == string(constants.ContractUnknown) {
		ct = constants.ContractUnknown
	}
	return &entity.Profile{
		ID: e.ID,
		Household: entity.HouseholdProfile{
			Size:               constants.HouseholdSize(e.HouseholdSize),
			Dwelling:           constants.DwellingType(e.DwellingType),
			WorksFromHome:      e.WorksFromHome,
			HasHeatPump:        e.HasHeatPump,
			HasDistrictHeating: e.HasDistrictHeating,
			HasSolarPanels:     e.HasSolarPanels,
		},
		Contract: entity.ContractSnapshot{
			Provider:       e.Provider,
			ContractType:   ct,
			MonthlyCostEUR: e.MonthlyCostEur,
		},
		Tier:      constants.Tier(e.Tier),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToUsageEstimate(e *ent.UsageEstimate) *entity.UsageEstimate {
	return &entity.UsageEstimate{
		KWhPerMonth: e.KwhPerMonth,
		RatePerKWh:  e.RatePerKwh,
		Confidence:  constants.Confidence(e.Confidence),
		Assumptions: e.Assumptions,
		Reasoning:   e.Reasoning,
		CreatedAt:   e.CreatedAt,
	}
}

func ToVerifiedUsage(e *ent.VerifiedUsage) *entity.VerifiedUsage {
	return &entity.VerifiedUsage{
		KWhPerMonth:  e.KwhPerMonth,
		RatePerKWh:   e.RatePerKwh,
		Provider:     e.Provider,
		ContractType: constants.ContractType(e.ContractType),
		Confidence:   constants.Confidence(e.Confidence),
		Warnings:     e.Warnings,
		ConfirmedAt:  e.ConfirmedAt,
	}
}

// ToPriceCheckResult decodes the stored offer JSON back into the domain
// shape. A row without a cheapest offer is the empty-market sentinel.
func ToPriceCheckResult(e *ent.PriceCheck) (*entity.PriceCheckResult, error) {
	out := &entity.PriceCheckResult{
		ID:                e.ID,
		CheckedAt:         e.CheckedAt,
		Source:            constants.UsageSource(e.Source),
		UsedKWhPerMonth:   e.UsedKwhPerMonth,
		UsedRatePerKWh:    e.UsedRatePerKwh,
		SnapshotSource:    constants.SnapshotSource(e.SnapshotSource),
		Recommendation:    constants.Recommendation(e.Recommendation),
		MonthlySavingsEUR: e.MonthlySavingsEur,
		Reasoning:         e.Reasoning,
	}
	if len(e.Top2) > 0 {
		if err := json.Unmarshal(e.Top2, &out.Top2); err != nil {
			return nil, err
		}
	}
	if len(e.Cheapest) > 0 {
		var cheapest entity.MarketOffer
		if err := json.Unmarshal(e.Cheapest, &cheapest); err != nil {
			return nil, err
		}
		out.Cheapest = &cheapest
	}
	return out, nil
}

func ToPBProfile(p *entity.Profile) *stroompb.Profile {
	out := &stroompb.Profile{
		Id:                 p.ID.String(),
		HouseholdSize:      string(p.Household.Size),
		DwellingType:       string(p.Household.Dwelling),
		WorksFromHome:      p.Household.WorksFromHome,
		HasHeatPump:        p.Household.HasHeatPump,
		HasDistrictHeating: p.Household.HasDistrictHeating,
		HasSolarPanels:     p.Household.HasSolarPanels,
		Provider:           p.Contract.Provider,
		ContractType:       string(p.Contract.ContractType),
		MonthlyCostEur:     p.Contract.MonthlyCostEUR,
		Tier:               string(p.Tier),
		Verified:           p.IsVerified(),
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.Estimate != nil {
		out.Estimate = ToPBUsageEstimate(p.Estimate)
	}
	if p.Verified != nil {
		out.VerifiedUsage = ToPBVerifiedUsage(p.Verified)
	}
	if p.LatestCheck != nil {
		out.LatestCheck = ToPBPriceCheckResult(p.LatestCheck)
	}
	return out
}

func ToPBUsageEstimate(e *entity.UsageEstimate) *stroompb.UsageEstimate {
	return &stroompb.UsageEstimate{
		KwhPerMonth: int32(e.KWhPerMonth),
		RatePerKwh:  e.RatePerKWh,
		Confidence:  string(e.Confidence),
		Assumptions: e.Assumptions,
		Reasoning:   e.Reasoning,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBVerifiedUsage(v *entity.VerifiedUsage) *stroompb.VerifiedUsage {
	return &stroompb.VerifiedUsage{
		KwhPerMonth:  v.KWhPerMonth,
		RatePerKwh:   v.RatePerKWh,
		Provider:     v.Provider,
		ContractType: string(v.ContractType),
		Confidence:   string(v.Confidence),
		Warnings:     v.Warnings,
		ConfirmedAt:  v.ConfirmedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBBillExtraction(e *entity.BillExtraction) *stroompb.BillExtraction {
	return &stroompb.BillExtraction{
		AnnualKwh:      e.AnnualKWh,
		MonthlyKwh:     e.MonthlyKWh,
		AnnualCostEur:  e.AnnualCostEUR,
		MonthlyCostEur: e.MonthlyCostEUR,
		PerKwhRate:     e.RatePerKWh,
		Provider:       e.Provider,
		ContractType:   string(e.ContractType),
		Confidence:     string(e.Confidence),
		Warnings:       e.Warnings,
	}
}

func FromPBBillExtraction(pb *stroompb.BillExtraction) *entity.BillExtraction {
	ct, ok := constants.CanonicalizeContractType(pb.GetContractType())
	if !ok {
		ct = constants.ContractUnknown
	}
	return &entity.BillExtraction{
		AnnualKWh:      pb.AnnualKwh,
		MonthlyKWh:     pb.MonthlyKwh,
		AnnualCostEUR:  pb.AnnualCostEur,
		MonthlyCostEUR: pb.MonthlyCostEur,
		RatePerKWh:     pb.PerKwhRate,
		Provider:       pb.GetProvider(),
		ContractType:   ct,
		Confidence:     constants.CanonicalizeConfidence(pb.GetConfidence()),
		Warnings:       pb.GetWarnings(),
	}
}

func ToPBMarketOffer(o *entity.MarketOffer) *stroompb.MarketOffer {
	return &stroompb.MarketOffer{
		Provider:                o.Provider,
		PerKwhRate:              o.RatePerKWh,
		ContractType:            string(o.ContractType),
		WelcomeBonusEur:         o.WelcomeBonusEUR,
		EffectiveMonthlyCostEur: o.EffectiveMonthlyCostEUR,
	}
}

func ToPBPriceCheckResult(r *entity.PriceCheckResult) *stroompb.PriceCheckResult {
	out := &stroompb.PriceCheckResult{
		Id:                r.ID.String(),
		CheckedAt:         r.CheckedAt.UTC().Format(time.RFC3339),
		Source:            string(r.Source),
		UsedKwhPerMonth:   r.UsedKWhPerMonth,
		UsedRatePerKwh:    r.UsedRatePerKWh,
		SnapshotSource:    string(r.SnapshotSource),
		Recommendation:    string(r.Recommendation),
		MonthlySavingsEur: r.MonthlySavingsEUR,
		Reasoning:         r.Reasoning,
	}
	for i := range r.Top2 {
		out.Top2 = append(out.Top2, ToPBMarketOffer(&r.Top2[i]))
	}
	if r.Cheapest != nil {
		out.Cheapest = ToPBMarketOffer(r.Cheapest)
	}
	return out
}

// ParseYMD parses a date-only string to midnight UTC, matching the DATE
// semantics of the export filters.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
