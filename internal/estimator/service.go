// Package estimator turns self-reported household attributes plus a
// reported monthly cost into a usage estimate via the reasoning oracle.
package estimator

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/oracle"
)

// Service handles baseline estimation. It is stateless between calls;
// persistence is the caller's responsibility.
type Service struct {
	oracle oracle.UsageEstimator
	logger *slog.Logger
}

func NewService(o oracle.UsageEstimator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{oracle: o, logger: logger}
}

// Estimate produces a UsageEstimate for the household. The reported
// monthly cost must be strictly positive. On any oracle failure the
// error wraps ErrEstimationFailed and no estimate is returned, so the
// caller cannot accidentally overwrite a prior estimate with zeroes.
func (s *Service) Estimate(ctx context.Context, household entity.HouseholdProfile, contract entity.ContractSnapshot) (*entity.UsageEstimate, error) {
	if contract.MonthlyCostEUR <= 0 {
		return nil, common.NewAppError("ESTIMATE_INPUT", "monthly cost must be greater than zero", common.ErrInvalidInput)
	}
	if household.Size == "" || household.Dwelling == "" {
		return nil, common.NewAppError("ESTIMATE_INPUT", "household size and dwelling type are required", common.ErrInvalidInput)
	}

	req := oracle.EstimateRequest{
		HouseholdSize:      string(household.Size),
		DwellingType:       string(household.Dwelling),
		WorksFromHome:      household.WorksFromHome,
		HasHeatPump:        household.HasHeatPump,
		HasDistrictHeating: household.HasDistrictHeating,
		HasSolarPanels:     household.HasSolarPanels,
		Provider:           contract.Provider,
		ContractType:       string(contract.ContractType),
		MonthlyCostEUR:     contract.MonthlyCostEUR,
	}

	fields, _, err := s.oracle.EstimateUsage(ctx, req)
	if err != nil {
		s.logger.Error("estimator.oracle_failed", "error", err)
		return nil, common.NewAppError("ESTIMATE_ORACLE", "usage estimation failed", wrapEstimation(err))
	}
	if fields.EstimatedKWhPerMonth <= 0 {
		return nil, common.NewAppError("ESTIMATE_ORACLE", "oracle returned non-positive kWh", wrapEstimation(common.ErrOraclePayloadInvalid))
	}

	// The implied rate is a local identity, not an oracle judgment:
	// rate = monthlyCost / estimatedKwh, always.
	rate := contract.MonthlyCostEUR / float64(fields.EstimatedKWhPerMonth)
	if drift := math.Abs(rate - fields.EstimatedPerKWhRate); drift > 0.01 {
		s.logger.Warn("estimator.rate_drift",
			"oracle_rate", fields.EstimatedPerKWhRate,
			"implied_rate", rate,
			"drift", drift,
		)
	}

	est := &entity.UsageEstimate{
		KWhPerMonth: fields.EstimatedKWhPerMonth,
		RatePerKWh:  rate,
		Confidence:  constants.CanonicalizeConfidence(fields.ConfidenceLevel),
		Assumptions: fields.Assumptions,
		Reasoning:   fields.Reasoning,
		CreatedAt:   time.Now().UTC(),
	}

	s.logger.Info("estimator.ok",
		"kwh_per_month", est.KWhPerMonth,
		"rate_per_kwh", est.RatePerKWh,
		"confidence", est.Confidence,
	)
	return est, nil
}

// wrapEstimation keeps the original cause while tagging the failure kind.
func wrapEstimation(cause error) error {
	return fmt.Errorf("%w: %w", common.ErrEstimationFailed, cause)
}
