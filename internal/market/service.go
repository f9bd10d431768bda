// Package market compares the user's effective electricity rate against
// competing offers and produces a SWITCH/STAY recommendation with a
// defensible monthly-savings number.
package market

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/oracle"
)

// Service runs price checks. Stateless between calls; the caller persists
// the result and timestamp.
type Service struct {
	live     SnapshotProvider
	fallback SnapshotProvider
	policy   Policy
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(live, fallback SnapshotProvider, policy Policy, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		live:     live,
		fallback: fallback,
		policy:   policy,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock pins the result timestamp, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Check compares the profile's authoritative usage against the market.
// The usage figures and their source are captured here, before any oracle
// call, so a verification landing mid-flight can never relabel this run.
func (s *Service) Check(ctx context.Context, profile *entity.Profile) (*entity.PriceCheckResult, error) {
	figures, err := profile.AuthoritativeUsage()
	if err != nil {
		return nil, err
	}
	currentContract := profile.CurrentContractType()

	req := oracle.MarketRequest{
		CurrentProvider: profile.Contract.Provider,
		ContractType:    string(currentContract),
		RatePerKWh:      figures.RatePerKWh,
		KWhPerMonth:     figures.KWhPerMonth,
	}

	snapshot, err := s.obtainSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	ranked := Rank(snapshot.Offers, figures, currentContract, s.policy)

	result := &entity.PriceCheckResult{
		ID:              uuid.New(),
		CheckedAt:       s.now(),
		Source:          figures.Source,
		UsedKWhPerMonth: figures.KWhPerMonth,
		UsedRatePerKWh:  figures.RatePerKWh,
		SnapshotSource:  snapshot.Source,
		Reasoning:       snapshot.Reasoning,
	}

	if len(ranked) == 0 {
		// empty-market sentinel: no offers to rank, distinct from a
		// ranked result that happens to save nothing
		result.Recommendation = constants.RecommendStay
		s.logger.Warn("market.check.no_offers", "profile_id", profile.ID, "snapshot_source", snapshot.Source)
		return result, nil
	}

	top := ranked
	if len(top) > 2 {
		top = top[:2]
	}
	result.Top2 = top
	cheapest := ranked[0]
	result.Cheapest = &cheapest
	result.MonthlySavingsEUR = CurrentMonthlyCost(figures) - cheapest.EffectiveMonthlyCostEUR
	result.Recommendation = Decide(result.MonthlySavingsEUR, s.policy)

	if advice := snapshot.AnalystAdvice; advice != "" && advice != string(result.Recommendation) {
		// the threshold rule wins; keep the disagreement auditable
		s.logger.Warn("market.check.recommendation_override",
			"profile_id", profile.ID,
			"analyst_advice", advice,
			"local_recommendation", result.Recommendation,
			"monthly_savings_eur", result.MonthlySavingsEUR,
		)
	}

	s.logger.Info("market.check.ok",
		"profile_id", profile.ID,
		"source", result.Source,
		"snapshot_source", result.SnapshotSource,
		"cheapest", cheapest.Provider,
		"monthly_savings_eur", result.MonthlySavingsEUR,
		"recommendation", result.Recommendation,
	)
	return result, nil
}

// obtainSnapshot tries the live lookup first and degrades to the static
// table. Only when both paths fail does the check surface
// ErrMarketDataUnavailable; no partial or stale data is substituted.
func (s *Service) obtainSnapshot(ctx context.Context, req oracle.MarketRequest) (Snapshot, error) {
	if s.live != nil {
		snapshot, err := s.live.Fetch(ctx, req)
		if err == nil {
			return snapshot, nil
		}
		s.logger.Warn("market.snapshot.live_failed", "error", err)
	}
	if s.fallback != nil {
		snapshot, err := s.fallback.Fetch(ctx, req)
		if err == nil {
			return snapshot, nil
		}
		s.logger.Error("market.snapshot.fallback_failed", "error", err)
	}
	return Snapshot{}, common.NewAppError("MARKET_SNAPSHOT", "no market snapshot obtainable",
		fmt.Errorf("%w", common.ErrMarketDataUnavailable))
}
