package market

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/oracle"
)

type stubProvider struct {
	snapshot Snapshot
	err      error
	calls    int
}

func (s *stubProvider) Fetch(_ context.Context, _ oracle.MarketRequest) (Snapshot, error) {
	s.calls++
	if s.err != nil {
		return Snapshot{}, s.err
	}
	return s.snapshot, nil
}

func fixedProfile(rate float64, kwh int) *entity.Profile {
	return &entity.Profile{
		ID: uuid.New(),
		Contract: entity.ContractSnapshot{
			Provider:       "Essent",
			ContractType:   constants.ContractFixed,
			MonthlyCostEUR: rate * float64(kwh),
		},
		Estimate: &entity.UsageEstimate{
			KWhPerMonth: kwh,
			RatePerKWh:  rate,
			Confidence:  constants.ConfidenceHigh,
			CreatedAt:   time.Now(),
		},
	}
}

func newTestService(live, fallback SnapshotProvider) *Service {
	return NewService(live, fallback, DefaultPolicy(), nil)
}

func TestCheckScenarioFixedContractWithBonus(t *testing.T) {
	// current: 0.45/kWh fixed, 300 kWh -> EUR 135/month
	// best offer: 0.30/kWh with EUR 75 bonus; fixed contract so the
	// switching cost applies: 90 - 6.25 + 6.25 = EUR 90 -> saves 45
	live := &stubProvider{snapshot: Snapshot{
		Offers: []entity.MarketOffer{
			{Provider: "Budget Energie", RatePerKWh: 0.30, ContractType: constants.ContractFixed, WelcomeBonusEUR: 75},
			{Provider: "Eneco", RatePerKWh: 0.40, ContractType: constants.ContractVariable},
		},
		Source: constants.SnapshotLive,
	}}

	result, err := newTestService(live, nil).Check(context.Background(), fixedProfile(0.45, 300))
	require.NoError(t, err)

	require.True(t, result.HasOffers())
	assert.Equal(t, "Budget Energie", result.Cheapest.Provider)
	assert.InDelta(t, 45.0, result.MonthlySavingsEUR, 1e-9)
	assert.Equal(t, constants.RecommendSwitch, result.Recommendation)
	assert.Equal(t, constants.SnapshotLive, result.SnapshotSource)
	assert.Len(t, result.Top2, 2)
}

func TestCheckFallsBackWhenLiveFails(t *testing.T) {
	live := &stubProvider{err: errors.New("search oracle down")}
	fallback := &stubProvider{snapshot: Snapshot{
		Offers: []entity.MarketOffer{{Provider: "Greenchoice", RatePerKWh: 0.30, ContractType: constants.ContractFixed}},
		Source: constants.SnapshotFallback,
	}}

	result, err := newTestService(live, fallback).Check(context.Background(), fixedProfile(0.45, 300))
	require.NoError(t, err)

	assert.Equal(t, 1, live.calls)
	assert.Equal(t, 1, fallback.calls)
	// a test (or a UI badge) can tell the fallback path was taken
	assert.Equal(t, constants.SnapshotFallback, result.SnapshotSource)
}

func TestCheckUnavailableWhenNoSnapshotPath(t *testing.T) {
	live := &stubProvider{err: errors.New("search oracle down")}

	_, err := newTestService(live, nil).Check(context.Background(), fixedProfile(0.45, 300))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMarketDataUnavailable)
}

func TestCheckNoUsageDataFailsFast(t *testing.T) {
	live := &stubProvider{snapshot: Snapshot{Source: constants.SnapshotLive}}
	p := &entity.Profile{ID: uuid.New(), Contract: entity.ContractSnapshot{ContractType: constants.ContractFixed}}

	_, err := newTestService(live, nil).Check(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoUsageData)
	assert.Zero(t, live.calls, "no oracle call without usage figures")
}

func TestCheckEmptyMarketSentinel(t *testing.T) {
	live := &stubProvider{snapshot: Snapshot{Source: constants.SnapshotLive}}

	result, err := newTestService(live, nil).Check(context.Background(), fixedProfile(0.45, 300))
	require.NoError(t, err)

	// distinguishable from a ranked result that saves nothing
	assert.False(t, result.HasOffers())
	assert.Nil(t, result.Cheapest)
	assert.Empty(t, result.Top2)
	assert.Equal(t, constants.RecommendStay, result.Recommendation)
	assert.Zero(t, result.MonthlySavingsEUR)
}

func TestCheckSingleOfferStillResolvesCheapest(t *testing.T) {
	live := &stubProvider{snapshot: Snapshot{
		Offers: []entity.MarketOffer{{Provider: "Frank Energie", RatePerKWh: 0.28, ContractType: constants.ContractDynamic}},
		Source: constants.SnapshotLive,
	}}

	result, err := newTestService(live, nil).Check(context.Background(), fixedProfile(0.45, 300))
	require.NoError(t, err)
	require.True(t, result.HasOffers())
	assert.Equal(t, "Frank Energie", result.Cheapest.Provider)
	assert.Len(t, result.Top2, 1)
}

func TestCheckVerifiedSupersedesEstimate(t *testing.T) {
	p := fixedProfile(0.45, 300)
	p.Verified = &entity.VerifiedUsage{
		KWhPerMonth:  250,
		RatePerKWh:   0.40,
		ContractType: constants.ContractFlexible,
		Confidence:   constants.ConfidenceHigh,
		ConfirmedAt:  time.Now(),
	}

	var captured oracle.MarketRequest
	live := &captureProvider{inner: Snapshot{
		Offers: []entity.MarketOffer{{Provider: "A", RatePerKWh: 0.30, ContractType: constants.ContractVariable}},
		Source: constants.SnapshotLive,
	}, out: &captured}

	result, err := newTestService(live, nil).Check(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, constants.SourceVerified, result.Source)
	assert.InDelta(t, 250.0, result.UsedKWhPerMonth, 1e-9)
	assert.InDelta(t, 0.40, result.UsedRatePerKWh, 1e-9)
	// the request sent to the oracle also carries the verified figures
	assert.InDelta(t, 250.0, captured.KWhPerMonth, 1e-9)
	// verified contract type (flexible) wins: no switching cost applied
	assert.InDelta(t, 0.30*250, result.Cheapest.EffectiveMonthlyCostEUR, 1e-9)
}

func TestCheckIdempotentRecommendation(t *testing.T) {
	live := &stubProvider{snapshot: Snapshot{
		Offers: []entity.MarketOffer{{Provider: "A", RatePerKWh: 0.30, ContractType: constants.ContractFixed, WelcomeBonusEUR: 50}},
		Source: constants.SnapshotLive,
	}}
	s := newTestService(live, nil)
	p := fixedProfile(0.45, 300)

	first, err := s.Check(context.Background(), p)
	require.NoError(t, err)
	second, err := s.Check(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, first.Recommendation, second.Recommendation)
	assert.InDelta(t, first.MonthlySavingsEUR, second.MonthlySavingsEUR, 1e-9)
}

func TestFallbackProviderIsAlwaysAvailable(t *testing.T) {
	snap, err := NewFallbackProvider().Fetch(context.Background(), oracle.MarketRequest{})
	require.NoError(t, err)
	assert.Equal(t, constants.SnapshotFallback, snap.Source)
	assert.NotEmpty(t, snap.Offers)
}

type captureProvider struct {
	inner Snapshot
	out   *oracle.MarketRequest
}

func (c *captureProvider) Fetch(_ context.Context, req oracle.MarketRequest) (Snapshot, error) {
	*c.out = req
	return c.inner, nil
}
