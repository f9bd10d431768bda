package scheduler

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
	"github.com/tbruins/stroomadvies/internal/market"
	"github.com/tbruins/stroomadvies/internal/oracle"
	"github.com/tbruins/stroomadvies/internal/repository"
)

type fakeProfiles struct {
	premium []*entity.Profile
}

func (f *fakeProfiles) Create(_ context.Context, _ *repository.CreateProfileRequest) (*entity.Profile, error) {
	return nil, errors.New("not used")
}

func (f *fakeProfiles) GetByID(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
	return nil, errors.New("not used")
}

func (f *fakeProfiles) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeProfiles) ListByTier(_ context.Context, tier constants.Tier) ([]*entity.Profile, error) {
	if tier != constants.TierPremium {
		return nil, nil
	}
	return f.premium, nil
}

func (f *fakeProfiles) SetTier(_ context.Context, _ uuid.UUID, _ constants.Tier) error {
	return nil
}

type fakeChecks struct {
	saved   map[uuid.UUID]*entity.PriceCheckResult
	saveErr error
}

func (f *fakeChecks) Save(_ context.Context, profileID uuid.UUID, result *entity.PriceCheckResult) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.saved == nil {
		f.saved = make(map[uuid.UUID]*entity.PriceCheckResult)
	}
	f.saved[profileID] = result
	return nil
}

func (f *fakeChecks) Latest(_ context.Context, _ uuid.UUID) (*entity.PriceCheckResult, error) {
	return nil, nil
}

func (f *fakeChecks) History(_ context.Context, _ uuid.UUID, _, _ *time.Time) ([]*entity.PriceCheckResult, error) {
	return nil, nil
}

type fixedSnapshot struct{ snap market.Snapshot }

func (p fixedSnapshot) Fetch(_ context.Context, _ oracle.MarketRequest) (market.Snapshot, error) {
	return p.snap, nil
}

func premiumProfile(withUsage bool) *entity.Profile {
	p := &entity.Profile{
		ID:   uuid.New(),
		Tier: constants.TierPremium,
		Contract: entity.ContractSnapshot{
			ContractType:   constants.ContractFixed,
			MonthlyCostEUR: 135,
		},
	}
	if withUsage {
		p.Estimate = &entity.UsageEstimate{KWhPerMonth: 300, RatePerKWh: 0.45, CreatedAt: time.Now()}
	}
	return p
}

func testComparator() *market.Service {
	provider := fixedSnapshot{snap: market.Snapshot{
		Offers: []entity.MarketOffer{{Provider: "Budget Energie", RatePerKWh: 0.30, ContractType: constants.ContractFixed}},
		Source: constants.SnapshotLive,
	}}
	return market.NewService(provider, nil, market.DefaultPolicy(), nil)
}

func TestRunAllChecksPremiumProfiles(t *testing.T) {
	eligible := premiumProfile(true)
	notReady := premiumProfile(false)
	profiles := &fakeProfiles{premium: []*entity.Profile{eligible, notReady}}
	checks := &fakeChecks{}

	s := New("@daily", profiles, checks, testComparator(), time.Second, nil)
	s.runAll()

	// the eligible profile gets a persisted result
	require.Contains(t, checks.saved, eligible.ID)
	assert.Equal(t, constants.RecommendSwitch, checks.saved[eligible.ID].Recommendation)
	// the profile without usage figures is skipped, not failed
	assert.NotContains(t, checks.saved, notReady.ID)
}

func TestRunOneSkipsProfilesWithoutUsage(t *testing.T) {
	s := New("@daily", &fakeProfiles{}, &fakeChecks{}, testComparator(), time.Second, nil)

	err := s.runOne(context.Background(), premiumProfile(false))
	assert.NoError(t, err, "no usage data is not an error for the recheck loop")
}

func TestRunOnePropagatesSaveFailure(t *testing.T) {
	checks := &fakeChecks{saveErr: common.ErrPersistenceFailed}
	s := New("@daily", &fakeProfiles{}, checks, testComparator(), time.Second, nil)

	err := s.runOne(context.Background(), premiumProfile(true))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPersistenceFailed)
}
