package profiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/bills"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/estimator"
	"github.com/tbruins/stroomadvies/internal/oracle"
	"github.com/tbruins/stroomadvies/internal/repository"
)

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
	tiers    map[uuid.UUID]constants.Tier
	creates  int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: make(map[uuid.UUID]*entity.Profile),
		tiers:    make(map[uuid.UUID]constants.Tier),
	}
}

func (r *fakeProfileRepo) Create(_ context.Context, req *repository.CreateProfileRequest) (*entity.Profile, error) {
	r.creates++
	p := &entity.Profile{
		ID:        uuid.New(),
		Household: req.Household,
		Contract:  req.Contract,
		Tier:      constants.TierFree,
		CreatedAt: time.Now(),
	}
	r.profiles[p.ID] = p
	return p, nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, common.NewAppError("PROFILE_GET", "profile not found", common.ErrNotFound)
	}
	return p, nil
}

func (r *fakeProfileRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.profiles[id]
	return ok, nil
}

func (r *fakeProfileRepo) ListByTier(_ context.Context, tier constants.Tier) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for _, p := range r.profiles {
		if p.Tier == tier {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) SetTier(_ context.Context, id uuid.UUID, tier constants.Tier) error {
	p, ok := r.profiles[id]
	if !ok {
		return common.NewAppError("PROFILE_TIER", "profile not found", common.ErrNotFound)
	}
	p.Tier = tier
	r.tiers[id] = tier
	return nil
}

type fakeUsageRepo struct {
	estimates   map[uuid.UUID]*entity.UsageEstimate
	verified    map[uuid.UUID]*entity.VerifiedUsage
	failSavesFn func() error
	saveCalls   int
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{
		estimates: make(map[uuid.UUID]*entity.UsageEstimate),
		verified:  make(map[uuid.UUID]*entity.VerifiedUsage),
	}
}

func (r *fakeUsageRepo) SaveEstimate(_ context.Context, profileID uuid.UUID, est *entity.UsageEstimate) error {
	r.saveCalls++
	if r.failSavesFn != nil {
		if err := r.failSavesFn(); err != nil {
			return err
		}
	}
	r.estimates[profileID] = est
	return nil
}

func (r *fakeUsageRepo) SaveVerified(_ context.Context, profileID uuid.UUID, v *entity.VerifiedUsage) error {
	r.verified[profileID] = v
	return nil
}

func (r *fakeUsageRepo) GetVerified(_ context.Context, profileID uuid.UUID) (*entity.VerifiedUsage, error) {
	return r.verified[profileID], nil
}

type fixedEstimator struct {
	fields oracle.EstimateFields
	err    error
	calls  int
}

func (s *fixedEstimator) EstimateUsage(_ context.Context, _ oracle.EstimateRequest) (oracle.EstimateFields, []byte, error) {
	s.calls++
	if s.err != nil {
		return oracle.EstimateFields{}, nil, s.err
	}
	return s.fields, []byte("{}"), nil
}

type noopReader struct{}

func (noopReader) ReadBill(_ context.Context, _ oracle.BillRequest) (oracle.BillFields, []byte, error) {
	return oracle.BillFields{}, nil, errors.New("not used")
}

func newTestService(profileRepo repository.ProfileRepository, usageRepo repository.UsageRepository, est oracle.UsageEstimator) *Service {
	return NewService(
		profileRepo,
		usageRepo,
		estimator.NewService(est, nil),
		bills.NewService(noopReader{}, nil),
		nil,
	)
}

func signupRequest() SignupRequest {
	return SignupRequest{
		HouseholdSize:  "2",
		DwellingType:   "APARTMENT",
		Provider:       "Essent",
		ContractType:   "FIXED",
		MonthlyCostEUR: 120,
	}
}

func TestSignupCreatesEstimatedProfile(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	usageRepo := newFakeUsageRepo()
	est := &fixedEstimator{fields: oracle.EstimateFields{
		EstimatedKWhPerMonth: 240,
		EstimatedPerKWhRate:  0.50,
		ConfidenceLevel:      "HIGH",
	}}

	p, err := newTestService(profileRepo, usageRepo, est).Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	assert.Equal(t, constants.TierFree, p.Tier)
	require.NotNil(t, p.Estimate)
	assert.Equal(t, 240, p.Estimate.KWhPerMonth)
	// rate is recomputed from the stated monthly cost, not the oracle's figure
	assert.InDelta(t, 120.0/240.0, p.Estimate.RatePerKWh, 1e-9)
	assert.Contains(t, usageRepo.estimates, p.ID)
	assert.Equal(t, 1, est.calls)
}

func TestSignupEstimatorFailureLeavesNothing(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	usageRepo := newFakeUsageRepo()
	est := &fixedEstimator{err: errors.New("oracle down")}

	_, err := newTestService(profileRepo, usageRepo, est).Signup(context.Background(), signupRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEstimationFailed)
	// a profile without usage figures must never exist
	assert.Zero(t, profileRepo.creates)
	assert.Empty(t, usageRepo.estimates)
}

func TestSignupRejectsUnknownHouseholdSize(t *testing.T) {
	est := &fixedEstimator{}
	req := signupRequest()
	req.HouseholdSize = "a few"

	_, err := newTestService(newFakeProfileRepo(), newFakeUsageRepo(), est).Signup(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Zero(t, est.calls)
}

func TestSignupUnknownContractTypeIsAccepted(t *testing.T) {
	est := &fixedEstimator{fields: oracle.EstimateFields{
		EstimatedKWhPerMonth: 200,
		EstimatedPerKWhRate:  0.45,
		ConfidenceLevel:      "MEDIUM",
	}}
	req := signupRequest()
	req.ContractType = "geen idee"

	p, err := newTestService(newFakeProfileRepo(), newFakeUsageRepo(), est).Signup(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, constants.ContractUnknown, p.Contract.ContractType)
}

func TestSignupRetriesEstimateWriteRace(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	usageRepo := newFakeUsageRepo()
	failures := 2
	usageRepo.failSavesFn = func() error {
		if failures > 0 {
			failures--
			return common.NewAppError("DB_WRITE", "save estimate", common.ErrPersistenceFailed)
		}
		return nil
	}
	est := &fixedEstimator{fields: oracle.EstimateFields{
		EstimatedKWhPerMonth: 240,
		EstimatedPerKWhRate:  0.50,
		ConfidenceLevel:      "HIGH",
	}}

	p, err := newTestService(profileRepo, usageRepo, est).Signup(context.Background(), signupRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, usageRepo.saveCalls)
	assert.Contains(t, usageRepo.estimates, p.ID)
}

func TestSignupDoesNotRetryInvalidWrites(t *testing.T) {
	usageRepo := newFakeUsageRepo()
	usageRepo.failSavesFn = func() error {
		return common.NewAppError("DB_WRITE", "save estimate", common.ErrInvalidInput)
	}
	est := &fixedEstimator{fields: oracle.EstimateFields{
		EstimatedKWhPerMonth: 240,
		EstimatedPerKWhRate:  0.50,
		ConfidenceLevel:      "HIGH",
	}}

	_, err := newTestService(newFakeProfileRepo(), usageRepo, est).Signup(context.Background(), signupRequest())
	require.Error(t, err)
	assert.Equal(t, 1, usageRepo.saveCalls)
}

func TestConfirmVerification(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	usageRepo := newFakeUsageRepo()
	s := newTestService(profileRepo, usageRepo, &fixedEstimator{})

	p, err := profileRepo.Create(context.Background(), &repository.CreateProfileRequest{})
	require.NoError(t, err)

	annual := 3000.0
	rate := 0.40
	verified, err := s.ConfirmVerification(context.Background(), p.ID, &entity.BillExtraction{
		AnnualKWh:    &annual,
		RatePerKWh:   &rate,
		Provider:     "Eneco",
		ContractType: constants.ContractFixed,
		Confidence:   constants.ConfidenceHigh,
	})
	require.NoError(t, err)

	assert.InDelta(t, 250.0, verified.KWhPerMonth, 1e-9)
	assert.Equal(t, verified, usageRepo.verified[p.ID])
}

func TestConfirmVerificationUnknownProfile(t *testing.T) {
	s := newTestService(newFakeProfileRepo(), newFakeUsageRepo(), &fixedEstimator{})

	annual := 3000.0
	rate := 0.40
	_, err := s.ConfirmVerification(context.Background(), uuid.New(), &entity.BillExtraction{
		AnnualKWh:  &annual,
		RatePerKWh: &rate,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestActivatePremium(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	s := newTestService(profileRepo, newFakeUsageRepo(), &fixedEstimator{})

	p, err := profileRepo.Create(context.Background(), &repository.CreateProfileRequest{})
	require.NoError(t, err)

	require.NoError(t, s.ActivatePremium(context.Background(), p.ID))
	assert.Equal(t, constants.TierPremium, profileRepo.tiers[p.ID])

	err = s.ActivatePremium(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
