// Package profiles owns the profile lifecycle: signup (which runs the
// baseline estimate exactly once), the verified transition after a
// confirmed bill, and the premium tier flip.
package profiles

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/bills"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/estimator"
	"github.com/tbruins/stroomadvies/internal/repository"
)

// Service handles profile business logic.
type Service struct {
	profileRepo repository.ProfileRepository
	usageRepo   repository.UsageRepository
	estimator   *estimator.Service
	bills       *bills.Service
	logger      *slog.Logger
}

func NewService(
	profileRepo repository.ProfileRepository,
	usageRepo repository.UsageRepository,
	est *estimator.Service,
	billsSvc *bills.Service,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		profileRepo: profileRepo,
		usageRepo:   usageRepo,
		estimator:   est,
		bills:       billsSvc,
		logger:      logger,
	}
}

// SignupRequest carries the self-reported attributes captured at signup.
type SignupRequest struct {
	HouseholdSize      string
	DwellingType       string
	WorksFromHome      bool
	HasHeatPump        bool
	HasDistrictHeating bool
	HasSolarPanels     bool
	Provider           string
	ContractType       string
	MonthlyCostEUR     float64
}

// Signup creates a profile and runs the baseline estimate. The estimate
// runs first: a profile only exists in the Estimated state, never without
// usage figures. An estimation failure leaves nothing behind.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*entity.Profile, error) {
	size, ok := constants.CanonicalizeHouseholdSize(req.HouseholdSize)
	if !ok {
		return nil, common.NewAppError("SIGNUP_INPUT", "unrecognized household size", common.ErrInvalidInput)
	}
	dwelling, _ := constants.CanonicalizeDwellingType(req.DwellingType)
	contractType, ok := constants.CanonicalizeContractType(req.ContractType)
	if !ok {
		contractType = constants.ContractUnknown
	}

	household := entity.HouseholdProfile{
		Size:               size,
		Dwelling:           dwelling,
		WorksFromHome:      req.WorksFromHome,
		HasHeatPump:        req.HasHeatPump,
		HasDistrictHeating: req.HasDistrictHeating,
		HasSolarPanels:     req.HasSolarPanels,
	}
	contract := entity.ContractSnapshot{
		Provider:       req.Provider,
		ContractType:   contractType,
		MonthlyCostEUR: req.MonthlyCostEUR,
	}

	est, err := s.estimator.Estimate(ctx, household, contract)
	if err != nil {
		return nil, err
	}

	p, err := s.profileRepo.Create(ctx, &repository.CreateProfileRequest{
		Household: household,
		Contract:  contract,
	})
	if err != nil {
		return nil, err
	}

	// The estimate write may race the just-created profile row on an
	// eventually consistent read replica. Retry a few times with
	// increasing backoff, then give up cleanly.
	err = s.withCreateRetry(ctx, func() error {
		return s.usageRepo.SaveEstimate(ctx, p.ID, est)
	})
	if err != nil {
		return nil, err
	}
	p.Estimate = est

	s.logger.Info("profiles.signup_ok",
		"profile_id", p.ID,
		"dwelling", household.Dwelling,
		"kwh_per_month", est.KWhPerMonth,
		"confidence", est.Confidence,
	)
	return p, nil
}

// Get loads the full aggregate.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

// ConfirmVerification finalizes a user-approved extraction: resolve the
// figures, persist them, and from here on they supersede the estimate for
// every downstream read. The transition is one-way; nothing ever reverts
// a profile to unverified.
func (s *Service) ConfirmVerification(ctx context.Context, profileID uuid.UUID, extraction *entity.BillExtraction) (*entity.VerifiedUsage, error) {
	exists, err := s.profileRepo.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewAppError("VERIFY_CONFIRM", "profile not found", common.ErrNotFound)
	}

	verified, err := s.bills.Confirm(extraction, bills.Now)
	if err != nil {
		return nil, err
	}
	if err := s.usageRepo.SaveVerified(ctx, profileID, verified); err != nil {
		return nil, err
	}

	s.logger.Info("profiles.verified",
		"profile_id", profileID,
		"kwh_per_month", verified.KWhPerMonth,
		"rate_per_kwh", verified.RatePerKWh,
		"provider", verified.Provider,
	)
	return verified, nil
}

// ActivatePremium flips the subscription tier after a confirmed payment.
// Terminal: there is no downgrade path here.
func (s *Service) ActivatePremium(ctx context.Context, profileID uuid.UUID) error {
	if err := s.profileRepo.SetTier(ctx, profileID, constants.TierPremium); err != nil {
		return err
	}
	s.logger.Info("profiles.premium_activated", "profile_id", profileID)
	return nil
}

// withCreateRetry retries a write that can lose a read-after-create race.
// Capped at three attempts; any other failure kind returns immediately.
func (s *Service) withCreateRetry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(100*time.Millisecond),
		backoff.WithMaxInterval(time.Second),
	), 3), ctx)

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrPersistenceFailed) {
			s.logger.Warn("profiles.create_race_retry", "error", err)
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}
