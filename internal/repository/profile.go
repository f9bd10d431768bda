package repository

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/gen/ent"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
	"github.com/tbruins/stroomadvies/gen/ent/usageestimate"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/utils"
)

// CreateProfileRequest wraps the signup attributes for a new profile.
type CreateProfileRequest struct {
	Household entity.HouseholdProfile
	Contract  entity.ContractSnapshot
}

type ProfileRepository interface {
	Create(ctx context.Context, req *CreateProfileRequest) (*entity.Profile, error)
	// GetByID returns the full aggregate: household attributes, the
	// latest estimate, verified usage when present, and the latest
	// price check.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListByTier(ctx context.Context, tier constants.Tier) ([]*entity.Profile, error)
	SetTier(ctx context.Context, id uuid.UUID, tier constants.Tier) error
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{
		client: client,
		logger: logger,
	}
}

func (r *profileRepository) Create(ctx context.Context, req *CreateProfileRequest) (*entity.Profile, error) {
	p, err := r.client.Profile.Create().
		SetHouseholdSize(string(req.Household.Size)).
		SetDwellingType(string(req.Household.Dwelling)).
		SetWorksFromHome(req.Household.WorksFromHome).
		SetHasHeatPump(req.Household.HasHeatPump).
		SetHasDistrictHeating(req.Household.HasDistrictHeating).
		SetHasSolarPanels(req.Household.HasSolarPanels).
		SetProvider(req.Contract.Provider).
		SetContractType(string(req.Contract.ContractType)).
		SetMonthlyCostEur(req.Contract.MonthlyCostEUR).
		SetTier(string(constants.TierFree)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create profile", "dwelling", req.Household.Dwelling, "error", err)
		return nil, writeError("create profile", err)
	}
	return utils.ToProfile(p), nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	p, err := r.client.Profile.
		Query().
		Where(profile.ID(id)).
		WithVerifiedUsage().
		WithEstimates(func(q *ent.UsageEstimateQuery) {
			q.Order(usageestimate.ByCreatedAt(sql.OrderDesc())).Limit(1)
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("PROFILE_GET", "profile not found", common.ErrNotFound)
		}
		r.logger.Error("failed to get profile", "profile_id", id, "error", err)
		return nil, err
	}

	out := utils.ToProfile(p)
	if len(p.Edges.Estimates) > 0 {
		out.Estimate = utils.ToUsageEstimate(p.Edges.Estimates[0])
	}
	if p.Edges.VerifiedUsage != nil {
		out.Verified = utils.ToVerifiedUsage(p.Edges.VerifiedUsage)
	}
	return out, nil
}

func (r *profileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Profile.Query().Where(profile.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check profile existence", "profile_id", id, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *profileRepository) ListByTier(ctx context.Context, tier constants.Tier) ([]*entity.Profile, error) {
	plist, err := r.client.Profile.Query().
		Where(profile.Tier(string(tier))).
		WithVerifiedUsage().
		WithEstimates(func(q *ent.UsageEstimateQuery) {
			q.Order(usageestimate.ByCreatedAt(sql.OrderDesc())).Limit(1)
		}).
		Order(profile.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list profiles", "tier", tier, "error", err)
		return nil, err
	}
	out := make([]*entity.Profile, 0, len(plist))
	for _, p := range plist {
		e := utils.ToProfile(p)
		if len(p.Edges.Estimates) > 0 {
			e.Estimate = utils.ToUsageEstimate(p.Edges.Estimates[0])
		}
		if p.Edges.VerifiedUsage != nil {
			e.Verified = utils.ToVerifiedUsage(p.Edges.VerifiedUsage)
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *profileRepository) SetTier(ctx context.Context, id uuid.UUID, tier constants.Tier) error {
	n, err := r.client.Profile.Update().
		Where(profile.ID(id)).
		SetTier(string(tier)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set tier", "profile_id", id, "tier", tier, "error", err)
		return writeError("set tier", err)
	}
	if n == 0 {
		return common.NewAppError("PROFILE_TIER", "profile not found", common.ErrNotFound)
	}
	return nil
}

// writeError tags a rejected write so callers can branch on
// ErrPersistenceFailed without inspecting driver-specific errors.
func writeError(op string, cause error) error {
	return common.NewAppError("DB_WRITE", op, fmt.Errorf("%w: %w", common.ErrPersistenceFailed, cause))
}
