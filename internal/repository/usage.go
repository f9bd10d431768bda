package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/gen/ent"
	"github.com/tbruins/stroomadvies/gen/ent/verifiedusage"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/utils"
)

type UsageRepository interface {
	SaveEstimate(ctx context.Context, profileID uuid.UUID, est *entity.UsageEstimate) error
	// SaveVerified upserts the bill-derived figures. A profile keeps at
	// most one verified row; a newer confirmed bill replaces the figures
	// but the profile never drops back to unverified.
	SaveVerified(ctx context.Context, profileID uuid.UUID, v *entity.VerifiedUsage) error
	GetVerified(ctx context.Context, profileID uuid.UUID) (*entity.VerifiedUsage, error)
}

type usageRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUsageRepository(client *ent.Client, logger *slog.Logger) UsageRepository {
	return &usageRepository{
		client: client,
		logger: logger,
	}
}

func (r *usageRepository) SaveEstimate(ctx context.Context, profileID uuid.UUID, est *entity.UsageEstimate) error {
	_, err := r.client.UsageEstimate.Create().
		SetProfileID(profileID).
		SetKwhPerMonth(est.KWhPerMonth).
		SetRatePerKwh(est.RatePerKWh).
		SetConfidence(string(est.Confidence)).
		SetAssumptions(est.Assumptions).
		SetReasoning(est.Reasoning).
		SetCreatedAt(est.CreatedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save estimate", "profile_id", profileID, "error", err)
		return writeError("save estimate", err)
	}
	return nil
}

func (r *usageRepository) SaveVerified(ctx context.Context, profileID uuid.UUID, v *entity.VerifiedUsage) error {
	existing, err := r.client.VerifiedUsage.Query().
		Where(verifiedusage.ProfileID(profileID)).
		Only(ctx)
	switch {
	case err == nil:
		_, uerr := existing.Update().
			SetKwhPerMonth(v.KWhPerMonth).
			SetRatePerKwh(v.RatePerKWh).
			SetProvider(v.Provider).
			SetContractType(string(v.ContractType)).
			SetConfidence(string(v.Confidence)).
			SetWarnings(v.Warnings).
			Save(ctx)
		if uerr != nil {
			r.logger.Error("failed to update verified usage", "profile_id", profileID, "error", uerr)
			return writeError("update verified usage", uerr)
		}
		return nil
	case ent.IsNotFound(err):
		_, cerr := r.client.VerifiedUsage.Create().
			SetProfileID(profileID).
			SetKwhPerMonth(v.KWhPerMonth).
			SetRatePerKwh(v.RatePerKWh).
			SetProvider(v.Provider).
			SetContractType(string(v.ContractType)).
			SetConfidence(string(v.Confidence)).
			SetWarnings(v.Warnings).
			SetConfirmedAt(v.ConfirmedAt).
			Save(ctx)
		if cerr != nil {
			r.logger.Error("failed to create verified usage", "profile_id", profileID, "error", cerr)
			return writeError("create verified usage", cerr)
		}
		return nil
	default:
		r.logger.Error("failed to query verified usage", "profile_id", profileID, "error", err)
		return err
	}
}

func (r *usageRepository) GetVerified(ctx context.Context, profileID uuid.UUID) (*entity.VerifiedUsage, error) {
	v, err := r.client.VerifiedUsage.Query().
		Where(verifiedusage.ProfileID(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to get verified usage", "profile_id", profileID, "error", err)
		return nil, err
	}
	return utils.ToVerifiedUsage(v), nil
}
