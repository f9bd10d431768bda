package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/gen/ent"
	"github.com/tbruins/stroomadvies/gen/ent/pricecheck"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/utils"
)

type PriceCheckRepository interface {
	Save(ctx context.Context, profileID uuid.UUID, result *entity.PriceCheckResult) error
	// Latest returns the most recent result, or nil when the profile has
	// never been checked.
	Latest(ctx context.Context, profileID uuid.UUID) (*entity.PriceCheckResult, error)
	History(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]*entity.PriceCheckResult, error)
}

type priceCheckRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPriceCheckRepository(client *ent.Client, logger *slog.Logger) PriceCheckRepository {
	return &priceCheckRepository{
		client: client,
		logger: logger,
	}
}

func (r *priceCheckRepository) Save(ctx context.Context, profileID uuid.UUID, result *entity.PriceCheckResult) error {
	create := r.client.PriceCheck.Create().
		SetID(result.ID).
		SetProfileID(profileID).
		SetCheckedAt(result.CheckedAt).
		SetSource(string(result.Source)).
		SetUsedKwhPerMonth(result.UsedKWhPerMonth).
		SetUsedRatePerKwh(result.UsedRatePerKWh).
		SetSnapshotSource(string(result.SnapshotSource)).
		SetRecommendation(string(result.Recommendation)).
		SetMonthlySavingsEur(result.MonthlySavingsEUR).
		SetReasoning(result.Reasoning)

	if len(result.Top2) > 0 {
		raw, err := json.Marshal(result.Top2)
		if err != nil {
			return writeError("encode top2 offers", err)
		}
		create.SetTop2(raw)
	}
	if result.Cheapest != nil {
		raw, err := json.Marshal(result.Cheapest)
		if err != nil {
			return writeError("encode cheapest offer", err)
		}
		create.SetCheapest(raw)
	}

	if _, err := create.Save(ctx); err != nil {
		r.logger.Error("failed to save price check", "profile_id", profileID, "error", err)
		return writeError("save price check", err)
	}
	return nil
}

func (r *priceCheckRepository) Latest(ctx context.Context, profileID uuid.UUID) (*entity.PriceCheckResult, error) {
	row, err := r.client.PriceCheck.Query().
		Where(pricecheck.ProfileID(profileID)).
		Order(pricecheck.ByCheckedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to get latest price check", "profile_id", profileID, "error", err)
		return nil, err
	}
	return utils.ToPriceCheckResult(row)
}

func (r *priceCheckRepository) History(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]*entity.PriceCheckResult, error) {
	q := r.client.PriceCheck.Query().Where(pricecheck.ProfileID(profileID))
	if from != nil {
		q = q.Where(pricecheck.CheckedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(pricecheck.CheckedAtLTE(*to))
	}
	rows, err := q.Order(pricecheck.ByCheckedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list price checks", "profile_id", profileID, "error", err)
		return nil, err
	}
	out := make([]*entity.PriceCheckResult, 0, len(rows))
	for _, row := range rows {
		result, cerr := utils.ToPriceCheckResult(row)
		if cerr != nil {
			return nil, cerr
		}
		out = append(out, result)
	}
	return out, nil
}
