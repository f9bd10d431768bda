// pricecheck runs one market comparison for a profile and prints the
// result as JSON. Useful for debugging the comparator without the gRPC
// surface in the way.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/gen/ent"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/market"
	"github.com/tbruins/stroomadvies/internal/oracle/openai"
	repo "github.com/tbruins/stroomadvies/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: pricecheck <profile_id>")
		os.Exit(2)
	}
	profileID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid profile_id", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	// DB_URL points at Postgres; without it, fall back to a local SQLite
	// file so the comparator can be exercised without infrastructure.
	var entc *ent.Client
	if cfg.Database.DSN != "" {
		client, pool, err := repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        2,
			MinConns:        1,
			MaxConnLifetime: 5 * time.Minute,
			MaxConnIdleTime: time.Minute,
			DialTimeout:     3 * time.Second,
		}, logger)
		if err != nil {
			logger.Error("opening DB", "error", err)
			os.Exit(1)
		}
		defer repo.Close(client, pool, logger)
		entc = client
	} else {
		client, err := repo.OpenSQLite(os.Getenv("SQLITE_PATH"), logger)
		if err != nil {
			logger.Error("opening sqlite DB", "error", err)
			os.Exit(1)
		}
		defer repo.Close(client, nil, logger)
		entc = client
	}

	profileRepo := repo.NewProfileRepository(entc, logger)
	checksRepo := repo.NewPriceCheckRepository(entc, logger)

	oracleClient := openai.NewClient(openai.Config{
		APIKey:      cfg.Oracle.APIKey,
		BaseURL:     cfg.Oracle.BaseURL,
		Model:       cfg.Oracle.Model,
		SearchModel: cfg.Oracle.SearchModel,
		Temperature: cfg.Oracle.Temperature,
		Timeout:     cfg.Oracle.Timeout,
	}, logger)

	comparator := market.NewService(
		market.NewLiveProvider(oracleClient, logger),
		market.NewFallbackProvider(),
		market.Policy{
			SwitchingCostEUR:   cfg.Market.SwitchingCostEUR,
			AmortizationMonths: cfg.Market.AmortizationMonths,
			BonusAmortMonths:   cfg.Market.BonusAmortMonths,
			SwitchThresholdEUR: cfg.Market.SwitchThresholdEUR,
		},
		logger,
	)

	p, err := profileRepo.GetByID(ctx, profileID)
	if err != nil {
		logger.Error("loading profile", "profile_id", profileID, "error", err)
		os.Exit(1)
	}

	result, err := comparator.Check(ctx, p)
	if err != nil {
		logger.Error("price check failed", "profile_id", profileID, "error", err)
		os.Exit(1)
	}
	if err := checksRepo.Save(ctx, profileID, result); err != nil {
		logger.Error("saving result", "profile_id", profileID, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("encoding result", "error", err)
		os.Exit(1)
	}
}
