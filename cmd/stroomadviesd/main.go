package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/tbruins/stroomadvies/internal/async"
	"github.com/tbruins/stroomadvies/internal/bills"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/estimator"
	"github.com/tbruins/stroomadvies/internal/export"
	"github.com/tbruins/stroomadvies/internal/market"
	"github.com/tbruins/stroomadvies/internal/oracle/openai"
	"github.com/tbruins/stroomadvies/internal/payment"
	"github.com/tbruins/stroomadvies/internal/profiles"
	repo "github.com/tbruins/stroomadvies/internal/repository"
	"github.com/tbruins/stroomadvies/internal/scheduler"
	svc "github.com/tbruins/stroomadvies/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// Repositories
	profileRepo := repo.NewProfileRepository(entc, logger)
	usageRepo := repo.NewUsageRepository(entc, logger)
	checksRepo := repo.NewPriceCheckRepository(entc, logger)

	// Oracle client (one client, three roles)
	oracleClient := openai.NewClient(openai.Config{
		APIKey:      cfg.Oracle.APIKey,
		BaseURL:     cfg.Oracle.BaseURL,
		Model:       cfg.Oracle.Model,
		VisionModel: cfg.Oracle.VisionModel,
		SearchModel: cfg.Oracle.SearchModel,
		Temperature: cfg.Oracle.Temperature,
		Timeout:     cfg.Oracle.Timeout,
	}, logger)

	// Core services
	estimatorSvc := estimator.NewService(oracleClient, logger)
	billsSvc := bills.NewService(oracleClient, logger)
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
	profilesSvc := profiles.NewService(profileRepo, usageRepo, estimatorSvc, billsSvc, logger)
	exportSvc := export.NewService(checksRepo, logger)
	paymentClient := payment.NewClient(payment.Config{
		APIKey:      cfg.Payment.APIKey,
		BaseURL:     cfg.Payment.BaseURL,
		RedirectURL: cfg.Payment.RedirectURL,
		WebhookURL:  cfg.Payment.WebhookURL,
		PremiumEUR:  cfg.Payment.PremiumEUR,
	}, logger)
	guard := async.NewGuard()

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)))
	svc.Register(grpcServer, svc.Servers{
		Profiles:   svc.NewProfileServer(profilesSvc, paymentClient, guard, logger),
		Bills:      svc.NewBillServer(billsSvc, profilesSvc, guard, logger),
		PriceCheck: svc.NewPriceCheckServer(comparator, profilesSvc, checksRepo, guard, logger),
		Export:     svc.NewExportServer(exportSvc, logger),
	}, logger)

	// Payment webhook (plain HTTP; the PSP posts form-encoded ids here)
	mux := http.NewServeMux()
	mux.Handle("/webhooks/payment", payment.NewWebhookHandler(paymentClient, profilesSvc, logger))
	webhookServer := &http.Server{
		Addr:              cfg.Server.WebhookAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("webhook server listening", "addr", cfg.Server.WebhookAddr)
		if err := webhookServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("webhook server failed", "error", err)
		}
	}()

	// Periodic re-check for premium profiles
	recheck := scheduler.New(cfg.Market.RecheckCron, profileRepo, checksRepo, comparator, cfg.Market.SnapshotTimeout, logger)
	if err := recheck.Start(); err != nil {
		logger.Error("failed to start scheduler", "spec", cfg.Market.RecheckCron, "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("grpc server listening", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	recheck.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = webhookServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
