// Package scheduler re-runs the market comparison for premium profiles
// on a cron schedule, persisting results exactly like the interactive
// path does.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/market"
	"github.com/tbruins/stroomadvies/internal/repository"
)

type Scheduler struct {
	cron       *cron.Cron
	spec       string
	profiles   repository.ProfileRepository
	checks     repository.PriceCheckRepository
	comparator *market.Service
	timeout    time.Duration
	logger     *slog.Logger
}

func New(
	spec string,
	profiles repository.ProfileRepository,
	checks repository.PriceCheckRepository,
	comparator *market.Service,
	timeout time.Duration,
	logger *slog.Logger,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Scheduler{
		cron:       cron.New(),
		spec:       spec,
		profiles:   profiles,
		checks:     checks,
		comparator: comparator,
		timeout:    timeout,
		logger:     logger,
	}
}

// Start registers the recheck job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.runAll)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("scheduler.started", "spec", s.spec)
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler.stopped")
}

func (s *Scheduler) runAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	start := time.Now()
	premium, err := s.profiles.ListByTier(ctx, constants.TierPremium)
	if err != nil {
		s.logger.Error("scheduler.list_failed", "error", err)
		return
	}

	var checked, failed int
	for _, p := range premium {
		if err := s.runOne(ctx, p); err != nil {
			failed++
			continue
		}
		checked++
	}

	s.logger.Info("scheduler.run_done",
		"premium_profiles", len(premium),
		"checked", checked,
		"failed", failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Scheduler) runOne(parent context.Context, p *entity.Profile) error {
	ctx, cancel := context.WithTimeout(parent, s.timeout)
	defer cancel()

	result, err := s.comparator.Check(ctx, p)
	if err != nil {
		// a profile without usage data simply is not eligible yet
		if errors.Is(err, common.ErrNoUsageData) {
			s.logger.Info("scheduler.skip_no_usage", "profile_id", p.ID)
			return nil
		}
		s.logger.Error("scheduler.check_failed", "profile_id", p.ID, "error", err)
		return err
	}
	if err := s.checks.Save(ctx, p.ID, result); err != nil {
		s.logger.Error("scheduler.save_failed", "profile_id", p.ID, "error", err)
		return err
	}

	s.logger.Info("scheduler.checked",
		"profile_id", p.ID,
		"recommendation", result.Recommendation,
		"monthly_savings_eur", result.MonthlySavingsEUR,
	)
	return nil
}
