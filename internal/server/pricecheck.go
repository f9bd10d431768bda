package server

import (
	"context"
	"log/slog"

	stroompb "github.com/tbruins/stroomadvies/gen/proto/stroomadvies/v1"
	"github.com/tbruins/stroomadvies/internal/async"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/market"
	"github.com/tbruins/stroomadvies/internal/profiles"
	"github.com/tbruins/stroomadvies/internal/repository"
	"github.com/tbruins/stroomadvies/internal/utils"
)

type PriceCheckServer struct {
	stroompb.UnimplementedPriceCheckServiceServer
	comparator *market.Service
	profiles   *profiles.Service
	checksRepo repository.PriceCheckRepository
	guard      *async.Guard
	logger     *slog.Logger
}

func NewPriceCheckServer(
	comparator *market.Service,
	profilesSvc *profiles.Service,
	checksRepo repository.PriceCheckRepository,
	guard *async.Guard,
	logger *slog.Logger,
) *PriceCheckServer {
	return &PriceCheckServer{
		comparator: comparator,
		profiles:   profilesSvc,
		checksRepo: checksRepo,
		guard:      guard,
		logger:     logger,
	}
}

// RunPriceCheck loads the profile, runs the comparison against the
// current market, persists the result, and returns it. The usage figures
// are pinned when the profile loads: a verification landing while the
// oracle call is in flight does not relabel this run.
func (s *PriceCheckServer) RunPriceCheck(ctx context.Context, req *stroompb.RunPriceCheckRequest) (*stroompb.RunPriceCheckResponse, error) {
	id, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}

	key := "pricecheck:" + id.String()
	if err := s.guard.Acquire(key); err != nil {
		return nil, common.UnavailableError("a price check is already running for this profile")
	}
	defer s.guard.Release(key)

	p, err := s.profiles.Get(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	result, err := s.comparator.Check(ctx, p)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	if err := s.checksRepo.Save(ctx, id, result); err != nil {
		return nil, common.ToStatusError(err)
	}

	return &stroompb.RunPriceCheckResponse{
		Result: utils.ToPBPriceCheckResult(result),
	}, nil
}

// GetLatestPriceCheck returns the most recent stored result. The result
// carries its own timestamp; staleness is the caller's judgment to make.
func (s *PriceCheckServer) GetLatestPriceCheck(ctx context.Context, req *stroompb.GetLatestPriceCheckRequest) (*stroompb.GetLatestPriceCheckResponse, error) {
	id, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}

	latest, err := s.checksRepo.Latest(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	if latest == nil {
		return nil, common.NotFoundError("no price check has been run for this profile")
	}

	return &stroompb.GetLatestPriceCheckResponse{
		Result: utils.ToPBPriceCheckResult(latest),
	}, nil
}
