package server

import (
	"context"
	"log/slog"

	stroompb "github.com/tbruins/stroomadvies/gen/proto/stroomadvies/v1"
	"github.com/tbruins/stroomadvies/internal/async"
	"github.com/tbruins/stroomadvies/internal/bills"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/profiles"
	"github.com/tbruins/stroomadvies/internal/utils"
)

type BillServer struct {
	stroompb.UnimplementedBillsServiceServer
	bills    *bills.Service
	profiles *profiles.Service
	guard    *async.Guard
	logger   *slog.Logger
}

func NewBillServer(billsSvc *bills.Service, profilesSvc *profiles.Service, guard *async.Guard, logger *slog.Logger) *BillServer {
	return &BillServer{
		bills:    billsSvc,
		profiles: profilesSvc,
		guard:    guard,
		logger:   logger,
	}
}

// ExtractBill runs the multimodal extraction and returns the nullable
// fields for the user to review. Nothing is persisted here; the profile
// stays unverified until ConfirmBill.
func (s *BillServer) ExtractBill(ctx context.Context, req *stroompb.ExtractBillRequest) (*stroompb.ExtractBillResponse, error) {
	id, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}
	if len(req.GetDocument()) == 0 {
		return nil, common.InvalidArgumentError("document is required")
	}

	key := "extract:" + id.String()
	if err := s.guard.Acquire(key); err != nil {
		return nil, common.UnavailableError("a bill extraction is already running for this profile")
	}
	defer s.guard.Release(key)

	extraction, err := s.bills.Extract(ctx, req.GetDocument(), req.GetMimeType(), req.GetFilename())
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	return &stroompb.ExtractBillResponse{
		Extraction: utils.ToPBBillExtraction(extraction),
	}, nil
}

// ConfirmBill finalizes the user-approved figures into verified usage.
// This is the only way a profile becomes verified.
func (s *BillServer) ConfirmBill(ctx context.Context, req *stroompb.ConfirmBillRequest) (*stroompb.ConfirmBillResponse, error) {
	id, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}
	if req.GetExtraction() == nil {
		return nil, common.InvalidArgumentError("extraction is required")
	}

	verified, err := s.profiles.ConfirmVerification(ctx, id, utils.FromPBBillExtraction(req.GetExtraction()))
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	return &stroompb.ConfirmBillResponse{
		VerifiedUsage: utils.ToPBVerifiedUsage(verified),
	}, nil
}
