package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	stroompb "github.com/tbruins/stroomadvies/gen/proto/stroomadvies/v1"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/export"
	"github.com/tbruins/stroomadvies/internal/utils"
)

type ExportServer struct {
	stroompb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportPriceChecks(ctx context.Context, req *stroompb.ExportPriceChecksRequest) (*stroompb.ExportPriceChecksResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}

	// Optional dates (YYYY-MM-DD):
	// - only from -> from..today (inclusive)
	// - only to   -> beginning..to (inclusive)
	// - none      -> full history.
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, perr := utils.ParseYMD(fd)
		if perr != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, perr := utils.ParseYMD(td)
		if perr != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}
	if fromPtr != nil && toPtr != nil && toPtr.Before(*fromPtr) {
		return nil, common.InvalidArgumentError("to_date must not be before from_date")
	}

	data, err := s.svc.ExportPriceChecksXLSX(ctx, profileID, fromPtr, toPtr)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	filename := fmt.Sprintf("price-checks-%s-%s.xlsx", profileID, time.Now().UTC().Format("20060102"))
	return &stroompb.ExportPriceChecksResponse{
		Xlsx:     data,
		Filename: filename,
	}, nil
}
