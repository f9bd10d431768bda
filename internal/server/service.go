package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	stroompb "github.com/tbruins/stroomadvies/gen/proto/stroomadvies/v1"
	"github.com/tbruins/stroomadvies/internal/common"
)

// Servers bundles every gRPC service implementation for registration.
type Servers struct {
	Profiles   *ProfileServer
	Bills      *BillServer
	PriceCheck *PriceCheckServer
	Export     *ExportServer
}

// Register wires all services, health, and reflection onto a grpc.Server.
func Register(grpcServer *grpc.Server, s Servers, logger *slog.Logger) {
	stroompb.RegisterProfilesServiceServer(grpcServer, s.Profiles)
	stroompb.RegisterBillsServiceServer(grpcServer, s.Bills)
	stroompb.RegisterPriceCheckServiceServer(grpcServer, s.PriceCheck)
	stroompb.RegisterExportServiceServer(grpcServer, s.Export)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)
	logger.Info("grpc services registered",
		"services", []string{"profiles", "bills", "pricecheck", "export"},
	)
}

// RequestIDInterceptor stamps each call with a request id and logs the
// method outcome with timing, matching the oracle client's log keys.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := uuid.New().String()
		ctx = common.WithRequestID(ctx, reqID)
		start := time.Now()

		resp, err := handler(ctx, req)

		if err != nil {
			logger.Warn("grpc.request.error",
				"req_id", reqID,
				"method", info.FullMethod,
				"error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return resp, err
		}
		logger.Info("grpc.request.ok",
			"req_id", reqID,
			"method", info.FullMethod,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return resp, nil
	}
}
