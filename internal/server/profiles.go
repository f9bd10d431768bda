package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	stroompb "github.com/tbruins/stroomadvies/gen/proto/stroomadvies/v1"
	"github.com/tbruins/stroomadvies/internal/async"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/payment"
	"github.com/tbruins/stroomadvies/internal/profiles"
	"github.com/tbruins/stroomadvies/internal/utils"
)

type ProfileServer struct {
	stroompb.UnimplementedProfilesServiceServer
	svc      *profiles.Service
	payments *payment.Client
	guard    *async.Guard
	logger   *slog.Logger
}

func NewProfileServer(svc *profiles.Service, payments *payment.Client, guard *async.Guard, logger *slog.Logger) *ProfileServer {
	return &ProfileServer{
		svc:      svc,
		payments: payments,
		guard:    guard,
		logger:   logger,
	}
}

// CreateProfile captures the signup attributes and runs the baseline
// estimate. The response carries the profile in the Estimated state.
func (s *ProfileServer) CreateProfile(ctx context.Context, req *stroompb.CreateProfileRequest) (*stroompb.CreateProfileResponse, error) {
	v := common.NewValidator().
		Field("household_size", req.GetHouseholdSize(), common.Required).
		Field("dwelling_type", req.GetDwellingType(), common.Required).
		Field("monthly_cost_eur", req.GetMonthlyCostEur(), common.PositiveAmount)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	serviceReq := profiles.SignupRequest{
		HouseholdSize:      req.GetHouseholdSize(),
		DwellingType:       req.GetDwellingType(),
		WorksFromHome:      req.GetWorksFromHome(),
		HasHeatPump:        req.GetHasHeatPump(),
		HasDistrictHeating: req.GetHasDistrictHeating(),
		HasSolarPanels:     req.GetHasSolarPanels(),
		Provider:           req.GetProvider(),
		ContractType:       req.GetContractType(),
		MonthlyCostEUR:     req.GetMonthlyCostEur(),
	}

	p, err := s.svc.Signup(ctx, serviceReq)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	return &stroompb.CreateProfileResponse{
		Profile: utils.ToPBProfile(p),
	}, nil
}

// GetProfile returns the full aggregate, including the latest estimate,
// verified usage, and most recent price check.
func (s *ProfileServer) GetProfile(ctx context.Context, req *stroompb.GetProfileRequest) (*stroompb.GetProfileResponse, error) {
	id, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}

	p, err := s.svc.Get(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	return &stroompb.GetProfileResponse{
		Profile: utils.ToPBProfile(p),
	}, nil
}

// StartPremiumCheckout creates a checkout and returns the redirect URL.
// The tier only flips when the payment webhook confirms the paid status.
func (s *ProfileServer) StartPremiumCheckout(ctx context.Context, req *stroompb.StartPremiumCheckoutRequest) (*stroompb.StartPremiumCheckoutResponse, error) {
	id, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}

	checkout, err := s.payments.CreateCheckout(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	return &stroompb.StartPremiumCheckoutResponse{
		CheckoutUrl: checkout.CheckoutURL,
		PaymentId:   checkout.PaymentID,
	}, nil
}

func parseProfileID(raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, common.InvalidArgumentError("profile_id is required")
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	return id, nil
}
