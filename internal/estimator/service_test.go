package estimator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/oracle"
)

type stubEstimator struct {
	fields oracle.EstimateFields
	err    error
	gotReq oracle.EstimateRequest
}

func (s *stubEstimator) EstimateUsage(_ context.Context, req oracle.EstimateRequest) (oracle.EstimateFields, []byte, error) {
	s.gotReq = req
	if s.err != nil {
		return oracle.EstimateFields{}, nil, s.err
	}
	return s.fields, []byte("{}"), nil
}

func smallApartment() entity.HouseholdProfile {
	return entity.HouseholdProfile{
		Size:     constants.HouseholdOne,
		Dwelling: constants.DwellingApartment,
	}
}

func TestEstimateRateIdentity(t *testing.T) {
	stub := &stubEstimator{fields: oracle.EstimateFields{
		EstimatedKWhPerMonth: 200,
		EstimatedPerKWhRate:  0.40,
		ConfidenceLevel:      "HIGH",
		Assumptions:          []string{"no electric heating"},
		Reasoning:            "small apartment baseline",
	}}
	s := NewService(stub, nil)

	est, err := s.Estimate(context.Background(), smallApartment(), entity.ContractSnapshot{MonthlyCostEUR: 80})
	require.NoError(t, err)

	// rate = monthlyCost / kwh holds exactly, regardless of what the
	// oracle claimed the rate was
	assert.Equal(t, 200, est.KWhPerMonth)
	assert.InDelta(t, 80.0/200.0, est.RatePerKWh, 1e-9)
	assert.Equal(t, constants.ConfidenceHigh, est.Confidence)
	assert.NotEmpty(t, est.Assumptions)
	assert.False(t, est.CreatedAt.IsZero())
}

func TestEstimateRejectsNonPositiveCost(t *testing.T) {
	s := NewService(&stubEstimator{}, nil)

	for _, cost := range []float64{0, -10} {
		_, err := s.Estimate(context.Background(), smallApartment(), entity.ContractSnapshot{MonthlyCostEUR: cost})
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	}
}

func TestEstimateRejectsIncompleteHousehold(t *testing.T) {
	s := NewService(&stubEstimator{}, nil)

	_, err := s.Estimate(context.Background(), entity.HouseholdProfile{}, entity.ContractSnapshot{MonthlyCostEUR: 80})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestEstimateOracleFailure(t *testing.T) {
	stub := &stubEstimator{err: errors.New("timeout")}
	s := NewService(stub, nil)

	est, err := s.Estimate(context.Background(), smallApartment(), entity.ContractSnapshot{MonthlyCostEUR: 80})
	require.Error(t, err)
	assert.Nil(t, est, "no estimate may be fabricated on failure")
	assert.ErrorIs(t, err, common.ErrEstimationFailed)
}

func TestEstimateRejectsNonPositiveKWh(t *testing.T) {
	stub := &stubEstimator{fields: oracle.EstimateFields{
		EstimatedKWhPerMonth: 0,
		EstimatedPerKWhRate:  0.40,
		ConfidenceLevel:      "LOW",
	}}
	s := NewService(stub, nil)

	_, err := s.Estimate(context.Background(), smallApartment(), entity.ContractSnapshot{MonthlyCostEUR: 80})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEstimationFailed)
	assert.ErrorIs(t, err, common.ErrOraclePayloadInvalid)
}

func TestEstimateForwardsHouseholdSignals(t *testing.T) {
	stub := &stubEstimator{fields: oracle.EstimateFields{
		EstimatedKWhPerMonth: 450,
		EstimatedPerKWhRate:  0.35,
		ConfidenceLevel:      "MEDIUM",
	}}
	s := NewService(stub, nil)

	household := entity.HouseholdProfile{
		Size:           constants.HouseholdFivePlus,
		Dwelling:       constants.DwellingSingleFamily,
		WorksFromHome:  true,
		HasHeatPump:    true,
		HasSolarPanels: true,
	}
	_, err := s.Estimate(context.Background(), household, entity.ContractSnapshot{
		Provider:       "Eneco",
		ContractType:   constants.ContractFixed,
		MonthlyCostEUR: 160,
	})
	require.NoError(t, err)

	assert.Equal(t, "5+", stub.gotReq.HouseholdSize)
	assert.Equal(t, "SINGLE_FAMILY", stub.gotReq.DwellingType)
	assert.True(t, stub.gotReq.WorksFromHome)
	assert.True(t, stub.gotReq.HasHeatPump)
	assert.True(t, stub.gotReq.HasSolarPanels)
	assert.False(t, stub.gotReq.HasDistrictHeating)
	assert.InDelta(t, 160.0, stub.gotReq.MonthlyCostEUR, 1e-9)
}
