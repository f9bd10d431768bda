package bills

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/oracle"
)

type stubReader struct {
	fields oracle.BillFields
	err    error
}

func (s *stubReader) ReadBill(_ context.Context, _ oracle.BillRequest) (oracle.BillFields, []byte, error) {
	if s.err != nil {
		return oracle.BillFields{}, nil, s.err
	}
	return s.fields, []byte("{}"), nil
}

func TestExtractMapsNullableFields(t *testing.T) {
	provider := "Vattenfall"
	contract := "vast"
	stub := &stubReader{fields: oracle.BillFields{
		AnnualKWh:            f(3000),
		MonthlyCostEUR:       f(100),
		ProviderName:         &provider,
		ContractType:         &contract,
		ExtractionConfidence: "HIGH",
		Warnings:             []string{"no per-kWh rate printed on the bill"},
	}}
	s := NewService(stub, nil)

	ext, err := s.Extract(context.Background(), []byte("fakeimage"), "image/png", "bill.png")
	require.NoError(t, err)

	require.NotNil(t, ext.AnnualKWh)
	assert.InDelta(t, 3000.0, *ext.AnnualKWh, 1e-9)
	assert.Nil(t, ext.MonthlyKWh, "absent figures stay nil, never guessed")
	assert.Nil(t, ext.RatePerKWh)
	assert.Equal(t, "Vattenfall", ext.Provider)
	assert.Equal(t, constants.ContractFixed, ext.ContractType, "Dutch synonym resolves to the canonical type")
	assert.Equal(t, constants.ConfidenceHigh, ext.Confidence)
	assert.NotEmpty(t, ext.Warnings)
}

func TestExtractEmptyDocument(t *testing.T) {
	s := NewService(&stubReader{}, nil)

	_, err := s.Extract(context.Background(), nil, "image/png", "bill.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestExtractOracleFailure(t *testing.T) {
	s := NewService(&stubReader{err: errors.New("unreadable document")}, nil)

	ext, err := s.Extract(context.Background(), []byte("fakeimage"), "image/png", "bill.png")
	require.Error(t, err)
	assert.Nil(t, ext)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestExtractAddsLocalConsistencyWarnings(t *testing.T) {
	stub := &stubReader{fields: oracle.BillFields{
		AnnualKWh:            f(3600),
		MonthlyKWh:           f(200),
		PerKWhRate:           f(0.40),
		ExtractionConfidence: "MEDIUM",
	}}
	s := NewService(stub, nil)

	ext, err := s.Extract(context.Background(), []byte("fakeimage"), "image/png", "bill.png")
	require.NoError(t, err)
	require.Len(t, ext.Warnings, 1)
	assert.Contains(t, ext.Warnings[0], "does not match")
}

func TestConfirmProducesVerifiedUsage(t *testing.T) {
	s := NewService(&stubReader{}, nil)
	confirmedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ext := &entity.BillExtraction{
		AnnualKWh:    f(3000),
		RatePerKWh:   f(0.40),
		Provider:     "Eneco",
		ContractType: constants.ContractFlexible,
		Confidence:   constants.ConfidenceHigh,
		Warnings:     []string{"annual statement, not a monthly bill"},
	}

	verified, err := s.Confirm(ext, func() time.Time { return confirmedAt })
	require.NoError(t, err)

	assert.InDelta(t, 250.0, verified.KWhPerMonth, 1e-9)
	assert.InDelta(t, 0.40, verified.RatePerKWh, 1e-9)
	assert.Equal(t, "Eneco", verified.Provider)
	assert.Equal(t, constants.ContractFlexible, verified.ContractType)
	assert.Equal(t, confirmedAt, verified.ConfirmedAt)
	// extraction warnings carry over, plus the derivation note
	assert.Len(t, verified.Warnings, 2)
}

func TestConfirmFailsOnUnresolvableExtraction(t *testing.T) {
	s := NewService(&stubReader{}, nil)

	_, err := s.Confirm(&entity.BillExtraction{Provider: "Eneco"}, Now)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}
