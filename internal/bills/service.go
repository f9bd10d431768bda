// Package bills extracts usage and cost figures from uploaded bill
// documents via the multimodal oracle. Extraction alone never verifies a
// profile; the verified flag only flips after the user confirms the
// extracted figures.
package bills

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/oracle"
)

// Service handles bill extraction. Stateless between calls; persistence
// and the verified transition belong to the caller.
type Service struct {
	oracle oracle.BillReader
	logger *slog.Logger
}

func NewService(o oracle.BillReader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{oracle: o, logger: logger}
}

// Extract reads one bill document (decoded bytes, not a path) and returns
// the nullable extraction. Gaps stay nil with a warning each; an unreadable
// document or oracle failure wraps ErrExtractionFailed.
func (s *Service) Extract(ctx context.Context, document []byte, mimeType, filename string) (*entity.BillExtraction, error) {
	if len(document) == 0 {
		return nil, common.NewAppError("BILL_INPUT", "document is empty", common.ErrInvalidInput)
	}

	fields, _, err := s.oracle.ReadBill(ctx, oracle.BillRequest{
		Image:        document,
		MimeType:     mimeType,
		FilenameHint: filename,
	})
	if err != nil {
		s.logger.Error("bills.oracle_failed", "error", err)
		return nil, common.NewAppError("BILL_ORACLE", "bill extraction failed",
			fmt.Errorf("%w: %w", common.ErrExtractionFailed, err))
	}

	ext := &entity.BillExtraction{
		AnnualKWh:      fields.AnnualKWh,
		MonthlyKWh:     fields.MonthlyKWh,
		AnnualCostEUR:  fields.AnnualCostEUR,
		MonthlyCostEUR: fields.MonthlyCostEUR,
		RatePerKWh:     fields.PerKWhRate,
		ContractType:   constants.ContractUnknown,
		Confidence:     constants.CanonicalizeConfidence(fields.ExtractionConfidence),
		Warnings:       fields.Warnings,
	}
	if fields.ProviderName != nil {
		ext.Provider = *fields.ProviderName
	}
	if fields.ContractType != nil {
		if ct, ok := constants.CanonicalizeContractType(*fields.ContractType); ok {
			ext.ContractType = ct
		}
	}

	ext.Warnings = append(ext.Warnings, consistencyWarnings(ext)...)

	s.logger.Info("bills.extract_ok",
		"provider", ext.Provider,
		"contract_type", ext.ContractType,
		"confidence", ext.Confidence,
		"warnings", len(ext.Warnings),
	)
	return ext, nil
}

// Confirm finalizes a user-approved extraction into VerifiedUsage. It
// fails when the extraction cannot resolve to a monthly kWh and rate, so
// a profile is never verified on figures that do not exist.
func (s *Service) Confirm(extraction *entity.BillExtraction, confirmedAt timeProvider) (*entity.VerifiedUsage, error) {
	figures, warnings, err := ResolveFigures(extraction)
	if err != nil {
		return nil, err
	}
	return &entity.VerifiedUsage{
		KWhPerMonth:  figures.KWhPerMonth,
		RatePerKWh:   figures.RatePerKWh,
		Provider:     extraction.Provider,
		ContractType: extraction.ContractType,
		Confidence:   extraction.Confidence,
		Warnings:     append(append([]string{}, extraction.Warnings...), warnings...),
		ConfirmedAt:  confirmedAt(),
	}, nil
}
