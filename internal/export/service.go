package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/tbruins/stroomadvies/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	checksRepo repository.PriceCheckRepository
	logger     *slog.Logger
}

func NewService(checksRepo repository.PriceCheckRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{checksRepo: checksRepo, logger: logger}
}

// ExportPriceChecksXLSX returns an XLSX workbook (as bytes) with the
// profile's price-check history in the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> the full history.
func (s *Service) ExportPriceChecksXLSX(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		// inclusive end of day
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	checks, err := s.checksRepo.History(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query price checks: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Price Checks"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Checked At",
		"Usage Source",
		"Usage (kWh/month)",
		"Rate (EUR/kWh)",
		"Snapshot",
		"Cheapest Provider",
		"Cheapest Rate (EUR/kWh)",
		"Welcome Bonus (EUR)",
		"Monthly Savings (EUR)",
		"Recommendation",
		"Reasoning",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range checks {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.CheckedAt.UTC().Format("2006-01-02 15:04"))
		write(2, string(c.Source))
		write(3, c.UsedKWhPerMonth)
		write(4, c.UsedRatePerKWh)
		write(5, string(c.SnapshotSource))
		if c.Cheapest != nil {
			write(6, c.Cheapest.Provider)
			write(7, c.Cheapest.RatePerKWh)
			write(8, c.Cheapest.WelcomeBonusEUR)
		} else {
			write(6, "no offers")
		}
		write(9, c.MonthlySavingsEUR)
		write(10, string(c.Recommendation))
		write(11, truncate(c.Reasoning, 140))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // timestamp
	_ = f.SetColWidth(sheet, "B", "B", 14) // source
	_ = f.SetColWidth(sheet, "C", "D", 16) // usage figures
	_ = f.SetColWidth(sheet, "E", "E", 12) // snapshot
	_ = f.SetColWidth(sheet, "F", "F", 22) // provider
	_ = f.SetColWidth(sheet, "G", "I", 18) // amounts
	_ = f.SetColWidth(sheet, "J", "J", 16) // recommendation
	_ = f.SetColWidth(sheet, "K", "K", 60) // reasoning

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(checks),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
