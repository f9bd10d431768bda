package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/entity"
)

type fakeChecksRepo struct {
	checks   []*entity.PriceCheckResult
	gotFrom  *time.Time
	gotTo    *time.Time
	profiles []uuid.UUID
}

func (f *fakeChecksRepo) Save(_ context.Context, _ uuid.UUID, _ *entity.PriceCheckResult) error {
	return nil
}

func (f *fakeChecksRepo) Latest(_ context.Context, _ uuid.UUID) (*entity.PriceCheckResult, error) {
	return nil, nil
}

func (f *fakeChecksRepo) History(_ context.Context, profileID uuid.UUID, from, to *time.Time) ([]*entity.PriceCheckResult, error) {
	f.profiles = append(f.profiles, profileID)
	f.gotFrom = from
	f.gotTo = to
	return f.checks, nil
}

func sampleCheck(checkedAt time.Time) *entity.PriceCheckResult {
	return &entity.PriceCheckResult{
		ID:              uuid.New(),
		CheckedAt:       checkedAt,
		Source:          constants.SourceVerified,
		UsedKWhPerMonth: 250,
		UsedRatePerKWh:  0.40,
		SnapshotSource:  constants.SnapshotLive,
		Cheapest: &entity.MarketOffer{
			Provider:        "Budget Energie",
			RatePerKWh:      0.30,
			WelcomeBonusEUR: 75,
		},
		MonthlySavingsEUR: 45,
		Recommendation:    constants.RecommendSwitch,
		Reasoning:         "cheaper fixed offer with a welcome bonus",
	}
}

func TestExportPriceChecksXLSX(t *testing.T) {
	checkedAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	repo := &fakeChecksRepo{checks: []*entity.PriceCheckResult{sampleCheck(checkedAt)}}
	s := NewService(repo, nil)

	out, err := s.ExportPriceChecksXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Price Checks")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Checked At", rows[0][0])
	assert.Equal(t, "2025-06-01 09:30", rows[1][0])
	assert.Equal(t, "VERIFIED", rows[1][1])
	assert.Equal(t, "Budget Energie", rows[1][5])
	assert.Equal(t, "SWITCH", rows[1][9])
}

func TestExportEmptyHistoryStillProducesWorkbook(t *testing.T) {
	s := NewService(&fakeChecksRepo{}, nil)

	out, err := s.ExportPriceChecksXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Price Checks")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

func TestExportEmptyMarketRowSaysNoOffers(t *testing.T) {
	check := sampleCheck(time.Now())
	check.Cheapest = nil
	check.Recommendation = constants.RecommendStay
	check.MonthlySavingsEUR = 0
	s := NewService(&fakeChecksRepo{checks: []*entity.PriceCheckResult{check}}, nil)

	out, err := s.ExportPriceChecksXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Price Checks")
	require.NoError(t, err)
	assert.Equal(t, "no offers", rows[1][5])
}

func TestExportNormalizesDateWindow(t *testing.T) {
	repo := &fakeChecksRepo{}
	s := NewService(repo, nil)

	from := time.Date(2025, 5, 1, 14, 45, 0, 0, time.Local)
	_, err := s.ExportPriceChecksXLSX(context.Background(), uuid.New(), &from, nil)
	require.NoError(t, err)

	require.NotNil(t, repo.gotFrom)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), *repo.gotFrom)
	// open-ended "from" closes at end of today
	require.NotNil(t, repo.gotTo)
	assert.Equal(t, 23, repo.gotTo.Hour())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 140))
	long := truncate(string(make([]byte, 200)), 140)
	assert.Len(t, []rune(long), 140)
}
