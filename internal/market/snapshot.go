package market

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/entity"
	"github.com/tbruins/stroomadvies/internal/oracle"
)

// Snapshot is one view of the market, tagged with how it was obtained so
// callers (and tests) can tell a live lookup from the reference table.
type Snapshot struct {
	Offers    []entity.MarketOffer
	Source    constants.SnapshotSource
	Reasoning string
	// AnalystAdvice is the oracle's own SWITCH/STAY verdict. Advisory
	// only: the comparator recomputes the decision locally and wins on
	// disagreement.
	AnalystAdvice string
}

// SnapshotProvider produces a market snapshot for one comparison run.
type SnapshotProvider interface {
	Fetch(ctx context.Context, req oracle.MarketRequest) (Snapshot, error)
}

// LiveProvider obtains offers through the grounded search oracle: one
// search call for unstructured market text, one reasoning call to re-parse
// it into offers.
type LiveProvider struct {
	analyst oracle.MarketAnalyst
	logger  *slog.Logger
}

func NewLiveProvider(analyst oracle.MarketAnalyst, logger *slog.Logger) *LiveProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveProvider{analyst: analyst, logger: logger}
}

func (p *LiveProvider) Fetch(ctx context.Context, req oracle.MarketRequest) (Snapshot, error) {
	searchText, err := p.analyst.SearchMarket(ctx, req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("grounded search: %w", err)
	}

	fields, _, err := p.analyst.AnalyzeMarket(ctx, req, searchText)
	if err != nil {
		return Snapshot{}, fmt.Errorf("analyze market text: %w", err)
	}

	offers := make([]entity.MarketOffer, 0, len(fields.Top2Providers))
	for _, f := range fields.Top2Providers {
		ct, _ := constants.CanonicalizeContractType(f.ContractType)
		offers = append(offers, entity.MarketOffer{
			Provider:        f.Name,
			RatePerKWh:      f.PerKWhRate,
			ContractType:    ct,
			WelcomeBonusEUR: f.Welkomsbonus,
		})
	}

	p.logger.Info("market.snapshot.live", "offers", len(offers))
	return Snapshot{
		Offers:        offers,
		Source:        constants.SnapshotLive,
		Reasoning:     fields.Reasoning,
		AnalystAdvice: fields.Recommendation,
	}, nil
}
