package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/internal/common"
)

func TestAuthoritativeUsage(t *testing.T) {
	estimate := &UsageEstimate{KWhPerMonth: 300, RatePerKWh: 0.45}
	verified := &VerifiedUsage{KWhPerMonth: 250, RatePerKWh: 0.40}

	t.Run("no data fails fast", func(t *testing.T) {
		p := &Profile{}
		_, err := p.AuthoritativeUsage()
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrNoUsageData)
	})

	t.Run("estimate alone resolves as estimated", func(t *testing.T) {
		p := &Profile{Estimate: estimate}
		figures, err := p.AuthoritativeUsage()
		require.NoError(t, err)
		assert.Equal(t, constants.SourceEstimated, figures.Source)
		assert.InDelta(t, 300.0, figures.KWhPerMonth, 1e-9)
		assert.InDelta(t, 0.45, figures.RatePerKWh, 1e-9)
	})

	t.Run("verified strictly supersedes the estimate", func(t *testing.T) {
		p := &Profile{Estimate: estimate, Verified: verified}
		figures, err := p.AuthoritativeUsage()
		require.NoError(t, err)
		assert.Equal(t, constants.SourceVerified, figures.Source)
		assert.InDelta(t, 250.0, figures.KWhPerMonth, 1e-9)
		assert.InDelta(t, 0.40, figures.RatePerKWh, 1e-9)
	})
}

func TestCurrentContractType(t *testing.T) {
	t.Run("self-reported when unverified", func(t *testing.T) {
		p := &Profile{Contract: ContractSnapshot{ContractType: constants.ContractFixed}}
		assert.Equal(t, constants.ContractFixed, p.CurrentContractType())
	})

	t.Run("verified contract type wins", func(t *testing.T) {
		p := &Profile{
			Contract: ContractSnapshot{ContractType: constants.ContractFixed},
			Verified: &VerifiedUsage{ContractType: constants.ContractFlexible},
		}
		assert.Equal(t, constants.ContractFlexible, p.CurrentContractType())
	})

	t.Run("verified without a contract type falls back to self-reported", func(t *testing.T) {
		p := &Profile{
			Contract: ContractSnapshot{ContractType: constants.ContractDynamic},
			Verified: &VerifiedUsage{ContractType: constants.ContractUnknown},
		}
		assert.Equal(t, constants.ContractDynamic, p.CurrentContractType())
	})
}

func TestPriceCheckResultSentinel(t *testing.T) {
	empty := &PriceCheckResult{Recommendation: constants.RecommendStay}
	assert.False(t, empty.HasOffers())

	withOffer := &PriceCheckResult{
		Cheapest:       &MarketOffer{Provider: "A"},
		Recommendation: constants.RecommendStay,
	}
	assert.True(t, withOffer.HasOffers())
}
