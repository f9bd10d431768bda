package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruins/stroomadvies/internal/common"
)

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildEstimateJSONSchema()

	t.Run("conforming payload", func(t *testing.T) {
		payload := []byte(`{
			"estimated_kwh_per_month": 240,
			"estimated_per_kwh_rate": 0.45,
			"confidence_level": "HIGH",
			"assumptions": ["no electric heating"],
			"reasoning": "small apartment"
		}`)
		require.NoError(t, ValidateJSONAgainstSchema(schema, payload))
	})

	t.Run("lowercase confidence is tolerated", func(t *testing.T) {
		payload := []byte(`{
			"estimated_kwh_per_month": 240,
			"estimated_per_kwh_rate": 0.45,
			"confidence_level": "high",
			"assumptions": [],
			"reasoning": ""
		}`)
		require.NoError(t, ValidateJSONAgainstSchema(schema, payload))
	})

	t.Run("not JSON at all", func(t *testing.T) {
		err := ValidateJSONAgainstSchema(schema, []byte("about 240 kWh per month"))
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrOraclePayloadInvalid)
	})

	t.Run("missing required field", func(t *testing.T) {
		err := ValidateJSONAgainstSchema(schema, []byte(`{"reasoning":"thin"}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrOraclePayloadInvalid)
	})

	t.Run("zero kwh violates the minimum", func(t *testing.T) {
		payload := []byte(`{
			"estimated_kwh_per_month": 0,
			"estimated_per_kwh_rate": 0.45,
			"confidence_level": "LOW",
			"assumptions": [],
			"reasoning": ""
		}`)
		err := ValidateJSONAgainstSchema(schema, payload)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrOraclePayloadInvalid)
	})

	t.Run("unknown key is rejected, not ignored", func(t *testing.T) {
		payload := []byte(`{
			"estimated_kwh_per_month": 240,
			"estimated_per_kwh_rate": 0.45,
			"confidence_level": "HIGH",
			"assumptions": [],
			"reasoning": "",
			"model_notes": "extra"
		}`)
		err := ValidateJSONAgainstSchema(schema, payload)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrOraclePayloadInvalid)
	})
}
