package oracle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEstimatePayload(t *testing.T) {
	raw := []byte(`{
		"estimated_kwh": "240.4",
		"rate_per_kwh": "0,45",
		"confidence": "HIGH",
		"assumptions": "no electric heating",
		"reasoning": "small apartment",
		"model_notes": "ignore me"
	}`)

	out, dropped, err := NormalizeEstimatePayload(raw, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, dropped)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))

	assert.InDelta(t, 240.0, m["estimated_kwh_per_month"], 1e-9, "numeric string rounds to a whole kWh figure")
	assert.InDelta(t, 0.45, m["estimated_per_kwh_rate"], 1e-9, "comma decimal is coerced")
	assert.Equal(t, "HIGH", m["confidence_level"])
	assert.Equal(t, []any{"no electric heating"}, m["assumptions"], "bare string is wrapped")
	assert.NotContains(t, m, "model_notes")
}

func TestNormalizeEstimatePayloadNeverInventsRequiredFields(t *testing.T) {
	out, _, err := NormalizeEstimatePayload([]byte(`{"reasoning":"thin answer"}`), nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "estimated_kwh_per_month")

	// so the strict validation still rejects it
	err = ValidateJSONAgainstSchema(BuildEstimateJSONSchema(), out)
	require.Error(t, err)
}

func TestNormalizeEstimatePayloadRejectsNonJSON(t *testing.T) {
	_, _, err := NormalizeEstimatePayload([]byte("I estimate about 240 kWh"), nil)
	require.Error(t, err)
}

func TestNormalizeBillPayload(t *testing.T) {
	raw := []byte(`{
		"yearly_kwh": "3000",
		"monthly_kwh": "n/a",
		"annual_cost_eur": null,
		"rate_per_kwh": "0,40",
		"provider": "Eneco",
		"contract_type": "",
		"extraction_confidence": "MEDIUM"
	}`)

	out, dropped, err := NormalizeBillPayload(raw, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, dropped)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))

	assert.InDelta(t, 3000.0, m["annual_kwh"], 1e-9)
	assert.Nil(t, m["monthly_kwh"], `"n/a" becomes an explicit null`)
	assert.Nil(t, m["monthly_cost_eur"], "absent nullable field becomes an explicit null")
	assert.Nil(t, m["contract_type"], "empty string becomes null, never a guess")
	assert.InDelta(t, 0.40, m["per_kwh_rate"], 1e-9)
	assert.Equal(t, "Eneco", m["provider_name"])
	assert.Equal(t, []any{}, m["warnings"], "missing warnings becomes an empty list")

	// after sanitizing, the strict schema accepts it
	require.NoError(t, ValidateJSONAgainstSchema(BuildBillJSONSchema(), out))
}

func TestNormalizeMarketPayload(t *testing.T) {
	raw := []byte(`{
		"offers": [
			{"provider": "Budget Energie", "rate_per_kwh": "0,30", "contract_type": "fixed", "welcome_bonus": 75},
			{"name": "", "per_kwh_rate": 0.25},
			{"name": "Frank Energie", "per_kwh_rate": 0.28}
		],
		"monthly_savings": "45",
		"recommendation": "SWITCH",
		"reasoning": "cheaper fixed offer"
	}`)

	out, _, err := NormalizeMarketPayload(raw, nil)
	require.NoError(t, err)

	var m struct {
		Top2 []map[string]any `json:"top2_providers"`
	}
	require.NoError(t, json.Unmarshal(out, &m))

	// the nameless offer is dropped, usable ones survive
	require.Len(t, m.Top2, 2)
	assert.Equal(t, "Budget Energie", m.Top2[0]["name"])
	assert.InDelta(t, 0.30, m.Top2[0]["per_kwh_rate"].(float64), 1e-9)
	assert.InDelta(t, 75.0, m.Top2[0]["welkomsbonus"].(float64), 1e-9)
	assert.Equal(t, "variable", m.Top2[1]["contract_type"], "missing contract type defaults to variable")
	assert.InDelta(t, 0.0, m.Top2[1]["welkomsbonus"].(float64), 1e-9)

	require.NoError(t, ValidateJSONAgainstSchema(BuildMarketJSONSchema(), out))
}
