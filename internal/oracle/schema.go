package oracle

import "github.com/tbruins/stroomadvies/constants"

// BuildEstimateJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the oracle as a structured output constraint
// and also use it locally to validate the response.
func BuildEstimateJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"estimated_kwh_per_month": map[string]any{"type": "integer", "minimum": 1},
			"estimated_per_kwh_rate":  map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"confidence_level":        confidenceProp(),
			"assumptions":             map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"reasoning":               map[string]any{"type": "string"},
		},
		"required": []string{"estimated_kwh_per_month", "estimated_per_kwh_rate", "confidence_level", "assumptions", "reasoning"},
	}
}

// BuildBillJSONSchema returns the extraction schema. All numeric fields are
// nullable on purpose: the model must answer null for a figure the document
// does not show, and explain the gap in warnings.
func BuildBillJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"annual_kwh":            nullableNumberProp(),
			"monthly_kwh":           nullableNumberProp(),
			"annual_cost_eur":       nullableNumberProp(),
			"monthly_cost_eur":      nullableNumberProp(),
			"per_kwh_rate":          nullableNumberProp(),
			"contract_type":         map[string]any{"type": []string{"string", "null"}},
			"provider_name":         map[string]any{"type": []string{"string", "null"}},
			"extraction_confidence": confidenceProp(),
			"warnings":              map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []string{
			"annual_kwh", "monthly_kwh", "annual_cost_eur", "monthly_cost_eur",
			"per_kwh_rate", "contract_type", "provider_name",
			"extraction_confidence", "warnings",
		},
	}
}

// BuildMarketJSONSchema returns the comparator schema the reasoning oracle
// must produce when re-parsing grounded search output.
func BuildMarketJSONSchema() map[string]any {
	offer := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":          map[string]any{"type": "string", "minLength": 1},
			"per_kwh_rate":  map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"contract_type": map[string]any{"type": "string"},
			"welkomsbonus":  map[string]any{"type": "number", "minimum": 0.0},
		},
		"required": []string{"name", "per_kwh_rate", "contract_type"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"top2_providers":  map[string]any{"type": "array", "items": offer},
			"monthly_savings": map[string]any{"type": "number"},
			"recommendation":  map[string]any{"type": "string"},
			"reasoning":       map[string]any{"type": "string"},
		},
		"required": []string{"top2_providers", "monthly_savings", "recommendation", "reasoning"},
	}
}

func confidenceProp() map[string]any {
	levels := constants.ConfidenceLevels()
	enum := make([]any, 0, 2*len(levels))
	for _, l := range levels {
		enum = append(enum, l)
	}
	// models tend to answer lowercase regardless of instruction
	for _, l := range []string{"high", "medium", "low"} {
		enum = append(enum, l)
	}
	return map[string]any{"type": "string", "enum": enum}
}

func nullableNumberProp() map[string]any {
	return map[string]any{"type": []string{"number", "null"}, "minimum": 0.0}
}
