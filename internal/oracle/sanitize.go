package oracle

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

// NormalizeEstimatePayload
// - Renames known synonyms (estimated_kwh -> estimated_kwh_per_month)
// - Coerces numeric strings -> numbers, floats -> int for the kWh field
// - Wraps a bare assumptions string into an array
// - Removes unknown keys (strict additionalProperties = false friendliness)
// Required fields are never invented: a payload missing one still fails
// validation afterwards.
func NormalizeEstimatePayload(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 4)
	renameKey(m, "estimated_kwh", "estimated_kwh_per_month", &dropped)
	renameKey(m, "kwh_per_month", "estimated_kwh_per_month", &dropped)
	renameKey(m, "per_kwh_rate", "estimated_per_kwh_rate", &dropped)
	renameKey(m, "rate_per_kwh", "estimated_per_kwh_rate", &dropped)
	renameKey(m, "confidence", "confidence_level", &dropped)

	coerceNumber(m, "estimated_per_kwh_rate", &dropped)
	coerceNumber(m, "estimated_kwh_per_month", &dropped)
	if f, ok := m["estimated_kwh_per_month"].(float64); ok {
		m["estimated_kwh_per_month"] = float64(int(f + 0.5))
	}
	if s, ok := m["assumptions"].(string); ok {
		m["assumptions"] = []any{s}
		dropped = append(dropped, "assumptions(wrapped)")
	}

	allowed := map[string]struct{}{
		"estimated_kwh_per_month": {}, "estimated_per_kwh_rate": {},
		"confidence_level": {}, "assumptions": {}, "reasoning": {},
	}
	dropUnknown(m, allowed, &dropped)

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("oracle.estimate.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

// NormalizeBillPayload
// - Renames known synonyms (provider -> provider_name, yearly_kwh -> annual_kwh)
// - Turns "null"/"" strings and absent nullable fields into explicit nulls
// - Coerces numeric strings -> numbers
// - Removes unknown keys
// Only the nullable fields are touched; the confidence and warnings fields
// must come from the model itself.
func NormalizeBillPayload(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renameKey(m, "provider", "provider_name", &dropped)
	renameKey(m, "yearly_kwh", "annual_kwh", &dropped)
	renameKey(m, "yearly_cost_eur", "annual_cost_eur", &dropped)
	renameKey(m, "rate_per_kwh", "per_kwh_rate", &dropped)
	renameKey(m, "confidence", "extraction_confidence", &dropped)

	nullable := []string{
		"annual_kwh", "monthly_kwh", "annual_cost_eur", "monthly_cost_eur",
		"per_kwh_rate", "contract_type", "provider_name",
	}
	for _, k := range nullable {
		v, ok := m[k]
		if !ok {
			m[k] = nil
			dropped = append(dropped, k+"(missing->null)")
			continue
		}
		if s, isStr := v.(string); isStr {
			trimmed := strings.TrimSpace(s)
			if trimmed == "" || strings.EqualFold(trimmed, "null") || strings.EqualFold(trimmed, "n/a") {
				m[k] = nil
				dropped = append(dropped, k+"(null)")
				continue
			}
			if k != "contract_type" && k != "provider_name" {
				if f, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", "."), 64); err == nil {
					m[k] = f
					dropped = append(dropped, k+"(coerced)")
				} else {
					m[k] = nil
					dropped = append(dropped, k+"(unparseable)")
				}
			}
		}
	}

	if _, ok := m["warnings"]; !ok {
		m["warnings"] = []any{}
		dropped = append(dropped, "warnings(missing->empty)")
	}

	allowed := map[string]struct{}{
		"annual_kwh": {}, "monthly_kwh": {}, "annual_cost_eur": {}, "monthly_cost_eur": {},
		"per_kwh_rate": {}, "contract_type": {}, "provider_name": {},
		"extraction_confidence": {}, "warnings": {},
	}
	dropUnknown(m, allowed, &dropped)

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("oracle.bill.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

// NormalizeMarketPayload
// - Renames bonus synonyms (welcome_bonus/bonus -> welkomsbonus)
// - Coerces numeric strings -> numbers inside offers
// - Drops offers missing a name or a usable rate
// - Removes unknown keys
func NormalizeMarketPayload(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 4)
	renameKey(m, "offers", "top2_providers", &dropped)
	coerceNumber(m, "monthly_savings", &dropped)

	if arr, ok := m["top2_providers"].([]any); ok {
		kept := make([]any, 0, len(arr))
		for i, item := range arr {
			offer, ok := item.(map[string]any)
			if !ok {
				dropped = append(dropped, fmt.Sprintf("top2_providers[%d](type)", i))
				continue
			}
			renameKey(offer, "provider", "name", &dropped)
			renameKey(offer, "welcome_bonus", "welkomsbonus", &dropped)
			renameKey(offer, "bonus", "welkomsbonus", &dropped)
			renameKey(offer, "rate_per_kwh", "per_kwh_rate", &dropped)
			coerceNumber(offer, "per_kwh_rate", &dropped)
			coerceNumber(offer, "welkomsbonus", &dropped)
			if _, ok := offer["welkomsbonus"]; !ok {
				offer["welkomsbonus"] = 0.0
			}
			name, _ := offer["name"].(string)
			rate, rateOK := offer["per_kwh_rate"].(float64)
			if strings.TrimSpace(name) == "" || !rateOK || rate <= 0 {
				dropped = append(dropped, fmt.Sprintf("top2_providers[%d](unusable)", i))
				continue
			}
			offerAllowed := map[string]struct{}{
				"name": {}, "per_kwh_rate": {}, "contract_type": {}, "welkomsbonus": {},
			}
			dropUnknown(offer, offerAllowed, &dropped)
			if _, ok := offer["contract_type"]; !ok {
				offer["contract_type"] = "variable"
			}
			kept = append(kept, offer)
		}
		m["top2_providers"] = kept
	}

	allowed := map[string]struct{}{
		"top2_providers": {}, "monthly_savings": {}, "recommendation": {}, "reasoning": {},
	}
	dropUnknown(m, allowed, &dropped)

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("oracle.market.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

func renameKey(m map[string]any, from, to string, dropped *[]string) {
	if v, ok := m[from]; ok {
		// don't overwrite an existing value if already present
		if _, exists := m[to]; !exists {
			m[to] = v
		}
		delete(m, from)
		*dropped = append(*dropped, from+"->"+to)
	}
}

func coerceNumber(m map[string]any, k string, dropped *[]string) {
	v, ok := m[k]
	if !ok {
		return
	}
	if s, isStr := v.(string); isStr {
		trimmed := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			m[k] = f
			*dropped = append(*dropped, k+"(coerced)")
		}
	}
}

func dropUnknown(m map[string]any, allowed map[string]struct{}, dropped *[]string) {
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			*dropped = append(*dropped, k+"(unknown)")
		}
	}
}
