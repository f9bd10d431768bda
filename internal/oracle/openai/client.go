package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/oracle"
)

// sanitizer retries validation after touching only optional/nullable
// offenders; required figures are never invented.
type sanitizer func(raw []byte, logger *slog.Logger) ([]byte, []string, error)

// EstimateUsage implements oracle.UsageEstimator via text-only chat/completions.
func (c *Client) EstimateUsage(ctx context.Context, req oracle.EstimateRequest) (oracle.EstimateFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("oracle.estimate.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"dwelling", req.DwellingType,
		"household_size", req.HouseholdSize,
		"monthly_cost_eur", req.MonthlyCostEUR,
	)

	schema := oracle.BuildEstimateJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": oracle.BuildEstimateSystemPrompt()},
			{"role": "user", "content": oracle.BuildEstimateUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	content, err := c.chat(ctx, rid, body)
	if err != nil {
		c.logger.Error("oracle.estimate.http_error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return oracle.EstimateFields{}, nil, err
	}

	clean, err := c.validateWithSanitize(rid, "oracle.estimate", schema, []byte(content), oracle.NormalizeEstimatePayload)
	if err != nil {
		return oracle.EstimateFields{}, []byte(content), err
	}

	var out oracle.EstimateFields
	if err := json.Unmarshal(clean, &out); err != nil {
		c.logger.Error("oracle.estimate.unmarshal_failed", "req_id", rid, "error", err)
		return oracle.EstimateFields{}, clean, common.NewAppError("ORACLE_PAYLOAD", "unmarshal estimate fields", common.ErrOraclePayloadInvalid)
	}

	c.logger.Info("oracle.estimate.ok",
		"req_id", rid,
		"kwh", out.EstimatedKWhPerMonth,
		"rate", out.EstimatedPerKWhRate,
		"confidence", out.ConfidenceLevel,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, clean, nil
}

// ReadBill implements oracle.BillReader using the vision model with the
// document attached as a data URL.
func (c *Client) ReadBill(ctx context.Context, req oracle.BillRequest) (oracle.BillFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("oracle.bill.start",
		"req_id", rid,
		"model", c.cfg.VisionModel,
		"bytes", len(req.Image),
		"mime", req.MimeType,
	)

	if len(req.Image) == 0 {
		return oracle.BillFields{}, nil, common.NewAppError("BILL_EMPTY", "empty document", common.ErrInvalidInput)
	}

	schema := oracle.BuildBillJSONSchema()
	body := map[string]any{
		"model":           c.cfg.VisionModel,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": oracle.BuildBillSystemPrompt()},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": oracle.BuildBillUserPrompt(req)},
				{"type": "image_url", "image_url": map[string]any{"url": oracle.DataURL(req.MimeType, req.Image)}},
			}},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	content, err := c.chat(ctx, rid, body)
	if err != nil {
		c.logger.Error("oracle.bill.http_error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return oracle.BillFields{}, nil, err
	}

	clean, err := c.validateWithSanitize(rid, "oracle.bill", schema, []byte(content), oracle.NormalizeBillPayload)
	if err != nil {
		return oracle.BillFields{}, []byte(content), err
	}

	var out oracle.BillFields
	if err := json.Unmarshal(clean, &out); err != nil {
		c.logger.Error("oracle.bill.unmarshal_failed", "req_id", rid, "error", err)
		return oracle.BillFields{}, clean, common.NewAppError("ORACLE_PAYLOAD", "unmarshal bill fields", common.ErrOraclePayloadInvalid)
	}

	c.logger.Info("oracle.bill.ok",
		"req_id", rid,
		"has_monthly_kwh", out.MonthlyKWh != nil,
		"has_annual_kwh", out.AnnualKWh != nil,
		"warnings", len(out.Warnings),
		"confidence", out.ExtractionConfidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, clean, nil
}

// SearchMarket implements the grounded lookup half of oracle.MarketAnalyst.
// The returned text has no schema guarantee and is only passed back to
// AnalyzeMarket as context.
func (c *Client) SearchMarket(ctx context.Context, req oracle.MarketRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("oracle.market.search_start", "req_id", rid, "model", c.cfg.SearchModel)

	body := map[string]any{
		"model": c.cfg.SearchModel,
		"messages": []map[string]any{
			{"role": "user", "content": oracle.BuildMarketSearchQuery(req)},
		},
	}

	content, err := c.chat(ctx, rid, body)
	if err != nil {
		c.logger.Error("oracle.market.search_error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty search response")
	}

	c.logger.Info("oracle.market.search_ok", "req_id", rid, "bytes", len(content), "elapsed_ms", time.Since(start).Milliseconds())
	return content, nil
}

// AnalyzeMarket re-parses grounded search text into the comparator schema.
func (c *Client) AnalyzeMarket(ctx context.Context, req oracle.MarketRequest, searchContext string) (oracle.MarketFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("oracle.market.analyze_start", "req_id", rid, "model", c.cfg.Model, "context_len", len(searchContext))

	schema := oracle.BuildMarketJSONSchema()
	system, user := oracle.BuildMarketAnalyzePrompts(req, searchContext)
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": system},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	content, err := c.chat(ctx, rid, body)
	if err != nil {
		c.logger.Error("oracle.market.analyze_error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return oracle.MarketFields{}, nil, err
	}

	clean, err := c.validateWithSanitize(rid, "oracle.market", schema, []byte(content), oracle.NormalizeMarketPayload)
	if err != nil {
		return oracle.MarketFields{}, []byte(content), err
	}

	var out oracle.MarketFields
	if err := json.Unmarshal(clean, &out); err != nil {
		c.logger.Error("oracle.market.unmarshal_failed", "req_id", rid, "error", err)
		return oracle.MarketFields{}, clean, common.NewAppError("ORACLE_PAYLOAD", "unmarshal market fields", common.ErrOraclePayloadInvalid)
	}

	c.logger.Info("oracle.market.analyze_ok",
		"req_id", rid,
		"offers", len(out.Top2Providers),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, clean, nil
}

// chat posts a chat/completions body and returns the first choice content.
func (c *Client) chat(ctx context.Context, rid string, body map[string]any) (string, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, _, err := oracle.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("oracle.chat.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return "", common.NewAppError("ORACLE_PAYLOAD", "decode completion response", common.ErrOraclePayloadInvalid)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("oracle.chat.no_choices", "req_id", rid, "raw_bytes", len(raw))
		return "", common.NewAppError("ORACLE_PAYLOAD", "no choices in completion response", common.ErrOraclePayloadInvalid)
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

// validateWithSanitize validates strictly first, then retries once after
// the payload-specific sanitizer has normalized optional offenders.
func (c *Client) validateWithSanitize(rid, event string, schema map[string]any, raw []byte, fix sanitizer) ([]byte, error) {
	if err := oracle.ValidateJSONAgainstSchema(schema, raw); err == nil {
		return raw, nil
	}

	cleaned, dropped, sErr := fix(raw, c.logger)
	if sErr != nil {
		c.logger.Error(event+".sanitize_failed", "req_id", rid, "error", sErr)
		return nil, common.NewAppError("ORACLE_PAYLOAD", "sanitize failed", common.ErrOraclePayloadInvalid)
	}
	if vErr := oracle.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
		c.logger.Error(event+".schema_validation_failed", "req_id", rid, "error", vErr)
		return nil, vErr
	}
	c.logger.Warn(event+".lenient_sanitize_applied", "req_id", rid, "dropped", dropped)
	return cleaned, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
