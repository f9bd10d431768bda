package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/oracle"
)

// completionServer answers every chat/completions call with the given
// message content and records the last request body.
func completionServer(t *testing.T, content string) (*httptest.Server, *map[string]any) {
	t.Helper()
	lastBody := make(map[string]any)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lastBody))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv, &lastBody
}

func testClient(baseURL string) *Client {
	return NewClient(Config{APIKey: "test-key", BaseURL: baseURL}, nil)
}

func TestEstimateUsageValidPayload(t *testing.T) {
	srv, body := completionServer(t, `{
		"estimated_kwh_per_month": 240,
		"estimated_per_kwh_rate": 0.45,
		"confidence_level": "HIGH",
		"assumptions": ["no electric heating"],
		"reasoning": "two-person apartment baseline"
	}`)

	fields, raw, err := testClient(srv.URL).EstimateUsage(context.Background(), oracle.EstimateRequest{
		HouseholdSize:  "2",
		DwellingType:   "APARTMENT",
		MonthlyCostEUR: 120,
	})
	require.NoError(t, err)

	assert.Equal(t, 240, fields.EstimatedKWhPerMonth)
	assert.InDelta(t, 0.45, fields.EstimatedPerKWhRate, 1e-9)
	assert.Equal(t, "HIGH", fields.ConfidenceLevel)
	assert.NotEmpty(t, raw)
	// structured output is requested explicitly
	assert.Equal(t, map[string]any{"type": "json_object"}, (*body)["response_format"])
}

func TestEstimateUsageSanitizesSloppyPayload(t *testing.T) {
	// wrong key names and string numbers: the lenient retry should rescue it
	srv, _ := completionServer(t, `{
		"estimated_kwh": "240",
		"rate_per_kwh": "0.45",
		"confidence": "high",
		"assumptions": "no electric heating",
		"reasoning": "baseline"
	}`)

	fields, _, err := testClient(srv.URL).EstimateUsage(context.Background(), oracle.EstimateRequest{})
	require.NoError(t, err)
	assert.Equal(t, 240, fields.EstimatedKWhPerMonth)
	assert.InDelta(t, 0.45, fields.EstimatedPerKWhRate, 1e-9)
}

func TestEstimateUsageRejectsUnsalvageablePayload(t *testing.T) {
	srv, _ := completionServer(t, `I'd estimate roughly 240 kWh per month.`)

	_, _, err := testClient(srv.URL).EstimateUsage(context.Background(), oracle.EstimateRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrOraclePayloadInvalid)
}

func TestEstimateUsageNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	t.Cleanup(srv.Close)

	_, _, err := testClient(srv.URL).EstimateUsage(context.Background(), oracle.EstimateRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrOraclePayloadInvalid)
}

func TestReadBillAttachesDocument(t *testing.T) {
	srv, body := completionServer(t, `{
		"annual_kwh": 3000,
		"monthly_kwh": null,
		"annual_cost_eur": null,
		"monthly_cost_eur": 100,
		"per_kwh_rate": null,
		"contract_type": "vast",
		"provider_name": "Eneco",
		"extraction_confidence": "MEDIUM",
		"warnings": ["no per-kWh rate printed"]
	}`)

	fields, _, err := testClient(srv.URL).ReadBill(context.Background(), oracle.BillRequest{
		Image:    []byte("fake-png-bytes"),
		MimeType: "image/png",
	})
	require.NoError(t, err)

	require.NotNil(t, fields.AnnualKWh)
	assert.InDelta(t, 3000.0, *fields.AnnualKWh, 1e-9)
	assert.Nil(t, fields.MonthlyKWh)
	require.NotNil(t, fields.ProviderName)
	assert.Equal(t, "Eneco", *fields.ProviderName)

	// the document goes up as a data URL on the user message
	msgs := (*body)["messages"].([]any)
	user := msgs[1].(map[string]any)["content"].([]any)
	image := user[1].(map[string]any)["image_url"].(map[string]any)["url"].(string)
	assert.Contains(t, image, "data:image/png;base64,")
}

func TestReadBillEmptyDocument(t *testing.T) {
	srv, _ := completionServer(t, `{}`)

	_, _, err := testClient(srv.URL).ReadBill(context.Background(), oracle.BillRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSearchMarketReturnsUnstructuredText(t *testing.T) {
	srv, _ := completionServer(t, "Budget Energie offers 0.30/kWh fixed with a 75 euro bonus.")

	text, err := testClient(srv.URL).SearchMarket(context.Background(), oracle.MarketRequest{
		ContractType: "FIXED",
		RatePerKWh:   0.45,
		KWhPerMonth:  300,
	})
	require.NoError(t, err)
	assert.Contains(t, text, "Budget Energie")
}

func TestSearchMarketEmptyResponse(t *testing.T) {
	srv, _ := completionServer(t, "   ")

	_, err := testClient(srv.URL).SearchMarket(context.Background(), oracle.MarketRequest{})
	require.Error(t, err)
}

func TestAnalyzeMarketValidPayload(t *testing.T) {
	srv, _ := completionServer(t, `{
		"top2_providers": [
			{"name": "Budget Energie", "per_kwh_rate": 0.30, "contract_type": "fixed", "welkomsbonus": 75},
			{"name": "Eneco", "per_kwh_rate": 0.40, "contract_type": "variable"}
		],
		"monthly_savings": 45,
		"recommendation": "SWITCH",
		"reasoning": "cheaper fixed offer with a bonus"
	}`)

	fields, _, err := testClient(srv.URL).AnalyzeMarket(context.Background(), oracle.MarketRequest{}, "search context")
	require.NoError(t, err)

	require.Len(t, fields.Top2Providers, 2)
	assert.Equal(t, "Budget Energie", fields.Top2Providers[0].Name)
	assert.InDelta(t, 75.0, fields.Top2Providers[0].Welkomsbonus, 1e-9)
	assert.Equal(t, "SWITCH", fields.Recommendation)
}

func TestAnalyzeMarketHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	_, _, err := testClient(srv.URL).AnalyzeMarket(context.Background(), oracle.MarketRequest{}, "ctx")
	require.Error(t, err)
}
