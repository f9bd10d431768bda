package oracle

import "context"

// EstimateRequest carries the household signals the reasoning oracle
// turns into a usage estimate.
type EstimateRequest struct {
	HouseholdSize      string  `json:"household_size"`
	DwellingType       string  `json:"dwelling_type"`
	WorksFromHome      bool    `json:"works_from_home"`
	HasHeatPump        bool    `json:"has_heat_pump"`
	HasDistrictHeating bool    `json:"has_district_heating"`
	HasSolarPanels     bool    `json:"has_solar_panels"`
	Provider           string  `json:"provider,omitempty"`
	ContractType       string  `json:"contract_type,omitempty"`
	MonthlyCostEUR     float64 `json:"monthly_cost_eur"`
}

// EstimateFields is the normalized shape we want from the reasoning oracle.
type EstimateFields struct {
	EstimatedKWhPerMonth int      `json:"estimated_kwh_per_month"`
	EstimatedPerKWhRate  float64  `json:"estimated_per_kwh_rate"`
	ConfidenceLevel      string   `json:"confidence_level"`
	Assumptions          []string `json:"assumptions"`
	Reasoning            string   `json:"reasoning"`
}

// BillRequest carries one decoded bill document for the multimodal oracle.
type BillRequest struct {
	Image        []byte
	MimeType     string
	FilenameHint string
}

// BillFields is the normalized extraction shape. Every numeric field is
// nullable: a figure the document does not show stays nil and earns a
// human-readable warning instead of a guess.
type BillFields struct {
	AnnualKWh            *float64 `json:"annual_kwh"`
	MonthlyKWh           *float64 `json:"monthly_kwh"`
	AnnualCostEUR        *float64 `json:"annual_cost_eur"`
	MonthlyCostEUR       *float64 `json:"monthly_cost_eur"`
	PerKWhRate           *float64 `json:"per_kwh_rate"`
	ContractType         *string  `json:"contract_type"`
	ProviderName         *string  `json:"provider_name"`
	ExtractionConfidence string   `json:"extraction_confidence"`
	Warnings             []string `json:"warnings"`
}

// MarketRequest carries the user's side of a market comparison.
type MarketRequest struct {
	CurrentProvider string  `json:"current_provider,omitempty"`
	ContractType    string  `json:"contract_type"`
	RatePerKWh      float64 `json:"rate_per_kwh"`
	KWhPerMonth     float64 `json:"kwh_per_month"`
}

// MarketOfferFields is one candidate offer as reported by the oracle.
type MarketOfferFields struct {
	Name         string  `json:"name"`
	PerKWhRate   float64 `json:"per_kwh_rate"`
	ContractType string  `json:"contract_type"`
	Welkomsbonus float64 `json:"welkomsbonus"`
}

// MarketFields is the comparator-side oracle schema. The numeric verdict
// fields are advisory only: the comparator recomputes savings and the
// recommendation locally and its result wins on disagreement.
type MarketFields struct {
	Top2Providers  []MarketOfferFields `json:"top2_providers"`
	MonthlySavings float64             `json:"monthly_savings"`
	Recommendation string              `json:"recommendation"`
	Reasoning      string              `json:"reasoning"`
}

// UsageEstimator is the reasoning-oracle dependency of the baseline
// estimator. Implementations return the typed fields plus the raw JSON
// they were decoded from.
type UsageEstimator interface {
	EstimateUsage(ctx context.Context, req EstimateRequest) (EstimateFields, []byte, error)
}

// BillReader is the multimodal-oracle dependency of the bill extractor.
type BillReader interface {
	ReadBill(ctx context.Context, req BillRequest) (BillFields, []byte, error)
}

// MarketAnalyst is the comparator's oracle dependency. SearchMarket runs
// the grounded lookup and returns unstructured text with no schema
// guarantee; AnalyzeMarket re-parses that text into MarketFields.
type MarketAnalyst interface {
	SearchMarket(ctx context.Context, req MarketRequest) (string, error)
	AnalyzeMarket(ctx context.Context, req MarketRequest, searchContext string) (MarketFields, []byte, error)
}
