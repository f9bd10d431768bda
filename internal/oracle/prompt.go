package oracle

import (
	"fmt"
	"strings"
)

// BuildEstimateSystemPrompt composes the system message for the baseline
// estimate. The adjustment table below is the contract the estimator's
// monotonicity properties rest on: heat pump strictly raises the estimate,
// solar strictly lowers it.
func BuildEstimateSystemPrompt() string {
	parts := []string{
		"You are an energy consumption analyst for Dutch households. Return ONLY JSON that matches the provided JSON Schema.",
		"Estimate the household's electricity usage in kWh per month from its attributes.",
		"Start from a base range per dwelling type: apartment 150-250 kWh, townhouse 250-350 kWh, single-family 300-450 kWh; scale within the range by household size.",
		"Then adjust additively: working from home adds a moderate amount (roughly 30-60 kWh).",
		"A heat pump is a dominant electric heating load: it MUST strictly increase the estimate, typically by 150-350 kWh.",
		"District heating means heating happens outside the electric meter: decrease the estimate relative to an all-electric baseline.",
		"Solar panels net generation against consumption: they MUST strictly decrease the metered estimate.",
		"Set confidence_level to HIGH when the reported monthly cost is consistent with the adjusted estimate and few adjustment factors stack; degrade to MEDIUM or LOW as factors pile up or the cost deviates far from the expected baseline.",
		"List every assumption you made in 'assumptions' as short sentences.",
		"Express rates in EUR per kWh. Never output null; every schema field is required.",
	}
	return strings.Join(parts, " ")
}

// BuildEstimateUserPrompt packages the household attributes and reported cost.
func BuildEstimateUserPrompt(req EstimateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Household size: %s\n", req.HouseholdSize)
	fmt.Fprintf(&b, "Dwelling type: %s\n", req.DwellingType)
	fmt.Fprintf(&b, "Works from home: %t\n", req.WorksFromHome)
	fmt.Fprintf(&b, "Heat pump: %t\n", req.HasHeatPump)
	fmt.Fprintf(&b, "District heating: %t\n", req.HasDistrictHeating)
	fmt.Fprintf(&b, "Solar panels: %t\n", req.HasSolarPanels)
	if p := strings.TrimSpace(req.Provider); p != "" {
		fmt.Fprintf(&b, "Current provider: %s\n", p)
	}
	if c := strings.TrimSpace(req.ContractType); c != "" {
		fmt.Fprintf(&b, "Contract type: %s\n", c)
	}
	fmt.Fprintf(&b, "Reported monthly electricity cost: EUR %.2f\n", req.MonthlyCostEUR)
	return b.String()
}

// BuildBillSystemPrompt composes the system message for bill extraction.
func BuildBillSystemPrompt() string {
	parts := []string{
		"You are an energy bill parser. An image of a Dutch electricity bill or annual statement is attached.",
		"Return ONLY JSON that matches the provided JSON Schema.",
		"Extract exactly what the document shows. If a figure is not on the document, answer null for that field and add a short human-readable note to 'warnings' naming the gap.",
		"Do NOT derive monthly figures from annual ones or vice versa; report each only if printed.",
		"If stated annual and monthly figures are mutually inconsistent, report both and add a warning describing the mismatch.",
		"contract_type is one of: fixed, flexible, dynamic; null if the document does not say.",
		"Amounts are in EUR; per_kwh_rate is the all-in rate per kWh when shown.",
		"Set extraction_confidence to HIGH only for a clearly legible bill with the key figures present.",
	}
	return strings.Join(parts, " ")
}

// BuildBillUserPrompt packages the filename hint for a bill extraction.
func BuildBillUserPrompt(req BillRequest) string {
	var b strings.Builder
	if f := strings.TrimSpace(req.FilenameHint); f != "" {
		b.WriteString("Filename: ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("Extract the usage and cost figures from the attached bill.")
	return b.String()
}

// BuildMarketSearchQuery is the natural-language query for the grounded
// lookup. Its output carries no schema guarantee and is only ever passed
// back to the reasoning oracle as context.
func BuildMarketSearchQuery(req MarketRequest) string {
	return fmt.Sprintf(
		"Current electricity prices per kWh from Dutch energy providers (Essent, Eneco, Vattenfall, Greenchoice, Budget Energie, Frank Energie and others), "+
			"including any welcome bonus (welkomsbonus) for new customers and whether the offer is fixed or variable. "+
			"For context: the customer uses about %.0f kWh per month and currently pays %.3f EUR/kWh on a %s contract.",
		req.KWhPerMonth, req.RatePerKWh, strings.ToLower(req.ContractType),
	)
}

// BuildMarketAnalyzePrompts composes the re-parse step: the grounded text
// goes in as context, structured offers come out.
func BuildMarketAnalyzePrompts(req MarketRequest, searchContext string) (system, user string) {
	sysParts := []string{
		"You are an energy market analyst for the Dutch consumer market. Return ONLY JSON that matches the provided JSON Schema.",
		"From the market research text, list the concrete competing offers with provider name, all-in rate in EUR per kWh, contract type (fixed or variable), and one-time welcome bonus in EUR (0 if none).",
		"Put the two cheapest offers for this customer's usage in 'top2_providers', cheapest first.",
		"Welcome bonuses usually require keeping the contract for a minimum period to avoid clawback; when that applies, mention it in 'reasoning' rather than adjusting the numbers.",
		"Your 'monthly_savings' and 'recommendation' are advisory; be conservative and explain the trade-offs in 'reasoning'.",
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Customer: %.0f kWh/month at %.3f EUR/kWh", req.KWhPerMonth, req.RatePerKWh)
	if p := strings.TrimSpace(req.CurrentProvider); p != "" {
		fmt.Fprintf(&b, " with %s", p)
	}
	fmt.Fprintf(&b, " on a %s contract.\n\n", strings.ToLower(req.ContractType))
	b.WriteString("Market research text:\n")
	// cap context: grounded output can run long and the useful offers are up front
	if len(searchContext) > 6000 {
		b.WriteString(searchContext[:6000])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(searchContext)
	}
	return strings.Join(sysParts, " "), b.String()
}
