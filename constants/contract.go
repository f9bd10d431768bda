package constants

import "strings"

// ContractType is the canonical contract type for a supply contract.
// Stable values (store these exact strings in DB).
type ContractType string

const (
	ContractFixed    ContractType = "FIXED"
	ContractFlexible ContractType = "FLEXIBLE"
	ContractDynamic  ContractType = "DYNAMIC"
	ContractVariable ContractType = "VARIABLE" // market offers only
	ContractUnknown  ContractType = "UNKNOWN"
)

// IncursSwitchingCost reports whether leaving a contract of this type
// carries an early-termination cost. Under Dutch rules only fixed-term
// contracts do; flexible/dynamic contracts have a 30-day notice at most.
func (c ContractType) IncursSwitchingCost() bool {
	return c == ContractFixed
}

// CanonicalizeContractType maps free-form input to a stable enum value.
func CanonicalizeContractType(input string) (ContractType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]ContractType{
		"fixed":      ContractFixed,
		"vast":       ContractFixed,
		"fixed-term": ContractFixed,
		"flexible":   ContractFlexible,
		"flex":       ContractFlexible,
		"model":      ContractFlexible,
		"dynamic":    ContractDynamic,
		"dynamisch":  ContractDynamic,
		"hourly":     ContractDynamic,
		"variable":   ContractVariable,
		"variabel":   ContractVariable,
	}
	if c, ok := synonyms[normalized]; ok {
		return c, true
	}
	return ContractUnknown, false
}

// Recommendation is the comparator's binary advice.
type Recommendation string

const (
	RecommendSwitch Recommendation = "SWITCH"
	RecommendStay   Recommendation = "STAY"
)
