package constants

import "strings"

// HouseholdSize is the fixed enumeration of household sizes we ask for
// during signup. Stable values (store these exact strings in DB).
type HouseholdSize string

const (
	HouseholdOne         HouseholdSize = "1"
	HouseholdTwo         HouseholdSize = "2"
	HouseholdThreeToFour HouseholdSize = "3-4"
	HouseholdFivePlus    HouseholdSize = "5+"
)

var allHouseholdSizes = []HouseholdSize{
	HouseholdOne,
	HouseholdTwo,
	HouseholdThreeToFour,
	HouseholdFivePlus,
}

// DwellingType is the dwelling enumeration used by the estimator.
type DwellingType string

const (
	DwellingApartment    DwellingType = "APARTMENT"
	DwellingTownhouse    DwellingType = "TOWNHOUSE"
	DwellingSingleFamily DwellingType = "SINGLE_FAMILY"
	DwellingOther        DwellingType = "OTHER"
)

var allDwellingTypes = []DwellingType{
	DwellingApartment,
	DwellingTownhouse,
	DwellingSingleFamily,
	DwellingOther,
}

func HouseholdSizes() []string {
	out := make([]string, len(allHouseholdSizes))
	for i, s := range allHouseholdSizes {
		out[i] = string(s)
	}
	return out
}

func DwellingTypes() []string {
	out := make([]string, len(allDwellingTypes))
	for i, d := range allDwellingTypes {
		out[i] = string(d)
	}
	return out
}

// CanonicalizeHouseholdSize maps free-form input to a stable enum value.
func CanonicalizeHouseholdSize(input string) (HouseholdSize, bool) {
	normalized := strings.TrimSpace(input)
	switch normalized {
	case "1":
		return HouseholdOne, true
	case "2":
		return HouseholdTwo, true
	case "3", "4", "3-4", "3–4":
		return HouseholdThreeToFour, true
	case "5", "5+", "6", "7", "8":
		return HouseholdFivePlus, true
	}
	return "", false
}

// CanonicalizeDwellingType maps free-form input to a stable enum value.
func CanonicalizeDwellingType(input string) (DwellingType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]DwellingType{
		"apartment":     DwellingApartment,
		"appartement":   DwellingApartment,
		"flat":          DwellingApartment,
		"studio":        DwellingApartment,
		"townhouse":     DwellingTownhouse,
		"tussenwoning":  DwellingTownhouse,
		"rijtjeshuis":   DwellingTownhouse,
		"terraced":      DwellingTownhouse,
		"single family": DwellingSingleFamily,
		"single_family": DwellingSingleFamily,
		"vrijstaand":    DwellingSingleFamily,
		"detached":      DwellingSingleFamily,
	}
	if d, ok := synonyms[normalized]; ok {
		return d, true
	}
	for _, d := range allDwellingTypes {
		if normalized == strings.ToLower(string(d)) {
			return d, true
		}
	}
	return DwellingOther, false
}
