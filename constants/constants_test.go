package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeContractType(t *testing.T) {
	cases := map[string]ContractType{
		"FIXED":     ContractFixed,
		"vast":      ContractFixed,
		" Vast ":    ContractFixed,
		"flex":      ContractFlexible,
		"model":     ContractFlexible,
		"dynamisch": ContractDynamic,
		"hourly":    ContractDynamic,
		"variabel":  ContractVariable,
	}
	for input, want := range cases {
		got, ok := CanonicalizeContractType(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}

	got, ok := CanonicalizeContractType("geen idee")
	assert.False(t, ok)
	assert.Equal(t, ContractUnknown, got)
}

func TestIncursSwitchingCost(t *testing.T) {
	assert.True(t, ContractFixed.IncursSwitchingCost())
	assert.False(t, ContractFlexible.IncursSwitchingCost())
	assert.False(t, ContractDynamic.IncursSwitchingCost())
	assert.False(t, ContractVariable.IncursSwitchingCost())
	assert.False(t, ContractUnknown.IncursSwitchingCost())
}

func TestCanonicalizeHouseholdSize(t *testing.T) {
	cases := map[string]HouseholdSize{
		"1":   HouseholdOne,
		"2":   HouseholdTwo,
		"3":   HouseholdThreeToFour,
		"3-4": HouseholdThreeToFour,
		"5":   HouseholdFivePlus,
		"5+":  HouseholdFivePlus,
		"7":   HouseholdFivePlus,
	}
	for input, want := range cases {
		got, ok := CanonicalizeHouseholdSize(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}

	_, ok := CanonicalizeHouseholdSize("a few")
	assert.False(t, ok)
}

func TestCanonicalizeDwellingType(t *testing.T) {
	cases := map[string]DwellingType{
		"APARTMENT":    DwellingApartment,
		"appartement":  DwellingApartment,
		"flat":         DwellingApartment,
		"rijtjeshuis":  DwellingTownhouse,
		"vrijstaand":   DwellingSingleFamily,
		"single_family": DwellingSingleFamily,
		"other":        DwellingOther,
	}
	for input, want := range cases {
		got, ok := CanonicalizeDwellingType(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}

	got, ok := CanonicalizeDwellingType("houseboat")
	assert.False(t, ok)
	assert.Equal(t, DwellingOther, got, "unrecognized dwellings degrade to OTHER")
}

func TestCanonicalizeConfidence(t *testing.T) {
	assert.Equal(t, ConfidenceHigh, CanonicalizeConfidence("high"))
	assert.Equal(t, ConfidenceMedium, CanonicalizeConfidence(" MED "))
	assert.Equal(t, ConfidenceLow, CanonicalizeConfidence("low"))
	assert.Equal(t, ConfidenceLow, CanonicalizeConfidence("whatever"))
}
