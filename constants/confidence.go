package constants

import "strings"

// Confidence is the coarse confidence label attached to estimates and
// bill extractions. Stable values (store these exact strings in DB).
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

func ConfidenceLevels() []string {
	return []string{string(ConfidenceHigh), string(ConfidenceMedium), string(ConfidenceLow)}
}

// CanonicalizeConfidence maps free-form oracle output to a stable value.
// Unrecognized input degrades to LOW rather than failing the whole payload.
func CanonicalizeConfidence(input string) Confidence {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "HIGH":
		return ConfidenceHigh
	case "MEDIUM", "MED":
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
