package types

// ImportanceTier is the job-side label indicating how heavily a requirement
// weighs in scoring.
type ImportanceTier string

const (
	TierCritical ImportanceTier = "critical"
	TierHigh     ImportanceTier = "high"
	TierMedium   ImportanceTier = "medium"
	TierLow      ImportanceTier = "low"
)

// Tiers lists all known importance tiers in descending weight order.
var Tiers = []ImportanceTier{TierCritical, TierHigh, TierMedium, TierLow}

// ParseImportanceTier maps a raw tier string to a known tier. Unrecognized
// values degrade to medium, mirroring how extraction defaults mid-importance
// when the source text is ambiguous.
func ParseImportanceTier(s string) ImportanceTier {
	switch ImportanceTier(s) {
	case TierCritical, TierHigh, TierMedium, TierLow:
		return ImportanceTier(s)
	default:
		return TierMedium
	}
}
