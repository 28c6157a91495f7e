package views

import "strings"

// Tier is the coarse difficulty classification of a workout.
type Tier string

// Severity tiers.
const (
	TierLow     Tier = "low"
	TierMid     Tier = "mid"
	TierHigh    Tier = "high"
	TierUnknown Tier = "unknown"
)

// ClassifyDifficulty maps a free-text difficulty label to a Tier by
// case-insensitive substring match.
func ClassifyDifficulty(label string) Tier {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "easy"):
		return TierLow
	case strings.Contains(l, "medium"), strings.Contains(l, "intermediate"):
		return TierMid
	case strings.Contains(l, "hard"), strings.Contains(l, "advanced"):
		return TierHigh
	default:
		return TierUnknown
	}
}

// Style returns the badge class for the tier.
func (t Tier) Style() string {
	return "tier-" + string(t)
}
