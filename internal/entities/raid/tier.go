package raid

import (
	"strconv"
	"strings"
)

// Tier is a difficulty classification derived from a clear score
type Tier string

// Difficulty tiers, lowest first
const (
	TierInsane  Tier = "I"
	TierTorment Tier = "T"
	TierLunatic Tier = "L"
)

// AllTiers lists every tier in ascending difficulty
var AllTiers = []Tier{TierInsane, TierTorment, TierLunatic}

// Label returns the display name of the tier
func (t Tier) Label() string {
	switch t {
	case TierInsane:
		return "Insane"
	case TierTorment:
		return "Torment"
	case TierLunatic:
		return "Lunatic"
	default:
		return string(t)
	}
}

// IsValid reports whether t is a known tier
func (t Tier) IsValid() bool {
	switch t {
	case TierInsane, TierTorment, TierLunatic:
		return true
	default:
		return false
	}
}

// FormatScore renders a score with comma thousands separators
func FormatScore(score int64) string {
	// sign is split off the text; negating MinInt64 would overflow
	digits, neg := strings.CutPrefix(strconv.FormatInt(score, 10), "-")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
