package partyfilter

import (
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
)

// Default score boundaries between difficulty tiers. Scores are compared
// with >=, so a score equal to a boundary belongs to the higher tier.
// Upstream records carry no explicit difficulty, so a clear at the very
// bottom of a tier can be misclassified.
const (
	DefaultTormentThreshold int64 = 31_076_000
	DefaultLunaticThreshold int64 = 44_057_000
)

// Thresholds are the minimum scores for the Torment and Lunatic tiers
type Thresholds struct {
	Torment int64 `json:"torment" yaml:"torment"`
	Lunatic int64 `json:"lunatic" yaml:"lunatic"`
}

// DefaultThresholds returns the built-in tier boundaries
func DefaultThresholds() Thresholds {
	return Thresholds{
		Torment: DefaultTormentThreshold,
		Lunatic: DefaultLunaticThreshold,
	}
}

// Validate checks that the boundaries are positive and ordered
func (t Thresholds) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("torment", t.Torment, vb)
	if t.Lunatic <= t.Torment {
		vb.Field("lunatic", "must be greater than torment")
	}

	return vb.Build()
}

// TierOf classifies a score
func (t Thresholds) TierOf(score int64) raid.Tier {
	switch {
	case score >= t.Lunatic:
		return raid.TierLunatic
	case score >= t.Torment:
		return raid.TierTorment
	default:
		return raid.TierInsane
	}
}
