// Package engine bundles party filtering, option building and usage stats
// behind one interface so orchestrators can be tested against a mock
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/ba-raid-api/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/stats"
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
)

// Engine applies raid rules to party data
type Engine interface {
	FilterParties(ctx context.Context, input *FilterPartiesInput) (*FilterPartiesOutput, error)
	BuildFilterOptions(ctx context.Context, input *BuildFilterOptionsInput) (*BuildFilterOptionsOutput, error)
	Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error)

	TierOf(score int64) raid.Tier
	Thresholds() partyfilter.Thresholds
}

// FilterPartiesInput holds the party list and the criteria to apply
type FilterPartiesInput struct {
	Parties  []raid.Party
	Criteria partyfilter.Criteria
}

// FilterPartiesOutput holds the matching parties in input order
type FilterPartiesOutput struct {
	Parties []raid.Party
}

// BuildFilterOptionsInput holds raw usage counts for members and assists
type BuildFilterOptionsInput struct {
	Members options.UsageData
	Assists options.UsageData
	Names   options.Names
}

// BuildFilterOptionsOutput holds the picker trees
type BuildFilterOptionsOutput struct {
	Members []options.Option
	Assists []options.Option
}

// SummarizeInput holds the parties to aggregate
type SummarizeInput struct {
	Parties []raid.Party
}

// SummarizeOutput holds the aggregate
type SummarizeOutput struct {
	Summary stats.Summary
}
