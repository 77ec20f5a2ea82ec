package engine

import (
	"context"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/stats"
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
)

type engine struct {
	thresholds partyfilter.Thresholds
}

// Config configures the engine. A zero Thresholds uses the defaults.
type Config struct {
	Thresholds partyfilter.Thresholds
}

// Validate fills defaults and checks the thresholds
func (cfg *Config) Validate() error {
	if cfg.Thresholds == (partyfilter.Thresholds{}) {
		cfg.Thresholds = partyfilter.DefaultThresholds()
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return errors.Wrap(err, "invalid thresholds")
	}
	return nil
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{thresholds: cfg.Thresholds}, nil
}

func (e *engine) FilterParties(
	_ context.Context,
	input *FilterPartiesInput,
) (*FilterPartiesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &FilterPartiesOutput{
		Parties: partyfilter.Filter(input.Parties, input.Criteria, e.thresholds),
	}, nil
}

func (e *engine) BuildFilterOptions(
	_ context.Context,
	input *BuildFilterOptionsInput,
) (*BuildFilterOptionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &BuildFilterOptionsOutput{
		Members: options.Build(input.Members, input.Names),
		Assists: options.Build(input.Assists, input.Names),
	}, nil
}

func (e *engine) Summarize(_ context.Context, input *SummarizeInput) (*SummarizeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &SummarizeOutput{Summary: stats.Summarize(input.Parties, e.thresholds)}, nil
}

func (e *engine) TierOf(score int64) raid.Tier {
	return e.thresholds.TierOf(score)
}

func (e *engine) Thresholds() partyfilter.Thresholds {
	return e.thresholds
}
