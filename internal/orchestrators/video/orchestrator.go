// Package video implements the video analysis orchestrator
package video

//go:generate mockgen -destination=mock/mock_service.go -package=videomock github.com/KirkDiggler/ba-raid-api/internal/orchestrators/video Service

import (
	"context"
	"fmt"
	"log/slog"

	raidentity "github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	"github.com/KirkDiggler/ba-raid-api/internal/pkg/clock"
	"github.com/KirkDiggler/ba-raid-api/internal/pkg/idgen"
	videoanalysis "github.com/KirkDiggler/ba-raid-api/internal/repositories/video_analysis"
)

const (
	// IDPrefix starts every analysis ID
	IDPrefix = "va"

	// MaxTitleLength bounds an analysis title
	MaxTitleLength = 200
)

// Service defines the interface for video analysis operations
type Service interface {
	SubmitAnalysis(ctx context.Context, input *SubmitAnalysisInput) (*SubmitAnalysisOutput, error)
	ListAnalyses(ctx context.Context, input *ListAnalysesInput) (*ListAnalysesOutput, error)
	DeleteAnalysis(ctx context.Context, input *DeleteAnalysisInput) (*DeleteAnalysisOutput, error)
}

// Config holds the dependencies for the video orchestrator
type Config struct {
	Repository  videoanalysis.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	repo  videoanalysis.Repository
	idGen idgen.Generator
	clock clock.Clock
}

// NewOrchestrator creates a new video orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:  cfg.Repository,
		idGen: cfg.IDGenerator,
		clock: cfg.Clock,
	}, nil
}

// SubmitAnalysis validates and stores a video-linked lineup
func (o *orchestrator) SubmitAnalysis(
	ctx context.Context,
	input *SubmitAnalysisInput,
) (*SubmitAnalysisOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("raid_id", input.RaidID, vb)
	errors.ValidateMaxLength("title", input.Title, MaxTitleLength, vb)
	errors.ValidatePositive("score", input.Score, vb)

	videoID, err := VideoID(input.YoutubeURL)
	if err != nil {
		vb.Field("youtube_url", errors.GetMessage(err))
	}
	validatePartyData(input.PartyData, vb)

	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.repo.Create(ctx, videoanalysis.CreateInput{
		Analysis: &videoanalysis.Analysis{
			ID:         o.idGen.Generate(),
			RaidID:     input.RaidID,
			Score:      input.Score,
			YoutubeURL: CanonicalURL(videoID),
			Title:      input.Title,
			PartyData:  input.PartyData,
			CreatedAt:  o.clock.Now(),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store video analysis")
	}

	slog.InfoContext(ctx, "video analysis submitted",
		"analysis_id", out.Analysis.ID,
		"raid_id", out.Analysis.RaidID,
		"score", out.Analysis.Score,
		"video_id", videoID)

	return &SubmitAnalysisOutput{Analysis: out.Analysis}, nil
}

// ListAnalyses returns a raid's analyses, highest score first
func (o *orchestrator) ListAnalyses(
	ctx context.Context,
	input *ListAnalysesInput,
) (*ListAnalysesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RaidID == "" {
		return nil, errors.InvalidArgument("raid ID is required")
	}

	out, err := o.repo.ListByRaid(ctx, videoanalysis.ListByRaidInput{RaidID: input.RaidID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list video analyses for %s", input.RaidID)
	}

	return &ListAnalysesOutput{Analyses: out.Analyses}, nil
}

// DeleteAnalysis removes an analysis
func (o *orchestrator) DeleteAnalysis(
	ctx context.Context,
	input *DeleteAnalysisInput,
) (*DeleteAnalysisOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("analysis ID is required")
	}

	out, err := o.repo.Delete(ctx, videoanalysis.DeleteInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete video analysis %s", input.ID)
	}

	slog.InfoContext(ctx, "video analysis deleted",
		"analysis_id", input.ID,
		"raid_id", out.Analysis.RaidID)

	return &DeleteAnalysisOutput{Analysis: out.Analysis}, nil
}

// validatePartyData requires at least one filled slot, every code to be a
// canonical slot code and at most one assist per sub-party
func validatePartyData(partyData [][]raidentity.SlotCode, vb *errors.ValidationBuilder) {
	if len(partyData) == 0 {
		vb.RequiredField("party_data")
		return
	}

	filled := 0
	for i, row := range partyData {
		assists := 0
		for j, code := range row {
			slot, err := raidentity.ParseSlotCode(code)
			if err != nil {
				vb.Field(fmt.Sprintf("party_data[%d][%d]", i, j), errors.GetMessage(err))
				continue
			}
			if slot.IsEmpty() {
				continue
			}
			filled++
			if slot.Assist {
				assists++
			}
		}
		if assists > 1 {
			vb.Fieldf(fmt.Sprintf("party_data[%d]", i), "has %d assists, at most one is allowed", assists)
		}
	}

	if filled == 0 {
		vb.Field("party_data", "must contain at least one student")
	}
}
