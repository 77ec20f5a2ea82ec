// Package raid implements the raid orchestrator: it loads party records from
// the feed, runs them through the filter engine and manages saved filter
// state
package raid

//go:generate mockgen -destination=mock/mock_service.go -package=raidmock github.com/KirkDiggler/ba-raid-api/internal/orchestrators/raid Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/ba-raid-api/internal/clients/external"
	"github.com/KirkDiggler/ba-raid-api/internal/engine"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	raidentity "github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	filterstate "github.com/KirkDiggler/ba-raid-api/internal/repositories/filter_state"
	videoanalysis "github.com/KirkDiggler/ba-raid-api/internal/repositories/video_analysis"
)

const (
	// DefaultPageSize is used when a request does not set one
	DefaultPageSize = 20
	// MaxPageSize caps a single page
	MaxPageSize = 100
)

// Service defines the interface for raid party operations
type Service interface {
	ListParties(ctx context.Context, input *ListPartiesInput) (*ListPartiesOutput, error)
	GetFilterOptions(ctx context.Context, input *GetFilterOptionsInput) (*GetFilterOptionsOutput, error)
	GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error)

	// Saved filter state
	GetFilterState(ctx context.Context, input *GetFilterStateInput) (*GetFilterStateOutput, error)
	SaveFilterState(ctx context.Context, input *SaveFilterStateInput) (*SaveFilterStateOutput, error)
}

// Config holds the dependencies for the raid orchestrator
type Config struct {
	ExternalClient    external.Client
	Engine            engine.Engine
	FilterStateRepo   filterstate.Repository
	VideoAnalysisRepo videoanalysis.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.FilterStateRepo == nil {
		vb.RequiredField("FilterStateRepo")
	}
	if c.VideoAnalysisRepo == nil {
		vb.RequiredField("VideoAnalysisRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	externalClient external.Client
	engine         engine.Engine
	stateRepo      filterstate.Repository
	videoRepo      videoanalysis.Repository
}

// NewOrchestrator creates a new raid orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		externalClient: cfg.ExternalClient,
		engine:         cfg.Engine,
		stateRepo:      cfg.FilterStateRepo,
		videoRepo:      cfg.VideoAnalysisRepo,
	}, nil
}

// ListParties returns one page of the parties that match the criteria
func (o *orchestrator) ListParties(ctx context.Context, input *ListPartiesInput) (*ListPartiesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("raid_id", input.RaidID, vb)
	errors.ValidateNonNegative("page", input.Page, vb)
	validatePageSize(input.PageSize, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	criteria, savedPageSize, err := o.resolveCriteria(ctx, input.Criteria, input.OwnerID)
	if err != nil {
		return nil, err
	}
	criteria, err = o.withVideoScores(ctx, input.RaidID, criteria)
	if err != nil {
		return nil, err
	}

	feed, matched, err := o.filter(ctx, input.RaidID, criteria)
	if err != nil {
		return nil, err
	}

	page := max(input.Page, 1)
	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = savedPageSize
	}
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	parties := paginate(matched, page, pageSize)
	tiers := make([]raidentity.Tier, len(parties))
	for i, p := range parties {
		tiers[i] = o.engine.TierOf(p.Score)
	}

	slog.InfoContext(ctx, "listed parties",
		"raid_id", input.RaidID,
		"total", len(feed.Parties),
		"matched", len(matched),
		"page", page)

	return &ListPartiesOutput{
		Parties:   parties,
		Tiers:     tiers,
		TotalSize: len(matched),
		Page:      page,
		PageSize:  pageSize,
		Criteria:  criteria,
		MinPartys: feed.MinPartys,
		MaxPartys: feed.MaxPartys,
	}, nil
}

// GetFilterOptions builds the member and assist pickers for a raid
func (o *orchestrator) GetFilterOptions(
	ctx context.Context,
	input *GetFilterOptionsInput,
) (*GetFilterOptionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RaidID == "" {
		return nil, errors.InvalidArgument("raid ID is required")
	}

	names, err := o.externalClient.GetStudentNames(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load student names")
	}

	var members, assists options.UsageData
	if input.Criteria == nil {
		fd, err := o.externalClient.GetFilterData(ctx, input.RaidID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load filter data for %s", input.RaidID)
		}
		members, assists = fd.Members, fd.Assists
	} else {
		if err := input.Criteria.Validate(); err != nil {
			return nil, err
		}
		criteria, err := o.withVideoScores(ctx, input.RaidID, *input.Criteria)
		if err != nil {
			return nil, err
		}
		_, matched, err := o.filter(ctx, input.RaidID, criteria)
		if err != nil {
			return nil, err
		}
		summary, err := o.engine.Summarize(ctx, &engine.SummarizeInput{Parties: matched})
		if err != nil {
			return nil, errors.Wrap(err, "failed to summarize parties")
		}
		members, assists = summary.Summary.FilterData()
	}

	built, err := o.engine.BuildFilterOptions(ctx, &engine.BuildFilterOptionsInput{
		Members: members,
		Assists: assists,
		Names:   names,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build filter options")
	}

	return &GetFilterOptionsOutput{
		Members: built.Members,
		Assists: built.Assists,
	}, nil
}

// GetStatistics summarizes usage over the matching parties
func (o *orchestrator) GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("raid_id", input.RaidID, vb)
	errors.ValidateNonNegative("top", input.Top, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var criteria partyfilter.Criteria
	if input.Criteria != nil {
		if err := input.Criteria.Validate(); err != nil {
			return nil, err
		}
		criteria = *input.Criteria
	}

	criteria, err := o.withVideoScores(ctx, input.RaidID, criteria)
	if err != nil {
		return nil, err
	}

	_, matched, err := o.filter(ctx, input.RaidID, criteria)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.Summarize(ctx, &engine.SummarizeInput{Parties: matched})
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize parties")
	}

	return &GetStatisticsOutput{
		Summary:    out.Summary,
		TopMembers: out.Summary.TopMembers(input.Top),
		TopAssists: out.Summary.TopAssists(input.Top),
	}, nil
}

// GetFilterState loads an owner's saved criteria
func (o *orchestrator) GetFilterState(
	ctx context.Context,
	input *GetFilterStateInput,
) (*GetFilterStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	out, err := o.stateRepo.Get(ctx, filterstate.GetInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get filter state for %s", input.OwnerID)
	}

	return &GetFilterStateOutput{State: out.State}, nil
}

// SaveFilterState stores an owner's criteria after validating them
func (o *orchestrator) SaveFilterState(
	ctx context.Context,
	input *SaveFilterStateInput,
) (*SaveFilterStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner_id", input.OwnerID, vb)
	validatePageSize(input.PageSize, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := input.Criteria.Validate(); err != nil {
		return nil, err
	}

	// scores are resolved per request and never persisted
	criteria := input.Criteria
	criteria.VideoScores = nil

	out, err := o.stateRepo.Save(ctx, filterstate.SaveInput{
		State: &filterstate.State{
			OwnerID:  input.OwnerID,
			RaidID:   input.RaidID,
			Criteria: criteria,
			PageSize: input.PageSize,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save filter state")
	}

	slog.InfoContext(ctx, "saved filter state",
		"owner_id", input.OwnerID,
		"raid_id", input.RaidID)

	return &SaveFilterStateOutput{State: out.State}, nil
}

// resolveCriteria picks explicit criteria, then the owner's saved criteria,
// then the empty criteria. The saved page size comes along with saved
// criteria and is 0 otherwise.
func (o *orchestrator) resolveCriteria(
	ctx context.Context,
	explicit *partyfilter.Criteria,
	ownerID string,
) (partyfilter.Criteria, int, error) {
	var criteria partyfilter.Criteria

	switch {
	case explicit != nil:
		if err := explicit.Validate(); err != nil {
			return criteria, 0, err
		}
		return *explicit, 0, nil
	case ownerID != "":
		out, err := o.stateRepo.Get(ctx, filterstate.GetInput{OwnerID: ownerID})
		switch {
		case errors.IsNotFound(err):
			slog.DebugContext(ctx, "no saved filter state, using defaults", "owner_id", ownerID)
		case errors.IsDataLoss(err):
			// a corrupt document must not block browsing; saving replaces it
			slog.WarnContext(ctx, "saved filter state unreadable, using defaults",
				"owner_id", ownerID,
				"error", err)
		case err != nil:
			return criteria, 0, errors.Wrapf(err, "failed to load filter state for %s", ownerID)
		default:
			return out.State.Criteria, out.State.PageSize, nil
		}
	}

	return criteria, 0, nil
}

// withVideoScores fills VideoScores from stored analyses when the criteria
// ask for video-linked parties only
func (o *orchestrator) withVideoScores(
	ctx context.Context,
	raidID string,
	criteria partyfilter.Criteria,
) (partyfilter.Criteria, error) {
	if !criteria.YoutubeOnly {
		return criteria, nil
	}

	out, err := o.videoRepo.ListScores(ctx, videoanalysis.ListScoresInput{RaidID: raidID})
	if err != nil {
		return criteria, errors.Wrapf(err, "failed to load video scores for %s", raidID)
	}
	criteria.VideoScores = out.Scores
	return criteria, nil
}

// filter loads the raid's parties and applies criteria that already carry
// their video scores
func (o *orchestrator) filter(
	ctx context.Context,
	raidID string,
	criteria partyfilter.Criteria,
) (*external.PartyFeed, []raidentity.Party, error) {
	feed, err := o.externalClient.GetParties(ctx, raidID)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to load parties for %s", raidID)
	}

	out, err := o.engine.FilterParties(ctx, &engine.FilterPartiesInput{
		Parties:  feed.Parties,
		Criteria: criteria,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to filter parties")
	}

	return feed, out.Parties, nil
}

func validatePageSize(size int, vb *errors.ValidationBuilder) {
	if size < 0 || size > MaxPageSize {
		vb.Fieldf("page_size", "must be between 0 and %d", MaxPageSize)
	}
}

// paginate returns the 1-based page. Pages past the end are empty; the
// bound is checked before multiplying so huge page numbers cannot overflow.
func paginate(parties []raidentity.Party, page, pageSize int) []raidentity.Party {
	if len(parties) == 0 || page-1 > (len(parties)-1)/pageSize {
		return []raidentity.Party{}
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(parties))
	return parties[start:end]
}
