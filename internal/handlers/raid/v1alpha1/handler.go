// Package v1alpha1 handles the raid party grpc service interface
package v1alpha1

import (
	"context"

	raidv1alpha1 "github.com/KirkDiggler/ba-raid-api/internal/api/raid/v1alpha1"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	"github.com/KirkDiggler/ba-raid-api/internal/orchestrators/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/orchestrators/video"
)

// HandlerConfig holds dependencies for the raid handler
type HandlerConfig struct {
	RaidService  raid.Service
	VideoService video.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RaidService == nil {
		vb.RequiredField("RaidService")
	}
	if c.VideoService == nil {
		vb.RequiredField("VideoService")
	}

	return vb.Build()
}

// Handler implements the RaidService gRPC server
type Handler struct {
	raidv1alpha1.UnimplementedRaidServiceServer
	raidService  raid.Service
	videoService video.Service
}

// NewHandler creates a new raid handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		raidService:  cfg.RaidService,
		videoService: cfg.VideoService,
	}, nil
}

// ListParties returns one page of parties matching the criteria
func (h *Handler) ListParties(
	ctx context.Context,
	req *raidv1alpha1.ListPartiesRequest,
) (*raidv1alpha1.ListPartiesResponse, error) {
	if req.RaidID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("raid_id is required"))
	}

	criteria, err := convertCriteriaFromProto(req.Criteria)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.raidService.ListParties(ctx, &raid.ListPartiesInput{
		RaidID:   req.RaidID,
		Criteria: criteria,
		OwnerID:  req.OwnerID,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	parties := make([]*raidv1alpha1.Party, 0, len(output.Parties))
	for i, p := range output.Parties {
		parties = append(parties, convertPartyToProto(p, output.Tiers[i]))
	}

	return &raidv1alpha1.ListPartiesResponse{
		Parties:   parties,
		TotalSize: output.TotalSize,
		Page:      output.Page,
		PageSize:  output.PageSize,
		MinPartys: output.MinPartys,
		MaxPartys: output.MaxPartys,
		Criteria:  convertCriteriaToProto(output.Criteria),
	}, nil
}

// GetFilterOptions returns the member and assist pickers for a raid
func (h *Handler) GetFilterOptions(
	ctx context.Context,
	req *raidv1alpha1.GetFilterOptionsRequest,
) (*raidv1alpha1.GetFilterOptionsResponse, error) {
	if req.RaidID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("raid_id is required"))
	}

	criteria, err := convertCriteriaFromProto(req.Criteria)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.raidService.GetFilterOptions(ctx, &raid.GetFilterOptionsInput{
		RaidID:   req.RaidID,
		Criteria: criteria,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &raidv1alpha1.GetFilterOptionsResponse{
		Members: convertOptionsToProto(output.Members),
		Assists: convertOptionsToProto(output.Assists),
	}, nil
}

// GetStatistics returns usage numbers over the matching parties
func (h *Handler) GetStatistics(
	ctx context.Context,
	req *raidv1alpha1.GetStatisticsRequest,
) (*raidv1alpha1.GetStatisticsResponse, error) {
	if req.RaidID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("raid_id is required"))
	}

	criteria, err := convertCriteriaFromProto(req.Criteria)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.raidService.GetStatistics(ctx, &raid.GetStatisticsInput{
		RaidID:   req.RaidID,
		Criteria: criteria,
		Top:      req.Top,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &raidv1alpha1.GetStatisticsResponse{
		Statistics: convertSummaryToProto(output.Summary),
		TopMembers: convertUsageToProto(output.TopMembers),
		TopAssists: convertUsageToProto(output.TopAssists),
	}, nil
}

// GetFilterState returns an owner's saved criteria
func (h *Handler) GetFilterState(
	ctx context.Context,
	req *raidv1alpha1.GetFilterStateRequest,
) (*raidv1alpha1.GetFilterStateResponse, error) {
	if req.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	output, err := h.raidService.GetFilterState(ctx, &raid.GetFilterStateInput{OwnerID: req.OwnerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &raidv1alpha1.GetFilterStateResponse{
		State: convertStateToProto(output.State),
	}, nil
}

// SaveFilterState stores an owner's criteria
func (h *Handler) SaveFilterState(
	ctx context.Context,
	req *raidv1alpha1.SaveFilterStateRequest,
) (*raidv1alpha1.SaveFilterStateResponse, error) {
	if req.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	criteria, err := convertCriteriaFromProto(req.Criteria)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if criteria == nil {
		criteria = &partyfilter.Criteria{}
	}

	output, err := h.raidService.SaveFilterState(ctx, &raid.SaveFilterStateInput{
		OwnerID:  req.OwnerID,
		RaidID:   req.RaidID,
		Criteria: *criteria,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &raidv1alpha1.SaveFilterStateResponse{
		State: convertStateToProto(output.State),
	}, nil
}

// SubmitVideoAnalysis links a video to a lineup
func (h *Handler) SubmitVideoAnalysis(
	ctx context.Context,
	req *raidv1alpha1.SubmitVideoAnalysisRequest,
) (*raidv1alpha1.SubmitVideoAnalysisResponse, error) {
	output, err := h.videoService.SubmitAnalysis(ctx, &video.SubmitAnalysisInput{
		RaidID:     req.RaidID,
		Score:      req.Score,
		YoutubeURL: req.YoutubeURL,
		Title:      req.Title,
		PartyData:  convertCodesFromProto(req.PartyData),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &raidv1alpha1.SubmitVideoAnalysisResponse{
		Analysis: convertAnalysisToProto(output.Analysis),
	}, nil
}

// ListVideoAnalyses returns a raid's analyses
func (h *Handler) ListVideoAnalyses(
	ctx context.Context,
	req *raidv1alpha1.ListVideoAnalysesRequest,
) (*raidv1alpha1.ListVideoAnalysesResponse, error) {
	if req.RaidID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("raid_id is required"))
	}

	output, err := h.videoService.ListAnalyses(ctx, &video.ListAnalysesInput{RaidID: req.RaidID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	analyses := make([]*raidv1alpha1.VideoAnalysis, 0, len(output.Analyses))
	for _, a := range output.Analyses {
		analyses = append(analyses, convertAnalysisToProto(a))
	}

	return &raidv1alpha1.ListVideoAnalysesResponse{Analyses: analyses}, nil
}

// DeleteVideoAnalysis removes an analysis
func (h *Handler) DeleteVideoAnalysis(
	ctx context.Context,
	req *raidv1alpha1.DeleteVideoAnalysisRequest,
) (*raidv1alpha1.DeleteVideoAnalysisResponse, error) {
	if req.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	output, err := h.videoService.DeleteAnalysis(ctx, &video.DeleteAnalysisInput{ID: req.ID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &raidv1alpha1.DeleteVideoAnalysisResponse{
		Analysis: convertAnalysisToProto(output.Analysis),
	}, nil
}
