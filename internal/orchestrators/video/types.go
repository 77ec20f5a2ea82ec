package video

import (
	raidentity "github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	videoanalysis "github.com/KirkDiggler/ba-raid-api/internal/repositories/video_analysis"
)

// SubmitAnalysisInput defines the request for linking a video to a lineup
type SubmitAnalysisInput struct {
	RaidID     string
	Score      int64
	YoutubeURL string
	Title      string
	PartyData  [][]raidentity.SlotCode
}

// SubmitAnalysisOutput defines the response for linking a video
type SubmitAnalysisOutput struct {
	Analysis *videoanalysis.Analysis
}

// ListAnalysesInput defines the request for listing a raid's analyses
type ListAnalysesInput struct {
	RaidID string
}

// ListAnalysesOutput defines the response for listing analyses
type ListAnalysesOutput struct {
	Analyses []*videoanalysis.Analysis
}

// DeleteAnalysisInput defines the request for removing an analysis
type DeleteAnalysisInput struct {
	ID string
}

// DeleteAnalysisOutput defines the response for removing an analysis
type DeleteAnalysisOutput struct {
	Analysis *videoanalysis.Analysis
}
