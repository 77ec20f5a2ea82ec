// Package videoanalysis stores party analyses that are linked to a video,
// indexed by raid
package videoanalysis

//go:generate mockgen -destination=mock/mock_repository.go -package=videoanalysismock github.com/KirkDiggler/ba-raid-api/internal/repositories/video_analysis Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
)

// Analysis is a party lineup shown in a video, together with the score it
// reached
type Analysis struct {
	ID         string            `json:"id"`
	RaidID     string            `json:"raid_id"`
	Score      int64             `json:"score"`
	YoutubeURL string            `json:"youtube_url"`
	Title      string            `json:"title,omitempty"`
	PartyData  [][]raid.SlotCode `json:"party_data"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Party decodes the analysis lineup
func (a *Analysis) Party() raid.Party {
	return raid.NewParty(0, a.Score, a.PartyData)
}

// CreateInput contains the analysis to store
type CreateInput struct {
	Analysis *Analysis
}

// CreateOutput contains the stored analysis
type CreateOutput struct {
	Analysis *Analysis
}

// GetInput contains parameters for loading an analysis
type GetInput struct {
	ID string
}

// GetOutput contains the loaded analysis
type GetOutput struct {
	Analysis *Analysis
}

// ListByRaidInput contains parameters for listing a raid's analyses
type ListByRaidInput struct {
	RaidID string
}

// ListByRaidOutput contains analyses ordered by score descending
type ListByRaidOutput struct {
	Analyses []*Analysis
}

// ListScoresInput contains parameters for listing linked scores
type ListScoresInput struct {
	RaidID string
}

// ListScoresOutput contains distinct scores in ascending order
type ListScoresOutput struct {
	Scores []int64
}

// DeleteInput contains parameters for removing an analysis
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the removed analysis
type DeleteOutput struct {
	Analysis *Analysis
}

// Repository defines the interface for video analysis storage operations
type Repository interface {
	// Create stores a new analysis. An existing ID is AlreadyExists.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get loads one analysis
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByRaid loads every analysis of a raid
	ListByRaid(ctx context.Context, input ListByRaidInput) (*ListByRaidOutput, error)

	// ListScores returns the scores that have a linked video
	ListScores(ctx context.Context, input ListScoresInput) (*ListScoresOutput, error)

	// Delete removes an analysis and its index entry
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
