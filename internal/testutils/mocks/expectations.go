// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ba-raid-api/internal/clients/external"
	externalmock "github.com/KirkDiggler/ba-raid-api/internal/clients/external/mock"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	filterstate "github.com/KirkDiggler/ba-raid-api/internal/repositories/filter_state"
	filterstatemock "github.com/KirkDiggler/ba-raid-api/internal/repositories/filter_state/mock"
	videoanalysis "github.com/KirkDiggler/ba-raid-api/internal/repositories/video_analysis"
	videoanalysismock "github.com/KirkDiggler/ba-raid-api/internal/repositories/video_analysis/mock"
)

// ExpectPartyFeed sets up a single feed load for the feed's raid
func ExpectPartyFeed(ctx context.Context, mockClient *externalmock.MockClient, feed *external.PartyFeed) *gomock.Call {
	return mockClient.EXPECT().
		GetParties(ctx, feed.RaidID).
		Return(feed, nil)
}

// ExpectStudentNames sets up any number of name lookups
func ExpectStudentNames(ctx context.Context, mockClient *externalmock.MockClient, names options.Names) {
	mockClient.EXPECT().
		GetStudentNames(ctx).
		Return(names, nil).
		AnyTimes()
}

// ExpectStateGet sets up a filter state load. A nil state returns NotFound
// the way the repositories do.
func ExpectStateGet(
	ctx context.Context, mockRepo *filterstatemock.MockRepository,
	ownerID string, state *filterstate.State, err error,
) {
	call := mockRepo.EXPECT().Get(ctx, filterstate.GetInput{OwnerID: ownerID})
	if err != nil {
		call.Return(nil, err)
		return
	}
	call.Return(&filterstate.GetOutput{State: state}, nil)
}

// ExpectStateSave echoes the saved state back with UpdatedAt stamped
func ExpectStateSave(ctx context.Context, mockRepo *filterstatemock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input filterstate.SaveInput) (*filterstate.SaveOutput, error) {
			saved := *input.State
			saved.UpdatedAt = clock.Now()
			return &filterstate.SaveOutput{State: &saved}, nil
		})
}

// ExpectVideoScores sets up the linked score lookup for a raid
func ExpectVideoScores(
	ctx context.Context, mockRepo *videoanalysismock.MockRepository,
	raidID string, scores []int64,
) {
	mockRepo.EXPECT().
		ListScores(ctx, videoanalysis.ListScoresInput{RaidID: raidID}).
		Return(&videoanalysis.ListScoresOutput{Scores: scores}, nil)
}

var clock = &testClock{}

type testClock struct{}

func (c *testClock) Now() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}
