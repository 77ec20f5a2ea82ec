package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/stats"
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/testutils/builders"
)

func testParties() []raid.Party {
	return []raid.Party{
		builders.NewPartyBuilder().WithRank(1).WithScore(45_000_000).
			WithSubParty(builders.Member(10005, 5, 3), builders.Member(20024, 5, 0), builders.Assist(10004, 5, 2)).
			Build(),
		builders.NewPartyBuilder().WithRank(2).WithScore(32_000_000).
			WithSubParty(builders.Member(10005, 5, 3)).
			WithSubParty(builders.Member(10010, 4, 0), builders.Assist(10004, 5, 2)).
			Build(),
		builders.NewPartyBuilder().WithRank(3).WithScore(12_000_000).
			WithSubParty(builders.Member(10005, 4, 0)).
			Build(),
	}
}

func TestSummarize(t *testing.T) {
	sum := stats.Summarize(testParties(), partyfilter.DefaultThresholds())

	assert.Equal(t, 3, sum.TotalParties)
	assert.Equal(t, int64(12_000_000), sum.MinScore)
	assert.Equal(t, int64(45_000_000), sum.MaxScore)
	assert.Equal(t, map[int]int{1: 2, 2: 1}, sum.PartyCounts)
	assert.Equal(t, map[raid.Tier]int{
		raid.TierLunatic: 1,
		raid.TierTorment: 1,
		raid.TierInsane:  1,
	}, sum.Tiers)

	require.Contains(t, sum.Members, 10005)
	assert.Equal(t, 3, sum.Members[10005].Total)
	assert.Equal(t, map[int]int{53: 2, 40: 1}, sum.Members[10005].ByGrade)
	assert.Equal(t, raid.RoleStriker, sum.Members[10005].Role)
	assert.Equal(t, raid.RoleSpecial, sum.Members[20024].Role)
	assert.Equal(t, map[raid.Role]int{raid.RoleStriker: 4, raid.RoleSpecial: 1}, sum.Roles)

	require.Contains(t, sum.Assists, 10004)
	assert.Equal(t, 2, sum.Assists[10004].Total)
	assert.NotContains(t, sum.Members, 10004)
}

func TestSummarize_Empty(t *testing.T) {
	sum := stats.Summarize(nil, partyfilter.DefaultThresholds())

	assert.Zero(t, sum.TotalParties)
	assert.Empty(t, sum.Members)
	assert.Empty(t, sum.TopMembers(5))
}

func TestTopMembers(t *testing.T) {
	sum := stats.Summarize(testParties(), partyfilter.DefaultThresholds())

	top := sum.TopMembers(2)
	require.Len(t, top, 2)
	assert.Equal(t, 10005, top[0].StudentID)
	// 10010 and 20024 tie at one use; lower ID first
	assert.Equal(t, 10010, top[1].StudentID)

	assert.Len(t, sum.TopMembers(0), 3)
	assert.Len(t, sum.TopAssists(10), 1)
}

func TestFilterDataFeedsOptionBuilder(t *testing.T) {
	sum := stats.Summarize(testParties(), partyfilter.DefaultThresholds())

	members, assists := sum.FilterData()
	assert.Equal(t, map[string]int{"53": 2, "40": 1}, members["10005"])
	assert.Equal(t, map[string]int{"52": 2}, assists["10004"])

	opts := options.Build(members, options.Names{"10005": "호시노"})
	require.Len(t, opts, 3)
	assert.Equal(t, 10005, opts[0].Value)
	assert.Equal(t, "호시노 5★ 무기3 (2)", opts[0].Children[1].Label)
}
