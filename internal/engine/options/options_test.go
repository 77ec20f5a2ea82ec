package options_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
)

func TestBuild(t *testing.T) {
	raw := options.UsageData{
		"20024": {"50": 12},
		"10005": {"54": 30, "40": 2, "52": 0, "30": 1},
	}
	names := options.Names{
		"10005": "호시노",
		"20024": "히마리",
	}

	got := options.Build(raw, names)

	require.Len(t, got, 2)

	assert.Equal(t, 10005, got[0].Value)
	assert.Equal(t, "호시노", got[0].Label)
	assert.Equal(t, []options.Child{
		{Value: 30, Label: "호시노 3★ (1)", Count: 1},
		{Value: 40, Label: "호시노 4★ (2)", Count: 2},
		{Value: 54, Label: "호시노 5★ 무기4 (30)", Count: 30},
	}, got[0].Children)

	assert.Equal(t, 20024, got[1].Value)
	assert.Equal(t, []options.Child{
		{Value: 50, Label: "히마리 5★ 무기0 (12)", Count: 12},
	}, got[1].Children)
}

func TestBuild_WeaponSuffixSuppression(t *testing.T) {
	fourStar := options.ChildLabel("세리카", raid.GradeFromKey(40), 3)
	assert.Equal(t, "세리카 4★ (3)", fourStar)
	assert.NotContains(t, fourStar, "무기")

	// weapon digit is ignored below five stars even when present
	assert.Equal(t, "세리카 4★ (3)", options.ChildLabel("세리카", raid.GradeFromKey(42), 3))

	fiveStar := options.ChildLabel("세리카", raid.GradeFromKey(52), 3)
	assert.Equal(t, 1, strings.Count(fiveStar, "무기2"))
}

func TestBuild_MissingNameAndBadKeys(t *testing.T) {
	raw := options.UsageData{
		"10001":   {"50": 1, "x": 4},
		"unknown": {"50": 9},
	}

	got := options.Build(raw, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Label)
	assert.Equal(t, []options.Child{{Value: 50, Label: " 5★ 무기0 (1)", Count: 1}}, got[0].Children)
}

func TestBuild_NonCanonicalKeysAreSummed(t *testing.T) {
	raw := options.UsageData{
		"10005":  {"52": 3, "052": 2, "40": 1},
		"010005": {"40": 4},
	}

	got := options.Build(raw, options.Names{"10005": "호시노"})

	require.Len(t, got, 1)
	assert.Equal(t, []options.Child{
		{Value: 40, Label: "호시노 4★ (5)", Count: 5},
		{Value: 52, Label: "호시노 5★ 무기2 (5)", Count: 5},
	}, got[0].Children)
}

func TestBuild_AllZeroKeepsParent(t *testing.T) {
	got := options.Build(options.UsageData{"10001": {"50": 0}}, options.Names{"10001": "A"})

	require.Len(t, got, 1)
	assert.Empty(t, got[0].Children)
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, options.Build(nil, nil))
}
