package client

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	raidv1alpha1 "github.com/KirkDiggler/ba-raid-api/internal/api/raid/v1alpha1"
)

func newCriteriaCmd(t *testing.T, args ...string) (*cobra.Command, *criteriaFlags) {
	t.Helper()
	f := &criteriaFlags{}
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, f
}

func TestCriteriaFlags_NoneSet(t *testing.T) {
	cmd, f := newCriteriaCmd(t)
	c, err := f.build(cmd)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCriteriaFlags_Build(t *testing.T) {
	cmd, f := newCriteriaCmd(t,
		"--include", "10005,20024:50",
		"--exclude", "10010",
		"--assist", "10004:52",
		"--party-count", "1-2",
		"--tier", "L,T",
		"--hard-exclude",
	)

	c, err := f.build(cmd)
	require.NoError(t, err)

	key50, key52 := 50, 52
	assert.Equal(t, &raidv1alpha1.Criteria{
		Include: []*raidv1alpha1.CharacterFilter{
			{StudentID: 10005},
			{StudentID: 20024, GradeKey: &key50},
		},
		Exclude:     []int{10010},
		HardExclude: true,
		Assist:      &raidv1alpha1.CharacterFilter{StudentID: 10004, GradeKey: &key52},
		PartyCount:  &raidv1alpha1.PartyCountRange{Min: 1, Max: 2},
		Tiers:       []string{"L", "T"},
	}, c)
}

func TestCriteriaFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "include not a number", args: []string{"--include", "hoshino"}},
		{name: "bad grade key", args: []string{"--assist", "10004:x"}},
		{name: "bad range", args: []string{"--party-count", "1-many"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, f := newCriteriaCmd(t, tc.args...)
			_, err := f.build(cmd)
			assert.Error(t, err)
		})
	}
}

func TestParseRange_SingleValue(t *testing.T) {
	r, err := parseRange("3")
	require.NoError(t, err)
	assert.Equal(t, &raidv1alpha1.PartyCountRange{Min: 3, Max: 3}, r)
}

func TestParsePartyData(t *testing.T) {
	got, err := parsePartyData("10005530, 20024500,0; 10010400;")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{10005530, 20024500, 0}, {10010400}}, got)

	_, err = parsePartyData("10005530,abc")
	assert.Error(t, err)
}
