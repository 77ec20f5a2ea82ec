package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	raidv1alpha1 "github.com/KirkDiggler/ba-raid-api/internal/api/raid/v1alpha1"
)

// criteriaFlags collects filter criteria from the command line. Students are
// written as ID or ID:gradeKey, e.g. 10005 or 10005:53.
type criteriaFlags struct {
	include        []string
	exclude        []int
	hardExclude    bool
	assist         string
	partyCount     string
	allowDuplicate bool
	tiers          []string
	youtubeOnly    bool
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVar(&f.include, "include", nil, "Students to require (ID or ID:gradeKey)")
	flags.IntSliceVar(&f.exclude, "exclude", nil, "Student IDs to reject")
	flags.BoolVar(&f.hardExclude, "hard-exclude", false, "Apply include/exclude to assist slots too")
	flags.StringVar(&f.assist, "assist", "", "Required assist (ID or ID:gradeKey)")
	flags.StringVar(&f.partyCount, "party-count", "", "Sub-party count range, e.g. 1-2 or 3")
	flags.BoolVar(&f.allowDuplicate, "allow-duplicate", false, "Allow an assist that is also owned")
	flags.StringSliceVar(&f.tiers, "tier", nil, "Tiers to keep (I, T, L or Insane, Torment, Lunatic)")
	flags.BoolVar(&f.youtubeOnly, "youtube-only", false, "Keep only parties with a linked video")
}

// set reports whether any criteria flag was given
func (f *criteriaFlags) set(cmd *cobra.Command) bool {
	for _, name := range []string{
		"include", "exclude", "hard-exclude", "assist", "party-count",
		"allow-duplicate", "tier", "youtube-only",
	} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// build returns nil when no criteria flag was given
func (f *criteriaFlags) build(cmd *cobra.Command) (*raidv1alpha1.Criteria, error) {
	if !f.set(cmd) {
		return nil, nil
	}

	c := &raidv1alpha1.Criteria{
		Exclude:        f.exclude,
		HardExclude:    f.hardExclude,
		AllowDuplicate: f.allowDuplicate,
		Tiers:          f.tiers,
		YoutubeOnly:    f.youtubeOnly,
	}

	for _, raw := range f.include {
		filter, err := parseStudent(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid --include: %w", err)
		}
		c.Include = append(c.Include, filter)
	}

	if f.assist != "" {
		filter, err := parseStudent(f.assist)
		if err != nil {
			return nil, fmt.Errorf("invalid --assist: %w", err)
		}
		c.Assist = filter
	}

	if f.partyCount != "" {
		r, err := parseRange(f.partyCount)
		if err != nil {
			return nil, fmt.Errorf("invalid --party-count: %w", err)
		}
		c.PartyCount = r
	}

	return c, nil
}

func parseStudent(raw string) (*raidv1alpha1.CharacterFilter, error) {
	idPart, keyPart, exact := strings.Cut(strings.TrimSpace(raw), ":")

	id, err := strconv.Atoi(idPart)
	if err != nil {
		return nil, fmt.Errorf("student ID %q is not a number", idPart)
	}
	filter := &raidv1alpha1.CharacterFilter{StudentID: id}
	if !exact {
		return filter, nil
	}

	key, err := strconv.Atoi(keyPart)
	if err != nil {
		return nil, fmt.Errorf("grade key %q is not a number", keyPart)
	}
	filter.GradeKey = &key
	return filter, nil
}

func parseRange(raw string) (*raidv1alpha1.PartyCountRange, error) {
	minPart, maxPart, isRange := strings.Cut(strings.TrimSpace(raw), "-")
	if !isRange {
		maxPart = minPart
	}

	lo, err := strconv.Atoi(minPart)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", minPart)
	}
	hi, err := strconv.Atoi(maxPart)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", maxPart)
	}
	return &raidv1alpha1.PartyCountRange{Min: lo, Max: hi}, nil
}

// parsePartyData reads sub-parties separated by ";" with comma separated
// slot codes, e.g. "10005530,20024500,0;10010400"
func parsePartyData(raw string) ([][]int, error) {
	var out [][]int
	for _, group := range strings.Split(raw, ";") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		var row []int
		for _, code := range strings.Split(group, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(code))
			if err != nil {
				return nil, fmt.Errorf("slot code %q is not a number", code)
			}
			row = append(row, n)
		}
		out = append(out, row)
	}
	return out, nil
}
