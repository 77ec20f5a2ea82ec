// Package partyfilter selects raid parties that satisfy a set of filter
// criteria. Every function here is pure: inputs are never mutated and no
// state is kept between calls.
package partyfilter

import (
	"fmt"

	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
)

// PartyCountRange bounds the number of sub-parties, inclusive on both ends
type PartyCountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether n lies within the range
func (r PartyCountRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Criteria is the full set of conditions a party must meet. Every clause is
// AND-ed; unset clauses accept everything.
type Criteria struct {
	// Include requires, for each distinct student, at least one of that
	// student's filters to match a slot in scope.
	Include []raid.CharacterFilter `json:"include,omitempty"`

	// Exclude rejects parties with any of these students in scope
	Exclude []int `json:"exclude,omitempty"`

	// HardExclude widens the include/exclude scope to assist slots
	HardExclude bool `json:"hard_exclude,omitempty"`

	// Assist requires the party's assist to match. Nil means no filter.
	Assist *raid.CharacterFilter `json:"assist,omitempty"`

	// PartyCount bounds the sub-party count. Nil means no bound.
	PartyCount *PartyCountRange `json:"party_count,omitempty"`

	// AllowDuplicate permits an assist whose student is also owned in the
	// roster. The zero value rejects such parties.
	AllowDuplicate bool `json:"allow_duplicate,omitempty"`

	// Tiers limits the score-derived difficulty. Empty means any tier.
	Tiers []raid.Tier `json:"tiers,omitempty"`

	// YoutubeOnly keeps only parties whose score is in VideoScores
	YoutubeOnly bool    `json:"youtube_only,omitempty"`
	VideoScores []int64 `json:"video_scores,omitempty"`
}

// Validate rejects criteria a client should not be able to submit. Filter
// itself accepts anything; this is for request boundaries.
func (c Criteria) Validate() error {
	vb := errors.NewValidationBuilder()

	for i, f := range c.Include {
		if f.StudentID() <= 0 {
			vb.Field(fmt.Sprintf("include[%d]", i), "student ID must be positive")
		}
	}
	for i, id := range c.Exclude {
		if id <= 0 {
			vb.Field(fmt.Sprintf("exclude[%d]", i), "student ID must be positive")
		}
	}
	if c.Assist != nil && c.Assist.StudentID() <= 0 {
		vb.Field("assist", "student ID must be positive")
	}
	if r := c.PartyCount; r != nil {
		if r.Min < 0 {
			vb.Field("party_count.min", "must not be negative")
		}
		if r.Max < r.Min {
			vb.Field("party_count.max", "must not be less than min")
		}
	}
	for i, t := range c.Tiers {
		if !t.IsValid() {
			vb.Fieldf(fmt.Sprintf("tiers[%d]", i), "unknown tier %q", t)
		}
	}

	return vb.Build()
}

// compiled is Criteria reshaped into lookup sets, built once per Filter call
type compiled struct {
	includeGroups [][]raid.CharacterFilter
	exclude       map[int]struct{}
	hardExclude   bool
	assist        *raid.CharacterFilter
	partyCount    *PartyCountRange
	allowDup      bool
	tiers         map[raid.Tier]struct{}
	youtubeOnly   bool
	videoScores   map[int64]struct{}
	thresholds    Thresholds
}

func compile(c Criteria, t Thresholds) *compiled {
	cc := &compiled{
		includeGroups: groupByStudent(c.Include),
		hardExclude:   c.HardExclude,
		assist:        c.Assist,
		partyCount:    c.PartyCount,
		allowDup:      c.AllowDuplicate,
		youtubeOnly:   c.YoutubeOnly,
		thresholds:    t,
	}

	if len(c.Exclude) > 0 {
		cc.exclude = make(map[int]struct{}, len(c.Exclude))
		for _, id := range c.Exclude {
			cc.exclude[id] = struct{}{}
		}
	}

	if len(c.Tiers) > 0 {
		cc.tiers = make(map[raid.Tier]struct{}, len(c.Tiers))
		for _, tier := range c.Tiers {
			cc.tiers[tier] = struct{}{}
		}
	}

	if c.YoutubeOnly {
		cc.videoScores = make(map[int64]struct{}, len(c.VideoScores))
		for _, score := range c.VideoScores {
			cc.videoScores[score] = struct{}{}
		}
	}

	return cc
}

// groupByStudent buckets include filters by student, keeping first-seen
// order of students and of filters within a student.
func groupByStudent(filters []raid.CharacterFilter) [][]raid.CharacterFilter {
	if len(filters) == 0 {
		return nil
	}

	index := make(map[int]int, len(filters))
	var groups [][]raid.CharacterFilter
	for _, f := range filters {
		i, ok := index[f.StudentID()]
		if !ok {
			i = len(groups)
			index[f.StudentID()] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], f)
	}
	return groups
}
