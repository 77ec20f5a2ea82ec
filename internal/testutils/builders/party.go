// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
)

// Slot widths of a standard sub-party
const (
	StrikerSlots = 4
	SpecialSlots = 2
)

// PartyBuilder provides a fluent interface for building test Party instances
type PartyBuilder struct {
	party raid.Party
}

// NewPartyBuilder creates a builder for a rank 1 party with no sub-parties
func NewPartyBuilder() *PartyBuilder {
	return &PartyBuilder{
		party: raid.Party{
			Rank:  1,
			Score: 30_000_000,
		},
	}
}

// WithRank sets the rank
func (b *PartyBuilder) WithRank(rank int) *PartyBuilder {
	b.party.Rank = rank
	return b
}

// WithScore sets the clear score
func (b *PartyBuilder) WithScore(score int64) *PartyBuilder {
	b.party.Score = score
	return b
}

// WithSubParty appends a sub-party. Missing slots are padded with empties
// up to the standard six positions.
func (b *PartyBuilder) WithSubParty(slots ...raid.Slot) *PartyBuilder {
	width := StrikerSlots + SpecialSlots
	if len(slots) > width {
		width = len(slots)
	}
	padded := make([]raid.Slot, width)
	copy(padded, slots)

	b.party.SubParties = append(b.party.SubParties, raid.SubParty{Slots: padded})
	return b
}

// WithEmptySubParties appends n sub-parties with no students
func (b *PartyBuilder) WithEmptySubParties(n int) *PartyBuilder {
	for i := 0; i < n; i++ {
		b.WithSubParty()
	}
	return b
}

// Build returns the party
func (b *PartyBuilder) Build() raid.Party {
	return b.party
}

// Member is an owned roster slot
func Member(studentID, star, weapon int) raid.Slot {
	return raid.Slot{StudentID: studentID, Star: star, Weapon: weapon}
}

// Assist is a borrowed roster slot
func Assist(studentID, star, weapon int) raid.Slot {
	return raid.Slot{StudentID: studentID, Star: star, Weapon: weapon, Assist: true}
}
