package raid

import (
	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/stats"
	raidentity "github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	filterstate "github.com/KirkDiggler/ba-raid-api/internal/repositories/filter_state"
)

// ListPartiesInput defines the request for listing filtered parties
type ListPartiesInput struct {
	RaidID string
	// Criteria to apply. When nil and OwnerID is set, the owner's saved
	// criteria are used; otherwise every party matches.
	Criteria *partyfilter.Criteria
	OwnerID  string
	// Page is 1-based. Zero means the first page.
	Page     int
	PageSize int
}

// ListPartiesOutput defines the response for listing filtered parties
type ListPartiesOutput struct {
	Parties []raidentity.Party
	// Tiers holds the difficulty of each entry in Parties
	Tiers []raidentity.Tier
	// TotalSize is the match count before pagination
	TotalSize int
	Page      int
	PageSize  int
	// Criteria is what was actually applied, including loaded video scores
	Criteria  partyfilter.Criteria
	MinPartys int
	MaxPartys int
}

// GetFilterOptionsInput defines the request for building filter pickers
type GetFilterOptionsInput struct {
	RaidID string
	// Criteria narrows the parties the options are counted over. Nil uses
	// the feed's precomputed counts.
	Criteria *partyfilter.Criteria
}

// GetFilterOptionsOutput defines the response for building filter pickers
type GetFilterOptionsOutput struct {
	Members []options.Option
	Assists []options.Option
}

// GetStatisticsInput defines the request for usage statistics
type GetStatisticsInput struct {
	RaidID   string
	Criteria *partyfilter.Criteria
	// Top limits the ranked member and assist lists. Zero returns all.
	Top int
}

// GetStatisticsOutput defines the response for usage statistics
type GetStatisticsOutput struct {
	Summary    stats.Summary
	TopMembers []stats.Usage
	TopAssists []stats.Usage
}

// GetFilterStateInput defines the request for loading saved criteria
type GetFilterStateInput struct {
	OwnerID string
}

// GetFilterStateOutput defines the response for loading saved criteria
type GetFilterStateOutput struct {
	State *filterstate.State
}

// SaveFilterStateInput defines the request for saving criteria
type SaveFilterStateInput struct {
	OwnerID  string
	RaidID   string
	Criteria partyfilter.Criteria
	PageSize int
}

// SaveFilterStateOutput defines the response for saving criteria
type SaveFilterStateOutput struct {
	State *filterstate.State
}
