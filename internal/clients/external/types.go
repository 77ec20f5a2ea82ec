package external

import (
	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
)

// PartyFeed is the decoded contents of a raid's parties.json
type PartyFeed struct {
	RaidID  string
	Parties []raid.Party
	// MinPartys and MaxPartys bound the sub-party count seen in the feed,
	// used to seed the party count slider
	MinPartys int
	MaxPartys int
}

// FilterFeed is the decoded contents of a raid's filters.json
type FilterFeed struct {
	RaidID  string
	Members options.UsageData
	Assists options.UsageData
}
