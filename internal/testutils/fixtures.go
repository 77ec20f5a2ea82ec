package testutils

import (
	"github.com/KirkDiggler/ba-raid-api/internal/clients/external"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/testutils/builders"
)

// Student IDs used across fixtures
const (
	StudentHoshino = 10005
	StudentShiroko = 10010
	StudentHina    = 10004
	StudentHimari  = 20024
)

// SampleParties returns three parties, one per score band:
//
//	rank 1  45,000,000  hoshino 5★ w3, himari 5★, assist hina 5★ w2
//	rank 2  40,000,000  shiroko 5★ w1
//	rank 3  32,000,000  hoshino 4★ | shiroko 5★
//
// Under default thresholds ranks 1 is Lunatic and ranks 2 and 3 are Torment.
func SampleParties() []raid.Party {
	return []raid.Party{
		builders.NewPartyBuilder().WithRank(1).WithScore(45_000_000).
			WithSubParty(
				builders.Member(StudentHoshino, 5, 3),
				builders.Member(StudentHimari, 5, 0),
				builders.Assist(StudentHina, 5, 2),
			).
			Build(),
		builders.NewPartyBuilder().WithRank(2).WithScore(40_000_000).
			WithSubParty(builders.Member(StudentShiroko, 5, 1)).
			Build(),
		builders.NewPartyBuilder().WithRank(3).WithScore(32_000_000).
			WithSubParty(builders.Member(StudentHoshino, 4, 0)).
			WithSubParty(builders.Member(StudentShiroko, 5, 0)).
			Build(),
	}
}

// SampleFeed wraps SampleParties as a decoded feed for raidID
func SampleFeed(raidID string) *external.PartyFeed {
	return &external.PartyFeed{
		RaidID:    raidID,
		Parties:   SampleParties(),
		MinPartys: 1,
		MaxPartys: 2,
	}
}

// SampleNames returns display names for the fixture students
func SampleNames() options.Names {
	return options.Names{
		"10005": "호시노",
		"10010": "시로코",
		"10004": "히나",
		"20024": "히마리",
	}
}
