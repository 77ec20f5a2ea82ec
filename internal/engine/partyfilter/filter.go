package partyfilter

import (
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
)

// Filter returns the parties that satisfy c, in their original order. The
// input slice is not modified; the result shares no backing array with it.
func Filter(parties []raid.Party, c Criteria, t Thresholds) []raid.Party {
	cc := compile(c, t)

	out := make([]raid.Party, 0, len(parties))
	for _, p := range parties {
		if cc.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether a single party satisfies c
func Match(p raid.Party, c Criteria, t Thresholds) bool {
	return compile(c, t).match(p)
}

// IsInFilter applies a character filter to a raw slot code. Empty codes
// never match.
func IsInFilter(f raid.CharacterFilter, code raid.SlotCode) bool {
	slot, ok := raid.DecodeSlot(code)
	if !ok {
		return false
	}
	return f.Matches(slot)
}

func (cc *compiled) match(p raid.Party) bool {
	return cc.matchTier(p) &&
		cc.matchPartyCount(p) &&
		cc.matchVideo(p) &&
		cc.matchInclude(p) &&
		cc.matchExclude(p) &&
		cc.matchAssist(p) &&
		cc.matchDuplicate(p)
}

func (cc *compiled) matchTier(p raid.Party) bool {
	if cc.tiers == nil {
		return true
	}
	_, ok := cc.tiers[cc.thresholds.TierOf(p.Score)]
	return ok
}

func (cc *compiled) matchPartyCount(p raid.Party) bool {
	if cc.partyCount == nil {
		return true
	}
	return cc.partyCount.Contains(p.PartyCount())
}

func (cc *compiled) matchVideo(p raid.Party) bool {
	if !cc.youtubeOnly {
		return true
	}
	_, ok := cc.videoScores[p.Score]
	return ok
}

// inScope reports whether a filled slot is covered by include/exclude
func (cc *compiled) inScope(s raid.Slot) bool {
	return !s.Assist || cc.hardExclude
}

func (cc *compiled) matchInclude(p raid.Party) bool {
	for _, group := range cc.includeGroups {
		if !cc.anyInScope(p, group) {
			return false
		}
	}
	return true
}

// anyInScope reports whether any filter in the group matches any in-scope slot
func (cc *compiled) anyInScope(p raid.Party, group []raid.CharacterFilter) bool {
	for _, sp := range p.SubParties {
		for _, s := range sp.Slots {
			if s.IsEmpty() || !cc.inScope(s) {
				continue
			}
			for _, f := range group {
				if f.Matches(s) {
					return true
				}
			}
		}
	}
	return false
}

func (cc *compiled) matchExclude(p raid.Party) bool {
	if cc.exclude == nil {
		return true
	}
	for _, sp := range p.SubParties {
		for _, s := range sp.Slots {
			if s.IsEmpty() || !cc.inScope(s) {
				continue
			}
			if _, excluded := cc.exclude[s.StudentID]; excluded {
				return false
			}
		}
	}
	return true
}

func (cc *compiled) matchAssist(p raid.Party) bool {
	if cc.assist == nil {
		return true
	}
	for _, s := range p.Assists() {
		if cc.assist.Matches(s) {
			return true
		}
	}
	return false
}

// matchDuplicate rejects a borrowed assist whose student is already owned
func (cc *compiled) matchDuplicate(p raid.Party) bool {
	if cc.allowDup {
		return true
	}

	assists := p.Assists()
	if len(assists) == 0 {
		return true
	}

	owned := make(map[int]struct{})
	for _, s := range p.Members() {
		owned[s.StudentID] = struct{}{}
	}
	for _, s := range assists {
		if _, ok := owned[s.StudentID]; ok {
			return false
		}
	}
	return true
}
