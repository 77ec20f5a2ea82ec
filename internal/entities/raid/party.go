package raid

// SubParty is one roster group: commonly four striker slots followed by two
// special slots. Empty positions are zero Slots.
type SubParty struct {
	Slots []Slot `json:"slots"`
}

// Party is one raid clear record
type Party struct {
	Rank       int        `json:"rank"`
	Score      int64      `json:"score"`
	SubParties []SubParty `json:"sub_parties"`
}

// NewParty decodes raw slot codes into a Party. This is the ingestion
// boundary: nothing downstream works on packed integers.
func NewParty(rank int, score int64, partyData [][]SlotCode) Party {
	subParties := make([]SubParty, 0, len(partyData))
	for _, codes := range partyData {
		slots := make([]Slot, len(codes))
		for i, code := range codes {
			if slot, ok := DecodeSlot(code); ok {
				slots[i] = slot
			}
		}
		subParties = append(subParties, SubParty{Slots: slots})
	}

	return Party{
		Rank:       rank,
		Score:      score,
		SubParties: subParties,
	}
}

// PartyCount returns the number of sub-parties
func (p Party) PartyCount() int {
	return len(p.SubParties)
}

// Members returns every filled, non-assist slot in roster order
func (p Party) Members() []Slot {
	var members []Slot
	for _, sp := range p.SubParties {
		for _, s := range sp.Slots {
			if !s.IsEmpty() && !s.Assist {
				members = append(members, s)
			}
		}
	}
	return members
}

// Assists returns every filled assist slot in roster order
func (p Party) Assists() []Slot {
	var assists []Slot
	for _, sp := range p.SubParties {
		for _, s := range sp.Slots {
			if !s.IsEmpty() && s.Assist {
				assists = append(assists, s)
			}
		}
	}
	return assists
}

// Filled returns every filled slot, assist or not
func (p Party) Filled() []Slot {
	var filled []Slot
	for _, sp := range p.SubParties {
		for _, s := range sp.Slots {
			if !s.IsEmpty() {
				filled = append(filled, s)
			}
		}
	}
	return filled
}

// Codes re-packs the party into its wire form
func (p Party) Codes() [][]SlotCode {
	out := make([][]SlotCode, 0, len(p.SubParties))
	for _, sp := range p.SubParties {
		codes := make([]SlotCode, len(sp.Slots))
		for i, s := range sp.Slots {
			codes[i] = s.Code()
		}
		out = append(out, codes)
	}
	return out
}
