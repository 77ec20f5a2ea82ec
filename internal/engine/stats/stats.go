// Package stats aggregates usage numbers over a list of parties
package stats

import (
	"sort"
	"strconv"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
)

// Usage is a student's usage broken down by grade key
type Usage struct {
	StudentID int         `json:"student_id"`
	Role      raid.Role   `json:"role"`
	Total     int         `json:"total"`
	ByGrade   map[int]int `json:"by_grade"`
}

// Summary is the aggregate view of a party list
type Summary struct {
	TotalParties int               `json:"total_parties"`
	Members      map[int]*Usage    `json:"members"`
	Assists      map[int]*Usage    `json:"assists"`
	PartyCounts  map[int]int       `json:"party_counts"`
	Tiers        map[raid.Tier]int `json:"tiers"`
	// Roles counts member slots by striker/special
	Roles        map[raid.Role]int `json:"roles"`
	MinScore     int64             `json:"min_score"`
	MaxScore     int64             `json:"max_score"`
}

// Summarize counts member and assist usage per student and grade, along with
// the sub-party count and tier distributions. A student used twice in one
// party counts twice.
func Summarize(parties []raid.Party, t partyfilter.Thresholds) Summary {
	sum := Summary{
		TotalParties: len(parties),
		Members:      make(map[int]*Usage),
		Assists:      make(map[int]*Usage),
		PartyCounts:  make(map[int]int),
		Tiers:        make(map[raid.Tier]int),
		Roles:        make(map[raid.Role]int),
	}

	for i, p := range parties {
		if i == 0 || p.Score < sum.MinScore {
			sum.MinScore = p.Score
		}
		if i == 0 || p.Score > sum.MaxScore {
			sum.MaxScore = p.Score
		}

		sum.PartyCounts[p.PartyCount()]++
		sum.Tiers[t.TierOf(p.Score)]++

		for _, s := range p.Filled() {
			if s.Assist {
				record(sum.Assists, s)
				continue
			}
			sum.Roles[s.Role()]++
			record(sum.Members, s)
		}
	}

	return sum
}

func record(into map[int]*Usage, s raid.Slot) {
	u, ok := into[s.StudentID]
	if !ok {
		u = &Usage{StudentID: s.StudentID, Role: raid.RoleOf(s.StudentID), ByGrade: make(map[int]int)}
		into[s.StudentID] = u
	}
	u.Total++
	u.ByGrade[s.Grade().Key()]++
}

// TopMembers returns member usage sorted by total descending, ties by
// student ID. n <= 0 returns everything.
func (s Summary) TopMembers(n int) []Usage {
	return top(s.Members, n)
}

// TopAssists is TopMembers for assist slots
func (s Summary) TopAssists(n int) []Usage {
	return top(s.Assists, n)
}

func top(m map[int]*Usage, n int) []Usage {
	out := make([]Usage, 0, len(m))
	for _, u := range m {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].StudentID < out[j].StudentID
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// FilterData returns member and assist usage in the string-keyed shape the
// option builder consumes
func (s Summary) FilterData() (members, assists options.UsageData) {
	return toUsageData(s.Members), toUsageData(s.Assists)
}

func toUsageData(m map[int]*Usage) options.UsageData {
	out := make(options.UsageData, len(m))
	for sid, u := range m {
		grades := make(map[string]int, len(u.ByGrade))
		for key, count := range u.ByGrade {
			grades[strconv.Itoa(key)] = count
		}
		out[strconv.Itoa(sid)] = grades
	}
	return out
}
