package v1alpha1

import (
	"strings"

	raidv1alpha1 "github.com/KirkDiggler/ba-raid-api/internal/api/raid/v1alpha1"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/stats"
	raidentity "github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	filterstate "github.com/KirkDiggler/ba-raid-api/internal/repositories/filter_state"
	videoanalysis "github.com/KirkDiggler/ba-raid-api/internal/repositories/video_analysis"
)

// Helper functions for converting between wire messages and domain types

func convertFilterFromProto(f *raidv1alpha1.CharacterFilter) raidentity.CharacterFilter {
	if f.GradeKey == nil {
		return raidentity.AnyGrade(f.StudentID)
	}
	return raidentity.ExactGradeKey(f.StudentID, *f.GradeKey)
}

func convertFilterToProto(f raidentity.CharacterFilter) *raidv1alpha1.CharacterFilter {
	out := &raidv1alpha1.CharacterFilter{StudentID: f.StudentID()}
	if g, ok := f.Grade(); ok {
		key := g.Key()
		out.GradeKey = &key
	}
	return out
}

// convertTierFromProto accepts the short code or the display label
func convertTierFromProto(s string) raidentity.Tier {
	for _, t := range raidentity.AllTiers {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, t.Label()) {
			return t
		}
	}
	return raidentity.Tier(s)
}

func convertCriteriaFromProto(c *raidv1alpha1.Criteria) (*partyfilter.Criteria, error) {
	if c == nil {
		return nil, nil
	}

	out := &partyfilter.Criteria{
		Exclude:        c.Exclude,
		HardExclude:    c.HardExclude,
		AllowDuplicate: c.AllowDuplicate,
		YoutubeOnly:    c.YoutubeOnly,
	}
	for i, f := range c.Include {
		if f == nil {
			return nil, errors.InvalidArgumentf("include[%d] is null", i)
		}
		out.Include = append(out.Include, convertFilterFromProto(f))
	}
	if c.Assist != nil {
		assist := convertFilterFromProto(c.Assist)
		out.Assist = &assist
	}
	if c.PartyCount != nil {
		out.PartyCount = &partyfilter.PartyCountRange{Min: c.PartyCount.Min, Max: c.PartyCount.Max}
	}
	for _, t := range c.Tiers {
		out.Tiers = append(out.Tiers, convertTierFromProto(t))
	}
	return out, nil
}

func convertCriteriaToProto(c partyfilter.Criteria) *raidv1alpha1.Criteria {
	out := &raidv1alpha1.Criteria{
		Exclude:        c.Exclude,
		HardExclude:    c.HardExclude,
		AllowDuplicate: c.AllowDuplicate,
		YoutubeOnly:    c.YoutubeOnly,
	}
	for _, f := range c.Include {
		out.Include = append(out.Include, convertFilterToProto(f))
	}
	if c.Assist != nil {
		out.Assist = convertFilterToProto(*c.Assist)
	}
	if c.PartyCount != nil {
		out.PartyCount = &raidv1alpha1.PartyCountRange{Min: c.PartyCount.Min, Max: c.PartyCount.Max}
	}
	for _, t := range c.Tiers {
		out.Tiers = append(out.Tiers, string(t))
	}
	return out
}

func convertCodesToProto(codes [][]raidentity.SlotCode) [][]int {
	out := make([][]int, len(codes))
	for i, row := range codes {
		out[i] = make([]int, len(row))
		for j, code := range row {
			out[i][j] = int(code)
		}
	}
	return out
}

func convertCodesFromProto(rows [][]int) [][]raidentity.SlotCode {
	out := make([][]raidentity.SlotCode, len(rows))
	for i, row := range rows {
		out[i] = make([]raidentity.SlotCode, len(row))
		for j, code := range row {
			out[i][j] = raidentity.SlotCode(code)
		}
	}
	return out
}

func convertPartyToProto(p raidentity.Party, tier raidentity.Tier) *raidv1alpha1.Party {
	return &raidv1alpha1.Party{
		Rank:       p.Rank,
		Score:      p.Score,
		ScoreLabel: raidentity.FormatScore(p.Score),
		Tier:       string(tier),
		PartyCount: p.PartyCount(),
		PartyData:  convertCodesToProto(p.Codes()),
	}
}

func convertOptionsToProto(opts []options.Option) []*raidv1alpha1.FilterOption {
	out := make([]*raidv1alpha1.FilterOption, 0, len(opts))
	for _, o := range opts {
		children := make([]*raidv1alpha1.FilterOptionChild, 0, len(o.Children))
		for _, c := range o.Children {
			children = append(children, &raidv1alpha1.FilterOptionChild{
				Value: c.Value,
				Label: c.Label,
				Count: c.Count,
			})
		}
		out = append(out, &raidv1alpha1.FilterOption{
			Value:    o.Value,
			Label:    o.Label,
			Children: children,
		})
	}
	return out
}

func convertUsageToProto(usage []stats.Usage) []*raidv1alpha1.StudentUsage {
	out := make([]*raidv1alpha1.StudentUsage, 0, len(usage))
	for _, u := range usage {
		out = append(out, &raidv1alpha1.StudentUsage{
			StudentID: u.StudentID,
			Role:      string(u.Role),
			Total:     u.Total,
			ByGrade:   u.ByGrade,
		})
	}
	return out
}

func convertSummaryToProto(s stats.Summary) *raidv1alpha1.Statistics {
	tiers := make(map[string]int, len(s.Tiers))
	for t, n := range s.Tiers {
		tiers[string(t)] = n
	}
	roles := make(map[string]int, len(s.Roles))
	for r, n := range s.Roles {
		roles[string(r)] = n
	}
	return &raidv1alpha1.Statistics{
		TotalParties: s.TotalParties,
		Tiers:        tiers,
		Roles:        roles,
		PartyCounts:  s.PartyCounts,
		MinScore:     s.MinScore,
		MaxScore:     s.MaxScore,
	}
}

func convertStateToProto(st *filterstate.State) *raidv1alpha1.FilterState {
	if st == nil {
		return nil
	}
	return &raidv1alpha1.FilterState{
		OwnerID:   st.OwnerID,
		RaidID:    st.RaidID,
		Criteria:  convertCriteriaToProto(st.Criteria),
		PageSize:  st.PageSize,
		UpdatedAt: st.UpdatedAt.Unix(),
	}
}

func convertAnalysisToProto(a *videoanalysis.Analysis) *raidv1alpha1.VideoAnalysis {
	if a == nil {
		return nil
	}
	return &raidv1alpha1.VideoAnalysis{
		ID:         a.ID,
		RaidID:     a.RaidID,
		Score:      a.Score,
		YoutubeURL: a.YoutubeURL,
		Title:      a.Title,
		PartyData:  convertCodesToProto(a.PartyData),
		CreatedAt:  a.CreatedAt.Unix(),
	}
}
