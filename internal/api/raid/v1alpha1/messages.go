// Package raidv1alpha1 defines the wire messages and service descriptor of
// baraid.api.v1alpha1.RaidService. Messages travel as JSON through the
// jsoncodec content-subtype.
package raidv1alpha1

// CharacterFilter selects a student. A nil GradeKey matches any grade.
type CharacterFilter struct {
	StudentID int  `json:"student_id"`
	GradeKey  *int `json:"grade_key,omitempty"`
}

// PartyCountRange bounds the sub-party count, inclusive
type PartyCountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Criteria mirrors the filter criteria a client can set
type Criteria struct {
	Include        []*CharacterFilter `json:"include,omitempty"`
	Exclude        []int              `json:"exclude,omitempty"`
	HardExclude    bool               `json:"hard_exclude,omitempty"`
	Assist         *CharacterFilter   `json:"assist,omitempty"`
	PartyCount     *PartyCountRange   `json:"party_count,omitempty"`
	AllowDuplicate bool               `json:"allow_duplicate,omitempty"`
	Tiers          []string           `json:"tiers,omitempty"`
	YoutubeOnly    bool               `json:"youtube_only,omitempty"`
}

// Party is one clear record with its slots in packed form
type Party struct {
	Rank       int     `json:"rank"`
	Score      int64   `json:"score"`
	ScoreLabel string  `json:"score_label"`
	Tier       string  `json:"tier"`
	PartyCount int     `json:"party_count"`
	PartyData  [][]int `json:"party_data"`
}

// FilterOption is a student entry in a picker
type FilterOption struct {
	Value    int                  `json:"value"`
	Label    string               `json:"label"`
	Children []*FilterOptionChild `json:"children"`
}

// FilterOptionChild is a grade entry under a student
type FilterOptionChild struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// StudentUsage counts how often a student appears, per grade key
type StudentUsage struct {
	StudentID int         `json:"student_id"`
	Role      string      `json:"role"`
	Total     int         `json:"total"`
	ByGrade   map[int]int `json:"by_grade,omitempty"`
}

// Statistics summarizes a party list
type Statistics struct {
	TotalParties int            `json:"total_parties"`
	Tiers        map[string]int `json:"tiers,omitempty"`
	Roles        map[string]int `json:"roles,omitempty"`
	PartyCounts  map[int]int    `json:"party_counts,omitempty"`
	MinScore     int64          `json:"min_score"`
	MaxScore     int64          `json:"max_score"`
}

// FilterState is an owner's saved criteria
type FilterState struct {
	OwnerID   string    `json:"owner_id"`
	RaidID    string    `json:"raid_id,omitempty"`
	Criteria  *Criteria `json:"criteria"`
	PageSize  int       `json:"page_size,omitempty"`
	UpdatedAt int64     `json:"updated_at"`
}

// VideoAnalysis is a lineup linked to a video
type VideoAnalysis struct {
	ID         string  `json:"id"`
	RaidID     string  `json:"raid_id"`
	Score      int64   `json:"score"`
	YoutubeURL string  `json:"youtube_url"`
	Title      string  `json:"title,omitempty"`
	PartyData  [][]int `json:"party_data"`
	CreatedAt  int64   `json:"created_at"`
}

// ListPartiesRequest asks for one page of matching parties. With no
// criteria the owner's saved criteria are used.
type ListPartiesRequest struct {
	RaidID   string    `json:"raid_id"`
	Criteria *Criteria `json:"criteria,omitempty"`
	OwnerID  string    `json:"owner_id,omitempty"`
	Page     int       `json:"page,omitempty"`
	PageSize int       `json:"page_size,omitempty"`
}

// ListPartiesResponse is one page of matching parties
type ListPartiesResponse struct {
	Parties   []*Party  `json:"parties"`
	TotalSize int       `json:"total_size"`
	Page      int       `json:"page"`
	PageSize  int       `json:"page_size"`
	MinPartys int       `json:"min_partys"`
	MaxPartys int       `json:"max_partys"`
	Criteria  *Criteria `json:"criteria"`
}

// GetFilterOptionsRequest asks for the member and assist pickers
type GetFilterOptionsRequest struct {
	RaidID   string    `json:"raid_id"`
	Criteria *Criteria `json:"criteria,omitempty"`
}

// GetFilterOptionsResponse holds both pickers
type GetFilterOptionsResponse struct {
	Members []*FilterOption `json:"members"`
	Assists []*FilterOption `json:"assists"`
}

// GetStatisticsRequest asks for usage numbers over matching parties
type GetStatisticsRequest struct {
	RaidID   string    `json:"raid_id"`
	Criteria *Criteria `json:"criteria,omitempty"`
	Top      int       `json:"top,omitempty"`
}

// GetStatisticsResponse holds the summary and the most used students
type GetStatisticsResponse struct {
	Statistics *Statistics     `json:"statistics"`
	TopMembers []*StudentUsage `json:"top_members"`
	TopAssists []*StudentUsage `json:"top_assists"`
}

// GetFilterStateRequest loads an owner's saved criteria
type GetFilterStateRequest struct {
	OwnerID string `json:"owner_id"`
}

// GetFilterStateResponse holds the saved state
type GetFilterStateResponse struct {
	State *FilterState `json:"state"`
}

// SaveFilterStateRequest stores an owner's criteria
type SaveFilterStateRequest struct {
	OwnerID  string    `json:"owner_id"`
	RaidID   string    `json:"raid_id,omitempty"`
	Criteria *Criteria `json:"criteria,omitempty"`
	PageSize int       `json:"page_size,omitempty"`
}

// SaveFilterStateResponse holds the state as stored
type SaveFilterStateResponse struct {
	State *FilterState `json:"state"`
}

// SubmitVideoAnalysisRequest links a video to a lineup
type SubmitVideoAnalysisRequest struct {
	RaidID     string  `json:"raid_id"`
	Score      int64   `json:"score"`
	YoutubeURL string  `json:"youtube_url"`
	Title      string  `json:"title,omitempty"`
	PartyData  [][]int `json:"party_data"`
}

// SubmitVideoAnalysisResponse holds the stored analysis
type SubmitVideoAnalysisResponse struct {
	Analysis *VideoAnalysis `json:"analysis"`
}

// ListVideoAnalysesRequest lists a raid's analyses
type ListVideoAnalysesRequest struct {
	RaidID string `json:"raid_id"`
}

// ListVideoAnalysesResponse holds analyses, highest score first
type ListVideoAnalysesResponse struct {
	Analyses []*VideoAnalysis `json:"analyses"`
}

// DeleteVideoAnalysisRequest removes an analysis
type DeleteVideoAnalysisRequest struct {
	ID string `json:"id"`
}

// DeleteVideoAnalysisResponse holds the removed analysis
type DeleteVideoAnalysisResponse struct {
	Analysis *VideoAnalysis `json:"analysis"`
}
