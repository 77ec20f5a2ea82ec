package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	raidv1alpha1 "github.com/KirkDiggler/ba-raid-api/internal/api/raid/v1alpha1"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/stats"
	raidentity "github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	"github.com/KirkDiggler/ba-raid-api/internal/handlers/raid/v1alpha1"
	"github.com/KirkDiggler/ba-raid-api/internal/orchestrators/raid"
	raidmock "github.com/KirkDiggler/ba-raid-api/internal/orchestrators/raid/mock"
	"github.com/KirkDiggler/ba-raid-api/internal/orchestrators/video"
	videomock "github.com/KirkDiggler/ba-raid-api/internal/orchestrators/video/mock"
	filterstate "github.com/KirkDiggler/ba-raid-api/internal/repositories/filter_state"
	videoanalysis "github.com/KirkDiggler/ba-raid-api/internal/repositories/video_analysis"
	"github.com/KirkDiggler/ba-raid-api/internal/testutils/builders"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRaid  *raidmock.MockService
	mockVideo *videomock.MockService
	handler   *v1alpha1.Handler
	ctx       context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRaid = raidmock.NewMockService(s.ctrl)
	s.mockVideo = videomock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RaidService:  s.mockRaid,
		VideoService: s.mockVideo,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_MissingServices() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RaidService: s.mockRaid})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestListParties_Success() {
	gradeKey := 53
	party := builders.NewPartyBuilder().WithRank(7).WithScore(45_000_000).
		WithSubParty(builders.Member(10005, 5, 3), builders.Assist(10004, 5, 2)).
		Build()

	s.mockRaid.EXPECT().
		ListParties(s.ctx, &raid.ListPartiesInput{
			RaidID: "s72",
			Criteria: &partyfilter.Criteria{
				Include: []raidentity.CharacterFilter{
					raidentity.AnyGrade(20024),
					raidentity.ExactGrade(10005, 5, 3),
				},
				Tiers: []raidentity.Tier{raidentity.TierLunatic, raidentity.TierTorment},
			},
			Page:     2,
			PageSize: 10,
		}).
		Return(&raid.ListPartiesOutput{
			Parties:   []raidentity.Party{party},
			Tiers:     []raidentity.Tier{raidentity.TierLunatic},
			TotalSize: 11,
			Page:      2,
			PageSize:  10,
			MinPartys: 1,
			MaxPartys: 3,
		}, nil)

	resp, err := s.handler.ListParties(s.ctx, &raidv1alpha1.ListPartiesRequest{
		RaidID: "s72",
		Criteria: &raidv1alpha1.Criteria{
			Include: []*raidv1alpha1.CharacterFilter{
				{StudentID: 20024},
				{StudentID: 10005, GradeKey: &gradeKey},
			},
			Tiers: []string{"Lunatic", "t"},
		},
		Page:     2,
		PageSize: 10,
	})

	s.Require().NoError(err)
	s.Equal(11, resp.TotalSize)
	s.Equal(3, resp.MaxPartys)
	s.Require().Len(resp.Parties, 1)
	s.Equal(&raidv1alpha1.Party{
		Rank:       7,
		Score:      45_000_000,
		ScoreLabel: "45,000,000",
		Tier:       "L",
		PartyCount: 1,
		PartyData:  [][]int{{10005530, 10004521, 0, 0, 0, 0}},
	}, resp.Parties[0])
}

func (s *HandlerTestSuite) TestListParties_Errors() {
	testCases := []struct {
		name     string
		req      *raidv1alpha1.ListPartiesRequest
		setup    func()
		wantCode codes.Code
	}{
		{
			name:     "missing raid",
			req:      &raidv1alpha1.ListPartiesRequest{},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "null include entry",
			req: &raidv1alpha1.ListPartiesRequest{
				RaidID:   "s72",
				Criteria: &raidv1alpha1.Criteria{Include: []*raidv1alpha1.CharacterFilter{nil}},
			},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "raid not found",
			req:  &raidv1alpha1.ListPartiesRequest{RaidID: "nope"},
			setup: func() {
				s.mockRaid.EXPECT().
					ListParties(s.ctx, gomock.Any()).
					Return(nil, errors.NotFound("raid nope not found"))
			},
			wantCode: codes.NotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setup != nil {
				tc.setup()
			}

			resp, err := s.handler.ListParties(s.ctx, tc.req)

			s.Require().Error(err)
			s.Nil(resp)
			st, ok := status.FromError(err)
			s.Require().True(ok)
			s.Equal(tc.wantCode, st.Code())
		})
	}
}

func (s *HandlerTestSuite) TestGetFilterOptions() {
	s.mockRaid.EXPECT().
		GetFilterOptions(s.ctx, &raid.GetFilterOptionsInput{RaidID: "s72"}).
		Return(&raid.GetFilterOptionsOutput{
			Members: []options.Option{{
				Value:    10005,
				Label:    "호시노",
				Children: []options.Child{{Value: 53, Label: "호시노 5★ 무기3 (4)", Count: 4}},
			}},
			Assists: []options.Option{},
		}, nil)

	resp, err := s.handler.GetFilterOptions(s.ctx, &raidv1alpha1.GetFilterOptionsRequest{RaidID: "s72"})

	s.Require().NoError(err)
	s.Require().Len(resp.Members, 1)
	s.Equal(10005, resp.Members[0].Value)
	s.Equal(&raidv1alpha1.FilterOptionChild{Value: 53, Label: "호시노 5★ 무기3 (4)", Count: 4}, resp.Members[0].Children[0])
	s.Empty(resp.Assists)
}

func (s *HandlerTestSuite) TestGetStatistics() {
	s.mockRaid.EXPECT().
		GetStatistics(s.ctx, &raid.GetStatisticsInput{RaidID: "s72", Top: 5}).
		Return(&raid.GetStatisticsOutput{
			Summary: stats.Summary{
				TotalParties: 2,
				Tiers:        map[raidentity.Tier]int{raidentity.TierLunatic: 2},
				Roles:        map[raidentity.Role]int{raidentity.RoleStriker: 3, raidentity.RoleSpecial: 1},
				MinScore:     44_100_000,
				MaxScore:     45_000_000,
			},
			TopMembers: []stats.Usage{{
				StudentID: 10005,
				Role:      raidentity.RoleStriker,
				Total:     2,
				ByGrade:   map[int]int{53: 2},
			}},
		}, nil)

	resp, err := s.handler.GetStatistics(s.ctx, &raidv1alpha1.GetStatisticsRequest{RaidID: "s72", Top: 5})

	s.Require().NoError(err)
	s.Equal(2, resp.Statistics.TotalParties)
	s.Equal(map[string]int{"L": 2}, resp.Statistics.Tiers)
	s.Require().Len(resp.TopMembers, 1)
	s.Equal(map[string]int{"striker": 3, "special": 1}, resp.Statistics.Roles)
	s.Equal(map[int]int{53: 2}, resp.TopMembers[0].ByGrade)
	s.Equal("striker", resp.TopMembers[0].Role)
	s.Empty(resp.TopAssists)
}

func (s *HandlerTestSuite) TestSaveFilterState() {
	updated := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	assist := raidentity.ExactGrade(10004, 5, 2)
	criteria := partyfilter.Criteria{
		Exclude:    []int{10010},
		Assist:     &assist,
		PartyCount: &partyfilter.PartyCountRange{Min: 1, Max: 2},
	}

	s.mockRaid.EXPECT().
		SaveFilterState(s.ctx, &raid.SaveFilterStateInput{
			OwnerID:  "user_1",
			RaidID:   "s72",
			Criteria: criteria,
			PageSize: 50,
		}).
		Return(&raid.SaveFilterStateOutput{
			State: &filterstate.State{
				OwnerID:   "user_1",
				RaidID:    "s72",
				Criteria:  criteria,
				PageSize:  50,
				UpdatedAt: updated,
			},
		}, nil)

	gradeKey := 52
	resp, err := s.handler.SaveFilterState(s.ctx, &raidv1alpha1.SaveFilterStateRequest{
		OwnerID: "user_1",
		RaidID:  "s72",
		Criteria: &raidv1alpha1.Criteria{
			Exclude:    []int{10010},
			Assist:     &raidv1alpha1.CharacterFilter{StudentID: 10004, GradeKey: &gradeKey},
			PartyCount: &raidv1alpha1.PartyCountRange{Min: 1, Max: 2},
		},
		PageSize: 50,
	})

	s.Require().NoError(err)
	s.Equal(updated.Unix(), resp.State.UpdatedAt)
	s.Require().NotNil(resp.State.Criteria.Assist)
	s.Equal(52, *resp.State.Criteria.Assist.GradeKey)
}

func (s *HandlerTestSuite) TestSaveFilterState_NoCriteria() {
	s.mockRaid.EXPECT().
		SaveFilterState(s.ctx, &raid.SaveFilterStateInput{OwnerID: "user_1"}).
		Return(&raid.SaveFilterStateOutput{State: &filterstate.State{OwnerID: "user_1"}}, nil)

	_, err := s.handler.SaveFilterState(s.ctx, &raidv1alpha1.SaveFilterStateRequest{OwnerID: "user_1"})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestGetFilterState_NotFound() {
	s.mockRaid.EXPECT().
		GetFilterState(s.ctx, &raid.GetFilterStateInput{OwnerID: "user_1"}).
		Return(nil, errors.NotFound("filter state for user_1 not found"))

	_, err := s.handler.GetFilterState(s.ctx, &raidv1alpha1.GetFilterStateRequest{OwnerID: "user_1"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestSubmitVideoAnalysis() {
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	s.mockVideo.EXPECT().
		SubmitAnalysis(s.ctx, &video.SubmitAnalysisInput{
			RaidID:     "s72",
			Score:      45_000_000,
			YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
			PartyData:  [][]raidentity.SlotCode{{10005530, 0}},
		}).
		Return(&video.SubmitAnalysisOutput{
			Analysis: &videoanalysis.Analysis{
				ID:         "va_1",
				RaidID:     "s72",
				Score:      45_000_000,
				YoutubeURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				PartyData:  [][]raidentity.SlotCode{{10005530, 0}},
				CreatedAt:  created,
			},
		}, nil)

	resp, err := s.handler.SubmitVideoAnalysis(s.ctx, &raidv1alpha1.SubmitVideoAnalysisRequest{
		RaidID:     "s72",
		Score:      45_000_000,
		YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
		PartyData:  [][]int{{10005530, 0}},
	})

	s.Require().NoError(err)
	s.Equal("va_1", resp.Analysis.ID)
	s.Equal([][]int{{10005530, 0}}, resp.Analysis.PartyData)
	s.Equal(created.Unix(), resp.Analysis.CreatedAt)
}

func (s *HandlerTestSuite) TestSubmitVideoAnalysis_ValidationDetails() {
	s.mockVideo.EXPECT().
		SubmitAnalysis(s.ctx, gomock.Any()).
		Return(nil, errors.NewValidationBuilder().Field("score", "must be positive").Build())

	_, err := s.handler.SubmitVideoAnalysis(s.ctx, &raidv1alpha1.SubmitVideoAnalysisRequest{RaidID: "s72"})

	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.True(errors.IsInvalidArgument(converted))
	s.Contains(errors.GetMeta(converted), errors.ValidationMetaKey)
}

func (s *HandlerTestSuite) TestListAndDeleteVideoAnalyses() {
	s.mockVideo.EXPECT().
		ListAnalyses(s.ctx, &video.ListAnalysesInput{RaidID: "s72"}).
		Return(&video.ListAnalysesOutput{
			Analyses: []*videoanalysis.Analysis{{ID: "va_2"}, {ID: "va_1"}},
		}, nil)
	s.mockVideo.EXPECT().
		DeleteAnalysis(s.ctx, &video.DeleteAnalysisInput{ID: "va_1"}).
		Return(&video.DeleteAnalysisOutput{Analysis: &videoanalysis.Analysis{ID: "va_1"}}, nil)

	list, err := s.handler.ListVideoAnalyses(s.ctx, &raidv1alpha1.ListVideoAnalysesRequest{RaidID: "s72"})
	s.Require().NoError(err)
	s.Require().Len(list.Analyses, 2)
	s.Equal("va_2", list.Analyses[0].ID)

	deleted, err := s.handler.DeleteVideoAnalysis(s.ctx, &raidv1alpha1.DeleteVideoAnalysisRequest{ID: "va_1"})
	s.Require().NoError(err)
	s.Equal("va_1", deleted.Analysis.ID)

	_, err = s.handler.DeleteVideoAnalysis(s.ctx, &raidv1alpha1.DeleteVideoAnalysisRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

// TestOverTheWire drives the handler through a real grpc server and client
// using the JSON codec
func (s *HandlerTestSuite) TestOverTheWire() {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	raidv1alpha1.RegisterRaidServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	client := raidv1alpha1.NewRaidServiceClient(conn)

	s.mockRaid.EXPECT().
		GetFilterState(gomock.Any(), &raid.GetFilterStateInput{OwnerID: "user_1"}).
		Return(&raid.GetFilterStateOutput{
			State: &filterstate.State{
				OwnerID:  "user_1",
				Criteria: partyfilter.Criteria{Exclude: []int{10010}, HardExclude: true},
			},
		}, nil)

	resp, err := client.GetFilterState(s.ctx, &raidv1alpha1.GetFilterStateRequest{OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Equal("user_1", resp.State.OwnerID)
	s.Equal([]int{10010}, resp.State.Criteria.Exclude)
	s.True(resp.State.Criteria.HardExclude)

	_, err = client.ListParties(s.ctx, &raidv1alpha1.ListPartiesRequest{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(errors.FromGRPCError(err)))
}
