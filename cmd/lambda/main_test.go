//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/stats"
	raidentity "github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	"github.com/KirkDiggler/ba-raid-api/internal/handlers/raid/v1alpha1"
	"github.com/KirkDiggler/ba-raid-api/internal/orchestrators/raid"
	raidmock "github.com/KirkDiggler/ba-raid-api/internal/orchestrators/raid/mock"
	"github.com/KirkDiggler/ba-raid-api/internal/orchestrators/video"
	videomock "github.com/KirkDiggler/ba-raid-api/internal/orchestrators/video/mock"
	videoanalysis "github.com/KirkDiggler/ba-raid-api/internal/repositories/video_analysis"
)

type LambdaTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRaid  *raidmock.MockService
	mockVideo *videomock.MockService
	app       *app
	ctx       context.Context
}

func TestLambdaTestSuite(t *testing.T) {
	suite.Run(t, new(LambdaTestSuite))
}

func (s *LambdaTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRaid = raidmock.NewMockService(s.ctrl)
	s.mockVideo = videomock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RaidService:  s.mockRaid,
		VideoService: s.mockVideo,
	})
	s.Require().NoError(err)
	s.app = &app{handler: handler}
}

func (s *LambdaTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LambdaTestSuite) call(path, body string, encoded bool) events.LambdaFunctionURLResponse {
	resp, err := s.app.handle(s.ctx, events.LambdaFunctionURLRequest{
		RawPath:         path,
		Body:            body,
		IsBase64Encoded: encoded,
	})
	s.Require().NoError(err)
	s.Equal("application/json", resp.Headers["Content-Type"])
	return resp
}

func (s *LambdaTestSuite) errorMessage(resp events.LambdaFunctionURLResponse) string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal([]byte(resp.Body), &body))
	return body["error"]
}

func (s *LambdaTestSuite) TestUnknownPath() {
	resp := s.call("/characters", "", false)

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("unknown path /characters", s.errorMessage(resp))
}

func (s *LambdaTestSuite) TestTrailingSlash() {
	s.mockRaid.EXPECT().
		GetStatistics(gomock.Any(), &raid.GetStatisticsInput{RaidID: "s72"}).
		Return(&raid.GetStatisticsOutput{Summary: stats.Summary{TotalParties: 4}}, nil)

	resp := s.call("/statistics/", `{"raid_id":"s72"}`, false)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Body, `"total_parties":4`)
}

func (s *LambdaTestSuite) TestBase64Body() {
	s.mockVideo.EXPECT().
		ListAnalyses(gomock.Any(), &video.ListAnalysesInput{RaidID: "s72"}).
		Return(&video.ListAnalysesOutput{Analyses: []*videoanalysis.Analysis{{
			ID:         "va_1",
			RaidID:     "s72",
			Score:      45_000_000,
			YoutubeURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			PartyData:  [][]raidentity.SlotCode{{10005530}},
			CreatedAt:  time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		}}}, nil)

	body := base64.StdEncoding.EncodeToString([]byte(`{"raid_id":"s72"}`))
	resp := s.call("/videos", body, true)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Body, `"id":"va_1"`)
}

func (s *LambdaTestSuite) TestInvalidBase64Body() {
	resp := s.call("/videos", "%%%", true)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("invalid base64 body", s.errorMessage(resp))
}

func (s *LambdaTestSuite) TestInvalidJSON() {
	resp := s.call("/parties", `{"raid_id":`, false)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Contains(s.errorMessage(resp), "invalid JSON")
}

func (s *LambdaTestSuite) TestInvalidArgumentMapsTo400() {
	resp := s.call("/parties", `{}`, false)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("raid_id is required", s.errorMessage(resp))
}

func (s *LambdaTestSuite) TestNotFoundMapsTo404() {
	s.mockRaid.EXPECT().
		ListParties(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("raids/missing/parties.json not found"))

	resp := s.call("/parties", `{"raid_id":"missing"}`, false)

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("raids/missing/parties.json not found", s.errorMessage(resp))
}

func (s *LambdaTestSuite) TestInternalMapsTo500() {
	s.mockRaid.EXPECT().
		ListParties(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("engine failed"))

	resp := s.call("/parties", `{"raid_id":"s72"}`, false)

	s.Equal(http.StatusInternalServerError, resp.StatusCode)
}
