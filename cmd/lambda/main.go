//go:build lambda

// Command lambda serves the read side of the raid API behind a Lambda
// function URL. Filter state lives in memory since requests are anonymous;
// video analyses are read from Redis so youtube_only filtering works.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/KirkDiggler/ba-raid-api/internal/clients/external"
	"github.com/KirkDiggler/ba-raid-api/internal/engine"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	"github.com/KirkDiggler/ba-raid-api/internal/handlers/raid/v1alpha1"
	"github.com/KirkDiggler/ba-raid-api/internal/orchestrators/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/orchestrators/video"
	"github.com/KirkDiggler/ba-raid-api/internal/pkg/clock"
	"github.com/KirkDiggler/ba-raid-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/ba-raid-api/internal/redis"
	filterstate "github.com/KirkDiggler/ba-raid-api/internal/repositories/filter_state"
	videoanalysis "github.com/KirkDiggler/ba-raid-api/internal/repositories/video_analysis"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type routeFunc func(ctx context.Context, h *v1alpha1.Handler, body []byte) (any, error)

// route decodes the body into Req and calls the handler method
func route[Req any, Resp any](call func(*v1alpha1.Handler, context.Context, *Req) (*Resp, error)) routeFunc {
	return func(ctx context.Context, h *v1alpha1.Handler, body []byte) (any, error) {
		req := new(Req)
		if len(body) > 0 {
			if err := json.Unmarshal(body, req); err != nil {
				return nil, errors.InvalidArgumentf("invalid JSON: %v", err)
			}
		}
		return call(h, ctx, req)
	}
}

var routes = map[string]routeFunc{
	"/parties":    route((*v1alpha1.Handler).ListParties),
	"/options":    route((*v1alpha1.Handler).GetFilterOptions),
	"/statistics": route((*v1alpha1.Handler).GetStatistics),
	"/videos":     route((*v1alpha1.Handler).ListVideoAnalyses),
}

type app struct {
	handler *v1alpha1.Handler
}

func (a *app) handle(
	ctx context.Context,
	event events.LambdaFunctionURLRequest,
) (events.LambdaFunctionURLResponse, error) {
	path := strings.TrimSuffix(event.RawPath, "/")
	fn, ok := routes[path]
	if !ok {
		return errResp(404, "unknown path "+event.RawPath)
	}

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	resp, err := fn(ctx, a.handler, []byte(body))
	if err != nil {
		// handler errors are grpc statuses
		err = errors.FromGRPCError(err)
		code := errors.GetCode(err)
		if code.HTTPStatus() >= 500 {
			slog.ErrorContext(ctx, "request failed", "path", path, "error", err)
		}
		return errResp(code.HTTPStatus(), errors.GetMessage(err))
	}

	respJSON, err := json.Marshal(resp)
	if err != nil {
		return errResp(500, "failed to encode response")
	}
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func newApp() (*app, error) {
	feedClient, err := external.New(&external.Config{BaseURL: os.Getenv("FEED_BASE_URL")})
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(nil)
	if err != nil {
		return nil, err
	}

	redisClient, err := redisclient.NewClientFromURL(os.Getenv("REDIS_URL"), nil)
	if err != nil {
		return nil, err
	}

	videoRepo, err := videoanalysis.NewRedisRepository(&videoanalysis.Config{Client: redisClient})
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	raidService, err := raid.NewOrchestrator(&raid.Config{
		ExternalClient:    feedClient,
		Engine:            eng,
		FilterStateRepo:   filterstate.NewInMemory(clk),
		VideoAnalysisRepo: videoRepo,
	})
	if err != nil {
		return nil, err
	}

	videoService, err := video.NewOrchestrator(&video.Config{
		Repository:  videoRepo,
		IDGenerator: idgen.NewTimeOrdered(video.IDPrefix),
		Clock:       clk,
	})
	if err != nil {
		return nil, err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RaidService:  raidService,
		VideoService: videoService,
	})
	if err != nil {
		return nil, err
	}
	return &app{handler: handler}, nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	a, err := newApp()
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	lambda.Start(a.handle)
}
