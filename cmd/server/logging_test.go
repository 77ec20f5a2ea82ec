package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/ba-raid-api/internal/config"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Info("dropped")
	logger.Warn("kept", "raid_id", "s72")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"raid_id":"s72"`)
}

func TestLogFunc(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(newLogger(&buf, config.LogConfig{Level: "debug", Format: "text"}))
	defer slog.SetDefault(prev)

	logFunc(context.Background(), grpc_logging.LevelWarn, "finished call", "grpc.code", "OK")

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "grpc.code=OK")
}
