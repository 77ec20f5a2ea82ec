package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ba-raid-api/internal/config"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
)

const sampleYAML = `
server:
  port: 6000
redis:
  address: redis:6379
  db: 2
feed:
  baseUrl: https://feed.example/data
  cacheTtl: 90s
thresholds:
  torment: 30000000
  lunatic: 40000000
log:
  format: json
`

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(name, body string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestLoad_EmptyPathReturnsDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
	s.Equal(partyfilter.DefaultThresholds(), cfg.Thresholds)
}

func (s *ConfigTestSuite) TestLoad_OverlaysFile() {
	cfg, err := config.Load(s.write("config.yaml", sampleYAML))
	s.Require().NoError(err)

	s.Equal(6000, cfg.Server.Port)
	s.Equal("redis:6379", cfg.Redis.Address)
	s.Equal(2, cfg.Redis.DB)
	s.Equal("https://feed.example/data", cfg.Feed.BaseURL)
	s.Equal(90*time.Second, cfg.Feed.CacheTTL)
	s.Equal(config.DefaultFeedTimeout, cfg.Feed.Timeout)
	s.Equal(partyfilter.Thresholds{Torment: 30_000_000, Lunatic: 40_000_000}, cfg.Thresholds)
	s.Equal("info", cfg.Log.Level)
	s.Equal("json", cfg.Log.Format)

	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoad_Errors() {
	_, err := config.Load(filepath.Join(s.dir, "missing.yaml"))
	s.True(errors.IsNotFound(err))

	_, err = config.Load(s.write("unknown.yaml", "feed:\n  baseURL: x\n"))
	s.True(errors.IsInvalidArgument(err))

	_, err = config.Load(s.write("broken.yaml", "server: [\n"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestParse_EmptyKeepsValues() {
	cfg := config.Default()
	s.Require().NoError(config.Parse([]byte("  \n"), cfg))
	s.Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		modify func(*config.Config)
		field  string
	}{
		{name: "missing feed", modify: func(*config.Config) {}, field: "feed.baseUrl"},
		{name: "bad port", modify: func(c *config.Config) { c.Server.Port = 70000 }, field: "server.port"},
		{name: "missing redis", modify: func(c *config.Config) { c.Redis.Address = "" }, field: "redis.address"},
		{name: "negative db", modify: func(c *config.Config) { c.Redis.DB = -1 }, field: "redis.db"},
		{name: "negative state ttl", modify: func(c *config.Config) { c.FilterState.TTL = -time.Hour }, field: "filterState.ttl"},
		{
			name:   "unordered thresholds",
			modify: func(c *config.Config) { c.Thresholds = partyfilter.Thresholds{Torment: 2, Lunatic: 1} },
			field:  "thresholds",
		},
		{name: "unknown log level", modify: func(c *config.Config) { c.Log.Level = "verbose" }, field: "log.level"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			if tc.field != "feed.baseUrl" {
				cfg.Feed.BaseURL = "https://feed.example"
			}
			tc.modify(cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			fields, ok := errors.GetMeta(err)[errors.ValidationMetaKey].(map[string][]string)
			s.Require().True(ok)
			s.Contains(fields, tc.field)
		})
	}
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
