// Package external is the client for the static raid ranking feed
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/ba-raid-api/internal/clients/external Client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/entities/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	"github.com/KirkDiggler/ba-raid-api/internal/pkg/clock"
)

// raidIDPattern keeps raid IDs safe to splice into a URL path
var raidIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Client defines the interface for reading the upstream feed
type Client interface {
	// GetParties fetches and decodes every ranked party of a raid
	GetParties(ctx context.Context, raidID string) (*PartyFeed, error)

	// GetFilterData fetches the precomputed usage counts of a raid
	GetFilterData(ctx context.Context, raidID string) (*FilterFeed, error)

	// GetStudentNames fetches the student ID to display name table
	GetStudentNames(ctx context.Context) (options.Names, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL of the static feed, e.g. https://example.com/data/
	BaseURL string
	// HTTPTimeout for feed requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 10 minutes,
	// negative disables caching)
	CacheTTL time.Duration
	// HTTPClient overrides the default client (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("base_url", cfg.BaseURL, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	base := &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}
	if cfg.CacheTTL < 0 {
		return base, nil
	}

	return NewCached(base, cfg.CacheTTL, clock.New()), nil
}

func (c *client) GetParties(ctx context.Context, raidID string) (*PartyFeed, error) {
	if err := validateRaidID(raidID); err != nil {
		return nil, err
	}

	body, err := c.fetch(ctx, fmt.Sprintf("raids/%s/parties.json", raidID))
	if err != nil {
		return nil, err
	}

	feed, err := parsePartyFeed(raidID, body)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "loaded party feed",
		"raid_id", raidID,
		"parties", len(feed.Parties))

	return feed, nil
}

func (c *client) GetFilterData(ctx context.Context, raidID string) (*FilterFeed, error) {
	if err := validateRaidID(raidID); err != nil {
		return nil, err
	}

	body, err := c.fetch(ctx, fmt.Sprintf("raids/%s/filters.json", raidID))
	if err != nil {
		return nil, err
	}

	return parseFilterFeed(raidID, body)
}

func (c *client) GetStudentNames(ctx context.Context) (options.Names, error) {
	body, err := c.fetch(ctx, "students.json")
	if err != nil {
		return nil, err
	}

	return parseStudentNames(body)
}

func (c *client) fetch(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch %s", path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch code := errors.CodeFromHTTPStatus(resp.StatusCode); code {
	case errors.CodeOK:
	case errors.CodeNotFound:
		return nil, errors.NotFoundf("%s not found", path).WithMeta("url", url)
	default:
		return nil, errors.Newf(code, "feed returned %d for %s", resp.StatusCode, path).
			WithMeta("url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", path)
	}
	return body, nil
}

func validateRaidID(raidID string) error {
	if raidID == "" {
		return errors.InvalidArgument("raid ID is required")
	}
	if !raidIDPattern.MatchString(raidID) {
		return errors.InvalidArgumentf("invalid raid ID %q", raidID)
	}
	return nil
}

func parsePartyFeed(raidID string, body []byte) (*PartyFeed, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.DataLossf("parties feed for %s is not valid JSON", raidID)
	}
	root := gjson.ParseBytes(body)

	feed := &PartyFeed{RaidID: raidID}
	root.Get("parties").ForEach(func(_, p gjson.Result) bool {
		rank := len(feed.Parties) + 1
		if r := p.Get("rank"); r.Exists() {
			rank = int(r.Int())
		}

		var codes [][]raid.SlotCode
		p.Get("partyData").ForEach(func(_, sub gjson.Result) bool {
			row := make([]raid.SlotCode, 0, slotsPerSubParty)
			sub.ForEach(func(_, c gjson.Result) bool {
				row = append(row, raid.SlotCode(c.Int()))
				return true
			})
			codes = append(codes, row)
			return true
		})

		feed.Parties = append(feed.Parties, raid.NewParty(rank, p.Get("score").Int(), codes))
		return true
	})

	minP, maxP := root.Get("minPartys"), root.Get("maxPartys")
	if minP.Exists() && maxP.Exists() {
		feed.MinPartys, feed.MaxPartys = int(minP.Int()), int(maxP.Int())
	} else {
		feed.MinPartys, feed.MaxPartys = partyCountBounds(feed.Parties)
	}

	return feed, nil
}

// slotsPerSubParty is the usual width of one sub-party row
const slotsPerSubParty = 6

func partyCountBounds(parties []raid.Party) (int, int) {
	if len(parties) == 0 {
		return 0, 0
	}
	minP, maxP := parties[0].PartyCount(), parties[0].PartyCount()
	for _, p := range parties[1:] {
		minP = min(minP, p.PartyCount())
		maxP = max(maxP, p.PartyCount())
	}
	return minP, maxP
}

func parseFilterFeed(raidID string, body []byte) (*FilterFeed, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.DataLossf("filters feed for %s is not valid JSON", raidID)
	}
	root := gjson.ParseBytes(body)

	return &FilterFeed{
		RaidID:  raidID,
		Members: usageFrom(root.Get("filters")),
		Assists: usageFrom(root.Get("assistFilters")),
	}, nil
}

func usageFrom(r gjson.Result) options.UsageData {
	out := make(options.UsageData)
	r.ForEach(func(sid, grades gjson.Result) bool {
		counts := make(map[string]int)
		grades.ForEach(func(key, count gjson.Result) bool {
			counts[key.String()] = int(count.Int())
			return true
		})
		out[sid.String()] = counts
		return true
	})
	return out
}

func parseStudentNames(body []byte) (options.Names, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.DataLoss("students feed is not valid JSON")
	}

	names := make(options.Names)
	gjson.ParseBytes(body).ForEach(func(id, name gjson.Result) bool {
		names[id.String()] = name.String()
		return true
	})
	return names, nil
}
