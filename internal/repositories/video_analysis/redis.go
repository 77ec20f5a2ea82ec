package videoanalysis

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	redisclient "github.com/KirkDiggler/ba-raid-api/internal/redis"
)

const (
	// Key pattern: video_analysis:{id}
	analysisKeyPrefix = "video_analysis:"
	// Key pattern: video_analysis:raid:{raid_id} (set of analysis IDs)
	raidIndexPrefix = "video_analysis:raid:"

	errIDEmpty      = "analysis ID cannot be empty"
	errRaidIDEmpty  = "raid ID cannot be empty"
	errAnalysisNil  = "analysis cannot be nil"
	errNotFoundFmt  = "video analysis %s not found"
	errDuplicateFmt = "video analysis %s already exists"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for video analyses
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	a := input.Analysis
	if a == nil {
		return nil, errors.InvalidArgument(errAnalysisNil)
	}
	if a.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if a.RaidID == "" {
		return nil, errors.InvalidArgument(errRaidIDEmpty)
	}

	data, err := json.Marshal(a)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal analysis")
	}

	key := analysisKey(a.ID)

	// The record and its raid index entry are written in one MULTI, guarded
	// by a WATCH on the record key.
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to check existence")
		}
		if exists > 0 {
			return errors.AlreadyExistsf(errDuplicateFmt, a.ID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.SAdd(ctx, raidIndexKey(a.RaidID), a.ID)
			return nil
		})
		return err
	}, key)
	switch {
	case err == nil:
	case err == redis.TxFailedErr:
		return nil, errors.AlreadyExistsf(errDuplicateFmt, a.ID)
	case errors.IsAlreadyExists(err):
		return nil, err
	default:
		return nil, errors.Wrapf(err, "failed to create analysis")
	}

	stored := *a
	return &CreateOutput{Analysis: &stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	data, err := r.client.Get(ctx, analysisKey(input.ID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf(errNotFoundFmt, input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get analysis from Redis")
	}

	var a Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal analysis %s", input.ID)
	}

	return &GetOutput{Analysis: &a}, nil
}

func (r *redisRepository) ListByRaid(ctx context.Context, input ListByRaidInput) (*ListByRaidOutput, error) {
	if input.RaidID == "" {
		return nil, errors.InvalidArgument(errRaidIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, raidIndexKey(input.RaidID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read analysis index")
	}
	if len(ids) == 0 {
		return &ListByRaidOutput{Analyses: []*Analysis{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = analysisKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load analyses")
	}

	analyses := make([]*Analysis, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "analysis index points at missing key",
				"raid_id", input.RaidID,
				"analysis_id", ids[i])
			continue
		}

		var a Analysis
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			slog.WarnContext(ctx, "skipping unreadable analysis",
				"analysis_id", ids[i],
				"error", err)
			continue
		}
		analyses = append(analyses, &a)
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		if analyses[i].Score != analyses[j].Score {
			return analyses[i].Score > analyses[j].Score
		}
		return analyses[i].ID < analyses[j].ID
	})

	return &ListByRaidOutput{Analyses: analyses}, nil
}

func (r *redisRepository) ListScores(ctx context.Context, input ListScoresInput) (*ListScoresOutput, error) {
	list, err := r.ListByRaid(ctx, ListByRaidInput(input))
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(list.Analyses))
	scores := make([]int64, 0, len(list.Analyses))
	for _, a := range list.Analyses {
		if _, dup := seen[a.Score]; dup {
			continue
		}
		seen[a.Score] = struct{}{}
		scores = append(scores, a.Score)
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i] < scores[j] })

	return &ListScoresOutput{Scores: scores}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	got, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, analysisKey(input.ID))
		pipe.SRem(ctx, raidIndexKey(got.Analysis.RaidID), input.ID)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete analysis from Redis")
	}

	return &DeleteOutput{Analysis: got.Analysis}, nil
}

func analysisKey(id string) string {
	return analysisKeyPrefix + id
}

func raidIndexKey(raidID string) string {
	return raidIndexPrefix + raidID
}
