package performance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	summaryKeyPrefix    = "performance::summary::"
	generationKeyPrefix = "performance::summary-gen::"
)

// KEYS[1] summary hash, KEYS[2] generation
// ARGV[1] expected generation, ARGV[2] day, ARGV[3] summary, ARGV[4] ttl in ms
var setIfGenerationScript = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
if gen ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[1], ARGV[2], ARGV[3])
redis.call('PEXPIRE', KEYS[1], ARGV[4])
return 1
`)

// SummaryCache stores computed summaries in a redis hash per user, one field per day.
// Dropping the hash invalidates every cached day of the user at once. A per-user
// generation counter, bumped on every Delete, keeps summaries computed before the
// Delete from being stored after it.
type SummaryCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewSummaryCache(rdb redis.Cmdable, ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func summaryKey(userID uuid.UUID) string {
	return summaryKeyPrefix + userID.String()
}

func generationKey(userID uuid.UUID) string {
	return generationKeyPrefix + userID.String()
}

func (c *SummaryCache) Get(ctx context.Context, userID uuid.UUID, todayIso string) (Summary, bool, error) {
	data, err := c.rdb.HGet(ctx, summaryKey(userID), todayIso).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Summary{}, false, nil
		}
		return Summary{}, false, fmt.Errorf("hget summary: %w", err)
	}

	var summary Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return Summary{}, false, fmt.Errorf("unmarshal cached summary: %w", err)
	}
	return summary, true, nil
}

// Generation returns the current generation of the user, 0 if it was never bumped.
func (c *SummaryCache) Generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	generation, err := c.rdb.Get(ctx, generationKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("get summary generation: %w", err)
	}
	return generation, nil
}

// Set stores the summary if the generation of the user is still generation.
// It reports whether the summary was stored.
func (c *SummaryCache) Set(ctx context.Context, userID uuid.UUID, todayIso string, generation int64, summary Summary) (bool, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return false, fmt.Errorf("marshal summary: %w", err)
	}

	stored, err := setIfGenerationScript.Run(
		ctx, c.rdb,
		[]string{summaryKey(userID), generationKey(userID)},
		strconv.FormatInt(generation, 10), todayIso, string(data), c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("set summary: %w", err)
	}
	return stored == 1, nil
}

// Delete drops every cached day of the user and bumps the generation.
func (c *SummaryCache) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(userID))
		pipe.Del(ctx, summaryKey(userID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("del summaries: %w", err)
	}
	return nil
}
