package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// disabledDatesTTL outlives the nightly refresh so a missed job run
// degrades to a slightly stale horizon, not an empty cache.
const disabledDatesTTL = 26 * time.Hour

// Cache stores precomputed disabled-date horizons per artist. Cache
// problems are logged and treated as misses; redis being down must
// never break availability reads.
type Cache struct {
	rdb *redis.Client
	log *zap.Logger
}

func New(addr, password string, log *zap.Logger) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &Cache{rdb: rdb, log: log}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func disabledDatesKey(artistID string) string {
	return "disabled_dates:" + artistID
}

func (c *Cache) GetDisabledDates(ctx context.Context, artistID string) ([]string, bool) {
	raw, err := c.rdb.Get(ctx, disabledDatesKey(artistID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("redis get failed", zap.String("artist_id", artistID), zap.Error(err))
		}
		return nil, false
	}

	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		c.log.Warn("bad cached payload, dropping", zap.String("artist_id", artistID), zap.Error(err))
		c.rdb.Del(ctx, disabledDatesKey(artistID))
		return nil, false
	}
	return dates, true
}

func (c *Cache) SetDisabledDates(ctx context.Context, artistID string, dates []string) {
	raw, err := json.Marshal(dates)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, disabledDatesKey(artistID), raw, disabledDatesTTL).Err(); err != nil {
		c.log.Warn("redis set failed", zap.String("artist_id", artistID), zap.Error(err))
	}
}

// InvalidateArtist drops the cached horizon after any write that
// changes the artist's schedule (weekly rules or date overrides).
func (c *Cache) InvalidateArtist(ctx context.Context, artistID string) {
	if err := c.rdb.Del(ctx, disabledDatesKey(artistID)).Err(); err != nil {
		c.log.Warn("redis del failed", zap.String("artist_id", artistID), zap.Error(err))
	}
}
