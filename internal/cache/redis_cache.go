package cache

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/aioseoassistant/SMSApp/internal/constant"
	"github.com/aioseoassistant/SMSApp/internal/domain"
)

// RedisCache keeps one key holding the newest ListMaxLimit records; reads
// for smaller limits slice the cached result. Every applied write drops the
// key.
type RedisCache struct {
	rdb    *redis.Client
	logger *log.Logger
}

func NewRedisCache(rdb *redis.Client, logger *log.Logger) *RedisCache {
	return &RedisCache{rdb: rdb, logger: logger}
}

func (c *RedisCache) GetRecent(ctx context.Context, limit int) ([]domain.MessageRecord, bool) {
	raw, err := c.rdb.Get(ctx, constant.ListCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnf("listing cache read failed: %v", err)
		}
		return nil, false
	}

	var records []domain.MessageRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		c.logger.Warnf("listing cache holds undecodable value, dropping: %v", err)
		c.Invalidate(ctx)
		return nil, false
	}

	if limit < len(records) {
		records = records[:limit]
	}
	return records, true
}

func (c *RedisCache) SetRecent(ctx context.Context, records []domain.MessageRecord) {
	// Only a full page is worth caching; partial pages would be served to
	// callers asking for more than was stored.
	if len(records) < constant.ListMaxLimit {
		return
	}

	b, err := json.Marshal(records)
	if err != nil {
		c.logger.Warnf("listing cache encode failed: %v", err)
		return
	}

	if err := c.rdb.Set(ctx, constant.ListCacheKey, b, constant.ListCacheTTL).Err(); err != nil {
		c.logger.Warnf("listing cache write failed: %v", err)
	}
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, constant.ListCacheKey).Err(); err != nil {
		c.logger.Warnf("listing cache invalidation failed: %v", err)
	}
}
