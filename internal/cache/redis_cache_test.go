package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/aioseoassistant/SMSApp/internal/constant"
	"github.com/aioseoassistant/SMSApp/internal/domain"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	logger := log.New()
	logger.SetLevel(log.PanicLevel)

	return NewRedisCache(rdb, logger), mr
}

func fullPage() []domain.MessageRecord {
	records := make([]domain.MessageRecord, constant.ListMaxLimit)
	for i := range records {
		records[i] = domain.MessageRecord{
			ID:        int64(constant.ListMaxLimit - i),
			Direction: domain.DirectionOutbound,
			ToNumber:  "+15559876543",
			Status:    "queued",
		}
	}
	return records
}

func TestRedisCache_SetThenGetSlicesToLimit(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetRecent(ctx, fullPage())

	got, ok := c.GetRecent(ctx, 3)
	require.True(t, ok)
	require.Len(t, got, 3)
	require.EqualValues(t, constant.ListMaxLimit, got[0].ID)
}

func TestRedisCache_SkipsPartialPages(t *testing.T) {
	t.Parallel()

	c, mr := newTestCache(t)
	ctx := context.Background()

	c.SetRecent(ctx, []domain.MessageRecord{{ID: 1}})

	require.False(t, mr.Exists(constant.ListCacheKey))
	_, ok := c.GetRecent(ctx, 1)
	require.False(t, ok)
}

func TestRedisCache_InvalidateDropsKey(t *testing.T) {
	t.Parallel()

	c, mr := newTestCache(t)
	ctx := context.Background()

	c.SetRecent(ctx, fullPage())
	require.True(t, mr.Exists(constant.ListCacheKey))

	c.Invalidate(ctx)
	require.False(t, mr.Exists(constant.ListCacheKey))

	_, ok := c.GetRecent(ctx, 10)
	require.False(t, ok)
}
