package adapter

import (
	"context"
	"testing"
	"time"

	"courseforge/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_GetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectGet("missing").RedisNil()

	_, err := cache.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_SetAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	ctx := context.Background()

	mock.ExpectSet("key", "value", 15*time.Minute).SetVal("OK")
	mock.ExpectGet("key").SetVal("value")

	assert.NoError(t, cache.Set(ctx, "key", "value", 15*time.Minute))

	val, err := cache.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, "value", val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectDel("key").SetVal(1)

	assert.NoError(t, cache.Delete(context.Background(), "key"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
