package adapter

import (
	"context"
	"errors"
	"testing"

	"quizforge/internal/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisTokenStore_Put(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisTokenStore(client)

	key := cache.ActivationTokenKey("user1")
	mock.ExpectSet(key, "token123", activationTokenTTL).SetVal("OK")

	err := store.Put(context.Background(), "user1", "token123")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisTokenStore_Consume_Match(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisTokenStore(client)

	key := cache.ActivationTokenKey("user1")
	mock.ExpectGet(key).SetVal("token123")
	mock.ExpectDel(key).SetVal(1)

	ok, err := store.Consume(context.Background(), "user1", "token123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisTokenStore_Consume_SingleUse(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisTokenStore(client)

	key := cache.ActivationTokenKey("user1")
	mock.ExpectGet(key).SetVal("token123")
	mock.ExpectDel(key).SetVal(1)
	// Second consume sees no key: the token was deleted on first use.
	mock.ExpectGet(key).RedisNil()

	ok, err := store.Consume(context.Background(), "user1", "token123")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.Consume(context.Background(), "user1", "token123")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisTokenStore_Consume_Mismatch(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisTokenStore(client)

	key := cache.ActivationTokenKey("user1")
	mock.ExpectGet(key).SetVal("token123")

	ok, err := store.Consume(context.Background(), "user1", "forged")
	require.NoError(t, err)
	assert.False(t, ok)
	// A mismatch must not delete the real token.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisTokenStore_Consume_MissingKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisTokenStore(client)

	mock.ExpectGet(cache.ActivationTokenKey("user1")).RedisNil()

	ok, err := store.Consume(context.Background(), "user1", "token123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisTokenStore_Consume_RedisFailure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisTokenStore(client)

	mock.ExpectGet(cache.ActivationTokenKey("user1")).SetErr(errors.New("connection reset"))

	ok, err := store.Consume(context.Background(), "user1", "token123")
	assert.Error(t, err)
	assert.False(t, ok)
}
