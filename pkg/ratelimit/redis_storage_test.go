package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStorage_EmptyKeysAreNoops(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	s := NewRedisStorage(rdb, "test:")
	defer s.Close()

	val, err := s.Get("")
	assert.NoError(t, err)
	assert.Nil(t, val)
	assert.NoError(t, s.Set("", []byte("x"), time.Second))
	assert.NoError(t, s.Set("k", nil, time.Second))
	assert.NoError(t, s.Delete(""))
	assert.Equal(t, "test:abc", s.key("abc"))
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Connect(ctx, "redis://127.0.0.1:1/0")
	assert.Error(t, err)
}

func TestRedisStorage_RoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	rdb, err := Connect(context.Background(), url)
	require.NoError(t, err)

	s := NewRedisStorage(rdb, "ratelimit-test:")
	defer s.Close()

	require.NoError(t, s.Set("ip", []byte("3"), time.Minute))
	val, err := s.Get("ip")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)

	require.NoError(t, s.Reset())
	val, err = s.Get("ip")
	require.NoError(t, err)
	assert.Nil(t, val)
}
