package cache

import (
	"testing"

	"blogify/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	srv := miniredis.RunT(t)

	client, err := NewRedisClient(&config.Config{
		RedisHost: srv.Host(),
		RedisPort: srv.Port(),
	})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, srv.Addr(), client.Options().Addr)
}

func TestNewRedisClient_Disabled(t *testing.T) {
	_, err := NewRedisClient(&config.Config{})
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	host, port := srv.Host(), srv.Port()
	srv.Close()

	_, err := NewRedisClient(&config.Config{RedisHost: host, RedisPort: port})
	assert.ErrorContains(t, err, "failed to ping redis")
}
