package guard

import (
	"context"
	"testing"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type claimer interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

func testClaimRelease(t *testing.T, g claimer) {
	ctx := context.Background()

	ok, err := g.Claim(ctx, "o-1/1/payment")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Claim(ctx, "o-1/1/payment")
	require.NoError(t, err)
	assert.False(t, ok, "second claim of the same stage")

	ok, err = g.Claim(ctx, "o-1/2/shipping")
	require.NoError(t, err)
	assert.True(t, ok, "other stage is independent")

	require.NoError(t, g.Release(ctx, "o-1/1/payment"))
	ok, err = g.Claim(ctx, "o-1/1/payment")
	require.NoError(t, err)
	assert.True(t, ok, "released claim can be taken again")
}

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	g := NewRedis(client, time.Minute)
	testClaimRelease(t, g)

	t.Run("claim expires", func(t *testing.T) {
		ok, err := g.Claim(context.Background(), "o-2/1/payment")
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, mr.Exists(keyPrefix+"o-2/1/payment"))

		mr.FastForward(2 * time.Minute)

		ok, err = g.Claim(context.Background(), "o-2/1/payment")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unavailable", func(t *testing.T) {
		mr.SetError("server down")
		defer mr.SetError("")

		_, err := g.Claim(context.Background(), "o-3/1/payment")
		assert.Error(t, err)
	})
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), config.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	client.Close()

	_, err = NewRedisClient(context.Background(), config.Redis{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestMemory(t *testing.T) {
	g := NewMemory(time.Minute)
	testClaimRelease(t, g)

	now := time.Now()
	g.now = func() time.Time { return now }
	ok, err := g.Claim(context.Background(), "o-2/1/payment")
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	ok, err = g.Claim(context.Background(), "o-2/1/payment")
	require.NoError(t, err)
	assert.True(t, ok)
}
