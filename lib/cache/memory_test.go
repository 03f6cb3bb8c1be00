package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := &memoryCache{items: map[string]memoryItem{}, now: func() time.Time { return now }}

	t.Run(`get set delete`, func(t *testing.T) {
		_, found, err := c.Get(ctx, "k")
		require.Nil(t, err)
		require.False(t, found)

		require.Nil(t, c.Set(ctx, "k", []byte("v"), time.Minute))
		value, found, err := c.Get(ctx, "k")
		require.Nil(t, err)
		require.True(t, found)
		require.Equal(t, "v", string(value))

		require.Nil(t, c.Delete(ctx, "k"))
		_, found, _ = c.Get(ctx, "k")
		require.False(t, found)
	})

	t.Run(`set if absent honours ttl`, func(t *testing.T) {
		ok, err := c.SetIfAbsent(ctx, "rl", []byte("1"), time.Hour)
		require.Nil(t, err)
		require.True(t, ok)

		ok, err = c.SetIfAbsent(ctx, "rl", []byte("1"), time.Hour)
		require.Nil(t, err)
		require.False(t, ok)

		now = now.Add(time.Hour)
		ok, err = c.SetIfAbsent(ctx, "rl", []byte("1"), time.Hour)
		require.Nil(t, err)
		require.True(t, ok)
	})
}
