package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`IsContextDone check`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		require.False(t, IsContextDone(ctx))
		cancel()
		require.True(t, IsContextDone(ctx))
	})

	t.Run(`DateOnly check`, func(t *testing.T) {
		ts := time.Date(2024, 3, 5, 17, 45, 12, 99, time.UTC)
		require.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), DateOnly(ts))
	})

	t.Run(`ParseDate check`, func(t *testing.T) {
		d, err := ParseDate("2024-02-29")
		require.Nil(t, err)
		require.Equal(t, 29, d.Day())
		_, err = ParseDate("29.02.2024")
		require.NotNil(t, err)
	})

	t.Run(`IsSafeRedirect check`, func(t *testing.T) {
		require.True(t, IsSafeRedirect("/jobs/12/apply/full"))
		require.False(t, IsSafeRedirect(""))
		require.False(t, IsSafeRedirect("https://evil.example/jobs"))
		require.False(t, IsSafeRedirect("//evil.example/jobs"))
		require.False(t, IsSafeRedirect("/\\evil.example"))
	})
}
