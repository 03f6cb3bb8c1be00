package vacancyhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCheckDeadline(t *testing.T) {
	base := time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)

	t.Run("same day", func(t *testing.T) {
		require.Empty(t, CheckDeadline(base, time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), 14))
	})
	t.Run("ten days", func(t *testing.T) {
		require.Empty(t, CheckDeadline(base, base.AddDate(0, 0, 10), 14))
	})
	t.Run("last allowed day", func(t *testing.T) {
		require.Empty(t, CheckDeadline(base, base.AddDate(0, 0, 14), 14))
	})
	t.Run("one day too late", func(t *testing.T) {
		require.Equal(t, "deadline: must be within 14 days of the posting date", CheckDeadline(base, base.AddDate(0, 0, 15), 14))
	})
	t.Run("twenty days", func(t *testing.T) {
		require.NotEmpty(t, CheckDeadline(base, base.AddDate(0, 0, 20), 14))
	})
	t.Run("backdated", func(t *testing.T) {
		require.Equal(t, "deadline: cannot be earlier than the posting date", CheckDeadline(base, base.AddDate(0, 0, -1), 14))
	})
}
