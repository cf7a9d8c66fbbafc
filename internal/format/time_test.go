package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRelativeTo(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		age  time.Duration
		want string
	}{
		{500 * time.Millisecond, "just now"},
		{45 * time.Second, "45s ago"},
		{3 * time.Minute, "3m ago"},
		{5 * time.Hour, "5h ago"},
		{49 * time.Hour, "2d ago"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, RelativeTo(now.Add(-tc.age), now))
	}
}

func TestMillis(t *testing.T) {
	require.Equal(t, "0ms", Millis(0))
	require.Equal(t, "999ms", Millis(999))
	require.Equal(t, "1.205s", Millis(1205))
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2026, 8, 25, 15, 4, 5, 0, time.UTC)
	require.Equal(t, "2026-08-25 15:04:05", Timestamp(ts))
}
