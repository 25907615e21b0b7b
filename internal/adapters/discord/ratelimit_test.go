package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserLimiter(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newUserLimiter(time.Minute)
	l.now = func() time.Time { return now }

	ok, _ := l.Allow("u1")
	require.True(t, ok)

	now = now.Add(20 * time.Second)
	ok, wait := l.Allow("u1")
	require.False(t, ok)
	require.Equal(t, 40*time.Second, wait)

	ok, _ = l.Allow("u2")
	require.True(t, ok)

	now = now.Add(41 * time.Second)
	ok, _ = l.Allow("u1")
	require.True(t, ok)
}
