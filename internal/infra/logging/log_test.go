package logging

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToSlogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ToSlogLevel(Debug))
	require.Equal(t, slog.LevelInfo, ToSlogLevel("INFO"))
	require.Equal(t, slog.LevelWarn, ToSlogLevel(Warn))
	require.Equal(t, slog.LevelError, ToSlogLevel("nonsense"))
}

func TestMustCreateLoggerWritesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "mapstats.log")
	closer := MustCreateLogger(Info, path)
	slog.Info("hello file", ErrAttr(errors.New("nope")))
	slog.Debug("hidden")
	closer()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "hello file")
	require.Contains(t, string(b), "nope")
	require.NotContains(t, string(b), "hidden")
}
