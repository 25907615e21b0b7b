package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dotse/slug"
	slogmulti "github.com/samber/slog-multi"
)

type Level string

const (
	Debug Level = "debug"
	Info  Level = "info"
	Warn  Level = "warn"
	Error Level = "error"
)

func ToSlogLevel(level Level) slog.Level {
	switch Level(strings.ToLower(string(level))) {
	case Debug:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// MustCreateLogger configura el logger global: stdout siempre y, si se pasa path, también un archivo.
// Devuelve el closer del archivo. Panics si no se puede abrir el archivo.
func MustCreateLogger(level Level, logPath string) func() {
	closer := func() {}
	opts := slug.HandlerOptions{
		HandlerOptions: slog.HandlerOptions{Level: ToSlogLevel(level)},
	}

	handlers := []slog.Handler{slug.NewHandler(opts, os.Stdout)}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			panic(fmt.Sprintf("Failed to open logfile: %v", err))
		}
		closer = func() { Closer(f) }
		handlers = append(handlers, slug.NewHandler(opts, f))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return closer
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("reason", err)
}

func Closer(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Error("Failed to close", ErrAttr(err))
	}
}
