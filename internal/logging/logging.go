package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/folio-dev/portfolio-api/internal/config"
	"github.com/getsentry/sentry-go"
)

// New builds the process logger from cfg and installs it as the slog default.
func New(cfg *config.Config) *slog.Logger {
	logger := newLogger(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitSentry initialises error reporting. An empty DSN leaves the SDK disabled,
// in which case every capture is a no-op. The returned func flushes pending events.
func InitSentry(cfg *config.Config) (func(), error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.GinMode,
	})
	if err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(5 * time.Second) }, nil
}

// Report logs err and forwards it to Sentry with the given tags.
func Report(err error, msg string, tags map[string]string) {
	if err == nil {
		return
	}

	args := make([]any, 0, len(tags)*2+2)
	for k, v := range tags {
		args = append(args, k, v)
	}
	args = append(args, "error", err)
	slog.Error(msg, args...)

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		scope.SetTag("message", msg)
		sentry.CaptureException(err)
	})
}
