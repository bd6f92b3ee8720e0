package logx

import (
	"context"
	"strings"
	"sync"

	"commodities-etl/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	logger *zap.Logger
)

type runIDKey struct{}

// New builds the JSON production logger at level. Unknown levels fall
// back to info.
func New(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Sampling = nil
	zcfg.DisableStacktrace = true
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zapcore.ParseLevel(strings.ToLower(level)); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zcfg.Build(zap.AddCaller())
}

// L returns the process logger. It is built on first use from LOG_LEVEL,
// so anything that populates the environment must run before the first call.
func L() *zap.Logger {
	once.Do(func() {
		l, err := New(config.Load().LogLevel)
		if err != nil {
			panic(err)
		}
		logger = l
	})
	return logger
}

// ContextWithRunID tags ctx so loggers derived from it carry the run id.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunID returns the run id stored in ctx, if any.
func RunID(ctx context.Context) string {
	if v, ok := ctx.Value(runIDKey{}).(string); ok {
		return v
	}
	return ""
}

// WithFields returns base enriched with the run id found in ctx.
func WithFields(ctx context.Context, base *zap.Logger) *zap.Logger {
	if base == nil {
		base = L()
	}
	if id := RunID(ctx); id != "" {
		return base.With(zap.String("run_id", id))
	}
	return base
}
