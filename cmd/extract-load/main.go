package main

import (
	"context"
	"os/signal"
	"syscall"

	"commodities-etl/internal/bootstrap"
	"commodities-etl/internal/config"
	"commodities-etl/internal/infrastructure/logx"

	"go.uber.org/zap"
)

// Runs before main, hence before the first logx.L() call.
func init() { _ = config.LoadDotenv() }

func main() {
	logger := logx.L()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	job, cleanup, err := bootstrap.InitJob(ctx)
	if err != nil {
		logger.Fatal("bootstrap job", zap.Error(err))
	}

	res, err := job.Run(ctx)
	cleanup()
	if err != nil {
		logger.Fatal("extract-load failed", zap.String("run_id", res.RunID), zap.Error(err))
	}
	logger.Info("extract-load finished",
		zap.String("run_id", res.RunID),
		zap.String("schema", res.Schema),
		zap.Int("rows", res.Rows),
		zap.Strings("symbols", res.Symbols),
	)
}
