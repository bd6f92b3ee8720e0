package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"commodities-etl/internal/application"
	"commodities-etl/internal/config"
	"commodities-etl/internal/domain"
	"commodities-etl/internal/infrastructure/httpx"
	"commodities-etl/internal/infrastructure/logx"
	"commodities-etl/internal/infrastructure/pg"
	"commodities-etl/internal/infrastructure/provider"
	redisstore "commodities-etl/internal/infrastructure/redis"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Job is one configured extract-load pass.
type Job struct {
	Service *application.ExtractLoadService
	Schema  string
}

func (j *Job) Run(ctx context.Context) (domain.RunResult, error) {
	return j.Service.Run(ctx, j.Schema)
}

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

func ProvideDB(ctx context.Context, log *zap.Logger, cfg config.Config) (*pg.DB, func(), error) {
	db, err := pg.Connect(ctx, cfg.DatabaseDSN())
	if err != nil {
		return nil, func() {}, fmt.Errorf("connect pg: %w", err)
	}
	cleanup := func() {
		if log != nil {
			log.Info("closing pg")
		}
		db.Close()
	}
	return db, cleanup, nil
}

func ProvideQuoteTable(db *pg.DB, log *zap.Logger) application.QuoteTable {
	return pg.NewCommoditiesTable(db).WithLogger(log)
}

func ProvideHTTPClient(cfg config.Config) *httpx.Client {
	return &httpx.Client{
		HTTP:       &http.Client{Timeout: cfg.RequestTimeout},
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.FetchRetries,
	}
}

func ProvideQuoteSource(cfg config.Config, client *httpx.Client) (application.QuoteSource, error) {
	switch cfg.Provider {
	case "yahoo":
		return &provider.YahooChartProvider{
			BaseURL: cfg.YahooAPIBase,
			Client:  client,
		}, nil
	case "fake":
		return provider.NewFake(1.2345), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// ProvideRunLock returns the redis lock when LOCK_BACKEND=redis, otherwise a no-op lock.
func ProvideRunLock(cfg config.Config) (application.RunLock, func(), error) {
	switch cfg.LockBackend {
	case "", "none":
		return application.NoopLock{}, func() {}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return redisstore.New(client, cfg.RunLockTTL), func() { _ = client.Close() }, nil
	default:
		return nil, func() {}, fmt.Errorf("%w: %q", ErrUnknownLockBackend, cfg.LockBackend)
	}
}

func ProvideExtractLoadService(src application.QuoteSource, table application.QuoteTable, lock application.RunLock, log *zap.Logger) *application.ExtractLoadService {
	return application.NewExtractLoadService(src, table,
		application.WithRunLock(lock),
		application.WithLogger(log),
	)
}

func ProvideJob(cfg config.Config, svc *application.ExtractLoadService) *Job {
	return &Job{Service: svc, Schema: cfg.DBSchema}
}
