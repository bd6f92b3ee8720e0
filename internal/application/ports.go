package application

//go:generate mockgen -package=application -destination=mock_ports_test.go -source=ports.go

import (
	"context"

	"commodities-etl/internal/domain"
)

// QuoteSource returns the closing-price series of one symbol.
type QuoteSource interface {
	History(ctx context.Context, symbol string, period domain.Period, interval domain.Interval) ([]domain.Quote, error)
}

// QuoteTable is the destination of a run. Replace discards whatever the
// table held before.
type QuoteTable interface {
	Replace(ctx context.Context, schema string, rows []domain.Quote) error
}

// RunLock guards a destination against concurrent runs.
type RunLock interface {
	// TryAcquire returns true if key was free and is now held by owner.
	TryAcquire(ctx context.Context, key, owner string) (bool, error)
	Release(ctx context.Context, key, owner string) error
}

// NoopLock always succeeds; used when no lock backend is configured.
type NoopLock struct{}

func (NoopLock) TryAcquire(context.Context, string, string) (bool, error) { return true, nil }
func (NoopLock) Release(context.Context, string, string) error { return nil }
