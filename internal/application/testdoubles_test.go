package application

import (
	"context"
	"errors"
	"time"

	"commodities-etl/internal/domain"

	"github.com/guregu/null/v6"
)

var (
	ErrRepo     = errors.New("repo error")
	ErrUpstream = errors.New("upstream unreachable")
)

// fakeQuoteTable keeps one slice per schema and replaces it wholesale.
type fakeQuoteTable struct {
	schemas  map[string][]domain.Quote
	replaced int
	err      error
}

func (f *fakeQuoteTable) Replace(_ context.Context, schema string, rows []domain.Quote) error {
	if f.err != nil {
		return f.err
	}
	if f.schemas == nil {
		f.schemas = map[string][]domain.Quote{}
	}
	f.schemas[schema] = append([]domain.Quote(nil), rows...)
	f.replaced++
	return nil
}

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

type fixedID string

func (f fixedID) New() string { return string(f) }

func series(symbol string, closes ...float64) []domain.Quote {
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	out := make([]domain.Quote, len(closes))
	for i, c := range closes {
		out[i] = domain.Quote{Date: day.AddDate(0, 0, i), Symbol: symbol, Close: null.FloatFrom(c)}
	}
	return out
}
