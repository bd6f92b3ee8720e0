package provider

import (
	"context"
	"time"

	"commodities-etl/internal/application"
	"commodities-etl/internal/domain"

	"github.com/guregu/null/v6"
)

// Ensure Fake implements application.QuoteSource.
var _ application.QuoteSource = (*Fake)(nil)

// Fake serves a flat daily series ending on the last weekday before now.
type Fake struct {
	price float64
	now   func() time.Time
}

func NewFake(price float64) *Fake { return &Fake{price: price, now: time.Now} }

var fakePeriodDays = map[domain.Period]int{"1d": 1, "5d": 5, "1mo": 21, "3mo": 63}

func (f *Fake) History(_ context.Context, symbol string, period domain.Period, _ domain.Interval) ([]domain.Quote, error) {
	n, ok := fakePeriodDays[period]
	if !ok {
		n = 21
	}
	day := f.now().UTC().Truncate(24 * time.Hour)
	out := make([]domain.Quote, n)
	for i := n - 1; i >= 0; i-- {
		day = day.AddDate(0, 0, -1)
		for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			day = day.AddDate(0, 0, -1)
		}
		out[i] = domain.Quote{Date: day, Symbol: symbol, Close: null.FloatFrom(f.price)}
	}
	return out, nil
}
