package domain

import "time"

// Period is a relative lookback window understood by the market-data provider.
type Period string

// Interval is the sampling granularity of a price series.
type Interval string

const (
	DefaultPeriod   Period   = "5d"
	DefaultInterval Interval = "1d"
)

var supportedPeriods = map[Period]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true, "10y": true, "ytd": true, "max": true,
}

var intervalDurations = map[Interval]time.Duration{
	"1m":  time.Minute,
	"2m":  2 * time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"30m": 30 * time.Minute,
	"60m": time.Hour,
	"90m": 90 * time.Minute,
	"1h":  time.Hour,
	"1d":  24 * time.Hour,
	"5d":  5 * 24 * time.Hour,
	"1wk": 7 * 24 * time.Hour,
	"1mo": 30 * 24 * time.Hour,
	"3mo": 90 * 24 * time.Hour,
}

func ValidPeriod(p Period) bool { return supportedPeriods[p] }

func ValidInterval(i Interval) bool {
	_, ok := intervalDurations[i]
	return ok
}

// Daily reports whether bars of this interval are indexed by calendar date
// rather than by intraday timestamp.
func (i Interval) Daily() bool {
	return intervalDurations[i] >= 24*time.Hour
}
