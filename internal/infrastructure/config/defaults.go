package config

import "time"

const (
	DefaultSchema         = "public"
	DefaultYahooAPIBase   = "https://query1.finance.yahoo.com"
	DefaultUserAgent      = "Mozilla/5.0 (compatible; commodities-etl/1.0)"
	DefaultRequestTimeout = 10 * time.Second
	DefaultRunLockTTL     = 15 * time.Minute
	DefaultPGMaxConns     = 2
	DefaultPGMinConns     = 1
	DefaultPGMaxConnIdle  = 2 * time.Minute
)
