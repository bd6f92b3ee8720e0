package config

import (
	"errors"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	infraconfig "commodities-etl/internal/infrastructure/config"

	"github.com/joho/godotenv"
)

const defaultDBUser = "postgres"

type Config struct {
	// Common
	Env      string
	LogLevel string
	// Destination database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBName      string
	DBUser      string
	DBPass      string
	DBSSLMode   string
	DBSchema    string
	// Provider
	Provider       string
	YahooAPIBase   string
	UserAgent      string
	RequestTimeout time.Duration
	FetchRetries   int
	// Run lock
	LockBackend   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RunLockTTL    time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func msDef(key string, def time.Duration) time.Duration {
	ms := atoiDef(getEnv(key, ""), int(def/time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}

// LoadDotenv merges files (".env" when none given) into the process
// environment. Variables already set win. A missing file is not an error.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:            getEnv("ENV", "local"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "postgres"),
		DBUser:         getEnv("DB_USER", defaultDBUser),
		DBPass:         getEnv("DB_PASS", ""),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBSchema:       getEnv("DB_SCHEMA", infraconfig.DefaultSchema),
		Provider:       getEnv("PROVIDER", "yahoo"),
		YahooAPIBase:   getEnv("YAHOO_API_BASE", infraconfig.DefaultYahooAPIBase),
		UserAgent:      getEnv("HTTP_USER_AGENT", infraconfig.DefaultUserAgent),
		RequestTimeout: msDef("REQUEST_TIMEOUT_MS", infraconfig.DefaultRequestTimeout),
		FetchRetries:   atoiDef(getEnv("FETCH_RETRIES", "0"), 0),
		LockBackend:    getEnv("LOCK_BACKEND", "none"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        atoiDef(getEnv("REDIS_DB", "0"), 0),
		RunLockTTL:     msDef("RUN_LOCK_TTL_MS", infraconfig.DefaultRunLockTTL),
	}
}

// DatabaseDSN returns DATABASE_URL when set, otherwise a postgres URL
// assembled from the DB_* parts.
func (c Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	if c.DBPass != "" {
		user := c.DBUser
		if user == "" {
			user = defaultDBUser
		}
		u.User = url.UserPassword(user, c.DBPass)
	} else if c.DBUser != "" {
		u.User = url.User(c.DBUser)
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DBSSLMode}}.Encode()
	}
	return u.String()
}
