package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve in minimal container images

	"github.com/joho/godotenv"
)

const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port            string
	GinMode         string
	StorageDriver   string
	DataDir         string // file driver
	DBSource        string // sqlite path or postgres DSN
	LogLevel        string
	LogFormat       string
	CORSOrigins     []string
	TrustedProxies  []string // IPs or CIDRs allowed to set X-Forwarded-For; empty trusts none
	WriteRate       int // form submissions per client per minute; 0 disables
	WriteBurst      int
	Location        *time.Location
	ShutdownTimeout time.Duration
}

// Load reads the environment, after applying an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", DriverFile)),
		DataDir:        getEnv("DATA_DIR", "./data"),
		DBSource:       getEnv("DB_SOURCE", "foodie.db"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE: unknown mode %q (want debug, release or test)", cfg.GinMode)
	}
	for _, p := range cfg.TrustedProxies {
		if _, err := netip.ParsePrefix(p); err == nil {
			continue
		}
		if _, err := netip.ParseAddr(p); err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: %q is not an IP or CIDR", p)
		}
	}

	switch cfg.StorageDriver {
	case DriverFile, DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER: unknown driver %q (want file, sqlite or postgres)", cfg.StorageDriver)
	}
	if cfg.StorageDriver == DriverPostgres && os.Getenv("DB_SOURCE") == "" {
		return nil, fmt.Errorf("DB_SOURCE: a postgres DSN is required when STORAGE_DRIVER=postgres")
	}

	var err error
	if cfg.WriteRate, err = getInt("WRITE_RATE_PER_MINUTE", 30); err != nil {
		return nil, err
	}
	if cfg.WriteBurst, err = getInt("WRITE_RATE_BURST", 10); err != nil {
		return nil, err
	}

	tz := getEnv("TIMEZONE", "Local")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	return cfg, nil
}

// Now is the clock for server-assigned dates, in the configured time zone.
func (c *Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: want a non-negative integer, got %q", key, v)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
