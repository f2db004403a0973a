package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "GIN_MODE", "STORAGE_DRIVER", "DATA_DIR", "DB_SOURCE", "LOG_LEVEL",
		"LOG_FORMAT", "CORS_ORIGINS", "WRITE_RATE_PER_MINUTE", "WRITE_RATE_BURST", "TIMEZONE", "SHUTDOWN_TIMEOUT", "TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverFile, cfg.StorageDriver)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 30, cfg.WriteRate)
	assert.Equal(t, 10, cfg.WriteBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("DB_SOURCE", "/tmp/site.db")
	t.Setenv("CORS_ORIGINS", "https://shrikrishna.example, http://localhost:5173 ,")
	t.Setenv("TIMEZONE", "Asia/Kolkata")
	t.Setenv("WRITE_RATE_PER_MINUTE", "0")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "/tmp/site.db", cfg.DBSource)
	assert.Equal(t, []string{"https://shrikrishna.example", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "Asia/Kolkata", cfg.Location.String())
	assert.Equal(t, 0, cfg.WriteRate)
	assert.Equal(t, "Asia/Kolkata", cfg.Now().Location().String())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.4"}, cfg.TrustedProxies)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown driver":    {"STORAGE_DRIVER": "mongo"},
		"postgres no dsn":   {"STORAGE_DRIVER": "postgres", "DB_SOURCE": ""},
		"bad rate":          {"WRITE_RATE_PER_MINUTE": "lots"},
		"negative burst":    {"WRITE_RATE_BURST": "-2"},
		"bad timezone":      {"TIMEZONE": "Mars/Olympus"},
		"bad shutdown time": {"SHUTDOWN_TIMEOUT": "soon"},
		"bad gin mode":      {"GIN_MODE": "production"},
		"bad proxy":         {"TRUSTED_PROXIES": "10.0.0.0/8,proxy.local"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("STORAGE_DRIVER", "file")
			t.Setenv("GIN_MODE", "")
			t.Setenv("TRUSTED_PROXIES", "")
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
