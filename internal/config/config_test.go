package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Equal(t, StorageFile, cfg.StorageBackend)
		assert.Equal(t, "skins.json", cfg.CatalogPath)
		assert.Equal(t, "inventories", cfg.InventoryDir)
		assert.Equal(t, "blocklist.json", cfg.BlocklistPath)
		assert.Equal(t, []string{"1781542224"}, cfg.AdminUserIDs)
		assert.Equal(t, 600*time.Second, cfg.MarketRefreshInterval)
		assert.Equal(t, "@every 1m", cfg.MarketRefreshSchedule)
		assert.Equal(t, 10000, cfg.AddQuantityLimit)
		assert.Equal(t, 1000, cfg.RemoveQuantityLimit)
		assert.Equal(t, 2*time.Minute, cfg.ConfirmationTTL)
		assert.Empty(t, cfg.MarketURL)
		assert.False(t, cfg.HasBot())
		assert.False(t, cfg.UsesPostgres())
	})

	t.Run("from environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")
		t.Setenv("ADMIN_USER_IDS", "1781542224,discord-42")
		t.Setenv("MARKET_URL", "https://market.example/api")
		t.Setenv("MARKET_REFRESH_INTERVAL", "5m")
		t.Setenv("STORAGE_BACKEND", "Postgres")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("TELEGRAM_TOKEN", "tg")
		t.Setenv("DISCORD_FORCE_UPDATE", "true")
		t.Setenv("CONFIRMATION_TTL", "30s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, []string{"1781542224", "discord-42"}, cfg.AdminUserIDs)
		assert.Equal(t, "https://market.example/api", cfg.MarketURL)
		assert.Equal(t, 5*time.Minute, cfg.MarketRefreshInterval)
		assert.True(t, cfg.UsesPostgres())
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.True(t, cfg.HasBot())
		assert.True(t, cfg.DiscordForce)
		assert.Equal(t, 30*time.Second, cfg.ConfirmationTTL)
	})

	t.Run("legacy variable names", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "k")
		t.Setenv("TOKEN", "legacy-token")
		t.Setenv("URL", "https://legacy.example/prices")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "legacy-token", cfg.TelegramToken)
		assert.Equal(t, "https://legacy.example/prices", cfg.MarketURL)
	})

	t.Run("new names win over legacy", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "k")
		t.Setenv("TOKEN", "legacy-token")
		t.Setenv("TELEGRAM_TOKEN", "new-token")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "new-token", cfg.TelegramToken)
	})

	t.Run("missing API_KEY", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", false},
			{"max valid port", "65535", false},
			{"above max port", "65536", true},
			{"negative", "-1", true},
			{"float port", "8080.5", true},
			{"empty string uses default", "", false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("API_KEY", "test-key")
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		contains string
	}{
		{"unknown log level", map[string]string{"LOG_LEVEL": "verbose"}, "LogLevel (oneof)"},
		{"unknown log format", map[string]string{"LOG_FORMAT": "xml"}, "LogFormat (oneof)"},
		{"unknown storage backend", map[string]string{"STORAGE_BACKEND": "redis"}, "StorageBackend (oneof)"},
		{"market url not a url", map[string]string{"MARKET_URL": "not a url"}, "MarketURL (url)"},
		{"refresh interval too small", map[string]string{"MARKET_REFRESH_INTERVAL": "10ms"}, "MarketRefreshInterval (min)"},
		{"zero add limit", map[string]string{"ADD_QUANTITY_LIMIT": "0"}, "AddQuantityLimit (min)"},
		{"zero workers", map[string]string{"WORKER_COUNT": "0"}, "Workers (min)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv("API_KEY", "k")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), ErrMsgInvalidConfig)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "testuser",
		DBPassword: "p@ss:word",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "testdb",
	}

	assert.Equal(t, "postgres://testuser:p@ss:word@db:5433/testdb?sslmode=disable", cfg.GetDBConnString())
}

func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	})

	t.Run("custom", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "not-a-number")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
	})
}

// clearEnvVars unsets every variable Load reads. t.Setenv first so the
// original values are restored after the test.
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR", "SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"TRUSTED_PROXIES", "CATALOG_PATH", "CATALOG_SCHEMA_PATH", "INFO_DIR", "IMAGE_BASE_URL",
		"MARKET_URL", "MARKET_REFRESH_INTERVAL", "MARKET_REFRESH_SCHEDULE", "MARKET_TIMEOUT",
		"STORAGE_BACKEND", "INVENTORY_DIR", "BLOCKLIST_PATH",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME",
		"ADMIN_USER_IDS", "TELEGRAM_TOKEN", "TELEGRAM_API_ENDPOINT", "DISCORD_TOKEN", "DISCORD_APP_ID",
		"DISCORD_FORCE_UPDATE", "ADD_QUANTITY_LIMIT", "REMOVE_QUANTITY_LIMIT", "CONFIRMATION_TTL",
		"CONFIRMATION_CAPACITY", "RESOLVER_CACHE_SIZE", "WORKER_COUNT", "WORKER_QUEUE_SIZE",
		"TOKEN", "URL",
	}

	for _, key := range envVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
