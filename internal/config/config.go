// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=0,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	APIKey         string // API key for authentication
	TrustedProxies []string

	CatalogPath       string `validate:"required"`
	CatalogSchemaPath string
	InfoDir           string
	ImageBaseURL      string `validate:"omitempty,url"`

	MarketURL             string        `validate:"omitempty,url"`
	MarketRefreshInterval time.Duration `validate:"min=1s"`
	MarketRefreshSchedule string        `validate:"required"`
	MarketTimeout         time.Duration `validate:"min=1s"`

	StorageBackend    string `validate:"oneof=file postgres"`
	InventoryDir      string `validate:"required_if=StorageBackend file"`
	BlocklistPath     string `validate:"required_if=StorageBackend file"`
	DBUser            string
	DBPassword        string
	DBHost            string `validate:"required_if=StorageBackend postgres"`
	DBPort            string
	DBName            string `validate:"required_if=StorageBackend postgres"`
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	AdminUserIDs []string

	TelegramToken    string
	TelegramEndpoint string
	DiscordToken     string
	DiscordAppID     string
	DiscordForce     bool

	AddQuantityLimit     int           `validate:"min=1"`
	RemoveQuantityLimit  int           `validate:"min=1"`
	ConfirmationTTL      time.Duration `validate:"min=1s"`
	ConfirmationCapacity int           `validate:"min=1"`
	ResolverCacheSize    int           `validate:"min=1"`

	Workers     int `validate:"min=1"`
	WorkerQueue int `validate:"min=1"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A .env file is optional; real env vars win over it
	if err := godotenv.Load(); err != nil {
		slog.Debug(LogMsgEnvFileMissing)
	}

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "skinbot"),
		Version:     getEnv("VERSION", "dev"),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES", nil),

		CatalogPath:       getEnv("CATALOG_PATH", DefaultCatalogPath),
		CatalogSchemaPath: getEnv("CATALOG_SCHEMA_PATH", ""),
		InfoDir:           getEnv("INFO_DIR", ""),
		ImageBaseURL:      getEnv("IMAGE_BASE_URL", ""),

		MarketURL:             getEnv("MARKET_URL", getEnv(legacyURLVar, "")),
		MarketRefreshInterval: getEnvAsDuration("MARKET_REFRESH_INTERVAL", DefaultMarketInterval),
		MarketRefreshSchedule: getEnv("MARKET_REFRESH_SCHEDULE", DefaultMarketSchedule),
		MarketTimeout:         getEnvAsDuration("MARKET_TIMEOUT", DefaultMarketTimeout),

		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", StorageFile)),
		InventoryDir:      getEnv("INVENTORY_DIR", DefaultInventoryDir),
		BlocklistPath:     getEnv("BLOCKLIST_PATH", DefaultBlocklistPath),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "skinbot"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxIdle),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxLifetime),

		AdminUserIDs: getEnvAsList("ADMIN_USER_IDS", []string{DefaultAdminUserID}),

		TelegramToken:    getEnv("TELEGRAM_TOKEN", getEnv(legacyTokenVar, "")),
		TelegramEndpoint: getEnv("TELEGRAM_API_ENDPOINT", ""),
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:     getEnv("DISCORD_APP_ID", ""),
		DiscordForce:     getEnvAsBool("DISCORD_FORCE_UPDATE", false),

		AddQuantityLimit:     getEnvAsInt("ADD_QUANTITY_LIMIT", DefaultAddLimit),
		RemoveQuantityLimit:  getEnvAsInt("REMOVE_QUANTITY_LIMIT", DefaultRemoveLimit),
		ConfirmationTTL:      getEnvAsDuration("CONFIRMATION_TTL", DefaultConfirmationTTL),
		ConfirmationCapacity: getEnvAsInt("CONFIRMATION_CAPACITY", DefaultConfirmationCap),
		ResolverCacheSize:    getEnvAsInt("RESOLVER_CACHE_SIZE", DefaultResolverCacheSize),

		Workers:     getEnvAsInt("WORKER_COUNT", DefaultWorkers),
		WorkerQueue: getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueue),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgMissingAPIKey)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every failing variable
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	sort.Strings(fields)
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(fields, ", "))
}

// HasBot reports whether at least one chat frontend is configured
func (c *Config) HasBot() bool {
	return c.TelegramToken != "" || c.DiscordToken != ""
}

// UsesPostgres reports whether inventories live in PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.StorageBackend == StoragePostgres
}

// getEnv retrieves an environment variable or returns a default value.
// An empty value counts as unset.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
