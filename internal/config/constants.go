package config

import "time"

// Storage backends
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultCatalogPath       = "skins.json"
	DefaultInventoryDir      = "inventories"
	DefaultBlocklistPath     = "blocklist.json"
	DefaultAdminUserID       = "1781542224"
	DefaultMarketInterval    = 600 * time.Second
	DefaultMarketSchedule    = "@every 1m"
	DefaultMarketTimeout     = 30 * time.Second
	DefaultAddLimit          = 10000
	DefaultRemoveLimit       = 1000
	DefaultConfirmationTTL   = 2 * time.Minute
	DefaultConfirmationCap   = 10000
	DefaultResolverCacheSize = 4096
	DefaultWorkers           = 2
	DefaultWorkerQueue       = 16
	DefaultDBMaxConns        = 20
	DefaultDBMaxIdle         = 5 * time.Minute
	DefaultDBMaxLifetime     = 30 * time.Minute
)

// Legacy variable names still honored when the new ones are unset
const (
	legacyTokenVar = "TOKEN"
	legacyURLVar   = "URL"
)

const (
	ErrMsgMissingAPIKey  = "API_KEY environment variable must be set for security"
	ErrMsgInvalidPort    = "invalid PORT value"
	ErrMsgInvalidConfig  = "invalid configuration"
	LogMsgEnvFileMissing = "No .env file found, using process environment"
)
