package bootstrap

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

const (
	// LogFileTimestampFormat sorts lexically in time order
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many older session logs survive startup cleanup
	LogFileRetentionCount = 9
)

// Log messages
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSkinBot     = "Starting SkinBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	LogMsgCatalogLoaded       = "Catalog loaded"
	LogMsgStorageReady        = "Storage ready"
	LogMsgMigrationsApplied   = "Database migrations applied"
)

// Error messages
const (
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	ErrMsgFailedSchema        = "failed to initialize schema validator"
	ErrMsgFailedCreateDataDir = "failed to create data directory"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrate       = "failed to apply migrations"
)

// Shutdown messages
const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSchedulerStopTimeout = "Scheduler did not stop before the deadline"
	LogMsgBotsDrainTimeout     = "Chat bots did not finish in-flight updates before the deadline"
	LogMsgShutdownComplete     = "Shutdown complete"
)

// CheckStorage names the storage check reported by /readyz
const CheckStorage = "storage"
