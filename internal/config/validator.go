package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must always be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// PostgresEnvVars are required when STORAGE_BACKEND=postgres
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// insecureExamples maps variables to the placeholder values shipped in .env.example
var insecureExamples = []struct {
	key, value, warning string
}{
	{"DB_PASSWORD", "change_this_secure_password", "DB_PASSWORD appears to be using the example value - please use a secure password"},
	{"API_KEY", "generate_with_openssl_rand_hex_32", "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"},
}

// ValidateEnv checks the schema version and that required variables are set
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := RequiredEnvVars
	if strings.EqualFold(os.Getenv("STORAGE_BACKEND"), StoragePostgres) {
		required = append(append([]string{}, required...), PostgresEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and also flags example placeholder values
// and the absence of any bot token.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, ex := range insecureExamples {
		if os.Getenv(ex.key) == ex.value {
			warnings = append(warnings, ex.warning)
		}
	}
	if os.Getenv("TELEGRAM_TOKEN") == "" && os.Getenv(legacyTokenVar) == "" && os.Getenv("DISCORD_TOKEN") == "" {
		warnings = append(warnings, "neither TELEGRAM_TOKEN nor DISCORD_TOKEN is set - only the HTTP API will run")
	}
	return warnings, nil
}
