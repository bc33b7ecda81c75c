package config

import "os"

// GetEnv retrieves an environment variable or returns a default value if it
// is unset or empty. The API server reads configuration through viper; this
// helper is for the standalone scripts under cmd/scripts.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
