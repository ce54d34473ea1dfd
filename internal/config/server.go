package config

import (
	"strings"
	"time"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

func GetPort() string {
	return GetEnvOrDefault("PORT", "8001")
}

// GetStoreBackend returns one of StoreMemory, StoreRedis or StoreSQLite.
func GetStoreBackend() string {
	return strings.ToLower(GetEnvOrDefault("STORE_BACKEND", StoreMemory))
}

func GetSQLitePath() string {
	return GetEnvOrDefault("SQLITE_PATH", "soulnest.db")
}

// GetAllowedOrigins returns the browser origins allowed to call the API.
// An empty list allows any origin.
func GetAllowedOrigins() []string {
	return splitList(GetEnvOrDefault("ALLOWED_ORIGINS", ""))
}

func GetShutdownTimeout() time.Duration {
	return parseEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
}
