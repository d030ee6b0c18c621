package helper

import (
	"os"
	"strconv"

	database "github.com/yishak-cs/tea_alchemy/internal/database"
)

// AppConfig holds everything the server reads from the environment
type AppConfig struct {
	Port        string
	GinMode     string
	LogLevel    string
	LogFormat   string
	CatalogFile string // empty means the built-in catalog
	GraphSync   bool
	Neo4j       database.Config
}

// GraphSyncConfigured reports whether the catalog should be mirrored to Neo4j
func (c AppConfig) GraphSyncConfigured() bool {
	return c.GraphSync && c.Neo4j.URI != ""
}

// LoadAppConfig loads the server configuration from environment variables
func LoadAppConfig() AppConfig {
	return AppConfig{
		Port:        getEnvOrDefault("APP_PORT", "8080"),
		GinMode:     getEnvOrDefault("GIN_MODE", "release"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "json"),
		CatalogFile: getEnvOrDefault("CATALOG_FILE", ""),
		GraphSync:   getEnvBool("GRAPH_SYNC_ENABLED", false),
		Neo4j:       LoadConfigFromEnv(),
	}
}

// LoadConfigFromEnv loads Neo4j configuration from environment variables
func LoadConfigFromEnv() database.Config {
	return database.Config{
		URI:      getEnvOrDefault("NEO4J_URI", ""),
		Username: getEnvOrDefault("NEO4J_USERNAME", "neo4j"),
		Password: getEnvOrDefault("NEO4J_PASSWORD", ""),
		Database: getEnvOrDefault("NEO4J_DATABASE", "neo4j"),
	}
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
