// Package config provides configuration management for the application
package config

import (
	"os"
	"strconv"
	"time"
)

// ServerConfig holds the HTTP server and document processing settings
type ServerConfig struct {
	Port string
	// DataDir receives uploaded documents
	DataDir string
	// RoomsFile is the canonical room registry
	RoomsFile string
	// PdftotextBinary locates the text-extraction tool
	PdftotextBinary string
	// ScheduleSheet is the workbook sheet holding the exam timetable
	ScheduleSheet string
	// ScheduleSkipRows counts title rows above the time-slot header
	ScheduleSkipRows int
}

// RedisConfig holds Redis/Valkey configuration
type RedisConfig struct {
	Enabled bool
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// TTL for stored record sets (0 means no expiration)
	RecordTTL time.Duration
}

// GetServerConfig loads server configuration from environment variables
func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:             getEnv("PORT", "8080"),
		DataDir:          getEnv("DATA_DIR", "./data"),
		RoomsFile:        getEnv("ROOMS_FILE", "./data/classrooms.txt"),
		PdftotextBinary:  getEnv("PDFTOTEXT_BIN", "pdftotext"),
		ScheduleSheet:    getEnv("SCHEDULE_SHEET", "Sheet1"),
		ScheduleSkipRows: getEnvInt("SCHEDULE_SKIP_ROWS", 2),
	}
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables
func GetRedisConfig() RedisConfig {
	// Parse TTL from environment variable (in hours)
	ttlHours := getEnvInt("REDIS_RECORD_TTL_HOURS", 24)
	ttl := time.Duration(ttlHours) * time.Hour

	return RedisConfig{
		Enabled:   getEnvBool("REDIS_ENABLED", false),
		URI:       getEnv("REDIS_URI", ""),
		Host:      getEnv("REDIS_HOST", "localhost"),
		Port:      getEnv("REDIS_PORT", "6379"),
		Username:  getEnv("REDIS_USERNAME", ""),
		Password:  getEnv("REDIS_PASSWORD", ""),
		DB:        getEnvInt("REDIS_DB", 0),
		KeyPrefix: getEnv("REDIS_KEY_PREFIX", "emptyrooms:"),
		RecordTTL: ttl,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvInt retrieves an integer environment variable
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
