package config

import (
	"os"
	"strconv"
	"time"
)

// ServerConfig carries the HTTP server settings and the location of the SMS
// backup the store is seeded from at startup.
type ServerConfig struct {
	Port            string
	BackupPath      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnv("PORT", "8080"),
		BackupPath:      getEnv("SMS_BACKUP_PATH", "modified_sms_v2.xml"),
		ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		RequestTimeout:  getEnvAsDuration("SERVER_REQUEST_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// BenchConfig bounds benchmark runs requested through the API.
type BenchConfig struct {
	MaxQueryIDs int
}

func LoadBenchConfig() *BenchConfig {
	return &BenchConfig{
		MaxQueryIDs: getEnvAsInt("BENCH_MAX_QUERY_IDS", 1000),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			return duration
		}
	}
	return defaultVal
}
