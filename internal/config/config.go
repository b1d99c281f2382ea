package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CORSConfig holds the allowed frontend origin. "*" allows everyone,
// which matches the demo deployment default.
type CORSConfig struct {
	AllowedOrigin string `yaml:"allowed_origin"`
}

// MetricsConfig holds Prometheus settings
type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

// Load builds the configuration from environment variables. When
// CONFIG_FILE points at a YAML file, its values overlay the defaults
// before the environment is applied, so env vars always win.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		CORS: CORSConfig{
			AllowedOrigin: "*",
		},
		Metrics: MetricsConfig{
			Namespace: "aes_api",
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
		}
	}

	cfg.Server.Host = getEnv("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	cfg.CORS.AllowedOrigin = getEnv("FRONTEND_URL", cfg.CORS.AllowedOrigin)
	cfg.Metrics.Namespace = getEnv("METRICS_NAMESPACE", cfg.Metrics.Namespace)

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(`
Server: %s:%d
CORS origin: %s
Metrics namespace: %s`,
		c.Server.Host, c.Server.Port,
		c.CORS.AllowedOrigin,
		c.Metrics.Namespace,
	)
}
