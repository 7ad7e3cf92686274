package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Paths    PathConfig `validate:"required"`
	Analysis AnalysisConfig
	Logging  LoggingConfig
}

// PathConfig holds file system paths. DataRoot is the sandbox boundary:
// every dataset path is resolved relative to it and must stay inside it.
type PathConfig struct {
	DataRoot string `validate:"required"`
}

// AnalysisConfig holds tunables for the analysis operations
type AnalysisConfig struct {
	PreviewRows   int
	Contamination float64
	ForestSeed    int64
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Paths:    loadPathConfig(),
		Analysis: loadAnalysisConfig(),
		Logging:  loadLoggingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func loadPathConfig() PathConfig {
	return PathConfig{
		DataRoot: getEnvOrDefault("DATA_ROOT", ""),
	}
}

func loadAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		PreviewRows:   getEnvIntOrDefault("PREVIEW_ROWS", 5),
		Contamination: getEnvFloatOrDefault("CONTAMINATION", 0.1),
		ForestSeed:    int64(getEnvIntOrDefault("FOREST_SEED", 42)),
	}
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}
}

func validateConfig(config *Config) error {
	if config.Paths.DataRoot == "" {
		return fmt.Errorf("DATA_ROOT is required")
	}
	info, err := os.Stat(config.Paths.DataRoot)
	if err != nil {
		return fmt.Errorf("DATA_ROOT %q is not accessible: %w", config.Paths.DataRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("DATA_ROOT %q is not a directory", config.Paths.DataRoot)
	}
	if config.Analysis.PreviewRows <= 0 {
		return fmt.Errorf("PREVIEW_ROWS must be positive")
	}
	if config.Analysis.Contamination <= 0 || config.Analysis.Contamination > 0.5 {
		return fmt.Errorf("CONTAMINATION must be in (0, 0.5]")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
