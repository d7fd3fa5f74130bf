package config

import (
	"os"
	"strconv"
	"strings"

	"gotrends/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig
	Output OutputConfig
	Plot   PlotConfig
	Log    LogConfig
}

// DataConfig holds the input dataset settings
type DataConfig struct {
	File         string
	TargetColumn string // empty selects the first numeric column
}

// OutputConfig holds where artifacts are written
type OutputConfig struct {
	Dir        string
	HTMLReport string // empty disables the interactive report
}

// PlotConfig holds figure rendering settings
type PlotConfig struct {
	HistogramBins int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Data:   DataConfig{File: "data.csv"},
		Output: OutputConfig{Dir: "."},
		Plot:   PlotConfig{HistogramBins: 20},
		Log:    LogConfig{Level: "INFO"},
	}
}

// Load reads configuration from a .env file (if any) and environment variables and validates it
func Load() (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	config := &Config{
		Data: DataConfig{
			File:         getEnvOrDefault("DATA_FILE", "data.csv"),
			TargetColumn: strings.TrimSpace(os.Getenv("TARGET_COLUMN")),
		},
		Output: OutputConfig{
			Dir:        getEnvOrDefault("OUTPUT_DIR", "."),
			HTMLReport: getEnvOrDefault("HTML_REPORT", ""),
		},
		Plot: PlotConfig{
			HistogramBins: getEnvIntOrDefault("HIST_BINS", 20),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Validate checks required fields
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.File) == "" {
		return errors.ConfigInvalid("data file is required")
	}
	if c.Output.Dir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if c.Plot.HistogramBins <= 0 {
		return errors.ConfigInvalid("histogram bins must be positive")
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
