package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the trading bot
type Config struct {
	Binance BinanceConfig `json:"binance"`
	Logging LoggingConfig `json:"logging"`
}

// BinanceConfig holds Binance API configuration
type BinanceConfig struct {
	APIKey     string        `json:"api_key"`
	SecretKey  string        `json:"secret_key"`
	BaseURL    string        `json:"base_url"`
	Timeout    time.Duration `json:"timeout"`
	RecvWindow int64         `json:"recv_window"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`        // empty disables file output
	MaxSize    int    `json:"max_size"`    // MB
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"` // days, 0 keeps rotated files indefinitely
	Console    bool   `json:"console"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{
		Binance: BinanceConfig{
			APIKey:     getEnv("BINANCE_API_KEY", ""),
			SecretKey:  getEnv("BINANCE_API_SECRET", ""),
			BaseURL:    getEnv("BINANCE_BASE_URL", "https://testnet.binancefuture.com"),
			Timeout:    getEnvAsDuration("BINANCE_TIMEOUT", "10s"),
			RecvWindow: getEnvAsInt64("BINANCE_RECV_WINDOW", 5000),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       getEnv("LOG_FILE", "logs/trading_bot.log"),
			MaxSize:    getEnvAsInt("LOG_MAX_SIZE", 1),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvAsInt("LOG_MAX_AGE", 0),
			Console:    getEnvAsBool("LOG_CONSOLE", true),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Binance.APIKey == "" {
		return fmt.Errorf("BINANCE_API_KEY is required")
	}
	if c.Binance.SecretKey == "" {
		return fmt.Errorf("BINANCE_API_SECRET is required")
	}
	if c.Binance.BaseURL == "" {
		return fmt.Errorf("BINANCE_BASE_URL must not be empty")
	}
	if c.Binance.Timeout <= 0 {
		return fmt.Errorf("invalid timeout: %v", c.Binance.Timeout)
	}
	if c.Binance.RecvWindow <= 0 {
		return fmt.Errorf("invalid recv window: %d", c.Binance.RecvWindow)
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if int64Value, err := strconv.ParseInt(value, 10, 64); err == nil {
			return int64Value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
