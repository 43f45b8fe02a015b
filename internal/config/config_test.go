package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so ambient shell state
// cannot leak into a test. getEnv treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BINANCE_API_KEY", "BINANCE_API_SECRET", "BINANCE_BASE_URL",
		"BINANCE_TIMEOUT", "BINANCE_RECV_WINDOW",
		"LOG_LEVEL", "LOG_FILE", "LOG_MAX_SIZE", "LOG_MAX_BACKUPS",
		"LOG_MAX_AGE", "LOG_CONSOLE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults when only credentials are set", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BINANCE_API_KEY", "test-key")
		t.Setenv("BINANCE_API_SECRET", "test-secret")

		config, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-key", config.Binance.APIKey)
		assert.Equal(t, "test-secret", config.Binance.SecretKey)
		assert.Equal(t, "https://testnet.binancefuture.com", config.Binance.BaseURL)
		assert.Equal(t, 10*time.Second, config.Binance.Timeout)
		assert.Equal(t, int64(5000), config.Binance.RecvWindow)
		assert.Equal(t, "info", config.Logging.Level)
		assert.Equal(t, "logs/trading_bot.log", config.Logging.File)
		assert.Equal(t, 1, config.Logging.MaxSize)
		assert.Equal(t, 3, config.Logging.MaxBackups)
		assert.Equal(t, 0, config.Logging.MaxAge)
		assert.True(t, config.Logging.Console)
	})

	t.Run("reads overrides from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BINANCE_API_KEY", "test-key")
		t.Setenv("BINANCE_API_SECRET", "test-secret")
		t.Setenv("BINANCE_BASE_URL", "http://127.0.0.1:9999")
		t.Setenv("BINANCE_TIMEOUT", "2s")
		t.Setenv("BINANCE_RECV_WINDOW", "10000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FILE", "/tmp/bot.log")
		t.Setenv("LOG_MAX_SIZE", "5")
		t.Setenv("LOG_MAX_BACKUPS", "7")
		t.Setenv("LOG_MAX_AGE", "14")
		t.Setenv("LOG_CONSOLE", "false")

		config, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "http://127.0.0.1:9999", config.Binance.BaseURL)
		assert.Equal(t, 2*time.Second, config.Binance.Timeout)
		assert.Equal(t, int64(10000), config.Binance.RecvWindow)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Equal(t, "/tmp/bot.log", config.Logging.File)
		assert.Equal(t, 5, config.Logging.MaxSize)
		assert.Equal(t, 7, config.Logging.MaxBackups)
		assert.Equal(t, 14, config.Logging.MaxAge)
		assert.False(t, config.Logging.Console)
	})

	t.Run("falls back to defaults on malformed values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BINANCE_API_KEY", "test-key")
		t.Setenv("BINANCE_API_SECRET", "test-secret")
		t.Setenv("BINANCE_TIMEOUT", "soon")
		t.Setenv("BINANCE_RECV_WINDOW", "fast")
		t.Setenv("LOG_MAX_SIZE", "huge")
		t.Setenv("LOG_CONSOLE", "yep")

		config, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 10*time.Second, config.Binance.Timeout)
		assert.Equal(t, int64(5000), config.Binance.RecvWindow)
		assert.Equal(t, 1, config.Logging.MaxSize)
		assert.True(t, config.Logging.Console)
	})

	t.Run("errors when API key is missing", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BINANCE_API_SECRET", "test-secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BINANCE_API_KEY is required")
	})

	t.Run("errors when API secret is missing", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BINANCE_API_KEY", "test-key")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BINANCE_API_SECRET is required")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Binance: BinanceConfig{
				APIKey:     "k",
				SecretKey:  "s",
				BaseURL:    "https://testnet.binancefuture.com",
				Timeout:    10 * time.Second,
				RecvWindow: 5000,
			},
		}
	}

	t.Run("accepts a complete configuration", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects empty base URL", func(t *testing.T) {
		config := valid()
		config.Binance.BaseURL = ""
		err := config.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BINANCE_BASE_URL")
	})

	t.Run("rejects non-positive timeout", func(t *testing.T) {
		config := valid()
		config.Binance.Timeout = 0
		assert.Error(t, config.Validate())
	})

	t.Run("rejects non-positive recv window", func(t *testing.T) {
		config := valid()
		config.Binance.RecvWindow = -1
		assert.Error(t, config.Validate())
	})
}
