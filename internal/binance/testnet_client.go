package binance

import (
	"github.com/rs/zerolog"

	"github.com/Mukul2425/Binance-Futures-Bot/internal/auth"
	"github.com/Mukul2425/Binance-Futures-Bot/internal/config"
	"github.com/Mukul2425/Binance-Futures-Bot/internal/rest"
)

// FuturesTestnetBaseURL is the USDT-M futures testnet REST endpoint
const FuturesTestnetBaseURL = "https://testnet.binancefuture.com"

// NewFuturesClient creates a futures client from configuration. The
// configured base URL is honored as-is, which lets tests point the
// client at a local server.
func NewFuturesClient(cfg *config.BinanceConfig, logger zerolog.Logger) (*Client, error) {
	signer := auth.NewSignerWithRecvWindow(cfg.APIKey, cfg.SecretKey, cfg.RecvWindow)
	restClient := rest.NewClient(
		cfg.BaseURL,
		signer,
		rest.WithTimeout(cfg.Timeout),
		rest.WithLogger(logger.With().Str("component", "rest").Logger()),
	)

	return NewClient(restClient, logger)
}

// NewTestnetFuturesClient creates a futures client pinned to the
// Binance testnet, ignoring any base URL in the configuration
func NewTestnetFuturesClient(cfg *config.BinanceConfig, logger zerolog.Logger) (*Client, error) {
	pinned := *cfg
	pinned.BaseURL = FuturesTestnetBaseURL
	return NewFuturesClient(&pinned, logger)
}
