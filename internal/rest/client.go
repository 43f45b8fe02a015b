package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mukul2425/Binance-Futures-Bot/internal/auth"
)

// Client executes signed REST calls against a Binance futures API
// endpoint. Every call is a single attempt: no retries, backoff, or
// throttling, so an order is never accidentally submitted twice.
type Client struct {
	baseURL    string
	httpClient *http.Client
	signer     *auth.Signer
	logger     zerolog.Logger
}

// Option configures the client
type Option func(*Client)

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger for wire-level tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new REST client
func NewClient(baseURL string, signer *auth.Signer, opts ...Option) *Client {
	client := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		signer: signer,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the HTTP timeout
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// Close releases idle transport connections
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// SignedRequest executes one signed request and classifies the outcome.
// A fresh timestamp and recvWindow are stamped onto a copy of params,
// the canonical query string is signed, and the signature parameter is
// appended after the signed payload. GET requests carry the canonical
// string without a signature parameter; all other methods append it.
// The returned payload is decoded JSON with numbers as json.Number.
func (c *Client) SignedRequest(ctx context.Context, method, path string, params *Params) (any, error) {
	if c.signer == nil {
		return nil, fmt.Errorf("signer required for signed request")
	}

	if params == nil {
		params = NewParams()
	} else {
		params = params.Clone()
	}
	params.Set("timestamp", Integer(time.Now().UnixMilli()))
	params.Set("recvWindow", Integer(c.signer.RecvWindow()))

	canonical := params.Encode()
	signature := c.signer.Sign(canonical)

	// Binance expects every parameter in the query string, even for
	// POST and DELETE.
	query := canonical
	if method != http.MethodGet {
		query = canonical + "&signature=" + signature
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-MBX-APIKEY", c.signer.APIKey())

	// The signature and the secret never reach the log.
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("params", canonical).
		Msg("Sending request to Binance")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("body", string(body)).
		Msg("Received response from Binance")

	return classifyResponse(resp.StatusCode, body)
}
