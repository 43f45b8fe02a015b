package binance

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Mukul2425/Binance-Futures-Bot/internal/orders"
	"github.com/Mukul2425/Binance-Futures-Bot/internal/rest"
)

const orderEndpoint = "/fapi/v1/order"

// Client wraps the REST dispatcher with USDT-M futures order
// operations. Validation, API, network, and response errors pass
// through unmodified so callers can tell the kinds apart with
// errors.As.
type Client struct {
	restClient *rest.Client
	logger     zerolog.Logger
}

// NewClient creates a new futures client
func NewClient(restClient *rest.Client, logger zerolog.Logger) (*Client, error) {
	if restClient == nil {
		return nil, fmt.Errorf("rest client is required")
	}

	return &Client{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// Close releases the underlying transport
func (c *Client) Close() {
	c.restClient.Close()
}

// PlaceOrder submits a validated order and normalizes the response
func (c *Client) PlaceOrder(ctx context.Context, order *orders.Request) (*OrderResult, error) {
	summary := c.logger.Info().
		Str("symbol", order.Symbol).
		Str("side", string(order.Side)).
		Str("type", string(order.Type)).
		Str("quantity", order.Quantity.String())
	if order.Type != orders.OrderTypeMarket {
		summary = summary.Str("price", order.Price.String())
	}
	if order.Type == orders.OrderTypeStopLimit {
		summary = summary.Str("stop_price", order.StopPrice.String())
	}
	summary.Msg("Placing futures order")

	payload, err := c.restClient.SignedRequest(ctx, http.MethodPost, orderEndpoint, orders.BuildParams(order))
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("symbol", order.Symbol).
			Str("side", string(order.Side)).
			Str("type", string(order.Type)).
			Msg("Failed to place futures order")
		return nil, err
	}

	result, err := ExtractOrderResult(payload)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("symbol", order.Symbol).
			Msg("Order response missing expected fields")
		return nil, err
	}

	c.logger.Info().
		Int64("order_id", result.OrderID).
		Str("status", result.Status).
		Str("executed_qty", result.ExecutedQty).
		Str("avg_price", result.AvgPrice).
		Msg("Futures order placed successfully")

	return result, nil
}

// CancelOrder cancels an active order by exchange order ID
func (c *Client) CancelOrder(ctx context.Context, symbol string, orderID int64) (*OrderResult, error) {
	if err := checkOrderRef(symbol, orderID); err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("symbol", symbol).
		Int64("order_id", orderID).
		Msg("Canceling futures order")

	payload, err := c.restClient.SignedRequest(ctx, http.MethodDelete, orderEndpoint, orderRefParams(symbol, orderID))
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("symbol", symbol).
			Int64("order_id", orderID).
			Msg("Failed to cancel futures order")
		return nil, err
	}

	result, err := ExtractOrderResult(payload)
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Int64("order_id", result.OrderID).
		Str("status", result.Status).
		Msg("Futures order canceled")

	return result, nil
}

// GetOrder queries the current state of an order by exchange order ID
func (c *Client) GetOrder(ctx context.Context, symbol string, orderID int64) (*OrderResult, error) {
	if err := checkOrderRef(symbol, orderID); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("symbol", symbol).
		Int64("order_id", orderID).
		Msg("Querying futures order")

	payload, err := c.restClient.SignedRequest(ctx, http.MethodGet, orderEndpoint, orderRefParams(symbol, orderID))
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("symbol", symbol).
			Int64("order_id", orderID).
			Msg("Failed to query futures order")
		return nil, err
	}

	return ExtractOrderResult(payload)
}

func checkOrderRef(symbol string, orderID int64) error {
	if symbol == "" {
		return &orders.ValidationError{Reason: "symbol must not be empty"}
	}
	if orderID <= 0 {
		return &orders.ValidationError{Reason: "order ID must be greater than 0"}
	}
	return nil
}

func orderRefParams(symbol string, orderID int64) *rest.Params {
	params := rest.NewParams()
	params.Set("symbol", rest.String(symbol))
	params.Set("orderId", rest.Integer(orderID))
	return params
}
