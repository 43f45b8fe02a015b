package orders

import (
	"github.com/Mukul2425/Binance-Futures-Bot/internal/rest"
)

// GTC (good till canceled) is the only time in force the bot submits.
const timeInForceGTC = "GTC"

// BuildParams renders a validated order into wire parameters. The
// assembly is keyed on the order type alone, so a MARKET order never
// carries price, stopPrice, or timeInForce even if the Request holds
// leftover values. STOP_LIMIT maps to the futures API type STOP.
func BuildParams(req *Request) *rest.Params {
	params := rest.NewParams()
	params.Set("symbol", rest.String(req.Symbol))
	params.Set("side", rest.String(string(req.Side)))
	params.Set("type", rest.String(wireType(req.Type)))
	params.Set("quantity", rest.Decimal(req.Quantity))

	switch req.Type {
	case OrderTypeLimit:
		params.Set("price", rest.Decimal(req.Price))
		params.Set("timeInForce", rest.String(timeInForceGTC))
	case OrderTypeStopLimit:
		params.Set("price", rest.Decimal(req.Price))
		params.Set("stopPrice", rest.Decimal(req.StopPrice))
		params.Set("timeInForce", rest.String(timeInForceGTC))
	}

	return params
}

// wireType maps the CLI order type onto the futures API order type
func wireType(t OrderType) string {
	if t == OrderTypeStopLimit {
		return "STOP"
	}
	return string(t)
}
