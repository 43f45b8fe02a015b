package orders

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validate normalizes and checks raw order fields, returning a Request
// ready for the wire. Symbol, side, and order type are trimmed and
// uppercased before checking. A nil price or stop price means the
// caller did not provide one; zero is provided-but-invalid and gets a
// different message.
func Validate(symbol, side, orderType string, quantity decimal.Decimal, price, stopPrice *decimal.Decimal) (*Request, error) {
	normSymbol := strings.ToUpper(strings.TrimSpace(symbol))
	if normSymbol == "" {
		return nil, &ValidationError{Reason: "symbol must not be empty"}
	}

	normSide := Side(strings.ToUpper(strings.TrimSpace(side)))
	if normSide != SideBuy && normSide != SideSell {
		return nil, &ValidationError{Reason: "side must be either BUY or SELL"}
	}

	normType := OrderType(strings.ToUpper(strings.TrimSpace(orderType)))
	switch normType {
	case OrderTypeMarket, OrderTypeLimit, OrderTypeStopLimit:
	default:
		return nil, &ValidationError{Reason: "order type must be one of: MARKET, LIMIT, STOP_LIMIT"}
	}

	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, &ValidationError{Reason: "quantity must be greater than 0"}
	}

	normPrice, normStopPrice, err := checkPrices(normType, price, stopPrice)
	if err != nil {
		return nil, err
	}

	return &Request{
		Symbol:    normSymbol,
		Side:      normSide,
		Type:      normType,
		Quantity:  quantity,
		Price:     normPrice,
		StopPrice: normStopPrice,
	}, nil
}

// checkPrices applies the price/stopPrice rules for the order type.
// MARKET orders discard both values even when the caller supplied
// them; LIMIT orders discard the stop price the same way.
func checkPrices(orderType OrderType, price, stopPrice *decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	switch orderType {
	case OrderTypeLimit:
		if price == nil {
			return decimal.Decimal{}, decimal.Decimal{}, &ValidationError{Reason: "price is required for LIMIT orders"}
		}
		if err := requirePositive("price", *price); err != nil {
			return decimal.Decimal{}, decimal.Decimal{}, err
		}
		return *price, decimal.Decimal{}, nil

	case OrderTypeStopLimit:
		if price == nil {
			return decimal.Decimal{}, decimal.Decimal{}, &ValidationError{Reason: "price is required for STOP_LIMIT orders"}
		}
		if stopPrice == nil {
			return decimal.Decimal{}, decimal.Decimal{}, &ValidationError{Reason: "stop price is required for STOP_LIMIT orders"}
		}
		if err := requirePositive("price", *price); err != nil {
			return decimal.Decimal{}, decimal.Decimal{}, err
		}
		if err := requirePositive("stop price", *stopPrice); err != nil {
			return decimal.Decimal{}, decimal.Decimal{}, err
		}
		return *price, *stopPrice, nil

	default: // MARKET
		return decimal.Decimal{}, decimal.Decimal{}, nil
	}
}

func requirePositive(name string, value decimal.Decimal) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Reason: fmt.Sprintf("%s must be greater than 0", name)}
	}
	return nil
}
