package binance

import (
	"encoding/json"
	"fmt"
)

// OrderResult is the normalized view of an order response. ExecutedQty
// and AvgPrice keep the exchange's exact decimal strings rather than
// parsed floats; AvgPrice is empty when the response carried none.
// Raw holds the complete decoded body for diagnostics.
type OrderResult struct {
	OrderID     int64
	Status      string
	ExecutedQty string
	AvgPrice    string
	Raw         map[string]any
}

// UnexpectedResponseError reports a response the exchange accepted but
// whose body is missing or mistyping a mandatory field. It signals a
// contract defect, not a rejection, so it is distinct from APIError.
type UnexpectedResponseError struct {
	Reason string
}

// Error implements the error interface
func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected Binance response: %s", e.Reason)
}

// ExtractOrderResult normalizes a decoded order response body. The
// body must be a JSON object with an integral orderId; status defaults
// to UNKNOWN and executedQty to "0" when absent.
func ExtractOrderResult(payload any) (*OrderResult, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, &UnexpectedResponseError{Reason: "body is not a JSON object"}
	}

	raw, ok := obj["orderId"]
	if !ok {
		return nil, &UnexpectedResponseError{Reason: "missing orderId field"}
	}
	num, ok := raw.(json.Number)
	if !ok {
		return nil, &UnexpectedResponseError{Reason: "orderId is not an integer"}
	}
	orderID, err := num.Int64()
	if err != nil {
		return nil, &UnexpectedResponseError{Reason: "orderId is not an integer"}
	}

	result := &OrderResult{
		OrderID:     orderID,
		Status:      "UNKNOWN",
		ExecutedQty: "0",
		Raw:         obj,
	}

	if s, ok := obj["status"].(string); ok {
		result.Status = s
	}
	if v, ok := obj["executedQty"]; ok {
		result.ExecutedQty = fieldText(v)
	}
	if v, ok := obj["avgPrice"]; ok {
		result.AvgPrice = fieldText(v)
	}

	return result, nil
}

// fieldText renders a decoded JSON value as the text the exchange
// sent. Quantities and prices stay strings end to end; they are never
// parsed into floats.
func fieldText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
