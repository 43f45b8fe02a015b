package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// APIError represents a rejection reported by the exchange: an HTTP
// error status, a 200 response whose body carries a nonzero error
// code, or a body that could not be parsed at all. Code is 0 when the
// response carried no error code.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("Binance API error %d (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("Binance API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// IsAuthError checks if this is an authentication error
func (e *APIError) IsAuthError() bool {
	authCodes := map[int]bool{
		-1022: true, // Invalid signature
		-2014: true, // API key format invalid
		-2015: true, // Invalid API key, IP, or permissions
	}
	return authCodes[e.Code]
}

// IsOrderError checks if this is an order-related error
func (e *APIError) IsOrderError() bool {
	orderCodes := map[int]bool{
		-2010: true, // Insufficient balance or margin
		-2011: true, // Unknown order sent
		-2013: true, // Order does not exist
	}
	return orderCodes[e.Code]
}

// NetworkError represents a transport failure: DNS, connect, TLS,
// timeout, or a canceled context. The request may or may not have
// reached the exchange.
type NetworkError struct {
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling Binance: %v", e.Err)
}

// Unwrap exposes the transport cause
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// classifyResponse maps one completed HTTP exchange onto either a
// decoded success payload or an APIError. The error status, the
// 200-with-error-code body, and the unparseable body all land on the
// same error type so callers only discriminate by taxonomy, not by
// transport detail.
func classifyResponse(statusCode int, body []byte) (any, error) {
	payload, err := decodeBody(body)
	if err != nil {
		return nil, &APIError{
			StatusCode: statusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	code, msg := errorFields(payload)

	if statusCode >= 400 {
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return nil, &APIError{StatusCode: statusCode, Code: code, Message: msg}
	}

	// The exchange occasionally reports failures in a 200 body.
	if code != 0 {
		return nil, &APIError{StatusCode: statusCode, Code: code, Message: msg}
	}

	return payload, nil
}

// decodeBody decodes a JSON body keeping numbers as json.Number so
// order IDs and error codes survive without float truncation.
func decodeBody(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return payload, nil
}

// errorFields pulls the exchange error code and message out of an
// object body. Non-object bodies carry neither.
func errorFields(payload any) (int, string) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return 0, ""
	}

	code := 0
	if n, ok := obj["code"].(json.Number); ok {
		if v, err := n.Int64(); err == nil {
			code = int(v)
		}
	}

	msg := ""
	if s, ok := obj["msg"].(string); ok {
		msg = s
	}

	return code, msg
}
