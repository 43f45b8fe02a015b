package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// DefaultRecvWindow is the request validity window in milliseconds.
const DefaultRecvWindow = 5000

// Signer handles HMAC-SHA256 signing for Binance API requests
type Signer struct {
	apiKey     string
	secret     []byte
	recvWindow int64
}

// NewSigner creates a new signer with the default recv window
func NewSigner(apiKey, apiSecret string) *Signer {
	return NewSignerWithRecvWindow(apiKey, apiSecret, DefaultRecvWindow)
}

// NewSignerWithRecvWindow creates a new signer with a custom recv window
func NewSignerWithRecvWindow(apiKey, apiSecret string, recvWindow int64) *Signer {
	return &Signer{
		apiKey:     apiKey,
		secret:     []byte(apiSecret),
		recvWindow: recvWindow,
	}
}

// APIKey returns the API key
func (s *Signer) APIKey() string {
	return s.apiKey
}

// RecvWindow returns the recv window value
func (s *Signer) RecvWindow() int64 {
	return s.recvWindow
}

// Sign generates the lowercase hex HMAC-SHA256 signature for a payload.
// The payload must be the exact canonical query string sent on the
// wire; the exchange recomputes the signature over those bytes.
func (s *Signer) Sign(payload string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

// ValidateSignature verifies a signature against the given payload
func (s *Signer) ValidateSignature(payload, signature string) bool {
	expected := s.Sign(payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}
