package rest

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Value is a single request parameter value. The Binance API accepts
// plain text, integer, and decimal parameters; keeping the variants
// distinct preserves the exact wire form of each one: integers never
// grow a decimal point and decimals never collapse into exponent
// notation or float artifacts.
type Value struct {
	kind valueKind
	str  string
	num  int64
	dec  decimal.Decimal
}

type valueKind int

const (
	kindString valueKind = iota
	kindInteger
	kindDecimal
)

// String wraps a plain text value.
func String(v string) Value {
	return Value{kind: kindString, str: v}
}

// Integer wraps an integer value.
func Integer(v int64) Value {
	return Value{kind: kindInteger, num: v}
}

// Decimal wraps a decimal value.
func Decimal(v decimal.Decimal) Value {
	return Value{kind: kindDecimal, dec: v}
}

// String returns the wire form of the value.
func (v Value) String() string {
	switch v.kind {
	case kindInteger:
		return strconv.FormatInt(v.num, 10)
	case kindDecimal:
		return v.dec.String()
	default:
		return v.str
	}
}

// Params is an ordered collection of request parameters with unique
// keys. Encode renders the canonical query string that both gets
// signed and goes on the wire, so the signed bytes always match the
// transmitted bytes exactly.
type Params struct {
	entries []paramEntry
}

type paramEntry struct {
	key   string
	value Value
}

// NewParams creates an empty parameter collection.
func NewParams() *Params {
	return &Params{}
}

// Set adds a parameter, replacing any existing value for the key.
func (p *Params) Set(key string, value Value) {
	for i := range p.entries {
		if p.entries[i].key == key {
			p.entries[i].value = value
			return
		}
	}
	p.entries = append(p.entries, paramEntry{key: key, value: value})
}

// Get returns the value for a key and whether it is present.
func (p *Params) Get(key string) (Value, bool) {
	for _, e := range p.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return Value{}, false
}

// Has reports whether a key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.entries)
}

// Clone returns an independent copy of the parameters.
func (p *Params) Clone() *Params {
	clone := &Params{entries: make([]paramEntry, len(p.entries))}
	copy(clone.entries, p.entries)
	return clone
}

// Encode renders the canonical query string: keys sorted in byte
// order, key=value pairs joined with "&", and values in their plain
// wire form. No URL escaping is applied; the Binance parameter
// vocabulary is URL-safe and the signature must be computed over the
// same bytes the exchange receives.
func (p *Params) Encode() string {
	if len(p.entries) == 0 {
		return ""
	}

	sorted := make([]paramEntry, len(p.entries))
	copy(sorted, p.entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].key < sorted[j].key
	})

	var b strings.Builder
	for i, e := range sorted {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(e.key)
		b.WriteByte('=')
		b.WriteString(e.value.String())
	}
	return b.String()
}
