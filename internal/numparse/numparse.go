// Package numparse turns user-entered text and loosely typed document values
// into decimals. Parsing never fails loudly: callers get ok=false and apply
// their own default.
package numparse

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Standardize strips thousands separators, underscores and surrounding
// whitespace so "1,250 " becomes "1250".
func Standardize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// ParseText parses user-entered text. It returns ok=false for empty input and
// for anything that is not a finite number once standardized.
func ParseText(raw string) (decimal.Decimal, bool) {
	s := Standardize(raw)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// TextOrZero parses raw and falls back to zero.
func TextOrZero(raw string) decimal.Decimal {
	d, _ := ParseText(raw)
	return d
}

// FromValue converts a decoded JSON/YAML/spreadsheet value to a decimal.
// Numbers convert directly, strings go through ParseText, and everything else
// (nil, bool, objects) is not numeric.
func FromValue(v interface{}) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return n, true
	case json.Number:
		return ParseText(n.String())
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	case float32:
		return FromValue(float64(n))
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case int32:
		return decimal.NewFromInt(int64(n)), true
	case string:
		return ParseText(n)
	default:
		return decimal.Zero, false
	}
}

// ValueOrZero converts v and falls back to zero.
func ValueOrZero(v interface{}) decimal.Decimal {
	d, _ := FromValue(v)
	return d
}

// IsBlank reports whether a decoded value counts as empty: nil or a string
// with only whitespace.
func IsBlank(v interface{}) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(s) == ""
	default:
		return false
	}
}
