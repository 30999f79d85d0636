package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	EUR = "EUR"

	// minorDigits is the number of minor-unit digits of EUR.
	minorDigits = 2
)

var ErrInvalidAmount = errors.New("invalid amount")

var symbols = map[string]string{
	EUR: "€",
}

// ToDecimal converts minor units into a major-unit decimal (cents to euros).
func ToDecimal(minor int64) decimal.Decimal {
	return decimal.New(minor, -minorDigits)
}

// FromDecimal converts a major-unit decimal into minor units, rounding half away from zero.
func FromDecimal(d decimal.Decimal) int64 {
	return d.Shift(minorDigits).Round(0).IntPart()
}

// Format renders an amount in EUR minor units, e.g. 450 -> "€4.50".
func Format(minor int64) string {
	return FormatCurrency(minor, EUR)
}

func FormatCurrency(minor int64, currency string) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	value := ToDecimal(minor).StringFixed(minorDigits)
	if symbol, ok := symbols[currency]; ok {
		return sign + symbol + value
	}
	return sign + value + " " + currency
}

// Parse is the inverse of Format. It accepts an optional currency symbol or code.
func Parse(s string) (int64, error) {
	raw := strings.TrimSpace(s)
	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")
	for code, symbol := range symbols {
		raw = strings.TrimPrefix(raw, symbol)
		raw = strings.TrimSpace(strings.TrimSuffix(raw, code))
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.Exponent() < -minorDigits && !d.Equal(d.Round(minorDigits)) {
		return 0, fmt.Errorf("%w: more than %d decimals in %q", ErrInvalidAmount, minorDigits, s)
	}

	minor := FromDecimal(d)
	if negative {
		minor = -minor
	}
	return minor, nil
}
