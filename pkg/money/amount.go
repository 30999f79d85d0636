package money

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a minor-unit amount that travels over JSON as a major-unit number (4.50).
type Amount int64

func (a Amount) Minor() int64 {
	return int64(a)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(ToDecimal(int64(a)).StringFixed(minorDigits)), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(data, `"`)
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	*a = Amount(FromDecimal(d))
	return nil
}

// Ptr returns a pointer to the amount, used for optional request fields.
func Ptr(minor int64) *Amount {
	a := Amount(minor)
	return &a
}
