package entities

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared with the backend contract.
const (
	CodeZoneUnavailable = "ZONE_UNAVAILABLE"
	CodeShippingChanged = "SHIPPING_CHANGED"
	CodeOutOfStock      = "OUT_OF_STOCK"
	CodeValidation      = "VALIDATION_ERROR"
)

var (
	ErrZoneUnavailable      = errors.New("shipping unavailable for this address")
	ErrInvalidQuoteRequest  = errors.New("invalid quote request")
	ErrOrderNotFound        = errors.New("order not found")
	ErrDuplicateOrder       = errors.New("order with this idempotency key already exists")
	ErrInvalidPaymentIntent = errors.New("invalid payment intent id")
	ErrPaymentInit          = errors.New("failed to start payment")
	ErrPaymentConfirm       = errors.New("failed to confirm payment")
	ErrOrderNotPayable      = errors.New("order is not awaiting card payment")
	ErrUnknownProduct       = errors.New("unknown product")
)

// NetworkError is a failed call: Status is 0 for transport failures, else the HTTP status.
type NetworkError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("network error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("network error: status %d", e.Status)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrZoneUnavailable && e.Code == CodeZoneUnavailable
}

// Temporary reports whether the same request may succeed if sent again.
func (e *NetworkError) Temporary() bool {
	return e.Status == 0 || e.Status >= http.StatusInternalServerError
}

type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ShippingChangedError carries both figures so the user can decide. Amounts are minor units.
type ShippingChangedError struct {
	QuotedTotal int64
	LockedTotal int64
}

func (e *ShippingChangedError) Error() string {
	return fmt.Sprintf("shipping changed: quoted total %d, locked total %d", e.QuotedTotal, e.LockedTotal)
}

type StockConflictError struct {
	Message string
}

func (e *StockConflictError) Error() string {
	if e.Message == "" {
		return "stock conflict"
	}
	return "stock conflict: " + e.Message
}

type OrderValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *OrderValidationError) Error() string {
	return "order rejected: " + e.Message
}

// IsTemporary reports whether err is a transport failure or 5xx worth retrying.
func IsTemporary(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne) && ne.Temporary()
}
