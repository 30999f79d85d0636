package entities

import "time"

// Totals is a derived pricing snapshot in minor units. It is recomputed, never mutated.
type Totals struct {
	Subtotal     int64
	Shipping     int64
	CODFee       int64
	Tax          int64
	GrandTotal   int64
	FreeShipping bool
	// ShippingEstimated is set when Shipping is the configured default rather than a quoted price.
	ShippingEstimated bool
	Currency          string
}

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPaid           OrderStatus = "paid"
)

type OrderItem struct {
	ProductID int64
	Quantity  int
	UnitPrice int64
}

type OrderRequest struct {
	Items          []QuoteItem
	Currency       string
	ShippingMethod ShippingMethod
	PaymentMethod  PaymentMethod
	Address        Address
	QuotedShipping *int64
	QuotedAt       *time.Time
}

type Order struct {
	ID             int64
	PublicToken    string
	PaymentOrderID string
	IdempotencyKey string
	Status         OrderStatus

	ShippingMethod ShippingMethod
	PaymentMethod  PaymentMethod
	Address        Address
	Items          []OrderItem
	Totals         Totals

	PaymentIntentID string
	CreatedAt       time.Time
}

type PaymentSession struct {
	ClientSecret string
	Amount       int64
	ReturnURL    string
}
