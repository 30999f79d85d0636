package entities

import (
	"strings"
	"time"
)

const (
	SourceZone   = "zone"
	SourceLegacy = "legacy"
)

type QuoteItem struct {
	ProductID int64
	Quantity  int
}

// QuoteRequest is built fresh on every input change and never mutated.
type QuoteRequest struct {
	PostalCode    string
	Method        ShippingMethod
	PaymentMethod PaymentMethod
	Items         []QuoteItem
	Subtotal      int64
}

func NewQuoteRequest(postalCode string, method ShippingMethod, payment PaymentMethod, lines []CartLine) QuoteRequest {
	items := make([]QuoteItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, QuoteItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return QuoteRequest{
		PostalCode:    strings.TrimSpace(postalCode),
		Method:        method,
		PaymentMethod: payment,
		Items:         items,
		Subtotal:      Subtotal(lines),
	}
}

// Key identifies quotes that can be reused: postal code + method + payment method.
func (r QuoteRequest) Key() string {
	return QuoteKey(r.PostalCode, r.Method, r.PaymentMethod)
}

func QuoteKey(postalCode string, method ShippingMethod, payment PaymentMethod) string {
	return strings.TrimSpace(postalCode) + "|" + string(method) + "|" + string(payment)
}

// ShippingQuote is the legacy single flat-rate shape.
type ShippingQuote struct {
	Price    int64
	ZoneName string
	Free     bool
	Source   string
	QuotedAt time.Time
}

type ProducerShipping struct {
	ProducerID   int64
	ProducerName string
	Subtotal     int64
	ShippingCost int64
	Free         bool
	FreeReason   string
	Zone         string
	WeightGrams  int
}

// CartShippingQuote is the per-producer breakdown returned by the zone API.
type CartShippingQuote struct {
	Producers     []ProducerShipping
	TotalShipping int64
	CODFee        int64
	PaymentMethod PaymentMethod
	QuotedAt      time.Time
	Currency      string
	ZoneName      string
	Method        ShippingMethod
}

// Legacy derives the flat view used for display.
func (q CartShippingQuote) Legacy() ShippingQuote {
	return ShippingQuote{
		Price:    q.TotalShipping,
		ZoneName: q.ZoneName,
		Free:     q.TotalShipping == 0,
		Source:   SourceZone,
		QuotedAt: q.QuotedAt,
	}
}

type QuoteStatus int

const (
	// QuoteNone means nothing has been resolved: show "enter postal code to estimate shipping".
	QuoteNone QuoteStatus = iota
	QuotePriced
	// QuoteUnavailable means the zone API refused the address. Submission is blocked.
	QuoteUnavailable
)

func (s QuoteStatus) String() string {
	switch s {
	case QuotePriced:
		return "priced"
	case QuoteUnavailable:
		return "unavailable"
	default:
		return "none"
	}
}

// Quote is the single current quote. At most one of Cart and Flat is set, and only when priced.
type Quote struct {
	Status  QuoteStatus
	Cart    *CartShippingQuote
	Flat    *ShippingQuote
	Message string
}

func NoQuote() Quote {
	return Quote{Status: QuoteNone}
}

func UnavailableQuote(message string) Quote {
	return Quote{Status: QuoteUnavailable, Message: message}
}

func NewCartQuote(q CartShippingQuote) Quote {
	return Quote{Status: QuotePriced, Cart: &q}
}

func NewFlatQuote(q ShippingQuote) Quote {
	return Quote{Status: QuotePriced, Flat: &q}
}

func (q Quote) Priced() bool {
	return q.Status == QuotePriced && (q.Cart != nil || q.Flat != nil)
}

// Shipping returns the display view of a priced quote. The per-producer quote wins.
func (q Quote) Shipping() (ShippingQuote, bool) {
	if !q.Priced() {
		return ShippingQuote{}, false
	}
	if q.Cart != nil {
		return q.Cart.Legacy(), true
	}
	return *q.Flat, true
}

func (q Quote) CODFee() int64 {
	if q.Status == QuotePriced && q.Cart != nil {
		return q.Cart.CODFee
	}
	return 0
}

func (q Quote) Source() string {
	if s, ok := q.Shipping(); ok {
		return s.Source
	}
	return ""
}

func (q Quote) QuotedAt() time.Time {
	if s, ok := q.Shipping(); ok {
		return s.QuotedAt
	}
	return time.Time{}
}
