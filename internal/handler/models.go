package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
)

// QuoteItem is one cart line in a quote or order request
type QuoteItem struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// CartQuoteRequest asks for a per-producer shipping quote
type CartQuoteRequest struct {
	PostalCode    string      `json:"postal_code" validate:"required,len=5,numeric"`
	Method        string      `json:"method" validate:"required,oneof=HOME PICKUP COURIER"`
	Items         []QuoteItem `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string      `json:"payment_method" validate:"required,oneof=COD CARD"`
}

type ProducerQuote struct {
	ProducerID   int64        `json:"producer_id"`
	ProducerName string       `json:"producer_name"`
	Subtotal     money.Amount `json:"subtotal"`
	ShippingCost money.Amount `json:"shipping_cost"`
	IsFree       bool         `json:"is_free"`
	FreeReason   string       `json:"free_reason,omitempty"`
	Zone         string       `json:"zone"`
	WeightGrams  int          `json:"weight_grams"`
}

type CartQuoteResponse struct {
	Producers     []ProducerQuote `json:"producers"`
	TotalShipping money.Amount    `json:"total_shipping"`
	CODFee        money.Amount    `json:"cod_fee"`
	PaymentMethod string          `json:"payment_method"`
	QuotedAt      time.Time       `json:"quoted_at"`
	Currency      string          `json:"currency"`
	ZoneName      string          `json:"zone_name"`
	Method        string          `json:"method"`
}

// LegacyQuoteRequest asks for the flat single-rate quote
type LegacyQuoteRequest struct {
	PostalCode string       `json:"postal_code" validate:"required,len=5,numeric"`
	Method     string       `json:"method" validate:"required,oneof=HOME PICKUP COURIER"`
	Subtotal   money.Amount `json:"subtotal" validate:"gte=0"`
}

type LegacyQuoteResponse struct {
	PriceEUR     money.Amount `json:"price_eur"`
	ZoneName     string       `json:"zone_name"`
	FreeShipping bool         `json:"free_shipping"`
	Source       string       `json:"source"`
}

type Address struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required,len=5,numeric"`
	Country    string `json:"country" validate:"required,iso3166_1_alpha2"`
}

// OrderRequest creates an order. QuotedShipping is the shipping cost the client showed
type OrderRequest struct {
	Items           []QuoteItem   `json:"items" validate:"required,min=1,dive"`
	Currency        string        `json:"currency" validate:"omitempty,len=3"`
	ShippingMethod  string        `json:"shipping_method" validate:"required,oneof=HOME PICKUP COURIER"`
	PaymentMethod   string        `json:"payment_method" validate:"required,oneof=COD CARD"`
	ShippingAddress Address       `json:"shipping_address" validate:"required"`
	QuotedShipping  *money.Amount `json:"quoted_shipping,omitempty"`
	QuotedAt        *time.Time    `json:"quoted_at,omitempty"`
}

type OrderResponse struct {
	ID             int64  `json:"id"`
	PublicToken    string `json:"public_token"`
	PaymentOrderID string `json:"payment_order_id"`
}

type OrderTotals struct {
	Subtotal   money.Amount `json:"subtotal"`
	Shipping   money.Amount `json:"shipping"`
	CODFee     money.Amount `json:"cod_fee"`
	Tax        money.Amount `json:"tax"`
	GrandTotal money.Amount `json:"grand_total"`
	Currency   string       `json:"currency"`
}

// OrderStatusResponse is the order-status view
type OrderStatusResponse struct {
	ID             int64       `json:"id"`
	PublicToken    string      `json:"public_token"`
	PaymentOrderID string      `json:"payment_order_id"`
	Status         string      `json:"status"`
	ShippingMethod string      `json:"shipping_method"`
	PaymentMethod  string      `json:"payment_method"`
	Totals         OrderTotals `json:"totals"`
	CreatedAt      time.Time   `json:"created_at"`
}

type Customer struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

type PaymentInitRequest struct {
	Customer  Customer `json:"customer" validate:"required"`
	ReturnURL string   `json:"return_url" validate:"required,url"`
}

type PaymentSession struct {
	ClientSecret string       `json:"client_secret"`
	Amount       money.Amount `json:"amount"`
}

type PaymentInitResponse struct {
	Payment PaymentSession `json:"payment"`
}

type PaymentConfirmRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

type PaymentConfirmResponse struct {
	Status string `json:"status"`
}

// ShippingChangedResponse is the 409 body returned when the quoted shipping no longer holds
type ShippingChangedResponse struct {
	Code        string       `json:"code"`
	Message     string       `json:"message"`
	QuotedTotal money.Amount `json:"quoted_total"`
	LockedTotal money.Amount `json:"locked_total"`
}

type OrderValidationResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func quoteItemsToEntity(items []QuoteItem) []entities.QuoteItem {
	res := make([]entities.QuoteItem, 0, len(items))
	for _, it := range items {
		res = append(res, entities.QuoteItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return res
}

func CartQuoteEntityToJSON(q entities.CartShippingQuote) CartQuoteResponse {
	producers := make([]ProducerQuote, 0, len(q.Producers))
	for _, p := range q.Producers {
		producers = append(producers, ProducerQuote{
			ProducerID:   p.ProducerID,
			ProducerName: p.ProducerName,
			Subtotal:     money.Amount(p.Subtotal),
			ShippingCost: money.Amount(p.ShippingCost),
			IsFree:       p.Free,
			FreeReason:   p.FreeReason,
			Zone:         p.Zone,
			WeightGrams:  p.WeightGrams,
		})
	}
	return CartQuoteResponse{
		Producers:     producers,
		TotalShipping: money.Amount(q.TotalShipping),
		CODFee:        money.Amount(q.CODFee),
		PaymentMethod: string(q.PaymentMethod),
		QuotedAt:      q.QuotedAt,
		Currency:      q.Currency,
		ZoneName:      q.ZoneName,
		Method:        string(q.Method),
	}
}

func OrderRequestToEntity(r OrderRequest) entities.OrderRequest {
	req := entities.OrderRequest{
		Items:          quoteItemsToEntity(r.Items),
		Currency:       r.Currency,
		ShippingMethod: entities.ShippingMethod(r.ShippingMethod),
		PaymentMethod:  entities.PaymentMethod(r.PaymentMethod),
		Address: entities.Address{
			Name:       r.ShippingAddress.Name,
			Phone:      r.ShippingAddress.Phone,
			Line1:      r.ShippingAddress.Line1,
			City:       r.ShippingAddress.City,
			PostalCode: r.ShippingAddress.PostalCode,
			Country:    r.ShippingAddress.Country,
		},
		QuotedAt: r.QuotedAt,
	}
	if r.QuotedShipping != nil {
		quoted := r.QuotedShipping.Minor()
		req.QuotedShipping = &quoted
	}
	return req
}

func OrderEntityToJSON(o entities.Order) OrderStatusResponse {
	return OrderStatusResponse{
		ID:             o.ID,
		PublicToken:    o.PublicToken,
		PaymentOrderID: o.PaymentOrderID,
		Status:         string(o.Status),
		ShippingMethod: string(o.ShippingMethod),
		PaymentMethod:  string(o.PaymentMethod),
		Totals: OrderTotals{
			Subtotal:   money.Amount(o.Totals.Subtotal),
			Shipping:   money.Amount(o.Totals.Shipping),
			CODFee:     money.Amount(o.Totals.CODFee),
			Tax:        money.Amount(o.Totals.Tax),
			GrandTotal: money.Amount(o.Totals.GrandTotal),
			Currency:   o.Totals.Currency,
		},
		CreatedAt: o.CreatedAt,
	}
}
