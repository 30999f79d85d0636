package client

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
)

type quoteItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type cartQuoteRequest struct {
	PostalCode    string      `json:"postal_code"`
	Method        string      `json:"method"`
	Items         []quoteItem `json:"items"`
	PaymentMethod string      `json:"payment_method"`
}

type producerQuote struct {
	ProducerID   int64         `json:"producer_id" validate:"required"`
	ProducerName string        `json:"producer_name"`
	Subtotal     *money.Amount `json:"subtotal" validate:"required"`
	ShippingCost *money.Amount `json:"shipping_cost" validate:"required"`
	IsFree       bool          `json:"is_free"`
	FreeReason   string        `json:"free_reason,omitempty"`
	Zone         string        `json:"zone"`
	WeightGrams  int           `json:"weight_grams" validate:"gte=0"`
}

type cartQuoteResponse struct {
	Producers     []producerQuote `json:"producers" validate:"required,dive"`
	TotalShipping *money.Amount   `json:"total_shipping" validate:"required"`
	CODFee        *money.Amount   `json:"cod_fee"`
	PaymentMethod string          `json:"payment_method"`
	QuotedAt      *time.Time      `json:"quoted_at" validate:"required"`
	Currency      string          `json:"currency" validate:"required,len=3"`
	ZoneName      string          `json:"zone_name"`
	Method        string          `json:"method" validate:"required,oneof=HOME PICKUP COURIER"`
}

type legacyQuoteRequest struct {
	PostalCode string       `json:"postal_code"`
	Method     string       `json:"method"`
	Subtotal   money.Amount `json:"subtotal"`
}

type legacyQuoteResponse struct {
	PriceEUR     *money.Amount `json:"price_eur" validate:"required"`
	ZoneName     string        `json:"zone_name"`
	FreeShipping bool          `json:"free_shipping"`
	Source       string        `json:"source" validate:"required"`
}

type address struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type orderRequest struct {
	Items           []quoteItem   `json:"items"`
	Currency        string        `json:"currency"`
	ShippingMethod  string        `json:"shipping_method"`
	PaymentMethod   string        `json:"payment_method"`
	ShippingAddress address       `json:"shipping_address"`
	QuotedShipping  *money.Amount `json:"quoted_shipping,omitempty"`
	QuotedAt        *time.Time    `json:"quoted_at,omitempty"`
}

type orderResponse struct {
	ID             int64  `json:"id" validate:"required,gt=0"`
	PublicToken    string `json:"public_token" validate:"required"`
	PaymentOrderID string `json:"payment_order_id"`
}

type orderTotals struct {
	Subtotal   money.Amount `json:"subtotal"`
	Shipping   money.Amount `json:"shipping"`
	CODFee     money.Amount `json:"cod_fee"`
	Tax        money.Amount `json:"tax"`
	GrandTotal money.Amount `json:"grand_total"`
	Currency   string       `json:"currency"`
}

type orderStatusResponse struct {
	ID             int64       `json:"id" validate:"required,gt=0"`
	PublicToken    string      `json:"public_token" validate:"required"`
	PaymentOrderID string      `json:"payment_order_id"`
	Status         string      `json:"status" validate:"required"`
	ShippingMethod string      `json:"shipping_method"`
	PaymentMethod  string      `json:"payment_method"`
	Totals         orderTotals `json:"totals"`
}

type customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type paymentInitRequest struct {
	Customer  customer `json:"customer"`
	ReturnURL string   `json:"return_url"`
}

type paymentSession struct {
	ClientSecret string        `json:"client_secret" validate:"required"`
	Amount       *money.Amount `json:"amount" validate:"required"`
}

type paymentInitResponse struct {
	Payment paymentSession `json:"payment"`
}

type paymentConfirmRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

type errorResponse struct {
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	Fields      map[string]string `json:"fields,omitempty"`
	QuotedTotal *money.Amount     `json:"quoted_total,omitempty"`
	LockedTotal *money.Amount     `json:"locked_total,omitempty"`
}

func quoteItemsToJSON(items []entities.QuoteItem) []quoteItem {
	res := make([]quoteItem, 0, len(items))
	for _, it := range items {
		res = append(res, quoteItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return res
}

func addressToJSON(a entities.Address) address {
	return address{
		Name:       a.Name,
		Phone:      a.Phone,
		Line1:      a.Line1,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func cartQuoteToEntity(r cartQuoteResponse) entities.CartShippingQuote {
	producers := make([]entities.ProducerShipping, 0, len(r.Producers))
	for _, p := range r.Producers {
		producers = append(producers, entities.ProducerShipping{
			ProducerID:   p.ProducerID,
			ProducerName: p.ProducerName,
			Subtotal:     p.Subtotal.Minor(),
			ShippingCost: p.ShippingCost.Minor(),
			Free:         p.IsFree,
			FreeReason:   p.FreeReason,
			Zone:         p.Zone,
			WeightGrams:  p.WeightGrams,
		})
	}

	var codFee int64
	if r.CODFee != nil {
		codFee = r.CODFee.Minor()
	}

	return entities.CartShippingQuote{
		Producers:     producers,
		TotalShipping: r.TotalShipping.Minor(),
		CODFee:        codFee,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		QuotedAt:      *r.QuotedAt,
		Currency:      r.Currency,
		ZoneName:      r.ZoneName,
		Method:        entities.ShippingMethod(r.Method),
	}
}

func orderStatusToEntity(r orderStatusResponse) entities.Order {
	return entities.Order{
		ID:             r.ID,
		PublicToken:    r.PublicToken,
		PaymentOrderID: r.PaymentOrderID,
		Status:         entities.OrderStatus(r.Status),
		ShippingMethod: entities.ShippingMethod(r.ShippingMethod),
		PaymentMethod:  entities.PaymentMethod(r.PaymentMethod),
		Totals: entities.Totals{
			Subtotal:   r.Totals.Subtotal.Minor(),
			Shipping:   r.Totals.Shipping.Minor(),
			CODFee:     r.Totals.CODFee.Minor(),
			Tax:        r.Totals.Tax.Minor(),
			GrandTotal: r.Totals.GrandTotal.Minor(),
			Currency:   r.Totals.Currency,
		},
	}
}
