package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

type Product struct {
	ID           int64  `db:"id"`
	ProducerID   int64  `db:"producer_id"`
	ProducerName string `db:"producer_name"`
	Name         string `db:"name"`
	Price        int64  `db:"price"`
	WeightGrams  int    `db:"weight_grams"`
	Stock        int    `db:"stock"`
}

type Order struct {
	ID              int64          `db:"id"`
	PublicToken     string         `db:"public_token"`
	PaymentOrderID  string         `db:"payment_order_id"`
	IdempotencyKey  string         `db:"idempotency_key"`
	Status          string         `db:"status"`
	ShippingMethod  string         `db:"shipping_method"`
	PaymentMethod   string         `db:"payment_method"`
	Name            string         `db:"name"`
	Phone           string         `db:"phone"`
	Line1           string         `db:"line1"`
	City            string         `db:"city"`
	PostalCode      string         `db:"postal_code"`
	Country         string         `db:"country"`
	Subtotal        int64          `db:"subtotal"`
	Shipping        int64          `db:"shipping"`
	CODFee          int64          `db:"cod_fee"`
	Tax             int64          `db:"tax"`
	GrandTotal      int64          `db:"grand_total"`
	Currency        string         `db:"currency"`
	PaymentIntentID sql.NullString `db:"payment_intent_id"`
	CreatedAt       time.Time      `db:"created_at"`
}

type Item struct {
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
	UnitPrice int64 `db:"unit_price"`
}

var (
	productColumns = []string{"id", "producer_id", "producer_name", "name", "price", "weight_grams", "stock"}
	orderColumns   = []string{
		"id", "public_token", "payment_order_id", "idempotency_key", "status",
		"shipping_method", "payment_method",
		"name", "phone", "line1", "city", "postal_code", "country",
		"subtotal", "shipping", "cod_fee", "tax", "grand_total", "currency",
		"payment_intent_id", "created_at",
	}
	itemColumns = []string{"order_id", "product_id", "quantity", "unit_price"}
)

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:           p.ID,
		ProducerID:   p.ProducerID,
		ProducerName: p.ProducerName,
		Name:         p.Name,
		Price:        p.Price,
		WeightGrams:  p.WeightGrams,
		Stock:        p.Stock,
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	res := entities.Order{
		ID:             o.ID,
		PublicToken:    o.PublicToken,
		PaymentOrderID: o.PaymentOrderID,
		IdempotencyKey: o.IdempotencyKey,
		Status:         entities.OrderStatus(o.Status),
		ShippingMethod: entities.ShippingMethod(o.ShippingMethod),
		PaymentMethod:  entities.PaymentMethod(o.PaymentMethod),
		Address: entities.Address{
			Name:       o.Name,
			Phone:      o.Phone,
			Line1:      o.Line1,
			City:       o.City,
			PostalCode: o.PostalCode,
			Country:    o.Country,
		},
		Totals: entities.Totals{
			Subtotal:   o.Subtotal,
			Shipping:   o.Shipping,
			CODFee:     o.CODFee,
			Tax:        o.Tax,
			GrandTotal: o.GrandTotal,
			Currency:   o.Currency,
		},
		PaymentIntentID: o.PaymentIntentID.String,
		CreatedAt:       o.CreatedAt,
	}

	res.Items = make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		res.Items = append(res.Items, entities.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return res
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
