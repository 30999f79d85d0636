package entities

import "time"

// Product is a catalog entry as the backend prices it. Price is in minor units.
type Product struct {
	ID           int64
	ProducerID   int64
	ProducerName string
	Name         string
	Price        int64
	WeightGrams  int
	Stock        int
}

type OrderEventType string

const (
	OrderEventCreated OrderEventType = "order.created"
	OrderEventPaid    OrderEventType = "order.paid"
)

// OrderEvent is published after an order changes state.
type OrderEvent struct {
	Type        OrderEventType
	OrderID     int64
	PublicToken string
	Status      OrderStatus
	GrandTotal  int64
	Currency    string
	OccurredAt  time.Time
}

func NewOrderEvent(typ OrderEventType, o Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:        typ,
		OrderID:     o.ID,
		PublicToken: o.PublicToken,
		Status:      o.Status,
		GrandTotal:  o.Totals.GrandTotal,
		Currency:    o.Totals.Currency,
		OccurredAt:  at,
	}
}
