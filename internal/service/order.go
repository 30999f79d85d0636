package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/totals"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	ProductRepo

	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	GetOrderByToken(ctx context.Context, token string) (entities.Order, error)
	GetOrderByKey(ctx context.Context, key string) (entities.Order, error)

	// SaveOrder returns the new order ID, or ErrDuplicateOrder when the idempotency key is taken.
	SaveOrder(ctx context.Context, o entities.Order) (int64, error)
	SaveItems(ctx context.Context, orderID int64, items []entities.OrderItem) error
	// ReserveStock fails with a StockConflictError when any item is short.
	ReserveStock(ctx context.Context, items []entities.OrderItem) error

	SetPaymentIntent(ctx context.Context, orderID int64, intentID string) error
	UpdateStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error
}

type Pricer interface {
	QuoteCart(ctx context.Context, req entities.QuoteRequest) (entities.CartShippingQuote, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev entities.OrderEvent) error
}

type Cache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
	Delete(key string)
}

type OrderParams struct {
	TaxRate               decimal.Decimal
	FreeShippingThreshold int64
	Currency              string
	Retry                 utils.RetryConfig
}

func DefaultOrderParams() OrderParams {
	return OrderParams{
		TaxRate:               totals.DefaultParams().TaxRate,
		FreeShippingThreshold: totals.DefaultParams().FreeShippingThreshold,
		Currency:              money.EUR,
		Retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	pricer    Pricer
	publisher EventPublisher
	cache     Cache

	totals *totals.Calculator
	retry  utils.RetryConfig

	newID func() string
	now   func() time.Time
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, pricer Pricer, publisher EventPublisher, cache Cache, params OrderParams) *orderService {
	retry := params.Retry
	retry.Retryable = func(err error) bool {
		var stock *entities.StockConflictError
		return !errors.As(err, &stock)
	}

	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		pricer:    pricer,
		publisher: publisher,
		cache:     cache,
		totals: totals.NewCalculator(totals.Params{
			FreeShippingThreshold: params.FreeShippingThreshold,
			TaxRate:               params.TaxRate,
			Currency:              params.Currency,
		}),
		retry: retry,
		newID: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") },
		now:   time.Now,
	}
}

// CreateOrder locks server-side totals and stores the order once per idempotency key.
// A replayed key returns the stored order unchanged. When the client quoted a
// different shipping cost nothing is stored and a ShippingChangedError is returned.
func (s *orderService) CreateOrder(ctx context.Context, key string, req entities.OrderRequest) (entities.Order, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Order{}, &entities.OrderValidationError{
			Message: "missing idempotency key",
			Fields:  map[string]string{"Idempotency-Key": "required"},
		}
	}

	existing, err := s.repo.GetOrderByKey(ctx, key)
	if err == nil {
		s.logger.DebugContext(ctx, "order replayed", slog.Int64("order_id", existing.ID))
		return existing, nil
	}
	if !errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, fmt.Errorf("failed to get order by key: %w", err)
	}

	lines, err := s.lines(ctx, req.Items)
	if err != nil {
		return entities.Order{}, err
	}

	quote, err := s.pricer.QuoteCart(ctx, entities.QuoteRequest{
		PostalCode:    req.Address.PostalCode,
		Method:        req.ShippingMethod,
		PaymentMethod: req.PaymentMethod,
		Items:         req.Items,
		Subtotal:      entities.Subtotal(lines),
	})
	switch {
	case errors.Is(err, entities.ErrZoneUnavailable):
		return entities.Order{}, &entities.OrderValidationError{
			Message: "Shipping is unavailable for this address",
			Fields:  map[string]string{"postal_code": "zone_unavailable"},
		}
	case errors.Is(err, entities.ErrInvalidQuoteRequest):
		return entities.Order{}, &entities.OrderValidationError{Message: err.Error()}
	case err != nil:
		return entities.Order{}, fmt.Errorf("failed to quote shipping: %w", err)
	}

	locked := s.totals.Calc(lines, req.ShippingMethod, entities.NewCartQuote(quote), req.PaymentMethod)
	if req.QuotedShipping != nil && *req.QuotedShipping != locked.Shipping {
		s.logger.InfoContext(ctx, "shipping changed",
			slog.Int64("quoted_shipping", *req.QuotedShipping),
			slog.Int64("locked_shipping", locked.Shipping),
		)
		return entities.Order{}, &entities.ShippingChangedError{
			QuotedTotal: locked.GrandTotal - locked.Shipping + *req.QuotedShipping,
			LockedTotal: locked.GrandTotal,
		}
	}

	order := entities.Order{
		PublicToken:    s.newID(),
		PaymentOrderID: "po_" + s.newID(),
		IdempotencyKey: key,
		Status:         entities.OrderStatusConfirmed,
		ShippingMethod: req.ShippingMethod,
		PaymentMethod:  req.PaymentMethod,
		Address:        req.Address,
		Items:          orderItems(lines),
		Totals:         locked,
		CreatedAt:      s.now().UTC(),
	}
	if req.PaymentMethod == entities.PaymentCard {
		order.Status = entities.OrderStatusPendingPayment
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.ReserveStock(ctx, order.Items); err != nil {
				return err
			}
			id, err := s.repo.SaveOrder(ctx, order)
			if err != nil {
				return err
			}
			if err := s.repo.SaveItems(ctx, id, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}
			order.ID = id
			return nil
		})
	}

	err = utils.Retry(ctx, s.retry, fn, entities.ErrDuplicateOrder)
	if errors.Is(err, entities.ErrDuplicateOrder) {
		// Lost a race against a concurrent request with the same key.
		return s.repo.GetOrderByKey(ctx, key)
	}
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order created",
		slog.Int64("order_id", order.ID),
		slog.String("status", string(order.Status)),
		slog.Int64("grand_total", order.Totals.GrandTotal),
	)
	s.publish(ctx, entities.OrderEventCreated, order)
	return order, nil
}

func (s *orderService) GetOrderByToken(ctx context.Context, token string) (entities.Order, error) {
	if order, ok := s.cache.Get(token); ok {
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByToken(ctx, token)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cache.Set(token, order)
	return order, nil
}

// InitPayment opens a payment session for a card order that is still unpaid.
// The intent is created once per order; every call returns a fresh client secret.
func (s *orderService) InitPayment(ctx context.Context, orderID int64, cust entities.Customer, returnURL string) (entities.PaymentSession, error) {
	order, err := s.orderByID(ctx, orderID)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if order.PaymentMethod != entities.PaymentCard || order.Status != entities.OrderStatusPendingPayment {
		return entities.PaymentSession{}, entities.ErrOrderNotPayable
	}

	intentID := order.PaymentIntentID
	if intentID == "" {
		intentID = "pi_" + s.newID()
		if err := s.repo.SetPaymentIntent(ctx, order.ID, intentID); err != nil {
			return entities.PaymentSession{}, fmt.Errorf("failed to save payment intent: %w", err)
		}
		s.cache.Delete(order.PublicToken)
	}

	s.logger.InfoContext(ctx, "payment session opened",
		slog.Int64("order_id", order.ID),
		slog.String("customer", cust.Name),
	)
	return entities.PaymentSession{
		ClientSecret: intentID + "_secret_" + s.newID()[:16],
		Amount:       order.Totals.GrandTotal,
		ReturnURL:    returnURL,
	}, nil
}

// ConfirmPayment marks the order paid. Confirming an already paid order with the same intent is a no-op.
func (s *orderService) ConfirmPayment(ctx context.Context, orderID int64, intentID string) error {
	order, err := s.orderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status == entities.OrderStatusPaid && order.PaymentIntentID == intentID {
		return nil
	}
	if order.Status != entities.OrderStatusPendingPayment {
		return entities.ErrOrderNotPayable
	}
	if order.PaymentIntentID == "" || order.PaymentIntentID != intentID {
		return entities.ErrInvalidPaymentIntent
	}

	if err := s.repo.UpdateStatus(ctx, order.ID, entities.OrderStatusPaid); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	s.cache.Delete(order.PublicToken)

	order.Status = entities.OrderStatusPaid
	s.logger.InfoContext(ctx, "order paid", slog.Int64("order_id", order.ID))
	s.publish(ctx, entities.OrderEventPaid, order)
	return nil
}

func (s *orderService) orderByID(ctx context.Context, id int64) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// lines prices the request with catalog prices. Client prices are never trusted.
func (s *orderService) lines(ctx context.Context, items []entities.QuoteItem) ([]entities.CartLine, error) {
	if len(items) == 0 {
		return nil, &entities.OrderValidationError{
			Message: "order has no items",
			Fields:  map[string]string{"items": "required"},
		}
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.repo.GetProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	lines := make([]entities.CartLine, 0, len(items))
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok {
			return nil, &entities.OrderValidationError{
				Message: fmt.Sprintf("unknown product %d", it.ProductID),
				Fields:  map[string]string{"items": "unknown_product"},
			}
		}
		if it.Quantity <= 0 {
			return nil, &entities.OrderValidationError{
				Message: fmt.Sprintf("invalid quantity for %s", p.Name),
				Fields:  map[string]string{"items": "quantity"},
			}
		}
		lines = append(lines, entities.CartLine{
			ProductID:  p.ID,
			ProducerID: p.ProducerID,
			Name:       p.Name,
			UnitPrice:  p.Price,
			Quantity:   it.Quantity,
		})
	}
	return lines, nil
}

func (s *orderService) publish(ctx context.Context, typ entities.OrderEventType, order entities.Order) {
	ev := entities.NewOrderEvent(typ, order, s.now().UTC())
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("type", string(typ)),
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}

func orderItems(lines []entities.CartLine) []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entities.OrderItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return items
}
