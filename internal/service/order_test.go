package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/storefront-checkout/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderService interface {
	CreateOrder(ctx context.Context, key string, req entities.OrderRequest) (entities.Order, error)
	GetOrderByToken(ctx context.Context, token string) (entities.Order, error)
	InitPayment(ctx context.Context, orderID int64, cust entities.Customer, returnURL string) (entities.PaymentSession, error)
	ConfirmPayment(ctx context.Context, orderID int64, intentID string) error
}

type serviceMocks struct {
	repo      *mocks.MockOrderRepo
	pricer    *mocks.MockPricer
	publisher *mocks.MockEventPublisher
	cache     *mocks.MockCache
}

func newOrderService(t *testing.T) (orderService, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		repo:      mocks.NewMockOrderRepo(t),
		pricer:    mocks.NewMockPricer(t),
		publisher: mocks.NewMockEventPublisher(t),
		cache:     mocks.NewMockCache(t),
	}

	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	params := service.DefaultOrderParams()
	params.Retry.InitialDelay = time.Millisecond

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, tx, m.repo, m.pricer, m.publisher, m.cache, params)
	return svc, m
}

func shipping(minor int64) *int64 {
	return &minor
}

func orderRequest(quoted *int64) entities.OrderRequest {
	return entities.OrderRequest{
		Items:          []entities.QuoteItem{{ProductID: 1, Quantity: 1}},
		Currency:       "EUR",
		ShippingMethod: entities.ShippingHome,
		PaymentMethod:  entities.PaymentCOD,
		Address: entities.Address{
			Name: "Maria Papadopoulou", Phone: "+302101234567",
			Line1: "Ermou 10", City: "Athens", PostalCode: "10431", Country: "GR",
		},
		QuotedShipping: quoted,
	}
}

func zoneQuote(total int64) entities.CartShippingQuote {
	return entities.CartShippingQuote{
		Producers:     []entities.ProducerShipping{{ProducerID: 10, Subtotal: 1250, ShippingCost: total}},
		TotalShipping: total,
		CODFee:        200,
		Currency:      "EUR",
		ZoneName:      "Attica",
		Method:        entities.ShippingHome,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(m serviceMocks)

	dbError := errors.New("db error")
	existing := entities.Order{ID: 3, PublicToken: "tok-3", IdempotencyKey: "key-1", Status: entities.OrderStatusConfirmed}

	testCases := []struct {
		name         string
		key          string
		req          entities.OrderRequest
		mockBehavior MockBehavior
		check        func(t *testing.T, order entities.Order, err error)
	}{
		{
			name: "cash on delivery order is confirmed",
			key:  "key-1",
			req:  orderRequest(shipping(350)),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.repo.EXPECT().GetProducts(mock.Anything, []int64{1}).Return(catalog, nil).Once()
				m.pricer.EXPECT().QuoteCart(mock.Anything, mock.MatchedBy(func(req entities.QuoteRequest) bool {
					return req.PostalCode == "10431" && req.Subtotal == 1250
				})).Return(zoneQuote(350), nil).Once()
				m.repo.EXPECT().ReserveStock(mock.Anything, []entities.OrderItem{{ProductID: 1, Quantity: 1, UnitPrice: 1250}}).Return(nil).Once()
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(7, nil).Once()
				m.repo.EXPECT().SaveItems(mock.Anything, int64(7), mock.Anything).Return(nil).Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(ev entities.OrderEvent) bool {
					return ev.Type == entities.OrderEventCreated && ev.OrderID == 7 && ev.GrandTotal == 2100
				})).Return(nil).Once()
			},
			check: func(t *testing.T, order entities.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(7), order.ID)
				assert.Equal(t, entities.OrderStatusConfirmed, order.Status)
				assert.Equal(t, "key-1", order.IdempotencyKey)
				assert.NotEmpty(t, order.PublicToken)
				assert.True(t, strings.HasPrefix(order.PaymentOrderID, "po_"))
				assert.Equal(t, entities.Totals{
					Subtotal: 1250, Shipping: 350, CODFee: 200, Tax: 300, GrandTotal: 2100, Currency: "EUR",
				}, order.Totals)
			},
		},
		{
			name: "card order waits for payment",
			key:  "key-1",
			req: func() entities.OrderRequest {
				req := orderRequest(nil)
				req.PaymentMethod = entities.PaymentCard
				return req
			}(),
			mockBehavior: func(m serviceMocks) {
				quote := zoneQuote(350)
				quote.CODFee = 0
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.repo.EXPECT().GetProducts(mock.Anything, []int64{1}).Return(catalog, nil).Once()
				m.pricer.EXPECT().QuoteCart(mock.Anything, mock.Anything).Return(quote, nil).Once()
				m.repo.EXPECT().ReserveStock(mock.Anything, mock.Anything).Return(nil).Once()
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(8, nil).Once()
				m.repo.EXPECT().SaveItems(mock.Anything, int64(8), mock.Anything).Return(nil).Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, order entities.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, entities.OrderStatusPendingPayment, order.Status)
				assert.Equal(t, int64(1900), order.Totals.GrandTotal)
			},
		},
		{
			name: "replayed key returns the stored order",
			key:  "key-1",
			req:  orderRequest(shipping(350)),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(existing, nil).Once()
			},
			check: func(t *testing.T, order entities.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, existing, order)
			},
		},
		{
			name: "shipping changed stores nothing",
			key:  "key-1",
			req:  orderRequest(shipping(350)),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.repo.EXPECT().GetProducts(mock.Anything, []int64{1}).Return(catalog, nil).Once()
				m.pricer.EXPECT().QuoteCart(mock.Anything, mock.Anything).Return(zoneQuote(700), nil).Once()
			},
			check: func(t *testing.T, _ entities.Order, err error) {
				var changed *entities.ShippingChangedError
				require.ErrorAs(t, err, &changed)
				assert.Equal(t, int64(2100), changed.QuotedTotal)
				assert.Equal(t, int64(2450), changed.LockedTotal)
			},
		},
		{
			name: "out of stock is not retried",
			key:  "key-1",
			req:  orderRequest(shipping(350)),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.repo.EXPECT().GetProducts(mock.Anything, []int64{1}).Return(catalog, nil).Once()
				m.pricer.EXPECT().QuoteCart(mock.Anything, mock.Anything).Return(zoneQuote(350), nil).Once()
				m.repo.EXPECT().ReserveStock(mock.Anything, mock.Anything).
					Return(&entities.StockConflictError{Message: "Olive Oil 1L is out of stock"}).Once()
			},
			check: func(t *testing.T, _ entities.Order, err error) {
				var stock *entities.StockConflictError
				require.ErrorAs(t, err, &stock)
				assert.Equal(t, "Olive Oil 1L is out of stock", stock.Message)
			},
		},
		{
			name: "retry works (first attempt fails, second succeeds)",
			key:  "key-1",
			req:  orderRequest(shipping(350)),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.repo.EXPECT().GetProducts(mock.Anything, []int64{1}).Return(catalog, nil).Once()
				m.pricer.EXPECT().QuoteCart(mock.Anything, mock.Anything).Return(zoneQuote(350), nil).Once()
				m.repo.EXPECT().ReserveStock(mock.Anything, mock.Anything).Return(nil).Twice()
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(0, dbError).Once()
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(9, nil).Once()
				m.repo.EXPECT().SaveItems(mock.Anything, int64(9), mock.Anything).Return(nil).Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, order entities.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(9), order.ID)
			},
		},
		{
			name: "concurrent duplicate returns the winner",
			key:  "key-1",
			req:  orderRequest(shipping(350)),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.repo.EXPECT().GetProducts(mock.Anything, []int64{1}).Return(catalog, nil).Once()
				m.pricer.EXPECT().QuoteCart(mock.Anything, mock.Anything).Return(zoneQuote(350), nil).Once()
				m.repo.EXPECT().ReserveStock(mock.Anything, mock.Anything).Return(nil).Once()
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(0, entities.ErrDuplicateOrder).Once()
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(existing, nil).Once()
			},
			check: func(t *testing.T, order entities.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, existing, order)
			},
		},
		{
			name: "publish failure does not fail the order",
			key:  "key-1",
			req:  orderRequest(nil),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.repo.EXPECT().GetProducts(mock.Anything, []int64{1}).Return(catalog, nil).Once()
				m.pricer.EXPECT().QuoteCart(mock.Anything, mock.Anything).Return(zoneQuote(350), nil).Once()
				m.repo.EXPECT().ReserveStock(mock.Anything, mock.Anything).Return(nil).Once()
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(7, nil).Once()
				m.repo.EXPECT().SaveItems(mock.Anything, int64(7), mock.Anything).Return(nil).Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			check: func(t *testing.T, order entities.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(7), order.ID)
			},
		},
		{
			name: "zone unavailable is a validation error",
			key:  "key-1",
			req:  orderRequest(nil),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.repo.EXPECT().GetProducts(mock.Anything, []int64{1}).Return(catalog, nil).Once()
				m.pricer.EXPECT().QuoteCart(mock.Anything, mock.Anything).Return(entities.CartShippingQuote{}, entities.ErrZoneUnavailable).Once()
			},
			check: func(t *testing.T, _ entities.Order, err error) {
				var invalid *entities.OrderValidationError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "zone_unavailable", invalid.Fields["postal_code"])
			},
		},
		{
			name: "unknown product",
			key:  "key-1",
			req: func() entities.OrderRequest {
				req := orderRequest(nil)
				req.Items = []entities.QuoteItem{{ProductID: 42, Quantity: 1}}
				return req
			}(),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.repo.EXPECT().GetProducts(mock.Anything, []int64{42}).Return(catalog, nil).Once()
			},
			check: func(t *testing.T, _ entities.Order, err error) {
				var invalid *entities.OrderValidationError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "unknown_product", invalid.Fields["items"])
			},
		},
		{
			name:         "missing idempotency key",
			key:          "  ",
			req:          orderRequest(nil),
			mockBehavior: func(m serviceMocks) {},
			check: func(t *testing.T, _ entities.Order, err error) {
				var invalid *entities.OrderValidationError
				require.ErrorAs(t, err, &invalid)
			},
		},
		{
			name: "key lookup fails",
			key:  "key-1",
			req:  orderRequest(nil),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByKey(mock.Anything, "key-1").Return(entities.Order{}, dbError).Once()
			},
			check: func(t *testing.T, _ entities.Order, err error) {
				assert.ErrorIs(t, err, dbError)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			tc.mockBehavior(m)

			order, err := svc.CreateOrder(context.Background(), tc.key, tc.req)
			tc.check(t, order, err)
		})
	}
}

func TestOrderService_GetOrderByToken(t *testing.T) {
	type MockBehavior func(m serviceMocks)

	validOrder := entities.Order{ID: 7, PublicToken: "tok-7"}

	testCases := []struct {
		name         string
		token        string
		mockBehavior MockBehavior
		want         entities.Order
		wantErr      error
	}{
		{
			name:  "success from cache",
			token: "tok-7",
			mockBehavior: func(m serviceMocks) {
				m.cache.EXPECT().Get("tok-7").Return(validOrder, true).Once()
			},
			want: validOrder,
		},
		{
			name:  "success from repo and set to cache",
			token: "tok-7",
			mockBehavior: func(m serviceMocks) {
				m.cache.EXPECT().Get("tok-7").Return(entities.Order{}, false).Once()
				m.repo.EXPECT().GetOrderByToken(mock.Anything, "tok-7").Return(validOrder, nil).Once()
				m.cache.EXPECT().Set("tok-7", validOrder).Return().Once()
			},
			want: validOrder,
		},
		{
			name:  "not found in repo",
			token: "missing",
			mockBehavior: func(m serviceMocks) {
				m.cache.EXPECT().Get("missing").Return(entities.Order{}, false).Once()
				m.repo.EXPECT().GetOrderByToken(mock.Anything, "missing").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:  "second attempt from repo",
			token: "tok-7",
			mockBehavior: func(m serviceMocks) {
				m.cache.EXPECT().Get("tok-7").Return(entities.Order{}, false).Once()
				m.repo.EXPECT().GetOrderByToken(mock.Anything, "tok-7").Return(entities.Order{}, errors.New("some error")).Once()
				m.repo.EXPECT().GetOrderByToken(mock.Anything, "tok-7").Return(validOrder, nil).Once()
				m.cache.EXPECT().Set("tok-7", validOrder).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			tc.mockBehavior(m)

			got, err := svc.GetOrderByToken(context.Background(), tc.token)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_InitPayment(t *testing.T) {
	type MockBehavior func(m serviceMocks)

	pending := entities.Order{
		ID: 7, PublicToken: "tok-7", PaymentMethod: entities.PaymentCard,
		Status: entities.OrderStatusPendingPayment, Totals: entities.Totals{GrandTotal: 1900},
	}
	withIntent := pending
	withIntent.PaymentIntentID = "pi_0123456789abcdef"
	cod := entities.Order{ID: 8, PaymentMethod: entities.PaymentCOD, Status: entities.OrderStatusConfirmed}

	testCases := []struct {
		name         string
		orderID      int64
		mockBehavior MockBehavior
		wantPrefix   string
		wantErr      error
	}{
		{
			name:    "creates intent on first call",
			orderID: 7,
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(pending, nil).Once()
				m.repo.EXPECT().SetPaymentIntent(mock.Anything, int64(7), mock.MatchedBy(func(id string) bool {
					return strings.HasPrefix(id, "pi_")
				})).Return(nil).Once()
				m.cache.EXPECT().Delete("tok-7").Return().Once()
			},
			wantPrefix: "pi_",
		},
		{
			name:    "reuses existing intent",
			orderID: 7,
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(withIntent, nil).Once()
			},
			wantPrefix: "pi_0123456789abcdef_secret_",
		},
		{
			name:    "cash on delivery order",
			orderID: 8,
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(8)).Return(cod, nil).Once()
			},
			wantErr: entities.ErrOrderNotPayable,
		},
		{
			name:    "not found",
			orderID: 9,
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(9)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			tc.mockBehavior(m)

			cust := entities.Customer{Name: "Maria Papadopoulou"}
			session, err := svc.InitPayment(context.Background(), tc.orderID, cust, "https://shop.example/return")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(session.ClientSecret, tc.wantPrefix), session.ClientSecret)
			assert.Contains(t, session.ClientSecret, "_secret_")
			assert.Equal(t, int64(1900), session.Amount)
			assert.Equal(t, "https://shop.example/return", session.ReturnURL)
		})
	}
}

func TestOrderService_ConfirmPayment(t *testing.T) {
	type MockBehavior func(m serviceMocks)

	pending := entities.Order{
		ID: 7, PublicToken: "tok-7", PaymentMethod: entities.PaymentCard,
		Status: entities.OrderStatusPendingPayment, PaymentIntentID: "pi_0123456789abcdef",
	}
	paid := pending
	paid.Status = entities.OrderStatusPaid
	noIntent := pending
	noIntent.PaymentIntentID = ""

	testCases := []struct {
		name         string
		intentID     string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:     "marks order paid",
			intentID: "pi_0123456789abcdef",
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(pending, nil).Once()
				m.repo.EXPECT().UpdateStatus(mock.Anything, int64(7), entities.OrderStatusPaid).Return(nil).Once()
				m.cache.EXPECT().Delete("tok-7").Return().Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(ev entities.OrderEvent) bool {
					return ev.Type == entities.OrderEventPaid && ev.Status == entities.OrderStatusPaid
				})).Return(nil).Once()
			},
		},
		{
			name:     "already paid with same intent",
			intentID: "pi_0123456789abcdef",
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(paid, nil).Once()
			},
		},
		{
			name:     "foreign intent",
			intentID: "pi_ffffffffffffffff",
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(pending, nil).Once()
			},
			wantErr: entities.ErrInvalidPaymentIntent,
		},
		{
			name:     "session never opened",
			intentID: "pi_0123456789abcdef",
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(noIntent, nil).Once()
			},
			wantErr: entities.ErrInvalidPaymentIntent,
		},
		{
			name:     "paid with another intent",
			intentID: "pi_ffffffffffffffff",
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(paid, nil).Once()
			},
			wantErr: entities.ErrOrderNotPayable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			tc.mockBehavior(m)

			err := svc.ConfirmPayment(context.Background(), 7, tc.intentID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
