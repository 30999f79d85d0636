package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type Quoter interface {
	QuoteCart(ctx context.Context, req entities.QuoteRequest) (entities.CartShippingQuote, error)
	QuoteFlat(ctx context.Context, req entities.QuoteRequest) (entities.ShippingQuote, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, key string, req entities.OrderRequest) (entities.Order, error)
	GetOrderByToken(ctx context.Context, token string) (entities.Order, error)
	InitPayment(ctx context.Context, orderID int64, cust entities.Customer, returnURL string) (entities.PaymentSession, error)
	ConfirmPayment(ctx context.Context, orderID int64, intentID string) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	quotes   Quoter
	orders   OrderService
}

func NewHTTPHandler(logger *slog.Logger, quotes Quoter, orders OrderService) *HTTPHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})

	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validate,
		quotes:   quotes,
		orders:   orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/shipping/quote/cart", h.QuoteCart)
	r.Post("/shipping/quote", h.QuoteLegacy)

	r.Post("/orders", h.CreateOrder)
	r.Get("/orders/{token}", h.GetOrder)

	r.Post("/payments/{order_id}/init", h.InitPayment)
	r.Post("/payments/{order_id}/confirm", h.ConfirmPayment)
}

// QuoteCart returns the per-producer shipping breakdown for a cart.
func (h *HTTPHandler) QuoteCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer observeQuote("cart", time.Now())

	var body CartQuoteRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteErrorCode(w, entities.CodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	quote, err := h.quotes.QuoteCart(ctx, entities.QuoteRequest{
		PostalCode:    body.PostalCode,
		Method:        entities.ShippingMethod(body.Method),
		PaymentMethod: entities.PaymentMethod(body.PaymentMethod),
		Items:         quoteItemsToEntity(body.Items),
	})
	if err != nil {
		h.writeQuoteError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, CartQuoteEntityToJSON(quote), http.StatusOK)
}

// QuoteLegacy returns the single flat-rate quote for a postal code.
func (h *HTTPHandler) QuoteLegacy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer observeQuote("legacy", time.Now())

	var body LegacyQuoteRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteErrorCode(w, entities.CodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	quote, err := h.quotes.QuoteFlat(ctx, entities.QuoteRequest{
		PostalCode: body.PostalCode,
		Method:     entities.ShippingMethod(body.Method),
		Subtotal:   body.Subtotal.Minor(),
	})
	if err != nil {
		h.writeQuoteError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, LegacyQuoteResponse{
		PriceEUR:     money.Amount(quote.Price),
		ZoneName:     quote.ZoneName,
		FreeShipping: quote.Free,
		Source:       quote.Source,
	}, http.StatusOK)
}

// CreateOrder locks totals and creates the order. Requests repeating an
// Idempotency-Key get the order created by the first one.
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := r.Header.Get(IdempotencyKeyHeader)
	if err := h.validate.Var(key, "required,max=128"); err != nil {
		utils.WriteJSON(w, OrderValidationResponse{
			Code:    entities.CodeValidation,
			Message: "missing idempotency key",
			Fields:  map[string]string{IdempotencyKeyHeader: "required"},
		}, http.StatusBadRequest)
		return
	}

	var body OrderRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteErrorCode(w, entities.CodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(ctx, key, OrderRequestToEntity(body))
	if err != nil {
		h.writeOrderError(ctx, w, err)
		return
	}

	ordersCreated.WithLabelValues("created").Inc()
	utils.WriteJSON(w, OrderResponse{
		ID:             order.ID,
		PublicToken:    order.PublicToken,
		PaymentOrderID: order.PaymentOrderID,
	}, http.StatusCreated)
}

// GetOrder returns the order-status view by public token.
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := chi.URLParam(r, "token")

	if err := h.validate.Var(token, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderByToken(ctx, token)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// InitPayment opens a hosted payment session for an unpaid card order.
func (h *HTTPHandler) InitPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var body PaymentInitRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteErrorCode(w, entities.CodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cust := entities.Customer{Name: body.Customer.Name, Phone: body.Customer.Phone, Email: body.Customer.Email}
	session, err := h.orders.InitPayment(ctx, orderID, cust, body.ReturnURL)
	if err != nil {
		paymentRequests.WithLabelValues("init", "error").Inc()
		h.writePaymentError(ctx, w, err)
		return
	}

	paymentRequests.WithLabelValues("init", "ok").Inc()
	utils.WriteJSON(w, PaymentInitResponse{
		Payment: PaymentSession{
			ClientSecret: session.ClientSecret,
			Amount:       money.Amount(session.Amount),
		},
	}, http.StatusOK)
}

// ConfirmPayment marks a card order paid once the payment intent succeeded.
func (h *HTTPHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var body PaymentConfirmRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteErrorCode(w, entities.CodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.orders.ConfirmPayment(ctx, orderID, body.PaymentIntentID); err != nil {
		paymentRequests.WithLabelValues("confirm", "error").Inc()
		h.writePaymentError(ctx, w, err)
		return
	}

	paymentRequests.WithLabelValues("confirm", "ok").Inc()
	utils.WriteJSON(w, PaymentConfirmResponse{Status: string(entities.OrderStatusPaid)}, http.StatusOK)
}

func (h *HTTPHandler) orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "order_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.WriteJSON(w, OrderValidationResponse{
			Code:    entities.CodeValidation,
			Message: "invalid order id",
			Fields:  map[string]string{"order_id": "gt"},
		}, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) writeQuoteError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrZoneUnavailable):
		utils.WriteErrorCode(w, entities.CodeZoneUnavailable, "Shipping is unavailable for this address", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidQuoteRequest):
		utils.WriteErrorCode(w, entities.CodeValidation, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, "failed to quote shipping", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *HTTPHandler) writeOrderError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		changed *entities.ShippingChangedError
		stock   *entities.StockConflictError
		invalid *entities.OrderValidationError
	)

	switch {
	case errors.As(err, &changed):
		ordersCreated.WithLabelValues("shipping_changed").Inc()
		utils.WriteJSON(w, ShippingChangedResponse{
			Code:        entities.CodeShippingChanged,
			Message:     "shipping cost changed since it was quoted",
			QuotedTotal: money.Amount(changed.QuotedTotal),
			LockedTotal: money.Amount(changed.LockedTotal),
		}, http.StatusConflict)
	case errors.As(err, &stock):
		ordersCreated.WithLabelValues("out_of_stock").Inc()
		utils.WriteErrorCode(w, entities.CodeOutOfStock, stock.Message, http.StatusConflict)
	case errors.As(err, &invalid):
		ordersCreated.WithLabelValues("rejected").Inc()
		utils.WriteJSON(w, OrderValidationResponse{
			Code:    entities.CodeValidation,
			Message: invalid.Message,
			Fields:  invalid.Fields,
		}, http.StatusBadRequest)
	default:
		ordersCreated.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *HTTPHandler) writePaymentError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotPayable):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidPaymentIntent):
		utils.WriteErrorCode(w, entities.CodeValidation, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, "payment request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
