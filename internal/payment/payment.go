package payment

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

var intentPattern = regexp.MustCompile(`^pi_[A-Za-z0-9_]{8,}$`)

type API interface {
	InitPayment(ctx context.Context, orderID int64, cust entities.Customer, returnURL string) (entities.PaymentSession, error)
	ConfirmPayment(ctx context.Context, orderID int64, intentID string) error
}

type Cart interface {
	Clear(ctx context.Context) error
}

// Outcome tells the caller where the user goes next.
type Outcome struct {
	// Completed is set once nothing else is needed from the user.
	Completed bool
	// Session is set when a hosted card payment is waiting for the user.
	Session  *entities.PaymentSession
	Redirect string
}

type Handler struct {
	logger    *slog.Logger
	api       API
	cart      Cart
	returnURL string
}

func NewHandler(logger *slog.Logger, api API, cart Cart, returnURL string) *Handler {
	return &Handler{
		logger:    logger.With(slog.String("component", "payment_handler")),
		api:       api,
		cart:      cart,
		returnURL: strings.TrimRight(returnURL, "/"),
	}
}

// Finalize runs the branch for a freshly created order. A failed card session
// never touches the order: the outcome routes to the order-status view with a
// payment error flag so the user can retry against the same order.
func (h *Handler) Finalize(ctx context.Context, order entities.Order, method entities.PaymentMethod, cust entities.Customer) (Outcome, error) {
	logger := h.logger.With(slog.Int64("order_id", order.ID), slog.String("payment_method", string(method)))

	switch method {
	case entities.PaymentCOD:
		h.clearCart(ctx, logger)
		logger.InfoContext(ctx, "cash on delivery order completed")
		return Outcome{Completed: true, Redirect: ConfirmationPath(order.PublicToken)}, nil

	case entities.PaymentCard:
		session, err := h.api.InitPayment(ctx, order.ID, cust, h.returnURL+ConfirmationPath(order.PublicToken))
		if err != nil {
			logger.ErrorContext(ctx, "failed to init payment session", slog.Any("error", err))
			return Outcome{Redirect: PaymentErrorPath(order.PublicToken)}, fmt.Errorf("%w: %w", entities.ErrPaymentInit, err)
		}
		logger.InfoContext(ctx, "payment session opened")
		return Outcome{Session: &session}, nil
	}

	return Outcome{}, fmt.Errorf("unsupported payment method %q", method)
}

// Confirm marks a card order paid after the hosted payment callback.
func (h *Handler) Confirm(ctx context.Context, order entities.Order, intentID string) (Outcome, error) {
	logger := h.logger.With(slog.Int64("order_id", order.ID))

	if !ValidIntentID(intentID) {
		logger.WarnContext(ctx, "rejected payment intent", slog.String("intent_id", intentID))
		return Outcome{}, fmt.Errorf("%w: %q", entities.ErrInvalidPaymentIntent, intentID)
	}

	if err := h.api.ConfirmPayment(ctx, order.ID, intentID); err != nil {
		logger.ErrorContext(ctx, "failed to confirm payment", slog.Any("error", err))
		return Outcome{Redirect: PaymentErrorPath(order.PublicToken)}, fmt.Errorf("%w: %w", entities.ErrPaymentConfirm, err)
	}

	h.clearCart(ctx, logger)
	logger.InfoContext(ctx, "card payment confirmed")
	return Outcome{Completed: true, Redirect: ConfirmationPath(order.PublicToken)}, nil
}

func (h *Handler) clearCart(ctx context.Context, logger *slog.Logger) {
	if err := h.cart.Clear(ctx); err != nil {
		logger.WarnContext(ctx, "failed to clear cart", slog.Any("error", err))
	}
}

func ValidIntentID(id string) bool {
	return intentPattern.MatchString(id)
}

// IntentFromSecret extracts the intent id from a "pi_..._secret_..." client secret.
func IntentFromSecret(secret string) string {
	id, _, _ := strings.Cut(secret, "_secret_")
	return id
}

func ConfirmationPath(token string) string {
	return "/orders/confirmation/" + url.PathEscape(token)
}

func PaymentErrorPath(token string) string {
	return "/orders/" + url.PathEscape(token) + "?payment_error=1"
}
