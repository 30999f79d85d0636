package payment_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/payment"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/payment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	order = entities.Order{ID: 7, PublicToken: "tok-7"}
	cust  = entities.Customer{Name: "Maria", Phone: "2101234567"}
)

func newHandler(t *testing.T) (*payment.Handler, *mocks.MockAPI, *mocks.MockCart) {
	api := mocks.NewMockAPI(t)
	cart := mocks.NewMockCart(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return payment.NewHandler(logger, api, cart, "https://shop.example/"), api, cart
}

func TestHandler_Finalize(t *testing.T) {
	type MockBehavior func(api *mocks.MockAPI, cart *mocks.MockCart)

	initErr := errors.New("provider down")
	session := entities.PaymentSession{ClientSecret: "pi_abcdefgh12_secret_xyz", Amount: 3100}

	testCases := []struct {
		name         string
		method       entities.PaymentMethod
		mockBehavior MockBehavior
		want         payment.Outcome
		wantErr      error
	}{
		{
			name:   "cash on delivery",
			method: entities.PaymentCOD,
			mockBehavior: func(api *mocks.MockAPI, cart *mocks.MockCart) {
				cart.EXPECT().Clear(mock.Anything).Return(nil)
			},
			want: payment.Outcome{Completed: true, Redirect: "/orders/confirmation/tok-7"},
		},
		{
			name:   "cash on delivery survives cart clear failure",
			method: entities.PaymentCOD,
			mockBehavior: func(api *mocks.MockAPI, cart *mocks.MockCart) {
				cart.EXPECT().Clear(mock.Anything).Return(errors.New("storage full"))
			},
			want: payment.Outcome{Completed: true, Redirect: "/orders/confirmation/tok-7"},
		},
		{
			name:   "card opens session",
			method: entities.PaymentCard,
			mockBehavior: func(api *mocks.MockAPI, cart *mocks.MockCart) {
				api.EXPECT().InitPayment(mock.Anything, int64(7), cust, "https://shop.example/orders/confirmation/tok-7").
					Return(session, nil)
			},
			want: payment.Outcome{Session: &session},
		},
		{
			name:   "card session failure keeps order",
			method: entities.PaymentCard,
			mockBehavior: func(api *mocks.MockAPI, cart *mocks.MockCart) {
				api.EXPECT().InitPayment(mock.Anything, int64(7), cust, mock.Anything).
					Return(entities.PaymentSession{}, initErr)
			},
			want:    payment.Outcome{Redirect: "/orders/tok-7?payment_error=1"},
			wantErr: entities.ErrPaymentInit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, api, cart := newHandler(t)
			tc.mockBehavior(api, cart)

			got, err := h.Finalize(context.Background(), order, tc.method, cust)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHandler_FinalizeUnknownMethod(t *testing.T) {
	h, _, _ := newHandler(t)
	_, err := h.Finalize(context.Background(), order, "BITCOIN", cust)
	assert.Error(t, err)
}

func TestHandler_Confirm(t *testing.T) {
	type MockBehavior func(api *mocks.MockAPI, cart *mocks.MockCart)

	testCases := []struct {
		name         string
		intentID     string
		mockBehavior MockBehavior
		want         payment.Outcome
		wantErr      error
	}{
		{
			name:     "confirmed",
			intentID: "pi_3MtwBwLkdIwHu7ix",
			mockBehavior: func(api *mocks.MockAPI, cart *mocks.MockCart) {
				api.EXPECT().ConfirmPayment(mock.Anything, int64(7), "pi_3MtwBwLkdIwHu7ix").Return(nil)
				cart.EXPECT().Clear(mock.Anything).Return(nil)
			},
			want: payment.Outcome{Completed: true, Redirect: "/orders/confirmation/tok-7"},
		},
		{
			name:         "missing intent",
			intentID:     "",
			mockBehavior: func(api *mocks.MockAPI, cart *mocks.MockCart) {},
			wantErr:      entities.ErrInvalidPaymentIntent,
		},
		{
			name:         "malformed intent",
			intentID:     "ch_3MtwBwLkdIwHu7ix",
			mockBehavior: func(api *mocks.MockAPI, cart *mocks.MockCart) {},
			wantErr:      entities.ErrInvalidPaymentIntent,
		},
		{
			name:         "too short",
			intentID:     "pi_1234",
			mockBehavior: func(api *mocks.MockAPI, cart *mocks.MockCart) {},
			wantErr:      entities.ErrInvalidPaymentIntent,
		},
		{
			name:     "provider rejects",
			intentID: "pi_3MtwBwLkdIwHu7ix",
			mockBehavior: func(api *mocks.MockAPI, cart *mocks.MockCart) {
				api.EXPECT().ConfirmPayment(mock.Anything, int64(7), mock.Anything).
					Return(&entities.NetworkError{Status: 402})
			},
			want:    payment.Outcome{Redirect: "/orders/tok-7?payment_error=1"},
			wantErr: entities.ErrPaymentConfirm,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, api, cart := newHandler(t)
			tc.mockBehavior(api, cart)

			got, err := h.Confirm(context.Background(), order, tc.intentID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIntentFromSecret(t *testing.T) {
	assert.Equal(t, "pi_abcdefgh12", payment.IntentFromSecret("pi_abcdefgh12_secret_xyz"))
	assert.Equal(t, "opaque", payment.IntentFromSecret("opaque"))
	assert.True(t, payment.ValidIntentID(payment.IntentFromSecret("pi_abcdefgh12_secret_xyz")))
}
