package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

func (c *Client) InitPayment(ctx context.Context, orderID int64, cust entities.Customer, returnURL string) (entities.PaymentSession, error) {
	body := paymentInitRequest{
		Customer: customer{
			Name:  cust.Name,
			Phone: cust.Phone,
			Email: cust.Email,
		},
		ReturnURL: returnURL,
	}

	var resp paymentInitResponse
	if err := c.do(ctx, http.MethodPost, paymentPath(orderID, "init"), nil, body, &resp, nil); err != nil {
		return entities.PaymentSession{}, err
	}

	return entities.PaymentSession{
		ClientSecret: resp.Payment.ClientSecret,
		Amount:       resp.Payment.Amount.Minor(),
		ReturnURL:    returnURL,
	}, nil
}

func (c *Client) ConfirmPayment(ctx context.Context, orderID int64, intentID string) error {
	body := paymentConfirmRequest{PaymentIntentID: intentID}
	return c.do(ctx, http.MethodPost, paymentPath(orderID, "confirm"), nil, body, nil, nil)
}

func paymentPath(orderID int64, action string) string {
	return "/payments/" + strconv.FormatInt(orderID, 10) + "/" + action
}
