package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
)

const IdempotencyKeyHeader = "Idempotency-Key"

// CreateOrder submits an order. The same key always maps to at most one order server-side.
func (c *Client) CreateOrder(ctx context.Context, key string, req entities.OrderRequest) (entities.Order, error) {
	body := orderRequest{
		Items:           quoteItemsToJSON(req.Items),
		Currency:        req.Currency,
		ShippingMethod:  string(req.ShippingMethod),
		PaymentMethod:   string(req.PaymentMethod),
		ShippingAddress: addressToJSON(req.Address),
		QuotedAt:        req.QuotedAt,
	}
	if req.QuotedShipping != nil {
		body.QuotedShipping = money.Ptr(*req.QuotedShipping)
	}

	header := http.Header{}
	header.Set(IdempotencyKeyHeader, key)

	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", header, body, &resp, orderError); err != nil {
		return entities.Order{}, err
	}

	return entities.Order{
		ID:             resp.ID,
		PublicToken:    resp.PublicToken,
		PaymentOrderID: resp.PaymentOrderID,
		IdempotencyKey: key,
		ShippingMethod: req.ShippingMethod,
		PaymentMethod:  req.PaymentMethod,
		Address:        req.Address,
	}, nil
}

// GetOrder loads the order-status view by public token.
func (c *Client) GetOrder(ctx context.Context, token string) (entities.Order, error) {
	var resp orderStatusResponse
	err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(token), nil, nil, &resp, func(status int, body errorResponse) error {
		if status == http.StatusNotFound {
			return entities.ErrOrderNotFound
		}
		return networkError(status, body)
	})
	if err != nil {
		return entities.Order{}, err
	}
	return orderStatusToEntity(resp), nil
}

func orderError(status int, body errorResponse) error {
	if body.Code == entities.CodeShippingChanged && body.QuotedTotal != nil && body.LockedTotal != nil {
		return &entities.ShippingChangedError{
			QuotedTotal: body.QuotedTotal.Minor(),
			LockedTotal: body.LockedTotal.Minor(),
		}
	}

	switch status {
	case http.StatusConflict:
		return &entities.StockConflictError{Message: body.Message}
	case http.StatusBadRequest:
		return &entities.OrderValidationError{Message: body.Message, Fields: body.Fields}
	}
	return networkError(status, body)
}
