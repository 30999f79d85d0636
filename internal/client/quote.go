package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
)

// FetchCartQuote calls the per-producer zone endpoint.
func (c *Client) FetchCartQuote(ctx context.Context, req entities.QuoteRequest) (entities.CartShippingQuote, error) {
	if err := checkQuoteRequest(req); err != nil {
		return entities.CartShippingQuote{}, err
	}

	body := cartQuoteRequest{
		PostalCode:    req.PostalCode,
		Method:        string(req.Method),
		Items:         quoteItemsToJSON(req.Items),
		PaymentMethod: string(req.PaymentMethod),
	}

	var resp cartQuoteResponse
	if err := c.do(ctx, http.MethodPost, "/shipping/quote/cart", nil, body, &resp, nil); err != nil {
		return entities.CartShippingQuote{}, err
	}
	return cartQuoteToEntity(resp), nil
}

// FetchLegacyQuote calls the single flat-rate endpoint.
func (c *Client) FetchLegacyQuote(ctx context.Context, req entities.QuoteRequest) (entities.ShippingQuote, error) {
	if err := checkQuoteRequest(req); err != nil {
		return entities.ShippingQuote{}, err
	}

	body := legacyQuoteRequest{
		PostalCode: req.PostalCode,
		Method:     string(req.Method),
		Subtotal:   money.Amount(req.Subtotal),
	}

	var resp legacyQuoteResponse
	if err := c.do(ctx, http.MethodPost, "/shipping/quote", nil, body, &resp, nil); err != nil {
		return entities.ShippingQuote{}, err
	}

	// the legacy endpoint sends no timestamp, so QuotedAt stays zero and
	// orders priced from it carry no quoted_at
	return entities.ShippingQuote{
		Price:    resp.PriceEUR.Minor(),
		ZoneName: resp.ZoneName,
		Free:     resp.FreeShipping,
		Source:   resp.Source,
	}, nil
}

func checkQuoteRequest(req entities.QuoteRequest) error {
	if req.PostalCode == "" {
		return fmt.Errorf("%w: empty postal code", entities.ErrInvalidQuoteRequest)
	}
	if !req.Method.Valid() {
		return fmt.Errorf("%w: unknown shipping method %q", entities.ErrInvalidQuoteRequest, req.Method)
	}
	return nil
}
