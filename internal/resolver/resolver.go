package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/scheduler"
)

const unavailableMessage = "Shipping is unavailable for this address"

type QuoteFetcher interface {
	FetchCartQuote(ctx context.Context, req entities.QuoteRequest) (entities.CartShippingQuote, error)
	FetchLegacyQuote(ctx context.Context, req entities.QuoteRequest) (entities.ShippingQuote, error)
}

type EventKind int

const (
	QuoteResolved EventKind = iota + 1
	QuoteFailed
)

func (k EventKind) String() string {
	switch k {
	case QuoteResolved:
		return "resolved"
	case QuoteFailed:
		return "failed"
	}
	return "unknown"
}

// Event is emitted once per finished resolution. Token is zero when the
// resolution did not run under a scheduler.
type Event struct {
	Kind    EventKind
	Token   scheduler.Token
	Request entities.QuoteRequest
	Quote   entities.Quote
	Err     error
}

type Listener interface {
	OnQuoteEvent(Event)
}

// Resolver walks the quote source chain: zone quote, then legacy quote, then no quote.
type Resolver struct {
	logger  *slog.Logger
	fetcher QuoteFetcher

	mu        sync.RWMutex
	listeners []Listener
}

func New(logger *slog.Logger, fetcher QuoteFetcher) *Resolver {
	return &Resolver{
		logger:  logger.With(slog.String("component", "quote_resolver")),
		fetcher: fetcher,
	}
}

func (r *Resolver) Subscribe(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

// Resolve returns the best available quote for req. An exhausted chain is not
// an error: it yields an empty quote and a QuoteFailed event. Only a cancelled
// ctx returns an error, and then no event is emitted.
func (r *Resolver) Resolve(ctx context.Context, req entities.QuoteRequest) (entities.Quote, error) {
	logger := r.logger.With(slog.String("quote_key", req.Key()))

	cart, err := r.fetcher.FetchCartQuote(ctx, req)
	if err == nil {
		quote := entities.NewCartQuote(cart)
		r.emit(ctx, Event{Kind: QuoteResolved, Request: req, Quote: quote})
		return quote, nil
	}
	if ctx.Err() != nil {
		return entities.NoQuote(), fmt.Errorf("quote resolution cancelled: %w", ctx.Err())
	}

	if errors.Is(err, entities.ErrZoneUnavailable) {
		logger.InfoContext(ctx, "zone unavailable", slog.String("postal_code", req.PostalCode))
		quote := entities.UnavailableQuote(unavailableText(err))
		r.emit(ctx, Event{Kind: QuoteResolved, Request: req, Quote: quote})
		return quote, nil
	}

	if errors.Is(err, entities.ErrInvalidQuoteRequest) {
		r.emit(ctx, Event{Kind: QuoteFailed, Request: req, Quote: entities.NoQuote(), Err: err})
		return entities.NoQuote(), nil
	}

	logger.WarnContext(ctx, "zone quote failed, falling back to legacy quote", slog.Any("error", err))

	flat, legacyErr := r.fetcher.FetchLegacyQuote(ctx, req)
	if legacyErr == nil {
		quote := entities.NewFlatQuote(flat)
		r.emit(ctx, Event{Kind: QuoteResolved, Request: req, Quote: quote})
		return quote, nil
	}
	if ctx.Err() != nil {
		return entities.NoQuote(), fmt.Errorf("quote resolution cancelled: %w", ctx.Err())
	}

	logger.WarnContext(ctx, "legacy quote failed", slog.Any("error", legacyErr))
	r.emit(ctx, Event{
		Kind:    QuoteFailed,
		Request: req,
		Quote:   entities.NoQuote(),
		Err:     errors.Join(err, legacyErr),
	})
	return entities.NoQuote(), nil
}

func (r *Resolver) emit(ctx context.Context, ev Event) {
	ev.Token, _ = scheduler.TokenFromContext(ctx)
	observeEvent(ev)

	r.mu.RLock()
	listeners := make([]Listener, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.RUnlock()

	for _, l := range listeners {
		l.OnQuoteEvent(ev)
	}
}

func unavailableText(err error) string {
	var ne *entities.NetworkError
	if errors.As(err, &ne) && ne.Message != "" {
		return ne.Message
	}
	return unavailableMessage
}
