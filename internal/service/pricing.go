package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
)

const (
	FreeReasonThreshold = "threshold"
	FreeReasonPickup    = "pickup"

	courierSurcharge = 200
)

type Zone struct {
	Name  string
	Price int64
}

var (
	ZoneAttica   = Zone{Name: "Attica", Price: 350}
	ZoneIslands  = Zone{Name: "Islands", Price: 800}
	ZoneMainland = Zone{Name: "Mainland", Price: 500}
)

// ZoneFor maps a five digit postal code to its delivery zone. The 99xxx range is not served.
func ZoneFor(postalCode string) (Zone, error) {
	if len(postalCode) != 5 {
		return Zone{}, fmt.Errorf("%w: postal code %q", entities.ErrInvalidQuoteRequest, postalCode)
	}
	if _, err := strconv.ParseUint(postalCode, 10, 32); err != nil {
		return Zone{}, fmt.Errorf("%w: postal code %q", entities.ErrInvalidQuoteRequest, postalCode)
	}

	prefix, _ := strconv.Atoi(postalCode[:2])
	switch {
	case prefix == 99:
		return Zone{}, entities.ErrZoneUnavailable
	case prefix >= 10 && prefix <= 19:
		return ZoneAttica, nil
	case prefix >= 80 && prefix <= 85:
		return ZoneIslands, nil
	}
	return ZoneMainland, nil
}

func methodPrice(zone Zone, method entities.ShippingMethod) int64 {
	switch method {
	case entities.ShippingPickup:
		return 0
	case entities.ShippingCourier:
		return zone.Price + courierSurcharge
	}
	return zone.Price
}

type ProductRepo interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]entities.Product, error)
}

type PricingParams struct {
	// FreeShippingThreshold waives a producer's shipping once its subtotal reaches it.
	FreeShippingThreshold int64
	CODFee                int64
	Currency              string
}

type pricingService struct {
	logger   *slog.Logger
	products ProductRepo
	params   PricingParams
	now      func() time.Time
}

func NewPricingService(logger *slog.Logger, products ProductRepo, params PricingParams) *pricingService {
	if params.Currency == "" {
		params.Currency = money.EUR
	}
	return &pricingService{
		logger:   logger.With(slog.String("service", "pricing")),
		products: products,
		params:   params,
		now:      time.Now,
	}
}

// QuoteCart prices shipping per producer. Each producer ships separately, so the
// total is the sum of the producer costs.
func (s *pricingService) QuoteCart(ctx context.Context, req entities.QuoteRequest) (entities.CartShippingQuote, error) {
	if !req.Method.Valid() {
		return entities.CartShippingQuote{}, fmt.Errorf("%w: method %q", entities.ErrInvalidQuoteRequest, req.Method)
	}
	if len(req.Items) == 0 {
		return entities.CartShippingQuote{}, fmt.Errorf("%w: no items", entities.ErrInvalidQuoteRequest)
	}

	zone, err := ZoneFor(req.PostalCode)
	if err != nil {
		return entities.CartShippingQuote{}, err
	}

	products, err := s.lookup(ctx, req.Items)
	if err != nil {
		return entities.CartShippingQuote{}, err
	}

	producers := make([]entities.ProducerShipping, 0)
	index := make(map[int64]int)
	for _, it := range req.Items {
		p := products[it.ProductID]
		i, ok := index[p.ProducerID]
		if !ok {
			i = len(producers)
			index[p.ProducerID] = i
			producers = append(producers, entities.ProducerShipping{
				ProducerID:   p.ProducerID,
				ProducerName: p.ProducerName,
				Zone:         zone.Name,
			})
		}
		producers[i].Subtotal += p.Price * int64(it.Quantity)
		producers[i].WeightGrams += p.WeightGrams * it.Quantity
	}

	quote := entities.CartShippingQuote{
		PaymentMethod: req.PaymentMethod,
		QuotedAt:      s.now().UTC(),
		Currency:      s.params.Currency,
		ZoneName:      zone.Name,
		Method:        req.Method,
	}
	for i := range producers {
		p := &producers[i]
		switch {
		case req.Method == entities.ShippingPickup:
			p.Free, p.FreeReason = true, FreeReasonPickup
		case s.params.FreeShippingThreshold > 0 && p.Subtotal >= s.params.FreeShippingThreshold:
			p.Free, p.FreeReason = true, FreeReasonThreshold
		default:
			p.ShippingCost = methodPrice(zone, req.Method)
		}
		quote.TotalShipping += p.ShippingCost
	}
	quote.Producers = producers

	if req.PaymentMethod == entities.PaymentCOD {
		quote.CODFee = s.params.CODFee
	}

	s.logger.DebugContext(ctx, "cart quoted",
		slog.String("zone", zone.Name),
		slog.Int("producers", len(producers)),
		slog.Int64("total_shipping", quote.TotalShipping),
	)
	return quote, nil
}

// QuoteFlat is the legacy single flat rate for the whole cart.
func (s *pricingService) QuoteFlat(ctx context.Context, req entities.QuoteRequest) (entities.ShippingQuote, error) {
	if !req.Method.Valid() {
		return entities.ShippingQuote{}, fmt.Errorf("%w: method %q", entities.ErrInvalidQuoteRequest, req.Method)
	}
	zone, err := ZoneFor(req.PostalCode)
	if err != nil {
		return entities.ShippingQuote{}, err
	}

	quote := entities.ShippingQuote{
		ZoneName: zone.Name,
		Source:   entities.SourceLegacy,
		QuotedAt: s.now().UTC(),
	}
	if req.Method == entities.ShippingPickup ||
		(s.params.FreeShippingThreshold > 0 && req.Subtotal >= s.params.FreeShippingThreshold) {
		quote.Free = true
		return quote, nil
	}
	quote.Price = methodPrice(zone, req.Method)
	return quote, nil
}

func (s *pricingService) lookup(ctx context.Context, items []entities.QuoteItem) (map[int64]entities.Product, error) {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity %d for product %d", entities.ErrInvalidQuoteRequest, it.Quantity, it.ProductID)
		}
		ids = append(ids, it.ProductID)
	}

	products, err := s.products.GetProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, fmt.Errorf("%w: %w %d", entities.ErrInvalidQuoteRequest, entities.ErrUnknownProduct, id)
		}
	}
	return products, nil
}
