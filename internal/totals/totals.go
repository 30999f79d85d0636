package totals

import (
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
	"github.com/shopspring/decimal"
)

type Params struct {
	// FreeShippingThreshold waives shipping when the subtotal reaches it. Zero disables it.
	FreeShippingThreshold int64
	// ProducerThresholds waive one producer's share once that producer's
	// subtotal reaches its own threshold.
	ProducerThresholds map[int64]int64
	TaxRate               decimal.Decimal
	// DefaultShipping is the estimate shown before any quote is priced. It is never submitted.
	DefaultShipping int64
	Currency        string
}

func DefaultParams() Params {
	return Params{
		FreeShippingThreshold: 3500,
		TaxRate:               decimal.NewFromFloat(0.24),
		DefaultShipping:       350,
		Currency:              money.EUR,
	}
}

type Calculator struct {
	params Params
}

func NewCalculator(params Params) *Calculator {
	if params.Currency == "" {
		params.Currency = money.EUR
	}
	return &Calculator{params: params}
}

func (c *Calculator) Params() Params {
	return c.params
}

// Calc derives a fresh Totals snapshot. All amounts are minor units; tax is the
// only value that needs rounding, so the grand total always equals the sum of its parts.
func (c *Calculator) Calc(lines []entities.CartLine, method entities.ShippingMethod, quote entities.Quote, payment entities.PaymentMethod) entities.Totals {
	t := entities.Totals{Currency: c.params.Currency}
	if len(lines) == 0 {
		return t
	}

	t.Subtotal = entities.Subtotal(lines)
	t.Shipping, t.FreeShipping, t.ShippingEstimated = c.shipping(lines, t.Subtotal, method, quote)

	if payment == entities.PaymentCOD {
		t.CODFee = quote.CODFee()
	}

	t.Tax = money.FromDecimal(money.ToDecimal(t.Subtotal).Mul(c.params.TaxRate))
	t.GrandTotal = t.Subtotal + t.Shipping + t.CODFee + t.Tax
	return t
}

func (c *Calculator) shipping(lines []entities.CartLine, subtotal int64, method entities.ShippingMethod, quote entities.Quote) (cost int64, free, estimated bool) {
	if method == entities.ShippingPickup {
		return 0, true, false
	}
	if c.params.FreeShippingThreshold > 0 && subtotal >= c.params.FreeShippingThreshold {
		return 0, true, false
	}
	if quote.Priced() && quote.Cart != nil && len(c.params.ProducerThresholds) > 0 {
		cost = max(quote.Cart.TotalShipping-c.waived(lines, quote.Cart.Producers), 0)
		return cost, cost == 0, false
	}
	if s, ok := quote.Shipping(); ok {
		if s.Free {
			return 0, true, false
		}
		return s.Price, false, false
	}
	return c.params.DefaultShipping, false, true
}

// waived is the quoted shipping of producers whose own threshold the cart
// reaches. Producers the quote already ships free are not counted twice.
func (c *Calculator) waived(lines []entities.CartLine, producers []entities.ProducerShipping) int64 {
	subtotals := make(map[int64]int64, len(producers))
	for _, l := range lines {
		subtotals[l.ProducerID] += l.Total()
	}

	var sum int64
	for _, p := range producers {
		threshold, ok := c.params.ProducerThresholds[p.ProducerID]
		if p.Free || !ok || threshold <= 0 || subtotals[p.ProducerID] < threshold {
			continue
		}
		sum += p.ShippingCost
	}
	return sum
}
