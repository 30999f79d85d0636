package totals_test

import (
	"math/rand/v2"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/totals"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(price int64, qty int) entities.CartLine {
	return entities.CartLine{ProductID: 1, ProducerID: 1, UnitPrice: price, Quantity: qty}
}

func TestCalculator_Calc(t *testing.T) {
	cartQuote := entities.NewCartQuote(entities.CartShippingQuote{TotalShipping: 500, CODFee: 200})
	freeCart := entities.NewCartQuote(entities.CartShippingQuote{TotalShipping: 0, CODFee: 200})
	flatQuote := entities.NewFlatQuote(entities.ShippingQuote{Price: 450, Source: entities.SourceLegacy})
	freeFlat := entities.NewFlatQuote(entities.ShippingQuote{Price: 450, Free: true})

	testCases := []struct {
		name    string
		lines   []entities.CartLine
		method  entities.ShippingMethod
		quote   entities.Quote
		payment entities.PaymentMethod
		want    entities.Totals
	}{
		{
			name:    "below threshold without quote is estimated",
			lines:   []entities.CartLine{line(3499, 1)},
			method:  entities.ShippingHome,
			quote:   entities.NoQuote(),
			payment: entities.PaymentCard,
			want: entities.Totals{
				Subtotal: 3499, Shipping: 350, Tax: 840, GrandTotal: 4689,
				ShippingEstimated: true, Currency: "EUR",
			},
		},
		{
			name:    "threshold reached without quote",
			lines:   []entities.CartLine{line(3500, 1)},
			method:  entities.ShippingHome,
			quote:   entities.NoQuote(),
			payment: entities.PaymentCard,
			want: entities.Totals{
				Subtotal: 3500, Shipping: 0, Tax: 840, GrandTotal: 4340,
				FreeShipping: true, Currency: "EUR",
			},
		},
		{
			name:    "threshold beats quoted price",
			lines:   []entities.CartLine{line(2000, 2)},
			method:  entities.ShippingCourier,
			quote:   cartQuote,
			payment: entities.PaymentCard,
			want: entities.Totals{
				Subtotal: 4000, Shipping: 0, Tax: 960, GrandTotal: 4960,
				FreeShipping: true, Currency: "EUR",
			},
		},
		{
			name:    "cart quote with cod fee",
			lines:   []entities.CartLine{line(1000, 2)},
			method:  entities.ShippingHome,
			quote:   cartQuote,
			payment: entities.PaymentCOD,
			want: entities.Totals{
				Subtotal: 2000, Shipping: 500, CODFee: 200, Tax: 480, GrandTotal: 3180,
				Currency: "EUR",
			},
		},
		{
			name:    "cod fee only for cash on delivery",
			lines:   []entities.CartLine{line(1000, 2)},
			method:  entities.ShippingHome,
			quote:   cartQuote,
			payment: entities.PaymentCard,
			want: entities.Totals{
				Subtotal: 2000, Shipping: 500, Tax: 480, GrandTotal: 2980,
				Currency: "EUR",
			},
		},
		{
			name:    "legacy quote has no cod fee",
			lines:   []entities.CartLine{line(1999, 1)},
			method:  entities.ShippingHome,
			quote:   flatQuote,
			payment: entities.PaymentCOD,
			want: entities.Totals{
				Subtotal: 1999, Shipping: 450, Tax: 480, GrandTotal: 2929,
				Currency: "EUR",
			},
		},
		{
			name:    "quote reports free shipping",
			lines:   []entities.CartLine{line(1000, 1)},
			method:  entities.ShippingHome,
			quote:   freeFlat,
			payment: entities.PaymentCard,
			want: entities.Totals{
				Subtotal: 1000, Shipping: 0, Tax: 240, GrandTotal: 1240,
				FreeShipping: true, Currency: "EUR",
			},
		},
		{
			name:    "zero total shipping from cart quote",
			lines:   []entities.CartLine{line(1000, 1)},
			method:  entities.ShippingHome,
			quote:   freeCart,
			payment: entities.PaymentCOD,
			want: entities.Totals{
				Subtotal: 1000, Shipping: 0, CODFee: 200, Tax: 240, GrandTotal: 1440,
				FreeShipping: true, Currency: "EUR",
			},
		},
		{
			name:    "pickup ships free",
			lines:   []entities.CartLine{line(1000, 1)},
			method:  entities.ShippingPickup,
			quote:   cartQuote,
			payment: entities.PaymentCard,
			want: entities.Totals{
				Subtotal: 1000, Shipping: 0, Tax: 240, GrandTotal: 1240,
				FreeShipping: true, Currency: "EUR",
			},
		},
		{
			name:    "unavailable quote falls back to estimate",
			lines:   []entities.CartLine{line(1000, 1)},
			method:  entities.ShippingHome,
			quote:   entities.UnavailableQuote("no delivery"),
			payment: entities.PaymentCOD,
			want: entities.Totals{
				Subtotal: 1000, Shipping: 350, Tax: 240, GrandTotal: 1590,
				ShippingEstimated: true, Currency: "EUR",
			},
		},
		{
			name:    "empty cart",
			method:  entities.ShippingHome,
			quote:   cartQuote,
			payment: entities.PaymentCOD,
			want:    entities.Totals{Currency: "EUR"},
		},
	}

	calc := totals.NewCalculator(totals.DefaultParams())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.Calc(tc.lines, tc.method, tc.quote, tc.payment)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculator_ProducerThresholds(t *testing.T) {
	oil := entities.CartLine{ProductID: 1, ProducerID: 10, UnitPrice: 1250, Quantity: 2}
	feta := entities.CartLine{ProductID: 3, ProducerID: 20, UnitPrice: 850, Quantity: 1}
	quote := entities.NewCartQuote(entities.CartShippingQuote{
		Producers: []entities.ProducerShipping{
			{ProducerID: 10, Subtotal: 2500, ShippingCost: 350},
			{ProducerID: 20, Subtotal: 850, ShippingCost: 350},
		},
		TotalShipping: 700,
	})

	testCases := []struct {
		name       string
		thresholds map[int64]int64
		quote      entities.Quote
		wantCost   int64
		wantFree   bool
	}{
		{
			name:     "no overrides uses quoted total",
			quote:    quote,
			wantCost: 700,
		},
		{
			name:       "producer reaching its own threshold is waived",
			thresholds: map[int64]int64{10: 2000},
			quote:      quote,
			wantCost:   350,
		},
		{
			name:       "producer below its threshold still pays",
			thresholds: map[int64]int64{20: 1000},
			quote:      quote,
			wantCost:   700,
		},
		{
			name:       "every producer waived",
			thresholds: map[int64]int64{10: 2000, 20: 500},
			quote:      quote,
			wantCost:   0,
			wantFree:   true,
		},
		{
			name:       "quote already free for producer",
			thresholds: map[int64]int64{10: 2000},
			quote: entities.NewCartQuote(entities.CartShippingQuote{
				Producers: []entities.ProducerShipping{
					{ProducerID: 10, Subtotal: 2500, Free: true},
					{ProducerID: 20, Subtotal: 850, ShippingCost: 350},
				},
				TotalShipping: 350,
			}),
			wantCost: 350,
		},
		{
			name:       "flat quote ignores overrides",
			thresholds: map[int64]int64{10: 2000, 20: 500},
			quote:      entities.NewFlatQuote(entities.ShippingQuote{Price: 450}),
			wantCost:   450,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := totals.DefaultParams()
			params.ProducerThresholds = tc.thresholds
			calc := totals.NewCalculator(params)

			got := calc.Calc([]entities.CartLine{oil, feta}, entities.ShippingHome, tc.quote, entities.PaymentCard)
			assert.Equal(t, tc.wantCost, got.Shipping)
			assert.Equal(t, tc.wantFree, got.FreeShipping)
			assert.False(t, got.ShippingEstimated)
			assert.Equal(t, got.Subtotal+got.Shipping+got.Tax, got.GrandTotal)
		})
	}
}

func TestCalculator_GlobalThresholdBeatsProducerRules(t *testing.T) {
	params := totals.DefaultParams()
	params.ProducerThresholds = map[int64]int64{10: 10000}
	calc := totals.NewCalculator(params)

	quote := entities.NewCartQuote(entities.CartShippingQuote{
		Producers:     []entities.ProducerShipping{{ProducerID: 10, Subtotal: 4000, ShippingCost: 350}},
		TotalShipping: 350,
	})
	got := calc.Calc([]entities.CartLine{{ProductID: 1, ProducerID: 10, UnitPrice: 4000, Quantity: 1}}, entities.ShippingHome, quote, entities.PaymentCard)
	assert.Zero(t, got.Shipping)
	assert.True(t, got.FreeShipping)
}

func TestCalculator_TaxRounding(t *testing.T) {
	calc := totals.NewCalculator(totals.Params{TaxRate: decimal.RequireFromString("0.24")})

	testCases := []struct {
		subtotal int64
		wantTax  int64
	}{
		{subtotal: 1, wantTax: 0},
		{subtotal: 3, wantTax: 1},
		{subtotal: 1999, wantTax: 480},
		{subtotal: 2, wantTax: 0},
		{subtotal: 25, wantTax: 6},
		{subtotal: 99999, wantTax: 24000},
	}

	for _, tc := range testCases {
		got := calc.Calc([]entities.CartLine{line(tc.subtotal, 1)}, entities.ShippingPickup, entities.NoQuote(), entities.PaymentCard)
		assert.Equal(t, tc.wantTax, got.Tax, "subtotal %d", tc.subtotal)
	}
}

func TestCalculator_Consistency(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	calc := totals.NewCalculator(totals.DefaultParams())

	methods := []entities.ShippingMethod{entities.ShippingHome, entities.ShippingPickup, entities.ShippingCourier}
	payments := []entities.PaymentMethod{entities.PaymentCOD, entities.PaymentCard}

	for range 1000 {
		var lines []entities.CartLine
		for range 1 + rng.IntN(5) {
			lines = append(lines, line(1+rng.Int64N(5000), 1+rng.IntN(4)))
		}

		var quote entities.Quote
		switch rng.IntN(3) {
		case 0:
			quote = entities.NoQuote()
		case 1:
			quote = entities.NewCartQuote(entities.CartShippingQuote{TotalShipping: rng.Int64N(1500), CODFee: rng.Int64N(300)})
		default:
			quote = entities.NewFlatQuote(entities.ShippingQuote{Price: rng.Int64N(1500)})
		}

		got := calc.Calc(lines, methods[rng.IntN(3)], quote, payments[rng.IntN(2)])

		assert.Equal(t, got.Subtotal+got.Shipping+got.CODFee+got.Tax, got.GrandTotal)
		assert.Equal(t, entities.Subtotal(lines), got.Subtotal)
		if got.FreeShipping {
			assert.Zero(t, got.Shipping)
		}
	}
}
