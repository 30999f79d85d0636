package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/client"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/payment"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/resolver"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"

	"github.com/joho/godotenv"
)

type options struct {
	cartPath string
	address  entities.Address
	method   string
	payment  string
	accept   bool
	intent   string
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.cartPath, "cart", "cart.yaml", "path to the YAML cart file")
	flag.StringVar(&opts.address.Name, "name", "", "recipient name")
	flag.StringVar(&opts.address.Phone, "phone", "", "recipient phone, e.g. +302101234567")
	flag.StringVar(&opts.address.Line1, "line1", "", "street address")
	flag.StringVar(&opts.address.City, "city", "", "city")
	flag.StringVar(&opts.address.PostalCode, "postal", "", "5-digit postal code")
	flag.StringVar(&opts.address.Country, "country", "GR", "ISO 3166-1 alpha-2 country code")
	flag.StringVar(&opts.method, "method", string(entities.ShippingHome), "shipping method: HOME, PICKUP or COURIER")
	flag.StringVar(&opts.payment, "payment", string(entities.PaymentCOD), "payment method: COD or CARD")
	flag.BoolVar(&opts.accept, "accept", false, "accept a changed shipping price and resubmit")
	flag.StringVar(&opts.intent, "intent", "", `payment intent to confirm a card order with; "auto" takes it from the client secret`)
	flag.Parse()
	return opts
}

// Drives one checkout against the configured backend.
func main() {
	opts := parseFlags()

	conf := config.New()
	logger := newLogger(conf.Env)
	exitIfErr("invalid config", conf.ValidateClient())

	lines, thresholds, err := loadCart(opts.cartPath)
	exitIfErr("failed to load cart", err)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	api := client.New(logger, conf.Client)
	quotes := resolver.New(logger, api)
	cart := &memoryCart{lines: lines}
	payments := payment.NewHandler(logger, api, cart, conf.Client.ReturnURL)

	checkoutOpts := checkout.OptionsFromConfig(conf.Client)
	checkoutOpts.Totals.ProducerThresholds = thresholds
	o := checkout.New(logger, api, quotes, payments, checkoutOpts)
	defer o.Close()

	o.SetCart(lines)
	o.SetShippingMethod(entities.ShippingMethod(opts.method))
	o.SetPaymentMethod(entities.PaymentMethod(opts.payment))
	o.SetAddress(opts.address)

	st, err := submit(ctx, o)
	if mismatch, ok := st.(checkout.ReconcilingMismatch); ok {
		fmt.Printf("shipping changed: quoted %s, now %s\n", money.Format(mismatch.QuotedTotal), money.Format(mismatch.LockedTotal))
		if !opts.accept {
			o.CancelShippingChange()
			exitIfErr("order not placed", errors.New("rerun with -accept to take the new price"))
		}
		if st, err = o.AcceptShippingChange(ctx); err == nil {
			st, err = submit(ctx, o)
		}
	}

	if awaiting, ok := st.(checkout.AwaitingCardPayment); ok && opts.intent != "" {
		printState(os.Stdout, st)
		intent := opts.intent
		if intent == "auto" && awaiting.Session != nil {
			intent = payment.IntentFromSecret(awaiting.Session.ClientSecret)
		}
		st, err = o.ConfirmCardPayment(ctx, intent)
	}

	printState(os.Stdout, st)
	if err != nil {
		exitIfErr("checkout failed", err)
	}
	if cart.Len() == 0 {
		fmt.Println("cart cleared")
	}
}

// submit shows the quoted totals and submits them. The first Submit may only
// fetch the quote, in which case it is called once more with the price shown.
func submit(ctx context.Context, o *checkout.Orchestrator) (checkout.State, error) {
	st, err := o.Submit(ctx)
	if err != nil {
		return st, err
	}
	if ready, ok := st.(checkout.ReadyToSubmit); ok {
		printTotals(os.Stdout, ready.Totals)
		return o.Submit(ctx)
	}
	return st, nil
}

func printTotals(w io.Writer, t entities.Totals) {
	fmt.Fprintf(w, "subtotal:    %s\n", money.FormatCurrency(t.Subtotal, t.Currency))
	fmt.Fprintf(w, "shipping:    %s\n", money.FormatCurrency(t.Shipping, t.Currency))
	if t.CODFee > 0 {
		fmt.Fprintf(w, "cod fee:     %s\n", money.FormatCurrency(t.CODFee, t.Currency))
	}
	fmt.Fprintf(w, "tax:         %s\n", money.FormatCurrency(t.Tax, t.Currency))
	fmt.Fprintf(w, "grand total: %s\n", money.FormatCurrency(t.GrandTotal, t.Currency))
}

func printState(w io.Writer, st checkout.State) {
	switch st := st.(type) {
	case checkout.Completed:
		fmt.Fprintf(w, "order %d placed, see %s\n", st.Order.ID, st.Redirect)
	case checkout.AwaitingCardPayment:
		if st.Session != nil {
			fmt.Fprintf(w, "order %d awaiting payment of %s, client secret %s\n",
				st.Order.ID, money.Format(st.Session.Amount), st.Session.ClientSecret)
			return
		}
		fmt.Fprintf(w, "order %d created but payment could not start, see %s\n", st.Order.ID, st.Redirect)
	case checkout.Failed:
		fmt.Fprintln(w, st.Message)
	case checkout.ReadyToSubmit:
		printTotals(w, st.Totals)
		if st.Quote.Message != "" {
			fmt.Fprintln(w, st.Quote.Message)
		}
	case checkout.Idle:
		for field, tag := range st.FieldErrors {
			fmt.Fprintf(w, "%s: %s\n", field, tag)
		}
	default:
		fmt.Fprintf(w, "checkout stopped in %s\n", st.Name())
	}
}

func init() {
	godotenv.Load()
}

// newLogger writes to stderr so stdout only carries the checkout result.
func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func exitIfErr(prefix string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prefix, err)
		os.Exit(1)
	}
}
