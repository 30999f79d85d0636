package checkout

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/payment"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/resolver"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/scheduler"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/totals"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrQuoteRequired     = errors.New("a priced shipping quote is required to submit")
	ErrSubmitInProgress  = errors.New("submission already in progress")
	ErrInvalidTransition = errors.New("operation not allowed in current checkout state")
	ErrClosed            = errors.New("checkout closed")
)

const (
	msgStockConflict = "Some items in your cart are no longer available. Please review your cart."
	msgRejected      = "The order could not be accepted. Please check your details."
	msgGeneric       = "Something went wrong while placing your order. Please try again."
)

type API interface {
	CreateOrder(ctx context.Context, key string, req entities.OrderRequest) (entities.Order, error)
}

type QuoteResolver interface {
	Resolve(ctx context.Context, req entities.QuoteRequest) (entities.Quote, error)
	Subscribe(l resolver.Listener)
}

type PaymentBranch interface {
	Finalize(ctx context.Context, order entities.Order, method entities.PaymentMethod, cust entities.Customer) (payment.Outcome, error)
	Confirm(ctx context.Context, order entities.Order, intentID string) (payment.Outcome, error)
}

type Options struct {
	Totals         totals.Params
	DebounceDelay  time.Duration
	QuoteCacheSize int
	QuoteCacheTTL  time.Duration
	// SubmitRetry applies to transport failures and 5xx only. Retryable is always overridden.
	SubmitRetry utils.RetryConfig
	NewKey      func() string
}

func DefaultOptions() Options {
	return Options{
		Totals:         totals.DefaultParams(),
		DebounceDelay:  scheduler.DefaultDelay,
		QuoteCacheSize: 64,
		QuoteCacheTTL:  10 * time.Minute,
		SubmitRetry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
		},
		NewKey: uuid.NewString,
	}
}

func OptionsFromConfig(cfg config.Client) Options {
	opts := DefaultOptions()
	opts.Totals = totals.Params{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		TaxRate:               cfg.TaxRate,
		DefaultShipping:       cfg.DefaultShipping,
		Currency:              opts.Totals.Currency,
	}
	opts.DebounceDelay = cfg.DebounceDelay
	opts.QuoteCacheSize = cfg.QuoteCacheSize
	opts.QuoteCacheTTL = cfg.QuoteCacheTTL
	opts.SubmitRetry.MaxAttempts = cfg.SubmitAttempts
	opts.SubmitRetry.InitialDelay = cfg.SubmitInitialDelay
	return opts
}

// Orchestrator drives one checkout. All methods are safe for concurrent use;
// state changes happen under a single mutex that is never held across a network call.
type Orchestrator struct {
	logger    *slog.Logger
	api       API
	quotes    QuoteResolver
	payments  PaymentBranch
	calc      *totals.Calculator
	scheduler *scheduler.Scheduler
	cache     *cache.LRUCache[entities.Quote]
	validate  *validator.Validate
	retry     utils.RetryConfig
	newKey    func() string

	mu      sync.Mutex
	lines   []entities.CartLine
	address entities.Address
	method  entities.ShippingMethod
	payment entities.PaymentMethod
	// quote always belongs to the current inputs, or is empty.
	quote  entities.Quote
	state  State
	key    string
	closed bool
}

func New(logger *slog.Logger, api API, quotes QuoteResolver, payments PaymentBranch, opts Options) *Orchestrator {
	defaults := DefaultOptions()
	if opts.QuoteCacheSize <= 0 {
		opts.QuoteCacheSize = defaults.QuoteCacheSize
	}
	if opts.QuoteCacheTTL <= 0 {
		opts.QuoteCacheTTL = defaults.QuoteCacheTTL
	}
	if opts.NewKey == nil {
		opts.NewKey = defaults.NewKey
	}
	opts.SubmitRetry.Retryable = entities.IsTemporary

	o := &Orchestrator{
		logger:    logger.With(slog.String("component", "checkout")),
		api:       api,
		quotes:    quotes,
		payments:  payments,
		calc:      totals.NewCalculator(opts.Totals),
		scheduler: scheduler.New(opts.DebounceDelay),
		cache:     cache.NewLRUCache[entities.Quote](opts.QuoteCacheSize, opts.QuoteCacheTTL),
		validate:  newValidator(),
		retry:     opts.SubmitRetry,
		newKey:    opts.NewKey,

		method:  entities.ShippingHome,
		payment: entities.PaymentCOD,
		quote:   entities.NoQuote(),
		state:   Idle{},
	}
	o.key = o.newKey()
	quotes.Subscribe(o)
	return o
}

func (o *Orchestrator) SetCart(lines []entities.CartLine) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.lines = slices.Clone(lines)
	if _, done := o.state.(Completed); done && len(o.lines) > 0 {
		o.setStateLocked(Idle{})
	}
	o.cache.Clear()
	o.requoteLocked()
}

func (o *Orchestrator) SetAddress(addr entities.Address) {
	o.mu.Lock()
	defer o.mu.Unlock()

	addr.PostalCode = strings.TrimSpace(addr.PostalCode)
	changed := addr.PostalCode != o.address.PostalCode
	o.address = addr
	if changed {
		o.requoteLocked()
	}
}

// SetPostalCode is the debounced entry point for postal code edits.
func (o *Orchestrator) SetPostalCode(code string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	code = strings.TrimSpace(code)
	if code == o.address.PostalCode {
		return
	}
	o.address.PostalCode = code
	o.requoteLocked()
}

func (o *Orchestrator) SetShippingMethod(method entities.ShippingMethod) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if method == o.method {
		return
	}
	o.method = method
	o.scheduler.Cancel()
	o.requoteLocked()
}

func (o *Orchestrator) SetPaymentMethod(pay entities.PaymentMethod) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if pay == o.payment {
		return
	}
	o.payment = pay
	o.scheduler.Cancel()
	o.requoteLocked()
}

// Totals recomputes the pricing snapshot from the current inputs.
func (o *Orchestrator) Totals() entities.Totals {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calc.Calc(o.lines, o.method, o.quote, o.payment)
}

func (o *Orchestrator) Quote() entities.Quote {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.quote
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// IdempotencyKey returns the key the next submission will be sent with.
func (o *Orchestrator) IdempotencyKey() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.key
}

// Close cancels pending and in-flight quoting. Later quote events are ignored.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.closed = true
	o.scheduler.Cancel()
}

// OnQuoteEvent applies a resolver event if it still matches the latest trigger.
func (o *Orchestrator) OnQuoteEvent(ev resolver.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	current, ok := o.quoteRequestLocked()
	stale := o.closed ||
		!ok ||
		ev.Request.Key() != current.Key() ||
		(ev.Token != 0 && !o.scheduler.IsCurrent(ev.Token))

	observeQuoteEvent(ev.Kind.String(), stale)
	if stale {
		o.logger.Debug("dropped stale quote event", slog.String("quote_key", ev.Request.Key()), slog.Uint64("token", uint64(ev.Token)))
		return
	}

	if ev.Kind == resolver.QuoteResolved {
		o.cache.Set(ev.Request.Key(), ev.Quote)
	}
	o.setQuoteLocked(ev.Quote)
}

// Submit validates the form, makes sure a priced quote is displayed and creates
// the order with the displayed totals. When the quote had to be fetched first,
// Submit stops at ReadyToSubmit so the user sees the price; a second call submits.
func (o *Orchestrator) Submit(ctx context.Context) (State, error) {
	o.mu.Lock()
	if err := o.checkSubmittableLocked(); err != nil {
		st := o.state
		o.mu.Unlock()
		return st, err
	}

	o.setStateLocked(Validating{})
	if err := o.validateForm(o.address, o.lines, o.method, o.payment); err != nil {
		var ve *ValidationError
		errors.As(err, &ve)
		o.setStateLocked(Idle{FieldErrors: ve.Fields})
		st := o.state
		o.mu.Unlock()
		return st, err
	}

	req, _ := o.quoteRequestLocked()
	if o.quote.Status == entities.QuoteNone {
		if q, ok := o.cache.Get(req.Key()); ok {
			o.setQuoteLocked(q)
		}
	}
	if o.quote.Status == entities.QuoteNone {
		o.setStateLocked(Quoting{Request: req})
		o.mu.Unlock()
		return o.quoteAndShow(ctx, req)
	}

	ready := o.readyLocked()
	o.setStateLocked(ready)
	if !ready.CanSubmit {
		o.mu.Unlock()
		return ready, ErrQuoteRequired
	}

	key := o.key
	orderReq := o.orderRequestLocked(req, ready)
	pay := o.payment
	o.setStateLocked(Submitting{IdempotencyKey: key})
	o.mu.Unlock()

	logger := o.logger.With(slog.String("idempotency_key", key))
	logger.InfoContext(ctx, "submitting order", slog.Int64("grand_total", ready.Totals.GrandTotal))

	order, err := o.createOrder(ctx, logger, key, orderReq)
	if err != nil {
		o.mu.Lock()
		defer o.mu.Unlock()
		return o.submitFailedLocked(ctx, logger, ready, err)
	}
	order.Totals = ready.Totals
	logger.InfoContext(ctx, "order created", slog.Int64("order_id", order.ID))

	outcome, err := o.payments.Finalize(ctx, order, pay, order.Address.Customer())

	o.mu.Lock()
	defer o.mu.Unlock()
	return o.applyOutcomeLocked(order, outcome, err)
}

// AcceptShippingChange drops the stale quote, fetches a fresh one and re-enables submit.
func (o *Orchestrator) AcceptShippingChange(ctx context.Context) (State, error) {
	o.mu.Lock()
	if _, ok := o.state.(ReconcilingMismatch); !ok {
		st := o.state
		o.mu.Unlock()
		return st, ErrInvalidTransition
	}

	req, ok := o.quoteRequestLocked()
	if !ok {
		o.setStateLocked(Idle{})
		st := o.state
		o.mu.Unlock()
		return st, ErrQuoteRequired
	}
	o.cache.Delete(req.Key())
	o.setQuoteLocked(entities.NoQuote())
	o.setStateLocked(Quoting{Request: req})
	o.mu.Unlock()

	return o.quoteAndShow(ctx, req)
}

// CancelShippingChange aborts the mismatched submission and keeps the current quote.
func (o *Orchestrator) CancelShippingChange() (State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.state.(ReconcilingMismatch); !ok {
		return o.state, ErrInvalidTransition
	}
	o.setStateLocked(o.readyLocked())
	return o.state, nil
}

// ConfirmCardPayment completes a card order after the provider callback.
func (o *Orchestrator) ConfirmCardPayment(ctx context.Context, intentID string) (State, error) {
	o.mu.Lock()
	awaiting, ok := o.state.(AwaitingCardPayment)
	o.mu.Unlock()
	if !ok {
		return o.State(), ErrInvalidTransition
	}

	outcome, err := o.payments.Confirm(ctx, awaiting.Order, intentID)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		next := awaiting
		next.Err = err
		if !errors.Is(err, entities.ErrInvalidPaymentIntent) {
			next.Session = nil
			next.Redirect = outcome.Redirect
		}
		submissions.WithLabelValues("payment_failed").Inc()
		o.setStateLocked(next)
		return next, err
	}

	order := awaiting.Order
	order.Status = entities.OrderStatusPaid
	order.PaymentIntentID = intentID
	o.completeLocked(order, outcome.Redirect)
	return o.state, nil
}

// RetryPayment opens a new payment session for the same order.
func (o *Orchestrator) RetryPayment(ctx context.Context) (State, error) {
	o.mu.Lock()
	awaiting, ok := o.state.(AwaitingCardPayment)
	o.mu.Unlock()
	if !ok {
		return o.State(), ErrInvalidTransition
	}

	outcome, err := o.payments.Finalize(ctx, awaiting.Order, entities.PaymentCard, awaiting.Order.Address.Customer())

	o.mu.Lock()
	defer o.mu.Unlock()
	return o.applyOutcomeLocked(awaiting.Order, outcome, err)
}

func (o *Orchestrator) checkSubmittableLocked() error {
	if o.closed {
		return ErrClosed
	}
	switch o.state.(type) {
	case Validating, Quoting, Submitting:
		return ErrSubmitInProgress
	case ReconcilingMismatch, AwaitingCardPayment, Completed:
		return ErrInvalidTransition
	}
	return nil
}

// quoteAndShow fetches a quote right away and parks the checkout in ReadyToSubmit.
func (o *Orchestrator) quoteAndShow(ctx context.Context, req entities.QuoteRequest) (State, error) {
	o.scheduler.RunNow(ctx, func(ctx context.Context) {
		o.resolve(ctx, req)
	})

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.state.(Quoting); !ok || o.closed {
		return o.state, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		o.setStateLocked(Idle{})
		return o.state, err
	}

	ready := o.readyLocked()
	o.setStateLocked(ready)
	if !ready.CanSubmit {
		return ready, ErrQuoteRequired
	}
	return ready, nil
}

func (o *Orchestrator) resolve(ctx context.Context, req entities.QuoteRequest) {
	if _, err := o.quotes.Resolve(ctx, req); err != nil {
		o.logger.DebugContext(ctx, "quote resolution aborted", slog.Any("error", err))
	}
}

func (o *Orchestrator) createOrder(ctx context.Context, logger *slog.Logger, key string, req entities.OrderRequest) (entities.Order, error) {
	var order entities.Order
	attempt := 0
	err := utils.Retry(ctx, o.retry, func() error {
		attempt++
		var err error
		order, err = o.api.CreateOrder(ctx, key, req)
		if err != nil && entities.IsTemporary(err) {
			logger.WarnContext(ctx, "order submission failed", slog.Int("attempt", attempt), slog.Any("error", err))
		}
		return err
	})
	return order, err
}

func (o *Orchestrator) submitFailedLocked(ctx context.Context, logger *slog.Logger, ready ReadyToSubmit, err error) (State, error) {
	var (
		changed  *entities.ShippingChangedError
		stock    *entities.StockConflictError
		rejected *entities.OrderValidationError
	)

	switch {
	case errors.As(err, &changed):
		logger.WarnContext(ctx, "shipping changed since quote",
			slog.Int64("quoted_total", changed.QuotedTotal), slog.Int64("locked_total", changed.LockedTotal))
		shippingMismatches.Inc()
		submissions.WithLabelValues("mismatch").Inc()
		o.setStateLocked(ReconcilingMismatch{QuotedTotal: changed.QuotedTotal, LockedTotal: changed.LockedTotal})

	case ctx.Err() != nil:
		submissions.WithLabelValues("cancelled").Inc()
		o.setStateLocked(ready)

	case errors.As(err, &stock):
		submissions.WithLabelValues("stock_conflict").Inc()
		o.setStateLocked(Failed{Err: err, Message: orDefault(stock.Message, msgStockConflict)})

	case errors.As(err, &rejected):
		submissions.WithLabelValues("rejected").Inc()
		o.setStateLocked(Failed{Err: err, Message: orDefault(rejected.Message, msgRejected)})

	default:
		logger.ErrorContext(ctx, "order submission failed", slog.Any("error", err))
		submissions.WithLabelValues("failed").Inc()
		o.setStateLocked(Failed{Err: err, Message: userMessage(err)})
	}
	return o.state, err
}

func (o *Orchestrator) applyOutcomeLocked(order entities.Order, outcome payment.Outcome, err error) (State, error) {
	if err == nil && outcome.Completed {
		order.Status = entities.OrderStatusConfirmed
		o.completeLocked(order, outcome.Redirect)
		return o.state, nil
	}

	if err != nil && !errors.Is(err, entities.ErrPaymentInit) {
		submissions.WithLabelValues("failed").Inc()
		o.setStateLocked(Failed{Err: err, Message: msgGeneric})
		return o.state, err
	}

	order.Status = entities.OrderStatusPendingPayment
	if err != nil {
		submissions.WithLabelValues("payment_failed").Inc()
	} else {
		submissions.WithLabelValues("awaiting_payment").Inc()
	}
	o.setStateLocked(AwaitingCardPayment{
		Order:    order,
		Session:  outcome.Session,
		Redirect: outcome.Redirect,
		Err:      err,
	})
	return o.state, err
}

// completeLocked is the only place the idempotency key is rotated.
// The cart is dropped with it, so the next checkout starts from SetCart.
func (o *Orchestrator) completeLocked(order entities.Order, redirect string) {
	submissions.WithLabelValues("completed").Inc()
	o.key = o.newKey()
	o.lines = nil
	o.quote = entities.NoQuote()
	o.scheduler.Cancel()
	o.cache.Clear()
	o.setStateLocked(Completed{Order: order, Redirect: redirect})
}

func (o *Orchestrator) requoteLocked() {
	req, ok := o.quoteRequestLocked()
	if !ok {
		o.scheduler.Cancel()
		o.setQuoteLocked(entities.NoQuote())
		return
	}

	if q, ok := o.cache.Get(req.Key()); ok {
		o.scheduler.Cancel()
		o.setQuoteLocked(q)
		return
	}

	o.setQuoteLocked(entities.NoQuote())
	o.scheduler.Schedule(func(ctx context.Context) {
		o.resolve(ctx, req)
	})
}

func (o *Orchestrator) quoteRequestLocked() (entities.QuoteRequest, bool) {
	if len(o.lines) == 0 || !ValidPostalCode(o.address.PostalCode) || !o.method.Valid() || !o.payment.Valid() {
		return entities.QuoteRequest{}, false
	}
	return entities.NewQuoteRequest(o.address.PostalCode, o.method, o.payment, o.lines), true
}

func (o *Orchestrator) setQuoteLocked(q entities.Quote) {
	o.quote = q
	if _, ok := o.state.(ReadyToSubmit); ok {
		o.setStateLocked(o.readyLocked())
	}
}

func (o *Orchestrator) readyLocked() ReadyToSubmit {
	t := o.calc.Calc(o.lines, o.method, o.quote, o.payment)
	return ReadyToSubmit{
		Quote:     o.quote,
		Totals:    t,
		CanSubmit: o.quote.Priced() && !t.ShippingEstimated,
	}
}

func (o *Orchestrator) orderRequestLocked(req entities.QuoteRequest, ready ReadyToSubmit) entities.OrderRequest {
	shipping := ready.Totals.Shipping
	addr := o.address
	addr.Name = strings.TrimSpace(addr.Name)
	addr.Phone = strings.TrimSpace(addr.Phone)
	addr.Country = strings.ToUpper(strings.TrimSpace(addr.Country))

	orderReq := entities.OrderRequest{
		Items:          req.Items,
		Currency:       ready.Totals.Currency,
		ShippingMethod: o.method,
		PaymentMethod:  o.payment,
		Address:        addr,
		QuotedShipping: &shipping,
	}
	if at := ready.Quote.QuotedAt(); !at.IsZero() {
		orderReq.QuotedAt = &at
	}
	return orderReq
}

func (o *Orchestrator) setStateLocked(st State) {
	if o.state == nil || o.state.Name() != st.Name() {
		o.logger.Debug("checkout state changed", slog.String("to", st.Name()))
	}
	o.state = st
	stateTransitions.WithLabelValues(st.Name()).Inc()
}

func userMessage(err error) string {
	var ne *entities.NetworkError
	if errors.As(err, &ne) && ne.Message != "" {
		return ne.Message
	}
	return msgGeneric
}

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
