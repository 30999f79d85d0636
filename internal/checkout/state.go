package checkout

import (
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

// State is one of the checkout states below. Exactly one is current at a time.
type State interface {
	Name() string
	state()
}

// Idle waits for input. FieldErrors is set after a rejected submit attempt.
type Idle struct {
	FieldErrors map[string]string
}

type Validating struct{}

type Quoting struct {
	Request entities.QuoteRequest
}

// ReadyToSubmit shows the totals the order will be created with.
// CanSubmit is false while the quote is unavailable or missing.
type ReadyToSubmit struct {
	Quote     entities.Quote
	Totals    entities.Totals
	CanSubmit bool
}

type Submitting struct {
	IdempotencyKey string
}

// ReconcilingMismatch holds both grand totals until the user accepts or cancels.
type ReconcilingMismatch struct {
	QuotedTotal int64
	LockedTotal int64
}

// AwaitingCardPayment holds a created card order. Session is nil and Err is set
// when the payment session could not be opened; Redirect then points to the
// order-status view.
type AwaitingCardPayment struct {
	Order    entities.Order
	Session  *entities.PaymentSession
	Redirect string
	Err      error
}

// Completed is terminal. Only SetCart with new lines leaves it.
type Completed struct {
	Order    entities.Order
	Redirect string
}

// Failed is a rejected submission. Message is always safe to show the user.
type Failed struct {
	Err     error
	Message string
}

func (Idle) Name() string                { return "idle" }
func (Validating) Name() string          { return "validating" }
func (Quoting) Name() string             { return "quoting" }
func (ReadyToSubmit) Name() string       { return "ready_to_submit" }
func (Submitting) Name() string          { return "submitting" }
func (ReconcilingMismatch) Name() string { return "reconciling_mismatch" }
func (AwaitingCardPayment) Name() string { return "awaiting_card_payment" }
func (Completed) Name() string           { return "completed" }
func (Failed) Name() string              { return "failed" }

func (Idle) state()                {}
func (Validating) state()          {}
func (Quoting) state()             {}
func (ReadyToSubmit) state()       {}
func (Submitting) state()          {}
func (ReconcilingMismatch) state() {}
func (AwaitingCardPayment) state() {}
func (Completed) state()           {}
func (Failed) state()              {}
