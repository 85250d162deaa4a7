// Package checkout drives the payment capture flow: it charges the cart
// total through an external gateway, then clears the cart and reports a
// confirmation. Cancellation or gateway failure leaves the cart untouched.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"boutique/internal/cart"
	"boutique/internal/models"
)

// State of the checkout flow.
type State string

const (
	StateIdle            State = "idle"
	StateAwaitingCapture State = "awaiting_capture"
	StateCaptured        State = "captured"
	StateCleared         State = "cleared"
	StateFailed          State = "failed"
)

var (
	// ErrNotAuthenticated is returned when checkout starts without a
	// verified identity; the caller should redirect to login.
	ErrNotAuthenticated = errors.New("checkout requires authentication")
	// ErrEmptyCart is returned when checkout starts on an empty cart.
	ErrEmptyCart = errors.New("cannot check out an empty cart")
	// ErrUpstream wraps a payment-processor failure. No funds moved, so
	// the cart is untouched and a retry is safe.
	ErrUpstream = errors.New("payment processor error")
	// ErrCartClearFailed marks the one non-retryable inconsistency: funds
	// were captured but the cart could not be cleared. Re-running capture
	// would double-charge.
	ErrCartClearFailed = errors.New("payment captured but cart not cleared")
)

// Gateway is the port to the external payment processor. CreateOrder
// submits the amount to capture and Capture irreversibly transfers funds.
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64) (orderID string, err error)
	Capture(ctx context.Context, orderID string) error
}

// Publisher emits checkout events to the message broker. A nil Publisher
// disables event emission.
type Publisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// CapturedEvent is published after a successful capture so the stock
// worker can decrement article quantities.
type CapturedEvent struct {
	Type      string            `json:"type"`
	OrderID   string            `json:"orderId"`
	AccountID string            `json:"accountId"`
	Amount    float64           `json:"amount"`
	Lines     []models.CartLine `json:"lines"`
}

// Orchestrator runs the checkout state machine over one cart.
type Orchestrator struct {
	cart      *cart.Cart
	gateway   Gateway
	publisher Publisher
	state     State
}

// NewOrchestrator creates an idle orchestrator. publisher may be nil.
func NewOrchestrator(c *cart.Cart, gateway Gateway, publisher Publisher) *Orchestrator {
	return &Orchestrator{
		cart:      c,
		gateway:   gateway,
		publisher: publisher,
		state:     StateIdle,
	}
}

// State returns the current flow state.
func (o *Orchestrator) State() State {
	return o.state
}

// Checkout runs the full flow for the authenticated account. The amount
// is computed from the cart at capture time, not cached, so price and
// discount changes up to the moment of payment are reflected.
func (o *Orchestrator) Checkout(ctx context.Context, accountID string) error {
	if accountID == "" {
		return ErrNotAuthenticated
	}
	if o.cart.Len() == 0 {
		return ErrEmptyCart
	}

	o.state = StateAwaitingCapture
	amount := o.cart.Total()

	orderID, err := o.gateway.CreateOrder(ctx, amount)
	if err != nil {
		return o.fail(fmt.Errorf("%w: create order: %v", ErrUpstream, err))
	}

	if err := o.gateway.Capture(ctx, orderID); err != nil {
		return o.fail(fmt.Errorf("%w: capture: %v", ErrUpstream, err))
	}
	o.state = StateCaptured

	// Snapshot the lines before clearing; the stock worker needs them.
	lines := o.cart.Lines()

	if err := o.cart.Clear(); err != nil {
		// Funds already moved. Surface this distinctly instead of
		// retrying the payment.
		o.publishInconsistency(orderID, accountID, err)
		return fmt.Errorf("%w: %v", ErrCartClearFailed, err)
	}
	o.state = StateCleared

	o.publishCaptured(CapturedEvent{
		Type:      "checkout.captured",
		OrderID:   orderID,
		AccountID: accountID,
		Amount:    amount,
		Lines:     lines,
	})
	return nil
}

// Cancel aborts an in-flight checkout. No financial side effect has
// occurred, the cart is untouched and a retry is safe.
func (o *Orchestrator) Cancel() {
	o.state = StateIdle
}

func (o *Orchestrator) fail(err error) error {
	o.state = StateFailed
	return err
}

func (o *Orchestrator) publishCaptured(event CapturedEvent) {
	if o.publisher == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("checkout: failed to marshal captured event: %v", err)
		return
	}
	if err := o.publisher.Publish("", "checkout_events", body); err != nil {
		log.Printf("checkout: failed to publish captured event for order %s: %v", event.OrderID, err)
	}
}

func (o *Orchestrator) publishInconsistency(orderID, accountID string, clearErr error) {
	log.Printf("checkout: INCONSISTENCY order %s account %s captured but cart clear failed: %v", orderID, accountID, clearErr)
	if o.publisher == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"type":      "checkout.inconsistency",
		"orderId":   orderID,
		"accountId": accountID,
		"error":     clearErr.Error(),
	})
	if err != nil {
		return
	}
	if err := o.publisher.Publish("", "checkout_events", body); err != nil {
		log.Printf("checkout: failed to publish inconsistency for order %s: %v", orderID, err)
	}
}
