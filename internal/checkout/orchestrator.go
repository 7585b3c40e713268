package checkout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopspark/internal/domain"
)

// State of the checkout flow. Idle is reachable again after completion or
// after a dismissed auth/payment step.
type State string

const (
	StateIdle            State = "idle"
	StateAwaitingAuth    State = "awaiting_auth"
	StateAwaitingPayment State = "awaiting_payment"
	StateCompleted       State = "completed"
)

// Payment methods. They change which fields are required; settlement is the
// same simulated success path for all three.
const (
	MethodCard  = "card"
	MethodBank  = "bank"
	MethodMpesa = "mpesa"
)

var (
	ErrInProgress        = errors.New("checkout already in progress")
	ErrNotAwaitingAuth   = errors.New("no authentication step in progress")
	ErrNotAwaitingPayment = errors.New("no payment step in progress")
	ErrPaymentProcessing = errors.New("payment already processing")
)

// PaymentFields carries the union of per-method form fields.
type PaymentFields struct {
	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	ExpiryDate    string `json:"expiryDate"`
	CVV           string `json:"cvv"`
	BankAccount   string `json:"bankAccount"`
	RoutingNumber string `json:"routingNumber"`
	MpesaNumber   string `json:"mpesaNumber"`
}

// PaymentResult is handed to the settlement callback. The simulated gateway
// only ever produces success, but the hook carries the outcome so a real
// gateway can slot in.
type PaymentResult struct {
	OrderID   string
	Amount    decimal.Decimal
	Succeeded bool
}

type scheduler interface {
	After(d time.Duration, fn func()) string
	Cancel(token string) bool
}

// Orchestrator sequences anonymous browsing through authentication and
// payment to order completion. Not safe for concurrent use; the owning
// session serializes access.
type Orchestrator struct {
	state   State
	amount  decimal.Decimal
	orderID string
	payTask string
	sched   scheduler
	delay   time.Duration
}

func New(s scheduler, settleDelay time.Duration) *Orchestrator {
	return &Orchestrator{state: StateIdle, sched: s, delay: settleDelay}
}

func (o *Orchestrator) State() State { return o.state }

// Amount is the charge snapshot captured when the payment step opened. It is
// deliberately not re-read if the cart changes afterwards.
func (o *Orchestrator) Amount() decimal.Decimal { return o.amount }

// OrderID is set once settlement succeeds.
func (o *Orchestrator) OrderID() string { return o.orderID }

// Begin starts a checkout. A signed-in session skips straight to the payment
// step and snapshots the cart total now; otherwise the auth step opens first.
func (o *Orchestrator) Begin(signedIn bool, cartTotal decimal.Decimal) (State, error) {
	if o.state == StateAwaitingAuth || o.state == StateAwaitingPayment {
		return o.state, ErrInProgress
	}
	o.orderID = ""
	if signedIn {
		o.state = StateAwaitingPayment
		o.amount = cartTotal
	} else {
		o.state = StateAwaitingAuth
		o.amount = decimal.Zero
	}
	return o.state, nil
}

// CompleteAuth advances to the payment step after a successful sign-in and
// snapshots the cart total at this moment.
func (o *Orchestrator) CompleteAuth(cartTotal decimal.Decimal) error {
	if o.state != StateAwaitingAuth {
		return ErrNotAwaitingAuth
	}
	o.state = StateAwaitingPayment
	o.amount = cartTotal
	return nil
}

// DismissAuth abandons the auth step, reporting whether anything changed.
func (o *Orchestrator) DismissAuth() bool {
	if o.state != StateAwaitingAuth {
		return false
	}
	o.state = StateIdle
	return true
}

// SubmitPayment validates the method's required fields and schedules
// settlement after the simulated gateway delay. settle receives the result
// later on a separate goroutine; callers route it back through Settle under
// their own lock.
func (o *Orchestrator) SubmitPayment(method string, fields PaymentFields, settle func(PaymentResult)) error {
	if o.state != StateAwaitingPayment {
		return ErrNotAwaitingPayment
	}
	if o.payTask != "" {
		return ErrPaymentProcessing
	}
	if err := validateFields(method, fields); err != nil {
		return err
	}

	result := PaymentResult{
		OrderID:   uuid.NewString(),
		Amount:    o.amount,
		Succeeded: true,
	}
	o.payTask = o.sched.After(o.delay, func() {
		settle(result)
	})
	return nil
}

// Settle applies a payment result. On success the flow completes; on failure
// the payment step stays open for another attempt. It reports whether the
// order completed.
func (o *Orchestrator) Settle(res PaymentResult) bool {
	o.payTask = ""
	if o.state != StateAwaitingPayment {
		return false
	}
	if !res.Succeeded {
		return false
	}
	o.state = StateCompleted
	o.orderID = res.OrderID
	return true
}

// DismissPayment abandons the payment step and cancels any pending
// settlement so the stale callback cannot fire into a moved-on session.
func (o *Orchestrator) DismissPayment() bool {
	if o.state != StateAwaitingPayment {
		return false
	}
	o.cancelPending()
	o.state = StateIdle
	return true
}

// Reset abandons the whole flow regardless of state. Used on sign-out.
func (o *Orchestrator) Reset() {
	o.cancelPending()
	o.state = StateIdle
	o.amount = decimal.Zero
	o.orderID = ""
}

func (o *Orchestrator) cancelPending() {
	if o.payTask != "" {
		o.sched.Cancel(o.payTask)
		o.payTask = ""
	}
}

func validateFields(method string, f PaymentFields) error {
	switch method {
	case MethodCard:
		return requireFields(map[string]string{
			"cardName":   f.CardName,
			"cardNumber": f.CardNumber,
			"expiryDate": f.ExpiryDate,
			"cvv":        f.CVV,
		})
	case MethodBank:
		return requireFields(map[string]string{
			"bankAccount":   f.BankAccount,
			"routingNumber": f.RoutingNumber,
		})
	case MethodMpesa:
		return requireFields(map[string]string{
			"mpesaNumber": f.MpesaNumber,
		})
	default:
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, method)
	}
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s required", domain.ErrValidation, name)
		}
	}
	return nil
}
