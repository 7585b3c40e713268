package session

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"shopspark/internal/catalog"
	"shopspark/internal/checkout"
	"shopspark/internal/domain"
)

// manualScheduler defers scheduled callbacks until the test fires them.
type manualScheduler struct {
	fns  map[string]func()
	next int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{fns: make(map[string]func())}
}

func (s *manualScheduler) After(_ time.Duration, fn func()) string {
	s.next++
	token := strconv.Itoa(s.next)
	s.fns[token] = fn
	return token
}

func (s *manualScheduler) Cancel(token string) bool {
	_, ok := s.fns[token]
	delete(s.fns, token)
	return ok
}

func (s *manualScheduler) fire() {
	for token, fn := range s.fns {
		delete(s.fns, token)
		fn()
	}
}

type capturedNotification struct {
	sessionID string
	n         domain.Notification
}

func newTestManager(t *testing.T) (*Manager, *manualScheduler, *[]capturedNotification) {
	t.Helper()
	cat := catalog.New(catalog.NewGenerator(rand.NewSource(5), 1, 0).Generate())
	sch := newManualScheduler()
	m := NewManager(cat, sch, Config{})
	var notes []capturedNotification
	m.SetNotifier(func(id string, n domain.Notification) {
		notes = append(notes, capturedNotification{sessionID: id, n: n})
	})
	return m, sch, &notes
}

func cardFields() checkout.PaymentFields {
	return checkout.PaymentFields{CardName: "Jane", CardNumber: "4242", ExpiryDate: "12/30", CVV: "123"}
}

func TestGetOrCreateMintsFreshIDs(t *testing.T) {
	m, _, _ := newTestManager(t)
	s := m.GetOrCreate("")
	if s.ID == "" {
		t.Fatalf("expected generated session ID")
	}
	if again := m.GetOrCreate(s.ID); again != s {
		t.Fatalf("expected same session for known ID")
	}
	if other := m.GetOrCreate("unknown-id"); other == s || other.ID == "unknown-id" {
		t.Fatalf("unknown IDs must not be resurrected")
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", m.Len())
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	m, _, _ := newTestManager(t)
	s := m.GetOrCreate("")
	if _, err := s.AddToCart(99999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddToCartNotifies(t *testing.T) {
	m, _, notes := newTestManager(t)
	s := m.GetOrCreate("")
	if _, err := s.AddToCart(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*notes) != 1 || (*notes)[0].n.Kind != domain.NotifyItemAdded {
		t.Fatalf("expected item-added notification, got %+v", *notes)
	}
	if (*notes)[0].sessionID != s.ID {
		t.Fatalf("notification routed to wrong session")
	}
}

func TestToggleFavoriteUnknownIsNoop(t *testing.T) {
	m, _, _ := newTestManager(t)
	s := m.GetOrCreate("")
	if member, changed := s.ToggleFavorite(99999); member || changed {
		t.Fatalf("expected no-op for unknown product")
	}
	if member, changed := s.ToggleFavorite(2); !member || !changed {
		t.Fatalf("expected membership after toggle")
	}
	if member, _ := s.ToggleFavorite(2); member {
		t.Fatalf("expected removal after second toggle")
	}
	if len(s.Favorites()) != 0 {
		t.Fatalf("favorites not back to original membership")
	}
}

func TestCheckoutFullFlow(t *testing.T) {
	m, sch, notes := newTestManager(t)
	s := m.GetOrCreate("")

	s.AddToCart(1)
	s.AddToCart(1)
	s.AddToCart(2)
	wantTotal := s.TotalPrice()

	state, err := s.BeginCheckout()
	if err != nil || state != checkout.StateAwaitingAuth {
		t.Fatalf("expected awaiting_auth, got %s err=%v", state, err)
	}

	if err := s.SubmitAuth("Jane", "jane@x.com"); err != nil {
		t.Fatalf("submit auth: %v", err)
	}
	if s.CheckoutState() != checkout.StateAwaitingPayment {
		t.Fatalf("expected awaiting_payment, got %s", s.CheckoutState())
	}
	if !s.CheckoutAmount().Equal(wantTotal) {
		t.Fatalf("snapshot %s != cart total %s", s.CheckoutAmount(), wantTotal)
	}

	// Mutating the cart while the payment step is open must not move the
	// charged amount.
	s.AddToCart(3)
	if !s.CheckoutAmount().Equal(wantTotal) {
		t.Fatalf("snapshot drifted to %s", s.CheckoutAmount())
	}

	if err := s.SubmitPayment(checkout.MethodCard, cardFields()); err != nil {
		t.Fatalf("submit payment: %v", err)
	}
	sch.fire()

	if s.CheckoutState() != checkout.StateCompleted {
		t.Fatalf("expected completed, got %s", s.CheckoutState())
	}
	if s.TotalItems() != 0 {
		t.Fatalf("cart not cleared, %d items left", s.TotalItems())
	}
	if s.OrderID() == "" {
		t.Fatalf("expected order id after settlement")
	}

	last := (*notes)[len(*notes)-1]
	if last.n.Kind != domain.NotifyPaymentSucceeded {
		t.Fatalf("expected payment-succeeded notification, got %+v", last.n)
	}
	if !strings.Contains(last.n.Message, wantTotal.StringFixed(2)) {
		t.Fatalf("confirmation should carry the charged snapshot, got %q", last.n.Message)
	}
}

func TestCheckoutSkipsAuthWhenSignedIn(t *testing.T) {
	m, _, _ := newTestManager(t)
	s := m.GetOrCreate("")
	s.AddToCart(1)

	s.BeginCheckout()
	s.SubmitAuth("Jane", "jane@x.com")
	s.DismissPayment()

	state, err := s.BeginCheckout()
	if err != nil || state != checkout.StateAwaitingPayment {
		t.Fatalf("signed-in checkout should skip auth, got %s err=%v", state, err)
	}
}

func TestSubmitAuthValidation(t *testing.T) {
	m, _, _ := newTestManager(t)
	s := m.GetOrCreate("")
	s.AddToCart(1)
	s.BeginCheckout()

	cases := []struct{ name, email string }{
		{"", "jane@x.com"},
		{"Jane", ""},
		{"Jane", "not-an-email"},
		{"Jane", "@x.com"},
		{"Jane", "jane@"},
	}
	for _, tc := range cases {
		if err := s.SubmitAuth(tc.name, tc.email); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("SubmitAuth(%q, %q): expected validation error, got %v", tc.name, tc.email, err)
		}
	}
	if s.CheckoutState() != checkout.StateAwaitingAuth {
		t.Fatalf("validation failure must keep the auth step open, got %s", s.CheckoutState())
	}
	if s.User() != nil {
		t.Fatalf("validation failure must not create a user")
	}
}

func TestDismissAuthAbandonsCheckout(t *testing.T) {
	m, _, _ := newTestManager(t)
	s := m.GetOrCreate("")
	s.AddToCart(1)
	s.BeginCheckout()
	if !s.DismissAuth() {
		t.Fatalf("expected dismissal")
	}
	if s.CheckoutState() != checkout.StateIdle {
		t.Fatalf("expected idle, got %s", s.CheckoutState())
	}
}

func TestDismissPaymentCancelsSettlement(t *testing.T) {
	m, sch, _ := newTestManager(t)
	s := m.GetOrCreate("")
	s.AddToCart(1)
	s.BeginCheckout()
	s.SubmitAuth("Jane", "jane@x.com")
	if err := s.SubmitPayment(checkout.MethodMpesa, checkout.PaymentFields{MpesaNumber: "+254700000000"}); err != nil {
		t.Fatalf("submit payment: %v", err)
	}
	s.DismissPayment()
	sch.fire()

	if s.CheckoutState() != checkout.StateIdle {
		t.Fatalf("expected idle, got %s", s.CheckoutState())
	}
	if s.TotalItems() == 0 {
		t.Fatalf("cart must survive a dismissed payment")
	}
}

func TestSignOutDestroysUserAndAbandonsCheckout(t *testing.T) {
	m, _, notes := newTestManager(t)
	s := m.GetOrCreate("")
	s.AddToCart(1)
	s.BeginCheckout()
	s.SubmitAuth("Jane", "jane@x.com")

	if !s.SignOut() {
		t.Fatalf("expected sign-out of a signed-in user")
	}
	if s.User() != nil {
		t.Fatalf("user should be destroyed")
	}
	if s.CheckoutState() != checkout.StateIdle {
		t.Fatalf("in-progress checkout should be abandoned, got %s", s.CheckoutState())
	}
	if s.SignOut() {
		t.Fatalf("second sign-out should report no user")
	}
	last := (*notes)[len(*notes)-1]
	if last.n.Kind != domain.NotifySignedOut {
		t.Fatalf("expected signed-out notification, got %+v", last.n)
	}
}

func TestChatDelayedReplyAndFallbackCount(t *testing.T) {
	m, sch, notes := newTestManager(t)
	s := m.GetOrCreate("")
	s.SetFilter("sneakers", catalog.CategoryAll)

	entry, err := s.Chat("hello")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if entry.From != chatFromUser || entry.Text != "hello" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if got := s.Transcript(); len(got) != 1 {
		t.Fatalf("reply must not land before the delay, transcript %+v", got)
	}

	sch.fire()
	got := s.Transcript()
	if len(got) != 2 || got[1].From != chatFromAssistant {
		t.Fatalf("expected assistant reply, transcript %+v", got)
	}

	query, cat := s.Filter()
	count := len(catalog.Filter(m.catalog.Products(), query, cat))
	if !strings.Contains(got[1].Text, strconv.Itoa(count)+" products") {
		t.Fatalf("fallback should echo the filtered count %d, got %q", count, got[1].Text)
	}

	last := (*notes)[len(*notes)-1]
	if last.n.Kind != domain.NotifyAssistantReply {
		t.Fatalf("expected assistant-reply notification, got %+v", last.n)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	m, _, _ := newTestManager(t)
	s := m.GetOrCreate("")
	if _, err := s.Chat("   "); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSweepDropsIdleSessions(t *testing.T) {
	m, _, _ := newTestManager(t)
	s := m.GetOrCreate("")
	s.mu.Lock()
	s.lastSeen = time.Now().Add(-time.Hour)
	s.mu.Unlock()

	if removed := m.Sweep(30 * time.Minute); removed != 1 {
		t.Fatalf("expected 1 removal, got %d", removed)
	}
	if _, ok := m.Get(s.ID); ok {
		t.Fatalf("swept session still resolvable")
	}
}

func TestTotalPriceEmptyCartIsZero(t *testing.T) {
	m, _, _ := newTestManager(t)
	s := m.GetOrCreate("")
	if !s.TotalPrice().Equal(decimal.Zero) {
		t.Fatalf("expected zero total, got %s", s.TotalPrice())
	}
}
