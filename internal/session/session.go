package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"shopspark/internal/assistant"
	"shopspark/internal/cart"
	"shopspark/internal/catalog"
	"shopspark/internal/checkout"
	"shopspark/internal/domain"
	"shopspark/internal/favorites"
)

// Notifier delivers informational notifications for a session. Delivery is
// best-effort; core operations never depend on it.
type Notifier func(sessionID string, n domain.Notification)

// ChatEntry is one turn of the assistant transcript.
type ChatEntry struct {
	From string    `json:"from"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

const (
	chatFromUser      = "user"
	chatFromAssistant = "assistant"
)

type scheduler interface {
	After(d time.Duration, fn func()) string
	Cancel(token string) bool
}

// Session owns all per-visitor mutable state: cart, favorites, user,
// checkout flow, current filter and the assistant transcript. All state
// transitions run under its mutex in response to discrete events.
type Session struct {
	ID string

	mu         sync.Mutex
	cart       *cart.Ledger
	favorites  *favorites.Set
	user       *domain.User
	checkout   *checkout.Orchestrator
	transcript []ChatEntry
	query      string
	category   string
	lastSeen   time.Time

	catalog        *catalog.Catalog
	sched          scheduler
	notify         Notifier
	assistantDelay time.Duration
}

func (s *Session) emit(kind, message string) {
	if s.notify == nil {
		return
	}
	s.notify(s.ID, domain.Notification{Kind: kind, Message: message, At: time.Now().UTC()})
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// AddToCart merges one unit of the product into the cart and returns the
// resulting line quantity. Unknown products are rejected.
func (s *Session) AddToCart(productID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.catalog.Get(productID)
	if !ok {
		return 0, domain.ErrNotFound
	}
	qty := s.cart.Add(productID)
	s.emit(domain.NotifyItemAdded, product.Name+" has been added to your cart.")
	return qty, nil
}

// SetCartQuantity replaces a line's quantity; non-positive removes the line.
// Absent products are a no-op, never an error.
func (s *Session) SetCartQuantity(productID, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SetQuantity(productID, quantity)
}

// RemoveFromCart deletes the line if present.
func (s *Session) RemoveFromCart(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(productID)
}

func (s *Session) CartLines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Session) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

// TotalPrice derives the cart total from current catalog prices.
func (s *Session) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice(s.catalog.Price)
}

// ToggleFavorite flips membership and reports (member, changed). Unknown
// products are a no-op.
func (s *Session) ToggleFavorite(productID int) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.catalog.Get(productID); !ok {
		return false, false
	}
	return s.favorites.Toggle(productID), true
}

func (s *Session) Favorites() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.IDs()
}

// SetFilter records the collaborator's current search query and category
// selection.
func (s *Session) SetFilter(query, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	if category != "" {
		s.category = category
	}
}

func (s *Session) Filter() (query, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, s.category
}

// User returns a copy of the signed-in user, if any.
func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// RestoreUser re-attaches a signed-in identity carried by a still-valid
// bearer token, e.g. after the in-memory session was recreated.
func (s *Session) RestoreUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		s.user = &u
	}
}

func (s *Session) CheckoutState() checkout.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.State()
}

func (s *Session) CheckoutAmount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.Amount()
}

func (s *Session) OrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.OrderID()
}

// BeginCheckout opens the auth step, or goes straight to payment when the
// session is already signed in.
func (s *Session) BeginCheckout() (checkout.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.Begin(s.user != nil, s.cart.TotalPrice(s.catalog.Price))
}

// SubmitAuth validates the sign-in form, captures the user and advances the
// checkout to the payment step, snapshotting the cart total at this moment.
func (s *Session) SubmitAuth(name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" {
		return fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkout.CompleteAuth(s.cart.TotalPrice(s.catalog.Price)); err != nil {
		return err
	}
	s.user = &domain.User{Name: name, Email: email}
	s.emit(domain.NotifySignedIn, "Welcome, "+name+"! You are now signed in.")
	return nil
}

// DismissAuth abandons the auth step without signing in.
func (s *Session) DismissAuth() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.DismissAuth()
}

// SubmitPayment validates the payment form and schedules the simulated
// settlement. On settlement success the cart is cleared and the order
// confirmation notification is emitted.
func (s *Session) SubmitPayment(method string, fields checkout.PaymentFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.SubmitPayment(method, fields, s.settle)
}

// settle runs on the scheduler goroutine once the simulated gateway delay
// elapses.
func (s *Session) settle(res checkout.PaymentResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.checkout.Settle(res) {
		return
	}
	s.cart.Clear()
	s.emit(domain.NotifyPaymentSucceeded,
		fmt.Sprintf("Payment of $%s received. Order %s confirmed - thank you!", res.Amount.StringFixed(2), res.OrderID))
}

// DismissPayment abandons the payment step, cancelling the pending
// settlement so it cannot mutate state that has moved on.
func (s *Session) DismissPayment() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.DismissPayment()
}

// SignOut destroys the user and abandons any in-progress checkout. It
// reports whether a user was signed in.
func (s *Session) SignOut() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkout.Reset()
	if s.user == nil {
		return false
	}
	name := s.user.Name
	s.user = nil
	s.emit(domain.NotifySignedOut, "Goodbye, "+name+". You have been signed out.")
	return true
}

// Chat records the utterance and schedules the assistant's reply after the
// configured delay. The reply echoes the current filtered-result count when
// no keyword bucket matches.
func (s *Session) Chat(message string) (ChatEntry, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatEntry{}, fmt.Errorf("%w: message required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry := ChatEntry{From: chatFromUser, Text: message, At: time.Now().UTC()}
	s.transcript = append(s.transcript, entry)

	count := len(catalog.Filter(s.catalog.Products(), s.query, s.category))
	reply := assistant.Respond(message, count)
	s.sched.After(s.assistantDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.transcript = append(s.transcript, ChatEntry{From: chatFromAssistant, Text: reply, At: time.Now().UTC()})
		s.emit(domain.NotifyAssistantReply, reply)
	})
	return entry, nil
}

func (s *Session) Transcript() []ChatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatEntry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: valid email required", domain.ErrValidation)
	}
	return nil
}
