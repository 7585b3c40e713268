package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"shopspark/internal/cart"
	"shopspark/internal/catalog"
	"shopspark/internal/checkout"
	"shopspark/internal/favorites"
)

// Config tunes the simulated latencies.
type Config struct {
	// SettleDelay is the simulated payment gateway delay.
	SettleDelay time.Duration
	// AssistantDelay is the simulated typing delay before an assistant
	// reply lands in the transcript.
	AssistantDelay time.Duration
}

// Manager owns every live session. Sessions are created on first contact
// and pruned after idling past the sweep threshold.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	catalog *catalog.Catalog
	sched   scheduler
	cfg     Config
	notify  Notifier
}

func NewManager(cat *catalog.Catalog, sch scheduler, cfg Config) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		catalog:  cat,
		sched:    sch,
		cfg:      cfg,
	}
}

// SetNotifier installs the notification sink. Must be called before traffic
// is served.
func (m *Manager) SetNotifier(fn Notifier) {
	m.notify = fn
}

// Get returns the session for id if it is still live.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		s.touch()
	}
	return s, ok
}

// GetOrCreate resolves id to a live session, or mints a fresh one with a
// new ID when id is empty or unknown. Unknown IDs are not resurrected so
// clients cannot fixate identifiers.
func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.touch()
		return s
	}

	s := &Session{
		ID:             uuid.NewString(),
		cart:           cart.NewLedger(),
		favorites:      favorites.NewSet(),
		checkout:       checkout.New(m.sched, m.cfg.SettleDelay),
		category:       catalog.CategoryAll,
		lastSeen:       time.Now(),
		catalog:        m.catalog,
		sched:          m.sched,
		notify:         m.notify,
		assistantDelay: m.cfg.AssistantDelay,
	}
	m.sessions[s.ID] = s
	return s
}

// Sweep drops sessions idle for longer than maxIdle, abandoning any
// in-progress checkout so pending settlements are cancelled. It returns the
// number of sessions removed.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		s.mu.Lock()
		idle := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if idle {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.mu.Lock()
		s.checkout.Reset()
		s.mu.Unlock()
	}
	return len(stale)
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
