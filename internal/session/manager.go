// Package session owns the per-cart lifecycle: each anonymous cart id
// gets one engine, rehydrated from the store on first touch, and one
// checkout orchestrator. The cart engine itself is single-threaded;
// the session serializes HTTP-driven access to it. Idle sessions are
// evicted and rebuilt from the store on their next request.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/Soloken19/shapewear-dev/internal/cart"
	"github.com/Soloken19/shapewear-dev/internal/checkout"
	"github.com/Soloken19/shapewear-dev/pkg/kv"
	"github.com/Soloken19/shapewear-dev/pkg/logger"
	"github.com/Soloken19/shapewear-dev/pkg/metrics"
	"github.com/Soloken19/shapewear-dev/pkg/types"
)

// Session is one cart's engine plus its checkout orchestrator. All
// cart access goes through the session mutex, which upholds the
// engine's sequential-invocation contract.
type Session struct {
	mu       sync.Mutex
	engine   *cart.Engine
	checkout *checkout.Orchestrator
}

// CartView is the read model handed to the API layer.
type CartView struct {
	Items     []cart.Item
	PromoCode string
	Subtotal  types.Amount
	Count     int
}

// Add merges or appends an item.
func (s *Session) Add(ctx context.Context, item cart.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Add(ctx, item)
}

// Remove deletes the line at index; out of range is a no-op.
func (s *Session) Remove(ctx context.Context, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Remove(ctx, index)
}

// SetQuantity clamps and stores the quantity at index.
func (s *Session) SetQuantity(ctx context.Context, index, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetQuantity(ctx, index, qty)
}

// SetPromoCode stores the code verbatim.
func (s *Session) SetPromoCode(ctx context.Context, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetPromoCode(ctx, code)
}

// Clear resets the cart.
func (s *Session) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Clear(ctx)
}

// Snapshot returns a deep copy of the cart state.
func (s *Session) Snapshot() cart.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// Count is the total quantity across lines.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Count()
}

// View assembles the API read model in one locked pass.
func (s *Session) View() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartView{
		Items:     s.engine.Items(),
		PromoCode: s.engine.PromoCode(),
		Subtotal:  s.engine.Subtotal(),
		Count:     s.engine.Count(),
	}
}

// Submit runs one checkout attempt against this session's cart.
func (s *Session) Submit(ctx context.Context, input checkout.SubmitInput) (*checkout.Confirmation, error) {
	return s.checkout.Submit(ctx, input)
}

// CheckoutStatus reports the orchestrator's lifecycle state.
func (s *Session) CheckoutStatus() checkout.Status {
	return s.checkout.Status()
}

const (
	// Sessions idle this long are dropped from the registry. Cart state
	// lives in the store, so an evicted session rehydrates on the next
	// request from the same cart id.
	sessionIdleTTL = 30 * time.Minute

	sweepInterval = time.Minute
)

type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// Manager hands out sessions keyed by cart id, constructing each one
// at most once per cart id and evicting idle entries so one-off
// visitors do not pin memory for the process lifetime.
type Manager struct {
	store     kv.Store
	orders    checkout.OrderPlacer
	logg      *logger.Logger
	stats     *metrics.StorefrontMetrics
	keyPrefix string
	now       func() time.Time

	mu        sync.Mutex
	sessions  map[string]*sessionEntry
	lastSweep time.Time
}

// NewManager builds a session manager over the shared store and order
// client.
func NewManager(store kv.Store, orders checkout.OrderPlacer, keyPrefix string, logg *logger.Logger, stats *metrics.StorefrontMetrics) *Manager {
	return &Manager{
		store:     store,
		orders:    orders,
		logg:      logg,
		stats:     stats,
		keyPrefix: keyPrefix,
		now:       time.Now,
		sessions:  map[string]*sessionEntry{},
	}
}

// Session returns the session for the cart id, constructing and
// rehydrating it on first touch.
func (m *Manager) Session(ctx context.Context, cartID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweepLocked(now)

	if entry, ok := m.sessions[cartID]; ok {
		entry.lastSeen = now
		return entry.session
	}

	engine := cart.NewEngine(ctx, m.store, m.storageKey(cartID), m.logg, m.stats)
	sess := &Session{engine: engine}
	// The orchestrator reads the cart through the session so every
	// access takes the session lock.
	sess.checkout = checkout.NewOrchestrator(sess, m.orders, m.logg, m.stats)
	m.sessions[cartID] = &sessionEntry{session: sess, lastSeen: now}
	return sess
}

// sweepLocked drops sessions idle past the TTL. A session with a
// submission in flight is kept regardless; evicting it would orphan
// the attempt's status and idempotency key.
func (m *Manager) sweepLocked(now time.Time) {
	if now.Sub(m.lastSweep) < sweepInterval {
		return
	}
	m.lastSweep = now

	for id, entry := range m.sessions {
		if now.Sub(entry.lastSeen) < sessionIdleTTL {
			continue
		}
		if entry.session.CheckoutStatus() == checkout.StatusSubmitting {
			continue
		}
		delete(m.sessions, id)
	}
}

func (m *Manager) storageKey(cartID string) string {
	return m.keyPrefix + ":" + cartID
}
