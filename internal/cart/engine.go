package cart

import (
	"context"
	"encoding/json"

	"github.com/Soloken19/shapewear-dev/pkg/kv"
	"github.com/Soloken19/shapewear-dev/pkg/logger"
	"github.com/Soloken19/shapewear-dev/pkg/metrics"
	"github.com/Soloken19/shapewear-dev/pkg/types"
)

// Engine owns the in-session cart state: an ordered list of items plus
// an optional promo code. Every mutation persists the state through the
// key-value store best-effort; a failed write is logged and counted but
// never surfaced, so the in-memory state stays authoritative for the
// session.
//
// The engine is not safe for concurrent use. Callers are expected to
// invoke mutations sequentially; the session manager serializes access
// per cart.
type Engine struct {
	store kv.Store
	key   string
	logg  *logger.Logger
	stats *metrics.StorefrontMetrics
	state State
}

// NewEngine constructs an engine bound to a storage key and rehydrates
// any persisted state. Absent or malformed payloads fall back to the
// empty cart silently.
func NewEngine(ctx context.Context, store kv.Store, key string, logg *logger.Logger, stats *metrics.StorefrontMetrics) *Engine {
	e := &Engine{
		store: store,
		key:   key,
		logg:  logg,
		stats: stats,
		state: emptyState(),
	}
	e.load(ctx)
	return e
}

func (e *Engine) load(ctx context.Context) {
	if e.store == nil {
		return
	}
	payload, found, err := e.store.Get(ctx, e.key)
	if err != nil {
		e.warn(ctx, "cart load failed, starting empty", err)
		return
	}
	if !found {
		return
	}
	var loaded State
	if err := json.Unmarshal(payload, &loaded); err != nil {
		e.warn(ctx, "cart payload malformed, starting empty", err)
		return
	}
	loaded.normalize()
	e.state = loaded
}

// Add merges the item into an existing line with the same identity
// triple, incrementing its quantity, or appends a new line. The
// existing line's name and price win on a merge.
func (e *Engine) Add(ctx context.Context, item Item) {
	if item.Qty < 1 {
		item.Qty = 1
	}
	id := item.identity()
	merged := false
	for i := range e.state.Items {
		if e.state.Items[i].identity() == id {
			e.state.Items[i].Qty += item.Qty
			merged = true
			break
		}
	}
	if !merged {
		e.state.Items = append(e.state.Items, item)
	}
	e.stats.IncCartMutation("add")
	e.persist(ctx)
}

// Remove deletes the line at the given position. Out-of-range indices
// are a no-op.
func (e *Engine) Remove(ctx context.Context, index int) {
	if index < 0 || index >= len(e.state.Items) {
		return
	}
	e.state.Items = append(e.state.Items[:index], e.state.Items[index+1:]...)
	e.stats.IncCartMutation("remove")
	e.persist(ctx)
}

// SetQuantity replaces the quantity of the line at index, clamped to a
// minimum of 1. Out-of-range indices are a no-op.
func (e *Engine) SetQuantity(ctx context.Context, index, qty int) {
	if index < 0 || index >= len(e.state.Items) {
		return
	}
	if qty < 1 {
		qty = 1
	}
	e.state.Items[index].Qty = qty
	e.stats.IncCartMutation("set_quantity")
	e.persist(ctx)
}

// SetPromoCode stores the code verbatim. This layer applies no
// validation and no discount; the order service owns both.
func (e *Engine) SetPromoCode(ctx context.Context, code string) {
	e.state.PromoCode = code
	e.stats.IncCartMutation("set_promo")
	e.persist(ctx)
}

// Clear resets the cart to empty items and an empty promo code.
func (e *Engine) Clear(ctx context.Context) {
	e.state = emptyState()
	e.stats.IncCartMutation("clear")
	e.persist(ctx)
}

// Subtotal is the exact sum of price times quantity across all lines.
func (e *Engine) Subtotal() types.Amount {
	total := types.Amount{}
	for _, item := range e.state.Items {
		total = total.Add(item.Price.MulInt(item.Qty))
	}
	return total
}

// Count is the sum of quantities across all lines.
func (e *Engine) Count() int {
	count := 0
	for _, item := range e.state.Items {
		count += item.Qty
	}
	return count
}

// Items returns a value copy of the lines in insertion order.
func (e *Engine) Items() []Item {
	out := make([]Item, len(e.state.Items))
	copy(out, e.state.Items)
	return out
}

// PromoCode returns the currently stored promo code.
func (e *Engine) PromoCode() string {
	return e.state.PromoCode
}

// Snapshot returns a deep copy of the whole state, safe against later
// mutation of the engine.
func (e *Engine) Snapshot() State {
	return e.state.clone()
}

func (e *Engine) persist(ctx context.Context) {
	if e.store == nil {
		return
	}
	payload, err := json.Marshal(e.state)
	if err != nil {
		e.stats.IncPersistenceFailure()
		e.warn(ctx, "cart state not serializable", err)
		return
	}
	if err := e.store.Set(ctx, e.key, payload); err != nil {
		e.stats.IncPersistenceFailure()
		e.warn(ctx, "cart persistence write failed", err)
	}
}

func (e *Engine) warn(ctx context.Context, msg string, err error) {
	if e.logg == nil {
		return
	}
	ctx = e.logg.WithField(ctx, "error", err.Error())
	e.logg.Warn(ctx, msg)
}
