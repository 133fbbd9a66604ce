package session

import (
	"context"
	"testing"
	"time"

	"github.com/Soloken19/shapewear-dev/internal/cart"
	"github.com/Soloken19/shapewear-dev/internal/checkout"
	"github.com/Soloken19/shapewear-dev/pkg/kv"
	"github.com/Soloken19/shapewear-dev/pkg/types"
)

type stubPlacer struct {
	confirmation *checkout.Confirmation
	err          error
	calls        int
	block        chan struct{}
}

func (s *stubPlacer) PlaceOrder(context.Context, checkout.Request) (*checkout.Confirmation, error) {
	s.calls++
	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.confirmation, nil
}

func testItem() cart.Item {
	return cart.Item{
		ProductID: "p-1",
		Slug:      "sculptfit-seamless-bodysuit",
		Name:      "SculptFit Seamless Bodysuit",
		Price:     types.MustAmount("78.00"),
		Qty:       1,
		Size:      "M",
		Color:     "Black",
	}
}

func TestManagerReturnsSameSessionPerCartID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := NewManager(kv.NewMemory(), &stubPlacer{}, "cc:cart", nil, nil)

	first := manager.Session(ctx, "abc")
	second := manager.Session(ctx, "abc")
	if first != second {
		t.Fatal("expected one session per cart id")
	}

	other := manager.Session(ctx, "xyz")
	if other == first {
		t.Fatal("distinct cart ids must get distinct sessions")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := NewManager(kv.NewMemory(), &stubPlacer{}, "cc:cart", nil, nil)

	a := manager.Session(ctx, "a")
	b := manager.Session(ctx, "b")

	a.Add(ctx, testItem())

	if a.Count() != 1 {
		t.Fatalf("expected 1 item in session a, got %d", a.Count())
	}
	if b.Count() != 0 {
		t.Fatalf("session b must be unaffected, got %d items", b.Count())
	}
}

func TestSessionRehydratesFromStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory()

	manager := NewManager(store, &stubPlacer{}, "cc:cart", nil, nil)
	sess := manager.Session(ctx, "returning")
	sess.Add(ctx, testItem())
	sess.SetPromoCode(ctx, "WELCOME10")

	// A new manager models a process restart over the same store.
	fresh := NewManager(store, &stubPlacer{}, "cc:cart", nil, nil)
	reloaded := fresh.Session(ctx, "returning")

	view := reloaded.View()
	if view.Count != 1 {
		t.Fatalf("expected rehydrated cart, got count %d", view.Count)
	}
	if view.PromoCode != "WELCOME10" {
		t.Fatalf("expected rehydrated promo, got %q", view.PromoCode)
	}
	if !view.Subtotal.Equal(types.MustAmount("78.00")) {
		t.Fatalf("unexpected subtotal %s", view.Subtotal)
	}
}

func TestSessionSubmitClearsCart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	placer := &stubPlacer{confirmation: &checkout.Confirmation{OrderID: "order-1", Currency: "USD"}}
	manager := NewManager(kv.NewMemory(), placer, "cc:cart", nil, nil)

	sess := manager.Session(ctx, "buyer")
	sess.Add(ctx, testItem())

	confirmation, err := sess.Submit(ctx, checkout.SubmitInput{
		Email: "maya@example.com",
		Address: types.Address{
			Line1:      "1 Curve St",
			City:       "Austin",
			State:      "TX",
			PostalCode: "78701",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmation.OrderID != "order-1" {
		t.Fatalf("unexpected order id %q", confirmation.OrderID)
	}
	if sess.Count() != 0 {
		t.Fatalf("cart should be cleared, count=%d", sess.Count())
	}
	if sess.CheckoutStatus() != checkout.StatusConfirmed {
		t.Fatalf("unexpected status %s", sess.CheckoutStatus())
	}
}

func TestManagerEvictsIdleSessions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory()
	manager := NewManager(store, &stubPlacer{}, "cc:cart", nil, nil)

	current := time.Now()
	manager.now = func() time.Time { return current }

	first := manager.Session(ctx, "idle")
	first.Add(ctx, testItem())

	current = current.Add(sessionIdleTTL + sweepInterval)

	second := manager.Session(ctx, "idle")
	if second == first {
		t.Fatal("idle session should have been evicted and rebuilt")
	}
	if second.Count() != 1 {
		t.Fatalf("rebuilt session must rehydrate from the store, got count %d", second.Count())
	}
}

func TestManagerKeepsRecentlySeenSessions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := NewManager(kv.NewMemory(), &stubPlacer{}, "cc:cart", nil, nil)

	current := time.Now()
	manager.now = func() time.Time { return current }

	first := manager.Session(ctx, "active")
	current = current.Add(sessionIdleTTL / 2)

	if manager.Session(ctx, "active") != first {
		t.Fatal("a session inside the idle TTL must be retained")
	}
}

func TestManagerNeverEvictsInFlightSubmission(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	placer := &stubPlacer{
		confirmation: &checkout.Confirmation{OrderID: "order-1", Currency: "USD"},
		block:        make(chan struct{}),
	}
	manager := NewManager(kv.NewMemory(), placer, "cc:cart", nil, nil)

	current := time.Now()
	manager.now = func() time.Time { return current }

	sess := manager.Session(ctx, "busy")
	sess.Add(ctx, testItem())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = sess.Submit(ctx, checkout.SubmitInput{
			Email: "maya@example.com",
			Address: types.Address{
				Line1:      "1 Curve St",
				City:       "Austin",
				State:      "TX",
				PostalCode: "78701",
			},
		})
	}()

	for sess.CheckoutStatus() != checkout.StatusSubmitting {
		time.Sleep(time.Millisecond)
	}

	current = current.Add(sessionIdleTTL + sweepInterval)

	if manager.Session(ctx, "busy") != sess {
		t.Fatal("a session with a submission in flight must not be evicted")
	}

	close(placer.block)
	<-done
}
