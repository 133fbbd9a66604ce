package checkout

import (
	"context"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Soloken19/shapewear-dev/internal/cart"
	pkgerrors "github.com/Soloken19/shapewear-dev/pkg/errors"
	"github.com/Soloken19/shapewear-dev/pkg/logger"
	"github.com/Soloken19/shapewear-dev/pkg/metrics"
)

// CartAccessor is the slice of the cart engine the orchestrator needs:
// a snapshot for building the request and a clear on confirmation.
type CartAccessor interface {
	Snapshot() cart.State
	Count() int
	Clear(ctx context.Context)
}

// OrderPlacer performs the single round trip to the order service.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req Request) (*Confirmation, error)
}

// Orchestrator converts cart contents into one order submission and
// reconciles the cart with the outcome. It performs exactly one
// attempt per Submit call; retrying is a user-initiated action, which
// avoids accidental duplicate orders.
type Orchestrator struct {
	engine CartAccessor
	client OrderPlacer
	logg   *logger.Logger
	stats  *metrics.StorefrontMetrics

	mu      sync.Mutex
	status  Status
	idemKey string
}

// NewOrchestrator wires the orchestrator to a cart and order client.
func NewOrchestrator(engine CartAccessor, client OrderPlacer, logg *logger.Logger, stats *metrics.StorefrontMetrics) *Orchestrator {
	return &Orchestrator{
		engine: engine,
		client: client,
		logg:   logg,
		stats:  stats,
		status: StatusIdle,
	}
}

// Status reports the current lifecycle state.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Submit validates the cart and contact details, snapshots the cart,
// and performs a single submission to the order service. While an
// attempt is in flight further Submit calls are rejected without a
// network call. On confirmation the cart is cleared; on failure it is
// left untouched and the attempt may be retried.
func (o *Orchestrator) Submit(ctx context.Context, input SubmitInput) (*Confirmation, error) {
	req, err := o.begin(ctx, input)
	if err != nil {
		o.stats.IncCheckoutOutcome("rejected")
		return nil, err
	}

	started := time.Now()
	confirmation, err := o.client.PlaceOrder(ctx, req)
	o.stats.ObserveOrderRoundTrip(time.Since(started))

	if err != nil {
		o.resolve(StatusFailed)
		o.stats.IncCheckoutOutcome("failed")
		if o.logg != nil {
			o.logg.Warn(o.logg.WithField(ctx, "error", err.Error()), "checkout submission failed")
		}
		return nil, err
	}

	o.confirm(ctx, confirmation)
	o.stats.IncCheckoutOutcome("confirmed")
	return confirmation, nil
}

// begin performs the Idle → Submitting transition under the lock and
// returns the immutable request snapshot.
func (o *Orchestrator) begin(ctx context.Context, input SubmitInput) (Request, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status == StatusSubmitting {
		return Request{}, pkgerrors.New(pkgerrors.CodeStateConflict, "a submission is already in progress")
	}

	if err := validateInput(input); err != nil {
		return Request{}, err
	}
	if o.engine.Count() == 0 {
		return Request{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	// One idempotency key per cart lifetime: reused across user
	// retries so an ambiguous failure cannot double-place the order.
	if o.idemKey == "" {
		o.idemKey = uuid.NewString()
	}

	snapshot := o.engine.Snapshot()
	o.status = StatusSubmitting

	return Request{
		Items:          snapshot.Items,
		Email:          strings.TrimSpace(input.Email),
		Address:        input.Address.Normalized(),
		PromoCode:      snapshot.PromoCode,
		IdempotencyKey: o.idemKey,
	}, nil
}

func (o *Orchestrator) confirm(ctx context.Context, confirmation *Confirmation) {
	o.mu.Lock()
	o.status = StatusConfirmed
	o.idemKey = ""
	o.mu.Unlock()

	o.engine.Clear(ctx)

	if o.logg != nil {
		ctx = o.logg.WithField(ctx, "order_id", confirmation.OrderID)
		o.logg.Info(ctx, "checkout confirmed")
	}
}

func (o *Orchestrator) resolve(status Status) {
	o.mu.Lock()
	o.status = status
	o.mu.Unlock()
}

func validateInput(input SubmitInput) error {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "contact email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "contact email is invalid")
	}
	if !input.Address.Complete() {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipping address is incomplete")
	}
	return nil
}
