package checkout

import (
	"github.com/Soloken19/shapewear-dev/internal/cart"
	"github.com/Soloken19/shapewear-dev/pkg/types"
)

// SubmitInput carries the contact and shipping details for one
// submission attempt.
type SubmitInput struct {
	Email   string
	Address types.Address
}

// Request is the immutable snapshot sent to the order service. Items
// are value copies taken when the attempt starts, so concurrent cart
// mutation cannot alter an in-flight submission.
type Request struct {
	Items          []cart.Item   `json:"items"`
	Email          string        `json:"email"`
	Address        types.Address `json:"address"`
	PromoCode      string        `json:"promoCode,omitempty"`
	IdempotencyKey string        `json:"-"`
}

// Confirmation is the order service's success payload, passed through
// to the caller unmodified. This layer does not recompute the total or
// reconcile it against its own subtotal.
type Confirmation struct {
	OrderID  string       `json:"orderId"`
	Total    types.Amount `json:"total"`
	Currency string       `json:"currency"`
	Message  string       `json:"message"`
}
