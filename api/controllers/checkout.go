package controllers

import (
	"net/http"

	"github.com/Soloken19/shapewear-dev/api/responses"
	"github.com/Soloken19/shapewear-dev/api/validators"
	"github.com/Soloken19/shapewear-dev/internal/checkout"
	"github.com/Soloken19/shapewear-dev/internal/session"
	"github.com/Soloken19/shapewear-dev/pkg/logger"
	"github.com/Soloken19/shapewear-dev/pkg/types"
)

type checkoutRequest struct {
	Email   string         `json:"email" validate:"required,email"`
	Address addressRequest `json:"address" validate:"required"`
}

type addressRequest struct {
	Line1      string  `json:"line1" validate:"required"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city" validate:"required"`
	State      string  `json:"state" validate:"required"`
	PostalCode string  `json:"postalCode" validate:"required"`
	Country    string  `json:"country"`
}

// SubmitCheckout runs one checkout attempt for the request's cart. The
// confirmation passes through from the order service unmodified.
func SubmitCheckout(mgr *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := requestSession(mgr, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		address := types.Address{
			Line1:      payload.Address.Line1,
			Line2:      payload.Address.Line2,
			City:       payload.Address.City,
			State:      payload.Address.State,
			PostalCode: payload.Address.PostalCode,
			Country:    payload.Address.Country,
		}

		confirmation, err := sess.Submit(r.Context(), checkout.SubmitInput{
			Email:   payload.Email,
			Address: address.Normalized(),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, confirmation)
	}
}
