package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Soloken19/shapewear-dev/api/middleware"
	"github.com/Soloken19/shapewear-dev/api/responses"
	"github.com/Soloken19/shapewear-dev/api/validators"
	"github.com/Soloken19/shapewear-dev/internal/cart"
	"github.com/Soloken19/shapewear-dev/internal/session"
	pkgerrors "github.com/Soloken19/shapewear-dev/pkg/errors"
	"github.com/Soloken19/shapewear-dev/pkg/logger"
	"github.com/Soloken19/shapewear-dev/pkg/types"
)

type cartResponse struct {
	Items     []cart.Item  `json:"items"`
	PromoCode string       `json:"promoCode"`
	Subtotal  types.Amount `json:"subtotal"`
	Count     int          `json:"count"`
}

func cartResponseFrom(view session.CartView) cartResponse {
	return cartResponse{
		Items:     view.Items,
		PromoCode: view.PromoCode,
		Subtotal:  view.Subtotal,
		Count:     view.Count,
	}
}

type addItemRequest struct {
	ProductID string       `json:"productId" validate:"required"`
	Slug      string       `json:"slug" validate:"required"`
	Name      string       `json:"name" validate:"required"`
	Price     types.Amount `json:"price"`
	Qty       int          `json:"qty"`
	Size      string       `json:"size" validate:"required"`
	Color     string       `json:"color" validate:"required"`
}

type updateQuantityRequest struct {
	Qty int `json:"qty"`
}

type promoRequest struct {
	Code string `json:"code"`
}

// GetCart returns the cart view for the request's cart id.
func GetCart(mgr *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := requestSession(mgr, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponseFrom(sess.View()))
	}
}

// AddCartItem merges the posted item into the cart. Lines with the same
// slug, size and color combine; anything else appends.
func AddCartItem(mgr *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := requestSession(mgr, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Price.IsNegative() {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative"))
			return
		}

		sess.Add(r.Context(), cart.Item{
			ProductID: payload.ProductID,
			Slug:      payload.Slug,
			Name:      payload.Name,
			Price:     payload.Price,
			Qty:       payload.Qty,
			Size:      payload.Size,
			Color:     payload.Color,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, cartResponseFrom(sess.View()))
	}
}

// UpdateCartItem sets the quantity on the line at the path index.
// Quantities below one clamp to one; an out-of-range index leaves the
// cart unchanged.
func UpdateCartItem(mgr *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := requestSession(mgr, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		index, err := lineIndex(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess.SetQuantity(r.Context(), index, payload.Qty)
		responses.WriteSuccess(w, cartResponseFrom(sess.View()))
	}
}

// RemoveCartItem deletes the line at the path index. An out-of-range
// index leaves the cart unchanged.
func RemoveCartItem(mgr *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := requestSession(mgr, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		index, err := lineIndex(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess.Remove(r.Context(), index)
		responses.WriteSuccess(w, cartResponseFrom(sess.View()))
	}
}

// SetPromo stores the promo code verbatim. An empty code clears it.
// Codes are not validated here; the order service applies or rejects
// them at checkout.
func SetPromo(mgr *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := requestSession(mgr, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload promoRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess.SetPromoCode(r.Context(), payload.Code)
		responses.WriteSuccess(w, cartResponseFrom(sess.View()))
	}
}

// ClearCart empties the cart and drops the promo code.
func ClearCart(mgr *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := requestSession(mgr, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess.Clear(r.Context())
		responses.WriteSuccess(w, cartResponseFrom(sess.View()))
	}
}

func requestSession(mgr *session.Manager, r *http.Request) (*session.Session, error) {
	if mgr == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart sessions unavailable")
	}
	cartID := middleware.CartIDFromContext(r.Context())
	if cartID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart id missing from request context")
	}
	return mgr.Session(r.Context(), cartID), nil
}

func lineIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "line index must be an integer")
	}
	return index, nil
}
