package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Soloken19/shapewear-dev/pkg/logger"
)

const (
	cartIDHeader = "X-Cart-Id"
	cartIDCookie = "cc_cart_id"

	// Matches the retention of the storefront's local cart copy.
	cartCookieMaxAge = 180 * 24 * 60 * 60
)

type cartIDKey struct{}

// CartSession resolves the anonymous cart id for the request. The
// header wins over the cookie so API clients can pin a cart; browsers
// fall back to the cookie, and first-time visitors get a fresh id with
// the cookie set on the response.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cartID := resolveCartID(r)

			http.SetCookie(w, &http.Cookie{
				Name:     cartIDCookie,
				Value:    cartID,
				Path:     "/",
				MaxAge:   cartCookieMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(cartIDHeader, cartID)

			ctx := context.WithValue(r.Context(), cartIDKey{}, cartID)
			if logg != nil {
				ctx = logg.WithCartID(ctx, cartID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveCartID(r *http.Request) string {
	if id := r.Header.Get(cartIDHeader); id != "" {
		return id
	}
	if cookie, err := r.Cookie(cartIDCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return uuid.NewString()
}

// CartIDFromContext returns the cart id resolved by CartSession, or ""
// when the middleware did not run.
func CartIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(cartIDKey{}).(string); ok {
		return id
	}
	return ""
}
