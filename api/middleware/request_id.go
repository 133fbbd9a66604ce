package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Soloken19/shapewear-dev/pkg/logger"
)

const (
	requestIDHeader = "X-Request-Id"

	// Inbound ids longer than this are replaced rather than echoed, so
	// a misbehaving client cannot stuff arbitrary blobs into logs.
	maxRequestIDLen = 64
)

// RequestID tags each request with a correlation id. The storefront
// frontend forwards the id it receives, so a browse-add-checkout flow
// can be stitched together across log lines; requests arriving without
// one get a fresh uuid.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" || len(reqID) > maxRequestIDLen {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
