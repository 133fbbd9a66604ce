package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Soloken19/shapewear-dev/api/controllers"
	"github.com/Soloken19/shapewear-dev/api/middleware"
	"github.com/Soloken19/shapewear-dev/internal/session"
	"github.com/Soloken19/shapewear-dev/pkg/config"
	"github.com/Soloken19/shapewear-dev/pkg/logger"
)

// NewRouter wires the storefront's HTTP surface. The catalog routes
// read through the TTL cache for listings and the direct client for
// detail pages; everything under /api/cart and /api/checkout resolves a
// per-request cart session.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store controllers.StorePinger,
	listings controllers.ProductSource,
	details controllers.ProductDetailSource,
	sessions *session.Manager,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Get("/healthz", controllers.Health(cfg, store, logg))
	r.Method(http.MethodGet, "/metrics", metricsHandler(registry))

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(listings, logg))
			r.Get("/{slug}", controllers.GetProduct(details, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(sessions, logg))
				r.Delete("/", controllers.ClearCart(sessions, logg))
				r.Post("/items", controllers.AddCartItem(sessions, logg))
				r.Patch("/items/{index}", controllers.UpdateCartItem(sessions, logg))
				r.Delete("/items/{index}", controllers.RemoveCartItem(sessions, logg))
				r.Put("/promo", controllers.SetPromo(sessions, logg))
			})

			r.Post("/checkout", controllers.SubmitCheckout(sessions, logg))
		})
	})

	return r
}

func metricsHandler(registry *prometheus.Registry) http.Handler {
	if registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
