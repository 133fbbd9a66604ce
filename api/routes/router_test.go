package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Soloken19/shapewear-dev/internal/catalog"
	"github.com/Soloken19/shapewear-dev/internal/checkout"
	"github.com/Soloken19/shapewear-dev/internal/session"
	"github.com/Soloken19/shapewear-dev/pkg/config"
	"github.com/Soloken19/shapewear-dev/pkg/kv"
	"github.com/Soloken19/shapewear-dev/pkg/types"
)

type staticCatalog struct {
	products []catalog.Product
}

func (s *staticCatalog) ListProducts(context.Context) ([]catalog.Product, error) {
	return s.products, nil
}

func (s *staticCatalog) GetProduct(_ context.Context, slug string) (*catalog.Detail, error) {
	for _, p := range s.products {
		if p.Slug == slug {
			return &catalog.Detail{ID: p.ID, Name: p.Name, Slug: p.Slug, Price: p.Price}, nil
		}
	}
	return nil, errors.New("not found")
}

type noopPlacer struct{}

func (noopPlacer) PlaceOrder(context.Context, checkout.Request) (*checkout.Confirmation, error) {
	return &checkout.Confirmation{OrderID: "order-1", Currency: "USD"}, nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "dev"
	cfg.Store.Driver = "memory"

	store := kv.NewMemory()
	source := &staticCatalog{products: []catalog.Product{{
		ID:    "p-1",
		Name:  "SculptFit Seamless Bodysuit",
		Slug:  "sculptfit-seamless-bodysuit",
		Price: types.MustAmount("78.00"),
	}}}
	sessions := session.NewManager(store, noopPlacer{}, "cc:cart", nil, nil)

	return NewRouter(cfg, nil, store, source, source, sessions, prometheus.NewRegistry())
}

func TestRouterHealthz(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestRouterMetricsExposed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestRouterProductRoutes(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("listing: unexpected status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/sculptfit-seamless-bodysuit", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("detail: unexpected status %d", rec.Code)
	}
}

func TestRouterCartRoutesMintCartID(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if rec.Header().Get("X-Cart-Id") == "" {
		t.Fatal("cart routes should mint and echo a cart id")
	}

	res := rec.Result()
	defer res.Body.Close()
	found := false
	for _, c := range res.Cookies() {
		if c.Name == "cc_cart_id" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected cc_cart_id cookie")
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
