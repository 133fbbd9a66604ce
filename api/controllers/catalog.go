package controllers

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Soloken19/shapewear-dev/api/responses"
	"github.com/Soloken19/shapewear-dev/internal/catalog"
	pkgerrors "github.com/Soloken19/shapewear-dev/pkg/errors"
	"github.com/Soloken19/shapewear-dev/pkg/logger"
)

// ProductSource is the catalog surface the storefront reads from. The
// listing side is normally the TTL cache; detail fetches go straight to
// the catalog service.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
}

type ProductDetailSource interface {
	GetProduct(ctx context.Context, slug string) (*catalog.Detail, error)
}

type productListResponse struct {
	Products []catalog.Product `json:"products"`
}

type productDetailResponse struct {
	Product catalog.Detail `json:"product"`
}

// ListProducts serves the filtered product listing. Filtering happens
// locally over the cached listing so a filter change never costs a
// catalog round trip.
func ListProducts(source ProductSource, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if source == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		products, err := source.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := r.URL.Query()
		criteria := catalog.Criteria{
			Category: strings.TrimSpace(query.Get("category")),
			Size:     strings.TrimSpace(query.Get("size")),
			Color:    strings.TrimSpace(query.Get("color")),
		}

		responses.WriteSuccess(w, productListResponse{Products: narrowListing(products, criteria)})
	}
}

// narrowListing applies the query filters to the listing. The category
// parameter is optional here: without it every product stays in and
// only the size/color predicates narrow. catalog.Filter is the
// category-browsing path and requires one.
func narrowListing(products []catalog.Product, criteria catalog.Criteria) []catalog.Product {
	if criteria.Category != "" {
		return catalog.Filter(products, criteria)
	}

	out := []catalog.Product{}
	for _, p := range products {
		if criteria.Size != "" && !slices.Contains(p.Sizes, criteria.Size) {
			continue
		}
		if criteria.Color != "" && !slices.Contains(p.Colors, criteria.Color) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetProduct serves a single product's detail page payload.
func GetProduct(source ProductDetailSource, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if source == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product slug is required"))
			return
		}

		detail, err := source.GetProduct(r.Context(), slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, productDetailResponse{Product: *detail})
	}
}
