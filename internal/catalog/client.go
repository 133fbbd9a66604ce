package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Soloken19/shapewear-dev/pkg/config"
	pkgerrors "github.com/Soloken19/shapewear-dev/pkg/errors"
)

// Client fetches products from the remote catalog service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a catalog client from config.
func NewClient(cfg config.CatalogConfig) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("catalog base url is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parsing catalog base url: %w", err)
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type listEnvelope struct {
	Products []Product `json:"products"`
}

type detailEnvelope struct {
	Product Detail `json:"product"`
}

// ListProducts fetches the full product listing.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build catalog request")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog unreachable")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("catalog returned status %d", res.StatusCode))
	}

	var envelope listEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog response")
	}
	if envelope.Products == nil {
		envelope.Products = []Product{}
	}
	return envelope.Products, nil
}

// GetProduct fetches the detail page payload for one slug.
func (c *Client) GetProduct(ctx context.Context, slug string) (*Detail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product slug is required")
	}

	endpoint := c.baseURL + "/api/products/" + url.PathEscape(slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build catalog request")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog unreachable")
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	default:
		return nil, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("catalog returned status %d", res.StatusCode))
	}

	var envelope detailEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog response")
	}
	return &envelope.Product, nil
}
