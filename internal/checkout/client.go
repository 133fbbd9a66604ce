package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Soloken19/shapewear-dev/pkg/config"
	pkgerrors "github.com/Soloken19/shapewear-dev/pkg/errors"
)

const idempotencyHeader = "Idempotency-Key"

// Client submits checkout requests to the remote order service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds an order service client from config.
func NewClient(cfg config.OrderServiceConfig) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("order service base url is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parsing order service base url: %w", err)
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type failureBody struct {
	Detail string `json:"detail"`
}

// PlaceOrder performs the single checkout round trip. A non-success
// status is surfaced with the service's detail message when one is
// present, and as a generic failure otherwise.
func (c *Client) PlaceOrder(ctx context.Context, req Request) (*Confirmation, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode checkout request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/checkout", bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build checkout request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.IdempotencyKey != "" {
		httpReq.Header.Set(idempotencyHeader, req.IdempotencyKey)
	}

	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "order service unreachable")
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, failureReason(res))
	}

	var confirmation Confirmation
	if err := json.NewDecoder(res.Body).Decode(&confirmation); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode order confirmation")
	}
	if strings.TrimSpace(confirmation.OrderID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "order confirmation missing order id")
	}
	return &confirmation, nil
}

func failureReason(res *http.Response) string {
	var body failureBody
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		if detail := strings.TrimSpace(body.Detail); detail != "" {
			return detail
		}
	}
	return fmt.Sprintf("checkout failed with status %d", res.StatusCode)
}
