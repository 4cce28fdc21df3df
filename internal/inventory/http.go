package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fairyhunter13/inventory-dashboard/internal/model"
	"github.com/fairyhunter13/inventory-dashboard/internal/obs"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	ErrInvalidDocument  = errors.New("inventory document is not valid JSON")
)

// HTTPProvider fetches the inventory summary document from a URL.
type HTTPProvider struct {
	url    string
	client *resty.Client
}

// NewHTTPProvider builds a provider for url. retries is the number of
// additional attempts after a transport error; zero disables retrying.
func NewHTTPProvider(url string, timeout time.Duration, retries int) *HTTPProvider {
	c := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(250*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "inventory-dashboard/1.0")
	return &HTTPProvider{url: url, client: c}
}

func (p *HTTPProvider) Name() string { return "http" }

func (p *HTTPProvider) FetchInventory(ctx context.Context) ([]model.Product, error) {
	resp, err := p.client.R().SetContext(ctx).Get(p.url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p.url, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch %s: %w: %d", p.url, ErrUnexpectedStatus, resp.StatusCode())
	}
	return DecodeSummary(resp.Body())
}

// DecodeSummary extracts full_inventory from a summary document. A body that
// is not JSON is an error; a missing, null or malformed full_inventory field
// yields an empty inventory.
func DecodeSummary(body []byte) ([]model.Product, error) {
	if !json.Valid(body) {
		return nil, ErrInvalidDocument
	}
	var doc struct {
		FullInventory json.RawMessage `json:"full_inventory"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		obs.Logger.Warn("summary_not_object", "error", err)
		return []model.Product{}, nil
	}
	if len(doc.FullInventory) == 0 || string(doc.FullInventory) == "null" {
		return []model.Product{}, nil
	}
	var ps []model.Product
	if err := json.Unmarshal(doc.FullInventory, &ps); err != nil {
		obs.Logger.Warn("full_inventory_malformed", "error", err)
		return []model.Product{}, nil
	}
	return ps, nil
}
