// Package client talks to the record store gateway and derives display fields.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	appErrors "github.com/unclebandit/customer-viewer/internal/errors"
	"github.com/unclebandit/customer-viewer/internal/model"
)

const customersPath = "/api/customers/"

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client whose requests give up after timeout. The gateway
// never answers a failed query, so the timeout is the only way out.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// ListCustomers fetches the customers matching filter. Both parameters are
// always sent, empty when unset.
func (c *Client) ListCustomers(ctx context.Context, filter model.CustomerFilter) ([]model.Customer, error) {
	q := url.Values{}
	q.Set("filterName", filter.Name)
	q.Set("filterLocation", filter.Location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+customersPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch customers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, appErrors.NewGatewayStatus(resp.StatusCode)
	}

	var customers []model.Customer
	if err := json.NewDecoder(resp.Body).Decode(&customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return customers, nil
}
