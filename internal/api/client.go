// Package api is the gateway to the phone-tracker backend. One method per
// resource endpoint; every call is a stateless single-shot request with no
// retries, caching, or batching. Failures are either a *TransportError (the
// request never completed) or a *StatusError (non-2xx response).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"phoneflip/internal/phone"
)

const defaultTimeout = 10 * time.Second

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the backend at baseURL (e.g.
// "http://localhost:5000"). A zero timeout falls back to the default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// NewPhone is the payload for creating a record. The backend assigns the id
// and puts the record in state bought.
type NewPhone struct {
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	BuyPrice float64 `json:"buy_price"`
	Notes    string  `json:"notes"`
}

// StateChange requests a transition. SellPrice is only present on
// transitions into sold.
type StateChange struct {
	State     phone.State `json:"state"`
	SellPrice *float64    `json:"sell_price,omitempty"`
}

// MutationResult is what the backend returns from a successful add or state
// change: the updated record plus any advisory messages.
type MutationResult struct {
	Phone    phone.Phone     `json:"phone"`
	Messages []phone.Message `json:"messages"`
}

type budgetUpdate struct {
	TotalMoney float64 `json:"total_money"`
}

// ListPhones fetches every record, newest first (backend ordering).
func (c *Client) ListPhones(ctx context.Context) ([]phone.Phone, error) {
	var out []phone.Phone
	if err := c.do(ctx, http.MethodGet, "/api/phones", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBudget fetches the current budget aggregate.
func (c *Client) GetBudget(ctx context.Context) (phone.Budget, error) {
	var out phone.Budget
	if err := c.do(ctx, http.MethodGet, "/api/budget", nil, &out); err != nil {
		return phone.Budget{}, err
	}
	return out, nil
}

// GetStats fetches the derived aggregates.
func (c *Client) GetStats(ctx context.Context) (phone.Stats, error) {
	var out phone.Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &out); err != nil {
		return phone.Stats{}, err
	}
	return out, nil
}

// AddPhone creates a record in state bought. The backend deducts the buy
// price from the budget and may attach deal-evaluation messages.
func (c *Client) AddPhone(ctx context.Context, p NewPhone) (*MutationResult, error) {
	var out MutationResult
	if err := c.do(ctx, http.MethodPost, "/api/phones", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePhoneState applies a state transition. Legality of the transition is
// the backend's contract; the client only sends what the UI offered.
func (c *Client) UpdatePhoneState(ctx context.Context, id int64, change StateChange) (*MutationResult, error) {
	var out MutationResult
	path := fmt.Sprintf("/api/phones/%d/state", id)
	if err := c.do(ctx, http.MethodPut, path, change, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBudget replaces the budget total.
func (c *Client) UpdateBudget(ctx context.Context, totalMoney float64) (phone.Budget, error) {
	var out phone.Budget
	if err := c.do(ctx, http.MethodPost, "/api/budget", budgetUpdate{TotalMoney: totalMoney}, &out); err != nil {
		return phone.Budget{}, err
	}
	return out, nil
}

// DeletePhone removes a record permanently. Exposed for completeness; the
// TUI does not bind it to any key.
func (c *Client) DeletePhone(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/phones/%d", id), nil, nil)
}

// do runs one request. body (when non-nil) is JSON-encoded and declared as
// such; out (when non-nil) receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: op, Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
