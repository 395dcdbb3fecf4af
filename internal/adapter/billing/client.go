package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"campaign-desk/internal/core/port"
)

var _ port.BillingGateway = (*Client)(nil)

// paymentMethodResponse mirrors the billing service payment-method JSON.
type paymentMethodResponse struct {
	HasPaymentMethod bool `json:"has_payment_method"`
}

// Client asks a remote billing service whether a brand can be charged.
type Client struct {
	baseURL *url.URL
	client  *http.Client
}

// NewClient creates a client for the billing service at baseURL.
func NewClient(baseURL *url.URL, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, client: client}
}

// HasActivePaymentMethod calls GET {base}/brands/{id}/payment-method. A 404
// means the brand has never set up billing and is reported as false. Any
// other non-200 response is an error.
func (c *Client) HasActivePaymentMethod(ctx context.Context, brandID uuid.UUID) (bool, error) {
	endpoint := c.baseURL.JoinPath("brands", brandID.String(), "payment-method")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return false, fmt.Errorf("build payment method request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("payment method request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("billing returned %s", resp.Status)
	}

	var result paymentMethodResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decode payment method response: %w", err)
	}
	return result.HasPaymentMethod, nil
}
