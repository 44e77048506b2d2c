// Package paygate is a thin HTTP client for the external payment gateway.
// The gateway is an opaque collaborator: the backend only creates payable
// intents and returns the client secret; charge confirmation happens
// client-side and reaches the backend out of band.
package paygate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Gateway creates payable intents on the external payment service.
type Gateway interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*Intent, error)
}

// Client talks to a Stripe-compatible payment intent API.
type Client struct {
	secretKey  string
	apiBaseURL string
	httpClient *http.Client
}

// NewClient creates a gateway client authenticated with the account secret key.
func NewClient(apiBaseURL, secretKey string) *Client {
	return &Client{
		secretKey:  secretKey,
		apiBaseURL: strings.TrimRight(apiBaseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateIntent creates a payment intent for the given minor-unit amount and
// returns the gateway response including the client secret.
func (c *Client) CreateIntent(ctx context.Context, reqParams CreateIntentRequest) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(reqParams.AmountCents, 10))
	form.Set("currency", reqParams.Currency)
	for i, method := range reqParams.PaymentMethods {
		form.Set(fmt.Sprintf("payment_method_types[%d]", i), method)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBaseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build intent request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if reqParams.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", reqParams.IdempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("payment gateway returned %s: %s", resp.Status, string(body))
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("failed to decode intent response: %w", err)
	}

	return &intent, nil
}
