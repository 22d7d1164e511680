package sms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==============================================
// PROVIDER ERRORS
// ==============================================

// ProviderError is a rejection reported by the SMS provider itself, as
// opposed to a transport failure reaching it.
type ProviderError struct {
	Detail string
}

func (e *ProviderError) Error() string {
	return e.Detail
}

// IsProviderError reports whether err carries a provider rejection and
// returns its detail message.
func IsProviderError(err error) (string, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Detail, true
	}
	return "", false
}

// ==============================================
// HTTP CLIENT
// ==============================================

const defaultTimeout = 15 * time.Second

// Client talks to the SMS provider's REST API. The API key stays server-side;
// it is embedded in request URLs and never surfaces in responses or logs.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// providerResponse mirrors the provider's envelope: Status is "Success" or
// "Error", Details carries the session id or the error message.
type providerResponse struct {
	Status  string `json:"Status"`
	Details string `json:"Details"`
}

// SendOTP requests an auto-generated OTP SMS to the 10-digit phone number.
func (c *Client) SendOTP(ctx context.Context, phone string) (string, error) {
	url := fmt.Sprintf("%s/%s/SMS/%s/AUTOGEN", c.baseURL, c.apiKey, phone)

	resp, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}

	if !strings.EqualFold(resp.Status, "Success") {
		return "", &ProviderError{Detail: resp.Details}
	}
	return resp.Details, nil
}

// VerifyOTP checks the code against the provider-held session.
func (c *Client) VerifyOTP(ctx context.Context, sessionID, code string) error {
	url := fmt.Sprintf("%s/%s/SMS/VERIFY/%s/%s", c.baseURL, c.apiKey, sessionID, code)

	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}

	if !strings.EqualFold(resp.Status, "Success") {
		return &ProviderError{Detail: resp.Details}
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string) (*providerResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer res.Body.Close()

	var parsed providerResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	return &parsed, nil
}
