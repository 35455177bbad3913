package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
	"github.com/jcsoftlabs/Yeng-client/internal/logging"
)

// HTTPClient is the concrete Client over net/http. The bearer token is held
// in memory and mirrored into the TokenStore; concurrent page fetches may
// read it, so access goes through a mutex.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenStore, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// SetToken stores the token in memory and in durable storage. Subsequent
// requests include it as "Authorization: Bearer <token>".
func (c *HTTPClient) SetToken(ctx context.Context, token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return c.tokens.Save(ctx, token)
}

// ClearToken removes the token from memory and from durable storage.
func (c *HTTPClient) ClearToken(ctx context.Context) error {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	return c.tokens.Clear(ctx)
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do sends a request and returns the raw response body. Any status outside
// 2xx becomes a *RequestError; transport failures are returned wrapped.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		reqErr := newRequestError(resp.StatusCode, data)
		c.log.Debug(ctx, "api error", "method", method, "path", path, "status", resp.StatusCode)
		return nil, reqErr
	}

	return data, nil
}

// request sends a JSON request and decodes the response into out (skipped
// when out is nil or the body is empty).
func (c *HTTPClient) request(ctx context.Context, method, path string, body, out any) error {
	data, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response %s %s: %w", method, path, err)
	}
	return nil
}

// Login authenticates the customer and stores the returned bearer token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	payload := map[string]string{"email": email, "password": password}

	var resp models.LoginResponse
	if err := c.request(ctx, http.MethodPost, "/auth/customer-login", payload, &resp); err != nil {
		return nil, err
	}

	if err := c.SetToken(ctx, resp.AccessToken); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.Customer, error) {
	var customer models.Customer
	if err := c.request(ctx, http.MethodPost, "/customers", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.request(ctx, http.MethodPost, "/auth/forgot-password", payload, nil)
}

// ResetPassword redeems the emailed reset token against a new password.
func (c *HTTPClient) ResetPassword(ctx context.Context, token, password string) error {
	payload := map[string]string{"token": token, "password": password}
	return c.request(ctx, http.MethodPost, "/auth/reset-password", payload, nil)
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.Customer, error) {
	var customer models.Customer
	if err := c.request(ctx, http.MethodGet, "/customers/me", nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.Customer, error) {
	var customer models.Customer
	if err := c.request(ctx, http.MethodPatch, "/customers/me", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *HTTPClient) GetParcels(ctx context.Context) ([]models.Parcel, error) {
	var parcels []models.Parcel
	if err := c.request(ctx, http.MethodGet, "/parcels", nil, &parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}

func (c *HTTPClient) GetParcel(ctx context.Context, id string) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := c.request(ctx, http.MethodGet, "/parcels/"+url.PathEscape(id), nil, &parcel); err != nil {
		return nil, err
	}
	return &parcel, nil
}

// TrackParcel is the public tracking lookup; no authentication is required,
// but the token is still attached when present.
func (c *HTTPClient) TrackParcel(ctx context.Context, trackingNumber string) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := c.request(ctx, http.MethodGet, "/parcels/track/"+url.PathEscape(trackingNumber), nil, &parcel); err != nil {
		return nil, err
	}
	return &parcel, nil
}

func (c *HTTPClient) GetInvoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.request(ctx, http.MethodGet, "/invoices", nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *HTTPClient) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.request(ctx, http.MethodGet, "/invoices/"+url.PathEscape(id), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// DownloadInvoicePDF fetches the invoice's binary PDF payload. Saving it to
// disk is the caller's concern.
func (c *HTTPClient) DownloadInvoicePDF(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/invoices/"+url.PathEscape(id)+"/pdf", nil)
}
