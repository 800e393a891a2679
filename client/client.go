// Package client implements the storefront side of the checkout flow: it
// holds the transient pickup selection, validates the buyer's details, and
// exchanges the cart for a hosted payment redirect URL.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"breadlab/internal/domain"
)

var (
	// ErrEmptyCart means checkout was attempted with nothing in the cart.
	// No request is sent.
	ErrEmptyCart = errors.New("your cart is empty")

	// ErrIncompleteBuyer means name, phone or email was blank after trimming.
	// No request is sent.
	ErrIncompleteBuyer = errors.New("please fill name / phone / email")

	// ErrCheckoutUnavailable maps any non-success HTTP status. Not retried.
	ErrCheckoutUnavailable = errors.New("checkout unavailable")

	// ErrCheckoutFailed means the endpoint answered success without a
	// redirect URL.
	ErrCheckoutFailed = errors.New("checkout error")

	// ErrNetwork wraps transport-level failures. Not retried.
	ErrNetwork = errors.New("network error")
)

type Buyer struct {
	Name  string
	Phone string
	Email string
}

type checkoutPayload struct {
	Items        []domain.CartItem `json:"items"`
	PickupWindow string            `json:"pickupWindow"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
}

type checkoutResult struct {
	URL string `json:"url"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	selector   *domain.PickupSelector
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a storefront client pointed at the checkout endpoint. The
// pickup selection starts on the afternoon batch.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		selector:   domain.NewPickupSelector(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SelectPickupWindow switches the active window. Unknown codes are ignored.
func (c *Client) SelectPickupWindow(code string) {
	c.selector.Select(code)
}

// PickupSummary renders the active window for display and for the payload.
func (c *Client) PickupSummary() string {
	return c.selector.Current().Summary()
}

// Checkout validates the cart and buyer, posts the payload once, and returns
// the redirect URL. Navigation is the caller's concern; the cart is left
// untouched on success.
func (c *Client) Checkout(ctx context.Context, cart domain.Cart, buyer Buyer) (string, error) {
	if cart.IsEmpty() {
		return "", ErrEmptyCart
	}

	name := strings.TrimSpace(buyer.Name)
	phone := strings.TrimSpace(buyer.Phone)
	email := strings.TrimSpace(buyer.Email)
	if name == "" || phone == "" || email == "" {
		return "", ErrIncompleteBuyer
	}

	payload := checkoutPayload{
		Items:        cart.Items,
		PickupWindow: c.PickupSummary(),
		Name:         name,
		Phone:        phone,
		Email:        email,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding checkout payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", ErrCheckoutUnavailable
	}

	var result checkoutResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", ErrCheckoutFailed
	}
	if result.URL == "" {
		return "", ErrCheckoutFailed
	}

	return result.URL, nil
}
