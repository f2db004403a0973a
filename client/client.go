// Package client is a typed HTTP client for the site API. Inputs are validated
// locally with the same rules the server applies, so invalid forms fail before
// any request is sent.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodie-site-api/contract"
	"foodie-site-api/models"
	"foodie-site-api/schema"
)

// APIError is a non-2xx response that is not a validation failure.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := c.call(ctx, contract.API.Categories.List, nil, nil, nil, &out)
	return out, err
}

// GetCategory returns nil, nil when no category has the slug.
func (c *Client) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	var out models.Category
	err := c.call(ctx, contract.API.Categories.Get, map[string]any{"slug": url.PathEscape(slug)}, nil, nil, &out)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMenuItems lists every item, or only those of categoryID when it is set.
func (c *Client) ListMenuItems(ctx context.Context, categoryID *int64) ([]models.MenuItem, error) {
	var q url.Values
	if categoryID != nil {
		q = url.Values{"categoryId": {strconv.FormatInt(*categoryID, 10)}}
	}
	var out []models.MenuItem
	err := c.call(ctx, contract.API.MenuItems.List, nil, q, nil, &out)
	return out, err
}

func (c *Client) ListCategoryItems(ctx context.Context, categoryID int64) ([]models.MenuItem, error) {
	var out []models.MenuItem
	err := c.call(ctx, contract.API.MenuItems.ByCategory, map[string]any{"id": categoryID}, nil, nil, &out)
	return out, err
}

func (c *Client) SubmitContact(ctx context.Context, in models.ContactMessageInput) error {
	if err := schema.Check(in); err != nil {
		return err
	}
	var out contract.SuccessResponse
	return c.call(ctx, contract.API.Contact.Submit, nil, nil, in, &out)
}

func (c *Client) SubmitReservation(ctx context.Context, in models.ReservationInput) error {
	if err := schema.Check(in); err != nil {
		return err
	}
	var out contract.SuccessResponse
	return c.call(ctx, contract.API.Reservation.Submit, nil, nil, in, &out)
}

func (c *Client) ListReviews(ctx context.Context) ([]models.Review, error) {
	var out []models.Review
	err := c.call(ctx, contract.API.Reviews.List, nil, nil, nil, &out)
	return out, err
}

func (c *Client) CreateReview(ctx context.Context, in models.ReviewInput) (*models.Review, error) {
	if err := schema.Check(in); err != nil {
		return nil, err
	}
	var out models.Review
	if err := c.call(ctx, contract.API.Reviews.Create, nil, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReviewSummary(ctx context.Context) (models.ReviewSummary, error) {
	var out models.ReviewSummary
	err := c.call(ctx, contract.API.Reviews.Summary, nil, nil, nil, &out)
	return out, err
}

// call sends one request for ep and decodes a 200 body into out.
func (c *Client) call(ctx context.Context, ep contract.Endpoint, params map[string]any, query url.Values, in, out any) error {
	target := c.baseURL + ep.URL(params)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", ep.Name, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, target, body)
	if err != nil {
		return fmt.Errorf("%s: %w", ep.Name, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", ep.Name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", ep.Name, err)
	}
	if resp.StatusCode == http.StatusOK {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: decode body: %w", ep.Name, err)
		}
		return nil
	}
	return decodeError(resp.StatusCode, data)
}

// decodeError maps a failure body onto *schema.ValidationError for 400s with
// field errors, and *APIError otherwise. Both body shapes are accepted.
func decodeError(status int, data []byte) error {
	var body struct {
		Message string              `json:"message"`
		Error   string              `json:"error"`
		Errors  []schema.FieldError `json:"errors"`
	}
	_ = json.Unmarshal(data, &body)

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if status == http.StatusBadRequest && len(body.Errors) > 0 {
		return &schema.ValidationError{Message: msg, Fields: body.Errors}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}
