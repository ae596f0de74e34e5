// Package client is a small Go client for the bookmark API. It mirrors
// the calls the browser extension makes and adds a cached list feed.
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

	"github.com/recollect/recollect/internal/models"
)

// Placeholder values shipped in the extension config. A client still
// carrying them is considered unconfigured.
const (
	PlaceholderBaseURL = "YOUR_API_URL_HERE"
	PlaceholderAPIKey  = "YOUR_API_KEY_HERE"
)

// ErrNotConfigured is returned when BaseURL or APIKey is empty or still
// a placeholder.
var ErrNotConfigured = errors.New("client is not configured")

// Client talks to the bookmark API with a shared-secret API key.
type Client struct {
	BaseURL string
	APIKey  string

	// HTTPClient is used for requests; http.DefaultClient when nil.
	HTTPClient *http.Client
}

// New returns a client for the given endpoint and key.
func New(baseURL, apiKey string) *Client {
	return &Client{BaseURL: baseURL, APIKey: apiKey}
}

// IsConfigured reports whether both the endpoint and the key have been
// filled in.
func (c *Client) IsConfigured() bool {
	return c.BaseURL != "" && c.BaseURL != PlaceholderBaseURL &&
		c.APIKey != "" && c.APIKey != PlaceholderAPIKey
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// SaveURL saves one bookmark and returns the stored record.
func (c *Client) SaveURL(ctx context.Context, req models.SaveURLRequest) (*models.SaveURLResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/urls", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.APIKey)

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp.Body, "Failed to save URL")
	}

	var saved models.SaveURLResponse
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &saved, nil
}

// GetURLs fetches one page of bookmarks. limit <= 0 means the server
// default; lastKey resumes a previous page.
func (c *Client) GetURLs(ctx context.Context, limit int, lastKey string) (*models.ListURLsResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	query := url.Values{}
	if limit > 0 {
		query.Set("limit", fmt.Sprint(limit))
	}
	if lastKey != "" {
		query.Set("lastKey", lastKey)
	}

	target := c.BaseURL + "/api/urls"
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("X-API-Key", c.APIKey)

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.Body, "Failed to fetch URLs")
	}

	var list models.ListURLsResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &list, nil
}

// apiError extracts the message from the error envelope, falling back
// to a generic message when the body is not one.
func apiError(body io.Reader, fallback string) error {
	var envelope models.ErrorResponse
	if err := json.NewDecoder(body).Decode(&envelope); err == nil && envelope.Message != "" {
		return errors.New(envelope.Message)
	}
	return errors.New(fallback)
}

// Ping checks server reachability without authentication.
func (c *Client) Ping(ctx context.Context) error {
	if c.BaseURL == "" || c.BaseURL == PlaceholderBaseURL {
		return ErrNotConfigured
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/ping", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ping failed with status %d", resp.StatusCode)
	}

	return nil
}
