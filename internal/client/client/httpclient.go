package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
)

// API paths consumed by the console core.
const (
	PathLogin  = "/login"
	PathLogout = "/logout"
	PathPing   = "/ping"
)

// maxErrorBody bounds how much of an error response is kept for messages.
const maxErrorBody = 512

// HTTPClient talks to the JSON API. One instance is shared by the whole
// process; its transport injects the bearer token per request.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for baseURL whose requests carry the token
// reported by tokens at dispatch time. timeout bounds each request; zero
// means no client-side limit.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) *HTTPClient {
	return newHTTPClient(baseURL, tokens, timeout, http.DefaultTransport)
}

func newHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration, base http.RoundTripper) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{base: base, tokens: tokens},
		},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string       `json:"token"`
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// Login exchanges credentials for a user record and bearer token.
func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (models.User, string, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: string(password)})
	if err != nil {
		return models.User{}, "", err
	}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, PathLogin, bytes.NewReader(body), &resp); err != nil {
		return models.User{}, "", err
	}

	token := resp.Token
	if token == "" {
		token = resp.AccessToken
	}
	if token == "" || resp.User == nil {
		return models.User{}, "", fmt.Errorf("%w: login response without token or user", ErrInvalidAnswer)
	}
	return *resp.User, token, nil
}

// Logout asks the server to invalidate the current token.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, PathLogout, nil, nil)
}

// Notifications fetches the feed at path. Both a bare JSON array and a
// {"data": [...]} envelope are accepted.
func (c *HTTPClient) Notifications(ctx context.Context, path string) ([]models.Notification, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return decodeNotifications(raw)
}

// Ping checks that the API answers at all.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, PathPing, nil, nil)
}

func decodeNotifications(raw json.RawMessage) ([]models.Notification, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var items []models.Notification
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
		}
		return items, nil
	}

	var envelope struct {
		Data []models.Notification `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}
	return envelope.Data, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statusError(resp.StatusCode, b)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}
	return nil
}

func (c *HTTPClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func statusError(code int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, code)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status %d", ErrUnavailable, code)
	default:
		return fmt.Errorf("api error: status %d: %s", code, msg)
	}
}
