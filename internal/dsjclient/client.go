// Package dsjclient is a small authenticated HTTP client for the internal
// back-office service. It logs in lazily and caches the issued JWT.
package dsjclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTimeout = 10 * time.Second

	// refreshMargin is how close to expiry a cached token is still
	// considered usable.
	refreshMargin = 30 * time.Second
)

// AuthError reports a failed login against the auth endpoint.
type AuthError struct {
	StatusCode int
	Status     string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("dsj auth failed: %s", e.Status)
}

// Config carries the connection settings for the back-office service.
type Config struct {
	BaseURL  string
	Email    string
	Password string
	// TokenTTL bounds the cached token lifetime when the token carries no
	// parseable exp claim.
	TokenTTL time.Duration
}

// Client authenticates lazily on first use and reuses the token until it
// is within refreshMargin of expiry. Safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func New(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: defaultTimeout},
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (c *Client) login(ctx context.Context) error {
	form := url.Values{}
	form.Set("email", c.cfg.Email)
	form.Set("password", c.cfg.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v2/auth/token/", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("dsj auth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &AuthError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return fmt.Errorf("dsj auth response: %w", err)
	}

	c.token = tr.Token
	c.expiresAt = c.tokenExpiry(tr.Token)
	return nil
}

// tokenExpiry prefers the token's own exp claim; tokens that are not
// parseable JWTs fall back to the configured TTL.
func (c *Client) tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return time.Now().Add(c.cfg.TokenTTL)
}

func (c *Client) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Until(c.expiresAt) > refreshMargin {
		return c.token, nil
	}
	if err := c.login(ctx); err != nil {
		return "", err
	}
	return c.token, nil
}

// Do sends an authenticated request to path (joined onto the base URL)
// and returns the raw response; the caller owns the body.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "JWT "+token)

	return c.http.Do(req)
}

// Close releases idle connections. The cached token is discarded.
func (c *Client) Close() {
	c.mu.Lock()
	c.token = ""
	c.expiresAt = time.Time{}
	c.mu.Unlock()
	c.http.CloseIdleConnections()
}
