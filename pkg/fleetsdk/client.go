package fleetsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the MyVehicles API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the API served at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Info returns the API banner served at GET /api.
func (c *Client) Info(ctx context.Context) (*InfoResponse, error) {
	var info InfoResponse
	if err := c.do(ctx, http.MethodGet, "/api", nil, "", http.StatusOK, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", nil, "", http.StatusOK, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service can reach its database.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", nil, "", http.StatusOK, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Login authenticates with email and password and returns a Session
// holding the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var tok TokenResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/usuarios/login", req, "", http.StatusOK, &tok); err != nil {
		return nil, err
	}
	return NewSession(c, tok.AccessToken), nil
}
