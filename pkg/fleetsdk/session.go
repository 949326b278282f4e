package fleetsdk

import (
	"context"
	"net/http"
	"sync"
)

// Session holds an access token issued by Login. It is safe for concurrent
// use.
type Session struct {
	client *Client

	mu          sync.RWMutex
	accessToken string
}

// NewSession wraps an existing access token.
func NewSession(client *Client, accessToken string) *Session {
	return &Session{client: client, accessToken: accessToken}
}

// AccessToken returns the current token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Refresh exchanges the current token for a newly issued one.
func (s *Session) Refresh(ctx context.Context) error {
	var tok TokenResponse
	err := s.client.do(ctx, http.MethodGet, usersPath+"/token", nil, s.AccessToken(), http.StatusOK, &tok)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken = tok.AccessToken
	s.mu.Unlock()
	return nil
}
