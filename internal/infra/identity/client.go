// Package identity calls the external provider that holds the OAuth result.
// The backend never sees credentials; it exchanges the short-lived session id
// the mobile app obtained for the user profile and an opaque session token.
package identity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"glass-dispatch/internal/pkg/config"
	"glass-dispatch/internal/pkg/errs"
)

var (
	ErrExchangeRejected    = errs.New("identity provider rejected the session id")
	ErrProviderUnreachable = errs.New("identity provider unreachable")
)

// ExchangeResult is the provider's response for a valid session id.
type ExchangeResult struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture"`
	SessionToken string  `json:"session_token"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL: cfg.Identity.BaseURL,
		http:    &http.Client{Timeout: cfg.Identity.Timeout},
	}
}

// Exchange presents the session id to the provider. A non-200 answer means
// the id is invalid or expired; callers map that to an auth failure, not a
// server error.
func (c *Client) Exchange(ctx context.Context, sessionID string) (*ExchangeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build identity request")
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(err, ErrProviderUnreachable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, ErrExchangeRejected
	}

	var result ExchangeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errs.Wrap(err, "failed to decode identity response")
	}
	if result.Email == "" || result.SessionToken == "" {
		return nil, ErrExchangeRejected
	}
	return &result, nil
}
