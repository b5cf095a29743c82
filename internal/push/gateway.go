// Package push delivers best-effort notifications to technicians' devices.
// Delivery is advisory: the in-app record is the source of truth, and a
// failed push is logged and forgotten.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"glass-dispatch/internal/pkg/config"
	"glass-dispatch/internal/pkg/errs"
)

// Message is one push payload addressed to a single device token.
type Message struct {
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

// Gateway sends a batch of messages to the upstream push service.
type Gateway interface {
	Send(ctx context.Context, messages []Message) error
}

type HTTPGateway struct {
	url  string
	http *http.Client
}

func NewHTTPGateway(cfg config.Config) *HTTPGateway {
	return &HTTPGateway{
		url:  cfg.Push.GatewayURL,
		http: &http.Client{Timeout: cfg.Push.Timeout},
	}
}

func (g *HTTPGateway) Send(ctx context.Context, messages []Message) error {
	if len(messages) == 0 {
		return nil
	}

	body, err := json.Marshal(messages)
	if err != nil {
		return errs.Wrap(err, "failed to marshal push batch")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build push request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "push gateway request failed")
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return errs.New("push gateway returned status " + resp.Status)
	}
	return nil
}
