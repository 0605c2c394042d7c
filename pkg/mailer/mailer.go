// Package mailer sends transactional email through the Resend HTTP API.
// Delivery is always best-effort: callers log failures and move on, the
// HTTP response to the customer is never affected.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultEndpoint = "https://api.resend.com/emails"

type Mailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

// New returns a Mailer. An empty apiKey yields a disabled mailer whose sends
// are silent no-ops, matching an unconfigured environment. RESEND_ENDPOINT
// redirects delivery to a Resend-compatible relay.
func New(apiKey, from string) *Mailer {
	endpoint := os.Getenv("RESEND_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Mailer{
		apiKey:   apiKey,
		from:     from,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.apiKey != ""
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send posts one message. Callers decide whether a failure matters.
func (m *Mailer) Send(ctx context.Context, to, subject, html string) error {
	if !m.Enabled() {
		return nil
	}

	payload, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}
