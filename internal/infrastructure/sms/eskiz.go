// Package sms integrates the Eskiz SMS provider used for debtor reminders.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Config holds Eskiz API credentials.
type Config struct {
	BaseURL  string
	Email    string
	Password string
	From     string
}

// EskizGateway implements port.SMSGateway against the Eskiz HTTP API. Auth
// tokens are cached and refreshed ahead of their 30-day expiry.
type EskizGateway struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewEskizGateway creates a gateway with a 10 second request timeout.
func NewEskizGateway(cfg Config, logger *slog.Logger) *EskizGateway {
	return &EskizGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Send dispatches one SMS.
func (g *EskizGateway) Send(ctx context.Context, phoneNumber, text string) error {
	token, err := g.authToken(ctx)
	if err != nil {
		return fmt.Errorf("eskiz auth: %w", err)
	}

	form := url.Values{}
	form.Set("mobile_phone", strings.TrimPrefix(phoneNumber, "+"))
	form.Set("message", text)
	form.Set("from", g.cfg.From)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/message/sms/send", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("eskiz returned %d: %s", resp.StatusCode, body)
	}

	g.logger.Debug("sms dispatched", "to", phoneNumber)
	return nil
}

func (g *EskizGateway) authToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token != "" && time.Now().Before(g.tokenExpiry) {
		return g.token, nil
	}

	payload, err := json.Marshal(map[string]string{
		"email":    g.cfg.Email,
		"password": g.cfg.Password,
	})
	if err != nil {
		return "", fmt.Errorf("marshal login: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("login returned %d: %s", resp.StatusCode, body)
	}

	var parsed struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if parsed.Data.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}

	g.token = parsed.Data.Token
	// Eskiz tokens live 30 days; refresh well ahead of that.
	g.tokenExpiry = time.Now().Add(20 * 24 * time.Hour)
	return g.token, nil
}
