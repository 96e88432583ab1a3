package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const apiBase = "https://api.telegram.org"

// TelegramNotifier talks to the Telegram Bot API directly over net/http.
// The client timeout stays above the long-poll window used by getUpdates.
type TelegramNotifier struct {
	botToken string
	chatID   string
	client   *http.Client
	log      zerolog.Logger
}

// NewTelegramNotifier builds a notifier, optionally routing traffic
// through an HTTPS proxy.
func NewTelegramNotifier(botToken, chatID, proxyURL string, log zerolog.Logger) (*TelegramNotifier, error) {
	client := &http.Client{Timeout: 35 * time.Second}
	if proxyURL != "" {
		proxy, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		client.Transport = &http.Transport{Proxy: http.ProxyURL(proxy)}
	}
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		client:   client,
		log:      log.With().Str("component", "notifier").Logger(),
	}, nil
}

// Send posts one message to the configured chat with HTML formatting.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	payload := map[string]interface{}{
		"chat_id":    t.chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", apiBase, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram responded %d", resp.StatusCode)
	}
	return nil
}

// SendWithRetry retries Send with exponential backoff (1s, 2s, 4s, ...)
// until it succeeds, attempts run out or ctx is cancelled.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string, attempts int) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := t.Send(ctx, text); err == nil {
			return nil
		} else {
			lastErr = err
			t.log.Warn().Err(err).Int("attempt", i+1).Msg("send failed")
		}
		if i == attempts-1 {
			break
		}
		backoff := time.Duration(1<<uint(i)) * time.Second
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("send after %d attempts: %w", attempts, lastErr)
}
