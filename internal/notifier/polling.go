package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// CommandHandler maps an incoming message to a reply. An empty reply
// suppresses the response.
type CommandHandler func(command string) string

type update struct {
	UpdateID int64 `json:"update_id"`
	Message  struct {
		Text string `json:"text"`
	} `json:"message"`
}

type updatesResponse struct {
	OK     bool     `json:"ok"`
	Result []update `json:"result"`
}

// StartPolling long-polls getUpdates and feeds each message through
// handler until ctx is cancelled. Poll errors back off for 5s and resume.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	var offset int64
	t.log.Info().Msg("command polling started")
	for {
		select {
		case <-ctx.Done():
			t.log.Info().Msg("command polling stopped")
			return
		default:
		}

		updates, err := t.getUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			t.log.Warn().Err(err).Msg("poll updates failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message.Text == "" {
				continue
			}
			reply := handler(u.Message.Text)
			if reply == "" {
				continue
			}
			if err := t.Send(ctx, reply); err != nil {
				t.log.Warn().Err(err).Msg("reply failed")
			}
		}
	}
}

func (t *TelegramNotifier) getUpdates(ctx context.Context, offset int64) ([]update, error) {
	apiURL := fmt.Sprintf("%s/bot%s/getUpdates?offset=%d&timeout=30", apiBase, t.botToken, offset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram responded %d", resp.StatusCode)
	}

	var parsed updatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	if !parsed.OK {
		return nil, errors.New("telegram returned not ok")
	}
	return parsed.Result, nil
}
