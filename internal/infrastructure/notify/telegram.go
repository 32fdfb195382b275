// Package notify delivers lead notifications to the shop and to customers.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"heritage_gold/internal/logging"

	"go.uber.org/zap"
)

const telegramAPIBase = "https://api.telegram.org"

// Telegram posts HTML messages to one chat through the Bot API. With no token
// or chat id it runs in disabled mode and drops messages.
type Telegram struct {
	baseURL string
	token   string
	chatID  string
	client  *http.Client
}

func NewTelegram(token, chatID string) *Telegram {
	return &Telegram{
		baseURL: telegramAPIBase,
		token:   token,
		chatID:  chatID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *Telegram) Enabled() bool {
	return t.token != "" && t.chatID != ""
}

func (t *Telegram) SendHTML(ctx context.Context, text string) error {
	if !t.Enabled() {
		logging.Debug("[notify][telegram] disabled, message dropped")
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		logging.Warn("[notify][telegram] non-200 response", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return fmt.Errorf("telegram: status %d", resp.StatusCode)
	}
	return nil
}
