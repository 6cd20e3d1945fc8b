package notifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const apiBase = "https://api.telegram.org"

// Message is a formatted chat message with optional reply-keyboard buttons.
type Message struct {
	Text    string
	Buttons []string
}

// TelegramNotifier talks to the Telegram Bot API.
type TelegramNotifier struct {
	client     *resty.Client
	log        zerolog.Logger
	backoff    time.Duration
	workerIdle time.Duration
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, proxyURL string, log zerolog.Logger) *TelegramNotifier {
	client := resty.New()
	client.SetBaseURL(fmt.Sprintf("%s/bot%s", apiBase, botToken))
	client.SetTimeout(35 * time.Second)
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &TelegramNotifier{
		client:     client,
		log:        log.With().Str("component", "telegram").Logger(),
		backoff:    time.Second,
		workerIdle: 10 * time.Minute,
	}
}

// SetBaseURL points the client at another API root; used by tests.
func (t *TelegramNotifier) SetBaseURL(u string) { t.client.SetBaseURL(u) }

// SetBackoff sets the first retry delay of SendWithRetry; later retries double it.
func (t *TelegramNotifier) SetBackoff(d time.Duration) { t.backoff = d }

// SetWorkerIdle sets how long a chat worker waits for new messages before exiting.
func (t *TelegramNotifier) SetWorkerIdle(d time.Duration) { t.workerIdle = d }

type keyboardButton struct {
	Text string `json:"text"`
}

type replyMarkup struct {
	Keyboard        [][]keyboardButton `json:"keyboard"`
	OneTimeKeyboard bool               `json:"one_time_keyboard"`
	ResizeKeyboard  bool               `json:"resize_keyboard"`
}

type sendMessageRequest struct {
	ChatID      int64        `json:"chat_id"`
	Text        string       `json:"text"`
	ParseMode   string       `json:"parse_mode"`
	ReplyMarkup *replyMarkup `json:"reply_markup,omitempty"`
}

// Send delivers msg to a chat. Buttons become a one-time reply keyboard, one button per row.
func (t *TelegramNotifier) Send(ctx context.Context, chatID int64, msg Message) error {
	req := sendMessageRequest{ChatID: chatID, Text: msg.Text, ParseMode: "HTML"}
	if len(msg.Buttons) > 0 {
		markup := &replyMarkup{OneTimeKeyboard: true, ResizeKeyboard: true}
		for _, b := range msg.Buttons {
			markup.Keyboard = append(markup.Keyboard, []keyboardButton{{Text: b}})
		}
		req.ReplyMarkup = markup
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/sendMessage")
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// SendWithRetry sends a message with exponential backoff retry.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, chatID int64, msg Message, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if err := t.Send(ctx, chatID, msg); err != nil {
			lastErr = err
			if i == maxRetries {
				break
			}
			backoff := t.backoff * time.Duration(1<<uint(i))
			t.log.Warn().Err(err).Int64("chat", chatID).Int("attempt", i+1).Dur("backoff", backoff).
				Msg("telegram send failed, retrying")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}
