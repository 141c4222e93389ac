package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const telegramAPI = "https://api.telegram.org"

// Notifier delivers a rendered report somewhere a human will read it.
type Notifier interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// TelegramNotifier sends messages via the Telegram Bot API.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	BaseURL  string
	Client   *http.Client
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		BaseURL:  telegramAPI,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (t *TelegramNotifier) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", t.BaseURL, t.BotToken, method)
}

// maxMessageRunes is the Telegram limit for one message text.
const maxMessageRunes = 4096

// APIError is a non-OK reply from the Bot API.
type APIError struct {
	Status      int
	Description string
	RetryAfter  time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error: status %d: %s", e.Status, e.Description)
}

// Temporary reports whether the request may succeed when repeated.
func (e *APIError) Temporary() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// Send sends an HTML message to the configured chat, split on line
// boundaries when it exceeds the message limit. No retries.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	return t.SendWithRetry(ctx, text, 0)
}

func (t *TelegramNotifier) sendChunk(ctx context.Context, text string) error {
	payload := map[string]string{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint("sendMessage"), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	apiErr := &APIError{Status: resp.StatusCode, Description: strings.TrimSpace(string(respBody))}
	var parsed struct {
		Description string `json:"description"`
		Parameters  struct {
			RetryAfter int `json:"retry_after"`
		} `json:"parameters"`
	}
	if json.Unmarshal(respBody, &parsed) == nil {
		if parsed.Description != "" {
			apiErr.Description = parsed.Description
		}
		apiErr.RetryAfter = time.Duration(parsed.Parameters.RetryAfter) * time.Second
	}
	return apiErr
}

// splitMessage cuts text into pieces of at most limit runes, preferring
// newline boundaries.
func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}
	var parts []string
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > limit/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}

// SendWithRetry sends a message with exponential backoff retry. Each chunk of
// a split message is retried on its own, so delivered chunks are never
// repeated. Only 429 and 5xx replies are retried; a 429 waits for the
// server's retry_after.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string, maxRetries int) error {
	chunks := splitMessage(text, maxMessageRunes)
	for n, chunk := range chunks {
		if err := t.sendChunkWithRetry(ctx, chunk, maxRetries); err != nil {
			if len(chunks) > 1 {
				return fmt.Errorf("chunk %d/%d: %w", n+1, len(chunks), err)
			}
			return err
		}
	}
	return nil
}

func (t *TelegramNotifier) sendChunkWithRetry(ctx context.Context, text string, maxRetries int) error {
	var lastErr error
	attempts := 0
	for i := 0; i <= maxRetries; i++ {
		attempts++
		err := t.sendChunk(ctx, text)
		if err == nil {
			return nil
		}
		lastErr = err
		var apiErr *APIError
		isAPI := errors.As(err, &apiErr)
		if i == maxRetries || (isAPI && !apiErr.Temporary()) {
			break
		}
		backoff := time.Duration(1<<uint(i)) * time.Second
		if isAPI && apiErr.RetryAfter > 0 {
			backoff = apiErr.RetryAfter
		}
		log.Printf("[WARN] Telegram send failed (attempt %d/%d): %v, retrying in %v", i+1, maxRetries+1, err, backoff)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	if attempts == 1 {
		return lastErr
	}
	return fmt.Errorf("send failed after %d attempts: %w", attempts, lastErr)
}

// LogNotifier writes reports to the process log when Telegram is not configured.
type LogNotifier struct{}

func (LogNotifier) SendWithRetry(_ context.Context, text string, _ int) error {
	log.Printf("[INFO] report:\n%s", text)
	return nil
}
