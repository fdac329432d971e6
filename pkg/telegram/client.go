package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Client is a minimal Telegram Bot API client covering the calls the
// sealing pipeline needs: document upload and update polling.
// Zero value is not usable; use New.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// New creates a Bot API client for the given bot token.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Document is an opaque byte blob delivered under a human-readable
// name. An optional thumbnail is shown in the chat preview.
type Document struct {
	Name                string
	Data                []byte
	Thumbnail           []byte
	DisableNotification bool
}

// Update is a single entry from getUpdates.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message carries the fields needed for chat-id discovery.
type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text,omitempty"`
}

// Chat identifies a conversation with the bot.
type Chat struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
}

// SendDocument uploads doc to a single chat.
func (c *Client) SendDocument(ctx context.Context, chatID string, doc Document) error {
	if len(doc.Data) == 0 {
		return ErrEmptyDocument
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("chat_id", chatID); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if err := mw.WriteField("disable_notification", strconv.FormatBool(doc.DisableNotification)); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	part, err := mw.CreateFormFile("document", doc.Name)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if _, err := part.Write(doc.Data); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if len(doc.Thumbnail) > 0 {
		thumb, err := mw.CreateFormFile("thumbnail", "thumb.jpg")
		if err != nil {
			return errors.Join(ErrRequestFailed, err)
		}
		if _, err := thumb.Write(doc.Thumbnail); err != nil {
			return errors.Join(ErrRequestFailed, err)
		}
	}
	if err := mw.Close(); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	_, err = c.call(ctx, "sendDocument", mw.FormDataContentType(), &body)
	return err
}

// GetUpdates fetches the messages received by the bot. Useful for
// discovering the chat id of each recipient.
func (c *Client) GetUpdates(ctx context.Context) ([]Update, error) {
	result, err := c.call(ctx, "getUpdates", "", nil)
	if err != nil {
		return nil, err
	}
	var updates []Update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	return updates, nil
}

// Broadcast delivers doc to every chat id, best effort: a failed send
// is recorded but never blocks the remaining recipients. The returned
// error joins all per-chat failures, or is nil if every send succeeded.
func (c *Client) Broadcast(ctx context.Context, chatIDs []string, doc Document) error {
	if len(chatIDs) == 0 {
		return ErrNoChatIDs
	}
	var errs []error
	for _, chatID := range chatIDs {
		if err := c.SendDocument(ctx, chatID, doc); err != nil {
			errs = append(errs, fmt.Errorf("chat %s: %w", chatID, err))
		}
	}
	return errors.Join(errs...)
}

// call posts to a Bot API method and unwraps the standard response
// envelope.
func (c *Client) call(ctx context.Context, method, contentType string, body io.Reader) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// The Bot API wraps every response, errors included, in the same
	// JSON envelope. 1MB cap guards against a misbehaving endpoint.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	var apiResp struct {
		OK          bool            `json:"ok"`
		Result      json.RawMessage `json:"result"`
		Description string          `json:"description"`
		ErrorCode   int             `json:"error_code"`
	}
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, errors.Join(ErrRequestFailed, fmt.Errorf("status %d: %w", resp.StatusCode, err))
	}
	if !apiResp.OK {
		return nil, errors.Join(ErrAPIError, fmt.Errorf("%s: code %d: %s", method, apiResp.ErrorCode, apiResp.Description))
	}
	return apiResp.Result, nil
}
