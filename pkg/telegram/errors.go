package telegram

import "errors"

var (
	ErrEmptyToken    = errors.New("telegram bot token is required")
	ErrNoChatIDs     = errors.New("no chat ids to deliver to")
	ErrEmptyDocument = errors.New("document has no content")
	ErrRequestFailed = errors.New("telegram request failed")
	ErrAPIError      = errors.New("telegram api returned an error")
)
