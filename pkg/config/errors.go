package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrMissingBotToken is returned by RequireTransport when no bot token is configured
	ErrMissingBotToken = errors.New("SEALCAM_BOT_TOKEN is not set")

	// ErrMissingChatIDs is returned by RequireTransport when no recipients are configured
	ErrMissingChatIDs = errors.New("SEALCAM_CHAT_IDS is not set")
)
