package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the CLI needs. The envelope core never
// touches it: password and plaintext reach Encrypt/Decrypt as explicit
// arguments, so the library stays free of process-wide state.
type Config struct {
	// BotToken authenticates against the Telegram Bot API.
	BotToken string `env:"SEALCAM_BOT_TOKEN"`

	// ChatIDs lists the recipients of every broadcast.
	ChatIDs []string `env:"SEALCAM_CHAT_IDS"`

	// Password seals the envelopes. When empty, the CLI prompts on the
	// terminal instead.
	Password string `env:"SEALCAM_PASSWORD"`

	// CaptureCommand is the external webcam command whose stdout is
	// taken as the snapshot, e.g. "fswebcam -q --jpeg 20 --save -".
	CaptureCommand string `env:"SEALCAM_CAPTURE_COMMAND" envDefault:"fswebcam -q --jpeg 20 --save -"`

	// Thumbnail attaches an unencrypted preview to the broadcast.
	// Off by default, matching the stealth use case.
	Thumbnail bool `env:"SEALCAM_THUMBNAIL" envDefault:"false"`

	LogFormat string `env:"SEALCAM_LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"SEALCAM_LOG_LEVEL" envDefault:"info"`
}

var loadEnvOnce sync.Once

// Load populates Config from the environment. A .env file in the
// working directory is read first when present, so local setups work
// the same way as the original dotenv-based tool.
func Load() (Config, error) {
	loadEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// RequireTransport checks the fields the broadcasting commands need.
// Token and recipients are optional for purely local encrypt/decrypt
// use, so Load does not enforce them.
func (c Config) RequireTransport() error {
	if c.BotToken == "" {
		return ErrMissingBotToken
	}
	if len(c.ChatIDs) == 0 {
		return ErrMissingChatIDs
	}
	return nil
}
