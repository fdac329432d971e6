package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sealcam/pkg/config"
	"github.com/dmitrymomot/sealcam/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "sealcam",
	Short: "Seal webcam snapshots in password-encrypted envelopes and deliver them over Telegram",
	Long: `sealcam captures a webcam snapshot, encrypts it into a self-describing
envelope (scrypt key derivation + authenticated Fernet cipher) and
broadcasts the envelope to the configured Telegram chats.

Decryption needs only the envelope and the password: every key
derivation parameter travels inside the envelope itself.

Configuration comes from SEALCAM_* environment variables; a .env file
in the working directory is read first when present.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	return logger.New(
		logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(slog.String("service", "sealcam")),
	)
}
