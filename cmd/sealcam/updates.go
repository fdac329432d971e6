package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sealcam/pkg/config"
	"github.com/dmitrymomot/sealcam/pkg/telegram"
)

var updatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "Print messages received by the bot, for chat-id discovery",
	RunE:  runUpdates,
}

func init() {
	rootCmd.AddCommand(updatesCmd)
}

func runUpdates(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.BotToken == "" {
		return config.ErrMissingBotToken
	}

	client, err := telegram.New(cfg.BotToken)
	if err != nil {
		return err
	}

	updates, err := client.GetUpdates(cmd.Context())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(updates)
}
