package main

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sealcam/pkg/capture"
	"github.com/dmitrymomot/sealcam/pkg/config"
	"github.com/dmitrymomot/sealcam/pkg/envelope"
	"github.com/dmitrymomot/sealcam/pkg/telegram"
)

var snapCmd = &cobra.Command{
	Use:   "snap",
	Short: "Capture a snapshot, seal it and broadcast it to all recipients",
	RunE:  runSnap,
}

func init() {
	rootCmd.AddCommand(snapCmd)
}

func runSnap(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	if err := cfg.RequireTransport(); err != nil {
		return err
	}
	password, err := resolvePassword(cfg, false)
	if err != nil {
		return err
	}
	provider, err := captureProvider(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	snap, err := provider.Capture(ctx)
	if err != nil {
		return err
	}
	log.Info("snapshot captured",
		slog.String("snapshot_id", snap.ID.String()),
		slog.Int("bytes", len(snap.Data)),
	)

	sealed, err := envelope.Encrypt(password, snap.Data)
	if err != nil {
		return err
	}

	client, err := telegram.New(cfg.BotToken)
	if err != nil {
		return err
	}

	doc := telegram.Document{
		// Recipients receive the envelope as a text attachment.
		Name:                snap.Filename() + ".txt",
		Data:                sealed,
		DisableNotification: true,
	}
	if cfg.Thumbnail {
		doc.Thumbnail = snap.Data
	}

	if err := client.Broadcast(ctx, cfg.ChatIDs, doc); err != nil {
		log.Error("broadcast incomplete", slog.String("error", err.Error()))
		return err
	}

	log.Info("snapshot sealed and delivered",
		slog.String("name", doc.Name),
		slog.Int("recipients", len(cfg.ChatIDs)),
	)
	return nil
}

func captureProvider(cfg config.Config) (capture.Provider, error) {
	fields := strings.Fields(cfg.CaptureCommand)
	if len(fields) == 0 {
		return nil, errors.New("SEALCAM_CAPTURE_COMMAND is not set")
	}
	return capture.NewCommandProvider(fields[0], fields[1:]...), nil
}
