package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sealcam/pkg/config"
	"github.com/dmitrymomot/sealcam/pkg/envelope"
)

var (
	encryptOut string
	decryptOut string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt FILE",
	Short: "Seal a file into a password-encrypted envelope",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncrypt,
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt FILE",
	Short: "Open a sealed envelope back into the original file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecrypt,
}

func init() {
	encryptCmd.Flags().StringVarP(&encryptOut, "out", "o", "", "output path (default: FILE.txt)")
	decryptCmd.Flags().StringVarP(&decryptOut, "out", "o", "", "output path (default: FILE without .txt)")
	rootCmd.AddCommand(encryptCmd, decryptCmd)
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	password, err := resolvePassword(cfg, true)
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	sealed, err := envelope.Encrypt(password, plaintext)
	if err != nil {
		return err
	}

	out := encryptOut
	if out == "" {
		out = args[0] + ".txt"
	}
	if err := os.WriteFile(out, sealed, 0o600); err != nil {
		return err
	}

	log.Info("file sealed", slog.String("in", args[0]), slog.String("out", out))
	return nil
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	password, err := resolvePassword(cfg, false)
	if err != nil {
		return err
	}

	sealed, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	plaintext, err := envelope.Decrypt(password, sealed)
	switch {
	case errors.Is(err, envelope.ErrAuthenticationFailed):
		return fmt.Errorf("%w (check the password and that the file is intact)", err)
	case err != nil:
		return err
	}

	out := decryptOut
	if out == "" {
		out = strings.TrimSuffix(args[0], ".txt")
		if out == args[0] {
			out = args[0] + ".decrypted"
		}
	}
	if err := os.WriteFile(out, plaintext, 0o600); err != nil {
		return err
	}

	log.Info("envelope opened", slog.String("in", args[0]), slog.String("out", out))
	return nil
}
