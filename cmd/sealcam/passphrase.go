package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/dmitrymomot/sealcam/pkg/config"
)

var errPasswordMismatch = errors.New("passwords do not match")

// resolvePassword returns the configured password, or prompts on the
// terminal when none is set. Encryption prompts twice to catch typos;
// decryption can just fail on a wrong password.
func resolvePassword(cfg config.Config, confirm bool) (string, error) {
	if cfg.Password != "" {
		return cfg.Password, nil
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		return "", err
	}
	if len(password) == 0 {
		return "", errors.New("password cannot be empty")
	}

	if confirm {
		again, err := readPassword("Confirm password: ")
		if err != nil {
			return "", err
		}
		if string(password) != string(again) {
			return "", errPasswordMismatch
		}
	}

	return string(password), nil
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return password, err
	}

	// Stdin is piped; fall back to the controlling terminal.
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("cannot prompt for password, set SEALCAM_PASSWORD: %w", err)
	}
	defer func() { _ = tty.Close() }()

	password, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(os.Stderr)
	return password, err
}
