package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/google/uuid"
)

// CommandProvider captures a frame by running an external command
// (fswebcam, libcamera-still, ffmpeg and the like) and taking its
// stdout as the image bytes.
type CommandProvider struct {
	name string
	args []string
}

// NewCommandProvider builds a provider around the given command line.
func NewCommandProvider(name string, args ...string) *CommandProvider {
	return &CommandProvider{name: name, args: args}
}

// Capture runs the command and returns its stdout as a snapshot.
func (p *CommandProvider) Capture(ctx context.Context) (Snapshot, error) {
	if p.name == "" {
		return Snapshot{}, errors.Join(ErrCameraUnavailable, errors.New("no capture command configured"))
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.name, p.args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return Snapshot{}, errors.Join(ErrCameraUnavailable, fmt.Errorf("%s: %s: %w", p.name, msg, err))
		}
		return Snapshot{}, errors.Join(ErrCameraUnavailable, fmt.Errorf("%s: %w", p.name, err))
	}
	if stdout.Len() == 0 {
		return Snapshot{}, errors.Join(ErrCameraUnavailable, ErrEmptySnapshot)
	}

	return Snapshot{
		ID:      uuid.New(),
		Data:    stdout.Bytes(),
		TakenAt: time.Now(),
	}, nil
}
