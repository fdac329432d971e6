package capture

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
)

// FileProvider reads a frame from a file on disk. Useful for testing
// the pipeline and for sealing pre-captured images.
type FileProvider struct {
	path string
}

// NewFileProvider builds a provider that reads path on every capture.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Capture reads the file and returns its contents as a snapshot.
func (p *FileProvider) Capture(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return Snapshot{}, errors.Join(ErrCameraUnavailable, err)
	}
	if len(data) == 0 {
		return Snapshot{}, errors.Join(ErrCameraUnavailable, ErrEmptySnapshot)
	}
	return Snapshot{
		ID:      uuid.New(),
		Data:    data,
		TakenAt: time.Now(),
	}, nil
}
