package capture

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one captured frame. Data is opaque to the rest of the
// system; the envelope layer encrypts whatever bytes the provider
// yields.
type Snapshot struct {
	ID      uuid.UUID
	Data    []byte
	TakenAt time.Time
}

// Filename returns the timestamped name under which the snapshot is
// delivered, e.g. "2024-02-18T09:30:01+08:00.jpg".
func (s Snapshot) Filename() string {
	return s.TakenAt.Format(time.RFC3339) + ".jpg"
}

// Provider yields plaintext snapshot bytes. Implementations own the
// capture mechanics; callers treat the result as an opaque payload.
type Provider interface {
	Capture(ctx context.Context) (Snapshot, error)
}
