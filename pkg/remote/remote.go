// Package remote provides sharing of live playback state for remotely
// controlled shows.
//
// The control server publishes a Snapshot after every state change so
// that external displays, dashboards, or sibling server instances can
// poll the current position of a show without talking to the instance
// that owns it. Snapshots are ephemeral: they describe "where the show is
// right now" and carry a TTL in backends that support one.
//
// Two backends are provided:
//   - memory: In-process storage for single-instance deployments and tests
//   - redis: Redis-backed storage for multi-instance deployments
package remote

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a published snapshot stays readable after
// the last update, for backends that support expiry.
const DefaultTTL = time.Hour

// Snapshot is the externally visible playback state of one show.
type Snapshot struct {
	ShowID     string    `json:"show_id"`
	Deck       string    `json:"deck"`
	Index      int       `json:"index"`
	SlideCount int       `json:"slide_count"`
	Playing    bool      `json:"playing"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StateStore is the interface for snapshot storage backends.
type StateStore interface {
	// Save publishes a snapshot, replacing any previous one for the show.
	Save(ctx context.Context, snap Snapshot) error

	// Load retrieves the snapshot for a show.
	// Returns nil, nil if no snapshot exists.
	Load(ctx context.Context, showID string) (*Snapshot, error)

	// Delete removes a show's snapshot. Deleting a missing snapshot is a
	// no-op.
	Delete(ctx context.Context, showID string) error

	// Close releases backend resources.
	Close() error
}
