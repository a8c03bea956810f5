// Package history keeps an append-only log of completed calculations.
package history

import (
	"context"
	"encoding/json"
	"time"
)

// Record is one completed calculation
type Record struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id,omitempty"`
	Kind      string          `json:"kind"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListOptions filters List. A zero Limit means DefaultListLimit.
type ListOptions struct {
	SessionID string
	Kind      string
	Limit     int
}

// DefaultListLimit bounds List when no limit is given
const DefaultListLimit = 50

// Store persists history records
type Store interface {
	Append(ctx context.Context, r Record) error
	// List returns the newest records first
	List(ctx context.Context, opts ListOptions) ([]Record, error)
	Close() error
}
