// Package store persists analysis records. The core analysis never touches
// it; the CLI and server save records after a successful run when a store is
// configured, and fall back to an in-memory store when it is not.
package store

import (
	"context"
	"errors"

	"github.com/jonathan/cv-scorer/internal/types"
)

// ErrNotFound is returned when no record exists for an id.
var ErrNotFound = errors.New("analysis record not found")

// Store saves and retrieves analysis records by id.
type Store interface {
	Save(ctx context.Context, record *types.AnalysisRecord) error
	Get(ctx context.Context, id string) (*types.AnalysisRecord, error)
	Close()
}
