package store

import (
	"context"
	"sync"

	"github.com/jonathan/cv-scorer/internal/types"
)

// Memory is a process-local store used when no DATABASE_URL is configured.
// Records survive only for the lifetime of the process.
type Memory struct {
	mu      sync.RWMutex
	records map[string]*types.AnalysisRecord
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]*types.AnalysisRecord)}
}

// Save keeps the record in memory, keyed by id.
func (m *Memory) Save(_ context.Context, record *types.AnalysisRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	return nil
}

// Get returns the record for an id, or ErrNotFound.
func (m *Memory) Get(_ context.Context, id string) (*types.AnalysisRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return record, nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() {}
