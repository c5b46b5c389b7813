package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cv-scorer/internal/types"
)

// Postgres stores analysis records in a PostgreSQL table. The full record is
// kept as JSONB; the scalar columns exist for querying without unmarshalling.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and ensures the analyses table exists.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Postgres{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Postgres) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			overall_score INT NOT NULL,
			match_percentage INT NOT NULL,
			record JSONB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure analyses table: %w", err)
	}
	return nil
}

// Save inserts one analysis record. Records are immutable, so a duplicate id
// is an error rather than an upsert.
func (s *Postgres) Save(ctx context.Context, record *types.AnalysisRecord) error {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis record: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (id, created_at, overall_score, match_percentage, record)
		 VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.Timestamp, record.OverallScore, record.MatchPercentage, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis record: %w", err)
	}
	return nil
}

// Get fetches one analysis record by id.
func (s *Postgres) Get(ctx context.Context, id string) (*types.AnalysisRecord, error) {
	var jsonBytes []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM analyses WHERE id = $1`, id,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis record: %w", err)
	}

	var record types.AnalysisRecord
	if err := json.Unmarshal(jsonBytes, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis record: %w", err)
	}
	return &record, nil
}

// Close closes the connection pool.
func (s *Postgres) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
