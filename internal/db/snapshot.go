package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SnapshotReader runs reads against one consistent view of the database.
type SnapshotReader interface {
	Read(ctx context.Context, fn func(ctx context.Context, q DBTX) error) error
}

// Snapshot implements SnapshotReader with a transaction that is always
// rolled back, so nothing done inside fn is ever persisted.
type Snapshot struct {
	db *sql.DB
}

// NewSnapshot creates a Snapshot backed by the given *sql.DB.
func NewSnapshot(db *sql.DB) *Snapshot {
	return &Snapshot{db: db}
}

func (s *Snapshot) Read(ctx context.Context, fn func(ctx context.Context, q DBTX) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	return fn(ctx, tx)
}
