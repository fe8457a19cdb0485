package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/smarttrace/smarttrace-cli/internal/dbx"
)

// SQLiteRepository implements Repository over a sqlite handle. Reads and
// single-statement writes go straight through the DB; multi-statement
// invalidation runs inside dbx.WithTx.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a repository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Put upserts the snapshot for a resource.
func (r *SQLiteRepository) Put(ctx context.Context, resource string, payload []byte, fetchedAt time.Time) error {
	query := `INSERT INTO snapshots (resource, payload, fetched_at)
			VALUES (?, ?, ?)
			ON CONFLICT(resource) DO UPDATE SET payload = excluded.payload,
				fetched_at = excluded.fetched_at
	`
	_, err := r.db.ExecContext(ctx, query, resource, payload, fetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}
	return nil
}

// Get returns the snapshot for a resource, or ErrNoSnapshot.
func (r *SQLiteRepository) Get(ctx context.Context, resource string) (*Snapshot, error) {
	query := `SELECT payload, fetched_at FROM snapshots WHERE resource = ?`

	s := Snapshot{Resource: resource}
	err := r.db.QueryRowContext(ctx, query, resource).Scan(&s.Payload, &s.FetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to select snapshot: %w", err)
	}
	return &s, nil
}

// Invalidate drops the snapshot for a resource together with its scoped
// variants ("lost" also drops "lost:alice@example.com"), in a single
// transaction. Dropping a resource that has no snapshot is not an error.
func (r *SQLiteRepository) Invalidate(ctx context.Context, resource string) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE resource = ?`, resource); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE resource LIKE ?`, resource+":%")
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
