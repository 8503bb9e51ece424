package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxStateStore keeps each state blob as one JSONB row in app_state.
type PgxStateStore struct {
	pool *pgxpool.Pool
}

// NewPgxStateStore creates a StateStore over the app_state table.
func NewPgxStateStore(pool *pgxpool.Pool) *PgxStateStore {
	return &PgxStateStore{pool: pool}
}

var _ portsrepo.StateStore = (*PgxStateStore)(nil)

// Load reads the blob for key into dest.
func (s *PgxStateStore) Load(ctx context.Context, key portsrepo.StateKey, dest any) (bool, error) {
	query := `SELECT payload FROM app_state WHERE state_key = $1;`

	var payload []byte
	err := s.pool.QueryRow(ctx, query, string(key)).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query state %s: %w", key, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return true, fmt.Errorf("failed to decode state %s: %w", key, err)
	}
	return true, nil
}

const upsertStateQuery = `
	INSERT INTO app_state (state_key, payload, updated_at)
	VALUES ($1, $2::jsonb, NOW())
	ON CONFLICT (state_key) DO UPDATE SET
		payload = EXCLUDED.payload,
		updated_at = EXCLUDED.updated_at;
`

// Save upserts the blob for key.
func (s *PgxStateStore) Save(ctx context.Context, key portsrepo.StateKey, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode state %s: %w", key, err)
	}

	if _, err := s.pool.Exec(ctx, upsertStateQuery, string(key), string(payload)); err != nil {
		return fmt.Errorf("failed to save state %s: %w", key, err)
	}
	return nil
}

// Update runs the read-modify-write in one transaction. A transaction-scoped advisory
// lock on the key serializes writers, including the first one when no row exists yet.
func (s *PgxStateStore) Update(ctx context.Context, key portsrepo.StateKey, dest any, fn func(found bool) (any, error)) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin update of state %s: %w", key, err)
	}
	defer func() { _ = tx.Rollback(ctx) }() // no-op after commit

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, string(key)); err != nil {
		return fmt.Errorf("failed to lock state %s: %w", key, err)
	}

	var payload []byte
	found := true
	err = tx.QueryRow(ctx, `SELECT payload FROM app_state WHERE state_key = $1;`, string(key)).Scan(&payload)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to query state %s: %w", key, err)
		}
		found = false
	}
	if found {
		if err := json.Unmarshal(payload, dest); err != nil {
			return fmt.Errorf("failed to decode state %s: %w", key, err)
		}
	}

	value, err := fn(found)
	if err != nil {
		return err
	}
	next, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode state %s: %w", key, err)
	}
	if _, err := tx.Exec(ctx, upsertStateQuery, string(key), string(next)); err != nil {
		return fmt.Errorf("failed to save state %s: %w", key, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit state %s: %w", key, err)
	}
	return nil
}

// Delete removes the row for key, if any.
func (s *PgxStateStore) Delete(ctx context.Context, key portsrepo.StateKey) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM app_state WHERE state_key = $1;`, string(key)); err != nil {
		return fmt.Errorf("failed to delete state %s: %w", key, err)
	}
	return nil
}
