package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/domain"
)

// PostgresStore is the durable reference store. The unique constraint on
// session_id enforces write-once under concurrent writers; a losing
// insert reads the winner back to distinguish idempotent retries from
// conflicts.
type PostgresStore struct {
	db *DB
}

func NewPostgresStore(db *DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var _ application.ReferenceStore = (*PostgresStore)(nil)

const createSessionReferencesTable = `
CREATE TABLE IF NOT EXISTS session_references (
	session_id    TEXT PRIMARY KEY,
	psp_reference TEXT NOT NULL,
	stored_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate creates the backing table if it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Pool.Exec(ctx, createSessionReferencesTable); err != nil {
		return fmt.Errorf("failed to create session_references table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Put(ctx context.Context, sessionID, pspReference string) error {
	query := `
		INSERT INTO session_references (session_id, psp_reference)
		VALUES ($1, $2)
		ON CONFLICT (session_id) DO NOTHING
	`

	tag, err := s.db.Pool.Exec(ctx, query, sessionID, pspReference)
	if err != nil {
		return fmt.Errorf("failed to store payment reference: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var existing string
	checkQuery := `SELECT psp_reference FROM session_references WHERE session_id = $1`
	if err := s.db.Pool.QueryRow(ctx, checkQuery, sessionID).Scan(&existing); err != nil {
		return fmt.Errorf("failed to check stored reference: %w", err)
	}

	if existing != pspReference {
		return domain.NewReferenceConflictError(sessionID, existing, pspReference)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, sessionID string) (string, bool, error) {
	query := `SELECT psp_reference FROM session_references WHERE session_id = $1`

	var pspReference string
	err := s.db.Pool.QueryRow(ctx, query, sessionID).Scan(&pspReference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read payment reference: %w", err)
	}
	return pspReference, true, nil
}

func (s *PostgresStore) Delete(ctx context.Context, sessionID string) error {
	query := `DELETE FROM session_references WHERE session_id = $1`

	if _, err := s.db.Pool.Exec(ctx, query, sessionID); err != nil {
		return fmt.Errorf("failed to delete payment reference: %w", err)
	}
	return nil
}
