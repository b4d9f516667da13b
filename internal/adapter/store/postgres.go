package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
)

// PostgresStore keeps user documents in a jsonb column.
type PostgresStore struct {
	db *sql.DB
}

var _ app.Store = &PostgresStore{}

// NewPostgresStore creates new PostgresStore instance.
// Schema is created by database.RunMigrations.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// MergeUser merges user record into stored document inside one transaction.
func (s *PostgresStore) MergeUser(ctx context.Context, userID string, rec app.UserRecord) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current []byte
	err = tx.QueryRowContext(ctx, `SELECT document FROM users WHERE user_id = $1 FOR UPDATE`, userID).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("selecting document: %w", err)
	}

	var doc Document
	if len(current) > 0 {
		if err = json.Unmarshal(current, &doc); err != nil {
			return fmt.Errorf("unmarshalling stored document: %w", err)
		}
	}

	data, err := json.Marshal(mergeDocuments(doc, userDocument(rec)))
	if err != nil {
		return fmt.Errorf("marshalling document: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (user_id, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		userID, string(data),
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
