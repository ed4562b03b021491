// Package repository persists completed readings in SQLite.
package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ArtemYurchenko333/NatalBot/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

const insertReadingSQL = `
INSERT INTO readings (user_id, birth_date, birth_city, generated_text)
VALUES (?, ?, ?, ?)`

// Store wraps a SQLite database holding the readings table. The engine only
// ever writes; rows are never updated or deleted.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// Schema application is idempotent, so restarting against an existing file
// is safe.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("repository: database path must not be empty")
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("repository: open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("repository: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReading inserts one reading in its own transaction. The transaction
// is committed or rolled back on every exit path; created_at is assigned by
// the database at write time.
func (s *Store) SaveReading(ctx context.Context, r domain.Reading) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: begin transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertReadingSQL, r.UserID, r.BirthDate, r.BirthCity, r.GeneratedText); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("repository: insert reading: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repository: commit: %w", err)
	}
	return nil
}
