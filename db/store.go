// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielhkuo/luxbin/cliparse"
	"github.com/danielhkuo/luxbin/models"
)

var ErrNotFound = errors.New("transmission not found")

// MaxListLimit caps List results
const MaxListLimit = 200

// Store persists the transmission log.
type Store struct {
	db     *sql.DB
	dbType string
}

func NewStore(db *sql.DB, dbType string) *Store {
	return &Store{db: db, dbType: dbType}
}

// Record inserts a transmission.
func (s *Store) Record(ctx context.Context, t models.Transmission) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO transmission (id, mode, quantum, character_count, symbol_count,
		                          representation, total_duration_ms, ip_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), t.ID, t.Mode, t.Quantum, t.CharacterCount, t.SymbolCount,
		t.Representation, t.TotalDurationMS, t.IPHash, t.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert transmission: %w", err)
	}
	return nil
}

// Get returns one transmission by ID.
func (s *Store) Get(ctx context.Context, id string) (models.Transmission, error) {
	var t models.Transmission
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, mode, quantum, character_count, symbol_count,
		       representation, total_duration_ms, ip_hash, created_at
		FROM transmission
		WHERE id = ?
	`), id).Scan(
		&t.ID, &t.Mode, &t.Quantum, &t.CharacterCount, &t.SymbolCount,
		&t.Representation, &t.TotalDurationMS, &t.IPHash, &t.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transmission{}, ErrNotFound
	}
	if err != nil {
		return models.Transmission{}, fmt.Errorf("failed to query transmission: %w", err)
	}
	return t, nil
}

// List returns the most recent transmissions, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]models.Transmission, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, mode, quantum, character_count, symbol_count,
		       representation, total_duration_ms, ip_hash, created_at
		FROM transmission
		ORDER BY created_at DESC, id
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transmissions: %w", err)
	}
	defer rows.Close()

	out := []models.Transmission{}
	for rows.Next() {
		var t models.Transmission
		if err := rows.Scan(
			&t.ID, &t.Mode, &t.Quantum, &t.CharacterCount, &t.SymbolCount,
			&t.Representation, &t.TotalDurationMS, &t.IPHash, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transmission: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transmissions: %w", err)
	}
	return out, nil
}

// rebind rewrites ? placeholders as $N for PostgreSQL
func (s *Store) rebind(query string) string {
	if s.dbType != cliparse.DatabasePostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
