package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindMatch(ctx context.Context, userID uuid.UUID, rawDescription string) (string, error) {
	query := `
		SELECT category
		FROM category_mappings
		WHERE user_id = $1 AND strpos(lower($2), lower(raw_pattern)) > 0
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var name string

	err := s.db.QueryRowContext(ctx, query, userID, rawDescription).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding category match: %w", err)
	}

	return name, nil
}

func (s *Store) CreateMapping(ctx context.Context, userID uuid.UUID, rawPattern, name string) error {
	query := `
		INSERT INTO category_mappings (user_id, raw_pattern, category, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	if _, err := s.db.ExecContext(ctx, query, userID, rawPattern, name); err != nil {
		return fmt.Errorf("creating category mapping: %w", err)
	}

	return nil
}

func (s *Store) ListMappings(ctx context.Context, userID uuid.UUID) ([]category.Mapping, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT raw_pattern, category FROM category_mappings WHERE user_id = $1 ORDER BY category, raw_pattern`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing category mappings: %w", err)
	}
	defer rows.Close()

	var mappings []category.Mapping

	for rows.Next() {
		var m category.Mapping
		if err := rows.Scan(&m.RawPattern, &m.Category); err != nil {
			return nil, fmt.Errorf("scanning category mapping: %w", err)
		}

		mappings = append(mappings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category mappings: %w", err)
	}

	return mappings, nil
}
