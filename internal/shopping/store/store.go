package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/shopping"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) ListLists(ctx context.Context, userID uuid.UUID) ([]*shopping.List, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name FROM shopping_lists WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing shopping lists: %w", err)
	}
	defer rows.Close()

	var lists []*shopping.List

	for rows.Next() {
		var l shopping.List
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name); err != nil {
			return nil, fmt.Errorf("scanning shopping list: %w", err)
		}

		lists = append(lists, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shopping lists: %w", err)
	}

	return lists, nil
}

func (s *Store) GetList(ctx context.Context, userID, id uuid.UUID) (*shopping.List, error) {
	var l shopping.List

	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name FROM shopping_lists WHERE user_id = $1 AND id = $2`, userID, id,
	).Scan(&l.ID, &l.UserID, &l.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shopping.ErrNotFound
		}

		return nil, fmt.Errorf("getting shopping list: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+selectItemColumns+`
		FROM shopping_list_items i
		WHERE i.list_id = $1
		ORDER BY i.purchased ASC, i.name ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("listing shopping list items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shopping list item: %w", err)
		}

		l.Items = append(l.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shopping list items: %w", err)
	}

	return &l, nil
}

func (s *Store) CreateList(ctx context.Context, l *shopping.List) error {
	if err := s.db.QueryRowContext(ctx,
		`INSERT INTO shopping_lists (user_id, name) VALUES ($1, $2) RETURNING id`, l.UserID, l.Name,
	).Scan(&l.ID); err != nil {
		return fmt.Errorf("creating shopping list: %w", err)
	}

	return nil
}

func (s *Store) RenameList(ctx context.Context, userID, id uuid.UUID, name string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE shopping_lists SET name = $1 WHERE user_id = $2 AND id = $3`, name, userID, id)
	if err != nil {
		return fmt.Errorf("renaming shopping list: %w", err)
	}

	return expectOne(res, shopping.ErrNotFound)
}

func (s *Store) DeleteList(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM shopping_lists WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting shopping list: %w", err)
	}

	return expectOne(res, shopping.ErrNotFound)
}

const selectItemColumns = `i.id, i.list_id, i.name, COALESCE(i.quantity, ''), i.unit_price, i.purchased`

func scanItem(s scanner) (*shopping.Item, error) {
	var (
		item  shopping.Item
		price decimal.NullDecimal
	)

	if err := s.Scan(&item.ID, &item.ListID, &item.Name, &item.Quantity, &price, &item.Purchased); err != nil {
		return nil, err
	}

	if price.Valid {
		item.UnitPrice = &price.Decimal
	}

	return &item, nil
}

func (s *Store) GetItem(ctx context.Context, userID, itemID uuid.UUID) (*shopping.Item, error) {
	item, err := scanItem(s.db.QueryRowContext(ctx, `SELECT `+selectItemColumns+`
		FROM shopping_list_items i
		JOIN shopping_lists l ON l.id = i.list_id
		WHERE l.user_id = $1 AND i.id = $2`, userID, itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shopping.ErrItemNotFound
		}

		return nil, fmt.Errorf("getting shopping list item: %w", err)
	}

	return item, nil
}

// CreateItem only inserts into lists owned by userID.
func (s *Store) CreateItem(ctx context.Context, userID uuid.UUID, item *shopping.Item) error {
	query := `
		INSERT INTO shopping_list_items (list_id, name, quantity, unit_price, purchased)
		SELECT l.id, $3, $4, $5, $6
		FROM shopping_lists l
		WHERE l.user_id = $1 AND l.id = $2
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		userID, item.ListID, item.Name, item.Quantity, nullDecimal(item.UnitPrice), item.Purchased,
	).Scan(&item.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shopping.ErrNotFound
		}

		return fmt.Errorf("creating shopping list item: %w", err)
	}

	return nil
}

func (s *Store) UpdateItem(ctx context.Context, userID uuid.UUID, item *shopping.Item) error {
	query := `
		UPDATE shopping_list_items i
		SET name = $1, quantity = $2, unit_price = $3, purchased = $4
		FROM shopping_lists l
		WHERE l.id = i.list_id AND l.user_id = $5 AND i.id = $6
	`

	res, err := s.db.ExecContext(ctx, query,
		item.Name, item.Quantity, nullDecimal(item.UnitPrice), item.Purchased, userID, item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating shopping list item: %w", err)
	}

	return expectOne(res, shopping.ErrItemNotFound)
}

func (s *Store) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	query := `
		DELETE FROM shopping_list_items i
		USING shopping_lists l
		WHERE l.id = i.list_id AND l.user_id = $1 AND i.id = $2
	`

	res, err := s.db.ExecContext(ctx, query, userID, itemID)
	if err != nil {
		return fmt.Errorf("deleting shopping list item: %w", err)
	}

	return expectOne(res, shopping.ErrItemNotFound)
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return notFound
	}

	return nil
}
