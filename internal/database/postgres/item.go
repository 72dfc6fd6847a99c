package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itemsim/server/internal/domain"
)

// ItemRepository implements catalog persistence against the game store
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `item_code, item_name, health, power, item_price`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(&item.Code, &item.Name, &item.Stat.Health, &item.Stat.Power, &item.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// GetItemByCode retrieves an item definition by its code
func (r *ItemRepository) GetItemByCode(ctx context.Context, code int) (*domain.Item, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE item_code = $1`, code)
	return scanItem(row)
}

// GetItemByName retrieves an item definition by its unique name
func (r *ItemRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE item_name = $1`, name)
	return scanItem(row)
}

// GetItemsByCodes retrieves item definitions for a batch of codes. Codes with
// no catalog row are simply absent from the result; callers decide whether
// that is an error.
func (r *ItemRepository) GetItemsByCodes(ctx context.Context, codes []int) ([]domain.Item, error) {
	if len(codes) == 0 {
		return []domain.Item{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE item_code = ANY($1)`, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to get items by codes: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0, len(codes))
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.Code, &item.Name, &item.Stat.Health, &item.Stat.Power, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read item rows: %w", err)
	}
	return items, nil
}

// InsertItem creates a new catalog entry
func (r *ItemRepository) InsertItem(ctx context.Context, item *domain.Item) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO items (item_code, item_name, health, power, item_price)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.Code, item.Name, item.Stat.Health, item.Stat.Power, item.Price)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrItemCodeTaken
		}
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// UpdateItem updates an item's name and stat deltas. Price is immutable.
func (r *ItemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE items SET item_name = $2, health = $3, power = $4 WHERE item_code = $1`,
		item.Code, item.Name, item.Stat.Health, item.Stat.Power)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrItemNameTaken
		}
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// ListItems returns the catalog listing ordered by item code
func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.ItemListing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT item_code, item_name, item_price FROM items ORDER BY item_code ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	listings := []domain.ItemListing{}
	for rows.Next() {
		var l domain.ItemListing
		if err := rows.Scan(&l.Code, &l.Name, &l.Price); err != nil {
			return nil, fmt.Errorf("failed to scan item listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read item rows: %w", err)
	}
	return listings, nil
}
