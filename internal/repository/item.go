package repository

import (
	"context"

	"github.com/itemsim/server/internal/domain"
)

// Item defines the interface for catalog persistence in the game store.
// The catalog is read-mostly; writes come only from the item CRUD endpoints.
type Item interface {
	GetItemByCode(ctx context.Context, code int) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	GetItemsByCodes(ctx context.Context, codes []int) ([]domain.Item, error)
	InsertItem(ctx context.Context, item *domain.Item) error
	UpdateItem(ctx context.Context, item *domain.Item) error
	ListItems(ctx context.Context) ([]domain.ItemListing, error)
}
