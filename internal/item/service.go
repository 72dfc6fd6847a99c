package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/itemsim/server/internal/domain"
	"github.com/itemsim/server/internal/logger"
	"github.com/itemsim/server/internal/repository"
)

// Service defines catalog management operations
type Service interface {
	Create(ctx context.Context, item domain.Item) error
	Update(ctx context.Context, code int, name *string, stat *domain.ItemStat) (*domain.Item, error)
	List(ctx context.Context) ([]domain.ItemListing, error)
	Get(ctx context.Context, code int) (*domain.Item, error)
}

type service struct {
	repo repository.Item
}

// NewService creates a new item service
func NewService(repo repository.Item) Service {
	return &service{repo: repo}
}

// Create adds a new item definition to the catalog. Both the code and the
// name must be unique.
func (s *service) Create(ctx context.Context, item domain.Item) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateItemCalled, "item_code", item.Code, "item_name", item.Name)

	if item.Name == "" {
		return fmt.Errorf("item name is required: %w", domain.ErrInvalidInput)
	}
	if item.Price < 0 {
		return fmt.Errorf("item price must not be negative: %w", domain.ErrInvalidInput)
	}

	if _, err := s.repo.GetItemByName(ctx, item.Name); err == nil {
		return domain.ErrItemNameTaken
	} else if !errors.Is(err, domain.ErrItemNotFound) {
		return fmt.Errorf(ErrMsgLookupItemFailed, err)
	}

	if err := s.repo.InsertItem(ctx, &item); err != nil {
		return err
	}

	log.Info(LogMsgItemCreated, "item_code", item.Code, "item_name", item.Name)
	return nil
}

// Update changes an item's name and/or stat deltas. The price is immutable
// once the item exists. Nil fields are left untouched.
func (s *service) Update(ctx context.Context, code int, name *string, stat *domain.ItemStat) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpdateItemCalled, "item_code", code)

	item, err := s.repo.GetItemByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if name != nil {
		if *name == "" {
			return nil, fmt.Errorf("item name must not be empty: %w", domain.ErrInvalidInput)
		}
		item.Name = *name
	}
	if stat != nil {
		item.Stat = *stat
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	log.Info(LogMsgItemUpdated, "item_code", code, "item_name", item.Name)
	return item, nil
}

// List returns the catalog listing ordered by item code
func (s *service) List(ctx context.Context) ([]domain.ItemListing, error) {
	return s.repo.ListItems(ctx)
}

// Get returns the full item definition
func (s *service) Get(ctx context.Context, code int) (*domain.Item, error) {
	return s.repo.GetItemByCode(ctx, code)
}
