package equipment

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/itemsim/server/internal/domain"
	"github.com/itemsim/server/internal/repository"
)

// MockCharacterRepository implements repository.Character for testing
type MockCharacterRepository struct {
	mock.Mock
}

func (m *MockCharacterRepository) GetCharacterByID(ctx context.Context, characterID int64) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterRepository) GetCharacterByName(ctx context.Context, name string) (*domain.Character, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterRepository) InsertCharacter(ctx context.Context, character *domain.Character) error {
	args := m.Called(ctx, character)
	return args.Error(0)
}

func (m *MockCharacterRepository) DeleteCharacter(ctx context.Context, characterID int64) error {
	args := m.Called(ctx, characterID)
	return args.Error(0)
}

func (m *MockCharacterRepository) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockCharacterRepository) ListEquipment(ctx context.Context, characterID int64) ([]domain.EquipmentEntry, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentEntry), args.Error(1)
}

func (m *MockCharacterRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CharacterTx), args.Error(1)
}

// MockCharacterTx implements repository.CharacterTx for testing
type MockCharacterTx struct {
	mock.Mock
}

func (m *MockCharacterTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCharacterTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCharacterTx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterTx) GetInventoryEntry(ctx context.Context, characterID int64, itemCode int) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, characterID, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockCharacterTx) UpsertInventoryEntry(ctx context.Context, characterID int64, itemCode, delta int) error {
	args := m.Called(ctx, characterID, itemCode, delta)
	return args.Error(0)
}

func (m *MockCharacterTx) SetInventoryCount(ctx context.Context, characterID int64, itemCode, count int) error {
	args := m.Called(ctx, characterID, itemCode, count)
	return args.Error(0)
}

func (m *MockCharacterTx) DeleteInventoryEntry(ctx context.Context, characterID int64, itemCode int) error {
	args := m.Called(ctx, characterID, itemCode)
	return args.Error(0)
}

func (m *MockCharacterTx) HasEquipment(ctx context.Context, characterID int64, itemCode int) (bool, error) {
	args := m.Called(ctx, characterID, itemCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockCharacterTx) InsertEquipment(ctx context.Context, characterID int64, itemCode int) error {
	args := m.Called(ctx, characterID, itemCode)
	return args.Error(0)
}

func (m *MockCharacterTx) DeleteEquipment(ctx context.Context, characterID int64, itemCode int) error {
	args := m.Called(ctx, characterID, itemCode)
	return args.Error(0)
}

func (m *MockCharacterTx) UpdateStats(ctx context.Context, characterID int64, health, power int) error {
	args := m.Called(ctx, characterID, health, power)
	return args.Error(0)
}

func (m *MockCharacterTx) UpdateMoney(ctx context.Context, characterID int64, money int) error {
	args := m.Called(ctx, characterID, money)
	return args.Error(0)
}

// MockItemRepository implements repository.Item for testing
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) GetItemByCode(ctx context.Context, code int) (*domain.Item, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetItemsByCodes(ctx context.Context, codes []int) ([]domain.Item, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) InsertItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) ListItems(ctx context.Context) ([]domain.ItemListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemListing), args.Error(1)
}
