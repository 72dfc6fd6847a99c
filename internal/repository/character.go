package repository

import (
	"context"

	"github.com/itemsim/server/internal/domain"
)

// Character defines the interface for character, inventory and equipment
// persistence in the user store.
type Character interface {
	GetCharacterByID(ctx context.Context, characterID int64) (*domain.Character, error)
	GetCharacterByName(ctx context.Context, name string) (*domain.Character, error)
	InsertCharacter(ctx context.Context, character *domain.Character) error
	DeleteCharacter(ctx context.Context, characterID int64) error

	ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryEntry, error)
	ListEquipment(ctx context.Context, characterID int64) ([]domain.EquipmentEntry, error)

	BeginTx(ctx context.Context) (CharacterTx, error)
}

// CharacterTx defines the transactional surface used by the equipment and
// market engines. GetCharacterForUpdate takes a row lock on the character so
// concurrent operations against the same character serialize.
type CharacterTx interface {
	Tx
	GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error)
	GetInventoryEntry(ctx context.Context, characterID int64, itemCode int) (*domain.InventoryEntry, error)
	UpsertInventoryEntry(ctx context.Context, characterID int64, itemCode, delta int) error
	SetInventoryCount(ctx context.Context, characterID int64, itemCode, count int) error
	DeleteInventoryEntry(ctx context.Context, characterID int64, itemCode int) error
	HasEquipment(ctx context.Context, characterID int64, itemCode int) (bool, error)
	InsertEquipment(ctx context.Context, characterID int64, itemCode int) error
	DeleteEquipment(ctx context.Context, characterID int64, itemCode int) error
	UpdateStats(ctx context.Context, characterID int64, health, power int) error
	UpdateMoney(ctx context.Context, characterID int64, money int) error
}
