package equipment

import (
	"context"
	"fmt"

	"github.com/itemsim/server/internal/domain"
	"github.com/itemsim/server/internal/logger"
	"github.com/itemsim/server/internal/repository"
)

// Service defines the equip/unequip operations. Each operation moves one unit
// of an item between the inventory and equipment tables and adjusts the
// character's derived stats, all inside a single transaction.
type Service interface {
	Equip(ctx context.Context, characterID int64, actingUserID string, itemCode int) (*domain.Stats, error)
	Unequip(ctx context.Context, characterID int64, actingUserID string, itemCode int) (*domain.Stats, error)
}

type service struct {
	repo    repository.Character
	catalog repository.Item
}

// NewService creates a new equipment service
func NewService(repo repository.Character, catalog repository.Item) Service {
	return &service{repo: repo, catalog: catalog}
}

// Equip transfers one unit of the item from inventory to equipment and
// applies its stat deltas. The catalog lookup happens before any mutation so
// a missing item definition can never leave partial state behind.
func (s *service) Equip(ctx context.Context, characterID int64, actingUserID string, itemCode int) (*domain.Stats, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipCalled, "character_id", characterID, "item_code", itemCode)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if character.UserID != actingUserID {
		return nil, domain.ErrForbidden
	}

	entry, err := tx.GetInventoryEntry(ctx, characterID, itemCode)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("item %d: %w", itemCode, domain.ErrNotInInventory)
	}

	equipped, err := tx.HasEquipment(ctx, characterID, itemCode)
	if err != nil {
		return nil, err
	}
	if equipped {
		return nil, fmt.Errorf("item %d: %w", itemCode, domain.ErrAlreadyEquipped)
	}

	item, err := s.catalog.GetItemByCode(ctx, itemCode)
	if err != nil {
		return nil, err
	}

	if err := tx.InsertEquipment(ctx, characterID, itemCode); err != nil {
		return nil, err
	}
	if entry.Count == 1 {
		err = tx.DeleteInventoryEntry(ctx, characterID, itemCode)
	} else {
		err = tx.SetInventoryCount(ctx, characterID, itemCode, entry.Count-1)
	}
	if err != nil {
		return nil, err
	}

	stats := applyDeltas(character, item.Stat.Health, item.Stat.Power)
	if err := tx.UpdateStats(ctx, characterID, stats.Health, stats.Power); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgItemEquipped, "character_id", characterID, "item_code", itemCode,
		"health", stats.Health, "power", stats.Power)
	return &stats, nil
}

// Unequip reverses Equip: the equipment row is removed, the stat deltas are
// subtracted, and one unit returns to inventory (creating the stack at count
// 1 when absent).
func (s *service) Unequip(ctx context.Context, characterID int64, actingUserID string, itemCode int) (*domain.Stats, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnequipCalled, "character_id", characterID, "item_code", itemCode)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if character.UserID != actingUserID {
		return nil, domain.ErrForbidden
	}

	equipped, err := tx.HasEquipment(ctx, characterID, itemCode)
	if err != nil {
		return nil, err
	}
	if !equipped {
		return nil, fmt.Errorf("item %d: %w", itemCode, domain.ErrNotEquipped)
	}

	item, err := s.catalog.GetItemByCode(ctx, itemCode)
	if err != nil {
		return nil, err
	}

	if err := tx.DeleteEquipment(ctx, characterID, itemCode); err != nil {
		return nil, err
	}
	if err := tx.UpsertInventoryEntry(ctx, characterID, itemCode, 1); err != nil {
		return nil, err
	}

	stats := applyDeltas(character, -item.Stat.Health, -item.Stat.Power)
	if err := tx.UpdateStats(ctx, characterID, stats.Health, stats.Power); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgItemUnequipped, "character_id", characterID, "item_code", itemCode,
		"health", stats.Health, "power", stats.Power)
	return &stats, nil
}

// applyDeltas adjusts the character's stats by the given deltas, clamping at
// zero so no sequence of equipment changes produces negative health or power.
func applyDeltas(character *domain.Character, healthDelta, powerDelta int) domain.Stats {
	stats := domain.Stats{
		Health: character.Health + healthDelta,
		Power:  character.Power + powerDelta,
	}
	if stats.Health < 0 {
		stats.Health = 0
	}
	if stats.Power < 0 {
		stats.Power = 0
	}
	return stats
}
