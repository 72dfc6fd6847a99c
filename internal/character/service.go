package character

import (
	"context"
	"errors"
	"fmt"

	"github.com/itemsim/server/internal/domain"
	"github.com/itemsim/server/internal/logger"
	"github.com/itemsim/server/internal/repository"
)

// Service defines character and inventory management operations
type Service interface {
	Create(ctx context.Context, userID, name string) (*domain.Character, error)
	Delete(ctx context.Context, characterID int64, actingUserID string) error
	Get(ctx context.Context, characterID int64, viewerUserID string) (*domain.CharacterView, error)
	ListInventory(ctx context.Context, characterID int64, actingUserID string) ([]domain.InventoryItemView, error)
	ListEquipment(ctx context.Context, characterID int64) ([]domain.EquippedItemView, error)
	GrantMoney(ctx context.Context, characterID int64, actingUserID string, amount int) (int, error)
}

type service struct {
	repo    repository.Character
	catalog repository.Item
}

// NewService creates a new character service
func NewService(repo repository.Character, catalog repository.Item) Service {
	return &service{repo: repo, catalog: catalog}
}

// Create makes a new character with default stats. Character names are
// globally unique across all users.
func (s *service) Create(ctx context.Context, userID, name string) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateCharacterCalled, "user_id", userID, "name", name)

	if name == "" {
		return nil, fmt.Errorf("character name is required: %w", domain.ErrInvalidInput)
	}

	if _, err := s.repo.GetCharacterByName(ctx, name); err == nil {
		return nil, domain.ErrNameTaken
	} else if !errors.Is(err, domain.ErrCharacterNotFound) {
		return nil, fmt.Errorf(ErrMsgLookupCharacterFailed, err)
	}

	character := &domain.Character{
		UserID: userID,
		Name:   name,
		Health: domain.DefaultCharacterHealth,
		Power:  domain.DefaultCharacterPower,
		Money:  domain.DefaultCharacterMoney,
	}
	if err := s.repo.InsertCharacter(ctx, character); err != nil {
		return nil, err
	}

	log.Info(LogMsgCharacterCreated, "character_id", character.ID, "name", name)
	return character, nil
}

// Delete removes a character owned by the acting user. Inventory and
// equipment rows cascade with it.
func (s *service) Delete(ctx context.Context, characterID int64, actingUserID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDeleteCharacterCalled, "character_id", characterID)

	if _, err := s.getOwned(ctx, characterID, actingUserID); err != nil {
		return err
	}

	if err := s.repo.DeleteCharacter(ctx, characterID); err != nil {
		return err
	}

	log.Info(LogMsgCharacterDeleted, "character_id", characterID)
	return nil
}

// Get returns the character detail view. The owner sees money; any other
// viewer, including anonymous callers, does not.
func (s *service) Get(ctx context.Context, characterID int64, viewerUserID string) (*domain.CharacterView, error) {
	character, err := s.repo.GetCharacterByID(ctx, characterID)
	if err != nil {
		return nil, err
	}

	view := &domain.CharacterView{
		Name:   character.Name,
		Health: character.Health,
		Power:  character.Power,
	}
	if viewerUserID != "" && viewerUserID == character.UserID {
		money := character.Money
		view.Money = &money
	}
	return view, nil
}

// ListInventory returns the character's inventory joined with catalog names,
// ordered by item code ascending.
func (s *service) ListInventory(ctx context.Context, characterID int64, actingUserID string) ([]domain.InventoryItemView, error) {
	if _, err := s.getOwned(ctx, characterID, actingUserID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListInventory(ctx, characterID)
	if err != nil {
		return nil, err
	}

	names, err := s.itemNames(ctx, inventoryCodes(entries))
	if err != nil {
		return nil, err
	}

	views := make([]domain.InventoryItemView, 0, len(entries))
	for _, e := range entries {
		views = append(views, domain.InventoryItemView{
			ItemCode: e.ItemCode,
			ItemName: names[e.ItemCode],
			Count:    e.Count,
		})
	}
	return views, nil
}

// ListEquipment returns the character's worn items joined with catalog names.
// Equipment is public information.
func (s *service) ListEquipment(ctx context.Context, characterID int64) ([]domain.EquippedItemView, error) {
	if _, err := s.repo.GetCharacterByID(ctx, characterID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListEquipment(ctx, characterID)
	if err != nil {
		return nil, err
	}

	codes := make([]int, len(entries))
	for i, e := range entries {
		codes[i] = e.ItemCode
	}
	names, err := s.itemNames(ctx, codes)
	if err != nil {
		return nil, err
	}

	views := make([]domain.EquippedItemView, 0, len(entries))
	for _, e := range entries {
		views = append(views, domain.EquippedItemView{
			ItemCode: e.ItemCode,
			ItemName: names[e.ItemCode],
		})
	}
	return views, nil
}

// GrantMoney adds the requested amount to the character's balance and
// returns the new balance.
func (s *service) GrantMoney(ctx context.Context, characterID int64, actingUserID string, amount int) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGrantMoneyCalled, "character_id", characterID, "amount", amount)

	if amount <= 0 {
		return 0, fmt.Errorf("grant amount must be positive: %w", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return 0, err
	}
	if character.UserID != actingUserID {
		return 0, domain.ErrForbidden
	}

	newBalance := character.Money + amount
	if err := tx.UpdateMoney(ctx, characterID, newBalance); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgMoneyGranted, "character_id", characterID, "amount", amount, "money", newBalance)
	return newBalance, nil
}

// getOwned fetches a character and verifies ownership
func (s *service) getOwned(ctx context.Context, characterID int64, actingUserID string) (*domain.Character, error) {
	character, err := s.repo.GetCharacterByID(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if character.UserID != actingUserID {
		return nil, domain.ErrForbidden
	}
	return character, nil
}

func (s *service) itemNames(ctx context.Context, codes []int) (map[int]string, error) {
	items, err := s.catalog.GetItemsByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve item names: %w", err)
	}
	names := make(map[int]string, len(items))
	for _, item := range items {
		names[item.Code] = item.Name
	}
	return names, nil
}

func inventoryCodes(entries []domain.InventoryEntry) []int {
	codes := make([]int, len(entries))
	for i, e := range entries {
		codes[i] = e.ItemCode
	}
	return codes
}
