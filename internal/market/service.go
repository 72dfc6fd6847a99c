package market

import (
	"context"
	"fmt"

	"github.com/itemsim/server/internal/domain"
	"github.com/itemsim/server/internal/logger"
	"github.com/itemsim/server/internal/metrics"
	"github.com/itemsim/server/internal/repository"
)

// Service defines the marketplace buy/sell operations. Every batch is a
// single atomic unit: a failure on any line leaves inventory and currency
// entirely unchanged.
type Service interface {
	Buy(ctx context.Context, characterID int64, actingUserID string, lines []domain.TradeLine) (int, error)
	Sell(ctx context.Context, characterID int64, actingUserID string, lines []domain.TradeLine) (int, error)
}

type service struct {
	repo    repository.Character
	catalog repository.Item
}

// NewService creates a new market service
func NewService(repo repository.Character, catalog repository.Item) Service {
	return &service{repo: repo, catalog: catalog}
}

// Buy purchases every line at catalog price. Prices are resolved before any
// mutation; the funds check runs against the row-locked balance inside the
// transaction so concurrent purchases cannot overdraw the character.
func (s *service) Buy(ctx context.Context, characterID int64, actingUserID string, lines []domain.TradeLine) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyCalled, "character_id", characterID, "lines", len(lines))

	if err := validateLines(lines); err != nil {
		return 0, err
	}

	items, err := s.resolveItems(ctx, lines)
	if err != nil {
		return 0, err
	}

	totalCost := 0
	for _, line := range lines {
		totalCost += items[line.ItemCode].Price * line.Count
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return 0, err
	}
	if character.UserID != actingUserID {
		return 0, domain.ErrForbidden
	}

	if character.Money < totalCost {
		return 0, fmt.Errorf("need %d, have %d: %w", totalCost, character.Money, domain.ErrInsufficientFunds)
	}

	for _, line := range lines {
		if err := tx.UpsertInventoryEntry(ctx, characterID, line.ItemCode, line.Count); err != nil {
			return 0, err
		}
	}

	newBalance := character.Money - totalCost
	if err := tx.UpdateMoney(ctx, characterID, newBalance); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.MoneySpent.Add(float64(totalCost))
	log.Info(LogMsgItemsBought, "character_id", characterID, "total_cost", totalCost, "money", newBalance)
	return newBalance, nil
}

// Sell sells every line at the discounted catalog price. The whole batch is
// one transaction; an equipped or underfunded line aborts everything.
func (s *service) Sell(ctx context.Context, characterID int64, actingUserID string, lines []domain.TradeLine) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "character_id", characterID, "lines", len(lines))

	if err := validateLines(lines); err != nil {
		return 0, err
	}

	items, err := s.resolveItems(ctx, lines)
	if err != nil {
		return 0, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return 0, err
	}
	if character.UserID != actingUserID {
		return 0, domain.ErrForbidden
	}

	totalSalePrice := 0
	for _, line := range lines {
		entry, err := tx.GetInventoryEntry(ctx, characterID, line.ItemCode)
		if err != nil {
			return 0, err
		}
		if entry == nil || entry.Count < line.Count {
			return 0, fmt.Errorf("item %d: %w", line.ItemCode, domain.ErrInsufficientInventory)
		}

		equipped, err := tx.HasEquipment(ctx, characterID, line.ItemCode)
		if err != nil {
			return 0, err
		}
		if equipped {
			return 0, fmt.Errorf("item %d: %w", line.ItemCode, domain.ErrItemEquipped)
		}

		totalSalePrice += items[line.ItemCode].SellPrice() * line.Count

		if entry.Count == line.Count {
			err = tx.DeleteInventoryEntry(ctx, characterID, line.ItemCode)
		} else {
			err = tx.SetInventoryCount(ctx, characterID, line.ItemCode, entry.Count-line.Count)
		}
		if err != nil {
			return 0, err
		}
	}

	newBalance := character.Money + totalSalePrice
	if err := tx.UpdateMoney(ctx, characterID, newBalance); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.MoneyEarned.Add(float64(totalSalePrice))
	log.Info(LogMsgItemsSold, "character_id", characterID, "total_sale", totalSalePrice, "money", newBalance)
	return newBalance, nil
}

// resolveItems looks up every line's catalog definition. Any unknown item
// code fails the whole batch before a transaction is even opened.
func (s *service) resolveItems(ctx context.Context, lines []domain.TradeLine) (map[int]domain.Item, error) {
	codes := make([]int, len(lines))
	for i, line := range lines {
		codes[i] = line.ItemCode
	}

	found, err := s.catalog.GetItemsByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	items := make(map[int]domain.Item, len(found))
	for _, item := range found {
		items[item.Code] = item
	}
	for _, line := range lines {
		if _, ok := items[line.ItemCode]; !ok {
			return nil, fmt.Errorf("item %d: %w", line.ItemCode, domain.ErrItemNotFound)
		}
	}
	return items, nil
}

// validateLines rejects empty batches, out-of-range counts and duplicate
// item codes within one batch.
func validateLines(lines []domain.TradeLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("at least one line is required: %w", domain.ErrInvalidInput)
	}

	seen := make(map[int]bool, len(lines))
	for _, line := range lines {
		if line.Count < 1 {
			return fmt.Errorf("item %d: count must be at least 1: %w", line.ItemCode, domain.ErrInvalidInput)
		}
		if line.Count > domain.MaxTradeLineCount {
			return fmt.Errorf("item %d: count exceeds %d: %w", line.ItemCode, domain.MaxTradeLineCount, domain.ErrInvalidInput)
		}
		if seen[line.ItemCode] {
			return fmt.Errorf("item %d: duplicate line: %w", line.ItemCode, domain.ErrInvalidInput)
		}
		seen[line.ItemCode] = true
	}
	return nil
}
