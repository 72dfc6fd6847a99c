package market

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/itemsim/server/internal/domain"
)

const (
	testCharacterID = int64(7)
	testUserID      = "user-123"
	testItemCode    = 42
)

func createTestCharacter(money int) *domain.Character {
	return &domain.Character{
		ID:     testCharacterID,
		UserID: testUserID,
		Name:   "tester",
		Health: 500,
		Power:  100,
		Money:  money,
	}
}

func createTestItem(code, price int) domain.Item {
	return domain.Item{
		Code:  code,
		Name:  "iron sword",
		Price: price,
	}
}

func setupTx(repo *MockCharacterRepository) *MockCharacterTx {
	tx := new(MockCharacterTx)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()
	return tx
}

func TestBuy_Success(t *testing.T) {
	repo := new(MockCharacterRepository)
	catalog := new(MockItemRepository)
	tx := setupTx(repo)

	// Buying 2 units at price 50 from a balance of 500 leaves 400.
	catalog.On("GetItemsByCodes", mock.Anything, []int{testItemCode}).
		Return([]domain.Item{createTestItem(testItemCode, 50)}, nil)
	tx.On("GetCharacterForUpdate", mock.Anything, testCharacterID).Return(createTestCharacter(500), nil)
	tx.On("UpsertInventoryEntry", mock.Anything, testCharacterID, testItemCode, 2).Return(nil)
	tx.On("UpdateMoney", mock.Anything, testCharacterID, 400).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)

	svc := NewService(repo, catalog)
	balance, err := svc.Buy(context.Background(), testCharacterID, testUserID,
		[]domain.TradeLine{{ItemCode: testItemCode, Count: 2}})

	require.NoError(t, err)
	assert.Equal(t, 400, balance)
	tx.AssertExpectations(t)
}

func TestBuy_InsufficientFunds(t *testing.T) {
	repo := new(MockCharacterRepository)
	catalog := new(MockItemRepository)
	tx := setupTx(repo)

	catalog.On("GetItemsByCodes", mock.Anything, []int{testItemCode}).
		Return([]domain.Item{createTestItem(testItemCode, 50)}, nil)
	tx.On("GetCharacterForUpdate", mock.Anything, testCharacterID).Return(createTestCharacter(99), nil)

	svc := NewService(repo, catalog)
	_, err := svc.Buy(context.Background(), testCharacterID, testUserID,
		[]domain.TradeLine{{ItemCode: testItemCode, Count: 2}})

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	tx.AssertNotCalled(t, "UpsertInventoryEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBuy_UnknownItemFailsBeforeTransaction(t *testing.T) {
	repo := new(MockCharacterRepository)
	catalog := new(MockItemRepository)

	catalog.On("GetItemsByCodes", mock.Anything, []int{testItemCode}).Return([]domain.Item{}, nil)

	svc := NewService(repo, catalog)
	_, err := svc.Buy(context.Background(), testCharacterID, testUserID,
		[]domain.TradeLine{{ItemCode: testItemCode, Count: 1}})

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestBuy_NotOwner(t *testing.T) {
	repo := new(MockCharacterRepository)
	catalog := new(MockItemRepository)
	tx := setupTx(repo)

	catalog.On("GetItemsByCodes", mock.Anything, []int{testItemCode}).
		Return([]domain.Item{createTestItem(testItemCode, 50)}, nil)
	tx.On("GetCharacterForUpdate", mock.Anything, testCharacterID).Return(createTestCharacter(500), nil)

	svc := NewService(repo, catalog)
	_, err := svc.Buy(context.Background(), testCharacterID, "someone-else",
		[]domain.TradeLine{{ItemCode: testItemCode, Count: 1}})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBuy_MultiLineChargesTotal(t *testing.T) {
	repo := new(MockCharacterRepository)
	catalog := new(MockItemRepository)
	tx := setupTx(repo)

	catalog.On("GetItemsByCodes", mock.Anything, []int{1, 2}).
		Return([]domain.Item{createTestItem(1, 100), createTestItem(2, 30)}, nil)
	tx.On("GetCharacterForUpdate", mock.Anything, testCharacterID).Return(createTestCharacter(1000), nil)
	tx.On("UpsertInventoryEntry", mock.Anything, testCharacterID, 1, 3).Return(nil)
	tx.On("UpsertInventoryEntry", mock.Anything, testCharacterID, 2, 2).Return(nil)
	tx.On("UpdateMoney", mock.Anything, testCharacterID, 640).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)

	svc := NewService(repo, catalog)
	balance, err := svc.Buy(context.Background(), testCharacterID, testUserID,
		[]domain.TradeLine{{ItemCode: 1, Count: 3}, {ItemCode: 2, Count: 2}})

	require.NoError(t, err)
	assert.Equal(t, 640, balance)
}

func TestSell_Success(t *testing.T) {
	repo := new(MockCharacterRepository)
	catalog := new(MockItemRepository)
	tx := setupTx(repo)

	// Selling 5 units at price 50 pays 5 * 30 = 150 on a balance of 400.
	catalog.On("GetItemsByCodes", mock.Anything, []int{testItemCode}).
		Return([]domain.Item{createTestItem(testItemCode, 50)}, nil)
	tx.On("GetCharacterForUpdate", mock.Anything, testCharacterID).Return(createTestCharacter(400), nil)
	tx.On("GetInventoryEntry", mock.Anything, testCharacterID, testItemCode).
		Return(&domain.InventoryEntry{CharacterID: testCharacterID, ItemCode: testItemCode, Count: 5}, nil)
	tx.On("HasEquipment", mock.Anything, testCharacterID, testItemCode).Return(false, nil)
	tx.On("DeleteInventoryEntry", mock.Anything, testCharacterID, testItemCode).Return(nil)
	tx.On("UpdateMoney", mock.Anything, testCharacterID, 550).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)

	svc := NewService(repo, catalog)
	balance, err := svc.Sell(context.Background(), testCharacterID, testUserID,
		[]domain.TradeLine{{ItemCode: testItemCode, Count: 5}})

	require.NoError(t, err)
	assert.Equal(t, 550, balance)
	tx.AssertExpectations(t)
}

func TestSell_PartialStackKeepsRemainder(t *testing.T) {
	repo := new(MockCharacterRepository)
	catalog := new(MockItemRepository)
	tx := setupTx(repo)

	catalog.On("GetItemsByCodes", mock.Anything, []int{testItemCode}).
		Return([]domain.Item{createTestItem(testItemCode, 50)}, nil)
	tx.On("GetCharacterForUpdate", mock.Anything, testCharacterID).Return(createTestCharacter(400), nil)
	tx.On("GetInventoryEntry", mock.Anything, testCharacterID, testItemCode).
		Return(&domain.InventoryEntry{CharacterID: testCharacterID, ItemCode: testItemCode, Count: 5}, nil)
	tx.On("HasEquipment", mock.Anything, testCharacterID, testItemCode).Return(false, nil)
	tx.On("SetInventoryCount", mock.Anything, testCharacterID, testItemCode, 3).Return(nil)
	tx.On("UpdateMoney", mock.Anything, testCharacterID, 460).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)

	svc := NewService(repo, catalog)
	balance, err := svc.Sell(context.Background(), testCharacterID, testUserID,
		[]domain.TradeLine{{ItemCode: testItemCode, Count: 2}})

	require.NoError(t, err)
	assert.Equal(t, 460, balance)
	tx.AssertNotCalled(t, "DeleteInventoryEntry", mock.Anything, mock.Anything, mock.Anything)
}

// The payout truncates: price 55 sells for 33 per unit, not 33.0 rounded up.
func TestSell_PayoutTruncates(t *testing.T) {
	repo := new(MockCharacterRepository)
	catalog := new(MockItemRepository)
	tx := setupTx(repo)

	catalog.On("GetItemsByCodes", mock.Anything, []int{testItemCode}).
		Return([]domain.Item{createTestItem(testItemCode, 55)}, nil)
	tx.On("GetCharacterForUpdate", mock.Anything, testCharacterID).Return(createTestCharacter(0), nil)
	tx.On("GetInventoryEntry", mock.Anything, testCharacterID, testItemCode).
		Return(&domain.InventoryEntry{CharacterID: testCharacterID, ItemCode: testItemCode, Count: 1}, nil)
	tx.On("HasEquipment", mock.Anything, testCharacterID, testItemCode).Return(false, nil)
	tx.On("DeleteInventoryEntry", mock.Anything, testCharacterID, testItemCode).Return(nil)
	tx.On("UpdateMoney", mock.Anything, testCharacterID, 33).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)

	svc := NewService(repo, catalog)
	balance, err := svc.Sell(context.Background(), testCharacterID, testUserID,
		[]domain.TradeLine{{ItemCode: testItemCode, Count: 1}})

	require.NoError(t, err)
	assert.Equal(t, 33, balance)
}

func TestSell_InsufficientInventory(t *testing.T) {
	repo := new(MockCharacterRepository)
	catalog := new(MockItemRepository)
	tx := setupTx(repo)

	catalog.On("GetItemsByCodes", mock.Anything, []int{testItemCode}).
		Return([]domain.Item{createTestItem(testItemCode, 50)}, nil)
	tx.On("GetCharacterForUpdate", mock.Anything, testCharacterID).Return(createTestCharacter(400), nil)
	tx.On("GetInventoryEntry", mock.Anything, testCharacterID, testItemCode).
		Return(&domain.InventoryEntry{CharacterID: testCharacterID, ItemCode: testItemCode, Count: 1}, nil)

	svc := NewService(repo, catalog)
	_, err := svc.Sell(context.Background(), testCharacterID, testUserID,
		[]domain.TradeLine{{ItemCode: testItemCode, Count: 2}})

	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	tx.AssertNotCalled(t, "UpdateMoney", mock.Anything, mock.Anything, mock.Anything)
}

func TestSell_EquippedItemAbortsBatch(t *testing.T) {
	repo := new(MockCharacterRepository)
	catalog := new(MockItemRepository)
	tx := setupTx(repo)

	catalog.On("GetItemsByCodes", mock.Anything, []int{testItemCode}).
		Return([]domain.Item{createTestItem(testItemCode, 50)}, nil)
	tx.On("GetCharacterForUpdate", mock.Anything, testCharacterID).Return(createTestCharacter(400), nil)
	tx.On("GetInventoryEntry", mock.Anything, testCharacterID, testItemCode).
		Return(&domain.InventoryEntry{CharacterID: testCharacterID, ItemCode: testItemCode, Count: 2}, nil)
	tx.On("HasEquipment", mock.Anything, testCharacterID, testItemCode).Return(true, nil)

	svc := NewService(repo, catalog)
	_, err := svc.Sell(context.Background(), testCharacterID, testUserID,
		[]domain.TradeLine{{ItemCode: testItemCode, Count: 1}})

	assert.ErrorIs(t, err, domain.ErrItemEquipped)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestValidateLines(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.TradeLine
		wantErr bool
	}{
		{"single line", []domain.TradeLine{{ItemCode: 1, Count: 1}}, false},
		{"multiple lines", []domain.TradeLine{{ItemCode: 1, Count: 1}, {ItemCode: 2, Count: 3}}, false},
		{"empty batch", nil, true},
		{"zero count", []domain.TradeLine{{ItemCode: 1, Count: 0}}, true},
		{"negative count", []domain.TradeLine{{ItemCode: 1, Count: -2}}, true},
		{"count at limit", []domain.TradeLine{{ItemCode: 1, Count: domain.MaxTradeLineCount}}, false},
		{"count over limit", []domain.TradeLine{{ItemCode: 1, Count: domain.MaxTradeLineCount + 1}}, true},
		{"duplicate codes", []domain.TradeLine{{ItemCode: 1, Count: 1}, {ItemCode: 1, Count: 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLines(tt.lines)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
