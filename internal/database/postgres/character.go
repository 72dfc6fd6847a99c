package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itemsim/server/internal/database"
	"github.com/itemsim/server/internal/domain"
	"github.com/itemsim/server/internal/repository"
)

// CharacterRepository implements the character repository for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// CharacterTx implements repository.CharacterTx
type CharacterTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *CharacterRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	return &CharacterTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *CharacterTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *CharacterTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

const characterColumns = `character_id, user_id, name, health, power, money`

func scanCharacter(row pgx.Row) (*domain.Character, error) {
	var c domain.Character
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Health, &c.Power, &c.Money)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return &c, nil
}

// GetCharacterByID retrieves a character by ID
func (r *CharacterRepository) GetCharacterByID(ctx context.Context, characterID int64) (*domain.Character, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE character_id = $1`, characterID)
	return scanCharacter(row)
}

// GetCharacterByName retrieves a character by its globally unique name
func (r *CharacterRepository) GetCharacterByName(ctx context.Context, name string) (*domain.Character, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE name = $1`, name)
	return scanCharacter(row)
}

// InsertCharacter creates a new character and fills in the generated ID
func (r *CharacterRepository) InsertCharacter(ctx context.Context, character *domain.Character) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO characters (user_id, name, health, power, money)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING character_id`,
		character.UserID, character.Name, character.Health, character.Power, character.Money).
		Scan(&character.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameTaken
		}
		return fmt.Errorf("failed to insert character: %w", err)
	}
	return nil
}

// DeleteCharacter deletes a character. Inventory and equipment rows cascade.
func (r *CharacterRepository) DeleteCharacter(ctx context.Context, characterID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE character_id = $1`, characterID)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// ListInventory returns all inventory entries for a character ordered by item code
func (r *CharacterRepository) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT character_id, item_code, count FROM inventory
		 WHERE character_id = $1 ORDER BY item_code ASC`, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	entries := []domain.InventoryEntry{}
	for rows.Next() {
		var e domain.InventoryEntry
		if err := rows.Scan(&e.CharacterID, &e.ItemCode, &e.Count); err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory rows: %w", err)
	}
	return entries, nil
}

// ListEquipment returns all equipped items for a character ordered by item code
func (r *CharacterRepository) ListEquipment(ctx context.Context, characterID int64) ([]domain.EquipmentEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT character_id, item_code FROM equipment
		 WHERE character_id = $1 ORDER BY item_code ASC`, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer rows.Close()

	entries := []domain.EquipmentEntry{}
	for rows.Next() {
		var e domain.EquipmentEntry
		if err := rows.Scan(&e.CharacterID, &e.ItemCode); err != nil {
			return nil, fmt.Errorf("failed to scan equipment entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read equipment rows: %w", err)
	}
	return entries, nil
}

// ---- Transactional operations ----

// GetCharacterForUpdate locks the character row for the duration of the
// transaction so concurrent mutations against it serialize.
func (t *CharacterTx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE character_id = $1 FOR UPDATE`,
		characterID)
	return scanCharacter(row)
}

// GetInventoryEntry returns the inventory entry for an item, or nil if absent
func (t *CharacterTx) GetInventoryEntry(ctx context.Context, characterID int64, itemCode int) (*domain.InventoryEntry, error) {
	var e domain.InventoryEntry
	err := t.tx.QueryRow(ctx,
		`SELECT character_id, item_code, count FROM inventory
		 WHERE character_id = $1 AND item_code = $2`, characterID, itemCode).
		Scan(&e.CharacterID, &e.ItemCode, &e.Count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get inventory entry: %w", err)
	}
	return &e, nil
}

// UpsertInventoryEntry adds delta to the entry's count, creating the row at
// count=delta when absent.
func (t *CharacterTx) UpsertInventoryEntry(ctx context.Context, characterID int64, itemCode, delta int) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO inventory (character_id, item_code, count)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (character_id, item_code)
		 DO UPDATE SET count = inventory.count + EXCLUDED.count`,
		characterID, itemCode, delta)
	if err != nil {
		return fmt.Errorf("failed to upsert inventory entry: %w", err)
	}
	return nil
}

// SetInventoryCount overwrites the entry's count
func (t *CharacterTx) SetInventoryCount(ctx context.Context, characterID int64, itemCode, count int) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE inventory SET count = $3 WHERE character_id = $1 AND item_code = $2`,
		characterID, itemCode, count)
	if err != nil {
		return fmt.Errorf("failed to set inventory count: %w", err)
	}
	return nil
}

// DeleteInventoryEntry removes the entry entirely
func (t *CharacterTx) DeleteInventoryEntry(ctx context.Context, characterID int64, itemCode int) error {
	_, err := t.tx.Exec(ctx,
		`DELETE FROM inventory WHERE character_id = $1 AND item_code = $2`,
		characterID, itemCode)
	if err != nil {
		return fmt.Errorf("failed to delete inventory entry: %w", err)
	}
	return nil
}

// HasEquipment reports whether the item is currently equipped
func (t *CharacterTx) HasEquipment(ctx context.Context, characterID int64, itemCode int) (bool, error) {
	var exists bool
	err := t.tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM equipment WHERE character_id = $1 AND item_code = $2)`,
		characterID, itemCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check equipment: %w", err)
	}
	return exists, nil
}

// InsertEquipment marks the item as equipped
func (t *CharacterTx) InsertEquipment(ctx context.Context, characterID int64, itemCode int) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO equipment (character_id, item_code) VALUES ($1, $2)`,
		characterID, itemCode)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyEquipped
		}
		return fmt.Errorf("failed to insert equipment: %w", err)
	}
	return nil
}

// DeleteEquipment removes the equipped marker
func (t *CharacterTx) DeleteEquipment(ctx context.Context, characterID int64, itemCode int) error {
	tag, err := t.tx.Exec(ctx,
		`DELETE FROM equipment WHERE character_id = $1 AND item_code = $2`,
		characterID, itemCode)
	if err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotEquipped
	}
	return nil
}

// UpdateStats sets the character's health and power
func (t *CharacterTx) UpdateStats(ctx context.Context, characterID int64, health, power int) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE characters SET health = $2, power = $3 WHERE character_id = $1`,
		characterID, health, power)
	if err != nil {
		return fmt.Errorf("failed to update stats: %w", err)
	}
	return nil
}

// UpdateMoney sets the character's money balance
func (t *CharacterTx) UpdateMoney(ctx context.Context, characterID int64, money int) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE characters SET money = $2 WHERE character_id = $1`,
		characterID, money)
	if err != nil {
		return fmt.Errorf("failed to update money: %w", err)
	}
	return nil
}
