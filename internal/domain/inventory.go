package domain

// InventoryEntry is one stack of unequipped items owned by a character.
// Count is always at least 1; a stack that reaches zero is deleted rather
// than persisted empty.
type InventoryEntry struct {
	CharacterID int64 `json:"-"`
	ItemCode    int   `json:"item_code"`
	Count       int   `json:"count"`
}

// EquipmentEntry marks an item as currently worn. An equipped item is
// implicitly quantity one and is excluded from inventory accounting.
type EquipmentEntry struct {
	CharacterID int64 `json:"-"`
	ItemCode    int   `json:"item_code"`
}

// InventoryItemView is an inventory row joined with its catalog name.
type InventoryItemView struct {
	ItemCode int    `json:"item_code"`
	ItemName string `json:"item_name"`
	Count    int    `json:"count"`
}

// EquippedItemView is an equipment row joined with its catalog name.
type EquippedItemView struct {
	ItemCode int    `json:"item_code"`
	ItemName string `json:"item_name"`
}

// TradeLine is one item/count pair in a buy or sell batch.
type TradeLine struct {
	ItemCode int `json:"item_code"`
	Count    int `json:"count"`
}
