package domain

// SellPriceRatioPercent is the fraction of an item's catalog price paid out
// when selling, applied with truncating integer arithmetic.
const SellPriceRatioPercent = 60

// MaxTradeLineCount caps the per-line quantity in a buy or sell batch. It
// keeps price*count arithmetic far away from integer overflow.
const MaxTradeLineCount = 10000

// ItemStat holds the stat deltas applied to a character when the item is
// equipped and reversed when it is unequipped.
type ItemStat struct {
	Health int `json:"health,omitempty"`
	Power  int `json:"power,omitempty"`
}

// Item is a catalog definition shared by all characters. Code and Name are
// each unique within the catalog.
type Item struct {
	Code  int      `json:"item_code"`
	Name  string   `json:"item_name"`
	Stat  ItemStat `json:"item_stat"`
	Price int      `json:"item_price"`
}

// SellPrice returns the unit payout for selling this item.
func (i Item) SellPrice() int {
	return i.Price * SellPriceRatioPercent / 100
}

// ItemListing is the reduced projection returned by the catalog list endpoint.
type ItemListing struct {
	Code  int    `json:"item_code"`
	Name  string `json:"item_name"`
	Price int    `json:"item_price"`
}
