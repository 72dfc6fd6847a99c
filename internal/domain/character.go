package domain

// Default stats assigned to a newly created character.
const (
	DefaultCharacterHealth = 500
	DefaultCharacterPower  = 100
	DefaultCharacterMoney  = 10000
)

// DefaultMoneyGrant is the amount added by the money-grant endpoint when the
// request does not specify one.
const DefaultMoneyGrant = 100

// Character is a player-owned game entity. Health and power change only
// through equip/unequip; money only through the market and the money grant.
type Character struct {
	ID     int64  `json:"character_id"`
	UserID string `json:"-"`
	Name   string `json:"name"`
	Health int    `json:"health"`
	Power  int    `json:"power"`
	Money  int    `json:"money"`
}

// CharacterView is the read model returned by the character detail endpoint.
// Money is populated only when the viewer owns the character.
type CharacterView struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	Power  int    `json:"power"`
	Money  *int   `json:"money,omitempty"`
}

// Stats is the pair of derived combat stats adjusted by equipment.
type Stats struct {
	Health int `json:"health"`
	Power  int `json:"power"`
}
