package content

import "github.com/gosimple/slug"

// Kind identifies one content collection.
type Kind string

const (
	KindWeapons    Kind = "weapons"
	KindEquipment  Kind = "equipment"
	KindSpells     Kind = "spells"
	KindMonsters   Kind = "monsters"
	KindQuests     Kind = "quests"
	KindServerInfo Kind = "server_info"
)

// Kinds lists all collections in their canonical display order.
// The order doubles as the tie-break priority in cross-entity search.
var Kinds = []Kind{KindWeapons, KindEquipment, KindSpells, KindMonsters, KindQuests, KindServerInfo}

// TradeOffer is a single NPC buy/sell entry attached to an item.
type TradeOffer struct {
	NPC   string `json:"npc"`
	Price int    `json:"price"`
}

// Weapon is one weapon record from weapons.json.
type Weapon struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug,omitempty"`
	Attack      int          `json:"attack"`
	Defense     int          `json:"defense"`
	Weight      float64      `json:"weight"`
	DroppedBy   []string     `json:"dropped_by"`
	BuyFrom     []TradeOffer `json:"buy_from"`
	SellTo      []TradeOffer `json:"sell_to"`
	Description string       `json:"description,omitempty"`
}

// Equipment is one equipment record (armor, helmet, boots, ...) from equipment.json.
type Equipment struct {
	ID          string       `json:"id"`
	Slot        string       `json:"slot"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug,omitempty"`
	Armor       int          `json:"armor"`
	Weight      float64      `json:"weight"`
	DroppedBy   []string     `json:"dropped_by"`
	BuyFrom     []TradeOffer `json:"buy_from"`
	SellTo      []TradeOffer `json:"sell_to"`
	Description string       `json:"description,omitempty"`
}

// Spell is one spell record from spells.json.
type Spell struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Incantation string `json:"incantation"`
	Vocation    string `json:"vocation"`
	Level       int    `json:"level"`
	Mana        int    `json:"mana"`
	Effect      string `json:"effect"`
}

// Monster is one monster record from monsters.json.
type Monster struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug,omitempty"`
	HP         int    `json:"hp"`
	Exp        int    `json:"exp"`
	Loot       string `json:"loot"`
	Location   string `json:"location"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Quest is one quest record from quests.json.
type Quest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Location    string `json:"location"`
	Reward      string `json:"reward"`
	Description string `json:"description,omitempty"`
}

// ServerInfo holds the server_info.json document. Unlike the other
// collections it is a single object, not an array.
type ServerInfo struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Rates          map[string]float64 `json:"rates"`
	Version        string             `json:"version"`
	Website        string             `json:"website,omitempty"`
	Discord        string             `json:"discord,omitempty"`
	AdditionalInfo string             `json:"additional_info,omitempty"`
}

// Slugify returns the URL slug for a record name.
func Slugify(name string) string {
	return slug.Make(name)
}
