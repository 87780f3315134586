// Package contenttest provides a small in-memory content set for tests.
package contenttest

import (
	"testing"
	"testing/fstest"

	"github.com/Kappa-h/fibulopedia/core/content"

	"go.uber.org/zap"
)

const weaponsJSON = `[
  {"id": "weapon_001", "type": "sword", "name": "Fire Sword", "attack": 45, "defense": 20, "weight": 23.0,
   "dropped_by": ["Dragon"], "buy_from": [], "sell_to": [{"npc": "Lynda", "price": 1000}],
   "description": "The blade is hot enough to burn wounds shut."},
  {"id": "weapon_002", "type": "sword", "name": "Ice Sword", "attack": 40, "defense": 18, "weight": 30.0,
   "dropped_by": ["Frost Giant"], "buy_from": [], "sell_to": [],
   "description": "A blade of never melting ice."},
  {"id": "weapon_003", "type": "axe", "name": "Knight Axe", "attack": 33, "defense": 21, "weight": 59.0,
   "dropped_by": ["Dragon"], "buy_from": [], "sell_to": [],
   "description": "A heavy battle axe."}
]`

const equipmentJSON = `[
  {"id": "equipment_001", "slot": "shield", "name": "Dragon Shield", "armor": 31, "weight": 60.0,
   "dropped_by": ["Dragon"], "buy_from": [], "sell_to": [],
   "description": "A shield decorated with a dragon emblem."},
  {"id": "equipment_002", "slot": "helmet", "name": "Steel Helmet", "armor": 6, "weight": 46.0,
   "dropped_by": ["Cyclops"], "buy_from": [], "sell_to": [],
   "description": "A reliable helmet of hardened steel."}
]`

const spellsJSON = `[
  {"id": "spell_001", "name": "Fireball", "incantation": "exori flam", "vocation": "Sorcerer",
   "level": 17, "mana": 60, "effect": "Hurls a ball of fire at the target."},
  {"id": "spell_002", "name": "Light Healing", "incantation": "exura", "vocation": "All",
   "level": 9, "mana": 25, "effect": "Restores a small amount of hitpoints."},
  {"id": "spell_003", "name": "Haste", "incantation": "utani hur", "vocation": "All",
   "level": 14, "mana": 60, "effect": "Increases movement speed for a short time."}
]`

const monstersJSON = `[
  {"id": "monster_001", "name": "Dragon", "hp": 1000, "exp": 700,
   "loot": "Gold Coins, Fire Sword, Dragon Shield", "location": "Darashia Dragon Lair", "difficulty": "hard"},
  {"id": "monster_002", "name": "Demon", "hp": 5500, "exp": 6000,
   "loot": "Gold Coins, Fire Sword", "location": "Pits of Inferno", "difficulty": "very hard"},
  {"id": "monster_003", "name": "Rat", "hp": 20, "exp": 5,
   "loot": "Cheese", "location": "Thais Sewers", "difficulty": "easy"}
]`

const questsJSON = `[
  {"id": "quest_001", "name": "Fire Axe Quest", "location": "Mount Sternum", "reward": "Fire Axe",
   "description": "A blazing reward awaits past the fire devils."},
  {"id": "quest_002", "name": "Desert Quest", "location": "Kha'tan Desert", "reward": "2000 Gold Coins",
   "description": "A classic treasure hunt beneath the burning sands."}
]`

const serverInfoJSON = `{
  "id": "server_001", "name": "Fibula Project",
  "description": "A Tibia 7.1 style OTS.",
  "rates": {"exp": 4, "loot": 2, "skill": 5, "magic": 3},
  "version": "7.1"
}`

// FS returns a fresh content set covering every collection. Tests may
// delete or corrupt entries before loading a store from it.
func FS() fstest.MapFS {
	return fstest.MapFS{
		"weapons.json":     &fstest.MapFile{Data: []byte(weaponsJSON)},
		"equipment.json":   &fstest.MapFile{Data: []byte(equipmentJSON)},
		"spells.json":      &fstest.MapFile{Data: []byte(spellsJSON)},
		"monsters.json":    &fstest.MapFile{Data: []byte(monstersJSON)},
		"quests.json":      &fstest.MapFile{Data: []byte(questsJSON)},
		"server_info.json": &fstest.MapFile{Data: []byte(serverInfoJSON)},
	}
}

// NewStore loads a store from the fixture content set.
func NewStore(t *testing.T) *content.Store {
	t.Helper()
	return content.LoadFS(FS(), zap.NewNop())
}

// NewStoreWithout loads a store whose content set is missing the given files.
func NewStoreWithout(t *testing.T, names ...string) *content.Store {
	t.Helper()
	fsys := FS()
	for _, name := range names {
		delete(fsys, name)
	}
	return content.LoadFS(fsys, zap.NewNop())
}
