package integrity_test

import (
	"testing"
	"testing/fstest"

	"github.com/Kappa-h/fibulopedia/core/content"
	"github.com/Kappa-h/fibulopedia/core/content/contenttest"
	"github.com/Kappa-h/fibulopedia/feature/integrity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *integrity.Service {
	t.Helper()
	return integrity.NewService(contenttest.NewStore(t), zap.NewNop())
}

func TestCheckFiles(t *testing.T) {
	t.Run("AllLoaded", func(t *testing.T) {
		assert.Empty(t, newService(t).CheckFiles())
	})

	t.Run("MissingFile", func(t *testing.T) {
		store := contenttest.NewStoreWithout(t, "spells.json")
		svc := integrity.NewService(store, zap.NewNop())

		errs := svc.CheckFiles()
		require.Len(t, errs, 1)
		assert.Contains(t, errs, "spells")
	})
}

func TestCheckDroppedBy(t *testing.T) {
	svc := newService(t)

	// "Frost Giant" and "Cyclops" are referenced in dropped_by but absent
	// from the monsters collection.
	refs := svc.CheckDroppedBy()
	require.Len(t, refs, 2)

	assert.Equal(t, "weapon", refs[0].EntityType)
	assert.Equal(t, "Ice Sword", refs[0].Name)
	assert.Equal(t, []string{"Frost Giant"}, refs[0].Missing)

	assert.Equal(t, "equipment", refs[1].EntityType)
	assert.Equal(t, "Steel Helmet", refs[1].Name)
	assert.Equal(t, []string{"Cyclops"}, refs[1].Missing)
}

func TestCheckLoot(t *testing.T) {
	svc := newService(t)

	// The Knight Axe is dropped by the Dragon, but the Dragon's loot text
	// does not mention it. Items dropped by unknown monsters are covered by
	// the dangling-ref check, not here.
	warnings := svc.CheckLoot()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Knight Axe", warnings[0].Name)
	assert.Equal(t, "Dragon", warnings[0].Monster)
}

func TestCheck(t *testing.T) {
	report := newService(t).Check()

	assert.False(t, report.Clean)
	assert.Empty(t, report.FileErrors)
	assert.Len(t, report.DanglingRefs, 2)
	assert.Len(t, report.LootWarnings, 1)
	assert.Equal(t, 8, report.Checked)
	assert.NotEmpty(t, report.GeneratedAt)
}

func TestCheck_Clean(t *testing.T) {
	fsys := contenttest.FS()
	fsys["weapons.json"] = &fstest.MapFile{Data: []byte(`[
	  {"id": "weapon_001", "type": "sword", "name": "Fire Sword", "attack": 45, "defense": 20,
	   "weight": 23.0, "dropped_by": ["Dragon"], "buy_from": [], "sell_to": [], "description": ""}
	]`)}
	fsys["equipment.json"] = &fstest.MapFile{Data: []byte(`[
	  {"id": "equipment_001", "slot": "shield", "name": "Dragon Shield", "armor": 31,
	   "weight": 60.0, "dropped_by": ["Dragon"], "buy_from": [], "sell_to": [], "description": ""}
	]`)}
	store := content.LoadFS(fsys, zap.NewNop())
	svc := integrity.NewService(store, zap.NewNop())

	report := svc.Check()
	assert.True(t, report.Clean)
	assert.Empty(t, report.DanglingRefs)
	assert.Empty(t, report.LootWarnings)
	assert.Equal(t, 5, report.Checked)
}

func TestCheck_BrokenFileNotClean(t *testing.T) {
	store := contenttest.NewStoreWithout(t, "monsters.json")
	svc := integrity.NewService(store, zap.NewNop())

	report := svc.Check()
	assert.False(t, report.Clean)
	assert.Contains(t, report.FileErrors, "monsters")
}
