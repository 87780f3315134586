package spells_test

import (
	"testing"

	"github.com/Kappa-h/fibulopedia/core/content"
	"github.com/Kappa-h/fibulopedia/core/content/contenttest"
	"github.com/Kappa-h/fibulopedia/feature/spells"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *spells.Service {
	t.Helper()
	return spells.NewService(contenttest.NewStore(t), zap.NewNop())
}

func intPtr(n int) *int { return &n }

func names(items []content.Spell) []string {
	out := make([]string, len(items))
	for i, sp := range items {
		out[i] = sp.Name
	}
	return out
}

func TestList(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name   string
		filter spells.Filter
		want   []string
	}{
		{"All", spells.Filter{}, []string{"Fireball", "Haste", "Light Healing"}},
		{"QueryIncantation", spells.Filter{Query: "exura"}, []string{"Light Healing"}},
		{"MinLevel", spells.Filter{MinLevel: intPtr(14)}, []string{"Fireball", "Haste"}},
		{"MaxMana", spells.Filter{MaxMana: intPtr(30)}, []string{"Light Healing"}},
		{"SortLevel", spells.Filter{Sort: "level"}, []string{"Light Healing", "Haste", "Fireball"}},
		{"SortMana", spells.Filter{Sort: "mana"}, []string{"Light Healing", "Fireball", "Haste"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := svc.List(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(items))
		})
	}
}

func TestList_VocationAllMatchesEveryFilter(t *testing.T) {
	svc := newService(t)

	// "Light Healing" and "Haste" are vocation "All" and must match any
	// vocation filter alongside the exact matches.
	items, err := svc.List(spells.Filter{Vocation: "Sorcerer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fireball", "Haste", "Light Healing"}, names(items))

	items, err = svc.List(spells.Filter{Vocation: "Knight"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Haste", "Light Healing"}, names(items))
}

func TestList_CollectionUnavailable(t *testing.T) {
	store := contenttest.NewStoreWithout(t, "spells.json")
	svc := spells.NewService(store, zap.NewNop())

	_, err := svc.List(spells.Filter{})
	assert.ErrorIs(t, err, content.ErrMissing)
}

func TestGet(t *testing.T) {
	svc := newService(t)

	sp, err := svc.Get("light-healing")
	require.NoError(t, err)
	assert.Equal(t, "exura", sp.Incantation)

	_, err = svc.Get("ultimate-explosion")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestVocations(t *testing.T) {
	svc := newService(t)

	vocations, err := svc.Vocations()
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Sorcerer"}, vocations)
}
