package search_test

import (
	"testing"

	"github.com/Kappa-h/fibulopedia/core/content/contenttest"
	"github.com/Kappa-h/fibulopedia/feature/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *search.Service {
	t.Helper()
	return search.NewService(contenttest.NewStore(t), zap.NewNop())
}

func names(results []search.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func TestSearch_EmptyQuery(t *testing.T) {
	svc := newService(t)

	assert.Empty(t, svc.Search(""))
	assert.Empty(t, svc.Search("   "))
	assert.Empty(t, svc.Search("\t\n"))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	svc := newService(t)

	lower := svc.Search("sword")
	upper := svc.Search("SWORD")
	assert.Equal(t, lower, upper)
	assert.NotEmpty(t, lower)
}

func TestSearch_Ranking(t *testing.T) {
	svc := newService(t)

	// Name matches outrank loot matches; equal scores fall back to the
	// navigation order (weapon, equipment, spell, monster, quest), then name.
	results := svc.Search("fire")
	assert.Equal(t, []string{"Fire Sword", "Fireball", "Fire Axe Quest", "Demon", "Dragon"}, names(results))
}

func TestSearch_ExactNameOutranksPrefix(t *testing.T) {
	svc := newService(t)

	results := svc.Search("dragon")
	require.NotEmpty(t, results)

	// The monster "Dragon" is an exact name match; "Dragon Shield" is only
	// a prefix match; the weapons match on dropped_by.
	assert.Equal(t, []string{"Dragon", "Dragon Shield", "Fire Sword", "Knight Axe"}, names(results))
	assert.Equal(t, "monster", results[0].EntityType)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearch_WordMatch(t *testing.T) {
	svc := newService(t)

	// "sword" is the second word of both sword names, not a prefix of the
	// full name, so both score the whole-word tier above the loot matches.
	results := svc.Search("sword")
	assert.Equal(t, []string{"Fire Sword", "Ice Sword", "Demon", "Dragon"}, names(results))
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Greater(t, results[1].Score, results[2].Score)
}

func TestSearch_SecondaryFieldSnippet(t *testing.T) {
	svc := newService(t)

	results := svc.Search("cheese")
	require.Len(t, results, 1)
	assert.Equal(t, "Rat", results[0].Name)
	assert.Equal(t, "monster", results[0].EntityType)
	assert.Contains(t, results[0].Snippet, "Cheese")
}

func TestSearch_TypeTags(t *testing.T) {
	svc := newService(t)

	results := svc.Search("exura")
	require.Len(t, results, 1)
	assert.Equal(t, "spell", results[0].EntityType)
	assert.Equal(t, "Light Healing", results[0].Name)
	assert.Equal(t, "light-healing", results[0].Slug)
}

func TestSearchType(t *testing.T) {
	svc := newService(t)

	t.Run("SingleType", func(t *testing.T) {
		results := svc.SearchType("fire", "weapons")
		assert.Equal(t, []string{"Fire Sword"}, names(results))
	})

	t.Run("SingularAlias", func(t *testing.T) {
		assert.Equal(t, svc.SearchType("fire", "weapon"), svc.SearchType("fire", "weapons"))
	})

	t.Run("UnknownType", func(t *testing.T) {
		assert.Empty(t, svc.SearchType("fire", "npcs"))
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		assert.Empty(t, svc.SearchType("", "weapons"))
	})
}

func TestSearch_BrokenCollectionSkipped(t *testing.T) {
	store := contenttest.NewStoreWithout(t, "weapons.json")
	svc := search.NewService(store, zap.NewNop())

	// The weapons collection failed to load; search still answers from the
	// remaining collections.
	results := svc.Search("fire")
	assert.Equal(t, []string{"Fireball", "Fire Axe Quest", "Demon", "Dragon"}, names(results))
}
