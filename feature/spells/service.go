package spells

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Kappa-h/fibulopedia/core/content"
	"github.com/Kappa-h/fibulopedia/core/query"

	"go.uber.org/zap"
)

// Filter holds the list predicates; set fields compose with logical AND.
type Filter struct {
	// Query substring-matches name, incantation, effect and vocation.
	Query string
	// Vocation filters by vocation. A spell with vocation "All" matches
	// every vocation filter.
	Vocation string
	MinLevel *int
	MaxLevel *int
	MinMana  *int
	MaxMana  *int
	// Sort is one of name, level, mana, vocation. Unknown keys fall back
	// to name.
	Sort string
}

// Service answers spell queries over the content store.
type Service struct {
	store  *content.Store
	logger *zap.Logger
}

// NewService creates a new spells service.
func NewService(store *content.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (f Filter) predicates() []func(content.Spell) bool {
	var preds []func(content.Spell) bool
	if q := strings.TrimSpace(f.Query); q != "" {
		preds = append(preds, func(sp content.Spell) bool {
			return query.ContainsFold(sp.Name, q) ||
				query.ContainsFold(sp.Incantation, q) ||
				query.ContainsFold(sp.Effect, q) ||
				query.ContainsFold(sp.Vocation, q)
		})
	}
	if f.Vocation != "" {
		preds = append(preds, func(sp content.Spell) bool {
			return strings.EqualFold(sp.Vocation, f.Vocation) || strings.EqualFold(sp.Vocation, "All")
		})
	}
	if f.MinLevel != nil {
		preds = append(preds, func(sp content.Spell) bool { return sp.Level >= *f.MinLevel })
	}
	if f.MaxLevel != nil {
		preds = append(preds, func(sp content.Spell) bool { return sp.Level <= *f.MaxLevel })
	}
	if f.MinMana != nil {
		preds = append(preds, func(sp content.Spell) bool { return sp.Mana >= *f.MinMana })
	}
	if f.MaxMana != nil {
		preds = append(preds, func(sp content.Spell) bool { return sp.Mana <= *f.MaxMana })
	}
	return preds
}

// List returns the spells matching the filter, sorted by the filter's sort
// key. Level and mana sort ascending so the cheapest spells come first.
func (s *Service) List(f Filter) ([]content.Spell, error) {
	if err := s.store.Err(content.KindSpells); err != nil {
		return nil, err
	}
	items := query.Filter(s.store.Spells(), f.predicates()...)

	switch f.Sort {
	case "level":
		items = query.SortBy(items, func(a, b content.Spell) bool { return a.Level < b.Level })
	case "mana":
		items = query.SortBy(items, func(a, b content.Spell) bool { return a.Mana < b.Mana })
	case "vocation":
		items = query.SortBy(items, func(a, b content.Spell) bool { return a.Vocation < b.Vocation })
	default:
		items = query.SortBy(items, func(a, b content.Spell) bool { return a.Name < b.Name })
	}
	return items, nil
}

// Get returns a single spell by id or slug.
func (s *Service) Get(idOrSlug string) (content.Spell, error) {
	if err := s.store.Err(content.KindSpells); err != nil {
		return content.Spell{}, err
	}
	for _, sp := range s.store.Spells() {
		if sp.ID == idOrSlug || sp.Slug == idOrSlug {
			return sp, nil
		}
	}
	return content.Spell{}, fmt.Errorf("%w: spell %q", content.ErrNotFound, idOrSlug)
}

// Vocations returns the distinct vocations, sorted. "All" is included when
// present in the data.
func (s *Service) Vocations() ([]string, error) {
	if err := s.store.Err(content.KindSpells); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var vocations []string
	for _, sp := range s.store.Spells() {
		if !seen[sp.Vocation] && sp.Vocation != "" {
			seen[sp.Vocation] = true
			vocations = append(vocations, sp.Vocation)
		}
	}
	sort.Strings(vocations)
	return vocations, nil
}
