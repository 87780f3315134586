package weapons

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Kappa-h/fibulopedia/core/content"
	"github.com/Kappa-h/fibulopedia/core/query"

	"go.uber.org/zap"
)

// Filter holds the list predicates. Zero values (and nil pointers) mean
// "no constraint"; set fields compose with logical AND.
type Filter struct {
	// Query substring-matches name, type and dropped_by, case-insensitive.
	Query string
	// Type is an exact weapon type match (sword, axe, club, distance).
	Type string
	MinAttack  *int
	MaxAttack  *int
	MinDefense *int
	MaxDefense *int
	MaxWeight  *float64
	// Sort is one of name, attack, defense, weight. Unknown keys fall back
	// to name.
	Sort string
}

// Service answers weapon queries over the content store.
type Service struct {
	store  *content.Store
	logger *zap.Logger
}

// NewService creates a new weapons service.
func NewService(store *content.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (f Filter) predicates() []func(content.Weapon) bool {
	var preds []func(content.Weapon) bool
	if q := strings.TrimSpace(f.Query); q != "" {
		preds = append(preds, func(w content.Weapon) bool {
			return query.ContainsFold(w.Name, q) ||
				query.ContainsFold(w.Type, q) ||
				query.AnyContainsFold(w.DroppedBy, q)
		})
	}
	if f.Type != "" {
		preds = append(preds, func(w content.Weapon) bool { return strings.EqualFold(w.Type, f.Type) })
	}
	if f.MinAttack != nil {
		preds = append(preds, func(w content.Weapon) bool { return w.Attack >= *f.MinAttack })
	}
	if f.MaxAttack != nil {
		preds = append(preds, func(w content.Weapon) bool { return w.Attack <= *f.MaxAttack })
	}
	if f.MinDefense != nil {
		preds = append(preds, func(w content.Weapon) bool { return w.Defense >= *f.MinDefense })
	}
	if f.MaxDefense != nil {
		preds = append(preds, func(w content.Weapon) bool { return w.Defense <= *f.MaxDefense })
	}
	if f.MaxWeight != nil {
		preds = append(preds, func(w content.Weapon) bool { return w.Weight <= *f.MaxWeight })
	}
	return preds
}

// List returns the weapons matching the filter, sorted by the filter's sort
// key. Numeric keys sort best-first; name sorts ascending.
func (s *Service) List(f Filter) ([]content.Weapon, error) {
	if err := s.store.Err(content.KindWeapons); err != nil {
		return nil, err
	}
	items := query.Filter(s.store.Weapons(), f.predicates()...)

	switch f.Sort {
	case "attack":
		items = query.SortBy(items, func(a, b content.Weapon) bool { return a.Attack > b.Attack })
	case "defense":
		items = query.SortBy(items, func(a, b content.Weapon) bool { return a.Defense > b.Defense })
	case "weight":
		items = query.SortBy(items, func(a, b content.Weapon) bool { return a.Weight < b.Weight })
	default:
		items = query.SortBy(items, func(a, b content.Weapon) bool { return a.Name < b.Name })
	}
	return items, nil
}

// Get returns a single weapon by id or slug.
func (s *Service) Get(idOrSlug string) (content.Weapon, error) {
	if err := s.store.Err(content.KindWeapons); err != nil {
		return content.Weapon{}, err
	}
	for _, w := range s.store.Weapons() {
		if w.ID == idOrSlug || w.Slug == idOrSlug {
			return w, nil
		}
	}
	return content.Weapon{}, fmt.Errorf("%w: weapon %q", content.ErrNotFound, idOrSlug)
}

// Types returns the distinct weapon types, sorted.
func (s *Service) Types() ([]string, error) {
	if err := s.store.Err(content.KindWeapons); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var types []string
	for _, w := range s.store.Weapons() {
		if !seen[w.Type] && w.Type != "" {
			seen[w.Type] = true
			types = append(types, w.Type)
		}
	}
	sort.Strings(types)
	return types, nil
}
