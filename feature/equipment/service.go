package equipment

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
	// Query substring-matches name, slot and dropped_by, case-insensitive.
	Query string
	// Slot is an exact slot match (armor, helmet, legs, boots, shield).
	Slot      string
	MinArmor  *int
	MaxArmor  *int
	MaxWeight *float64
	// Sort is one of name, armor, weight. Unknown keys fall back to name.
	Sort string
}

// Service answers equipment queries over the content store.
type Service struct {
	store  *content.Store
	logger *zap.Logger
}

// NewService creates a new equipment service.
func NewService(store *content.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (f Filter) predicates() []func(content.Equipment) bool {
	var preds []func(content.Equipment) bool
	if q := strings.TrimSpace(f.Query); q != "" {
		preds = append(preds, func(e content.Equipment) bool {
			return query.ContainsFold(e.Name, q) ||
				query.ContainsFold(e.Slot, q) ||
				query.AnyContainsFold(e.DroppedBy, q)
		})
	}
	if f.Slot != "" {
		preds = append(preds, func(e content.Equipment) bool { return strings.EqualFold(e.Slot, f.Slot) })
	}
	if f.MinArmor != nil {
		preds = append(preds, func(e content.Equipment) bool { return e.Armor >= *f.MinArmor })
	}
	if f.MaxArmor != nil {
		preds = append(preds, func(e content.Equipment) bool { return e.Armor <= *f.MaxArmor })
	}
	if f.MaxWeight != nil {
		preds = append(preds, func(e content.Equipment) bool { return e.Weight <= *f.MaxWeight })
	}
	return preds
}

// List returns the equipment matching the filter, sorted by the filter's
// sort key.
func (s *Service) List(f Filter) ([]content.Equipment, error) {
	if err := s.store.Err(content.KindEquipment); err != nil {
		return nil, err
	}
	items := query.Filter(s.store.Equipment(), f.predicates()...)

	switch f.Sort {
	case "armor":
		items = query.SortBy(items, func(a, b content.Equipment) bool { return a.Armor > b.Armor })
	case "weight":
		items = query.SortBy(items, func(a, b content.Equipment) bool { return a.Weight < b.Weight })
	default:
		items = query.SortBy(items, func(a, b content.Equipment) bool { return a.Name < b.Name })
	}
	return items, nil
}

// Get returns a single equipment piece by id or slug.
func (s *Service) Get(idOrSlug string) (content.Equipment, error) {
	if err := s.store.Err(content.KindEquipment); err != nil {
		return content.Equipment{}, err
	}
	for _, e := range s.store.Equipment() {
		if e.ID == idOrSlug || e.Slug == idOrSlug {
			return e, nil
		}
	}
	return content.Equipment{}, fmt.Errorf("%w: equipment %q", content.ErrNotFound, idOrSlug)
}

// Slots returns the distinct equipment slots, sorted.
func (s *Service) Slots() ([]string, error) {
	if err := s.store.Err(content.KindEquipment); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var slots []string
	for _, e := range s.store.Equipment() {
		if !seen[e.Slot] && e.Slot != "" {
			seen[e.Slot] = true
			slots = append(slots, e.Slot)
		}
	}
	sort.Strings(slots)
	return slots, nil
}
