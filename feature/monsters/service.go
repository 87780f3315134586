package monsters

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
	// Query substring-matches name, location and loot, case-insensitive.
	Query string
	// Location is a case-insensitive substring match against the monster's
	// location field. Locations are free text and often list several spots.
	Location string
	MinHP    *int
	MaxHP    *int
	MinExp   *int
	MaxExp   *int
	// Sort is one of name, hp, exp, location. Unknown keys fall back to name.
	Sort string
}

// Service answers monster queries over the content store.
type Service struct {
	store  *content.Store
	logger *zap.Logger
}

// NewService creates a new monsters service.
func NewService(store *content.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (f Filter) predicates() []func(content.Monster) bool {
	var preds []func(content.Monster) bool
	if q := strings.TrimSpace(f.Query); q != "" {
		preds = append(preds, func(m content.Monster) bool {
			return query.ContainsFold(m.Name, q) ||
				query.ContainsFold(m.Location, q) ||
				query.ContainsFold(m.Loot, q)
		})
	}
	if f.Location != "" {
		preds = append(preds, func(m content.Monster) bool { return query.ContainsFold(m.Location, f.Location) })
	}
	if f.MinHP != nil {
		preds = append(preds, func(m content.Monster) bool { return m.HP >= *f.MinHP })
	}
	if f.MaxHP != nil {
		preds = append(preds, func(m content.Monster) bool { return m.HP <= *f.MaxHP })
	}
	if f.MinExp != nil {
		preds = append(preds, func(m content.Monster) bool { return m.Exp >= *f.MinExp })
	}
	if f.MaxExp != nil {
		preds = append(preds, func(m content.Monster) bool { return m.Exp <= *f.MaxExp })
	}
	return preds
}

// List returns the monsters matching the filter, sorted by the filter's
// sort key. HP and exp sort strongest-first.
func (s *Service) List(f Filter) ([]content.Monster, error) {
	if err := s.store.Err(content.KindMonsters); err != nil {
		return nil, err
	}
	items := query.Filter(s.store.Monsters(), f.predicates()...)

	switch f.Sort {
	case "hp":
		items = query.SortBy(items, func(a, b content.Monster) bool { return a.HP > b.HP })
	case "exp":
		items = query.SortBy(items, func(a, b content.Monster) bool { return a.Exp > b.Exp })
	case "location":
		items = query.SortBy(items, func(a, b content.Monster) bool { return a.Location < b.Location })
	default:
		items = query.SortBy(items, func(a, b content.Monster) bool { return a.Name < b.Name })
	}
	return items, nil
}

// Get returns a single monster by id or slug.
func (s *Service) Get(idOrSlug string) (content.Monster, error) {
	if err := s.store.Err(content.KindMonsters); err != nil {
		return content.Monster{}, err
	}
	for _, m := range s.store.Monsters() {
		if m.ID == idOrSlug || m.Slug == idOrSlug {
			return m, nil
		}
	}
	return content.Monster{}, fmt.Errorf("%w: monster %q", content.ErrNotFound, idOrSlug)
}

// Locations returns the distinct location strings, sorted.
func (s *Service) Locations() ([]string, error) {
	if err := s.store.Err(content.KindMonsters); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var locations []string
	for _, m := range s.store.Monsters() {
		if !seen[m.Location] && m.Location != "" {
			seen[m.Location] = true
			locations = append(locations, m.Location)
		}
	}
	sort.Strings(locations)
	return locations, nil
}
