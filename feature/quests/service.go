package quests

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
	// Query substring-matches name, location and reward, case-insensitive.
	Query string
	// Location is an exact quest location match.
	Location string
	// Sort is one of name, location. Unknown keys fall back to name.
	Sort string
}

// Service answers quest queries over the content store.
type Service struct {
	store  *content.Store
	logger *zap.Logger
}

// NewService creates a new quests service.
func NewService(store *content.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (f Filter) predicates() []func(content.Quest) bool {
	var preds []func(content.Quest) bool
	if q := strings.TrimSpace(f.Query); q != "" {
		preds = append(preds, func(qu content.Quest) bool {
			return query.ContainsFold(qu.Name, q) ||
				query.ContainsFold(qu.Location, q) ||
				query.ContainsFold(qu.Reward, q)
		})
	}
	if f.Location != "" {
		preds = append(preds, func(qu content.Quest) bool { return strings.EqualFold(qu.Location, f.Location) })
	}
	return preds
}

// List returns the quests matching the filter, sorted by the filter's sort key.
func (s *Service) List(f Filter) ([]content.Quest, error) {
	if err := s.store.Err(content.KindQuests); err != nil {
		return nil, err
	}
	items := query.Filter(s.store.Quests(), f.predicates()...)

	switch f.Sort {
	case "location":
		items = query.SortBy(items, func(a, b content.Quest) bool { return a.Location < b.Location })
	default:
		items = query.SortBy(items, func(a, b content.Quest) bool { return a.Name < b.Name })
	}
	return items, nil
}

// Get returns a single quest by id or slug.
func (s *Service) Get(idOrSlug string) (content.Quest, error) {
	if err := s.store.Err(content.KindQuests); err != nil {
		return content.Quest{}, err
	}
	for _, q := range s.store.Quests() {
		if q.ID == idOrSlug || q.Slug == idOrSlug {
			return q, nil
		}
	}
	return content.Quest{}, fmt.Errorf("%w: quest %q", content.ErrNotFound, idOrSlug)
}

// Locations returns the distinct quest locations, sorted.
func (s *Service) Locations() ([]string, error) {
	if err := s.store.Err(content.KindQuests); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var locations []string
	for _, q := range s.store.Quests() {
		if !seen[q.Location] && q.Location != "" {
			seen[q.Location] = true
			locations = append(locations, q.Location)
		}
	}
	sort.Strings(locations)
	return locations, nil
}
