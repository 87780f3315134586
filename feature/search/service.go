package search

import (
	"sort"
	"strings"

	"github.com/Kappa-h/fibulopedia/core/content"
	"github.com/Kappa-h/fibulopedia/core/query"

	"go.uber.org/zap"
)

const (
	// MaxResults caps the result list of a single search.
	MaxResults = 100
	// SnippetLength is the maximum length of a result snippet.
	SnippetLength = 150
)

// Relevance tiers. Name matches always outrank secondary-field matches.
const (
	scoreExactName = 100
	scorePrefix    = 80
	scoreWord      = 60
	scoreSubstring = 40
	scoreSecondary = 20
)

// Result is one search hit, tagged with its source entity type.
type Result struct {
	EntityType string `json:"entity_type"`
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	Snippet    string `json:"snippet,omitempty"`
	Score      int    `json:"score"`
}

// typePriority is the tie-break order between entity types with equal
// scores. It follows the wiki's navigation order.
var typePriority = map[string]int{
	"weapon":    0,
	"equipment": 1,
	"spell":     2,
	"monster":   3,
	"quest":     4,
}

// Service answers free-text queries across all content collections.
type Service struct {
	store  *content.Store
	logger *zap.Logger
}

// NewService creates a new search service.
func NewService(store *content.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Search returns the ranked matches for q across every collection. An empty
// or whitespace-only query returns no results.
func (s *Service) Search(q string) []Result {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}

	var results []Result
	results = append(results, s.searchWeapons(q)...)
	results = append(results, s.searchEquipment(q)...)
	results = append(results, s.searchSpells(q)...)
	results = append(results, s.searchMonsters(q)...)
	results = append(results, s.searchQuests(q)...)

	rank(results)
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	s.logger.Info("Search completed", zap.String("query", q), zap.Int("results", len(results)))
	return results
}

// SearchType returns the ranked matches for q within a single entity type.
// An unknown type yields no results, matching the behavior of an empty
// collection rather than an error.
func (s *Service) SearchType(q, entityType string) []Result {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}

	var results []Result
	switch entityType {
	case "weapon", "weapons":
		results = s.searchWeapons(q)
	case "equipment":
		results = s.searchEquipment(q)
	case "spell", "spells":
		results = s.searchSpells(q)
	case "monster", "monsters":
		results = s.searchMonsters(q)
	case "quest", "quests":
		results = s.searchQuests(q)
	}

	rank(results)
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

func rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if pa, pb := typePriority[a.EntityType], typePriority[b.EntityType]; pa != pb {
			return pa < pb
		}
		return a.Name < b.Name
	})
}

// scoreName rates how well the query matches a record name. Zero means no
// name match.
func scoreName(name, q string) int {
	lname, lq := strings.ToLower(name), strings.ToLower(q)
	switch {
	case lname == lq:
		return scoreExactName
	case strings.HasPrefix(lname, lq):
		return scorePrefix
	case wordMatch(lname, lq):
		return scoreWord
	case strings.Contains(lname, lq):
		return scoreSubstring
	default:
		return 0
	}
}

// wordMatch reports whether q matches a whole word or a word prefix inside
// text. Both arguments must already be lowercase.
func wordMatch(text, q string) bool {
	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '-' || r == '\''
	}) {
		if strings.HasPrefix(word, q) {
			return true
		}
	}
	return false
}

// match builds a result for one record, or nothing if neither the name nor
// any secondary field contains the query.
func match(entityType, id, slug, name, q string, secondary ...string) (Result, bool) {
	if score := scoreName(name, q); score > 0 {
		snippet := ""
		if len(secondary) > 0 {
			snippet = Snippet(secondary[0], q, SnippetLength)
		}
		return Result{EntityType: entityType, ID: id, Slug: slug, Name: name, Snippet: snippet, Score: score}, true
	}
	for _, field := range secondary {
		if field != "" && query.ContainsFold(field, q) {
			return Result{
				EntityType: entityType,
				ID:         id,
				Slug:       slug,
				Name:       name,
				Snippet:    Snippet(field, q, SnippetLength),
				Score:      scoreSecondary,
			}, true
		}
	}
	return Result{}, false
}

func (s *Service) searchWeapons(q string) []Result {
	var results []Result
	for _, w := range s.store.Weapons() {
		if r, ok := match("weapon", w.ID, w.Slug, w.Name, q, w.Description, w.Type, strings.Join(w.DroppedBy, ", ")); ok {
			results = append(results, r)
		}
	}
	return results
}

func (s *Service) searchEquipment(q string) []Result {
	var results []Result
	for _, e := range s.store.Equipment() {
		if r, ok := match("equipment", e.ID, e.Slug, e.Name, q, e.Description, e.Slot, strings.Join(e.DroppedBy, ", ")); ok {
			results = append(results, r)
		}
	}
	return results
}

func (s *Service) searchSpells(q string) []Result {
	var results []Result
	for _, sp := range s.store.Spells() {
		if r, ok := match("spell", sp.ID, sp.Slug, sp.Name, q, sp.Effect, sp.Incantation, sp.Vocation); ok {
			results = append(results, r)
		}
	}
	return results
}

func (s *Service) searchMonsters(q string) []Result {
	var results []Result
	for _, m := range s.store.Monsters() {
		if r, ok := match("monster", m.ID, m.Slug, m.Name, q, m.Loot, m.Location); ok {
			results = append(results, r)
		}
	}
	return results
}

func (s *Service) searchQuests(q string) []Result {
	var results []Result
	for _, qu := range s.store.Quests() {
		if r, ok := match("quest", qu.ID, qu.Slug, qu.Name, q, qu.Description, qu.Location, qu.Reward); ok {
			results = append(results, r)
		}
	}
	return results
}
