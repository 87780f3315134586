package integrity

import (
	"strings"
	"time"

	"github.com/Kappa-h/fibulopedia/core/content"
	"github.com/Kappa-h/fibulopedia/core/query"

	"go.uber.org/zap"
)

// DanglingRef reports a record referencing a monster that does not exist in
// the monsters collection.
type DanglingRef struct {
	EntityType string   `json:"entity_type"`
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Missing    []string `json:"missing"`
}

// LootMismatch reports an item whose dropper does not list it as loot. The
// loot field is free text, so these are warnings, not errors.
type LootMismatch struct {
	EntityType string `json:"entity_type"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Monster    string `json:"monster"`
}

// Report is the combined result of all content validation checks.
type Report struct {
	FileErrors   map[string]string `json:"file_errors,omitempty"`
	DanglingRefs []DanglingRef     `json:"dangling_refs,omitempty"`
	LootWarnings []LootMismatch    `json:"loot_warnings,omitempty"`
	Checked      int               `json:"checked"`
	Clean        bool              `json:"clean"`
	GeneratedAt  string            `json:"generated_at"`
}

// Service validates cross-references between content collections.
type Service struct {
	store  *content.Store
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(store *content.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CheckFiles returns the per-collection load errors, keyed by collection name.
func (s *Service) CheckFiles() map[string]string {
	errs := make(map[string]string)
	for _, kind := range content.Kinds {
		if err := s.store.Err(kind); err != nil {
			errs[string(kind)] = err.Error()
		}
	}
	return errs
}

// CheckDroppedBy verifies that every dropped_by entry on weapons and
// equipment names an existing monster.
func (s *Service) CheckDroppedBy() []DanglingRef {
	known := s.monsterNames()

	var refs []DanglingRef
	for _, w := range s.store.Weapons() {
		if missing := missingNames(w.DroppedBy, known); len(missing) > 0 {
			refs = append(refs, DanglingRef{EntityType: "weapon", ID: w.ID, Name: w.Name, Missing: missing})
		}
	}
	for _, e := range s.store.Equipment() {
		if missing := missingNames(e.DroppedBy, known); len(missing) > 0 {
			refs = append(refs, DanglingRef{EntityType: "equipment", ID: e.ID, Name: e.Name, Missing: missing})
		}
	}
	return refs
}

// CheckLoot cross-checks the opposite direction: an item listing monster M
// in dropped_by should appear in M's loot text. Loot is free text, so a
// miss is a warning only.
func (s *Service) CheckLoot() []LootMismatch {
	lootByMonster := make(map[string]string)
	for _, m := range s.store.Monsters() {
		lootByMonster[strings.ToLower(m.Name)] = m.Loot
	}

	var warnings []LootMismatch
	for _, w := range s.store.Weapons() {
		for _, dropper := range w.DroppedBy {
			loot, ok := lootByMonster[strings.ToLower(dropper)]
			if ok && !query.ContainsFold(loot, w.Name) {
				warnings = append(warnings, LootMismatch{EntityType: "weapon", ID: w.ID, Name: w.Name, Monster: dropper})
			}
		}
	}
	for _, e := range s.store.Equipment() {
		for _, dropper := range e.DroppedBy {
			loot, ok := lootByMonster[strings.ToLower(dropper)]
			if ok && !query.ContainsFold(loot, e.Name) {
				warnings = append(warnings, LootMismatch{EntityType: "equipment", ID: e.ID, Name: e.Name, Monster: dropper})
			}
		}
	}
	return warnings
}

// Check runs every validation and builds the combined report.
func (s *Service) Check() *Report {
	report := &Report{
		FileErrors:   s.CheckFiles(),
		DanglingRefs: s.CheckDroppedBy(),
		LootWarnings: s.CheckLoot(),
		Checked:      len(s.store.Weapons()) + len(s.store.Equipment()) + len(s.store.Monsters()),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	report.Clean = len(report.FileErrors) == 0 && len(report.DanglingRefs) == 0
	s.logger.Info("Content validation completed",
		zap.Int("checked", report.Checked),
		zap.Int("file_errors", len(report.FileErrors)),
		zap.Int("dangling_refs", len(report.DanglingRefs)),
		zap.Int("loot_warnings", len(report.LootWarnings)),
	)
	return report
}

func (s *Service) monsterNames() map[string]bool {
	known := make(map[string]bool)
	for _, m := range s.store.Monsters() {
		known[strings.ToLower(m.Name)] = true
	}
	return known
}

func missingNames(names []string, known map[string]bool) []string {
	var missing []string
	for _, name := range names {
		if !known[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing
}
