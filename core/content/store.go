package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Config holds configuration for the content store.
type Config struct {
	// Dir is the directory containing the content JSON files.
	// When empty, the embedded default content set is used.
	Dir string `mapstructure:"dir" default:""`
}

var (
	// ErrMissing reports an absent content file.
	ErrMissing = errors.New("content file missing")
	// ErrMalformed reports a content file that failed to decode or validate.
	ErrMalformed = errors.New("content file malformed")
	// ErrUnavailable reports a collection whose load failed earlier.
	ErrUnavailable = errors.New("collection unavailable")
	// ErrNotFound reports a lookup for a record that does not exist.
	ErrNotFound = errors.New("record not found")
)

// Store owns the in-memory content collections. It is built once at startup
// and immutable afterwards; services receive it by injection.
type Store struct {
	weapons   []Weapon
	equipment []Equipment
	spells    []Spell
	monsters  []Monster
	quests    []Quest
	info      *ServerInfo

	// loadErrs records per-collection load failures. A broken file makes
	// that collection unavailable for the process lifetime, nothing more.
	loadErrs map[Kind]error
}

// Load builds a Store from the JSON files in dir.
func Load(dir string, logger *zap.Logger) *Store {
	return LoadFS(os.DirFS(dir), logger)
}

// LoadFS builds a Store from the content files in fsys. Each collection
// loads independently; a missing or malformed file marks only that
// collection as unavailable.
func LoadFS(fsys fs.FS, logger *zap.Logger) *Store {
	s := &Store{loadErrs: make(map[Kind]error)}

	s.weapons = loadCollection(fsys, s, KindWeapons, validateWeapon, func(w *Weapon) { w.Slug = Slugify(w.Name) })
	s.equipment = loadCollection(fsys, s, KindEquipment, validateEquipment, func(e *Equipment) { e.Slug = Slugify(e.Name) })
	s.spells = loadCollection(fsys, s, KindSpells, validateSpell, func(sp *Spell) { sp.Slug = Slugify(sp.Name) })
	s.monsters = loadCollection(fsys, s, KindMonsters, validateMonster, func(m *Monster) { m.Slug = Slugify(m.Name) })
	s.quests = loadCollection(fsys, s, KindQuests, validateQuest, func(q *Quest) { q.Slug = Slugify(q.Name) })
	s.info = loadServerInfo(fsys, s)

	for _, kind := range Kinds {
		if err := s.loadErrs[kind]; err != nil {
			logger.Warn("Collection failed to load", zap.String("collection", string(kind)), zap.Error(err))
		}
	}
	logger.Info("Content store loaded",
		zap.Int("weapons", len(s.weapons)),
		zap.Int("equipment", len(s.equipment)),
		zap.Int("spells", len(s.spells)),
		zap.Int("monsters", len(s.monsters)),
		zap.Int("quests", len(s.quests)),
		zap.Int("failed", len(s.loadErrs)),
	)
	return s
}

func readFile(fsys fs.FS, kind Kind) ([]byte, error) {
	name := string(kind) + ".json"
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, name)
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// loadCollection decodes and validates one array-shaped content file.
// A single invalid record fails the whole collection: partial content is
// worse than an explicit error on the affected page.
func loadCollection[T any](fsys fs.FS, s *Store, kind Kind, validate func(int, T) error, finish func(*T)) []T {
	data, err := readFile(fsys, kind)
	if err != nil {
		s.loadErrs[kind] = err
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.loadErrs[kind] = fmt.Errorf("%w: %s.json: %v", ErrMalformed, kind, err)
		return nil
	}
	for i := range records {
		if err := validate(i, records[i]); err != nil {
			s.loadErrs[kind] = fmt.Errorf("%w: %s.json: %v", ErrMalformed, kind, err)
			return nil
		}
		finish(&records[i])
	}
	return records
}

func loadServerInfo(fsys fs.FS, s *Store) *ServerInfo {
	data, err := readFile(fsys, KindServerInfo)
	if err != nil {
		s.loadErrs[KindServerInfo] = err
		return nil
	}
	var info ServerInfo
	if err := json.Unmarshal(data, &info); err != nil {
		s.loadErrs[KindServerInfo] = fmt.Errorf("%w: server_info.json: %v", ErrMalformed, err)
		return nil
	}
	if info.Name == "" {
		s.loadErrs[KindServerInfo] = fmt.Errorf("%w: server_info.json: missing name", ErrMalformed)
		return nil
	}
	return &info
}

func validateWeapon(i int, w Weapon) error {
	if w.ID == "" || w.Name == "" {
		return fmt.Errorf("weapon %d: missing id or name", i)
	}
	if w.Attack < 0 || w.Defense < 0 || w.Weight < 0 {
		return fmt.Errorf("weapon %q: negative stat", w.ID)
	}
	return nil
}

func validateEquipment(i int, e Equipment) error {
	if e.ID == "" || e.Name == "" || e.Slot == "" {
		return fmt.Errorf("equipment %d: missing id, name or slot", i)
	}
	if e.Armor < 0 || e.Weight < 0 {
		return fmt.Errorf("equipment %q: negative stat", e.ID)
	}
	return nil
}

func validateSpell(i int, sp Spell) error {
	if sp.ID == "" || sp.Name == "" || sp.Incantation == "" {
		return fmt.Errorf("spell %d: missing id, name or incantation", i)
	}
	if sp.Level < 0 || sp.Mana < 0 {
		return fmt.Errorf("spell %q: negative stat", sp.ID)
	}
	return nil
}

func validateMonster(i int, m Monster) error {
	if m.ID == "" || m.Name == "" {
		return fmt.Errorf("monster %d: missing id or name", i)
	}
	if m.HP < 1 {
		return fmt.Errorf("monster %q: hp must be positive", m.ID)
	}
	if m.Exp < 0 {
		return fmt.Errorf("monster %q: negative exp", m.ID)
	}
	return nil
}

func validateQuest(i int, q Quest) error {
	if q.ID == "" || q.Name == "" {
		return fmt.Errorf("quest %d: missing id or name", i)
	}
	return nil
}

// Err returns the load error for kind, or nil if the collection loaded.
func (s *Store) Err(kind Kind) error {
	return s.loadErrs[kind]
}

// Weapons returns a copy of the weapons collection in file order.
func (s *Store) Weapons() []Weapon {
	return append([]Weapon(nil), s.weapons...)
}

// Equipment returns a copy of the equipment collection in file order.
func (s *Store) Equipment() []Equipment {
	return append([]Equipment(nil), s.equipment...)
}

// Spells returns a copy of the spells collection in file order.
func (s *Store) Spells() []Spell {
	return append([]Spell(nil), s.spells...)
}

// Monsters returns a copy of the monsters collection in file order.
func (s *Store) Monsters() []Monster {
	return append([]Monster(nil), s.monsters...)
}

// Quests returns a copy of the quests collection in file order.
func (s *Store) Quests() []Quest {
	return append([]Quest(nil), s.quests...)
}

// ServerInfo returns the server info document, or an error if its file
// failed to load.
func (s *Store) ServerInfo() (ServerInfo, error) {
	if s.info == nil {
		if err := s.loadErrs[KindServerInfo]; err != nil {
			return ServerInfo{}, err
		}
		return ServerInfo{}, fmt.Errorf("%w: %s", ErrUnavailable, KindServerInfo)
	}
	return *s.info, nil
}
