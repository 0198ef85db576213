package persist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/OogleOG/MEUI/internal/field"
	"github.com/OogleOG/MEUI/internal/logger"
	"github.com/OogleOG/MEUI/pkg/errors"
)

// Identity derives the filesystem-safe script identifier from a window
// title: whitespace runs are removed outright and the rest is lower-cased.
// The same identifier namespaces widget IDs, so it must be unique per
// concurrently open window.
func Identity(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}

// DefaultRoot returns the conventional config directory. Falls back to the
// working directory when the user config dir is unavailable.
func DefaultRoot() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "meui"
	}
	return filepath.Join(base, "meui")
}

// Store reads and writes per-identity configuration documents. Persistence
// is strictly best-effort: in-memory state is the source of truth and no
// failure here ever reaches the caller. The mutex keeps saves for one store
// from interleaving if the host saves between frames.
type Store struct {
	root string
	mu   sync.Mutex
	log  *logger.Logger
}

// NewStore creates a store rooted at dir. An empty dir selects DefaultRoot.
func NewStore(dir string, log *logger.Logger) *Store {
	if dir == "" {
		dir = DefaultRoot()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{root: dir, log: log}
}

// Path returns the config file path for an identity.
func (s *Store) Path(identity string) string {
	return filepath.Join(s.root, identity+".config.json")
}

// Save projects the registry's configuration map down to the keys its field
// list declares and writes it as JSON. Every failure is swallowed and
// logged at debug.
func (s *Store) Save(identity string, reg *field.Registry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := make(map[string]any)
	for key, v := range reg.Snapshot() {
		doc[key] = v.Interface()
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.soft(errors.NewPersistError("marshal", identity, err))
		return
	}

	// Creation failure is non-fatal; the directory may already exist.
	if err := os.MkdirAll(s.root, 0755); err != nil {
		s.soft(errors.NewPersistError("mkdir", identity, err))
	}

	path := s.Path(identity)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		s.soft(errors.NewPersistError("write", identity, err))
		return
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		s.soft(errors.NewPersistError("rename", identity, err))
	}
}

// Load merges a previously saved document into the registry. A missing,
// empty or unparsable file leaves the registry untouched. Each keyed field
// takes the saved value only when its JSON type matches the field's declared
// default type; anything else keeps the in-memory default.
func (s *Store) Load(identity string, reg *field.Registry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path(identity))
	if err != nil {
		if !os.IsNotExist(err) {
			s.soft(errors.NewPersistError("read", identity, err))
		}
		return
	}
	if len(data) == 0 {
		return
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		s.soft(errors.NewPersistError("parse", identity, err))
		return
	}

	for _, f := range reg.KeyedFields() {
		raw, present := doc[f.FieldKey()]
		if !present {
			continue
		}
		v, ok := field.CoerceJSON(f.DefaultValue().Kind(), raw)
		if !ok {
			s.log.WithFields(map[string]any{
				"identity": identity,
				"key":      f.FieldKey(),
				"expected": f.DefaultValue().Kind().String(),
			}).Debug("saved value has wrong type, keeping default")
			continue
		}
		reg.Set(f.FieldKey(), v)
	}
}

func (s *Store) soft(err error) {
	s.log.Error(err, "config persistence failed, continuing")
}
