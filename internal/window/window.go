package window

import (
	"github.com/OogleOG/MEUI/internal/field"
	"github.com/OogleOG/MEUI/internal/logger"
	"github.com/OogleOG/MEUI/internal/persist"
	"github.com/OogleOG/MEUI/internal/render"
	"github.com/OogleOG/MEUI/internal/session"
	"github.com/OogleOG/MEUI/internal/theme"
)

// InfoRenderer fully replaces the default info view body. Panics are
// recovered at the render boundary and shown inline.
type InfoRenderer func(snap Snapshot, palette theme.Palette, helpers *render.Helpers) string

// Window owns one script's configuration fields, session state, palette
// and persistence identity. It renders nothing itself; a render adapter
// reads it each frame and writes user actions back into it.
type Window struct {
	title    string
	identity string

	palette     theme.Palette
	stateColors *theme.StateColors

	registry *field.Registry
	state    *session.State
	store    *persist.Store

	infoRenderer InfoRenderer
	log          *logger.Logger
}

// Option customizes window construction.
type Option func(*settings)

type settings struct {
	palette    *theme.Palette
	configRoot string
	log        *logger.Logger
	renderer   InfoRenderer
}

// WithPalette supplies a custom palette instead of a built-in theme. The
// theme name passed to New is ignored when this option is present.
func WithPalette(p theme.Palette) Option {
	return func(s *settings) { s.palette = &p }
}

// WithConfigRoot overrides the directory config files are stored under.
func WithConfigRoot(dir string) Option {
	return func(s *settings) { s.configRoot = dir }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log *logger.Logger) Option {
	return func(s *settings) { s.log = log }
}

// WithInfoRenderer installs a caller-supplied info view.
func WithInfoRenderer(r InfoRenderer) Option {
	return func(s *settings) { s.renderer = r }
}

// New constructs a window for the given title. An unknown theme name is
// the one fatal construction error; everything downstream degrades softly.
func New(title, themeName string, opts ...Option) (*Window, error) {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	palette := theme.Palette{}
	if cfg.palette != nil {
		palette = *cfg.palette
	} else {
		named, err := theme.Named(themeName)
		if err != nil {
			return nil, err
		}
		palette = named
	}

	log := cfg.log
	if log == nil {
		log = logger.Nop()
	}

	identity := persist.Identity(title)
	w := &Window{
		title:        title,
		identity:     identity,
		palette:      palette,
		stateColors:  theme.NewStateColors(),
		registry:     field.NewRegistry(log),
		store:        persist.NewStore(cfg.configRoot, log),
		infoRenderer: cfg.renderer,
		log:          log.WithFields(map[string]any{"window": identity}),
	}
	w.state = session.NewState(func() {
		w.store.Save(w.identity, w.registry)
	})

	w.log.Debug("window constructed")
	return w, nil
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Identity returns the derived filesystem-safe identifier, which also
// namespaces widget IDs.
func (w *Window) Identity() string { return w.identity }

// Palette returns the window's immutable palette.
func (w *Window) Palette() theme.Palette { return w.palette }

// StateColors returns the extensible state color table.
func (w *Window) StateColors() *theme.StateColors { return w.stateColors }

// Registry exposes the field registry.
func (w *Window) Registry() *field.Registry { return w.registry }

// State exposes the session state machine.
func (w *Window) State() *session.State { return w.state }

// InfoRenderer returns the custom info renderer, or nil for the default.
func (w *Window) InfoRenderer() InfoRenderer { return w.infoRenderer }

// Section declares a titled field group.
func (w *Window) Section(label, desc string) error {
	return w.registry.Register(field.Section{Label: label, Desc: desc})
}

// Separator declares a horizontal rule.
func (w *Window) Separator() error {
	return w.registry.Register(field.Separator{})
}

// Spacing declares a vertical gap.
func (w *Window) Spacing() error {
	return w.registry.Register(field.Spacing{})
}

// Checkbox declares a boolean toggle field.
func (w *Window) Checkbox(key, label string, def bool, desc string) error {
	return w.registry.Register(field.Checkbox{Key: key, Label: label, Default: def, Desc: desc})
}

// Slider declares a bounded integer field.
func (w *Window) Slider(key, label string, def, min, max int, format, desc string) error {
	return w.registry.Register(field.Slider{Key: key, Label: label, Default: def, Min: min, Max: max, Format: format, Desc: desc})
}

// Combo declares an option-list field; def is a 0-based index.
func (w *Window) Combo(key, label string, def int, options []string, desc string) error {
	return w.registry.Register(field.Combo{Key: key, Label: label, Default: def, Options: options, Desc: desc})
}

// Input declares a bounded free-text field.
func (w *Window) Input(key, label, def, desc string, maxLen int) error {
	return w.registry.Register(field.Input{Key: key, Label: label, Default: def, Desc: desc, MaxLen: maxLen})
}

// LoadConfig merges the previously saved document into the registry.
// Missing or untrusted data leaves defaults in place; never fails.
func (w *Window) LoadConfig() {
	w.store.Load(w.identity, w.registry)
}

// SaveConfig writes the current configuration best-effort. Start also
// saves automatically through the session hook.
func (w *Window) SaveConfig() {
	w.store.Save(w.identity, w.registry)
}

// Warn appends to the session warning log.
func (w *Window) Warn(msg string) {
	w.state.Warnings().Push(msg)
}

// Warnings returns a copy of the live warning messages.
func (w *Window) Warnings() []string {
	return w.state.Warnings().Messages()
}
