package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OogleOG/MEUI/internal/field"
	"github.com/OogleOG/MEUI/internal/render"
	"github.com/OogleOG/MEUI/internal/session"
	"github.com/OogleOG/MEUI/internal/window"
)

// SnapshotProvider supplies the runtime snapshot for a frame. Hosts that
// push snapshots with program.Send(SnapshotMsg{...}) can leave it nil.
type SnapshotProvider func() window.Snapshot

// focusKind distinguishes what the config-view cursor is resting on.
type focusKind int

const (
	focusField focusKind = iota
	focusStart
	focusCancel
)

// focusTarget is one stop in the config view's cursor order: a keyed field
// index or one of the action buttons.
type focusTarget struct {
	kind       focusKind
	fieldIndex int
}

// Model is the bubbletea render adapter over a Window. It owns only
// presentation state; every durable mutation goes through the window's
// registry and session.
type Model struct {
	win      *window.Window
	provider SnapshotProvider
	snapshot window.Snapshot

	activeTab session.Tab
	cursor    int
	targets   []focusTarget

	editing bool
	input   textinput.Model

	helpers    *render.Helpers
	styles     styles
	bossHealth progress.Model

	width  int
	height int
}

// NewModel constructs the adapter for a window.
func NewModel(win *window.Window, provider SnapshotProvider) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = 32

	palette := win.Palette()
	bar := progress.New(
		progress.WithSolidFill(string(palette.Bright.ToLipgloss())),
		progress.WithoutPercentage(),
	)
	bar.Width = 24

	m := Model{
		win:        win,
		provider:   provider,
		activeTab:  session.TabConfig,
		input:      ti,
		helpers:    render.NewHelpers(palette),
		styles:     newStyles(palette),
		bossHealth: bar,
		width:      80,
		height:     24,
	}
	m.rebuildTargets()
	return m
}

// Init schedules the first frame tick.
func (m Model) Init() tea.Cmd {
	return frameTickCmd()
}

// Window exposes the underlying window, for hosts inspecting final state
// after the program exits.
func (m Model) Window() *window.Window {
	return m.win
}

// Open reports whether the window is still open: the boolean the host loop
// contract expects back from each draw.
func (m Model) Open() bool {
	return m.win.State().Open()
}

// rebuildTargets recomputes the cursor order: keyed fields in registration
// order, then Start, then Cancel.
func (m *Model) rebuildTargets() {
	m.targets = m.targets[:0]
	for i, f := range m.win.Registry().Fields() {
		if _, ok := f.(field.Keyed); ok {
			m.targets = append(m.targets, focusTarget{kind: focusField, fieldIndex: i})
		}
	}
	m.targets = append(m.targets,
		focusTarget{kind: focusStart},
		focusTarget{kind: focusCancel},
	)
	if m.cursor >= len(m.targets) {
		m.cursor = len(m.targets) - 1
	}
}

// current returns the focus target under the cursor.
func (m *Model) current() focusTarget {
	if m.cursor < 0 || m.cursor >= len(m.targets) {
		return focusTarget{kind: focusStart}
	}
	return m.targets[m.cursor]
}

// currentField returns the keyed field under the cursor, if any.
func (m *Model) currentField() (field.Keyed, bool) {
	t := m.current()
	if t.kind != focusField {
		return nil, false
	}
	f, ok := m.win.Registry().Fields()[t.fieldIndex].(field.Keyed)
	return f, ok
}

// availableTabs lists the tabs offered this frame: Config always, Info only
// while started, Warnings only while the log is non-empty.
func (m *Model) availableTabs() []session.Tab {
	tabs := []session.Tab{session.TabConfig}
	if m.win.State().Started() {
		tabs = append(tabs, session.TabInfo)
	}
	if m.win.State().Warnings().Len() > 0 {
		tabs = append(tabs, session.TabWarnings)
	}
	return tabs
}

// tabAvailable reports whether a tab is offered this frame.
func (m *Model) tabAvailable(tab session.Tab) bool {
	for _, t := range m.availableTabs() {
		if t == tab {
			return true
		}
	}
	return false
}
