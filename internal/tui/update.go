package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OogleOG/MEUI/internal/field"
	"github.com/OogleOG/MEUI/internal/session"
)

// Update handles Bubbletea messages and drives the session state machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// One-shot tab requests from the session are consumed here, once per
	// pass; an unread request would be lost only if no Update ever ran.
	if tab, ok := m.win.State().TakeTabRequest(); ok && m.tabAvailable(tab) {
		m.activeTab = tab
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FrameTickMsg:
		if m.provider != nil {
			m.snapshot = m.provider()
		}
		m.rebuildTargets()
		return m, frameTickCmd()

	case SnapshotMsg:
		m.snapshot = msg.Snapshot
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.win.State().Close()
		return m, tea.Quit

	case "tab":
		m.activeTab = m.nextTab()
		return m, nil
	}

	switch m.activeTab {
	case session.TabConfig:
		return m.handleConfigKey(msg)
	case session.TabInfo:
		return m.handleRunningKey(msg)
	case session.TabWarnings:
		return m.handleWarningsKey(msg)
	}
	return m, nil
}

// handleConfigKey covers both the editable config form (before start) and
// the condensed running view shown on the same tab after start.
func (m Model) handleConfigKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.win.State().Started() {
		return m.handleRunningKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.targets)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjustField(-1)
	case "right", "l":
		m.adjustField(1)
	case " ", "enter":
		return m.activate()
	}
	return m, nil
}

// adjustField steps a slider or cycles a combo; edits land in the registry
// immediately, with no staging.
func (m *Model) adjustField(delta int) {
	f, ok := m.currentField()
	if !ok {
		return
	}
	reg := m.win.Registry()

	switch fd := f.(type) {
	case field.Slider:
		v := reg.GetInt(fd.Key) + delta
		if v < fd.Min {
			v = fd.Min
		}
		if v > fd.Max {
			v = fd.Max
		}
		reg.Set(fd.Key, field.IntValue(v))
	case field.Combo:
		n := len(fd.Options)
		v := (reg.GetInt(fd.Key) + delta + n) % n
		reg.Set(fd.Key, field.IntValue(v))
	case field.Checkbox:
		reg.Set(fd.Key, field.BoolValue(!reg.GetBool(fd.Key)))
	}
}

// activate fires the focused target: toggle, edit, start or cancel.
func (m Model) activate() (tea.Model, tea.Cmd) {
	switch m.current().kind {
	case focusStart:
		m.win.State().Start()
		return m, nil

	case focusCancel:
		// Cancelled is terminal before start; nothing left to show.
		m.win.State().Cancel()
		m.win.State().Close()
		return m, tea.Quit

	case focusField:
		f, ok := m.currentField()
		if !ok {
			return m, nil
		}
		switch fd := f.(type) {
		case field.Checkbox:
			reg := m.win.Registry()
			reg.Set(fd.Key, field.BoolValue(!reg.GetBool(fd.Key)))
		case field.Input:
			m.editing = true
			m.input.CharLimit = fd.MaxLen
			m.input.SetValue(m.win.Registry().GetString(fd.Key))
			m.input.CursorEnd()
			m.input.Focus()
		}
	}
	return m, nil
}

// handleEditKey routes keys to the text input. Every keystroke writes back
// to the registry so edits are visible to Get the instant they occur.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if f, ok := m.currentField(); ok {
		if input, isInput := f.(field.Input); isInput {
			m.win.Registry().Set(input.Key, field.StringValue(m.input.Value()))
		}
	}
	return m, cmd
}

func (m Model) handleRunningKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.win.State()
	switch msg.String() {
	case "p":
		state.TogglePause()
	case "s":
		state.Stop()
	case "r":
		if state.StoppedFlag() {
			state.Reset()
			m.cursor = 0
		}
	}
	return m, nil
}

func (m Model) handleWarningsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "c" {
		m.win.State().Warnings().Clear()
		// The tab disappears with its content.
		m.activeTab = session.TabConfig
		if m.win.State().Started() {
			m.activeTab = session.TabInfo
		}
	}
	return m, nil
}

// nextTab cycles through the tabs offered this frame.
func (m *Model) nextTab() session.Tab {
	tabs := m.availableTabs()
	for i, t := range tabs {
		if t == m.activeTab {
			return tabs[(i+1)%len(tabs)]
		}
	}
	return tabs[0]
}
