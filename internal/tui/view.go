package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OogleOG/MEUI/internal/field"
	"github.com/OogleOG/MEUI/internal/session"
	"github.com/OogleOG/MEUI/internal/window"
	"github.com/OogleOG/MEUI/pkg/errors"
)

// recentKillRows caps the recent-kill history shown on the info view.
const recentKillRows = 5

// View renders the active tab.
func (m Model) View() string {
	var sections []string
	sections = append(sections, m.renderHeader())

	switch m.activeTab {
	case session.TabInfo:
		sections = append(sections, m.renderInfoView())
	case session.TabWarnings:
		sections = append(sections, m.renderWarningsView())
	default:
		if m.win.State().Started() {
			sections = append(sections, m.renderRunningView())
		} else {
			sections = append(sections, m.renderConfigView())
		}
	}

	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the window title and the tab bar. The warning count
// is the live log length, recomputed each frame.
func (m Model) renderHeader() string {
	title := m.styles.title.Render(m.win.Title())

	var tabs []string
	for _, tab := range m.availableTabs() {
		label := ""
		switch tab {
		case session.TabConfig:
			label = "Config"
		case session.TabInfo:
			label = "Info"
		case session.TabWarnings:
			label = fmt.Sprintf("Warnings (%d)", m.win.State().Warnings().Len())
		}
		if tab == m.activeTab {
			tabs = append(tabs, m.styles.tabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.tabIdle.Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...))
}

// renderConfigView renders every field in registration order plus the
// Start and Cancel actions.
func (m Model) renderConfigView() string {
	var lines []string
	reg := m.win.Registry()

	for i, f := range reg.Fields() {
		selected := false
		if t := m.current(); t.kind == focusField && t.fieldIndex == i {
			selected = true
		}
		lines = append(lines, m.renderField(f, selected))
	}

	actions := lipgloss.JoinHorizontal(lipgloss.Center,
		m.helpers.Button("Start", m.current().kind == focusStart),
		" ",
		m.helpers.Button("Cancel", m.current().kind == focusCancel),
	)
	lines = append(lines, "", actions)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderField renders one descriptor per its variant.
func (m Model) renderField(f field.Field, selected bool) string {
	reg := m.win.Registry()

	var line string
	switch fd := f.(type) {
	case field.Section:
		header := m.styles.section.Render(fd.Label)
		if fd.Desc != "" {
			return lipgloss.JoinVertical(lipgloss.Left, header, m.styles.desc.Render(fd.Desc))
		}
		return header

	case field.Separator:
		return m.styles.separator.Render(strings.Repeat("─", 40))

	case field.Spacing:
		return ""

	case field.Checkbox:
		mark := "[ ]"
		if reg.GetBool(fd.Key) {
			mark = "[x]"
		}
		line = fmt.Sprintf("%s %s", mark, fd.Label)

	case field.Slider:
		line = fmt.Sprintf("%s  ◂ %s ▸  (%d–%d)", fd.Label, m.styles.value.Render(reg.Describe(fd)), fd.Min, fd.Max)

	case field.Combo:
		line = fmt.Sprintf("%s  ◂ %s ▸", fd.Label, m.styles.value.Render(reg.Describe(fd)))

	case field.Input:
		if m.editing && selected {
			line = fmt.Sprintf("%s  %s", fd.Label, m.input.View())
		} else {
			line = fmt.Sprintf("%s  %s", fd.Label, m.styles.value.Render(reg.GetString(fd.Key)))
		}
	}

	if keyed, ok := f.(field.Keyed); ok {
		if desc := fieldDesc(keyed); desc != "" && selected {
			line = lipgloss.JoinVertical(lipgloss.Left, line, m.styles.desc.Render(desc))
		}
	}

	if selected {
		return m.styles.selected.Render(line)
	}
	return m.styles.label.Render(line)
}

// renderRunningView renders the condensed summary shown on the Config tab
// once the session has started.
func (m Model) renderRunningView() string {
	state := m.win.State()

	phase := state.Phase().String()
	lines := []string{
		m.styles.section.Render("Session"),
		m.helpers.Row("Phase", phase),
	}

	reg := m.win.Registry()
	if keyed := reg.KeyedFields(); len(keyed) > 0 {
		lines = append(lines, m.styles.section.Render("Settings"))
		for _, f := range keyed {
			lines = append(lines, m.helpers.Row(fieldLabel(f), reg.Describe(f)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderInfoView renders the runtime snapshot, or the caller-supplied
// renderer when one is installed. A panicking callback becomes an inline
// error line; the next frame renders normally again.
func (m Model) renderInfoView() string {
	if custom := m.win.InfoRenderer(); custom != nil {
		return m.renderCustomInfo(custom)
	}
	return m.renderDefaultInfo()
}

// renderCustomInfo calls the caller's renderer behind a recover boundary:
// a panic becomes a visible diagnostic instead of aborting the frame.
func (m Model) renderCustomInfo(custom window.InfoRenderer) (out string) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.NewRenderError("info", r)
			out = m.styles.err.Render(err.Error())
		}
	}()
	return custom(m.snapshot, m.win.Palette(), m.helpers)
}

func (m Model) renderDefaultInfo() string {
	snap := m.snapshot
	var lines []string

	if snap.StateName != "" {
		color := m.win.StateColors().ColorOr(snap.StateName, m.win.Palette().Medium)
		state := lipgloss.NewStyle().Bold(true).Foreground(color.ToLipgloss()).Render(snap.StateName)
		lines = append(lines, m.helpers.Row("State", state))
	}

	if snap.BossHealth != nil && snap.BossHealthMax != nil && *snap.BossHealthMax > 0 {
		ratio := float64(*snap.BossHealth) / float64(*snap.BossHealthMax)
		bar := m.bossHealth.ViewAs(ratio)
		lines = append(lines, m.helpers.Row("Boss", fmt.Sprintf("%s %d/%d", bar, *snap.BossHealth, *snap.BossHealthMax)))
	}

	if snap.Kills != nil {
		value := m.helpers.FormatNumber(*snap.Kills)
		if snap.KillsPerHour != nil {
			value = fmt.Sprintf("%s (%.0f/h)", value, *snap.KillsPerHour)
		}
		lines = append(lines, m.helpers.Row("Kills", value))
	}

	if snap.GPEarned != nil {
		value := m.helpers.FormatNumber(*snap.GPEarned)
		if snap.GPPerHour != nil {
			value = fmt.Sprintf("%s (%s/h)", value, m.helpers.FormatNumber(int(*snap.GPPerHour)))
		}
		lines = append(lines, m.helpers.Row("GP", value))
	}

	if snap.Runtime > 0 {
		lines = append(lines, m.helpers.Row("Runtime", m.helpers.FormatDuration(snap.Runtime)))
	}
	if snap.TimeToLevel != "" {
		lines = append(lines, m.helpers.Row("To level", snap.TimeToLevel))
	}

	if len(snap.RecentKills) > 0 {
		lines = append(lines, m.styles.section.Render("Recent kills"))
		start := len(snap.RecentKills) - recentKillRows
		if start < 0 {
			start = 0
		}
		for _, kill := range snap.RecentKills[start:] {
			lines = append(lines, m.styles.label.Render("  "+kill))
		}
	}

	if len(snap.UniqueDrops) > 0 {
		lines = append(lines, m.styles.section.Render("Unique drops"))
		for _, drop := range snap.UniqueDrops {
			lines = append(lines, m.styles.value.Render("  "+drop))
		}
	}

	if len(lines) == 0 {
		return m.styles.desc.Render("Waiting for runtime data...")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderWarningsView lists the warning log, oldest first.
func (m Model) renderWarningsView() string {
	msgs := m.win.State().Warnings().Messages()
	if len(msgs) == 0 {
		return m.styles.desc.Render("No warnings.")
	}

	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		lines = append(lines, m.styles.warning.Render("⚠ "+msg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderFooter shows the key hints for the active view.
func (m Model) renderFooter() string {
	var hints []string
	switch {
	case m.editing:
		hints = []string{"enter/esc: done editing"}
	case m.activeTab == session.TabWarnings:
		hints = []string{"c: clear", "tab: switch view", "q: quit"}
	case m.win.State().Started():
		hints = []string{"p: pause/resume", "s: stop"}
		if m.win.State().StoppedFlag() {
			hints = append(hints, "r: reset")
		}
		hints = append(hints, "tab: switch view", "q: quit")
	default:
		hints = []string{"↑/↓: navigate", "←/→: adjust", "enter: select", "tab: switch view", "q: quit"}
	}
	return m.styles.footer.Render(strings.Join(hints, "  •  "))
}

func fieldLabel(f field.Keyed) string {
	switch fd := f.(type) {
	case field.Checkbox:
		return fd.Label
	case field.Slider:
		return fd.Label
	case field.Combo:
		return fd.Label
	case field.Input:
		return fd.Label
	default:
		return f.FieldKey()
	}
}

func fieldDesc(f field.Keyed) string {
	switch fd := f.(type) {
	case field.Checkbox:
		return fd.Desc
	case field.Slider:
		return fd.Desc
	case field.Combo:
		return fd.Desc
	case field.Input:
		return fd.Desc
	default:
		return ""
	}
}
