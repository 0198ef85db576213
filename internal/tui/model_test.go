package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OogleOG/MEUI/internal/session"
	"github.com/OogleOG/MEUI/internal/window"
)

func newTestWindow(t *testing.T) *window.Window {
	t.Helper()

	w, err := window.New("Boss Killer", "purple", window.WithConfigRoot(t.TempDir()))
	require.NoError(t, err)

	require.NoError(t, w.Section("General", "Core options"))
	require.NoError(t, w.Checkbox("useBank", "Use bank", false, "Bank when out of food"))
	require.NoError(t, w.Slider("eatAt", "Eat at", 50, 1, 99, "%d%%", ""))
	require.NoError(t, w.Separator())
	require.NoError(t, w.Combo("food", "Food", 0, []string{"Shark", "Karambwan"}, ""))
	require.NoError(t, w.Input("name", "Display name", "anon", "", 12))
	return w
}

func TestNewModelBuildsFocusTargets(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)

	// Four keyed fields plus Start and Cancel.
	require.Len(t, m.targets, 6)
	require.Equal(t, focusField, m.targets[0].kind)
	require.Equal(t, focusStart, m.targets[4].kind)
	require.Equal(t, focusCancel, m.targets[5].kind)
}

func TestModelInitReturnsTickCommand(t *testing.T) {
	m := NewModel(newTestWindow(t), nil)
	require.NotNil(t, m.Init())
}

func TestAvailableTabsFollowSessionState(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)

	// Before start: only Config.
	require.Equal(t, []session.Tab{session.TabConfig}, m.availableTabs())

	// Warnings appear the moment the log is non-empty.
	w.Warn("low supplies")
	require.Equal(t, []session.Tab{session.TabConfig, session.TabWarnings}, m.availableTabs())

	// Info appears only once started.
	require.True(t, w.State().Start())
	require.Equal(t, []session.Tab{session.TabConfig, session.TabInfo, session.TabWarnings}, m.availableTabs())
}

func TestOpenReflectsWindowState(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)

	require.True(t, m.Open())
	w.State().Close()
	require.False(t, m.Open())
}
