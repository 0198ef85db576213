package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OogleOG/MEUI/internal/session"
	"github.com/OogleOG/MEUI/internal/window"
)

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestSpaceTogglesCheckboxImmediately(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)

	m = press(t, m, "space")
	assert.True(t, w.Registry().GetBool("useBank"))

	m = press(t, m, "space")
	assert.False(t, w.Registry().GetBool("useBank"))
}

func TestArrowsAdjustSliderWithClamping(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)

	m = press(t, m, "down") // focus the slider
	m = press(t, m, "right", "right", "right")
	assert.Equal(t, 53, w.Registry().GetInt("eatAt"))

	for i := 0; i < 60; i++ {
		m = press(t, m, "left")
	}
	assert.Equal(t, 1, w.Registry().GetInt("eatAt"))

	for i := 0; i < 120; i++ {
		m = press(t, m, "right")
	}
	assert.Equal(t, 99, w.Registry().GetInt("eatAt"))
}

func TestArrowsCycleComboOptions(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)

	m = press(t, m, "down", "down") // focus the combo
	m = press(t, m, "right")
	assert.Equal(t, 1, w.Registry().GetInt("food"))

	m = press(t, m, "right") // wraps
	assert.Equal(t, 0, w.Registry().GetInt("food"))

	m = press(t, m, "left") // wraps backwards
	assert.Equal(t, 1, w.Registry().GetInt("food"))
}

func TestInputEditingWritesBackEachKeystroke(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)

	m = press(t, m, "down", "down", "down") // focus the input
	m = press(t, m, "enter")
	require.True(t, m.editing)

	// Each keystroke is visible in the registry without a commit step.
	m = press(t, m, "4")
	assert.Equal(t, "anon4", w.Registry().GetString("name"))
	m = press(t, m, "2")
	assert.Equal(t, "anon42", w.Registry().GetString("name"))

	m = press(t, m, "enter")
	assert.False(t, m.editing)
	assert.Equal(t, "anon42", w.Registry().GetString("name"))
}

func TestStartButtonFiresSessionAndSavesConfig(t *testing.T) {
	root := t.TempDir()
	w, err := window.New("Boss Killer", "purple", window.WithConfigRoot(root))
	require.NoError(t, err)
	require.NoError(t, w.Checkbox("useBank", "Use bank", true, ""))

	m := NewModel(w, nil)
	m = press(t, m, "down", "enter") // focus Start, fire it

	assert.True(t, w.State().Started())
	_, statErr := os.Stat(filepath.Join(root, "bosskiller.config.json"))
	assert.NoError(t, statErr, "start must persist the config")
}

func TestCancelButtonClosesWindowBeforeStart(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)

	// Cursor to Cancel: four fields, then Start, then Cancel.
	m = press(t, m, "down", "down", "down", "down", "down", "enter")

	assert.True(t, w.State().CancelledFlag())
	assert.False(t, w.State().Started())
	assert.False(t, m.Open())
}

func TestPauseStopResetKeysAfterStart(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)
	require.True(t, w.State().Start())

	m = press(t, m, "p")
	assert.True(t, w.State().PausedFlag())

	m = press(t, m, "p")
	assert.False(t, w.State().PausedFlag())

	m = press(t, m, "s")
	assert.True(t, w.State().StoppedFlag())

	m = press(t, m, "r")
	assert.Equal(t, session.Configuring, w.State().Phase())
}

func TestQuitKeyClosesWindow(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)

	assert.NotNil(t, cmd)
	assert.False(t, m.Open())
}

func TestTabRequestConsumedOncePerPass(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)
	w.Warn("low supplies")

	w.State().RequestTab(session.TabWarnings)

	updated, _ := m.Update(FrameTickMsg{})
	m = updated.(Model)
	assert.Equal(t, session.TabWarnings, m.activeTab)

	// The read cleared the request.
	_, pending := w.State().TakeTabRequest()
	assert.False(t, pending)
}

func TestStartRequestsInfoTab(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)

	m = press(t, m, "down", "down", "down", "down", "enter") // Start button
	require.True(t, w.State().Started())

	// The session armed an Info request at Start; the next pass consumes it.
	updated, _ := m.Update(FrameTickMsg{})
	m = updated.(Model)
	assert.Equal(t, session.TabInfo, m.activeTab)
}

func TestSnapshotMessagesUpdateInfoData(t *testing.T) {
	w := newTestWindow(t)
	m := NewModel(w, nil)

	snap := window.Snapshot{StateName: "Idle", Kills: window.IntPtr(12)}
	updated, _ := m.Update(SnapshotMsg{Snapshot: snap})
	m = updated.(Model)

	assert.Equal(t, "Idle", m.snapshot.StateName)
	require.NotNil(t, m.snapshot.Kills)
	assert.Equal(t, 12, *m.snapshot.Kills)
}

func TestFrameTickPullsFromProvider(t *testing.T) {
	w := newTestWindow(t)
	calls := 0
	m := NewModel(w, func() window.Snapshot {
		calls++
		return window.Snapshot{StateName: "Fighting"}
	})

	updated, cmd := m.Update(FrameTickMsg{})
	m = updated.(Model)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Fighting", m.snapshot.StateName)
	assert.NotNil(t, cmd, "tick must reschedule itself")
}
