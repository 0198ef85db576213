package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/OogleOG/MEUI/internal/window"
)

// SnapshotMsg delivers a fresh runtime snapshot from the host loop.
type SnapshotMsg struct {
	Snapshot window.Snapshot
}

// FrameTickMsg drives the once-per-tick refresh of the info view.
type FrameTickMsg struct {
	At time.Time
}

// frameTickCmd schedules the next frame tick.
func frameTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FrameTickMsg{At: t}
	})
}
