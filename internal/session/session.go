package session

// Phase is the lifecycle position of one script session.
type Phase int

const (
	Configuring Phase = iota
	Running
	Paused
	Stopped
	Cancelled
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Configuring:
		return "configuring"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Tab identifies a view the session can request the render adapter switch to.
type Tab int

const (
	TabConfig Tab = iota
	TabInfo
	TabWarnings
)

// State tracks one session from Configuring through a terminal Stopped or
// Cancelled. Exactly one terminal outcome is reachable: Cancelled only
// before Start, Stopped only after. All methods are synchronous; the core
// assumes a single logical thread of control.
type State struct {
	open      bool
	started   bool
	paused    bool
	stopped   bool
	cancelled bool

	pendingTab    Tab
	hasPendingTab bool

	warnings *WarningLog

	// onStart fires once per successful Start transition. The window wires
	// the best-effort config save here.
	onStart func()
}

// NewState returns a fresh open session in Configuring, with the Config tab
// armed for the first render pass.
func NewState(onStart func()) *State {
	s := &State{
		open:     true,
		warnings: NewWarningLog(),
		onStart:  onStart,
	}
	s.RequestTab(TabConfig)
	return s
}

// Phase derives the lifecycle position from the flags.
func (s *State) Phase() Phase {
	switch {
	case s.cancelled:
		return Cancelled
	case s.stopped:
		return Stopped
	case s.started && s.paused:
		return Paused
	case s.started:
		return Running
	default:
		return Configuring
	}
}

// Open reports whether the window is still open.
func (s *State) Open() bool { return s.open }

// Close marks the window closed. The host loop observes this and exits.
func (s *State) Close() { s.open = false }

// Started reports whether Start has fired this session.
func (s *State) Started() bool { return s.started }

// PausedFlag reports the pause toggle. Only meaningful while started and
// not stopped.
func (s *State) PausedFlag() bool { return s.paused }

// StoppedFlag reports the stopped terminal flag.
func (s *State) StoppedFlag() bool { return s.stopped }

// CancelledFlag reports the cancelled terminal flag.
func (s *State) CancelledFlag() bool { return s.cancelled }

// Start moves Configuring to Running and fires the onStart hook. Returns
// false without side effects when the session already started, stopped or
// cancelled.
func (s *State) Start() bool {
	if s.started || s.cancelled || s.stopped {
		return false
	}
	s.started = true
	s.RequestTab(TabInfo)
	if s.onStart != nil {
		s.onStart()
	}
	return true
}

// TogglePause flips the pause hold. No-op unless running; pausing carries
// no persistence side effect and never auto-resumes.
func (s *State) TogglePause() bool {
	if !s.started || s.stopped || s.cancelled {
		return false
	}
	s.paused = !s.paused
	return true
}

// Stop terminates a started session. Stop before Start is a no-op: Stopped
// is unreachable from Configuring.
func (s *State) Stop() bool {
	if !s.started || s.stopped || s.cancelled {
		return false
	}
	s.stopped = true
	return true
}

// Cancel terminates the session before it ever starts. No-op after Start.
func (s *State) Cancel() bool {
	if s.started || s.cancelled {
		return false
	}
	s.cancelled = true
	return true
}

// Reset returns to a fresh Configuring state: lifecycle flags and the
// warning log are cleared and the Config tab is re-armed for the next
// render pass. The window stays open.
func (s *State) Reset() {
	s.started = false
	s.paused = false
	s.stopped = false
	s.cancelled = false
	s.warnings.Clear()
	s.RequestTab(TabConfig)
}

// RequestTab arms a one-shot tab switch. A later request replaces an
// unconsumed earlier one; there is a single slot, not one flag per tab.
func (s *State) RequestTab(tab Tab) {
	s.pendingTab = tab
	s.hasPendingTab = true
}

// TakeTabRequest consumes the pending tab request. The read clears it: a
// consumer must act on the request in the same pass or it is gone.
func (s *State) TakeTabRequest() (Tab, bool) {
	if !s.hasPendingTab {
		return TabConfig, false
	}
	s.hasPendingTab = false
	return s.pendingTab, true
}

// Warnings exposes the session warning log.
func (s *State) Warnings() *WarningLog {
	return s.warnings
}
