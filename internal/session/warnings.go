package session

// maxWarnings bounds the log; the oldest entries are evicted first.
const maxWarnings = 50

// WarningLog is a FIFO-bounded ordered list of warning messages.
type WarningLog struct {
	messages []string
}

// NewWarningLog returns an empty log.
func NewWarningLog() *WarningLog {
	return &WarningLog{}
}

// Push appends a message, evicting from the front once the bound is hit.
func (w *WarningLog) Push(msg string) {
	w.messages = append(w.messages, msg)
	if overflow := len(w.messages) - maxWarnings; overflow > 0 {
		w.messages = append([]string(nil), w.messages[overflow:]...)
	}
}

// Clear empties the log.
func (w *WarningLog) Clear() {
	w.messages = nil
}

// Len is the live count; render adapters recompute it each frame.
func (w *WarningLog) Len() int {
	return len(w.messages)
}

// Messages returns a copy of the log, oldest first.
func (w *WarningLog) Messages() []string {
	out := make([]string, len(w.messages))
	copy(out, w.messages)
	return out
}
