package theme

// StateColors maps runtime state names to display colors. It starts with
// the stock entries and may be extended by the caller.
type StateColors struct {
	colors map[string]RGB
}

// NewStateColors returns a table pre-seeded with Idle, Paused and Dead.
func NewStateColors() *StateColors {
	return &StateColors{
		colors: map[string]RGB{
			"Idle":   {0.55, 0.55, 0.55},
			"Paused": {0.95, 0.80, 0.25},
			"Dead":   {0.90, 0.25, 0.25},
		},
	}
}

// Set registers or replaces the color for a state name.
func (s *StateColors) Set(name string, color RGB) {
	s.colors[name] = color
}

// Color returns the color for a state name and whether it was present.
func (s *StateColors) Color(name string) (RGB, bool) {
	c, ok := s.colors[name]
	return c, ok
}

// ColorOr returns the color for a state name, or fallback when unknown.
func (s *StateColors) ColorOr(name string, fallback RGB) RGB {
	if c, ok := s.colors[name]; ok {
		return c
	}
	return fallback
}
