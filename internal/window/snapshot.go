package window

import "time"

// Snapshot is the per-tick runtime statistics bag the host supplies for
// the info view. Every field is optional: nil pointers, empty strings and
// empty slices are simply not rendered.
type Snapshot struct {
	// StateName is looked up in the window's state color table.
	StateName string

	BossHealth    *int
	BossHealthMax *int

	Kills        *int
	KillsPerHour *float64

	GPEarned  *int
	GPPerHour *float64

	Runtime     time.Duration
	TimeToLevel string

	// RecentKills is newest-last; the adapter shows the final five.
	RecentKills []string

	UniqueDrops []string
}

// IntPtr is a convenience for building snapshots.
func IntPtr(v int) *int { return &v }

// FloatPtr is a convenience for building snapshots.
func FloatPtr(v float64) *float64 { return &v }
