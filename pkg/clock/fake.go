package clock

import "time"

// Fake is a manually advanced clock for tests. It implements both Clock and
// WallClock.
type Fake struct {
	ms     int64
	wall   time.Time
	synced bool
}

// NewFake returns a fake clock starting at zero with a synced wall clock set
// to a fixed reference instant.
func NewFake() *Fake {
	return &Fake{
		wall:   time.Date(2025, time.March, 12, 10, 30, 0, 0, time.UTC),
		synced: true,
	}
}

// NowMillis returns the current fake monotonic time.
func (f *Fake) NowMillis() int64 { return f.ms }

// Advance moves the monotonic and wall clocks forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.ms += d.Milliseconds()
	f.wall = f.wall.Add(d)
}

// SetWall sets the wall-clock reading and its synced flag.
func (f *Fake) SetWall(t time.Time, synced bool) {
	f.wall = t
	f.synced = synced
}

// Wall returns the configured wall-clock reading.
func (f *Fake) Wall() (time.Time, bool) { return f.wall, f.synced }
