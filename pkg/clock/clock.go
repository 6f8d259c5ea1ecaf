// Package clock provides the time sources for the control loop: a monotonic
// millisecond counter that drives every timer domain, and a wall clock used
// only for drawing the header and footer.
//
// Both are interfaces so tests can advance virtual time deterministically
// instead of sleeping in real time.
package clock

import "time"

// Clock supplies a monotonically increasing millisecond timestamp. All timer
// arithmetic in the loop subtracts two values from the same Clock, so the
// epoch is arbitrary.
type Clock interface {
	NowMillis() int64
}

// WallClock supplies local wall-clock time for the header and footer. The
// boolean reports whether the time source is trustworthy; on the device the
// RTC reads as epoch until NTP sync completes, and drawing code skips the
// frame rather than showing garbage.
type WallClock interface {
	Wall() (time.Time, bool)
}

// System implements both Clock and WallClock from the Go runtime clock.
// NowMillis is measured from process start so NTP stepping the wall clock
// cannot skip or double timer fires.
type System struct {
	start time.Time
}

// NewSystem returns a System clock anchored at the current instant.
func NewSystem() *System {
	return &System{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
func (s *System) NowMillis() int64 {
	return time.Since(s.start).Milliseconds()
}

// wallSyncFloor mirrors the firmware's "time not synced yet" guard: anything
// before this Unix time is treated as an unset RTC.
var wallSyncFloor = time.Unix(1_000_000_000, 0)

// Wall returns the local time and whether it looks synced.
func (s *System) Wall() (time.Time, bool) {
	now := time.Now()
	return now, now.After(wallSyncFloor)
}
