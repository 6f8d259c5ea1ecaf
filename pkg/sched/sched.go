// Package sched owns the three periodic timer domains of the control loop:
// weather refresh, auto-advance paging, and the colon blink.
//
// Detection and consumption are deliberately separate: Tick reports which
// domains have elapsed, and the caller invokes MarkFired only after acting on
// a domain. Under variable tick latency this avoids both skipped and doubled
// fires.
package sched

// Domain identifies one periodic activity.
type Domain int

const (
	Refresh Domain = iota
	Advance
	Blink

	numDomains
)

// String returns the domain name for logs.
func (d Domain) String() string {
	switch d {
	case Refresh:
		return "refresh"
	case Advance:
		return "advance"
	case Blink:
		return "blink"
	}
	return "unknown"
}

// Due reports which domains have elapsed at a given tick.
type Due struct {
	Refresh bool
	Advance bool
	Blink   bool
}

type timer struct {
	lastFired int64
	periodMs  int64
	enabled   bool
}

// Config holds the timer periods in milliseconds.
type Config struct {
	RefreshMs      int64
	AdvanceMs      int64
	BlinkMs        int64
	AdvanceEnabled bool
}

// DefaultConfig matches the device firmware: refresh every five minutes,
// auto-advance every three seconds but disabled, blink every half second.
func DefaultConfig() Config {
	return Config{
		RefreshMs: 300_000,
		AdvanceMs: 3_000,
		BlinkMs:   500,
	}
}

// Scheduler tracks the last-fired timestamp of each domain. It is owned by
// the control loop and is not safe for concurrent use.
type Scheduler struct {
	timers [numDomains]timer
}

// New returns a scheduler whose domains are all considered freshly fired at
// now, so the first due times are one full period away.
func New(cfg Config, now int64) *Scheduler {
	s := &Scheduler{}
	s.timers[Refresh] = timer{lastFired: now, periodMs: cfg.RefreshMs, enabled: true}
	s.timers[Advance] = timer{lastFired: now, periodMs: cfg.AdvanceMs, enabled: cfg.AdvanceEnabled}
	s.timers[Blink] = timer{lastFired: now, periodMs: cfg.BlinkMs, enabled: true}
	return s
}

// Tick reports which enabled domains have elapsed. It does not consume them;
// call MarkFired after acting on a domain.
func (s *Scheduler) Tick(now int64) Due {
	return Due{
		Refresh: s.due(Refresh, now),
		Advance: s.due(Advance, now),
		Blink:   s.due(Blink, now),
	}
}

func (s *Scheduler) due(d Domain, now int64) bool {
	t := s.timers[d]
	return t.enabled && now-t.lastFired >= t.periodMs
}

// MarkFired records that the caller acted on domain d at now, pushing its
// next due time one period out.
func (s *Scheduler) MarkFired(d Domain, now int64) {
	s.timers[d].lastFired = now
}

// SetEnabled enables or disables a domain. A disabled domain is never due.
func (s *Scheduler) SetEnabled(d Domain, on bool) {
	s.timers[d].enabled = on
}

// Enabled reports whether a domain is currently enabled.
func (s *Scheduler) Enabled(d Domain) bool {
	return s.timers[d].enabled
}
