package weather

import (
	"context"
	"math"
	"sync/atomic"
	"time"
)

// Mock is a deterministic in-process provider for the simulator and tests.
// All fields are configurable through options and it counts Refresh calls.
type Mock struct {
	snapshot *Snapshot
	err      error
	delay    time.Duration

	calls atomic.Int64

	// RefreshFunc, if set, overrides the default behavior entirely.
	RefreshFunc func(ctx context.Context) (*Snapshot, error)
}

// MockOption configures a Mock.
type MockOption func(*Mock)

// WithSnapshot sets the snapshot returned by Refresh.
func WithSnapshot(s *Snapshot) MockOption {
	return func(m *Mock) { m.snapshot = s }
}

// WithError makes Refresh fail.
func WithError(err error) MockOption {
	return func(m *Mock) { m.err = err }
}

// WithDelay makes Refresh block for d before returning, to exercise the
// loop-stall behavior of a slow fetch.
func WithDelay(d time.Duration) MockOption {
	return func(m *Mock) { m.delay = d }
}

// NewMock returns a mock provider serving a generated sample snapshot unless
// overridden by options.
func NewMock(opts ...MockOption) *Mock {
	m := &Mock{snapshot: SampleSnapshot(time.Now())}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name identifies the provider in logs.
func (m *Mock) Name() string { return "mock" }

// Calls returns how many times Refresh has run.
func (m *Mock) Calls() int64 { return m.calls.Load() }

// Refresh returns the configured snapshot or error.
func (m *Mock) Refresh(ctx context.Context) (*Snapshot, error) {
	m.calls.Add(1)
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

// SampleSnapshot generates a plausible subtropical day anchored at now:
// a warm sine-shaped temperature curve, scattered cloud codes, and a couple
// of rainy afternoon hours.
func SampleSnapshot(now time.Time) *Snapshot {
	s := &Snapshot{
		Valid:      true,
		Temp:       24,
		FeelsLike:  26,
		Humidity:   68,
		WindSpeed:  4.2,
		WindDeg:    135,
		WindDir:    DegToCompass(135),
		Code:       801,
		Condition:  "Few clouds",
		UVI:        7.2,
		Visibility: 10000,
		Pressure:   1015,
		DewPoint:   18,
		Clouds:     35,
		Sunrise:    time.Date(now.Year(), now.Month(), now.Day(), 6, 10, 0, 0, now.Location()),
		Sunset:     time.Date(now.Year(), now.Month(), now.Day(), 18, 40, 0, 0, now.Location()),
		MoonPhase:  0.42,
		FetchedAt:  now,
	}

	codes := []int{800, 801, 801, 802, 803, 500, 501, 800}
	for i := 0; i < maxHourly; i++ {
		h := (now.Hour() + i) % 24
		// Peak warmth mid-afternoon.
		t := 22 + 6*math.Sin(float64(h-9)/24*2*math.Pi)
		s.Hourly = append(s.Hourly, Hourly{
			Temp: math.Round(t),
			Code: codes[i%len(codes)],
			Hour: h,
		})
	}

	pops := []int{20, 55, 10, 0, 30, 75, 5, 15}
	for i := 0; i < maxDaily; i++ {
		day := now.AddDate(0, 0, i)
		s.Daily = append(s.Daily, Daily{
			TempMin: 17 + float64(i%3),
			TempMax: 27 + float64((i*2)%5),
			Code:    codes[(i+2)%len(codes)],
			POP:     pops[i%len(pops)],
			Day:     shortDay(day),
		})
	}

	for i := range s.MinutelyRain {
		if i > 40 {
			s.MinutelyRain[i] = 0.2
		}
	}
	s.HasMinutely = true

	return s
}
