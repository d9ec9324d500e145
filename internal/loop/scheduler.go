package loop

import "time"

// Scheduler runs simulation callbacks on the host's frame goroutine.
type Scheduler interface {
	// ScheduleNextTick runs fn on the next frame.
	ScheduleNextTick(fn func())
	// After runs fn on the first frame at least d from now.
	After(d time.Duration, fn func())
}

// Clock provides the time used by time-based enemy behavior.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type timer struct {
	at time.Time
	fn func()
}

// FrameScheduler is a Scheduler driven by the host's frame loop, which
// calls RunFrame once per frame. It is also the Clock: Now is the start
// time of the current frame.
type FrameScheduler struct {
	next   []func()
	timers []timer
	now    time.Time
}

// NewFrameScheduler creates a scheduler whose clock starts at start.
func NewFrameScheduler(start time.Time) *FrameScheduler {
	return &FrameScheduler{now: start}
}

// ScheduleNextTick implements Scheduler.
func (s *FrameScheduler) ScheduleNextTick(fn func()) {
	s.next = append(s.next, fn)
}

// After implements Scheduler.
func (s *FrameScheduler) After(d time.Duration, fn func()) {
	s.timers = append(s.timers, timer{at: s.now.Add(d), fn: fn})
}

// Now implements Clock.
func (s *FrameScheduler) Now() time.Time {
	return s.now
}

// RunFrame sets the clock to now, runs the callbacks scheduled for this
// frame and then every timer that is due. Callbacks scheduled while running
// wait for the next frame.
func (s *FrameScheduler) RunFrame(now time.Time) {
	s.now = now

	run := s.next
	s.next = nil
	for _, fn := range run {
		fn()
	}

	var due []func()
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !t.at.After(now) {
			due = append(due, t.fn)
		} else {
			kept = append(kept, t)
		}
	}
	s.timers = kept
	for _, fn := range due {
		fn()
	}
}

// ManualScheduler single-steps a FrameScheduler on a virtual clock that
// advances one frame per step.
type ManualScheduler struct {
	*FrameScheduler
	FrameTime time.Duration
}

// NewManualScheduler creates a manual scheduler starting at start.
func NewManualScheduler(start time.Time, frameTime time.Duration) *ManualScheduler {
	return &ManualScheduler{
		FrameScheduler: NewFrameScheduler(start),
		FrameTime:      frameTime,
	}
}

// Step advances the clock by one frame and runs it.
func (m *ManualScheduler) Step() {
	m.RunFrame(m.now.Add(m.FrameTime))
}

// StepN runs n frames.
func (m *ManualScheduler) StepN(n int) {
	for i := 0; i < n; i++ {
		m.Step()
	}
}

var (
	_ Scheduler = (*FrameScheduler)(nil)
	_ Clock     = (*FrameScheduler)(nil)
	_ Scheduler = (*ManualScheduler)(nil)
)
