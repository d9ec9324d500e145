package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameSchedulerRunsNextTickOnce(t *testing.T) {
	s := NewFrameScheduler(time.Unix(0, 0))
	var calls int
	var tick func()
	tick = func() {
		calls++
		s.ScheduleNextTick(tick)
	}
	s.ScheduleNextTick(tick)

	s.RunFrame(time.Unix(1, 0))
	assert.Equal(t, 1, calls, "rescheduled callback waits for the next frame")
	s.RunFrame(time.Unix(2, 0))
	assert.Equal(t, 2, calls)
}

func TestFrameSchedulerTimers(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewFrameScheduler(start)
	var fired bool
	s.After(3*time.Second, func() { fired = true })

	s.RunFrame(start.Add(2 * time.Second))
	assert.False(t, fired)
	assert.False(t, s.idle())

	s.RunFrame(start.Add(3 * time.Second))
	assert.True(t, fired)
	assert.True(t, s.idle())
}

func TestFrameSchedulerClock(t *testing.T) {
	s := NewFrameScheduler(time.Unix(5, 0))
	assert.Equal(t, time.Unix(5, 0), s.Now())
	s.RunFrame(time.Unix(6, 0))
	assert.Equal(t, time.Unix(6, 0), s.Now())
}

func TestManualSchedulerAdvancesVirtualTime(t *testing.T) {
	m := NewManualScheduler(time.Unix(0, 0), 50*time.Millisecond)
	m.StepN(4)
	assert.Equal(t, time.Unix(0, 0).Add(200*time.Millisecond), m.Now())
}
