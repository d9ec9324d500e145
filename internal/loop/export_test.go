package loop

// idle reports whether nothing is scheduled.
func (s *FrameScheduler) idle() bool {
	return len(s.next) == 0 && len(s.timers) == 0
}
