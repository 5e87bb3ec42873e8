package tetris

import "time"

// Timer is a countdown driven by explicit elapsed time rather than the wall clock.
// When an active timer reaches its duration it fires its callback (if any) and
// deactivates; a repeating timer re-arms itself right away.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	repeat   bool
	active   bool
	fn       func()
}

// NewTimer creates an inactive timer.
func NewTimer(duration time.Duration, repeat bool, fn func()) *Timer {
	return &Timer{
		duration: duration,
		repeat:   repeat,
		fn:       fn,
	}
}

// Activate arms the timer and restarts its countdown.
func (t *Timer) Activate() {
	t.active = true
	t.elapsed = 0
}

// Deactivate stops the countdown without firing.
func (t *Timer) Deactivate() {
	t.active = false
	t.elapsed = 0
}

// Active reports whether the timer is counting.
func (t *Timer) Active() bool {
	return t.active
}

// Duration returns the current countdown length.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// SetDuration changes the countdown length. Time already elapsed is kept, so a
// shorter duration can expire on the next Update.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

// Update advances the countdown by elapsed. It fires at most once per call.
func (t *Timer) Update(elapsed time.Duration) {
	if !t.active {
		return
	}

	t.elapsed += elapsed
	if t.elapsed < t.duration {
		return
	}

	// Re-arm before the callback so it can stop the timer for good.
	t.Deactivate()
	if t.repeat {
		t.Activate()
	}

	if t.fn != nil {
		t.fn()
	}
}
