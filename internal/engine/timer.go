package engine

import "time"

// TimerMode controls what a timer does after reaching its duration.
type TimerMode int

const (
	// TimerOnce stops at its duration and stays finished.
	TimerOnce TimerMode = iota
	// TimerRepeating wraps around, keeping any overshoot.
	TimerRepeating
)

// Timer accumulates ticked time and signals when its duration is crossed.
type Timer struct {
	duration      time.Duration
	elapsed       time.Duration
	mode          TimerMode
	finished      bool
	timesFinished int
	paused        bool
}

// NewTimer creates a timer with the given duration and mode.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// TimerFromSeconds creates a timer from a duration in seconds.
func TimerFromSeconds(seconds float64, mode TimerMode) Timer {
	return NewTimer(time.Duration(seconds*float64(time.Second)), mode)
}

// Tick advances the timer and returns it so calls can be chained:
//
//	if t.Tick(delta).JustFinished() { ... }
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.timesFinished = 0
	if t.paused {
		return t
	}
	if t.mode == TimerOnce && t.finished {
		return t
	}

	t.elapsed += delta
	if t.elapsed < t.duration {
		if t.mode == TimerRepeating {
			t.finished = false
		}
		return t
	}

	t.finished = true
	switch {
	case t.mode == TimerOnce:
		t.timesFinished = 1
		t.elapsed = t.duration
	case t.duration <= 0:
		t.timesFinished = 1
		t.elapsed = 0
	default:
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
	}
	return t
}

// JustFinished returns true if the last Tick crossed the duration.
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// Finished returns true if the timer has reached its duration. Repeating
// timers only report finished on the tick they wrapped.
func (t *Timer) Finished() bool {
	return t.finished
}

// TimesFinishedThisTick returns how many times the last Tick crossed the
// duration. Large deltas on repeating timers can cross it more than once.
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Elapsed returns the time accumulated since the last wrap or reset.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the time left until the next finish.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Mode returns the timer mode.
func (t *Timer) Mode() TimerMode {
	return t.mode
}

// Pause stops the timer from accumulating time.
func (t *Timer) Pause() {
	t.paused = true
}

// Unpause resumes a paused timer.
func (t *Timer) Unpause() {
	t.paused = false
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool {
	return t.paused
}

// Reset clears elapsed time and the finished state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}
