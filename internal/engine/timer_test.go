package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerRepeatingSignalsEachInterval(t *testing.T) {
	timer := NewTimer(2*time.Second, TimerRepeating)

	assert.False(t, timer.Tick(time.Second).JustFinished())
	assert.True(t, timer.Tick(time.Second).JustFinished())
	assert.Equal(t, time.Duration(0), timer.Elapsed())

	assert.False(t, timer.Tick(1500*time.Millisecond).JustFinished())
	assert.False(t, timer.Finished(), "repeating timer only reports finished on the wrapping tick")
	assert.True(t, timer.Tick(time.Second).JustFinished())
	assert.Equal(t, 500*time.Millisecond, timer.Elapsed(), "overshoot is carried into the next interval")
}

func TestTimerRepeatingLargeDelta(t *testing.T) {
	timer := NewTimer(time.Second, TimerRepeating)

	timer.Tick(3500 * time.Millisecond)
	assert.True(t, timer.JustFinished())
	assert.Equal(t, 3, timer.TimesFinishedThisTick())
	assert.Equal(t, 500*time.Millisecond, timer.Elapsed())
}

func TestTimerOnceStaysFinished(t *testing.T) {
	timer := TimerFromSeconds(1.0, TimerOnce)

	assert.True(t, timer.Tick(1200*time.Millisecond).JustFinished())
	assert.True(t, timer.Finished())
	assert.Equal(t, time.Second, timer.Elapsed())

	assert.False(t, timer.Tick(time.Second).JustFinished(), "one-shot timer signals only once")
	assert.True(t, timer.Finished())
	assert.Equal(t, time.Duration(0), timer.Remaining())
}

func TestTimerPauseAndReset(t *testing.T) {
	timer := NewTimer(time.Second, TimerRepeating)
	timer.Tick(600 * time.Millisecond)

	timer.Pause()
	assert.True(t, timer.Paused())
	assert.False(t, timer.Tick(time.Second).JustFinished())
	assert.Equal(t, 600*time.Millisecond, timer.Elapsed())

	timer.Unpause()
	assert.True(t, timer.Tick(400*time.Millisecond).JustFinished())

	timer.Tick(300 * time.Millisecond)
	timer.Reset()
	assert.Equal(t, time.Duration(0), timer.Elapsed())
	assert.False(t, timer.Finished())
	assert.False(t, timer.JustFinished())
}

func TestTimerFrameSlicingIndependent(t *testing.T) {
	coarse := NewTimer(2*time.Second, TimerRepeating)
	fine := NewTimer(2*time.Second, TimerRepeating)

	coarseFires := 0
	for i := 0; i < 10; i++ {
		coarseFires += coarse.Tick(500 * time.Millisecond).TimesFinishedThisTick()
	}
	fineFires := 0
	for i := 0; i < 300; i++ {
		fineFires += fine.Tick(time.Second / 60).TimesFinishedThisTick()
	}

	assert.Equal(t, 2, coarseFires)
	assert.Equal(t, 2, fineFires)
}
