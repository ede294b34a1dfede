package ui

import (
	"image/color"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisWalker11/Rust-Timer-Mag-Feed/internal/models"
)

type countingAlarm struct{ plays int }

func (a *countingAlarm) Play() error {
	a.plays++
	return nil
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestView(t *testing.T, d time.Duration) (*TimerView, *fakeClock, *countingAlarm) {
	t.Helper()
	test.NewTempApp(t)

	clock := &fakeClock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	alarm := &countingAlarm{}
	v := NewTimerView(models.NewTimer(d, alarm), clock.Now)
	return v, clock, alarm
}

// seconds 推进 n 秒，每秒一帧
func seconds(v *TimerView, clock *fakeClock, n int) {
	for i := 0; i < n; i++ {
		clock.Advance(time.Second)
		v.frame()
	}
}

func TestDescribeIdle(t *testing.T) {
	s := describe(models.NewTimer(models.FixedDuration, nil))

	assert.Equal(t, screen{Heading: "Fixed Timer: 3m 15s", Action: "Start Timer"}, s)
}

func TestDescribeRunning(t *testing.T) {
	tm := models.NewTimer(models.FixedDuration, nil)
	now := time.Now()
	tm.Start(now)
	tm.Update(now.Add(time.Second))

	s := describe(tm)

	assert.Equal(t, "Fixed Timer: 3m 15s", s.Heading)
	assert.Equal(t, "Time remaining: 3m 14s", s.Detail)
	assert.Equal(t, "Start Timer", s.Action)
	assert.False(t, s.Flash)
}

func TestViewStartsIdle(t *testing.T) {
	v, _, _ := newTestView(t, models.FixedDuration)

	assert.Equal(t, "Fixed Timer: 3m 15s", v.heading.Text)
	assert.False(t, v.detail.Visible())
	assert.Equal(t, "Start Timer", v.action.Text)
	assert.Equal(t, color.Transparent, v.background.FillColor)
}

func TestViewCountsDown(t *testing.T) {
	v, clock, _ := newTestView(t, models.FixedDuration)

	test.Tap(v.action)
	require.True(t, v.detail.Visible())
	assert.Equal(t, "Time remaining: 3m 15s", v.detail.Text)

	seconds(v, clock, 16)
	assert.Equal(t, "Time remaining: 2m 59s", v.detail.Text)
}

func TestViewStartTwiceRestarts(t *testing.T) {
	v, clock, alarm := newTestView(t, models.FixedDuration)

	test.Tap(v.action)
	seconds(v, clock, 100)
	test.Tap(v.action)
	assert.Equal(t, "Time remaining: 3m 15s", v.detail.Text)

	seconds(v, clock, 195)
	assert.Equal(t, textTimesUp, v.heading.Text)
	assert.Equal(t, 1, alarm.plays)
}

func TestViewAlarmFlashesAndResets(t *testing.T) {
	v, clock, alarm := newTestView(t, 2*time.Second)

	test.Tap(v.action)
	seconds(v, clock, 2)

	assert.Equal(t, 1, alarm.plays)
	assert.Equal(t, textTimesUp, v.heading.Text)
	assert.Equal(t, textFinished, v.detail.Text)
	assert.Equal(t, textReset, v.action.Text)
	assert.Equal(t, color.Transparent, v.background.FillColor)

	clock.Advance(600 * time.Millisecond)
	v.frame()
	assert.Equal(t, flashColor, v.background.FillColor)

	clock.Advance(600 * time.Millisecond)
	v.frame()
	assert.Equal(t, color.Transparent, v.background.FillColor)

	clock.Advance(600 * time.Millisecond)
	v.frame()
	test.Tap(v.action)

	assert.Equal(t, "Fixed Timer: 0m 2s", v.heading.Text)
	assert.False(t, v.detail.Visible())
	assert.Equal(t, textStart, v.action.Text)
	assert.Equal(t, color.Transparent, v.background.FillColor)
	assert.Equal(t, models.PhaseIdle, v.timer.Phase())
}

func TestViewRunDrivesFrames(t *testing.T) {
	test.NewTempApp(t)

	var frames atomic.Int64
	now := func() time.Time {
		frames.Add(1)
		return time.Now()
	}
	alarm := &countingAlarm{}
	v := NewTimerView(models.NewTimer(time.Second, alarm), now)

	test.Tap(v.action)
	stop := v.Run(5 * time.Millisecond)
	time.Sleep(1500 * time.Millisecond)
	stop()
	stop()

	// 等待 stop 之前已经开始的那一帧结束
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, models.PhaseAlarming, v.timer.Phase())
	assert.Equal(t, 1, alarm.plays)
	assert.Equal(t, textTimesUp, v.heading.Text)

	seen := frames.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, seen, frames.Load(), "no frames after stop")
}
