package models

import (
	"fmt"
	"log"
	"time"
)

// Phase 表示计时器当前所处的阶段
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseAlarming
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseAlarming:
		return "alarming"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// FixedDuration 是计时器唯一的时长 (3m15s)
const FixedDuration = 3*time.Minute + 15*time.Second

const (
	tickInterval  = time.Second
	flashInterval = 500 * time.Millisecond
)

// Alarm 在倒计时归零时被同步调用一次
type Alarm interface {
	Play() error
}

// Timer 是倒计时的视图模型，所有状态只在 UI 线程上修改
type Timer struct {
	duration     time.Duration
	alarm        Alarm
	phase        Phase
	remaining    int
	hasRemaining bool
	flashOn      bool
	lastTick     time.Time
	lastFlash    time.Time
}

// NewTimer 创建一个处于空闲状态的计时器
func NewTimer(duration time.Duration, alarm Alarm) *Timer {
	return &Timer{
		duration: duration,
		alarm:    alarm,
		phase:    PhaseIdle,
	}
}

// Start 从头开始倒计时。运行中再次调用会重新开始，响铃时无效。
func (t *Timer) Start(now time.Time) bool {
	if t.phase == PhaseAlarming {
		return false
	}
	t.remaining = int(t.duration / time.Second)
	t.hasRemaining = true
	t.lastTick = now
	t.phase = PhaseRunning
	return true
}

// Update 每帧调用一次，返回是否需要尽快再绘制一帧
func (t *Timer) Update(now time.Time) bool {
	switch t.phase {
	case PhaseRunning:
		if now.Sub(t.lastTick) >= tickInterval {
			if t.remaining > 0 {
				t.remaining--
			}
			t.lastTick = now
		}
		if t.remaining == 0 {
			t.expire(now)
		}
		return true
	case PhaseAlarming:
		if now.Sub(t.lastFlash) > flashInterval {
			t.flashOn = !t.flashOn
			t.lastFlash = now
			return true
		}
	}
	return false
}

func (t *Timer) expire(now time.Time) {
	if t.alarm != nil {
		if err := t.alarm.Play(); err != nil {
			log.Printf("alarm playback failed: %v", err)
		}
	}
	t.phase = PhaseAlarming
	t.flashOn = false
	t.lastFlash = now
}

// Reset 结束响铃并回到空闲状态
func (t *Timer) Reset() bool {
	if t.phase != PhaseAlarming {
		return false
	}
	t.phase = PhaseIdle
	t.remaining = 0
	t.hasRemaining = false
	t.flashOn = false
	return true
}

// Phase 返回当前阶段
func (t *Timer) Phase() Phase {
	return t.phase
}

// Remaining 返回剩余秒数，没有进行中的倒计时时 ok 为 false
func (t *Timer) Remaining() (int, bool) {
	return t.remaining, t.hasRemaining
}

// FlashOn 返回响铃时红色背景当前是否显示
func (t *Timer) FlashOn() bool {
	return t.flashOn
}

// Duration 返回每次倒计时的总时长
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// FormatDuration 将秒数转换为 "3m 15s" 格式
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
