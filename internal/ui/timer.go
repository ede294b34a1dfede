package ui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chrisWalker11/Rust-Timer-Mag-Feed/internal/models"
)

var (
	flashColor   = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	headingColor = color.NRGBA{R: 25, G: 25, B: 25, A: 255}
)

const (
	textTimesUp  = "Time's Up!"
	textFinished = "The timer has finished."
	textStart    = "Start Timer"
	textReset    = "Reset Timer"
)

// screen 是某一时刻界面应显示的内容，只由计时器状态决定
type screen struct {
	Heading string
	Detail  string
	Action  string
	Flash   bool
}

func describe(t *models.Timer) screen {
	if t.Phase() == models.PhaseAlarming {
		return screen{
			Heading: textTimesUp,
			Detail:  textFinished,
			Action:  textReset,
			Flash:   t.FlashOn(),
		}
	}

	s := screen{
		Heading: fmt.Sprintf("Fixed Timer: %s", models.FormatDuration(int(t.Duration()/time.Second))),
		Action:  textStart,
	}
	if remaining, ok := t.Remaining(); ok {
		s.Detail = fmt.Sprintf("Time remaining: %s", models.FormatDuration(remaining))
	}
	return s
}

// TimerView 把 models.Timer 显示在窗口中，并由帧循环驱动
type TimerView struct {
	timer *models.Timer
	now   func() time.Time

	container  *fyne.Container
	background *canvas.Rectangle
	heading    *canvas.Text
	detail     *widget.Label
	action     *widget.Button
}

func NewTimerView(timer *models.Timer, now func() time.Time) *TimerView {
	if now == nil {
		now = time.Now
	}
	v := &TimerView{
		timer: timer,
		now:   now,
	}

	v.background = canvas.NewRectangle(color.Transparent)

	v.heading = canvas.NewText("", headingColor)
	v.heading.TextStyle = fyne.TextStyle{Bold: true}
	v.heading.TextSize = theme.TextHeadingSize()

	v.detail = widget.NewLabel("")

	v.action = widget.NewButton("", v.onAction)
	v.action.Importance = widget.HighImportance

	content := container.NewVBox(
		v.heading,
		v.detail,
		container.NewHBox(v.action),
	)

	// 背景在最底层，闪烁时整块面板变红
	v.container = container.NewStack(
		v.background,
		container.NewPadded(content),
	)

	v.render()
	return v
}

func (v *TimerView) onAction() {
	if v.timer.Phase() == models.PhaseAlarming {
		v.timer.Reset()
	} else {
		v.timer.Start(v.now())
	}
	v.render()
}

// frame 每帧在 UI 线程上调用一次
func (v *TimerView) frame() {
	if v.timer.Update(v.now()) {
		v.render()
	}
}

func (v *TimerView) render() {
	s := describe(v.timer)

	v.heading.Text = s.Heading
	v.heading.Refresh()

	v.detail.SetText(s.Detail)
	if s.Detail == "" {
		v.detail.Hide()
	} else {
		v.detail.Show()
	}

	v.action.SetText(s.Action)

	if s.Flash {
		v.background.FillColor = flashColor
	} else {
		v.background.FillColor = color.Transparent
	}
	v.background.Refresh()
}

// Run 启动帧循环，返回的函数用于停止它
func (v *TimerView) Run(interval time.Duration) (stop func()) {
	quit := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// 等待本帧完成，响铃阻塞 UI 线程时不会堆积帧
				fyne.DoAndWait(v.frame)
			case <-quit:
				return
			}
		}
	}()

	var stopped bool
	return func() {
		if !stopped {
			stopped = true
			close(quit)
		}
	}
}
