package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/chrisWalker11/Rust-Timer-Mag-Feed/internal/config"
	"github.com/chrisWalker11/Rust-Timer-Mag-Feed/internal/models"
)

type MainWindow struct {
	window        fyne.Window
	view          *TimerView
	frameInterval time.Duration
}

func NewMainWindow(app fyne.App, cfg *config.Config, alarm models.Alarm) *MainWindow {
	timer := models.NewTimer(models.FixedDuration, alarm)

	w := &MainWindow{
		window:        app.NewWindow(cfg.App.Name),
		view:          NewTimerView(timer, time.Now),
		frameInterval: cfg.App.FrameInterval,
	}
	w.window.SetContent(w.view.container)
	w.SetSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))
	return w
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

// Show 显示窗口并阻塞直到窗口关闭
func (w *MainWindow) Show() {
	stop := w.view.Run(w.frameInterval)
	w.window.SetOnClosed(stop)
	w.window.ShowAndRun()
	stop()
}
