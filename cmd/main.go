package main

import (
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/chrisWalker11/Rust-Timer-Mag-Feed/internal/config"
	"github.com/chrisWalker11/Rust-Timer-Mag-Feed/internal/models"
	"github.com/chrisWalker11/Rust-Timer-Mag-Feed/internal/sound"
	"github.com/chrisWalker11/Rust-Timer-Mag-Feed/internal/ui"
)

func main() {
	cfg := config.NewManager().GetConfig()

	// 提示音解码失败时仍然运行，只是没有声音
	var alarm models.Alarm
	if cfg.Alarm.Enabled {
		player, err := sound.NewPlayer(cfg.Alarm.Volume)
		if err != nil {
			log.Printf("alarm sound disabled: %v", err)
		} else {
			log.Printf("alarm sound loaded (%v)", player.Length())
			alarm = player
		}
	}

	myApp := app.New()

	mainWindow := ui.NewMainWindow(myApp, cfg, alarm)
	mainWindow.Show()
}
