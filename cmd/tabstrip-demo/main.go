package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/tabstrip"
	"github.com/depeter/tabstrip/assets/icon"
	"github.com/depeter/tabstrip/internal/app"
	"github.com/depeter/tabstrip/internal/config"
	"github.com/depeter/tabstrip/internal/feedback"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := tabstrip.InitDefaultFonts(); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Build the bar
	opts := []tabstrip.Option{
		tabstrip.WithAlignment(cfg.Bar.ParseAlignment()),
		tabstrip.WithOnSelect(func(item tabstrip.Item) {
			log.Printf("selected %s (%s)", item.ID, item.Title)
		}),
	}
	if fill := cfg.Bar.IndicatorFill(); fill != nil {
		opts = append(opts, tabstrip.WithIndicatorStyle(fill))
	}
	if cfg.Feedback.Sound {
		clicker := feedback.NewClicker()
		if err := clicker.Init(); err != nil {
			log.Printf("Audio feedback disabled: %v", err)
		} else {
			opts = append(opts, tabstrip.WithHaptics(clicker))
			defer clicker.Close()
		}
	}
	bar := tabstrip.New(cfg.Items(), opts...)

	st := bar.Style()
	if cfg.Bar.ItemWidth > 0 {
		st.ItemWidth = cfg.Bar.ItemWidth
	}
	st.Spacing = cfg.Bar.Spacing
	bar.SetStyle(st)

	game := app.NewGame(cfg, bar)

	// Watch the config file for live edits
	if path, err := config.ConfigPath(); err == nil {
		reload, stop, err := config.Watch(path)
		if err != nil {
			log.Printf("Config watch disabled: %v", err)
		} else {
			game.Reload = reload
			defer stop()
		}
	}

	// Configure window
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("TabStrip Demo")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
