package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/tabstrip"
	"github.com/depeter/tabstrip/internal/config"
)

// Game implements ebiten.Game and hosts the demo: a tab bar across the
// top of the window with one mock content page per tab.
type Game struct {
	Config *config.Config
	Bar    *tabstrip.TabBar

	Width, Height int

	// Config file reloads arrive here; nil disables hot reload.
	Reload <-chan *config.Config
}

// NewGame creates the Game around an already-constructed bar.
func NewGame(cfg *config.Config, bar *tabstrip.TabBar) *Game {
	return &Game{
		Config: cfg,
		Bar:    bar,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	}
}

// ApplyConfig pushes a (re)loaded config into the running bar.
func (g *Game) ApplyConfig(cfg *config.Config) {
	g.Config = cfg

	st := g.Bar.Style()
	if cfg.Bar.ItemWidth > 0 {
		st.ItemWidth = cfg.Bar.ItemWidth
	}
	st.Spacing = cfg.Bar.Spacing
	if fill := cfg.Bar.IndicatorFill(); fill != nil {
		st.IndicatorFill = fill
	}
	g.Bar.SetStyle(st)
	g.Bar.SetAlignment(cfg.Bar.ParseAlignment())
	g.Bar.SetItems(cfg.Items())
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ToggleDebugOverlay()

	if g.Reload != nil {
		select {
		case cfg, ok := <-g.Reload:
			if !ok {
				g.Reload = nil
			} else {
				log.Printf("config reloaded: %d tabs", len(cfg.Tabs))
				g.ApplyConfig(cfg)
			}
		default:
		}
	}

	// Arrow keys step the selection
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.Bar.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.Bar.Prev()
	}

	g.Bar.SetViewWidth(float64(g.Width))
	g.Bar.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(tabstrip.ColorBackground)

	g.drawPage(screen)
	g.Bar.Draw(screen, 0, 0)

	DrawDebugOverlay(screen, g.Bar, g.Width)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
