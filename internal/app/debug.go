package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/tabstrip"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws a panel showing the bar's live scroll and
// selection state if visible.
func DrawDebugOverlay(screen *ebiten.Image, bar *tabstrip.TabBar, screenWidth int) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	selected, _ := bar.SelectedID()
	lines := []string{
		"Debug: bar state (F12 to close)",
		fmt.Sprintf("offset:       %7.2f", bar.Offset()),
		fmt.Sprintf("focused:      %d", bar.FocusedIndex()),
		fmt.Sprintf("selected:     %q", selected),
		fmt.Sprintf("dragging:     %v", bar.Dragging()),
		fmt.Sprintf("decelerating: %v", bar.Decelerating()),
		fmt.Sprintf("fps/tps:      %.0f / %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}

	panelW := 280.0
	panelH := float64(len(lines))*lineH + padY*2
	px := float64(screenWidth) - panelW - marginR
	py := marginT

	bg := tabstrip.ColorBackground
	bg.A = 0xD8
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), bg, false)

	x := px + padX
	y := py + padY
	for i, line := range lines {
		clr := tabstrip.ColorLabel
		if i == 0 {
			clr = tabstrip.ColorIndicator
		}
		drawText(screen, line, x, y, 12, clr)
		y += lineH
	}
}
