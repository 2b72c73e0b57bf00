package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/tabstrip"
)

// Accent colors cycled across pages so switching tabs is visible even
// before fonts load.
var pageAccents = []color.RGBA{
	{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF},
	{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF},
	{R: 0x52, G: 0xB7, B: 0x88, A: 0xFF},
	{R: 0xD9, G: 0x8E, B: 0x4A, A: 0xFF},
	{R: 0xC3, G: 0x5C, B: 0x6E, A: 0xFF},
}

// drawPage renders the mock content page for the committed selection.
func (g *Game) drawPage(screen *ebiten.Image) {
	id, ok := g.Bar.SelectedID()
	if !ok {
		drawTextCentered(screen, "No tab selected", float64(g.Width)/2, float64(g.Height)/2, 20, tabstrip.ColorLabel)
		return
	}

	items := g.Config.Items()
	idx := tabstrip.Items(items).IndexOf(id)
	if idx < 0 {
		return
	}
	item := items[idx]
	accent := pageAccents[idx%len(pageAccents)]

	barH := float32(g.Bar.Style().BarHeight)
	cx := float64(g.Width) / 2
	cy := float64(g.Height+int(barH)) / 2

	// Accent stripe under the bar
	vector.DrawFilledRect(screen, 0, barH, float32(g.Width), 2, accent, false)

	drawTextCentered(screen, item.Title, cx, cy-16, 32, color.White)
	drawTextCentered(screen, "id: "+item.ID, cx, cy+20, 14, tabstrip.ColorLabel)
}
