package tabstrip

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// IconFunc draws an icon centered at (cx, cy) with the given radius.
type IconFunc func(dst *ebiten.Image, cx, cy, r float32, clr color.Color)

// IconByName resolves a built-in icon name. Unknown names return nil.
func IconByName(name string) IconFunc {
	switch name {
	case "home":
		return drawHomeIcon
	case "search":
		return drawSearchIcon
	case "list":
		return drawListIcon
	case "gear":
		return drawGearIcon
	case "compass":
		return drawCompassIcon
	case "star":
		return drawStarIcon
	}
	return nil
}

// drawHomeIcon draws a house outline at (cx, cy).
func drawHomeIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Roof
	vector.StrokeLine(dst, cx-r, cy, cx, cy-r, 1.8, clr, false)
	vector.StrokeLine(dst, cx, cy-r, cx+r, cy, 1.8, clr, false)
	// Walls and floor
	w := r * 0.7
	vector.StrokeLine(dst, cx-w, cy, cx-w, cy+r*0.8, 1.8, clr, false)
	vector.StrokeLine(dst, cx+w, cy, cx+w, cy+r*0.8, 1.8, clr, false)
	vector.StrokeLine(dst, cx-w, cy+r*0.8, cx+w, cy+r*0.8, 1.8, clr, false)
}

// drawSearchIcon draws a magnifying glass at (cx, cy).
func drawSearchIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	lensR := r * 0.6
	lensCX := cx - r*0.15
	lensCY := cy - r*0.15
	vector.StrokeCircle(dst, lensCX, lensCY, lensR, 1.8, clr, false)
	hx := lensCX + lensR*0.7
	hy := lensCY + lensR*0.7
	vector.StrokeLine(dst, hx, hy, hx+r*0.45, hy+r*0.45, 2, clr, false)
}

// drawListIcon draws three bulleted rows at (cx, cy).
func drawListIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	lineW := r * 1.2
	gap := r * 0.5
	for i := -1; i <= 1; i++ {
		ly := cy + float32(i)*gap
		vector.DrawFilledCircle(dst, cx-lineW*0.6, ly, 1.5, clr, false)
		vector.StrokeLine(dst, cx-lineW*0.3, ly, cx+lineW*0.7, ly, 1.8, clr, false)
	}
}

// drawGearIcon draws a gear at (cx, cy).
func drawGearIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r*0.35, clr, false)
	teeth := 8
	for i := 0; i < teeth; i++ {
		angle := float64(i) * 2 * math.Pi / float64(teeth)
		tx := cx + r*0.75*float32(math.Cos(angle))
		ty := cy + r*0.75*float32(math.Sin(angle))
		vector.DrawFilledCircle(dst, tx, ty, r*0.25, clr, false)
	}
	vector.StrokeCircle(dst, cx, cy, r*0.55, 1.5, clr, false)
}

// drawCompassIcon draws a compass at (cx, cy).
func drawCompassIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy, r, 1.5, clr, false)
	dotR := float32(1.5)
	vector.DrawFilledCircle(dst, cx, cy-r+2, dotR, clr, false) // N
	vector.DrawFilledCircle(dst, cx+r-2, cy, dotR, clr, false) // E
	vector.DrawFilledCircle(dst, cx, cy+r-2, dotR, clr, false) // S
	vector.DrawFilledCircle(dst, cx-r+2, cy, dotR, clr, false) // W
	vector.StrokeLine(dst, cx, cy-3, cx+2, cy, 1.5, clr, false)
	vector.StrokeLine(dst, cx+2, cy, cx, cy+3, 1.5, clr, false)
	vector.StrokeLine(dst, cx, cy+3, cx-2, cy, 1.5, clr, false)
	vector.StrokeLine(dst, cx-2, cy, cx, cy-3, 1.5, clr, false)
}

// drawStarIcon draws a five-pointed star outline at (cx, cy).
func drawStarIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	const points = 5
	var xs, ys [points]float32
	for i := 0; i < points; i++ {
		angle := -math.Pi/2 + float64(i)*4*math.Pi/points
		xs[i] = cx + r*float32(math.Cos(angle))
		ys[i] = cy + r*float32(math.Sin(angle))
	}
	for i := 0; i < points; i++ {
		j := (i + 1) % points
		vector.StrokeLine(dst, xs[i], ys[i], xs[j], ys[j], 1.5, clr, false)
	}
}
