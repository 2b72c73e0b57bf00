package tabstrip

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the bar with its top-left at (x, y). The viewport is the
// rectangle (x, y, viewWidth, BarHeight); slots outside it are clipped.
func (b *TabBar) Draw(dst *ebiten.Image, x, y float64) {
	b.originX, b.originY = x, y
	m := b.metrics()
	st := b.style

	if st.BackgroundFill != nil && m.ViewWidth > 0 {
		vector.DrawFilledRect(dst, float32(x), float32(y),
			float32(m.ViewWidth), float32(st.BarHeight), st.BackgroundFill, false)
	}
	if m.Count == 0 || m.ViewWidth <= 0 {
		return
	}

	clip, ok := dst.SubImage(image.Rect(
		int(x), int(y), int(x+m.ViewWidth), int(y+st.BarHeight),
	)).(*ebiten.Image)
	if !ok {
		return
	}

	start := x + alignStart(b.align, m.ViewWidth-m.ContentWidth()) - b.tracker.Offset()
	active := b.activeIndex()

	for i := range b.items {
		sx := start + m.ItemPosition(i)
		if sx+m.ItemWidth < x || sx > x+m.ViewWidth {
			continue
		}
		if b.drawItem != nil {
			b.drawItem(clip, b.items[i], sx, y, i == active, st)
		} else {
			b.drawSlot(clip, i, sx, y, i == active)
		}
	}

	ix, iw, ok := IndicatorRect(IndicatorInput{
		Offset:     b.tracker.Offset(),
		Metrics:    m,
		Index:      active,
		LabelWidth: b.labelWidth(active),
		PadX:       st.IndicatorPadX,
		Alignment:  b.align,
	})
	if ok {
		drawCapsule(clip, x+ix, y+st.BarHeight-st.IndicatorHeight-2,
			iw, st.IndicatorHeight, st)
	}
}

// drawSlot is the default item rendering: icon above a centered label.
func (b *TabBar) drawSlot(dst *ebiten.Image, i int, x, y float64, active bool) {
	st := b.style
	item := b.items[i]
	cx := x + st.ItemWidth/2

	labelColor := st.LabelColor
	iconColor := st.IconColor
	if active {
		labelColor = st.LabelActiveColor
		iconColor = st.IconActiveColor
	}

	labelY := y + st.BarHeight/2
	if fn := IconByName(item.Icon); fn != nil {
		fn(dst, float32(cx), float32(y+st.BarHeight*0.34), float32(st.IconSize/2), iconColor)
		labelY = y + st.BarHeight*0.72
	}
	drawTextCentered(dst, item.Title, cx, labelY, st.FontSize, labelColor)
}

// drawCapsule draws the indicator as a rounded bar hugging the label.
func drawCapsule(dst *ebiten.Image, x, y, w, h float64, st Style) {
	if w <= 0 || h <= 0 {
		return
	}
	r := float32(h / 2)
	fx, fy := float32(x), float32(y)
	vector.DrawFilledCircle(dst, fx+r, fy+r, r, st.IndicatorFill, false)
	vector.DrawFilledCircle(dst, fx+float32(w)-r, fy+r, r, st.IndicatorFill, false)
	vector.DrawFilledRect(dst, fx+r, fy, float32(w)-2*r, float32(h), st.IndicatorFill, false)
}

// labelWidth returns the measured width of item i's title, memoized until
// the list or style changes. Zero before fonts are initialized, which
// suppresses the indicator rather than drawing a bogus capsule.
func (b *TabBar) labelWidth(i int) float64 {
	if i < 0 || i >= len(b.items) {
		return 0
	}
	title := b.items[i].Title
	if w, ok := b.labelWidths[title]; ok {
		return w
	}
	w, _ := MeasureText(title, b.style.FontSize)
	if w > 0 {
		b.labelWidths[title] = w
	}
	return w
}
