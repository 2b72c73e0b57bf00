package tabstrip

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// dragSlop is the horizontal travel in pixels that turns a press into
	// a drag rather than a tap.
	dragSlop = 6.0
	// velocitySmooth is the EMA factor for the per-tick release velocity.
	velocitySmooth = 0.3
	// flingMinSpeed (px/tick) separates a fling release from a dead stop.
	flingMinSpeed = 1.0
	// flingProjection is how many ticks of travel at release velocity the
	// proposed deceleration target projects ahead.
	flingProjection = 10.0

	wheelSpeed       = 40.0
	wheelSettleTicks = 15
)

// dragRecognizer turns raw Ebitengine pointer input (mouse or touch) into
// the four scroll-source signals the tracker consumes, plus taps. Only one
// gesture is in flight at a time; a new press interrupts any programmatic
// scroll or deceleration.
type dragRecognizer struct {
	pointerDown bool
	dragging    bool
	touch       bool
	touchID     ebiten.TouchID

	startX      float64
	lastX       float64
	startOffset float64
	vel         float64

	wheelSettle int
}

func (d *dragRecognizer) update(b *TabBar) {
	if d.pointerDown {
		d.track(b)
	} else {
		d.maybeBegin(b)
	}
	d.updateWheel(b)
}

func (d *dragRecognizer) maybeBegin(b *TabBar) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if b.contains(x, y) {
			d.begin(b, float64(x), false, 0)
		}
		return
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if b.contains(x, y) {
			d.begin(b, float64(x), true, id)
			return
		}
	}
}

func (d *dragRecognizer) begin(b *TabBar, x float64, touch bool, id ebiten.TouchID) {
	d.pointerDown = true
	d.dragging = false
	d.touch = touch
	d.touchID = id
	d.startX = x
	d.lastX = x
	d.startOffset = b.tracker.Offset()
	d.vel = 0
	d.wheelSettle = 0
	// A fresh gesture takes over whatever scroll was in flight.
	b.anim.cancel()
	b.tracker.InterruptDeceleration()
}

func (d *dragRecognizer) track(b *TabBar) {
	var x float64
	released := false
	if d.touch {
		if inpututil.IsTouchJustReleased(d.touchID) {
			released = true
			x = d.lastX
		} else {
			tx, _ := ebiten.TouchPosition(d.touchID)
			x = float64(tx)
		}
	} else {
		cx, _ := ebiten.CursorPosition()
		x = float64(cx)
		released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	}

	d.vel = d.vel*(1-velocitySmooth) + (x-d.lastX)*velocitySmooth
	d.lastX = x

	if !d.dragging && abs(x-d.startX) > dragSlop && b.metrics().Scrollable() {
		d.dragging = true
		b.tracker.DragWillBegin()
	}
	if d.dragging {
		m := b.metrics()
		b.tracker.SetOffset(m.ClampOffset(d.startOffset - (x - d.startX)))
	}
	if released {
		d.release(b)
	}
}

func (d *dragRecognizer) release(b *TabBar) {
	d.pointerDown = false
	if !d.dragging {
		if abs(d.lastX-d.startX) <= dragSlop {
			b.tapAt(d.startX)
		}
		return
	}
	d.dragging = false

	m := b.metrics()
	off := b.tracker.Offset()
	if v := d.vel; abs(v) >= flingMinSpeed && m.Scrollable() {
		// Content follows the finger, so positive pointer velocity means
		// the offset keeps shrinking.
		proposed := m.ClampOffset(off - v*flingProjection)
		target := b.tracker.DragWillEnd(v, proposed)
		b.tracker.DragDidEnd(true)
		b.anim.decelerate(m.ClampOffset(target))
	} else {
		_ = b.tracker.DragWillEnd(0, off)
		b.tracker.DragDidEnd(false)
	}
}

// updateWheel scrolls the bar under the cursor on wheel input and settles
// shortly after the wheel goes quiet, like a drag that ended without
// deceleration.
func (d *dragRecognizer) updateWheel(b *TabBar) {
	if d.pointerDown {
		return
	}
	wx, wy := ebiten.Wheel()
	delta := wx
	if delta == 0 {
		delta = wy
	}
	if delta != 0 {
		cx, cy := ebiten.CursorPosition()
		if b.contains(cx, cy) && b.metrics().Scrollable() {
			b.anim.cancel()
			b.tracker.InterruptDeceleration()
			m := b.metrics()
			b.tracker.SetOffset(m.ClampOffset(b.tracker.Offset() - delta*wheelSpeed))
			d.wheelSettle = wheelSettleTicks
			return
		}
	}
	if d.wheelSettle > 0 {
		d.wheelSettle--
		if d.wheelSettle == 0 {
			b.selector.Settle(true)
		}
	}
}
