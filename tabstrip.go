// Package tabstrip implements a horizontally scrolling, snapping tab bar
// for Ebitengine: a row of fixed-width selectable items with a sliding
// indicator capsule under the active one. Scroll offset, selection and
// indicator geometry stay consistent across drags, flings, taps and
// programmatic selection.
package tabstrip

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ItemDrawer customizes how a single slot is rendered. x/y is the slot's
// top-left in destination coordinates; active marks the focused or selected
// item.
type ItemDrawer func(dst *ebiten.Image, item Item, x, y float64, active bool, st Style)

// Option configures a TabBar at construction.
type Option func(*TabBar)

func WithAlignment(a Alignment) Option {
	return func(b *TabBar) { b.align = a }
}

func WithStyle(st Style) Option {
	return func(b *TabBar) { b.style = st }
}

// WithIndicatorStyle overrides only the indicator capsule fill, leaving the
// rest of the style intact.
func WithIndicatorStyle(fill color.Color) Option {
	return func(b *TabBar) { b.style.IndicatorFill = fill }
}

func WithHaptics(h Haptics) Option {
	return func(b *TabBar) {
		if h != nil {
			b.haptics = h
		}
	}
}

// WithOnSelect registers a callback fired after every committed selection
// change, in addition to the Selection() binding.
func WithOnSelect(fn func(Item)) Option {
	return func(b *TabBar) { b.onSelect = fn }
}

func WithItemDrawer(fn ItemDrawer) Option {
	return func(b *TabBar) { b.drawItem = fn }
}

// TabBar is the composition root wiring geometry, scroll tracking,
// selection and rendering together.
type TabBar struct {
	style    Style
	align    Alignment
	haptics  Haptics
	onSelect func(Item)
	drawItem ItemDrawer

	items     Items
	selection *State[string]
	selector  *Selector
	tracker   *Tracker
	anim      animator
	drag      dragRecognizer

	viewWidth        float64
	originX, originY float64
	appeared         bool
	labelWidths      map[string]float64
}

// New creates a bar over the given items. Selection starts empty; the
// first item is auto-selected once the bar receives its first non-zero
// viewport width.
func New(items []Item, opts ...Option) *TabBar {
	b := &TabBar{
		style:       DefaultStyle(),
		align:       AlignCenter,
		haptics:     noopHaptics{},
		labelWidths: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.selection = NewState("")
	b.tracker = NewTracker(TrackerHooks{
		Focus:  func(i int) { b.selector.SetFocus(i) },
		Settle: func(animated bool) { b.selector.Settle(animated) },
	})
	b.selector = NewSelector(SelectorConfig{
		Metrics:   b.metrics,
		Gesture:   func() bool { return b.tracker.Dragging() || b.tracker.Decelerating() },
		ScrollTo:  b.scrollTo,
		Haptics:   b.haptics,
		Selection: b.selection,
	})
	b.selection.OnChange(func(id string) {
		if id != b.selector.SelectedID() {
			// Written from outside through the binding; route it as a
			// selection request.
			b.selector.Select(id)
		}
		if b.onSelect != nil {
			if i := b.items.IndexOf(id); i >= 0 {
				b.onSelect(b.items[i])
			}
		}
	})
	b.SetItems(items)
	return b
}

func (b *TabBar) metrics() Metrics {
	return Metrics{
		ItemWidth: b.style.ItemWidth,
		Spacing:   b.style.Spacing,
		Count:     len(b.items),
		ViewWidth: b.viewWidth,
	}
}

func (b *TabBar) scrollTo(cmd ScrollCommand) {
	target := b.metrics().ClampOffset(cmd.Target)
	switch cmd.Anim {
	case ScrollJump:
		b.anim.cancel()
		b.tracker.SetOffset(target)
	case ScrollSnap:
		b.anim.ease(target)
	case ScrollSpring:
		b.anim.spring(target)
	}
}

// SetItems replaces the item list wholesale and re-lays out. A previously
// selected identity that is gone clears the selection.
func (b *TabBar) SetItems(items []Item) {
	b.items = append(Items(nil), items...)
	b.selector.SetItems(b.items)
	b.tracker.SetMetrics(b.metrics())
	clear(b.labelWidths)
}

// SetViewWidth reports the measured viewport width. Duplicate updates are
// fine; the last value wins. The first non-zero width counts as the bar's
// first appearance and triggers auto-select-first.
func (b *TabBar) SetViewWidth(w float64) {
	b.viewWidth = w
	b.tracker.SetMetrics(b.metrics())
	if !b.appeared && w > 0 {
		b.appeared = true
		b.selector.AutoSelectFirst()
	}
}

// SetStyle swaps the style and re-lays out.
func (b *TabBar) SetStyle(st Style) {
	b.style = st
	b.tracker.SetMetrics(b.metrics())
	clear(b.labelWidths)
}

// SetIndicatorStyle overrides the indicator capsule fill at runtime.
func (b *TabBar) SetIndicatorStyle(fill color.Color) {
	b.style.IndicatorFill = fill
}

func (b *TabBar) SetAlignment(a Alignment) { b.align = a }

func (b *TabBar) Style() Style { return b.style }

// Selection exposes the two-way selection binding ("" = none). The
// embedding application may Set it to request a selection change.
func (b *TabBar) Selection() *State[string] { return b.selection }

// SelectedID returns the committed selection.
func (b *TabBar) SelectedID() (string, bool) {
	id := b.selector.SelectedID()
	return id, id != ""
}

// Select programmatically selects an item by ID and scrolls it into place.
// Unknown IDs clear the selection.
func (b *TabBar) Select(id string) { b.selector.Select(id) }

// Next selects the item after the current selection, clamped at the end.
func (b *TabBar) Next() { b.selectShift(1) }

// Prev selects the item before the current selection, clamped at the start.
func (b *TabBar) Prev() { b.selectShift(-1) }

func (b *TabBar) selectShift(delta int) {
	if len(b.items) == 0 {
		return
	}
	i := b.items.IndexOf(b.selector.SelectedID())
	if i < 0 {
		i = 0
	} else {
		i += delta
	}
	if i < 0 {
		i = 0
	}
	if i > len(b.items)-1 {
		i = len(b.items) - 1
	}
	b.selector.Select(b.items[i].ID)
}

// FocusedIndex returns the transient focus, -1 outside a gesture.
func (b *TabBar) FocusedIndex() int { return b.selector.FocusedIndex() }

// Offset returns the current scroll offset.
func (b *TabBar) Offset() float64 { return b.tracker.Offset() }

// Dragging reports whether a drag gesture is in flight.
func (b *TabBar) Dragging() bool { return b.tracker.Dragging() }

// Decelerating reports whether an inertial scroll is in flight.
func (b *TabBar) Decelerating() bool { return b.tracker.Decelerating() }

// Update advances input handling and any in-flight scroll animation by one
// tick. Call it from the game's Update.
func (b *TabBar) Update() {
	b.drag.update(b)
	b.stepAnimation()
}

// stepAnimation is Update without input polling; split out so logic tests
// can drive animation headlessly.
func (b *TabBar) stepAnimation() {
	if b.tracker.Dragging() || !b.anim.active() {
		return
	}
	next, decelerated := b.anim.step(b.tracker.Offset())
	b.tracker.SetOffset(next)
	if decelerated {
		b.tracker.DecelerationDidEnd()
	}
}

// activeIndex is the item the indicator tracks: the focus while a gesture
// is in flight, the selection otherwise.
func (b *TabBar) activeIndex() int {
	if i := b.selector.FocusedIndex(); i >= 0 {
		return i
	}
	return b.items.IndexOf(b.selector.SelectedID())
}

func (b *TabBar) contains(x, y int) bool {
	return float64(x) >= b.originX && float64(x) < b.originX+b.viewWidth &&
		float64(y) >= b.originY && float64(y) < b.originY+b.style.BarHeight
}

// tapAt commits a tap at destination x as a selection.
func (b *TabBar) tapAt(x float64) {
	m := b.metrics()
	start := b.originX + alignStart(b.align, m.ViewWidth-m.ContentWidth())
	contentX := x - start + b.tracker.Offset()
	if contentX < 0 || contentX > m.ContentWidth() {
		return
	}
	if i := m.SlotIndex(contentX); i >= 0 {
		b.selector.Tap(i)
	}
}
