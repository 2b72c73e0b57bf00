package tabstrip

import (
	"math"
	"testing"
)

func testBarItems() []Item {
	return []Item(testItems())
}

func settleBar(b *TabBar, maxSteps int) {
	for i := 0; i < maxSteps && b.anim.active(); i++ {
		b.stepAnimation()
	}
}

func TestBarAutoSelectFirstOnAppearance(t *testing.T) {
	pulses := 0
	b := New(testBarItems(), WithHaptics(HapticsFunc(func() { pulses++ })))

	if id, ok := b.SelectedID(); ok {
		t.Fatalf("selection before layout = %q, want none", id)
	}

	b.SetViewWidth(360)
	id, ok := b.SelectedID()
	if !ok || id != "home" {
		t.Errorf("selection after first layout = %q, want home", id)
	}
	if pulses != 0 {
		t.Errorf("auto-select-first pulsed %d times, want 0", pulses)
	}
	if b.Offset() != 0 {
		t.Errorf("offset after auto-select = %v, want 0", b.Offset())
	}

	// Later measurements do not re-trigger it.
	b.Select("library")
	b.SetViewWidth(400)
	if id, _ := b.SelectedID(); id != "library" {
		t.Errorf("selection after re-measure = %q, want library", id)
	}
}

func TestBarEmptyList(t *testing.T) {
	b := New(nil)
	b.SetViewWidth(360)
	b.tapAt(100)
	b.stepAnimation()
	b.Next()
	b.Prev()
	if id, ok := b.SelectedID(); ok {
		t.Errorf("selection on empty list = %q, want none", id)
	}
	if b.FocusedIndex() != -1 {
		t.Errorf("focus on empty list = %d, want -1", b.FocusedIndex())
	}
}

func TestBarDragSettlesFocusIntoSelection(t *testing.T) {
	b := New(testBarItems())
	b.SetViewWidth(360)
	m := b.metrics()

	// Drag across intermediate offsets and release with no deceleration.
	b.tracker.DragWillBegin()
	b.tracker.SetOffset(40)
	b.tracker.SetOffset(170)
	b.tracker.SetOffset(m.OffsetForIndex(4) + 7)
	focused := b.FocusedIndex()
	if focused != 4 {
		t.Fatalf("focus mid-drag = %d, want 4", focused)
	}
	_ = b.tracker.DragWillEnd(0, b.Offset())
	b.tracker.DragDidEnd(false)

	if id, _ := b.SelectedID(); id != "starred" {
		t.Errorf("selection after settle = %q, want starred", id)
	}
	if b.FocusedIndex() != -1 {
		t.Errorf("focus right after settle = %d, want cleared", b.FocusedIndex())
	}
	settleBar(b, 600)
	if want := m.OffsetForIndex(4); math.Abs(b.Offset()-want) > 1e-9 {
		t.Errorf("offset after settle = %v, want snapped %v", b.Offset(), want)
	}
}

func TestBarDecelerationPath(t *testing.T) {
	b := New(testBarItems())
	b.SetViewWidth(360)
	m := b.metrics()

	b.tracker.DragWillBegin()
	b.tracker.SetOffset(133)
	target := b.tracker.DragWillEnd(-2.5, 133)
	if want := m.OffsetForIndex(1); math.Abs(target-want) > 1e-9 {
		t.Fatalf("fling target = %v, want %v", target, want)
	}
	b.tracker.DragDidEnd(true)
	b.anim.decelerate(target)

	if !b.Decelerating() {
		t.Fatal("expected Decelerating during inertial scroll")
	}
	settleBar(b, 600)
	if b.Decelerating() {
		t.Error("still Decelerating after animation finished")
	}
	if math.Abs(b.Offset()-target) > 1e-9 {
		t.Errorf("offset after deceleration = %v, want %v", b.Offset(), target)
	}
	if id, _ := b.SelectedID(); id != "search" {
		t.Errorf("selection after deceleration = %q, want search", id)
	}
}

func TestBarExternalBindingSet(t *testing.T) {
	var picked []string
	b := New(testBarItems(), WithOnSelect(func(it Item) { picked = append(picked, it.ID) }))
	b.SetViewWidth(360)
	m := b.metrics()
	picked = nil // drop the auto-select notification

	b.Selection().Set("settings")

	if id, _ := b.SelectedID(); id != "settings" {
		t.Errorf("selection after binding set = %q, want settings", id)
	}
	if len(picked) != 1 || picked[0] != "settings" {
		t.Errorf("onSelect calls = %v, want [settings]", picked)
	}
	settleBar(b, 600)
	if want := m.OffsetForIndex(7); math.Abs(b.Offset()-want) > 1e-9 {
		t.Errorf("offset after binding set = %v, want %v", b.Offset(), want)
	}
}

func TestBarSetItemsInvalidatesSelection(t *testing.T) {
	b := New(testBarItems())
	b.SetViewWidth(360)
	b.Select("discover")

	b.SetItems([]Item{{ID: "x", Title: "X"}, {ID: "y", Title: "Y"}})
	if id, ok := b.SelectedID(); ok {
		t.Errorf("selection after replacement = %q, want none", id)
	}
	// Offset is re-clamped to the shrunken content (2 x 90 fits in 360).
	if b.Offset() != 0 {
		t.Errorf("offset after replacement = %v, want 0", b.Offset())
	}
}

func TestBarNextPrevClamped(t *testing.T) {
	b := New(testBarItems())
	b.SetViewWidth(360)

	b.Prev()
	if id, _ := b.SelectedID(); id != "home" {
		t.Errorf("Prev at start = %q, want home", id)
	}
	for i := 0; i < 20; i++ {
		b.Next()
	}
	if id, _ := b.SelectedID(); id != "settings" {
		t.Errorf("Next past end = %q, want settings", id)
	}
}

func TestBarTapAt(t *testing.T) {
	pulses := 0
	b := New(testBarItems(), WithHaptics(HapticsFunc(func() { pulses++ })))
	b.SetViewWidth(360)

	// Viewport shows slots 0..3 at offset 0; a tap at x=200 lands in slot 2.
	b.tapAt(200)
	if id, _ := b.SelectedID(); id != "library" {
		t.Errorf("selection after tap = %q, want library", id)
	}
	if pulses != 1 {
		t.Errorf("pulses after tap = %d, want 1", pulses)
	}

	// Scrolled by one slot the same x lands one item later.
	settleBar(b, 600)
	b.tracker.SetOffset(90)
	b.tapAt(200)
	if id, _ := b.SelectedID(); id != "discover" {
		t.Errorf("selection after scrolled tap = %q, want discover", id)
	}
}
