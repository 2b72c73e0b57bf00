package tabstrip

import (
	"math"
	"testing"
)

type selectorHarness struct {
	sel      *Selector
	metrics  Metrics
	gesture  bool
	commands []ScrollCommand
	pulses   int
	state    *State[string]
}

func newSelectorHarness(items Items, m Metrics) *selectorHarness {
	h := &selectorHarness{metrics: m, state: NewState("")}
	h.sel = NewSelector(SelectorConfig{
		Metrics:   func() Metrics { return h.metrics },
		Gesture:   func() bool { return h.gesture },
		ScrollTo:  func(cmd ScrollCommand) { h.commands = append(h.commands, cmd) },
		Haptics:   HapticsFunc(func() { h.pulses++ }),
		Selection: h.state,
	})
	h.sel.SetItems(items)
	return h
}

func testItems() Items {
	return Items{
		{ID: "home", Title: "Home", Icon: "home"},
		{ID: "search", Title: "Search", Icon: "search"},
		{ID: "library", Title: "Library", Icon: "list"},
		{ID: "discover", Title: "Discover", Icon: "compass"},
		{ID: "starred", Title: "Starred", Icon: "star"},
		{ID: "history", Title: "History"},
		{ID: "profile", Title: "Profile"},
		{ID: "settings", Title: "Settings", Icon: "gear"},
	}
}

func TestTapSelectsWithOnePulse(t *testing.T) {
	m := testMetrics()
	h := newSelectorHarness(testItems(), m)
	h.sel.AutoSelectFirst()

	h.sel.Tap(4)

	if got := h.sel.SelectedID(); got != "starred" {
		t.Errorf("selected = %q, want starred", got)
	}
	if h.pulses != 1 {
		t.Errorf("pulses = %d, want exactly 1", h.pulses)
	}
	if len(h.commands) != 1 {
		t.Fatalf("commands = %+v, want exactly 1", h.commands)
	}
	cmd := h.commands[0]
	if cmd.Anim != ScrollSpring {
		t.Errorf("tap scroll anim = %v, want ScrollSpring", cmd.Anim)
	}
	if want := m.OffsetForIndex(4); math.Abs(cmd.Target-want) > 1e-9 {
		t.Errorf("tap scroll target = %v, want %v", cmd.Target, want)
	}
	if got := h.state.Get(); got != "starred" {
		t.Errorf("binding value = %q, want starred", got)
	}
}

func TestTapCurrentSelectionIsNoop(t *testing.T) {
	h := newSelectorHarness(testItems(), testMetrics())
	h.sel.AutoSelectFirst()

	h.sel.Tap(0)
	if h.pulses != 0 || len(h.commands) != 0 {
		t.Errorf("tap on current selection: pulses=%d commands=%+v, want none",
			h.pulses, h.commands)
	}
}

func TestFocusPulseRules(t *testing.T) {
	h := newSelectorHarness(testItems(), testMetrics())
	h.sel.AutoSelectFirst()
	h.gesture = true

	// Initial focus assignment of a gesture: no boundary crossed, no pulse.
	h.sel.SetFocus(0)
	if h.pulses != 0 {
		t.Fatalf("pulses after initial focus = %d, want 0", h.pulses)
	}

	// Crossing boundaries during the gesture pulses once each.
	h.sel.SetFocus(1)
	h.sel.SetFocus(2)
	if h.pulses != 2 {
		t.Errorf("pulses after two crossings = %d, want 2", h.pulses)
	}

	// Repeated focus on the same item is not a crossing.
	h.sel.SetFocus(2)
	if h.pulses != 2 {
		t.Errorf("pulses after repeat focus = %d, want 2", h.pulses)
	}

	// No gesture active: programmatic offset changes never pulse.
	h.gesture = false
	h.sel.SetFocus(3)
	if h.pulses != 2 {
		t.Errorf("pulses after idle focus change = %d, want 2", h.pulses)
	}

	// Focus changes never command a scroll by themselves.
	if len(h.commands) != 0 {
		t.Errorf("focus updates issued scroll commands: %+v", h.commands)
	}
}

func TestSettlePromotesFocus(t *testing.T) {
	m := testMetrics()
	h := newSelectorHarness(testItems(), m)
	h.sel.AutoSelectFirst()
	h.gesture = true
	h.sel.SetFocus(0)
	h.sel.SetFocus(5)
	h.gesture = false
	pulsesBefore := h.pulses

	h.sel.Settle(true)

	if got := h.sel.SelectedID(); got != "history" {
		t.Errorf("selected after settle = %q, want history", got)
	}
	if h.pulses != pulsesBefore {
		t.Errorf("settle pulsed again: %d -> %d", pulsesBefore, h.pulses)
	}
	if h.sel.FocusedIndex() != -1 {
		t.Errorf("focus after settle = %d, want cleared", h.sel.FocusedIndex())
	}
	if len(h.commands) == 0 {
		t.Fatal("settle commanded no scroll")
	}
	cmd := h.commands[len(h.commands)-1]
	if cmd.Anim != ScrollSnap {
		t.Errorf("animated settle anim = %v, want ScrollSnap", cmd.Anim)
	}
	if want := m.OffsetForIndex(5); math.Abs(cmd.Target-want) > 1e-9 {
		t.Errorf("settle target = %v, want %v", cmd.Target, want)
	}
}

func TestSettleUnanimatedAfterDeceleration(t *testing.T) {
	h := newSelectorHarness(testItems(), testMetrics())
	h.sel.AutoSelectFirst()
	h.gesture = true
	h.sel.SetFocus(0)
	h.sel.SetFocus(2)
	h.gesture = false

	h.sel.Settle(false)

	cmd := h.commands[len(h.commands)-1]
	if cmd.Anim != ScrollJump {
		t.Errorf("deceleration-end settle anim = %v, want ScrollJump", cmd.Anim)
	}
}

func TestAutoSelectFirst(t *testing.T) {
	h := newSelectorHarness(testItems(), testMetrics())

	h.sel.AutoSelectFirst()
	if got := h.sel.SelectedID(); got != "home" {
		t.Errorf("selected = %q, want home", got)
	}
	if h.pulses != 0 {
		t.Errorf("auto-select pulsed %d times, want 0", h.pulses)
	}
	if len(h.commands) != 0 {
		t.Errorf("auto-select commanded a scroll: %+v", h.commands)
	}

	// Idempotent, and never steals an existing selection.
	h.sel.Select("library")
	h.sel.AutoSelectFirst()
	if got := h.sel.SelectedID(); got != "library" {
		t.Errorf("selected after second auto-select = %q, want library", got)
	}
}

func TestAutoSelectFirstEmptyList(t *testing.T) {
	h := newSelectorHarness(nil, Metrics{ItemWidth: 90, ViewWidth: 360})
	h.sel.AutoSelectFirst()
	if got := h.sel.SelectedID(); got != "" {
		t.Errorf("selected on empty list = %q, want none", got)
	}
}

func TestSetItemsInvalidatesVanishedSelection(t *testing.T) {
	h := newSelectorHarness(testItems(), testMetrics())
	h.sel.Select("library")

	var notified []string
	h.state.OnChange(func(id string) { notified = append(notified, id) })

	h.sel.SetItems(Items{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}})
	if got := h.sel.SelectedID(); got != "" {
		t.Errorf("selected after list replacement = %q, want none", got)
	}
	if len(notified) != 1 || notified[0] != "" {
		t.Errorf("binding notifications = %v, want [\"\"]", notified)
	}

	// Replacement that keeps the identity keeps the selection.
	h.sel.Select("a")
	h.sel.SetItems(Items{{ID: "b"}, {ID: "a"}})
	if got := h.sel.SelectedID(); got != "a" {
		t.Errorf("selected after reorder = %q, want a", got)
	}
}

func TestSelectUnknownIDClears(t *testing.T) {
	h := newSelectorHarness(testItems(), testMetrics())
	h.sel.Select("library")
	h.sel.Select("no-such-tab")
	if got := h.sel.SelectedID(); got != "" {
		t.Errorf("selected = %q, want cleared", got)
	}
	if h.pulses != 0 {
		t.Errorf("programmatic select pulsed %d times, want 0", h.pulses)
	}
}

func TestTapOutOfRange(t *testing.T) {
	h := newSelectorHarness(testItems(), testMetrics())
	h.sel.Tap(-1)
	h.sel.Tap(99)
	if h.pulses != 0 || len(h.commands) != 0 || h.sel.SelectedID() != "" {
		t.Error("out-of-range tap changed state")
	}
}
