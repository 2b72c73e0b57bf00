package tabstrip

// ScrollAnim selects how a commanded scroll reaches its target.
type ScrollAnim int

const (
	// ScrollJump moves the offset immediately, no animation.
	ScrollJump ScrollAnim = iota
	// ScrollSnap eases toward the target (drag-end settle).
	ScrollSnap
	// ScrollSpring overshoots slightly and settles (tap-to-select).
	ScrollSpring
)

// ScrollCommand asks the composition root to move the content to Target.
// Commands are fire-and-forget; issuing a new one supersedes the previous.
type ScrollCommand struct {
	Target float64
	Anim   ScrollAnim
}

// SelectorConfig wires a Selector to its collaborators.
type SelectorConfig struct {
	// Metrics returns the current layout geometry.
	Metrics func() Metrics
	// Gesture reports whether a user gesture (drag or deceleration) is in
	// flight; focus pulses are emitted only then.
	Gesture func() bool
	// ScrollTo issues a scroll command back through the scroll source.
	ScrollTo func(ScrollCommand)
	// Haptics receives feedback pulses. nil means no feedback.
	Haptics Haptics
	// Selection, when non-nil, is kept in sync with the committed
	// selection ("" = none) so the embedding application observes it.
	Selection *State[string]
}

// Selector owns the committed selection and the transient focus (the item
// spanned by the viewport during interactive scrolling). It decides when a
// focus change becomes a selection, when to pulse, and when to command a
// scroll.
type Selector struct {
	cfg      SelectorConfig
	items    Items
	selected string // "" = no selection
	focus    int    // -1 while not scrolling
}

func NewSelector(cfg SelectorConfig) *Selector {
	if cfg.Haptics == nil {
		cfg.Haptics = noopHaptics{}
	}
	return &Selector{cfg: cfg, focus: -1}
}

// SelectedID returns the committed selection, "" when none.
func (s *Selector) SelectedID() string { return s.selected }

// FocusedIndex returns the transient focus index, -1 outside a gesture.
func (s *Selector) FocusedIndex() int { return s.focus }

// SetItems replaces the item list. A selected identity that disappeared
// clears the selection; the embedding application re-selects if desired.
func (s *Selector) SetItems(items Items) {
	s.items = items
	s.focus = -1
	if s.selected != "" && items.IndexOf(s.selected) < 0 {
		s.setSelected("")
	}
}

// Tap commits the tapped item as the selection, scrolls it into place with
// a spring and emits exactly one pulse. Tapping the current selection is a
// no-op.
func (s *Selector) Tap(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	id := s.items[i].ID
	if id == s.selected {
		return
	}
	s.setSelected(id)
	if m := s.cfg.Metrics(); m.Scrollable() {
		s.cfg.ScrollTo(ScrollCommand{Target: m.OffsetForIndex(i), Anim: ScrollSpring})
	}
	s.cfg.Haptics.Pulse()
}

// SetFocus records the item currently spanned by the viewport. Crossing an
// item boundary during an active gesture emits one pulse; the initial focus
// assignment of a gesture and purely programmatic offset changes do not.
func (s *Selector) SetFocus(i int) {
	if i == s.focus {
		return
	}
	prev := s.focus
	s.focus = i
	if prev >= 0 && s.cfg.Gesture != nil && s.cfg.Gesture() {
		s.cfg.Haptics.Pulse()
	}
}

// Settle reconciles focus into selection once interaction ends and snaps
// the content to the selected slot's exact offset. Promotion does not pulse
// again; the boundary crossing already did. Focus is cleared afterwards.
func (s *Selector) Settle(animated bool) {
	if s.focus >= 0 && s.focus < len(s.items) {
		if id := s.items[s.focus].ID; id != s.selected {
			s.setSelected(id)
		}
	}
	s.focus = -1
	m := s.cfg.Metrics()
	idx := s.items.IndexOf(s.selected)
	if idx < 0 || !m.Scrollable() {
		return
	}
	anim := ScrollSnap
	if !animated {
		anim = ScrollJump
	}
	s.cfg.ScrollTo(ScrollCommand{Target: m.OffsetForIndex(idx), Anim: anim})
}

// AutoSelectFirst selects the first item on first appearance when nothing
// is selected yet. No animation, no pulse.
func (s *Selector) AutoSelectFirst() {
	if s.selected != "" || len(s.items) == 0 {
		return
	}
	s.setSelected(s.items[0].ID)
}

// Select programmatically selects the item with the given ID and scrolls it
// into place. An ID not present in the list clears the selection. Never
// pulses.
func (s *Selector) Select(id string) {
	idx := s.items.IndexOf(id)
	if idx < 0 {
		if s.selected != "" {
			s.setSelected("")
		}
		return
	}
	if id != s.selected {
		s.setSelected(id)
	}
	if m := s.cfg.Metrics(); m.Scrollable() {
		s.cfg.ScrollTo(ScrollCommand{Target: m.OffsetForIndex(idx), Anim: ScrollSpring})
	}
}

func (s *Selector) setSelected(id string) {
	s.selected = id
	if s.cfg.Selection != nil {
		s.cfg.Selection.Set(id)
	}
}
