package tabstrip

// TrackerHooks receives the events a Tracker derives from raw scroll input.
type TrackerHooks struct {
	// Focus is called with the index spanned by the viewport whenever the
	// offset moves across scrollable content.
	Focus func(index int)
	// Settle is called when user interaction ends and the bar should
	// reconcile focus into selection and snap. animated is true on the
	// immediate drag-end path and false after inertial deceleration.
	Settle func(animated bool)
}

// Tracker holds the raw scroll state of the bar: offset, layout metrics and
// the dragging/decelerating flags. It receives the four scroll-source
// signals plus measurement updates and forwards derived focus and settle
// events through its hooks. All calls happen on the game loop; no locking.
type Tracker struct {
	metrics      Metrics
	offset       float64
	dragging     bool
	decelerating bool
	hooks        TrackerHooks
}

func NewTracker(hooks TrackerHooks) *Tracker {
	return &Tracker{hooks: hooks}
}

func (t *Tracker) Offset() float64    { return t.offset }
func (t *Tracker) Dragging() bool     { return t.dragging }
func (t *Tracker) Decelerating() bool { return t.decelerating }
func (t *Tracker) Metrics() Metrics   { return t.metrics }

// SetMetrics replaces the layout measurements. Duplicate or out-of-order
// updates are fine; the last value wins. The offset is re-clamped so a
// shrinking content width cannot strand it out of range.
func (t *Tracker) SetMetrics(m Metrics) {
	t.metrics = m
	t.offset = m.ClampOffset(t.offset)
}

// DragWillBegin marks the start of a user drag.
func (t *Tracker) DragWillBegin() {
	t.dragging = true
}

// DragWillEnd is called with the release velocity and the offset the scroll
// source proposes to decelerate toward. A fling (non-zero velocity) snaps
// the proposal to the containing slot's exact offset so deceleration never
// settles mid-item; the returned value is the deceleration target.
func (t *Tracker) DragWillEnd(velocity, proposed float64) float64 {
	if velocity == 0 {
		return proposed
	}
	i := t.metrics.SlotIndex(proposed)
	if i < 0 {
		return proposed
	}
	return t.metrics.OffsetForIndex(i)
}

// DragDidEnd marks the end of the drag gesture. Without deceleration the
// bar settles immediately, with animation.
func (t *Tracker) DragDidEnd(willDecelerate bool) {
	t.dragging = false
	t.decelerating = willDecelerate
	if !willDecelerate && t.hooks.Settle != nil {
		t.hooks.Settle(true)
	}
}

// DecelerationDidEnd re-confirms the settle once inertial scrolling stops.
// The snap is unanimated here: the deceleration already landed on the
// snapped target and an animated snap would race a new drag visually.
func (t *Tracker) DecelerationDidEnd() {
	if !t.decelerating {
		return
	}
	t.decelerating = false
	if t.hooks.Settle != nil {
		t.hooks.Settle(false)
	}
}

// InterruptDeceleration clears the decelerating flag without settling.
// Called when a new gesture takes over an in-flight deceleration.
func (t *Tracker) InterruptDeceleration() {
	t.decelerating = false
}

// SetOffset records a new scroll offset and forwards the spanned item as a
// focus update. Focus tracking is disabled while the content fits the
// viewport; the list is fully visible and selection drives the index.
func (t *Tracker) SetOffset(x float64) {
	t.offset = x
	if !t.metrics.Scrollable() {
		return
	}
	if t.hooks.Focus == nil {
		return
	}
	if i := t.metrics.IndexForOffset(x); i >= 0 {
		t.hooks.Focus(i)
	}
}
