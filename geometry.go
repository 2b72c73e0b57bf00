package tabstrip

import "math"

// Metrics describes the fixed-width slot layout of the bar and converts
// between item indices and scroll offsets. All methods are pure; a Metrics
// value is cheap to copy and safe to recompute per frame.
type Metrics struct {
	ItemWidth float64
	Spacing   float64
	Count     int
	ViewWidth float64
}

// ContentWidth is the total width of all slots including inner spacing.
func (m Metrics) ContentWidth() float64 {
	if m.Count <= 0 {
		return 0
	}
	return float64(m.Count)*m.ItemWidth + float64(m.Count-1)*m.Spacing
}

// ItemPosition returns the leading-edge offset of slot i within the content.
func (m Metrics) ItemPosition(i int) float64 {
	return float64(i) * (m.ItemWidth + m.Spacing)
}

// Scrollable reports whether the content overflows the viewport.
func (m Metrics) Scrollable() bool {
	return m.ContentWidth() > m.ViewWidth
}

// MaxOffset is the largest valid scroll offset.
func (m Metrics) MaxOffset() float64 {
	if d := m.ContentWidth() - m.ViewWidth; d > 0 {
		return d
	}
	return 0
}

// ClampOffset clamps x to the valid scroll range.
func (m Metrics) ClampOffset(x float64) float64 {
	if x < 0 {
		return 0
	}
	if max := m.MaxOffset(); x > max {
		return max
	}
	return x
}

// IndexForOffset maps a scroll offset to the item spanned by the viewport,
// normalizing the offset over the scrollable range. Returns -1 when the list
// is empty or the content fits the viewport (offset-driven focus is
// meaningless then; selection drives the index instead).
func (m Metrics) IndexForOffset(x float64) int {
	if m.Count <= 0 {
		return -1
	}
	denom := m.ContentWidth() - m.ViewWidth
	if denom <= 0 {
		return -1
	}
	t := x / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	i := int(math.Floor(t * float64(m.Count)))
	if i > m.Count-1 {
		i = m.Count - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// SlotIndex maps a content-space x position to the slot containing it.
// Used for release snapping: a drag released at x settles on floor(x/slot).
// Returns -1 when the list is empty.
func (m Metrics) SlotIndex(x float64) int {
	if m.Count <= 0 {
		return -1
	}
	slot := m.ItemWidth + m.Spacing
	if slot <= 0 {
		return 0
	}
	i := int(math.Floor(x / slot))
	if i < 0 {
		i = 0
	}
	if i > m.Count-1 {
		i = m.Count - 1
	}
	return i
}

// OffsetForIndex returns the exact scroll offset that puts slot i under the
// viewport per the normalized mapping, the inverse of IndexForOffset.
// Degenerate geometry (empty list, content narrower than one item, content
// fitting the viewport) yields 0.
func (m Metrics) OffsetForIndex(i int) float64 {
	if m.Count <= 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i > m.Count-1 {
		i = m.Count - 1
	}
	cw := m.ContentWidth()
	denom := cw - m.ItemWidth
	if denom <= 0 {
		return 0
	}
	return m.ItemPosition(i) / denom * m.MaxOffset()
}
