package tabstrip

// IndicatorInput bundles everything the indicator position depends on.
// The output is derived state, recomputed whenever any field changes.
type IndicatorInput struct {
	Offset     float64
	Metrics    Metrics
	Index      int     // selected index, or focused index during a gesture
	LabelWidth float64 // measured rendered width of that item's label
	PadX       float64 // capsule padding on each side of the label
	Alignment  Alignment
}

// IndicatorRect computes the indicator capsule's x position and width in
// viewport coordinates. ok is false when the indicator should not be drawn
// (empty list, no selection, unmeasured label or degenerate viewport).
//
// While the content scrolls, x is an affine function of the offset: the
// capsule's center sweeps from half an item width past the leading edge to
// half an item width before the trailing edge as the content covers its
// scrollable range. When the content fits the viewport the position comes
// straight from the slot layout, shifted by the alignment's share of the
// unused space. The width hugs the measured label, not the slot.
func IndicatorRect(in IndicatorInput) (x, w float64, ok bool) {
	m := in.Metrics
	if m.Count <= 0 || in.Index < 0 || in.Index >= m.Count {
		return 0, 0, false
	}
	if in.LabelWidth <= 0 || m.ViewWidth <= 0 {
		return 0, 0, false
	}
	w = in.LabelWidth + 2*in.PadX

	var center float64
	if m.Scrollable() {
		p := 0.0
		if max := m.MaxOffset(); max > 0 {
			p = in.Offset / max
			if p < 0 {
				p = 0
			} else if p > 1 {
				p = 1
			}
		}
		center = p*(m.ViewWidth-m.ItemWidth) + m.ItemWidth/2
	} else {
		center = alignStart(in.Alignment, m.ViewWidth-m.ContentWidth()) +
			m.ItemPosition(in.Index) + m.ItemWidth/2
	}
	return center - w/2, w, true
}

// alignStart returns the leading inset that distributes free viewport space
// per the alignment rule.
func alignStart(a Alignment, free float64) float64 {
	if free <= 0 {
		return 0
	}
	switch a {
	case AlignLeading:
		return 0
	case AlignTrailing:
		return free
	default:
		return free / 2
	}
}
