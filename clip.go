package axisbreak

// EdgeClipPath builds the keep-visible clip path for a single spine: a
// closed polygon strip along the edge with a notch cut out at each break
// point. For AxisX the strip runs along a horizontal edge whose data
// y-coordinate comes from y (scalar, or first/last of a sequence for the
// two ends); x carries the break coordinates. AxisY is the transposed
// case.
//
// Each break contributes one quad of notch-boundary vertices; the notch
// width is gap + 2*dx (2*dy for AxisY). The strip's end points sit extend
// points past the view limits so the visible spine segments still reach
// the plot corners; extend defaults to the gap length and also inflates
// dx and dy.
//
// The current view limits are read at call time. Fix the axis limits
// before calling, or the clip region will be stale.
func EdgeClipPath(ax Axes, x, y Coords, axis Axis, opts ...Option) (*Path, error) {
	if !axis.valid() {
		return nil, ErrInvalidAxis
	}
	cfg := newConfig(opts)
	extend := cfg.extend
	dx := cfg.dx + extend
	dy := cfg.dy + extend

	// Extension anchors at the two ends of the edge, each with two
	// offset vertices spanning the strip width.
	var lo, hi Point
	var offs [4]Point
	if axis == AxisX {
		xlow, xhigh := ax.XLim()
		lo, hi = Pt(xlow, y.First()), Pt(xhigh, y.Last())
		offs = [4]Point{
			{X: -extend - dx, Y: -dy},
			{X: -extend + dx, Y: dy},
			{X: extend - dx, Y: -dy},
			{X: extend + dx, Y: dy},
		}
	} else {
		ylow, yhigh := ax.YLim()
		lo, hi = Pt(x.First(), ylow), Pt(x.Last(), yhigh)
		offs = [4]Point{
			{X: -dx, Y: -extend - dy},
			{X: dx, Y: -extend + dy},
			{X: -dx, Y: extend - dy},
			{X: dx, Y: extend + dy},
		}
	}

	pts := []Point{
		OffsetDataPoint(ax, lo, offs[0].X, offs[0].Y),
		OffsetDataPoint(ax, lo, offs[1].X, offs[1].Y),
	}
	breaks, err := Pairs(x, y)
	if err != nil {
		return nil, err
	}
	for _, p := range breaks {
		q, err := BrokenPoints(ax, p, axis, cfg.gap, dx, dy)
		if err != nil {
			return nil, err
		}
		pts = append(pts, q[0], q[1], q[2], q[3])
	}
	pts = append(pts,
		OffsetDataPoint(ax, hi, offs[2].X, offs[2].Y),
		OffsetDataPoint(ax, hi, offs[3].X, offs[3].Y),
	)

	// Consecutive groups of four vertices form one keep-region ring
	// between two notches (or between an extension and a notch).
	path := NewPath()
	for i := 0; i+3 < len(pts); i += 4 {
		path.Ring(pts[i], pts[i+1], pts[i+3], pts[i+2])
	}
	return path, nil
}

// AxesClipPath builds the keep-visible clip path for the whole axes
// area: the view rectangle is cut at every x break and every y break,
// removing a gap-wide band at each cut, and one closed rectangle ring is
// emitted per remaining grid cell. Installed on non-spine artists it
// hides plotted curves and markers inside the gap bands.
//
// Like EdgeClipPath, this reads the current view limits; fix the axis
// limits before calling.
func AxesClipPath(ax Axes, x, y Coords, gap float64) (*Path, error) {
	xlow, xhigh := ax.XLim()
	xcuts := []float64{xlow}
	for _, xb := range x.Values() {
		lo := OffsetDataPoint(ax, Pt(xb, 0), -gap/2, 0)
		hi := OffsetDataPoint(ax, Pt(xb, 0), gap/2, 0)
		xcuts = append(xcuts, lo.X, hi.X)
	}
	xcuts = append(xcuts, xhigh)

	ylow, yhigh := ax.YLim()
	ycuts := []float64{ylow}
	for _, yb := range y.Values() {
		lo := OffsetDataPoint(ax, Pt(0, yb), 0, -gap/2)
		hi := OffsetDataPoint(ax, Pt(0, yb), 0, gap/2)
		ycuts = append(ycuts, lo.Y, hi.Y)
	}
	ycuts = append(ycuts, yhigh)

	path := NewPath()
	for i := 0; i+1 < len(xcuts); i += 2 {
		for j := 0; j+1 < len(ycuts); j += 2 {
			path.Rect(xcuts[i], ycuts[j], xcuts[i+1], ycuts[j+1])
		}
	}
	return path, nil
}
