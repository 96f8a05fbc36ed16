package axisbreak

// BrokenPoints computes the four data-space vertices of a break marker
// glyph centered at p. The glyph is two short diagonal strokes split
// gap/2 on either side of the center along the axis direction, each
// stroke spanning +-(dx, dy):
//
//	             P1       P3                        |
//	             /       /                          | /P3
//	------------/       /------------               |/
//	           /       /                            /
//	         P0       P2                           /  /P1
//	                                            P2/  /
//	                                                /
//	                                               /|
//	                                             P0 |
//
// Connecting P0-P1 and P2-P3 draws the two strokes. gap, dx and dy are
// in typographic points; all arithmetic goes through OffsetDataPoint so
// the glyph keeps a constant on-screen size. An axis outside
// {AxisX, AxisY} fails with ErrInvalidAxis.
func BrokenPoints(ax Axes, p Point, axis Axis, gap, dx, dy float64) ([4]Point, error) {
	var gapX, gapY float64
	switch axis {
	case AxisX:
		gapX = gap / 2
	case AxisY:
		gapY = gap / 2
	default:
		return [4]Point{}, ErrInvalidAxis
	}

	return [4]Point{
		OffsetDataPoint(ax, p, -gapX-dx, -gapY-dy),
		OffsetDataPoint(ax, p, -gapX+dx, -gapY+dy),
		OffsetDataPoint(ax, p, gapX-dx, gapY-dy),
		OffsetDataPoint(ax, p, gapX+dx, gapY+dy),
	}, nil
}

// MarkerPair holds the two line artists forming one break glyph, in
// order along the axis direction.
type MarkerPair struct {
	Lo, Hi Artist
}

// AddMarkers draws one break marker per broadcast (x, y) pair onto ax
// and returns the created artist pairs. Marker styling comes from the
// options; see DefaultLineStyle for the defaults.
func AddMarkers(ax Axes, x, y Coords, axis Axis, opts ...Option) ([]MarkerPair, error) {
	if !axis.valid() {
		return nil, ErrInvalidAxis
	}
	pts, err := Pairs(x, y)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	pairs := make([]MarkerPair, 0, len(pts))
	for _, p := range pts {
		q, err := BrokenPoints(ax, p, axis, cfg.gap, cfg.dx, cfg.dy)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, MarkerPair{
			Lo: ax.AddLine(q[0], q[1], cfg.style),
			Hi: ax.AddLine(q[2], q[3], cfg.style),
		})
	}
	return pairs, nil
}
