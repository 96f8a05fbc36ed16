package axisbreak

// OffsetDataPoint shifts a data point by a fixed physical amount given in
// typographic points (1/72 inch), independent of the axis's current scale
// or zoom.
//
// The point is mapped data to display through the axes transform, the
// offset is added in display units (points times DPI/72), and the result
// is mapped back through the inverse transform. The offset is deliberately
// not applied in data units: a data-space delta would distort through a
// non-linear scale, while this round trip keeps marker geometry at a
// constant on-screen size.
func OffsetDataPoint(ax Axes, p Point, dxPt, dyPt float64) Point {
	disp := ax.DataToDisplay(p)
	perPt := ax.DPI() / 72
	disp.X += dxPt * perPt
	disp.Y += dyPt * perPt
	return ax.DisplayToData(disp)
}
