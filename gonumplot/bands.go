package gonumplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// GapBands is a plotter that paints an opaque band over each gap,
// hiding whatever other plotters drew across the break. gonum/plot has
// no post-hoc artist clipping, so masking the band is the equivalent of
// installing a whole-axes clip path.
//
// Add it after the data plotters and before BreakMarkers.
type GapBands struct {
	// XBreaks and YBreaks are the break positions in data coordinates.
	XBreaks, YBreaks []float64

	// Gap is the full band width.
	Gap vg.Length

	// Color fills the band. Defaults to the usual plot background,
	// white.
	Color color.Color
}

// NewGapBands masks the given x breaks with col (nil for white).
func NewGapBands(xBreaks []float64, col color.Color) *GapBands {
	return &GapBands{
		XBreaks: xBreaks,
		Gap:     vg.Points(5),
		Color:   col,
	}
}

// Plot implements plot.Plotter.
func (b *GapBands) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	col := b.Color
	if col == nil {
		col = color.White
	}
	g := b.Gap / 2

	for _, xb := range b.XBreaks {
		px := trX(xb)
		c.FillPolygon(col, []vg.Point{
			{X: px - g, Y: c.Rectangle.Min.Y},
			{X: px + g, Y: c.Rectangle.Min.Y},
			{X: px + g, Y: c.Rectangle.Max.Y},
			{X: px - g, Y: c.Rectangle.Max.Y},
		})
	}
	for _, yb := range b.YBreaks {
		py := trY(yb)
		c.FillPolygon(col, []vg.Point{
			{X: c.Rectangle.Min.X, Y: py - g},
			{X: c.Rectangle.Max.X, Y: py - g},
			{X: c.Rectangle.Max.X, Y: py + g},
			{X: c.Rectangle.Min.X, Y: py + g},
		})
	}
}
