package gonumplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/axisbreak"
)

// BreakMarkers is a plotter drawing the paired diagonal break glyphs on
// the plot boundary. X breaks mark the bottom and top edges, y breaks
// the left and right edges, on the sides selected by Which.
//
// The glyphs are stroked directly on the canvas, outside the data clip,
// so they straddle the boundary the way an axis break should.
type BreakMarkers struct {
	// XBreaks and YBreaks are the break positions in data coordinates.
	XBreaks, YBreaks []float64

	// Which selects the edges to mark.
	Which axisbreak.Which

	// Gap is the full separation between the two strokes of a pair.
	Gap vg.Length

	// DX and DY are the stroke half-extents along and across the axis.
	DX, DY vg.Length

	// LineStyle is the stroke style for every glyph.
	LineStyle draw.LineStyle
}

// NewBreakMarkers returns a marker plotter for the given edge
// selection with the default glyph geometry.
func NewBreakMarkers(which axisbreak.Which) (*BreakMarkers, error) {
	switch which {
	case axisbreak.WhichBoth, axisbreak.WhichLower, axisbreak.WhichUpper:
	default:
		return nil, fmt.Errorf("%w: %d", axisbreak.ErrInvalidWhich, which)
	}
	return &BreakMarkers{
		Which: which,
		Gap:   vg.Points(5),
		DX:    vg.Points(3),
		DY:    vg.Points(3),
		LineStyle: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(1.5),
		},
	}, nil
}

// Plot implements plot.Plotter.
func (m *BreakMarkers) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	lower := m.Which == axisbreak.WhichBoth || m.Which == axisbreak.WhichLower
	upper := m.Which == axisbreak.WhichBoth || m.Which == axisbreak.WhichUpper

	for _, xb := range m.XBreaks {
		px := trX(xb)
		if lower {
			m.pairX(c, px, c.Rectangle.Min.Y)
		}
		if upper {
			m.pairX(c, px, c.Rectangle.Max.Y)
		}
	}
	for _, yb := range m.YBreaks {
		py := trY(yb)
		if lower {
			m.pairY(c, c.Rectangle.Min.X, py)
		}
		if upper {
			m.pairY(c, c.Rectangle.Max.X, py)
		}
	}
}

// pairX strokes the two glyphs flanking an x break at boundary height y.
func (m *BreakMarkers) pairX(c draw.Canvas, px, y vg.Length) {
	g := m.Gap / 2
	c.StrokeLine2(m.LineStyle, px-g-m.DX, y-m.DY, px-g+m.DX, y+m.DY)
	c.StrokeLine2(m.LineStyle, px+g-m.DX, y-m.DY, px+g+m.DX, y+m.DY)
}

// pairY strokes the two glyphs flanking a y break at boundary offset x.
func (m *BreakMarkers) pairY(c draw.Canvas, x, py vg.Length) {
	g := m.Gap / 2
	c.StrokeLine2(m.LineStyle, x-m.DX, py-g-m.DY, x+m.DX, py-g+m.DY)
	c.StrokeLine2(m.LineStyle, x-m.DX, py+g-m.DY, x+m.DX, py+g+m.DY)
}
