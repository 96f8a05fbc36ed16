package ggplot

import (
	"fmt"

	"github.com/gogpu/axisbreak"
)

// Render replays the retained artists onto the drawing context:
// background, plotted series and break markers, then the spines.
// Clip paths installed on artists are mapped through the data/display
// transform onto the context's clip stack.
//
// Render may be called again after further mutation; it redraws
// everything it owns but does not clear other content unless a
// background color is set.
func (a *Axes) Render() error {
	dc := a.dc
	if a.background != nil {
		dc.SetColor(a.background)
		dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("ggplot: background fill: %w", err)
		}
	}

	for _, l := range a.artists {
		if err := a.drawLine(l); err != nil {
			return err
		}
	}

	a.syncSpines()
	for _, edge := range []axisbreak.Edge{
		axisbreak.EdgeBottom, axisbreak.EdgeTop,
		axisbreak.EdgeLeft, axisbreak.EdgeRight,
	} {
		if err := a.drawLine(a.spines[edge]); err != nil {
			return err
		}
	}

	axisbreak.Logger().Debug("rendered axes",
		"artists", len(a.artists),
		"width", dc.Width(), "height", dc.Height())
	return nil
}

// syncSpines recomputes the spine segments from the current view
// limits.
func (a *Axes) syncSpines() {
	seg := func(p0, p1 axisbreak.Point) []axisbreak.Point {
		return []axisbreak.Point{p0, p1}
	}
	a.spines[axisbreak.EdgeBottom].pts = seg(axisbreak.Pt(a.xlo, a.ylo), axisbreak.Pt(a.xhi, a.ylo))
	a.spines[axisbreak.EdgeTop].pts = seg(axisbreak.Pt(a.xlo, a.yhi), axisbreak.Pt(a.xhi, a.yhi))
	a.spines[axisbreak.EdgeLeft].pts = seg(axisbreak.Pt(a.xlo, a.ylo), axisbreak.Pt(a.xlo, a.yhi))
	a.spines[axisbreak.EdgeRight].pts = seg(axisbreak.Pt(a.xhi, a.ylo), axisbreak.Pt(a.xhi, a.yhi))
}

// drawLine strokes one artist, honoring its clip state. Spines always
// apply an installed clip path; other artists only clip when their
// style says so, which is how marker glyphs render outside the data
// area.
func (a *Axes) drawLine(l *Line) error {
	if len(l.pts) < 2 {
		return nil
	}
	dc := a.dc

	clipped := (l.spine && l.clip != nil) || (!l.spine && l.style.ClipToAxes)
	if clipped {
		dc.Push()
		if !l.spine {
			x0, y0, x1, y1 := a.viewport()
			dc.ClipRect(x0, y0, x1-x0, y1-y0)
		}
		if l.clip != nil {
			a.clipTo(l.clip)
		}
	}

	dc.SetColor(l.style.Color)
	dc.SetLineWidth(l.style.Width * a.dpi / 72)
	first := a.DataToDisplay(l.pts[0])
	dc.MoveTo(first.X, first.Y)
	for _, p := range l.pts[1:] {
		q := a.DataToDisplay(p)
		dc.LineTo(q.X, q.Y)
	}
	err := dc.Stroke()

	if clipped {
		dc.Pop()
	}
	if err != nil {
		return fmt.Errorf("ggplot: stroke: %w", err)
	}
	return nil
}

// clipTo pushes a data-space clip path onto the context's clip stack.
// All rings become one region; everything outside them is hidden.
func (a *Axes) clipTo(p *axisbreak.Path) {
	dc := a.dc
	for _, ring := range p.Rings() {
		q := a.DataToDisplay(ring[0])
		dc.MoveTo(q.X, q.Y)
		for _, pt := range ring[1:] {
			q = a.DataToDisplay(pt)
			dc.LineTo(q.X, q.Y)
		}
		dc.ClosePath()
	}
	dc.Clip()
}
