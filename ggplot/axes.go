package ggplot

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/axisbreak"
	"github.com/gogpu/gg"
)

// Common errors returned by Axes operations.
var (
	// ErrNilContext is returned when a nil drawing context is passed.
	ErrNilContext = errors.New("ggplot: nil drawing context")

	// ErrBadLimits is returned when axis limits are not strictly
	// increasing.
	ErrBadLimits = errors.New("ggplot: axis limits must satisfy lo < hi")

	// ErrBadSeries is returned when a plotted series has mismatched or
	// empty coordinate slices.
	ErrBadSeries = errors.New("ggplot: series needs equal-length, non-empty xs and ys")
)

// Line is a polyline artist in data coordinates. Break markers, spines
// and plotted series are all Lines; only their styling and clip state
// differ.
type Line struct {
	pts   []axisbreak.Point
	style axisbreak.LineStyle
	clip  *axisbreak.Path
	spine bool
}

// SetClipPath installs a clip path in data coordinates. For non-spine
// artists the clip only takes effect when the line's style has
// ClipToAxes set, mirroring how break marker glyphs escape clipping.
func (l *Line) SetClipPath(p *axisbreak.Path) { l.clip = p }

// Points returns the polyline vertices in data space.
func (l *Line) Points() []axisbreak.Point { return l.pts }

// Style returns the line's styling.
func (l *Line) Style() axisbreak.LineStyle { return l.style }

// Option configures an Axes during creation.
type Option func(*Axes)

// WithMargin sets the pixel margin between the context edge and the
// axes viewport (default 48).
func WithMargin(px float64) Option {
	return func(a *Axes) { a.margin = px }
}

// WithDPI sets the display resolution used to convert typographic
// points to pixels (default 72, one point per pixel).
func WithDPI(dpi float64) Option {
	return func(a *Axes) { a.dpi = dpi }
}

// WithBackground sets the color Render clears the context with before
// drawing (default white). Pass nil to leave the context untouched.
func WithBackground(col color.Color) Option {
	return func(a *Axes) { a.background = col }
}

// Axes is a minimal axes model over a gg drawing context, implementing
// axisbreak.Axes. It retains artists in data coordinates and draws them
// on Render, so clip paths installed between plotting and rendering
// apply to everything.
//
// Axes is NOT safe for concurrent use, matching the single-threaded
// assumption of the drawing context underneath.
type Axes struct {
	dc     *gg.Context
	margin float64
	dpi    float64

	xlo, xhi float64
	ylo, yhi float64

	xscale, yscale axisbreak.ScaleFuncs

	artists    []*Line
	spines     map[axisbreak.Edge]*Line
	background color.Color
}

// spineStyle is the default spine stroke: black, one point wide.
var spineStyle = axisbreak.LineStyle{Color: color.Black, Width: 1}

// New creates an Axes drawing into dc. Default view limits are the unit
// square; set real limits with SetXLim/SetYLim before adding breaks.
func New(dc *gg.Context, opts ...Option) (*Axes, error) {
	if dc == nil {
		return nil, ErrNilContext
	}
	a := &Axes{
		dc:         dc,
		margin:     48,
		dpi:        72,
		xlo:        0,
		xhi:        1,
		ylo:        0,
		yhi:        1,
		background: color.White,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.spines = map[axisbreak.Edge]*Line{
		axisbreak.EdgeBottom: {spine: true, style: spineStyle},
		axisbreak.EdgeTop:    {spine: true, style: spineStyle},
		axisbreak.EdgeLeft:   {spine: true, style: spineStyle},
		axisbreak.EdgeRight:  {spine: true, style: spineStyle},
	}
	return a, nil
}

// MustNew is like New but panics on error. Use only when the context is
// known to be non-nil.
func MustNew(dc *gg.Context, opts ...Option) *Axes {
	a, err := New(dc, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// SetXLim sets the x view range. Fix the limits before installing
// breaks or clip paths; their geometry reads the limits at call time.
func (a *Axes) SetXLim(lo, hi float64) error {
	if lo >= hi {
		return fmt.Errorf("%w: x %g..%g", ErrBadLimits, lo, hi)
	}
	a.xlo, a.xhi = lo, hi
	return nil
}

// SetYLim sets the y view range.
func (a *Axes) SetYLim(lo, hi float64) error {
	if lo >= hi {
		return fmt.Errorf("%w: y %g..%g", ErrBadLimits, lo, hi)
	}
	a.ylo, a.yhi = lo, hi
	return nil
}

// XLim returns the current x view range.
func (a *Axes) XLim() (float64, float64) { return a.xlo, a.xhi }

// YLim returns the current y view range.
func (a *Axes) YLim() (float64, float64) { return a.ylo, a.yhi }

// DPI returns the display resolution in dots per inch.
func (a *Axes) DPI() float64 { return a.dpi }

// SetScale installs a forward/inverse scale pair on one axis. The
// data/display transforms apply it immediately.
func (a *Axes) SetScale(axis axisbreak.Axis, s axisbreak.ScaleFuncs) error {
	switch axis {
	case axisbreak.AxisX:
		a.xscale = s
	case axisbreak.AxisY:
		a.yscale = s
	default:
		return axisbreak.ErrInvalidAxis
	}
	return nil
}

// viewport returns the pixel rectangle the data limits map onto.
// y0 is the top edge: pixel y grows downward.
func (a *Axes) viewport() (x0, y0, x1, y1 float64) {
	w := float64(a.dc.Width())
	h := float64(a.dc.Height())
	return a.margin, a.margin, w - a.margin, h - a.margin
}

func fwd(s axisbreak.ScaleFuncs, v float64) float64 {
	if s == nil {
		return v
	}
	return s.Forward(v)
}

func inv(s axisbreak.ScaleFuncs, v float64) float64 {
	if s == nil {
		return v
	}
	return s.Inverse(v)
}

// DataToDisplay maps a data point to context pixels, applying any
// installed scale. Data y grows upward, pixel y downward.
func (a *Axes) DataToDisplay(p axisbreak.Point) axisbreak.Point {
	x0, y0, x1, y1 := a.viewport()
	tx := (fwd(a.xscale, p.X) - fwd(a.xscale, a.xlo)) /
		(fwd(a.xscale, a.xhi) - fwd(a.xscale, a.xlo))
	ty := (fwd(a.yscale, p.Y) - fwd(a.yscale, a.ylo)) /
		(fwd(a.yscale, a.yhi) - fwd(a.yscale, a.ylo))
	return axisbreak.Pt(x0+tx*(x1-x0), y1-ty*(y1-y0))
}

// DisplayToData is the inverse of DataToDisplay.
func (a *Axes) DisplayToData(p axisbreak.Point) axisbreak.Point {
	x0, y0, x1, y1 := a.viewport()
	tx := (p.X - x0) / (x1 - x0)
	ty := (y1 - p.Y) / (y1 - y0)
	sxlo, sxhi := fwd(a.xscale, a.xlo), fwd(a.xscale, a.xhi)
	sylo, syhi := fwd(a.yscale, a.ylo), fwd(a.yscale, a.yhi)
	return axisbreak.Pt(
		inv(a.xscale, sxlo+tx*(sxhi-sxlo)),
		inv(a.yscale, sylo+ty*(syhi-sylo)),
	)
}

// AddLine adds a two-point line artist in data coordinates.
func (a *Axes) AddLine(p0, p1 axisbreak.Point, style axisbreak.LineStyle) axisbreak.Artist {
	l := &Line{pts: []axisbreak.Point{p0, p1}, style: style}
	a.artists = append(a.artists, l)
	return l
}

// Plot adds a polyline series in data coordinates. The series is
// clipped to the axes viewport and participates in whole-axes clipping.
func (a *Axes) Plot(xs, ys []float64, style axisbreak.LineStyle) (*Line, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: got %d and %d", ErrBadSeries, len(xs), len(ys))
	}
	pts := make([]axisbreak.Point, len(xs))
	for i := range xs {
		pts[i] = axisbreak.Pt(xs[i], ys[i])
	}
	style.ClipToAxes = true
	l := &Line{pts: pts, style: style}
	a.artists = append(a.artists, l)
	return l, nil
}

// Spine returns the artist for one boundary spine.
func (a *Axes) Spine(edge axisbreak.Edge) axisbreak.Artist {
	s, ok := a.spines[edge]
	if !ok {
		return nil
	}
	return s
}

// Artists returns the non-spine artists: plotted series and break
// marker strokes.
func (a *Axes) Artists() []axisbreak.Artist {
	arts := make([]axisbreak.Artist, len(a.artists))
	for i, l := range a.artists {
		arts[i] = l
	}
	return arts
}
