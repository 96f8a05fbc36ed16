package axisbreak

import (
	"errors"
	"image/color"
)

// Errors returned by argument validation.
var (
	// ErrInvalidAxis is returned when an Axis value is outside {AxisX, AxisY}.
	ErrInvalidAxis = errors.New("axisbreak: axis must be AxisX or AxisY")

	// ErrInvalidWhich is returned when a Which value is outside
	// {WhichBoth, WhichLower, WhichUpper}.
	ErrInvalidWhich = errors.New("axisbreak: which must be WhichLower, WhichUpper or WhichBoth")
)

// Axis selects the axis a break or scale applies to.
type Axis int

const (
	// AxisX breaks run across the x axis: the glyph splits along the
	// horizontal display direction.
	AxisX Axis = iota

	// AxisY is the perpendicular case.
	AxisY
)

func (a Axis) valid() bool { return a == AxisX || a == AxisY }

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Edge names one of the four axes boundary spines. Edge values key the
// marker maps returned by MarkEdges and BreakAndClip.
type Edge string

const (
	EdgeBottom Edge = "bottom"
	EdgeTop    Edge = "top"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

// Which selects the lower edge (bottom for x breaks, left for y breaks),
// the upper edge (top, right), or both. The zero value is WhichBoth.
type Which int

const (
	WhichBoth Which = iota
	WhichLower
	WhichUpper
)

func (w Which) valid() bool { return w >= WhichBoth && w <= WhichUpper }

// lower and upper report whether the respective edge is selected.
func (w Which) lower() bool { return w == WhichLower || w == WhichBoth }
func (w Which) upper() bool { return w == WhichUpper || w == WhichBoth }

// String returns "both", "lower" or "upper".
func (w Which) String() string {
	switch w {
	case WhichLower:
		return "lower"
	case WhichUpper:
		return "upper"
	default:
		return "both"
	}
}

// LineStyle is the explicit styling configuration for added line artists.
type LineStyle struct {
	// Color is the stroke color.
	Color color.Color

	// Width is the stroke width in typographic points.
	Width float64

	// ClipToAxes controls whether the artist participates in clipping.
	// Break markers leave it false so glyphs can render outside the
	// data area.
	ClipToAxes bool
}

// DefaultLineStyle returns the default marker styling: black strokes of
// width 1.5 points, not clipped to the axes bounding box.
func DefaultLineStyle() LineStyle {
	return LineStyle{
		Color: color.Black,
		Width: 1.5,
	}
}

// Artist is a drawable object owned by an Axes implementation whose
// visibility can be limited by a clip path.
type Artist interface {
	// SetClipPath installs a clip path in data coordinates. Everything
	// outside the path's rings is hidden. A nil path removes the clip.
	SetClipPath(p *Path)
}

// Axes is the narrow surface this package needs from a host plotting
// library. Implementations adapt a concrete library's axes object; the
// ggplot package in this module is one such adapter.
//
// Every mutating call applies immediately to the underlying object.
// Implementations are not expected to be safe for concurrent use, matching
// the single-threaded assumption of typical plotting libraries.
type Axes interface {
	// XLim and YLim return the current view range of the axis.
	XLim() (lo, hi float64)
	YLim() (lo, hi float64)

	// DataToDisplay maps a data-space point to display space (pixels),
	// applying any installed scale. DisplayToData is its inverse.
	DataToDisplay(p Point) Point
	DisplayToData(p Point) Point

	// DPI returns the display resolution in dots per inch, used to
	// convert typographic points (1/72 inch) to display units.
	DPI() float64

	// SetScale installs a forward/inverse scale function pair on one
	// axis. Tick placement and the data/display transforms follow it.
	SetScale(axis Axis, s ScaleFuncs) error

	// AddLine adds a two-point line artist in data coordinates and
	// returns it.
	AddLine(p0, p1 Point, style LineStyle) Artist

	// Spine returns the artist for one boundary spine, or nil if the
	// host has no such spine.
	Spine(edge Edge) Artist

	// Artists returns the non-spine, non-text artists currently owned
	// by the axes, the set the whole-axes clip path applies to.
	Artists() []Artist
}
