// Package axisbreak adds broken axes and piecewise axis scaling to Go
// plotting surfaces.
//
// # Overview
//
// axisbreak draws "broken axis" marker glyphs to signal a discontinuity in
// an axis, builds clip paths that keep the visual gap at each break empty,
// and provides a piecewise linear/log scale so disjoint data ranges can
// share one axis with an independent zoom factor per interval.
//
// The host plotting library is consumed through the narrow Axes interface
// (view limits, a data/display transform pair, a scale installer, a line
// sink, and clip setters on spines and artists). Two hosts ship with the
// module: ggplot renders onto a github.com/gogpu/gg drawing context, and
// gonumplot adapts the piecewise scale and break glyphs to gonum.org/v1/plot.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/axisbreak"
//		"github.com/gogpu/axisbreak/ggplot"
//		"github.com/gogpu/gg"
//	)
//
//	dc := gg.NewContext(640, 480)
//	ax, _ := ggplot.New(dc)
//	ax.SetXLim(0, 100)
//	ax.SetYLim(0, 10)
//
//	// Compress the boring middle of the x range.
//	axisbreak.ScaleAxes(ax, []axisbreak.Interval{
//		{Start: 0, End: 10, Factor: 1},
//		{Start: 10, End: 90, Factor: 0.1},
//		{Start: 90, End: 100, Factor: 1},
//	}, nil, axisbreak.ModeLinear)
//
//	// Mark the breaks and carve out the gaps.
//	_, _ = axisbreak.BreakAndClip(ax, axisbreak.Cs(10, 90), axisbreak.Coords{},
//		axisbreak.WhichBoth)
//
// # Units
//
// Marker gap, dx, dy and clip extensions are given in typographic points
// (1/72 inch) and converted through the host's DPI, so glyphs keep a
// constant on-screen size no matter how the axis data is scaled.
//
// # Caller responsibility
//
// Clip paths and edge markers read the current view limits. Fix the limits
// (SetXLim/SetYLim or the host equivalent) before calling MarkEdges,
// ClipAxes, or BreakAndClip; changing the limits afterwards leaves stale
// geometry behind.
package axisbreak

// Version is the current version of the library.
const Version = "0.1.0"
