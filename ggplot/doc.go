// Package ggplot hosts axisbreak on a github.com/gogpu/gg drawing
// context.
//
// Axes is a minimal retained-mode axes model: a pixel viewport inside the
// context, x/y data limits, optionally an installed piecewise scale, and
// a list of line artists. It implements axisbreak.Axes, so break markers,
// piecewise scales, and clip paths from the parent package apply to it
// directly. Render replays the artists onto the context, mapping clip
// paths onto the context's clip stack.
//
//	dc := gg.NewContext(640, 480)
//	ax, _ := ggplot.New(dc)
//	ax.SetXLim(0, 100)
//	ax.SetYLim(0, 1)
//	ax.Plot(xs, ys, axisbreak.LineStyle{Color: color.Black, Width: 1, ClipToAxes: true})
//	_, _ = axisbreak.BreakAndClip(ax, axisbreak.Cs(10, 90), axisbreak.Coords{}, axisbreak.WhichBoth)
//	ax.Render()
//	dc.SavePNG("broken.png")
package ggplot
