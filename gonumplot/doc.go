// Package gonumplot hosts axisbreak on gonum.org/v1/plot.
//
// gonum/plot has no retained artist clipping, so the pieces map onto its
// own extension points instead: Norm adapts a piecewise scale to
// plot.Normalizer, Ticker places ticks inside the kept intervals,
// BreakMarkers is a plotter drawing the paired break glyphs on the plot
// boundary, and GapBands paints the masked gap bands that whole-axes
// clipping would otherwise cut out.
//
//	s := axisbreak.MustScale(intervals)
//	p := plot.New()
//	p.X.Scale = gonumplot.Norm{Scale: s}
//	p.X.Tick.Marker = gonumplot.Ticker{Intervals: intervals}
//	p.Add(gonumplot.NewGapBands(breaks, nil))
//	m, _ := gonumplot.NewBreakMarkers(axisbreak.WhichBoth)
//	m.XBreaks = breaks
//	p.Add(m)
package gonumplot
