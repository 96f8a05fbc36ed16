package axisbreak

import "image/color"

// Option configures marker and clip-path construction.
// Use functional options to override the documented defaults.
//
// Example:
//
//	// Red markers with a wider gap
//	axisbreak.BreakAndClip(ax, axisbreak.Cs(10, 90), axisbreak.Coords{},
//		axisbreak.WhichBoth,
//		axisbreak.WithGap(8),
//		axisbreak.WithColor(color.RGBA{R: 0xff, A: 0xff}))
type Option func(*config)

// config holds the resolved marker/clip parameters. All length-like
// fields are in typographic points.
type config struct {
	gap         float64
	dx, dy      float64
	extend      float64
	extendSet   bool
	style       LineStyle
	clipArtists bool
}

// defaultConfig returns the documented defaults: gap 5, dx 3, dy 3,
// extend = gap, default line styling, whole-axes artist clipping on.
func defaultConfig() config {
	return config{
		gap:         5,
		dx:          3,
		dy:          3,
		style:       DefaultLineStyle(),
		clipArtists: true,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.extendSet {
		cfg.extend = cfg.gap
	}
	return cfg
}

// WithGap sets the total gap length of the break in points (default 5).
func WithGap(gap float64) Option {
	return func(c *config) {
		c.gap = gap
	}
}

// WithDelta sets the (dx, dy) shape of the marker strokes in points
// (default 3, 3). dx and dy control the "angle" of the two diagonal
// strokes.
func WithDelta(dx, dy float64) Option {
	return func(c *config) {
		c.dx = dx
		c.dy = dy
	}
}

// WithExtend sets how far, in points, edge clip paths extend past the
// view limits so visible spine segments still reach the plot corners.
// The default is the gap length.
func WithExtend(extend float64) Option {
	return func(c *config) {
		c.extend = extend
		c.extendSet = true
	}
}

// WithColor sets the marker stroke color (default black).
func WithColor(col color.Color) Option {
	return func(c *config) {
		c.style.Color = col
	}
}

// WithLineWidth sets the marker stroke width in points (default 1.5).
func WithLineWidth(w float64) Option {
	return func(c *config) {
		c.style.Width = w
	}
}

// WithClipToAxes sets whether marker lines are clipped to the axes
// bounding box. Off by default so glyphs can render outside the data
// area.
func WithClipToAxes(clip bool) Option {
	return func(c *config) {
		c.style.ClipToAxes = clip
	}
}

// WithArtistClip sets whether ClipAxes also installs the whole-axes grid
// clip on non-spine artists (default true). With it off only the spines
// are clipped.
func WithArtistClip(clip bool) Option {
	return func(c *config) {
		c.clipArtists = clip
	}
}
