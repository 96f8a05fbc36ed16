package axisbreak

// MarkEdges draws break markers on the axes edges at the supplied break
// positions: x breaks on the bottom/top edges, y breaks on the
// left/right edges, per which. The returned map is keyed by the edge
// each glyph pair was drawn on.
//
// An invalid which fails with ErrInvalidWhich before any mutation. Fix
// the axis view limits before calling.
func MarkEdges(ax Axes, x, y Coords, which Which, opts ...Option) (map[Edge][]MarkerPair, error) {
	if !which.valid() {
		return nil, ErrInvalidWhich
	}

	markers := make(map[Edge][]MarkerPair)
	if !x.Empty() {
		ylow, yhigh := ax.YLim()
		if which.lower() {
			pairs, err := AddMarkers(ax, x, C(ylow), AxisX, opts...)
			if err != nil {
				return nil, err
			}
			markers[EdgeBottom] = pairs
		}
		if which.upper() {
			pairs, err := AddMarkers(ax, x, C(yhigh), AxisX, opts...)
			if err != nil {
				return nil, err
			}
			markers[EdgeTop] = pairs
		}
	}
	if !y.Empty() {
		xlow, xhigh := ax.XLim()
		if which.lower() {
			pairs, err := AddMarkers(ax, C(xlow), y, AxisY, opts...)
			if err != nil {
				return nil, err
			}
			markers[EdgeLeft] = pairs
		}
		if which.upper() {
			pairs, err := AddMarkers(ax, C(xhigh), y, AxisY, opts...)
			if err != nil {
				return nil, err
			}
			markers[EdgeRight] = pairs
		}
	}

	Logger().Debug("added break markers",
		"edges", len(markers), "which", which.String())
	return markers, nil
}

// ClipAxes installs clip paths so the visual gap at each break is
// actually empty: per-spine edge clips for the selected edges, and,
// unless disabled with WithArtistClip(false), the whole-axes grid clip
// on every non-spine artist.
//
// An invalid which fails with ErrInvalidWhich before any mutation. Fix
// the axis view limits before calling.
func ClipAxes(ax Axes, x, y Coords, which Which, opts ...Option) error {
	if !which.valid() {
		return ErrInvalidWhich
	}
	cfg := newConfig(opts)

	if !x.Empty() {
		ylow, yhigh := ax.YLim()
		if which.lower() {
			if err := clipSpine(ax, EdgeBottom, x, C(ylow), AxisX, opts); err != nil {
				return err
			}
		}
		if which.upper() {
			if err := clipSpine(ax, EdgeTop, x, C(yhigh), AxisX, opts); err != nil {
				return err
			}
		}
	}
	if !y.Empty() {
		xlow, xhigh := ax.XLim()
		if which.lower() {
			if err := clipSpine(ax, EdgeLeft, C(xlow), y, AxisY, opts); err != nil {
				return err
			}
		}
		if which.upper() {
			if err := clipSpine(ax, EdgeRight, C(xhigh), y, AxisY, opts); err != nil {
				return err
			}
		}
	}

	if cfg.clipArtists {
		path, err := AxesClipPath(ax, x, y, cfg.gap)
		if err != nil {
			return err
		}
		arts := ax.Artists()
		for _, art := range arts {
			art.SetClipPath(path)
		}
		Logger().Debug("installed whole-axes clip",
			"artists", len(arts), "rings", len(path.Rings()))
	}
	return nil
}

func clipSpine(ax Axes, edge Edge, x, y Coords, axis Axis, opts []Option) error {
	path, err := EdgeClipPath(ax, x, y, axis, opts...)
	if err != nil {
		return err
	}
	if spine := ax.Spine(edge); spine != nil {
		spine.SetClipPath(path)
	}
	return nil
}

// BreakAndClip adds break markers and applies the matching clip paths in
// one call: MarkEdges followed by ClipAxes with the same coordinates and
// options.
//
// Fix the axis view limits before calling.
func BreakAndClip(ax Axes, x, y Coords, which Which, opts ...Option) (map[Edge][]MarkerPair, error) {
	markers, err := MarkEdges(ax, x, y, which, opts...)
	if err != nil {
		return nil, err
	}
	if err := ClipAxes(ax, x, y, which, opts...); err != nil {
		return markers, err
	}
	return markers, nil
}
