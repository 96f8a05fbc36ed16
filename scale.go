package axisbreak

import (
	"errors"
	"math"
)

// ErrLogDomain is returned when a log-mode scale maps part of the visible
// domain to a non-positive value.
var ErrLogDomain = errors.New("axisbreak: log scale requires a positive remapped domain")

// Mode selects the scale flavor installed by ScaleAxes.
type Mode int

const (
	// ModeLinear installs the plain piecewise-linear scale.
	ModeLinear Mode = iota

	// ModeLog follows the piecewise remap with a base-10 logarithm.
	ModeLog
)

// ScaleFuncs is a forward/inverse function pair describing a strictly
// monotone axis remapping. Hosts install it on an axis so tick placement
// and rendering can move between data and scaled coordinates.
type ScaleFuncs interface {
	Forward(x float64) float64
	Inverse(y float64) float64
}

// Scale is a strictly monotone, continuous, piecewise-linear bijection
// built from a validated interval list. The first interval's start is the
// anchor: Forward is the identity at and below it. Each interval maps
// with slope Factor; the region between two disjoint intervals and the
// region past the last interval map with slope 1.
//
// Boundary ties resolve left-open/right-closed: a value exactly at a
// breakpoint belongs to the segment ending there.
type Scale struct {
	breaks  []float64 // strictly increasing breakpoints
	factors []float64 // factors[i] is the slope on (breaks[i], breaks[i+1]]
	images  []float64 // images[i] == Forward(breaks[i])
}

// NewScale validates intervals and builds the piecewise scale.
func NewScale(intervals []Interval) (*Scale, error) {
	if err := validateIntervals(intervals); err != nil {
		return nil, err
	}

	s := &Scale{breaks: []float64{intervals[0].Start}}
	for i, iv := range intervals {
		if i > 0 && iv.Start > intervals[i-1].End {
			// Bridge the hidden region between disjoint intervals
			// with unit slope, matching the anchor convention.
			s.factors = append(s.factors, 1)
			s.breaks = append(s.breaks, iv.Start)
		}
		s.factors = append(s.factors, iv.Factor)
		s.breaks = append(s.breaks, iv.End)
	}

	s.images = make([]float64, len(s.breaks))
	s.images[0] = s.breaks[0]
	for i, f := range s.factors {
		s.images[i+1] = s.images[i] + (s.breaks[i+1]-s.breaks[i])*f
	}
	return s, nil
}

// MustScale is like NewScale but panics on error. Use only with
// hard-coded interval lists.
func MustScale(intervals []Interval) *Scale {
	s, err := NewScale(intervals)
	if err != nil {
		panic(err)
	}
	return s
}

// Forward maps a data coordinate to its scaled image.
func (s *Scale) Forward(x float64) float64 {
	if x <= s.breaks[0] {
		return x
	}
	for i, f := range s.factors {
		if x <= s.breaks[i+1] {
			return s.images[i] + (x-s.breaks[i])*f
		}
	}
	last := len(s.breaks) - 1
	return s.images[last] + (x - s.breaks[last])
}

// Inverse maps a scaled coordinate back to data space. It is the exact
// inverse of Forward up to floating-point rounding.
func (s *Scale) Inverse(y float64) float64 {
	if y <= s.images[0] {
		return y
	}
	for i, f := range s.factors {
		if y <= s.images[i+1] {
			return s.breaks[i] + (y-s.images[i])/f
		}
	}
	last := len(s.breaks) - 1
	return s.breaks[last] + (y - s.images[last])
}

// ForwardSlice maps every sample through Forward.
func (s *Scale) ForwardSlice(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = s.Forward(x)
	}
	return out
}

// InverseSlice maps every sample through Inverse.
func (s *Scale) InverseSlice(ys []float64) []float64 {
	out := make([]float64, len(ys))
	for i, y := range ys {
		out[i] = s.Inverse(y)
	}
	return out
}

// LogScale composes a piecewise scale with a base-10 logarithm, so axis
// positions are logarithmic in the remapped coordinate. The remapped
// domain must stay positive; Forward returns NaN outside it.
type LogScale struct {
	lin *Scale
}

// NewLogScale validates intervals and builds the log-mode scale. The
// scaled image of the first breakpoint must be positive, which pins the
// whole piecewise image of the interval range to positive values.
func NewLogScale(intervals []Interval) (*LogScale, error) {
	lin, err := NewScale(intervals)
	if err != nil {
		return nil, err
	}
	if lin.images[0] <= 0 {
		return nil, ErrLogDomain
	}
	return &LogScale{lin: lin}, nil
}

// Forward maps a data coordinate to log10 of its piecewise image.
func (s *LogScale) Forward(x float64) float64 {
	return math.Log10(s.lin.Forward(x))
}

// Inverse maps a log-scaled coordinate back to data space.
func (s *LogScale) Inverse(y float64) float64 {
	return s.lin.Inverse(math.Pow(10, y))
}

// ScaleAxis builds a scale for the interval list and installs it on one
// axis of ax. The axis display limits are untouched.
func ScaleAxis(ax Axes, intervals []Interval, axis Axis, mode Mode) error {
	if !axis.valid() {
		return ErrInvalidAxis
	}
	var (
		s   ScaleFuncs
		err error
	)
	switch mode {
	case ModeLog:
		s, err = NewLogScale(intervals)
	default:
		s, err = NewScale(intervals)
	}
	if err != nil {
		return err
	}
	return ax.SetScale(axis, s)
}

// ScaleAxes installs piecewise scales on the x and/or y axis. An empty
// interval list leaves that axis alone.
func ScaleAxes(ax Axes, xIntervals, yIntervals []Interval, mode Mode) error {
	if len(xIntervals) > 0 {
		if err := ScaleAxis(ax, xIntervals, AxisX, mode); err != nil {
			return err
		}
	}
	if len(yIntervals) > 0 {
		if err := ScaleAxis(ax, yIntervals, AxisY, mode); err != nil {
			return err
		}
	}
	return nil
}
