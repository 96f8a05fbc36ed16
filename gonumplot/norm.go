package gonumplot

import (
	"github.com/gogpu/axisbreak"
)

// Norm adapts a forward/inverse scale pair to plot.Normalizer, so a
// gonum/plot axis lays out data through the piecewise compression.
//
//	p.X.Scale = gonumplot.Norm{Scale: s}
type Norm struct {
	Scale axisbreak.ScaleFuncs
}

// Normalize maps x to [0, 1] along the scaled axis. A degenerate range
// normalizes to the midpoint. A nil Scale is the identity.
func (n Norm) Normalize(min, max, x float64) float64 {
	fmin := n.fwd(min)
	fmax := n.fwd(max)
	if fmin == fmax {
		return 0.5
	}
	return (n.fwd(x) - fmin) / (fmax - fmin)
}

func (n Norm) fwd(v float64) float64 {
	if n.Scale == nil {
		return v
	}
	return n.Scale.Forward(v)
}
