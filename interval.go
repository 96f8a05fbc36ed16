package axisbreak

import (
	"errors"
	"fmt"
)

// Errors returned by interval validation.
var (
	// ErrNoIntervals is returned when a scale is built from an empty list.
	ErrNoIntervals = errors.New("axisbreak: interval list is empty")

	// ErrIntervalOrder is returned when intervals are not strictly
	// increasing and non-overlapping.
	ErrIntervalOrder = errors.New("axisbreak: intervals must be non-overlapping and sorted")

	// ErrFactorNotPositive is returned when an interval's scale factor
	// is zero or negative.
	ErrFactorNotPositive = errors.New("axisbreak: scale factor must be positive")
)

// Interval is one piece of a piecewise axis scale: data in [Start, End]
// is stretched or compressed by Factor. A sequence of intervals is valid
// when every interval has Start < End and a positive Factor, and
// successive intervals satisfy prev.End <= next.Start. Touching intervals
// (prev.End == next.Start) share a boundary; a gap between intervals is
// mapped with an implicit factor of 1.
type Interval struct {
	Start  float64
	End    float64
	Factor float64
}

// validateIntervals walks the list once, checking strict ordering and
// positivity of factors. Boundary comparisons are exact; there is no
// epsilon tolerance.
func validateIntervals(intervals []Interval) error {
	if len(intervals) == 0 {
		return ErrNoIntervals
	}
	prevEnd := intervals[0].Start
	for i, iv := range intervals {
		if iv.Start >= iv.End {
			return fmt.Errorf("%w: interval %d has start %g >= end %g",
				ErrIntervalOrder, i, iv.Start, iv.End)
		}
		if i > 0 && iv.Start < prevEnd {
			return fmt.Errorf("%w: interval %d starts at %g before previous end %g",
				ErrIntervalOrder, i, iv.Start, prevEnd)
		}
		if iv.Factor <= 0 {
			return fmt.Errorf("%w: interval %d has factor %g",
				ErrFactorNotPositive, i, iv.Factor)
		}
		prevEnd = iv.End
	}
	return nil
}
