package gonumplot

import (
	"sort"
	"strconv"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot"

	"github.com/gogpu/axisbreak"
)

// Ticker implements plot.Ticker for a broken axis. It places labeled
// ticks evenly inside each kept interval and none inside the gaps,
// where a default ticker would label compressed, misleading positions.
type Ticker struct {
	// Intervals are the kept ranges of the axis, in the same order
	// they were given to the scale.
	Intervals []axisbreak.Interval

	// PerInterval is the number of ticks per interval (default 3).
	PerInterval int
}

// Ticks returns the tick marks inside [min, max], sorted ascending.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	per := t.PerInterval
	if per < 2 {
		per = 3
	}

	var ticks []plot.Tick
	for _, iv := range t.Intervals {
		for _, v := range vec.Linspace(iv.Start, iv.End, per) {
			if v < min || v > max {
				continue
			}
			ticks = append(ticks, plot.Tick{
				Value: v,
				Label: strconv.FormatFloat(v, 'g', -1, 64),
			})
		}
	}

	sort.Slice(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	return ticks
}
