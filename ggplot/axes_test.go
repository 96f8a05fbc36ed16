package ggplot

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/axisbreak"
	"github.com/gogpu/gg"
)

func newTestAxes(t *testing.T) *Axes {
	t.Helper()
	dc := gg.NewContext(200, 200)
	ax, err := New(dc, WithMargin(50))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if err := ax.SetXLim(0, 10); err != nil {
		t.Fatalf("SetXLim() = %v", err)
	}
	if err := ax.SetYLim(0, 10); err != nil {
		t.Fatalf("SetYLim() = %v", err)
	}
	return ax
}

func TestNew_NilContext(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilContext) {
		t.Fatalf("New(nil) error = %v, want ErrNilContext", err)
	}
}

func TestSetLim_Invalid(t *testing.T) {
	ax := newTestAxes(t)
	if err := ax.SetXLim(5, 5); !errors.Is(err, ErrBadLimits) {
		t.Errorf("SetXLim(5,5) error = %v, want ErrBadLimits", err)
	}
	if err := ax.SetYLim(3, -3); !errors.Is(err, ErrBadLimits) {
		t.Errorf("SetYLim(3,-3) error = %v, want ErrBadLimits", err)
	}
}

func TestDataToDisplay_Linear(t *testing.T) {
	ax := newTestAxes(t)

	tests := []struct {
		name string
		data axisbreak.Point
		want axisbreak.Point
	}{
		{"center", axisbreak.Pt(5, 5), axisbreak.Pt(100, 100)},
		{"origin", axisbreak.Pt(0, 0), axisbreak.Pt(50, 150)},
		{"top right", axisbreak.Pt(10, 10), axisbreak.Pt(150, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ax.DataToDisplay(tt.data)
			if got != tt.want {
				t.Errorf("DataToDisplay(%v) = %v, want %v", tt.data, got, tt.want)
			}
			back := ax.DisplayToData(got)
			if math.Abs(back.X-tt.data.X) > 1e-12 || math.Abs(back.Y-tt.data.Y) > 1e-12 {
				t.Errorf("DisplayToData(%v) = %v, want %v", got, back, tt.data)
			}
		})
	}
}

func TestTransform_RoundTripWithScale(t *testing.T) {
	ax := newTestAxes(t)
	err := axisbreak.ScaleAxes(ax,
		[]axisbreak.Interval{{Start: 0, End: 2, Factor: 1}, {Start: 2, End: 10, Factor: 0.25}},
		nil, axisbreak.ModeLinear)
	if err != nil {
		t.Fatalf("ScaleAxes() = %v", err)
	}

	for x := 0.0; x <= 10; x += 0.7 {
		p := axisbreak.Pt(x, 4)
		back := ax.DisplayToData(ax.DataToDisplay(p))
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("round trip of %v = %v", p, back)
		}
	}

	// The compressing scale moves the display midpoint: data x=2 sits
	// at forward image 2 out of 4, i.e. the viewport midpoint.
	got := ax.DataToDisplay(axisbreak.Pt(2, 0))
	if math.Abs(got.X-100) > 1e-9 {
		t.Errorf("scaled x=2 maps to px %g, want 100", got.X)
	}
}

func TestPlot(t *testing.T) {
	ax := newTestAxes(t)
	line, err := ax.Plot([]float64{0, 5, 10}, []float64{1, 2, 3},
		axisbreak.LineStyle{Color: color.Black, Width: 1})
	if err != nil {
		t.Fatalf("Plot() = %v", err)
	}
	if len(line.Points()) != 3 {
		t.Errorf("series has %d points, want 3", len(line.Points()))
	}
	if !line.Style().ClipToAxes {
		t.Error("plotted series must be clipped to the axes")
	}
	if got := len(ax.Artists()); got != 1 {
		t.Errorf("Artists() has %d entries, want 1", got)
	}
}

func TestPlot_BadSeries(t *testing.T) {
	ax := newTestAxes(t)
	if _, err := ax.Plot([]float64{1, 2}, []float64{1}, spineStyle); !errors.Is(err, ErrBadSeries) {
		t.Errorf("Plot() error = %v, want ErrBadSeries", err)
	}
	if _, err := ax.Plot(nil, nil, spineStyle); !errors.Is(err, ErrBadSeries) {
		t.Errorf("Plot(empty) error = %v, want ErrBadSeries", err)
	}
}

func TestSpines(t *testing.T) {
	ax := newTestAxes(t)
	for _, edge := range []axisbreak.Edge{
		axisbreak.EdgeBottom, axisbreak.EdgeTop,
		axisbreak.EdgeLeft, axisbreak.EdgeRight,
	} {
		if ax.Spine(edge) == nil {
			t.Errorf("Spine(%q) = nil", edge)
		}
	}
	if ax.Spine(axisbreak.Edge("diagonal")) != nil {
		t.Error("unknown edge should have no spine")
	}
	// Spines are not part of the whole-axes artist set.
	if got := len(ax.Artists()); got != 0 {
		t.Errorf("Artists() has %d entries before plotting, want 0", got)
	}
}

func TestSetScale_InvalidAxis(t *testing.T) {
	ax := newTestAxes(t)
	s := axisbreak.MustScale([]axisbreak.Interval{{Start: 0, End: 1, Factor: 1}})
	if err := ax.SetScale(axisbreak.Axis(5), s); !errors.Is(err, axisbreak.ErrInvalidAxis) {
		t.Errorf("SetScale(axis=5) error = %v, want ErrInvalidAxis", err)
	}
}
