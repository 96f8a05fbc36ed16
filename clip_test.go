package axisbreak

import (
	"errors"
	"testing"
)

func TestEdgeClipPath_RingStructure(t *testing.T) {
	tests := []struct {
		name   string
		breaks Coords
	}{
		{"one break", Cs(5)},
		{"two breaks", Cs(3, 7)},
		{"three breaks", Cs(2, 5, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ax := newFakeAxes()
			path, err := EdgeClipPath(ax, tt.breaks, C(0), AxisX)
			if err != nil {
				t.Fatalf("EdgeClipPath() = %v", err)
			}
			rings := path.Rings()
			// n notches split the strip into n+1 keep quads.
			want := len(tt.breaks.Values()) + 1
			if len(rings) != want {
				t.Fatalf("got %d rings, want %d", len(rings), want)
			}
			for i, ring := range rings {
				if len(ring) != 4 {
					t.Errorf("ring %d has %d vertices, want 4", i, len(ring))
				}
			}
		})
	}
}

func TestEdgeClipPath_Geometry(t *testing.T) {
	// Identity transform, extend forced to 0 so the numbers stay small:
	// strip endpoints offset by (+-dx, +-dy) only, one notch at x=5.
	ax := newFakeAxes()
	path, err := EdgeClipPath(ax, Cs(5), C(0), AxisX,
		WithGap(2), WithDelta(1, 1), WithExtend(0))
	if err != nil {
		t.Fatalf("EdgeClipPath() = %v", err)
	}
	rings := path.Rings()
	if len(rings) != 2 {
		t.Fatalf("got %d rings, want 2", len(rings))
	}

	// Left keep quad: from the low extension anchor to the notch's low
	// boundary stroke.
	wantLeft := []Point{{-1, -1}, {1, 1}, {5, 1}, {3, -1}}
	for i, want := range wantLeft {
		if !almostEqual(rings[0][i].X, want.X) || !almostEqual(rings[0][i].Y, want.Y) {
			t.Errorf("left ring vertex %d = %v, want %v", i, rings[0][i], want)
		}
	}
	wantRight := []Point{{5, -1}, {7, 1}, {11, 1}, {9, -1}}
	for i, want := range wantRight {
		if !almostEqual(rings[1][i].X, want.X) || !almostEqual(rings[1][i].Y, want.Y) {
			t.Errorf("right ring vertex %d = %v, want %v", i, rings[1][i], want)
		}
	}
}

func TestEdgeClipPath_ExtendDefaultsToGap(t *testing.T) {
	ax := newFakeAxes()
	path, err := EdgeClipPath(ax, Cs(5), C(0), AxisX, WithGap(6), WithDelta(0, 0))
	if err != nil {
		t.Fatalf("EdgeClipPath() = %v", err)
	}
	// extend = gap = 6, dx inflated to 0+6: first vertex sits at
	// xlow - extend - dx = -12.
	first := path.Rings()[0][0]
	if !almostEqual(first.X, -12) {
		t.Errorf("first vertex x = %g, want -12", first.X)
	}
}

func TestEdgeClipPath_InvalidAxis(t *testing.T) {
	ax := newFakeAxes()
	if _, err := EdgeClipPath(ax, Cs(5), C(0), Axis(2)); !errors.Is(err, ErrInvalidAxis) {
		t.Fatalf("EdgeClipPath(axis=2) error = %v, want ErrInvalidAxis", err)
	}
}

func TestEdgeClipPath_YAxis(t *testing.T) {
	ax := newFakeAxes()
	path, err := EdgeClipPath(ax, C(0), Cs(4, 6), AxisY)
	if err != nil {
		t.Fatalf("EdgeClipPath() = %v", err)
	}
	if got := len(path.Rings()); got != 3 {
		t.Errorf("got %d rings, want 3", got)
	}
}

func TestAxesClipPath_Grid(t *testing.T) {
	tests := []struct {
		name      string
		x, y      Coords
		wantCells int
	}{
		{"no breaks", Coords{}, Coords{}, 1},
		{"one x", Cs(5), Coords{}, 2},
		{"two x one y", Cs(3, 7), Cs(5), 6},
		{"one x one y", Cs(5), Cs(5), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ax := newFakeAxes()
			path, err := AxesClipPath(ax, tt.x, tt.y, 2)
			if err != nil {
				t.Fatalf("AxesClipPath() = %v", err)
			}
			if got := len(path.Rings()); got != tt.wantCells {
				t.Errorf("got %d cells, want %d", got, tt.wantCells)
			}
		})
	}
}

func TestAxesClipPath_CellGeometry(t *testing.T) {
	ax := newFakeAxes()
	path, err := AxesClipPath(ax, Cs(5), Coords{}, 2)
	if err != nil {
		t.Fatalf("AxesClipPath() = %v", err)
	}
	rings := path.Rings()
	if len(rings) != 2 {
		t.Fatalf("got %d rings, want 2", len(rings))
	}
	// Identity transform, gap 2: the band [4, 6] is removed.
	left := rings[0]
	want := []Point{{0, 0}, {4, 0}, {4, 10}, {0, 10}}
	for i := range want {
		if !almostEqual(left[i].X, want[i].X) || !almostEqual(left[i].Y, want[i].Y) {
			t.Errorf("left cell vertex %d = %v, want %v", i, left[i], want[i])
		}
	}
	right := rings[1]
	if !almostEqual(right[0].X, 6) || !almostEqual(right[1].X, 10) {
		t.Errorf("right cell spans x = %g..%g, want 6..10", right[0].X, right[1].X)
	}
}
