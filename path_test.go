package axisbreak

import "testing"

func TestPath_Elements(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))
	p.LineTo(Pt(1, 1))
	p.Close()

	elems := p.Elements()
	if len(elems) != 4 {
		t.Fatalf("got %d elements, want 4", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("element 0 is %T, want MoveTo", elems[0])
	}
	if _, ok := elems[3].(Close); !ok {
		t.Errorf("element 3 is %T, want Close", elems[3])
	}
}

func TestPath_Ring(t *testing.T) {
	p := NewPath()
	p.Ring(Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2))

	// MoveTo + 3 LineTo + Close.
	if got := len(p.Elements()); got != 5 {
		t.Fatalf("got %d elements, want 5", got)
	}
	rings := p.Rings()
	if len(rings) != 1 || len(rings[0]) != 4 {
		t.Fatalf("Rings() = %v, want one ring of 4", rings)
	}
}

func TestPath_RingTooFewPoints(t *testing.T) {
	p := NewPath()
	p.Ring(Pt(0, 0), Pt(1, 1))
	if got := len(p.Elements()); got != 0 {
		t.Errorf("degenerate ring added %d elements, want 0", got)
	}
}

func TestPath_MultipleRings(t *testing.T) {
	p := NewPath()
	p.Rect(0, 0, 1, 1)
	p.Rect(2, 0, 3, 1)
	p.Ring(Pt(5, 0), Pt(6, 0), Pt(5.5, 1))

	rings := p.Rings()
	if len(rings) != 3 {
		t.Fatalf("got %d rings, want 3", len(rings))
	}
	if len(rings[2]) != 3 {
		t.Errorf("triangle ring has %d vertices, want 3", len(rings[2]))
	}
}

func TestPath_RingsWithoutClose(t *testing.T) {
	// An unclosed trailing subpath still counts as a ring.
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))
	p.LineTo(Pt(1, 1))

	rings := p.Rings()
	if len(rings) != 1 || len(rings[0]) != 3 {
		t.Fatalf("Rings() = %v, want one ring of 3", rings)
	}
}

func TestPoint_Ops(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, -1)); got != Pt(4, 3) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(Pt(3, 4)); got != Pt(0, 0) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance = %g, want 5", got)
	}
}
