package axisbreak

// PathElement represents a single element in a clip path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of closed polygon rings described by move/line/close
// elements. Clip paths keep everything inside the rings visible and hide
// everything outside all of them. Vertices are in data space; hosts map
// them through the axes transform when installing the clip.
type Path struct {
	elements []PathElement
	start    Point // starting point of current subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at a point.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Ring appends one closed polygon ring through the given points.
// Fewer than three points is a no-op.
func (p *Path) Ring(pts ...Point) {
	if len(pts) < 3 {
		return
	}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
}

// Rect appends a closed axis-aligned rectangle ring with corners
// (x0, y0) and (x1, y1).
func (p *Path) Rect(x0, y0, x1, y1 float64) {
	p.Ring(Pt(x0, y0), Pt(x1, y0), Pt(x1, y1), Pt(x0, y1))
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Rings decomposes the path into its closed polygon rings, one vertex
// slice per ring. The closing edge back to the first vertex is implied.
func (p *Path) Rings() [][]Point {
	var rings [][]Point
	var ring []Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if len(ring) > 0 {
				rings = append(rings, ring)
			}
			ring = []Point{e.Point}
		case LineTo:
			ring = append(ring, e.Point)
		case Close:
			if len(ring) > 0 {
				rings = append(rings, ring)
				ring = nil
			}
		}
	}
	if len(ring) > 0 {
		rings = append(rings, ring)
	}
	return rings
}
