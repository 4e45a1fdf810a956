package geom

import "fmt"

// Rect is a half-open rectangle [X0,X1) x [Y0,Y1)
type Rect struct {
	X0 OffsetX
	Y0 OffsetY
	X1 OffsetX
	Y1 OffsetY
}

// RectXYWH builds a rect from its top-left corner and size
func RectXYWH(x OffsetX, y OffsetY, w SizeX, h SizeY) Rect {
	return Rect{X0: x, Y0: y, X1: x.Add(w), Y1: y.Add(h)}
}

// RectWH builds a rect anchored at the origin
func RectWH(w SizeX, h SizeY) Rect {
	return RectXYWH(0, 0, w, h)
}

// Width returns the horizontal extent
func (r Rect) Width() SizeX { return r.X1.Sub(r.X0) }

// Height returns the vertical extent
func (r Rect) Height() SizeY { return r.Y1.Sub(r.Y0) }

// Area returns width*height, 0 for empty or inverted rects
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return int(r.Width()) * int(r.Height())
}

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// MinSide returns min(width, height) as a plain int
func (r Rect) MinSide() int {
	w, h := int(r.Width()), int(r.Height())
	if w < h {
		return w
	}
	return h
}

// TopLeft returns the first cell of the rect
func (r Rect) TopLeft() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// Center returns the cell at the integer center of the rect
func (r Rect) Center() Point {
	return Point{
		X: r.X0.Add(r.Width() / 2),
		Y: r.Y0.Add(r.Height() / 2),
	}
}

// Contains checks if point is within rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// ContainsRect checks if o lies entirely inside r
func (r Rect) ContainsRect(o Rect) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Intersects reports whether r and o share at least one cell
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// Intersect returns the overlap of r and o, possibly empty
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
}

// Union returns the smallest rect covering r and o; empty inputs are ignored
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Grow expands the rect by one cell on every side
func (r Rect) Grow() Rect {
	return Rect{X0: r.X0 - 1, Y0: r.Y0 - 1, X1: r.X1 + 1, Y1: r.Y1 + 1}
}

// Shrink contracts the rect by one cell on every side
func (r Rect) Shrink() Rect {
	return Rect{X0: r.X0 + 1, Y0: r.Y0 + 1, X1: r.X1 - 1, Y1: r.Y1 - 1}
}

// PointRect returns the 1x1 rect covering p
func PointRect(p Point) Rect {
	return Rect{X0: p.X, Y0: p.Y, X1: p.X + 1, Y1: p.Y + 1}
}

// ForEach visits every cell row-major; fn returning false stops the walk
func (r Rect) ForEach(fn func(p Point) bool) {
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			if !fn(Point{X: x, Y: y}) {
				return
			}
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X0, r.Y0, r.Width(), r.Height())
}
