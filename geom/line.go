package geom

// Line walks the Bresenham line from a to b inclusive, calling fn for each
// cell in order. Returning false from fn stops the walk early.
// Returns false if the walk was stopped.
func Line(a, b Point, fn func(p Point) bool) bool {
	x0, y0 := int32(a.X), int32(a.Y)
	x1, y1 := int32(b.X), int32(b.Y)

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}

	sx, sy := int32(1), int32(1)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		if !fn(Point{X: OffsetX(x0), Y: OffsetY(y0)}) {
			return false
		}
		if x0 == x1 && y0 == y1 {
			return true
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Ring visits the cells at exactly Chebyshev distance r from c, clockwise
// from the top-left corner. r == 0 visits c alone.
func Ring(c Point, r int32, fn func(p Point) bool) bool {
	if r <= 0 {
		return fn(c)
	}
	n := RingLen(r)
	for i := 0; i < n; i++ {
		if !fn(RingAt(c, r, i)) {
			return false
		}
	}
	return true
}

// RingLen returns the number of cells on a ring of radius r
func RingLen(r int32) int {
	if r <= 0 {
		return 1
	}
	return int(8 * r)
}

// RingAt returns the i-th cell of the ring of radius r around c, clockwise
// from the top-left corner. i is taken modulo RingLen(r).
func RingAt(c Point, r int32, i int) Point {
	if r <= 0 {
		return c
	}
	side := int(2 * r)
	i %= RingLen(r)
	if i < 0 {
		i += RingLen(r)
	}

	x0, y0 := int32(c.X)-r, int32(c.Y)-r
	edge, off := i/side, int32(i%side)
	switch edge {
	case 0: // top, left to right
		return Point{X: OffsetX(x0 + off), Y: OffsetY(y0)}
	case 1: // right, top to bottom
		return Point{X: OffsetX(x0 + 2*r), Y: OffsetY(y0 + off)}
	case 2: // bottom, right to left
		return Point{X: OffsetX(x0 + 2*r - off), Y: OffsetY(y0 + 2*r)}
	default: // left, bottom to top
		return Point{X: OffsetX(x0), Y: OffsetY(y0 + 2*r - off)}
	}
}
