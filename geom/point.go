package geom

import "fmt"

// Point is a grid cell position
type Point struct {
	X OffsetX
	Y OffsetY
}

// Vec is a displacement between two points
type Vec struct {
	X SizeX
	Y SizeY
}

// Pt builds a point from plain ints, for literals and loop variables
func Pt(x, y int) Point {
	return Point{X: OffsetX(x), Y: OffsetY(y)}
}

// V builds a vector from plain ints
func V(dx, dy int) Vec {
	return Vec{X: SizeX(dx), Y: SizeY(dy)}
}

// Add returns p displaced by v
func (p Point) Add(v Vec) Point {
	return Point{X: p.X.Add(v.X), Y: p.Y.Add(v.Y)}
}

// Sub returns the vector from q to p
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X.Sub(q.X), Y: p.Y.Sub(q.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// IsZero reports whether v has no displacement
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Neg returns the opposite displacement
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Chebyshev returns the king-move length of v
func (v Vec) Chebyshev() int32 {
	dx, dy := int32(v.X.Abs()), int32(v.Y.Abs())
	if dx > dy {
		return dx
	}
	return dy
}

// Chebyshev returns the king-move distance between a and b
func Chebyshev(a, b Point) int32 {
	return b.Sub(a).Chebyshev()
}

// Directions lists the eight unit steps, N first then clockwise
// Order matches navigation direction indices: N, NE, E, SE, S, SW, W, NW
var Directions = [8]Vec{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Cardinals lists N, E, S, W
var Cardinals = [4]Vec{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}
