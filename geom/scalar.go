// Package geom provides axis-tagged integer geometry for tile grids.
//
// Offsets and sizes on the x and y axes are distinct types, so an expression
// that mixes an x coordinate with a y coordinate does not compile. Conversions
// between roles are explicit and grep-able.
package geom

// OffsetX is a column coordinate
type OffsetX int32

// OffsetY is a row coordinate
type OffsetY int32

// SizeX is a horizontal extent or delta
type SizeX int32

// SizeY is a vertical extent or delta
type SizeY int32

// Add moves the offset by a horizontal delta
func (x OffsetX) Add(d SizeX) OffsetX { return x + OffsetX(d) }

// Sub returns the horizontal delta from o to x
func (x OffsetX) Sub(o OffsetX) SizeX { return SizeX(x - o) }

// Add moves the offset by a vertical delta
func (y OffsetY) Add(d SizeY) OffsetY { return y + OffsetY(d) }

// Sub returns the vertical delta from o to y
func (y OffsetY) Sub(o OffsetY) SizeY { return SizeY(y - o) }

// Abs returns the magnitude of the delta
func (s SizeX) Abs() SizeX {
	if s < 0 {
		return -s
	}
	return s
}

// Abs returns the magnitude of the delta
func (s SizeY) Abs() SizeY {
	if s < 0 {
		return -s
	}
	return s
}

// Sign returns -1, 0 or 1
func (s SizeX) Sign() SizeX {
	switch {
	case s < 0:
		return -1
	case s > 0:
		return 1
	}
	return 0
}

// Sign returns -1, 0 or 1
func (s SizeY) Sign() SizeY {
	switch {
	case s < 0:
		return -1
	case s > 0:
		return 1
	}
	return 0
}
