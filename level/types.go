package level

import (
	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/tile"
	"github.com/lixenwraith/vi-dungeon/world"
)

// RegionInfo describes one partition leaf of the level
// Regions are created at generation and live as long as the level
type RegionInfo struct {
	Bounds geom.Rect
	ID     int

	// TileCount counts the walkable cells attributed to the region
	TileCount   int
	EntityCount int
	ItemCount   int
}

// TileView is a snapshot of one cell
type TileView struct {
	ID     tile.ID
	Type   tile.Type
	Flags  tile.Flags
	Region uint16
	Index  uint16
	Data   tile.Data
}

// Solid reports whether the cell blocks movement and sight
func (v TileView) Solid() bool { return v.Flags.Has(tile.FlagSolid) }

// DataSet converts the view back into a writable record
func (v TileView) DataSet() tile.DataSet {
	return tile.DataSet{Data: v.Data, Flags: v.Flags, ID: v.ID, Type: v.Type, Index: v.Index, Region: v.Region}
}

// EntityPosition pairs an entity with its cell
type EntityPosition struct {
	Pos geom.Point
	ID  world.EntityInstanceID
}

// MaybeEntity is the result of one EntitiesAt lookup
type MaybeEntity struct {
	ID world.EntityInstanceID
	Ok bool
}

// SubRegion is a read-only window onto a row-major per-cell layer
// Coordinates passed to At are level coordinates
type SubRegion[T any] struct {
	Rect   geom.Rect
	stride int
	data   []T
}

func newSubRegion[T any](data []T, stride int, r geom.Rect) SubRegion[T] {
	return SubRegion[T]{Rect: r, stride: stride, data: data}
}

// Empty reports whether the window covers no cells
func (s SubRegion[T]) Empty() bool { return s.Rect.Empty() }

// Len returns the number of cells in the window
func (s SubRegion[T]) Len() int { return s.Rect.Area() }

// At returns the value at p; p must lie inside Rect
func (s SubRegion[T]) At(p geom.Point) T {
	if !s.Rect.Contains(p) {
		panic("level: sub-region access outside window")
	}
	return s.data[int(p.Y)*s.stride+int(p.X)]
}

// ForEach visits cells row-major until fn returns false
func (s SubRegion[T]) ForEach(fn func(p geom.Point, v T) bool) {
	s.Rect.ForEach(func(p geom.Point) bool {
		return fn(p, s.data[int(p.Y)*s.stride+int(p.X)])
	})
}

// Pred selects item candidates; nil accepts every item
type Pred func(world.ItemInstanceID) bool

// Sink receives ownership of an item taken off the level together with its
// index in the source pile
type Sink func(item world.UniqueItem, index int)

// Transform returns the desired position of an entity for this sweep
type Transform func(id world.EntityInstanceID, p geom.Point) geom.Point

// TransformCallback reports the outcome for one entity of a sweep
// to is the requested position; the entity stays at from unless result is Ok
type TransformCallback func(id world.EntityInstanceID, result PlacementResult, from, to geom.Point)
