// Package level is the spatial model of one dungeon floor: the tile grid, the
// region table and two spatial indices, one for entities and one for item
// piles.
//
// All operations run on the caller's goroutine. Randomness arrives through
// rng.Source arguments only. Expected failures come back as PlacementResult
// or MergeResult values; broken preconditions panic.
package level

import (
	"github.com/lixenwraith/vi-dungeon/bsp"
	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/rng"
	"github.com/lixenwraith/vi-dungeon/tile"
	"github.com/lixenwraith/vi-dungeon/world"
)

// Level is one dungeon floor
type Level interface {
	// Queries

	Width() geom.SizeX
	Height() geom.SizeY
	Bounds() geom.Rect
	ID() int

	// At returns the cell at p; p must be in bounds
	At(p geom.Point) TileView

	RegionCount() int
	Region(i int) RegionInfo

	// StairUp and StairDown return the i-th stair of each kind
	StairUp(i int) geom.Point
	StairDown(i int) geom.Point
	StairCount() (up, down int)

	Find(id world.EntityInstanceID) (geom.Point, bool)
	EntityAt(p geom.Point) (world.EntityInstanceID, bool)
	EntitiesAt(ps ...geom.Point) []MaybeEntity

	// ItemAt returns the pile at p or nil
	// The pointer is invalid after the next item mutation
	ItemAt(p geom.Point) *world.ItemPile

	// CanPlaceEntityAt checks bounds, then solidity, then occupancy
	CanPlaceEntityAt(p geom.Point) PlacementResult
	// CanPlaceItemAt checks bounds, then solidity; piles merge
	CanPlaceItemAt(p geom.Point) PlacementResult

	// EntitiesNear returns entities within Chebyshev distance d of p
	// The slice is scratch storage reused by the next call
	EntitiesNear(p geom.Point, d int32) []EntityPosition
	ForEachEntityNear(p geom.Point, d int32, fn func(EntityPosition))
	ForEachEntityNearWhile(p geom.Point, d int32, fn func(EntityPosition) bool)

	ForEachEntity(fn func(id world.EntityInstanceID, p geom.Point))
	ForEachEntityWhile(fn func(id world.EntityInstanceID, p geom.Point) bool)
	ForEachPile(fn func(pile *world.ItemPile, p geom.Point))
	ForEachPileWhile(fn func(pile *world.ItemPile, p geom.Point) bool)

	HasLineOfSight(from, to geom.Point) bool

	// FindPath returns the steps from from (exclusive) to to (inclusive)
	// The slice is scratch storage cleared and refilled on every call
	FindPath(from, to geom.Point) []geom.Point

	TileIDs(area geom.Rect) SubRegion[tile.ID]
	RegionIDs(area geom.Rect) SubRegion[uint16]

	// Mutations

	// AddEntityAt consumes h; p must satisfy CanPlaceEntityAt
	AddEntityAt(h *world.UniqueEntity, p geom.Point) world.EntityInstanceID
	// AddItemAt consumes h and puts the item on top of any pile at p
	AddItemAt(h *world.UniqueItem, p geom.Point) world.ItemInstanceID

	// AddEntityNearestRandom places at origin or the first valid cell of the
	// rings 1..maxDist around it. h is consumed only when the result is Ok.
	AddEntityNearestRandom(r rng.Source, h *world.UniqueEntity, origin geom.Point, maxDist int32) (geom.Point, PlacementResult)
	AddItemNearestRandom(r rng.Source, h *world.UniqueItem, origin geom.Point, maxDist int32) (geom.Point, PlacementResult)
	FindValidEntityPlacementNearest(r rng.Source, origin geom.Point, maxDist int32) (geom.Point, PlacementResult)
	FindValidItemPlacementNearest(r rng.Source, origin geom.Point, maxDist int32) (geom.Point, PlacementResult)

	// RemoveEntityAt and RemoveEntity return an empty handle on a miss
	RemoveEntityAt(p geom.Point) world.UniqueEntity
	RemoveEntity(id world.EntityInstanceID) world.UniqueEntity

	// WithEntityAt calls fn for the entity at p; when fn returns false the
	// entity is removed and its handle returned
	WithEntityAt(p geom.Point, fn func(world.EntityInstanceID) bool) world.UniqueEntity

	MoveEntityBy(id world.EntityInstanceID, v geom.Vec) PlacementResult
	// MoveItemBy moves one item off its pile onto the cell at offset v
	MoveItemBy(id world.ItemInstanceID, v geom.Vec) PlacementResult

	// TransformEntities moves every entity to the position returned by
	// transform, then reports each outcome through callback exactly once.
	// callback must not start another sweep.
	TransformEntities(transform Transform, callback TransformCallback)

	// UpdateTileAt overwrites the cell at p and re-derives wall variants
	// around it; the returned window bounds every cell whose id changed
	UpdateTileAt(r rng.Source, p geom.Point, data tile.DataSet) SubRegion[tile.ID]

	// MoveItemsFrom hands items of the pile at p matching pred to sink
	MoveItemsFrom(p geom.Point, pred Pred, sink Sink) (MergeResult, int)
	// MoveItemsAt hands the items at the given pile indices to sink
	MoveItemsAt(p geom.Point, indices []int, sink Sink) (MergeResult, int)
	// MoveItemsInto moves items of src matching pred onto the pile at p
	// src must be caller-owned; a pile obtained from ItemAt panics, use
	// MoveItemsBetween for level-to-level moves
	MoveItemsInto(p geom.Point, src *world.ItemPile, pred Pred) (MergeResult, int)
	// MoveItemsBetween moves items matching pred from one cell to another
	MoveItemsBetween(from, to geom.Point, pred Pred) (MergeResult, int)
}

type options struct {
	params bsp.Params
}

// Option adjusts level generation
type Option func(*options)

// WithParams overrides the partition parameters; the level size wins over
// Params.Width and Params.Height
func WithParams(p bsp.Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// New generates a level of size w x h from r
// Ids are issued and freed through reg, which must outlive the level
func New(r rng.Source, reg world.Registry, w geom.SizeX, h geom.SizeY, id int, opts ...Option) Level {
	o := options{params: bsp.DefaultParams()}
	for _, opt := range opts {
		opt(&o)
	}
	p := o.params
	p.Width, p.Height = w, h

	return generate(r, reg, p, id)
}

// NewEmpty returns an all-floor level with a single region, for tests and
// tools that lay out tiles by hand
func NewEmpty(reg world.Registry, w geom.SizeX, h geom.SizeY, id int) Level {
	b := NewBuilder(reg, w, h, id)
	region := b.AddRegion(b.Bounds())
	b.Fill(b.Bounds(), tile.FloorSet(region))
	return b.Build()
}
