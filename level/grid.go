package level

import (
	"fmt"

	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/spatial"
	"github.com/lixenwraith/vi-dungeon/tile"
	"github.com/lixenwraith/vi-dungeon/world"
)

type entityMap = spatial.Map[geom.Point, world.EntityInstanceID, world.EntityInstanceID]
type itemMap = spatial.Map[geom.Point, world.ItemInstanceID, world.ItemPile]

// level stores the grid as parallel row-major layers
type level struct {
	id     int
	width  geom.SizeX
	height geom.SizeY
	bounds geom.Rect
	reg    world.Registry

	ids       []tile.ID
	types     []tile.Type
	flags     []tile.Flags
	regionIDs []uint16
	data      []tile.Data
	indexes   []uint16

	regions    []RegionInfo
	stairsUp   []geom.Point
	stairsDown []geom.Point

	entities *entityMap
	items    *itemMap

	// Scratch, reused across calls
	path     []geom.Point
	near     []EntityPosition
	sweep    []EntityPosition
	moved    []world.ItemInstanceID
	search   pathSearch
	sweeping bool
}

func newLevel(reg world.Registry, w geom.SizeX, h geom.SizeY, id int) *level {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("level: invalid size %dx%d", w, h))
	}
	n := int(w) * int(h)
	l := &level{
		id:        id,
		width:     w,
		height:    h,
		bounds:    geom.RectWH(w, h),
		reg:       reg,
		ids:       make([]tile.ID, n),
		types:     make([]tile.Type, n),
		flags:     make([]tile.Flags, n),
		regionIDs: make([]uint16, n),
		data:      make([]tile.Data, n),
		indexes:   make([]uint16, n),
		entities: spatial.New[geom.Point, world.EntityInstanceID, world.EntityInstanceID](
			func(id *world.EntityInstanceID) world.EntityInstanceID { return *id }),
		items: spatial.New[geom.Point, world.ItemInstanceID, world.ItemPile](
			func(p *world.ItemPile) world.ItemInstanceID { return p.Key() }),
	}
	empty := tile.EmptySet(0)
	for i := 0; i < n; i++ {
		l.set(i, empty)
	}
	return l
}

func (l *level) index(p geom.Point) int {
	return int(p.Y)*int(l.width) + int(p.X)
}

func (l *level) mustIndex(p geom.Point) int {
	if !l.bounds.Contains(p) {
		panic(fmt.Sprintf("level: %v out of bounds %v", p, l.bounds))
	}
	return l.index(p)
}

func (l *level) set(i int, d tile.DataSet) {
	l.ids[i] = d.ID
	l.types[i] = d.Type
	l.flags[i] = d.Flags
	l.regionIDs[i] = d.Region
	l.data[i] = d.Data
	l.indexes[i] = d.Index
}

func (l *level) solid(i int) bool { return l.flags[i].Has(tile.FlagSolid) }

// walkable reports an in-bounds, non-solid cell
func (l *level) walkable(p geom.Point) bool {
	return l.bounds.Contains(p) && !l.solid(l.index(p))
}

func (l *level) regionOf(p geom.Point) *RegionInfo {
	return &l.regions[l.regionIDs[l.index(p)]]
}

func (l *level) Width() geom.SizeX  { return l.width }
func (l *level) Height() geom.SizeY { return l.height }
func (l *level) Bounds() geom.Rect  { return l.bounds }
func (l *level) ID() int            { return l.id }

func (l *level) At(p geom.Point) TileView {
	i := l.mustIndex(p)
	return TileView{
		ID:     l.ids[i],
		Type:   l.types[i],
		Flags:  l.flags[i],
		Region: l.regionIDs[i],
		Index:  l.indexes[i],
		Data:   l.data[i],
	}
}

func (l *level) RegionCount() int        { return len(l.regions) }
func (l *level) Region(i int) RegionInfo { return l.regions[i] }

func (l *level) StairUp(i int) geom.Point   { return l.stairsUp[i] }
func (l *level) StairDown(i int) geom.Point { return l.stairsDown[i] }
func (l *level) StairCount() (int, int)     { return len(l.stairsUp), len(l.stairsDown) }

func (l *level) Find(id world.EntityInstanceID) (geom.Point, bool) {
	_, p, ok := l.entities.FindKey(id)
	return p, ok
}

func (l *level) EntityAt(p geom.Point) (world.EntityInstanceID, bool) {
	if e := l.entities.Find(p); e != nil {
		return *e, true
	}
	return 0, false
}

func (l *level) EntitiesAt(ps ...geom.Point) []MaybeEntity {
	out := make([]MaybeEntity, len(ps))
	for i, p := range ps {
		out[i].ID, out[i].Ok = l.EntityAt(p)
	}
	return out
}

func (l *level) ItemAt(p geom.Point) *world.ItemPile {
	return l.items.Find(p)
}

func (l *level) CanPlaceEntityAt(p geom.Point) PlacementResult {
	if r := l.CanPlaceItemAt(p); r != Ok {
		return r
	}
	if l.entities.Find(p) != nil {
		return FailedEntity
	}
	return Ok
}

func (l *level) CanPlaceItemAt(p geom.Point) PlacementResult {
	if !l.bounds.Contains(p) {
		return FailedBounds
	}
	if l.solid(l.index(p)) {
		return FailedObstacle
	}
	return Ok
}

func (l *level) EntitiesNear(p geom.Point, d int32) []EntityPosition {
	l.near = l.near[:0]
	l.ForEachEntityNear(p, d, func(ep EntityPosition) {
		l.near = append(l.near, ep)
	})
	return l.near
}

func (l *level) ForEachEntityNear(p geom.Point, d int32, fn func(EntityPosition)) {
	l.ForEachEntityNearWhile(p, d, func(ep EntityPosition) bool {
		fn(ep)
		return true
	})
}

func (l *level) ForEachEntityNearWhile(p geom.Point, d int32, fn func(EntityPosition) bool) {
	l.entities.ForEach(func(id *world.EntityInstanceID, q geom.Point) bool {
		if geom.Chebyshev(p, q) > d {
			return true
		}
		return fn(EntityPosition{Pos: q, ID: *id})
	})
}

func (l *level) ForEachEntity(fn func(world.EntityInstanceID, geom.Point)) {
	l.ForEachEntityWhile(func(id world.EntityInstanceID, p geom.Point) bool {
		fn(id, p)
		return true
	})
}

func (l *level) ForEachEntityWhile(fn func(world.EntityInstanceID, geom.Point) bool) {
	l.entities.ForEach(func(id *world.EntityInstanceID, p geom.Point) bool {
		return fn(*id, p)
	})
}

func (l *level) ForEachPile(fn func(*world.ItemPile, geom.Point)) {
	l.ForEachPileWhile(func(pile *world.ItemPile, p geom.Point) bool {
		fn(pile, p)
		return true
	})
}

func (l *level) ForEachPileWhile(fn func(*world.ItemPile, geom.Point) bool) {
	l.items.ForEach(fn)
}

func (l *level) TileIDs(area geom.Rect) SubRegion[tile.ID] {
	return newSubRegion(l.ids, int(l.width), area.Intersect(l.bounds))
}

func (l *level) RegionIDs(area geom.Rect) SubRegion[uint16] {
	return newSubRegion(l.regionIDs, int(l.width), area.Intersect(l.bounds))
}
