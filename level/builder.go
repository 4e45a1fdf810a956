package level

import (
	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/rng"
	"github.com/lixenwraith/vi-dungeon/tile"
	"github.com/lixenwraith/vi-dungeon/world"
)

// Builder lays out a level step by step
// New drives it from a partition; tests and tools can drive it directly
type Builder struct {
	l *level
}

// NewBuilder starts from an all-empty, solid grid with no regions
func NewBuilder(reg world.Registry, w geom.SizeX, h geom.SizeY, id int) *Builder {
	return &Builder{l: newLevel(reg, w, h, id)}
}

func (b *Builder) lvl() *level {
	if b.l == nil {
		panic("level: builder used after Build")
	}
	return b.l
}

// Bounds returns the full grid rect
func (b *Builder) Bounds() geom.Rect { return b.lvl().bounds }

// At returns the cell at p
func (b *Builder) At(p geom.Point) TileView { return b.lvl().At(p) }

// AddRegion appends a region record and assigns its id to the cells of bounds
func (b *Builder) AddRegion(bounds geom.Rect) uint16 {
	l := b.lvl()
	if len(l.regions) >= int(^uint16(0)) {
		panic("level: too many regions")
	}
	id := uint16(len(l.regions))
	bounds = bounds.Intersect(l.bounds)
	l.regions = append(l.regions, RegionInfo{Bounds: bounds, ID: int(id)})
	bounds.ForEach(func(p geom.Point) bool {
		l.regionIDs[l.index(p)] = id
		return true
	})
	return id
}

// Set writes one cell
func (b *Builder) Set(p geom.Point, d tile.DataSet) {
	l := b.lvl()
	l.set(l.mustIndex(p), d)
}

// Fill writes d into every in-bounds cell of area
func (b *Builder) Fill(area geom.Rect, d tile.DataSet) {
	l := b.lvl()
	area.Intersect(l.bounds).ForEach(func(p geom.Point) bool {
		l.set(l.index(p), d)
		return true
	})
}

// Corridor carves an L-shaped floor path between a and c
// The elbow side is a coin flip; cells keep the region they lie in
func (b *Builder) Corridor(r rng.Source, a, c geom.Point) {
	l := b.lvl()
	elbow := geom.Point{X: c.X, Y: a.Y}
	if r.CoinFlip() {
		elbow = geom.Point{X: a.X, Y: c.Y}
	}
	carve := func(p geom.Point) bool {
		if !l.bounds.Contains(p) {
			return true
		}
		i := l.index(p)
		if l.types[i] == tile.TypeEmpty {
			l.set(i, tile.FloorSet(l.regionIDs[i]))
		}
		return true
	}
	geom.Line(a, elbow, carve)
	geom.Line(elbow, c, carve)
}

// Enclose turns every empty cell touching a walkable cell into a wall
func (b *Builder) Enclose() {
	l := b.lvl()
	l.bounds.ForEach(func(p geom.Point) bool {
		i := l.index(p)
		if l.types[i] != tile.TypeEmpty {
			return true
		}
		for _, d := range geom.Directions {
			if l.walkable(p.Add(d)) {
				l.set(i, tile.WallSet(l.regionIDs[i]))
				break
			}
		}
		return true
	})
}

// PlaceDoors converts up to limit corridor openings in the wall ring around
// room into doors. An opening is a floor cell flanked by walls along the ring.
// Returns the number of doors placed.
func (b *Builder) PlaceDoors(room geom.Rect, limit int) int {
	l := b.lvl()
	placed := 0
	try := func(p geom.Point, along geom.Vec) {
		if placed >= limit || !l.bounds.Contains(p) {
			return
		}
		i := l.index(p)
		if l.types[i] != tile.TypeFloor {
			return
		}
		for _, q := range [2]geom.Point{p.Add(along), p.Add(along.Neg())} {
			if !l.bounds.Contains(q) || l.types[l.index(q)] != tile.TypeWall {
				return
			}
		}
		l.set(i, tile.DoorSet(l.regionIDs[i]))
		placed++
	}

	ring := room.Grow()
	for x := room.X0; x < room.X1; x++ {
		try(geom.Point{X: x, Y: ring.Y0}, geom.V(1, 0))
		try(geom.Point{X: x, Y: ring.Y1 - 1}, geom.V(1, 0))
	}
	for y := room.Y0; y < room.Y1; y++ {
		try(geom.Point{X: ring.X0, Y: y}, geom.V(0, 1))
		try(geom.Point{X: ring.X1 - 1, Y: y}, geom.V(0, 1))
	}
	return placed
}

// AddStairUp marks p as an up stair
func (b *Builder) AddStairUp(p geom.Point) {
	b.addStair(p, tile.StairUp)
}

// AddStairDown marks p as a down stair
func (b *Builder) AddStairDown(p geom.Point) {
	b.addStair(p, tile.StairDown)
}

func (b *Builder) addStair(p geom.Point, id tile.ID) {
	l := b.lvl()
	i := l.mustIndex(p)
	l.set(i, tile.StairSet(id, l.regionIDs[i]))
	if id == tile.StairUp {
		l.stairsUp = append(l.stairsUp, p)
	} else {
		l.stairsDown = append(l.stairsDown, p)
	}
}

// Build derives wall variants and region tile counts and hands the level
// over; the builder is unusable afterwards
func (b *Builder) Build() Level {
	l := b.lvl()
	b.l = nil

	if len(l.regions) == 0 {
		l.regions = append(l.regions, RegionInfo{Bounds: l.bounds})
	}
	l.autoTileAll()
	for i := range l.ids {
		if !l.solid(i) {
			l.regions[l.regionIDs[i]].TileCount++
		}
	}
	return l
}
