package level

import (
	"fmt"

	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/rng"
	"github.com/lixenwraith/vi-dungeon/tile"
)

// wallMask returns the cardinal neighbours of p that are walls
func (l *level) wallMask(p geom.Point) uint8 {
	var m uint8
	for i, d := range geom.Cardinals {
		q := p.Add(d)
		if l.bounds.Contains(q) && l.types[l.index(q)] == tile.TypeWall {
			m |= tile.CardinalMask(i)
		}
	}
	return m
}

// autoTile re-derives the wall variant at p; reports whether the id changed
func (l *level) autoTile(p geom.Point) bool {
	i := l.index(p)
	if l.types[i] != tile.TypeWall {
		return false
	}
	id := tile.Wall(l.wallMask(p))
	if l.ids[i] == id {
		return false
	}
	l.ids[i] = id
	return true
}

// autoTileAll re-derives every wall variant
func (l *level) autoTileAll() {
	l.bounds.ForEach(func(p geom.Point) bool {
		l.autoTile(p)
		return true
	})
}

// UpdateTileAt ignores r: wall variants are derived from adjacency alone
// Entities and items on a cell that becomes solid are left in place
func (l *level) UpdateTileAt(_ rng.Source, p geom.Point, data tile.DataSet) SubRegion[tile.ID] {
	i := l.mustIndex(p)
	if int(data.Region) >= len(l.regions) {
		panic(fmt.Sprintf("level: region %d out of range", data.Region))
	}

	before := l.ids[i]
	wasWalkable := !l.solid(i)
	oldRegion := l.regionIDs[i]

	l.set(i, data)
	l.autoTile(p)

	if wasWalkable {
		l.regions[oldRegion].TileCount--
	}
	if !l.solid(i) {
		l.regions[data.Region].TileCount++
	}

	var changed geom.Rect
	if l.ids[i] != before {
		changed = geom.PointRect(p)
	}
	for _, d := range geom.Cardinals {
		q := p.Add(d)
		if l.bounds.Contains(q) && l.autoTile(q) {
			changed = changed.Union(geom.PointRect(q))
		}
	}
	return newSubRegion(l.ids, int(l.width), changed)
}
