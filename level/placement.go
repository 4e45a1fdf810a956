package level

import (
	"fmt"

	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/rng"
	"github.com/lixenwraith/vi-dungeon/world"
)

func (l *level) AddEntityAt(h *world.UniqueEntity, p geom.Point) world.EntityInstanceID {
	if !h.Valid() {
		panic("level: add of empty entity handle")
	}
	if r := l.CanPlaceEntityAt(p); r != Ok {
		panic(fmt.Sprintf("level: entity placement at %v: %v", p, r))
	}
	id := h.Release()
	l.entities.Insert(p, id)
	l.regionOf(p).EntityCount++
	return id
}

func (l *level) AddItemAt(h *world.UniqueItem, p geom.Point) world.ItemInstanceID {
	if !h.Valid() {
		panic("level: add of empty item handle")
	}
	if r := l.CanPlaceItemAt(p); r != Ok {
		panic(fmt.Sprintf("level: item placement at %v: %v", p, r))
	}
	id := h.Release()
	l.pushItems(p, id)
	return id
}

// pushItems stacks ids on the pile at p, creating it when absent
func (l *level) pushItems(p geom.Point, ids ...world.ItemInstanceID) {
	if len(ids) == 0 {
		return
	}
	if pile := l.items.Find(p); pile != nil {
		for _, id := range ids {
			pile.Add(id)
		}
	} else {
		l.items.Insert(p, world.NewItemPile(ids...))
	}
	l.regionOf(p).ItemCount += len(ids)
}

// findNearest probes origin, then each ring out to maxDist from a random
// start index. On failure the reason is FailedBounds if any probed cell lay
// off the level, otherwise the last obstacle or entity failure seen
func (l *level) findNearest(r rng.Source, origin geom.Point, maxDist int32, check func(geom.Point) PlacementResult) (geom.Point, PlacementResult) {
	last := check(origin)
	if last == Ok {
		return origin, Ok
	}
	offEdge := last == FailedBounds
	for d := int32(1); d <= maxDist; d++ {
		n := geom.RingLen(d)
		start := r.UniformInt(0, n-1)
		for i := 0; i < n; i++ {
			p := geom.RingAt(origin, d, start+i)
			switch res := check(p); res {
			case Ok:
				return p, Ok
			case FailedBounds:
				offEdge = true
			default:
				last = res
			}
		}
	}
	if offEdge {
		return geom.Point{}, FailedBounds
	}
	return geom.Point{}, last
}

func (l *level) FindValidEntityPlacementNearest(r rng.Source, origin geom.Point, maxDist int32) (geom.Point, PlacementResult) {
	return l.findNearest(r, origin, maxDist, l.CanPlaceEntityAt)
}

func (l *level) FindValidItemPlacementNearest(r rng.Source, origin geom.Point, maxDist int32) (geom.Point, PlacementResult) {
	return l.findNearest(r, origin, maxDist, l.CanPlaceItemAt)
}

func (l *level) AddEntityNearestRandom(r rng.Source, h *world.UniqueEntity, origin geom.Point, maxDist int32) (geom.Point, PlacementResult) {
	if !h.Valid() {
		return geom.Point{}, FailedBadID
	}
	p, res := l.FindValidEntityPlacementNearest(r, origin, maxDist)
	if res == Ok {
		l.AddEntityAt(h, p)
	}
	return p, res
}

func (l *level) AddItemNearestRandom(r rng.Source, h *world.UniqueItem, origin geom.Point, maxDist int32) (geom.Point, PlacementResult) {
	if !h.Valid() {
		return geom.Point{}, FailedBadID
	}
	p, res := l.FindValidItemPlacementNearest(r, origin, maxDist)
	if res == Ok {
		l.AddItemAt(h, p)
	}
	return p, res
}

func (l *level) RemoveEntityAt(p geom.Point) world.UniqueEntity {
	id, ok := l.entities.Erase(p)
	if !ok {
		return world.UniqueEntity{}
	}
	l.regionOf(p).EntityCount--
	return world.NewUniqueEntity(l.reg, id)
}

func (l *level) RemoveEntity(id world.EntityInstanceID) world.UniqueEntity {
	p, ok := l.Find(id)
	if !ok {
		return world.UniqueEntity{}
	}
	return l.RemoveEntityAt(p)
}

func (l *level) WithEntityAt(p geom.Point, fn func(world.EntityInstanceID) bool) world.UniqueEntity {
	id, ok := l.EntityAt(p)
	if !ok || fn(id) {
		return world.UniqueEntity{}
	}
	// fn may have moved or removed the entity
	return l.RemoveEntity(id)
}

// moveEntity relocates an entity known to be at from
func (l *level) moveEntity(id world.EntityInstanceID, from, to geom.Point) PlacementResult {
	if from == to {
		return Ok
	}
	if res := l.CanPlaceEntityAt(to); res != Ok {
		return res
	}
	l.entities.MoveTo(id, to)
	l.regionOf(from).EntityCount--
	l.regionOf(to).EntityCount++
	return Ok
}

func (l *level) MoveEntityBy(id world.EntityInstanceID, v geom.Vec) PlacementResult {
	from, ok := l.Find(id)
	if !ok {
		return FailedBadID
	}
	return l.moveEntity(id, from, from.Add(v))
}

func (l *level) MoveItemBy(id world.ItemInstanceID, v geom.Vec) PlacementResult {
	var from geom.Point
	found := false
	l.items.ForEach(func(pile *world.ItemPile, p geom.Point) bool {
		if pile.Contains(id) {
			from, found = p, true
			return false
		}
		return true
	})
	if !found {
		return FailedBadID
	}
	to := from.Add(v)
	if from == to {
		return Ok
	}
	if res := l.CanPlaceItemAt(to); res != Ok {
		return res
	}

	l.takeItem(from, id)
	l.pushItems(to, id)
	return Ok
}

// takeItem removes one item from the pile at p, erasing the pile when emptied
func (l *level) takeItem(p geom.Point, id world.ItemInstanceID) {
	pile := l.items.Find(p)
	pile.Remove(id)
	if pile.Empty() {
		l.items.Erase(p)
	}
	l.regionOf(p).ItemCount--
}

func (l *level) TransformEntities(transform Transform, callback TransformCallback) {
	if l.sweeping {
		panic("level: TransformEntities re-entered")
	}
	l.sweeping = true
	defer func() { l.sweeping = false }()

	// Snapshot so callbacks may add or remove entities
	l.sweep = l.sweep[:0]
	l.entities.ForEach(func(id *world.EntityInstanceID, p geom.Point) bool {
		l.sweep = append(l.sweep, EntityPosition{Pos: p, ID: *id})
		return true
	})

	for _, ep := range l.sweep {
		from, ok := l.Find(ep.ID)
		if !ok {
			callback(ep.ID, FailedBadID, ep.Pos, ep.Pos)
			continue
		}
		to := transform(ep.ID, from)
		callback(ep.ID, l.moveEntity(ep.ID, from, to), from, to)
	}
}
