package level

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/world"
)

func accept(pred Pred, id world.ItemInstanceID) bool {
	return pred == nil || pred(id)
}

// detach takes the selected items off the pile at p into l.moved and fixes
// the index and counters; sinks run only after the level is consistent
func (l *level) detach(p geom.Point, pile *world.ItemPile, selected func(i int, id world.ItemInstanceID) bool) (moved, total int, idx []int) {
	total = pile.Len()
	l.moved = l.moved[:0]
	i := -1
	pile.RemoveIf(func(id world.ItemInstanceID) bool {
		i++
		if selected(i, id) {
			idx = append(idx, i)
			return true
		}
		return false
	}, func(id world.ItemInstanceID) {
		l.moved = append(l.moved, id)
	})
	if pile.Empty() {
		l.items.Erase(p)
	}
	l.regionOf(p).ItemCount -= len(l.moved)
	return len(l.moved), total, idx
}

// sinkMoved copies l.moved first: a sink may call back into the level
func (l *level) sinkMoved(idx []int, sink Sink) {
	for k, id := range slices.Clone(l.moved) {
		sink(world.NewUniqueItem(l.reg, id), idx[k])
	}
}

func (l *level) MoveItemsFrom(p geom.Point, pred Pred, sink Sink) (MergeResult, int) {
	pile := l.items.Find(p)
	if pile == nil {
		return FailedBadSource, 0
	}
	moved, total, idx := l.detach(p, pile, func(_ int, id world.ItemInstanceID) bool {
		return accept(pred, id)
	})
	l.sinkMoved(idx, sink)
	return mergeResult(moved, total), moved
}

// MoveItemsAt panics on an index outside the pile; duplicates count once
func (l *level) MoveItemsAt(p geom.Point, indices []int, sink Sink) (MergeResult, int) {
	pile := l.items.Find(p)
	if pile == nil {
		return FailedBadSource, 0
	}
	want := make([]bool, pile.Len())
	for _, i := range indices {
		if i < 0 || i >= len(want) {
			panic(fmt.Sprintf("level: pile index %d out of range [0,%d)", i, len(want)))
		}
		want[i] = true
	}
	moved, total, idx := l.detach(p, pile, func(i int, _ world.ItemInstanceID) bool {
		return want[i]
	})
	l.sinkMoved(idx, sink)
	return mergeResult(moved, total), moved
}

// ownsPile reports whether pile points into the level's own item storage
func (l *level) ownsPile(pile *world.ItemPile) bool {
	piles := l.items.Values()
	for i := range piles {
		if &piles[i] == pile {
			return true
		}
	}
	return false
}

func (l *level) MoveItemsInto(p geom.Point, src *world.ItemPile, pred Pred) (MergeResult, int) {
	if l.ownsPile(src) {
		panic(fmt.Sprintf("level: item move into %v from a pile the level owns", p))
	}
	if src == nil || src.Empty() {
		return FailedBadSource, 0
	}
	if l.CanPlaceItemAt(p) != Ok {
		return FailedBadDestination, 0
	}
	total := src.Len()
	l.moved = l.moved[:0]
	src.RemoveIf(func(id world.ItemInstanceID) bool {
		return accept(pred, id)
	}, func(id world.ItemInstanceID) {
		l.moved = append(l.moved, id)
	})
	l.pushItems(p, l.moved...)
	return mergeResult(len(l.moved), total), len(l.moved)
}

func (l *level) MoveItemsBetween(from, to geom.Point, pred Pred) (MergeResult, int) {
	if from == to {
		panic(fmt.Sprintf("level: item move from %v onto itself", from))
	}
	pile := l.items.Find(from)
	if pile == nil {
		return FailedBadSource, 0
	}
	if l.CanPlaceItemAt(to) != Ok {
		return FailedBadDestination, 0
	}
	moved, total, _ := l.detach(from, pile, func(_ int, id world.ItemInstanceID) bool {
		return accept(pred, id)
	})
	l.pushItems(to, l.moved...)
	return mergeResult(moved, total), moved
}
