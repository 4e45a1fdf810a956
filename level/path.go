package level

import (
	"slices"

	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// pathNode is an open-set entry; f = g + h
type pathNode struct {
	cell int32
	g    int32
	f    int32
}

// pathSearch keeps A* state between calls so a search allocates nothing
// once warm. Cells are valid for the current search only when stamp matches
type pathSearch struct {
	stamp  uint32
	stamps []uint32
	cost   []int32
	parent []int32
	open   *heap.Heap[pathNode]
	closed mapset.Set[int32]
}

func (s *pathSearch) reset(n int) {
	if len(s.stamps) != n {
		s.stamps = make([]uint32, n)
		s.cost = make([]int32, n)
		s.parent = make([]int32, n)
		s.stamp = 0
	}
	if s.open == nil {
		s.open = heap.New[pathNode](lessNode)
		s.closed = mapset.New[int32]()
	}
	// An early exit leaves nodes behind
	for s.open.Size() > 0 {
		s.open.Pop()
	}
	s.closed.Clear()
	s.stamp++
	if s.stamp == 0 {
		clear(s.stamps)
		s.stamp = 1
	}
}

func (s *pathSearch) seen(i int32) bool { return s.stamps[i] == s.stamp }

func (s *pathSearch) visit(i, parent, cost int32) {
	s.stamps[i] = s.stamp
	s.parent[i] = parent
	s.cost[i] = cost
}

func lessNode(a, b pathNode) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	// Prefer nodes closer to the goal, then lower cell index for determinism
	if a.g != b.g {
		return a.g > b.g
	}
	return a.cell < b.cell
}

func (l *level) point(i int32) geom.Point {
	w := int32(l.width)
	return geom.Point{X: geom.OffsetX(i % w), Y: geom.OffsetY(i / w)}
}

// canStep allows diagonal steps only when neither adjacent cardinal is solid
func (l *level) canStep(from geom.Point, d geom.Vec) bool {
	to := from.Add(d)
	if !l.walkable(to) {
		return false
	}
	if d.X != 0 && d.Y != 0 {
		return l.walkable(from.Add(geom.Vec{X: d.X})) && l.walkable(from.Add(geom.Vec{Y: d.Y}))
	}
	return true
}

// FindPath runs 8-way A* over non-solid cells with unit step cost
// Entities do not block; an unreachable or solid goal yields an empty path
func (l *level) FindPath(from, to geom.Point) []geom.Point {
	l.path = l.path[:0]
	if from == to || !l.bounds.Contains(from) || !l.walkable(to) {
		return l.path
	}

	s := &l.search
	s.reset(len(l.ids))

	start, goal := int32(l.index(from)), int32(l.index(to))
	open, closed := s.open, s.closed

	s.visit(start, start, 0)
	open.Push(pathNode{cell: start, g: 0, f: geom.Chebyshev(from, to)})

	found := false
	for open.Size() > 0 {
		n, _ := open.Pop()
		if closed.Has(n.cell) {
			continue
		}
		if n.cell == goal {
			found = true
			break
		}
		closed.Put(n.cell)

		p := l.point(n.cell)
		for _, d := range geom.Directions {
			if !l.canStep(p, d) {
				continue
			}
			q := p.Add(d)
			qi := int32(l.index(q))
			if closed.Has(qi) {
				continue
			}
			g := n.g + 1
			if s.seen(qi) && s.cost[qi] <= g {
				continue
			}
			s.visit(qi, n.cell, g)
			open.Push(pathNode{cell: qi, g: g, f: g + geom.Chebyshev(q, to)})
		}
	}
	if !found {
		return l.path
	}

	for c := goal; c != start; c = s.parent[c] {
		l.path = append(l.path, l.point(c))
	}
	slices.Reverse(l.path)
	return l.path
}

// HasLineOfSight walks the Bresenham line; only cells strictly between the
// endpoints can block
func (l *level) HasLineOfSight(from, to geom.Point) bool {
	if !l.bounds.Contains(from) || !l.bounds.Contains(to) {
		return false
	}
	return geom.Line(from, to, func(p geom.Point) bool {
		if p == from || p == to {
			return true
		}
		return !l.solid(l.index(p))
	})
}
