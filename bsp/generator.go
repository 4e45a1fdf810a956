// Package bsp recursively partitions a rectangle into leaf regions that seed
// rooms and corridors.
//
// The exposed leaf sequence is sorted descending first by min(width, height)
// and then by area, so the "fattest" regions come first.
package bsp

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/rng"
)

// MaxNodes bounds the arena; indices are uint16
const MaxNodes = math.MaxUint16

// Node is one region of the partition tree
// The root is index 0 and is its own parent; a leaf has Child == 0
// Siblings are always adjacent: the second child of n is n.Child+1
type Node struct {
	Rect geom.Rect
	// Room is the carved sub-rectangle of a leaf, empty when the room roll failed
	Room geom.Rect

	Index  uint16
	Parent uint16
	Child  uint16
	Level  uint16
}

// IsLeaf reports whether the node was not subdivided
func (n Node) IsLeaf() bool { return n.Child == 0 }

// HasRoom reports whether a room was sampled for the leaf
func (n Node) HasRoom() bool { return !n.Room.Empty() }

// Generator produces the leaf regions for one rectangle
type Generator interface {
	// Params returns the live parameters; edits apply to the next Generate
	Params() *Params

	// Generate rebuilds the tree from src, discarding any previous result
	Generate(src rng.Source)

	// Len returns the number of leaves
	Len() int
	Empty() bool
	Clear()

	// Leaves returns the ordered leaf view, valid until the next Generate/Clear
	Leaves() []Node

	// At returns leaf i by value
	At(i int) Node

	// Tree returns the whole arena, root first
	Tree() []Node
}

type generator struct {
	params Params
	nodes  []Node
	leaves []Node
}

// New creates a Generator for p
func New(p Params) Generator {
	return &generator{params: p}
}

func (g *generator) Params() *Params { return &g.params }
func (g *generator) Len() int        { return len(g.leaves) }
func (g *generator) Empty() bool     { return len(g.leaves) == 0 }
func (g *generator) Leaves() []Node  { return g.leaves }
func (g *generator) Tree() []Node    { return g.nodes }
func (g *generator) At(i int) Node   { return g.leaves[i] }

func (g *generator) Clear() {
	g.nodes = g.nodes[:0]
	g.leaves = g.leaves[:0]
}

// Generate partitions the configured rectangle
// Panics when Params.Validate fails or the tree would exceed MaxNodes
func (g *generator) Generate(src rng.Source) {
	if err := g.params.Validate(); err != nil {
		panic(err)
	}
	g.Clear()

	// 1. Root covers the full rectangle
	g.nodes = append(g.nodes, Node{Rect: geom.RectWH(g.params.Width, g.params.Height)})

	// 2. Recursive split, depth first, first child first
	g.split(src, 0)

	// 3. Collect and order leaves
	for _, n := range g.nodes {
		if n.IsLeaf() {
			g.leaves = append(g.leaves, n)
		}
	}
	sortLeaves(g.leaves)

	// 4. Room decision per leaf, in final order
	for i := range g.leaves {
		room := g.sampleRoom(src, g.leaves[i].Rect)
		g.leaves[i].Room = room
		g.nodes[g.leaves[i].Index].Room = room
	}
}

func (g *generator) split(src rng.Source, idx uint16) {
	n := g.nodes[idx]
	w, h := int(n.Rect.Width()), int(n.Rect.Height())
	minSize := g.params.MinRegionSize

	vertical := w >= h // cut across x
	axis := h
	if vertical {
		axis = w
	}
	if axis <= 2*minSize {
		return
	}

	at := g.splitOffset(src, axis)

	a, b := n.Rect, n.Rect
	if vertical {
		a.X1 = n.Rect.X0.Add(geom.SizeX(at))
		b.X0 = a.X1
	} else {
		a.Y1 = n.Rect.Y0.Add(geom.SizeY(at))
		b.Y0 = a.Y1
	}

	if len(g.nodes)+2 > MaxNodes {
		panic(fmt.Sprintf("bsp: partition exceeds %d nodes", MaxNodes))
	}
	child := uint16(len(g.nodes))
	level := n.Level + 1
	g.nodes = append(g.nodes,
		Node{Rect: a, Index: child, Parent: idx, Level: level},
		Node{Rect: b, Index: child + 1, Parent: idx, Level: level},
	)
	g.nodes[idx].Child = child

	g.split(src, child)
	g.split(src, child+1)
}

// splitOffset draws the cut position along an axis of length axis
// Mean is the midpoint, stddev (axis - MinRegionSize) / SplitVariance
func (g *generator) splitOffset(src rng.Source, axis int) int {
	minSize := g.params.MinRegionSize
	spread := float64(axis-minSize) / g.params.SplitVariance
	return rng.NormalClamped(src, float64(axis)/2, spread, minSize, axis-minSize)
}

func (g *generator) sampleRoom(src rng.Source, leaf geom.Rect) geom.Rect {
	p := &g.params
	w, h := int(leaf.Width()), int(leaf.Height())
	if w < p.MinRoomSize || h < p.MinRoomSize {
		return geom.Rect{}
	}
	if !rng.Chance(src, p.RoomChanceNum, p.RoomChanceDen) {
		return geom.Rect{}
	}

	rw := g.roomSide(src, w)
	rh := g.roomSide(src, h)
	x := src.UniformInt(int(leaf.X0), int(leaf.X1)-rw)
	y := src.UniformInt(int(leaf.Y0), int(leaf.Y1)-rh)

	return geom.RectXYWH(geom.OffsetX(x), geom.OffsetY(y), geom.SizeX(rw), geom.SizeY(rh))
}

func (g *generator) roomSide(src rng.Source, side int) int {
	lo := g.params.MinRoomSize
	hi := min(g.params.MaxRoomSize, side)
	spread := float64(hi-lo) / g.params.SplitVariance
	return rng.NormalClamped(src, float64(lo+hi)/2, spread, lo, hi)
}

func sortLeaves(leaves []Node) {
	slices.SortStableFunc(leaves, compareLeaves)
}

// compareLeaves orders by min side, then area, both descending
func compareLeaves(a, b Node) int {
	if c := cmp.Compare(b.Rect.MinSide(), a.Rect.MinSide()); c != 0 {
		return c
	}
	return cmp.Compare(b.Rect.Area(), a.Rect.Area())
}
