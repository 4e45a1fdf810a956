package level

import (
	"github.com/lixenwraith/vi-dungeon/bsp"
	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/rng"
	"github.com/lixenwraith/vi-dungeon/tile"
	"github.com/lixenwraith/vi-dungeon/world"
)

// generate partitions the level, carves rooms and corridors and places stairs
// Region i is leaf i of the partition, so region 0 is the fattest leaf
func generate(r rng.Source, reg world.Registry, p bsp.Params, id int) Level {
	// 1. Partition
	gen := bsp.New(p)
	gen.Generate(r)
	leaves := gen.Leaves()

	b := NewBuilder(reg, p.Width, p.Height, id)
	inner := b.Bounds().Shrink()

	// 2. One region per leaf
	for _, leaf := range leaves {
		b.AddRegion(leaf.Rect)
	}

	// 3. Rooms, kept off the outer edge so every room gets a wall ring
	rooms := make([]geom.Rect, len(leaves))
	count := 0
	for i, leaf := range leaves {
		rooms[i] = leaf.Room.Intersect(inner)
		if !rooms[i].Empty() {
			count++
		}
	}
	// Stairs need two rooms; force them into the fattest leaves without one
	for i := 0; i < len(leaves) && count < 2; i++ {
		if rooms[i].Empty() {
			rooms[i] = leaves[i].Rect.Shrink().Intersect(inner)
			if !rooms[i].Empty() {
				count++
			}
		}
	}
	for i, room := range rooms {
		b.Fill(room, tile.FloorSet(uint16(i)))
	}

	// 4. Corridors joining sibling subtrees, bottom up
	connect(b, r, gen.Tree(), leaves, rooms)

	// 5. Walls around everything walkable
	b.Enclose()

	// 6. Doors where corridors pierce room walls
	for _, room := range rooms {
		if room.Empty() {
			continue
		}
		n, ok := p.Weights.Pick(r)
		if !ok {
			n = 1
		}
		b.PlaceDoors(room, n)
	}

	// 7. Stairs in the two fattest rooms
	var first, second geom.Rect
	for _, room := range rooms {
		switch {
		case room.Empty():
		case first.Empty():
			first = room
		case second.Empty():
			second = room
		}
	}
	if !first.Empty() {
		b.AddStairDown(first.Center())
		up := first.TopLeft()
		if !second.Empty() {
			up = second.Center()
		}
		if up != first.Center() {
			b.AddStairUp(up)
		}
	}

	return b.Build()
}

// connect links the rooms of the two subtrees of every inner node
// The arena lists children after their parent, so a reverse walk sees
// children first
func connect(b *Builder, r rng.Source, tree []bsp.Node, leaves []bsp.Node, rooms []geom.Rect) {
	leafOf := make(map[uint16]int, len(leaves))
	for i, leaf := range leaves {
		leafOf[leaf.Index] = i
	}

	// anchor[n] is a room cell inside subtree n
	anchor := make([]geom.Point, len(tree))
	has := make([]bool, len(tree))

	for n := len(tree) - 1; n >= 0; n-- {
		node := tree[n]
		if node.IsLeaf() {
			if room := rooms[leafOf[node.Index]]; !room.Empty() {
				anchor[n], has[n] = room.Center(), true
			}
			continue
		}
		a, c := int(node.Child), int(node.Child)+1
		switch {
		case has[a] && has[c]:
			b.Corridor(r, anchor[a], anchor[c])
			anchor[n], has[n] = anchor[a], true
		case has[a]:
			anchor[n], has[n] = anchor[a], true
		case has[c]:
			anchor[n], has[n] = anchor[c], true
		}
	}
}
