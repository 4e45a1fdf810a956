package level

import (
	"testing"

	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drop(t *testing.T, l Level, reg *world.Store, x, y int) world.ItemInstanceID {
	t.Helper()
	h := reg.NewItem(1)
	return l.AddItemAt(&h, geom.Pt(x, y))
}

// collect is a Sink that keeps the handles it receives
type collect struct {
	ids     []world.ItemInstanceID
	indices []int
	handles []world.UniqueItem
}

func (c *collect) sink(h world.UniqueItem, i int) {
	c.ids = append(c.ids, h.ID())
	c.indices = append(c.indices, i)
	c.handles = append(c.handles, h)
}

func (c *collect) close() {
	for i := range c.handles {
		c.handles[i].Close()
	}
}

func TestAddItemStacks(t *testing.T) {
	l, reg := newFloor(t, 4, 4)
	a := drop(t, l, reg, 1, 1)
	b := drop(t, l, reg, 1, 1)

	pile := l.ItemAt(geom.Pt(1, 1))
	require.NotNil(t, pile)
	assert.Equal(t, []world.ItemInstanceID{a, b}, pile.Items())
	top, _ := pile.Top()
	assert.Equal(t, b, top)
	assert.Equal(t, 2, l.Region(0).ItemCount)
	assert.Nil(t, l.ItemAt(geom.Pt(0, 0)))

	setWall(l, 2, 2)
	h := reg.NewItem(1)
	assert.Panics(t, func() { l.AddItemAt(&h, geom.Pt(2, 2)) })
	assert.True(t, h.Valid())
	h.Close()
}

func TestMoveItemsFrom(t *testing.T) {
	l, reg := newFloor(t, 4, 4)
	a := drop(t, l, reg, 1, 1)
	b := drop(t, l, reg, 1, 1)
	c := drop(t, l, reg, 1, 1)

	var got collect
	res, n := l.MoveItemsFrom(geom.Pt(1, 1), func(id world.ItemInstanceID) bool { return id != b }, got.sink)
	assert.Equal(t, MergedSome, res)
	assert.Equal(t, 2, n)
	assert.Equal(t, []world.ItemInstanceID{a, c}, got.ids)
	assert.Equal(t, []int{0, 2}, got.indices)
	assert.Equal(t, []world.ItemInstanceID{b}, l.ItemAt(geom.Pt(1, 1)).Items())
	assert.Equal(t, 1, l.Region(0).ItemCount)

	// Sink owns the handles
	got.close()
	assert.Equal(t, 1, reg.LiveItems())

	res, n = l.MoveItemsFrom(geom.Pt(1, 1), func(world.ItemInstanceID) bool { return false }, got.sink)
	assert.Equal(t, MergedNone, res)
	assert.Zero(t, n)

	var rest collect
	res, n = l.MoveItemsFrom(geom.Pt(1, 1), nil, rest.sink)
	assert.Equal(t, MergedAll, res)
	assert.Equal(t, 1, n)
	assert.Nil(t, l.ItemAt(geom.Pt(1, 1)), "emptied pile is erased")
	rest.close()

	res, _ = l.MoveItemsFrom(geom.Pt(1, 1), nil, rest.sink)
	assert.Equal(t, FailedBadSource, res)
}

func TestMoveItemsAt(t *testing.T) {
	l, reg := newFloor(t, 4, 4)
	a := drop(t, l, reg, 0, 0)
	b := drop(t, l, reg, 0, 0)
	c := drop(t, l, reg, 0, 0)

	var got collect
	defer got.close()
	res, n := l.MoveItemsAt(geom.Pt(0, 0), []int{2, 0, 2}, got.sink)
	assert.Equal(t, MergedSome, res)
	assert.Equal(t, 2, n)
	assert.Equal(t, []world.ItemInstanceID{a, c}, got.ids)
	assert.Equal(t, []world.ItemInstanceID{b}, l.ItemAt(geom.Pt(0, 0)).Items())

	assert.Panics(t, func() { l.MoveItemsAt(geom.Pt(0, 0), []int{1}, got.sink) })

	res, _ = l.MoveItemsAt(geom.Pt(3, 3), []int{0}, got.sink)
	assert.Equal(t, FailedBadSource, res)
}

func TestMoveItemsInto(t *testing.T) {
	l, reg := newFloor(t, 4, 4)
	floor := drop(t, l, reg, 2, 2)

	h1, h2 := reg.NewItem(1), reg.NewItem(2)
	inv := world.NewItemPile(h1.Release(), h2.Release())

	setWall(l, 3, 3)
	res, _ := l.MoveItemsInto(geom.Pt(3, 3), &inv, nil)
	assert.Equal(t, FailedBadDestination, res)
	assert.Equal(t, 2, inv.Len())

	first := inv.At(0)
	res, n := l.MoveItemsInto(geom.Pt(2, 2), &inv, func(id world.ItemInstanceID) bool { return id == first })
	assert.Equal(t, MergedSome, res)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, inv.Len())

	pile := l.ItemAt(geom.Pt(2, 2))
	require.NotNil(t, pile)
	assert.Equal(t, floor, pile.Key())
	assert.Equal(t, 2, pile.Len())
	assert.Equal(t, 2, l.Region(0).ItemCount)

	res, _ = l.MoveItemsInto(geom.Pt(0, 0), nil, nil)
	assert.Equal(t, FailedBadSource, res)
	var empty world.ItemPile
	res, _ = l.MoveItemsInto(geom.Pt(0, 0), &empty, nil)
	assert.Equal(t, FailedBadSource, res)
}

func TestMoveItemsIntoRejectsLevelPile(t *testing.T) {
	l, reg := newFloor(t, 4, 4)
	a := drop(t, l, reg, 0, 0)
	b := drop(t, l, reg, 3, 3)

	assert.Panics(t, func() { l.MoveItemsInto(geom.Pt(2, 2), l.ItemAt(geom.Pt(0, 0)), nil) })
	assert.Panics(t, func() { l.MoveItemsInto(geom.Pt(0, 0), l.ItemAt(geom.Pt(0, 0)), nil) })

	assert.Equal(t, 2, l.Region(0).ItemCount)
	assert.Equal(t, []world.ItemInstanceID{a}, l.ItemAt(geom.Pt(0, 0)).Items())
	assert.Equal(t, []world.ItemInstanceID{b}, l.ItemAt(geom.Pt(3, 3)).Items())
	assert.Nil(t, l.ItemAt(geom.Pt(2, 2)))

	h := reg.NewItem(1)
	inv := world.NewItemPile(h.Release())
	res, n := l.MoveItemsInto(geom.Pt(0, 0), &inv, nil)
	assert.Equal(t, MergedAll, res)
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, l.Region(0).ItemCount)
}

func TestMoveItemsBetween(t *testing.T) {
	l, reg := newFloor(t, 5, 5)
	a := drop(t, l, reg, 0, 0)
	b := drop(t, l, reg, 0, 0)
	c := drop(t, l, reg, 4, 4)

	assert.Panics(t, func() { l.MoveItemsBetween(geom.Pt(0, 0), geom.Pt(0, 0), nil) })

	setWall(l, 2, 2)
	res, _ := l.MoveItemsBetween(geom.Pt(0, 0), geom.Pt(2, 2), nil)
	assert.Equal(t, FailedBadDestination, res)
	res, _ = l.MoveItemsBetween(geom.Pt(1, 1), geom.Pt(4, 4), nil)
	assert.Equal(t, FailedBadSource, res)

	res, n := l.MoveItemsBetween(geom.Pt(0, 0), geom.Pt(4, 4), nil)
	assert.Equal(t, MergedAll, res)
	assert.Equal(t, 2, n)
	assert.Nil(t, l.ItemAt(geom.Pt(0, 0)))
	assert.Equal(t, []world.ItemInstanceID{c, a, b}, l.ItemAt(geom.Pt(4, 4)).Items())
	assert.Equal(t, 3, l.Region(0).ItemCount)

	res, n = l.MoveItemsBetween(geom.Pt(4, 4), geom.Pt(1, 0), func(id world.ItemInstanceID) bool { return id == a })
	assert.Equal(t, MergedSome, res)
	assert.Equal(t, 1, n)
	assert.Equal(t, []world.ItemInstanceID{a}, l.ItemAt(geom.Pt(1, 0)).Items())
}

func TestMoveItemBy(t *testing.T) {
	l, reg := newFloor(t, 4, 4)
	a := drop(t, l, reg, 1, 1)
	b := drop(t, l, reg, 1, 1)
	drop(t, l, reg, 2, 1)
	setWall(l, 1, 2)

	assert.Equal(t, FailedBadID, l.MoveItemBy(999, geom.V(1, 0)))
	assert.Equal(t, FailedObstacle, l.MoveItemBy(a, geom.V(0, 1)))
	assert.Equal(t, FailedBounds, l.MoveItemBy(a, geom.V(-2, 0)))

	// Bottom item leaves; the pile stays keyed by what is now at the bottom
	require.Equal(t, Ok, l.MoveItemBy(a, geom.V(0, -1)))
	assert.Equal(t, b, l.ItemAt(geom.Pt(1, 1)).Key())
	assert.Equal(t, []world.ItemInstanceID{a}, l.ItemAt(geom.Pt(1, 0)).Items())

	// Moving onto an existing pile stacks on top
	require.Equal(t, Ok, l.MoveItemBy(b, geom.V(1, 0)))
	assert.Nil(t, l.ItemAt(geom.Pt(1, 1)))
	top, _ := l.ItemAt(geom.Pt(2, 1)).Top()
	assert.Equal(t, b, top)
	assert.Equal(t, 3, l.Region(0).ItemCount)
}

func TestForEachPile(t *testing.T) {
	l, reg := newFloor(t, 4, 4)
	drop(t, l, reg, 0, 0)
	drop(t, l, reg, 0, 0)
	drop(t, l, reg, 3, 3)

	total := 0
	l.ForEachPile(func(p *world.ItemPile, _ geom.Point) { total += p.Len() })
	assert.Equal(t, 3, total)

	piles := 0
	l.ForEachPileWhile(func(*world.ItemPile, geom.Point) bool {
		piles++
		return false
	})
	assert.Equal(t, 1, piles)
}
