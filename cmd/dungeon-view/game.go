package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-dungeon/audio"
	"github.com/lixenwraith/vi-dungeon/config"
	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/level"
	"github.com/lixenwraith/vi-dungeon/render"
	"github.com/lixenwraith/vi-dungeon/rng"
	"github.com/lixenwraith/vi-dungeon/tile"
	"github.com/lixenwraith/vi-dungeon/world"
)

const (
	defPlayer  world.EntityDefID = 1
	defMonster world.EntityDefID = 2

	playerHP   = 20
	sightRange = 8
	packSlots  = 6
)

var catalog = world.Catalog{
	1: {Name: "gold", StackSize: 50},
	2: {Name: "potion", StackSize: 5},
	3: {Name: "dagger"},
	4: {Name: "bag", Capacity: 2},
}

// cuePlayer is satisfied by *audio.Player
type cuePlayer interface {
	Play(c audio.Cue)
}

// Game holds one run: the current level, the player and their pack
type Game struct {
	cfg  config.Config
	rnd  *rng.State
	reg  *world.Store
	lvl  level.Level
	pack *pack
	cues cuePlayer

	player  world.EntityInstanceID
	hp      int
	turn    int
	over    bool
	message string
}

// NewGame generates the first level and places the player on its up stair
func NewGame(cfg config.Config, cues cuePlayer) *Game {
	reg := world.NewRegistry()
	g := &Game{
		cfg:  cfg,
		rnd:  cfg.Source(),
		reg:  reg,
		pack: newPack(reg, catalog, packSlots),
		cues: cues,
		hp:   playerHP,
	}
	h := reg.NewEntity(defPlayer)
	g.enter(cfg.Level.ID, h)
	return g
}

// Level exposes the current level for rendering
func (g *Game) Level() level.Level { return g.lvl }

// Over reports whether the player has died
func (g *Game) Over() bool { return g.over }

// Position returns the player cell
func (g *Game) Position() geom.Point {
	p, ok := g.lvl.Find(g.player)
	if !ok {
		panic("dungeon-view: player missing from level")
	}
	return p
}

// Status is the one-line summary under the map
func (g *Game) Status() string {
	return fmt.Sprintf("depth %d  hp %d  pack %d/%d  turn %d  %s",
		g.lvl.ID(), g.hp, g.pack.used(), g.pack.capacity(), g.turn, g.message)
}

// Style draws the player apart from monsters
func (g *Game) Style(id world.EntityInstanceID) (rune, tcell.Style) {
	if id == g.player {
		return '@', tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbPlayer).Bold(true)
	}
	return render.DefaultEntityStyle(id)
}

func (g *Game) play(c audio.Cue) {
	if g.cues != nil {
		g.cues.Play(c)
	}
}

// enter replaces the current level with a fresh one and moves the player in
func (g *Game) enter(id int, h world.UniqueEntity) {
	defer h.Close()
	if g.lvl != nil {
		g.retire()
	}

	w, ht := geom.SizeX(g.cfg.Level.Width), geom.SizeY(g.cfg.Level.Height)
	g.lvl = level.New(g.rnd, g.reg, w, ht, id, g.cfg.Options()...)

	g.player = h.ID()
	at, res := g.lvl.AddEntityNearestRandom(g.rnd, &h, g.lvl.StairUp(0), int32(g.cfg.Level.MaxPlacementDistance))
	if res != level.Ok {
		panic(fmt.Sprintf("dungeon-view: cannot place player on level %d: %v", id, res))
	}
	log.Printf("level %d: player at %v, %d regions", id, at, g.lvl.RegionCount())
	g.populate()
}

// populate scatters monsters and items at random origins
func (g *Game) populate() {
	b := g.lvl.Bounds()
	maxDist := int32(g.cfg.Level.MaxPlacementDistance)
	origin := func() geom.Point {
		return geom.Pt(g.rnd.UniformInt(int(b.X0), int(b.X1)-1), g.rnd.UniformInt(int(b.Y0), int(b.Y1)-1))
	}

	for i := 0; i < g.cfg.Level.Monsters; i++ {
		h := g.reg.NewEntity(defMonster)
		if _, res := g.lvl.AddEntityNearestRandom(g.rnd, &h, origin(), maxDist); res != level.Ok {
			log.Printf("monster %d not placed: %v", i, res)
		}
		h.Close()
	}
	for i := 0; i < g.cfg.Level.Items; i++ {
		def := world.ItemDefID(g.rnd.UniformInt(1, len(catalog)))
		h := g.reg.NewItem(def)
		if _, res := g.lvl.AddItemNearestRandom(g.rnd, &h, origin(), maxDist); res != level.Ok {
			log.Printf("item %d not placed: %v", i, res)
		}
		h.Close()
	}
}

// retire frees everything left on the current level except the player
func (g *Game) retire() {
	var ids []world.EntityInstanceID
	g.lvl.ForEachEntity(func(id world.EntityInstanceID, _ geom.Point) {
		if id != g.player {
			ids = append(ids, id)
		}
	})
	for _, id := range ids {
		h := g.lvl.RemoveEntity(id)
		h.Close()
	}

	var piles []geom.Point
	g.lvl.ForEachPile(func(_ *world.ItemPile, p geom.Point) { piles = append(piles, p) })
	for _, p := range piles {
		g.lvl.MoveItemsFrom(p, nil, func(h world.UniqueItem, _ int) { h.Close() })
	}
}

// Close frees the player, their pack and the level contents
func (g *Game) Close() {
	g.retire()
	h := g.lvl.RemoveEntity(g.player)
	h.Close()
	g.pack.close(g.reg)
}

// Step moves the player by v, attacking a monster in the way, then lets the
// monsters act
func (g *Game) Step(v geom.Vec) {
	if g.over {
		return
	}
	g.message = ""
	target := g.Position().Add(v)

	switch res := g.lvl.MoveEntityBy(g.player, v); res {
	case level.Ok:
		g.arrive()
	case level.FailedEntity:
		h := g.lvl.WithEntityAt(target, func(world.EntityInstanceID) bool { return false })
		h.Close()
		g.message = "you slay the monster"
	default:
		g.message = "blocked"
		g.play(audio.CueBump)
		return
	}
	g.endTurn()
}

func (g *Game) arrive() {
	p := g.Position()
	switch g.lvl.At(p).Type {
	case tile.TypeDoor:
		g.play(audio.CueDoor)
	case tile.TypeStair:
		g.play(audio.CueStairs)
		if g.lvl.At(p).ID == tile.StairDown {
			g.message = "a staircase leads down"
		}
	}
	if pile := g.lvl.ItemAt(p); pile != nil {
		g.message = fmt.Sprintf("%d item(s) here", pile.Len())
	}
}

// Wait passes a turn
func (g *Game) Wait() {
	if g.over {
		return
	}
	g.message = ""
	g.endTurn()
}

// Pickup takes as much of the pile underfoot as the pack holds
func (g *Game) Pickup() {
	if g.over {
		return
	}
	res, n := g.lvl.MoveItemsFrom(g.Position(), g.pack.taker(), func(h world.UniqueItem, _ int) { g.pack.add(h) })
	switch res {
	case level.FailedBadSource:
		g.message = "nothing here"
		return
	case level.MergedNone:
		g.message = "your pack is full"
		return
	case level.MergedSome:
		g.message = fmt.Sprintf("picked up %d, the rest does not fit", n)
	default:
		g.message = fmt.Sprintf("picked up %d", n)
	}
	g.play(audio.CuePickup)
	g.endTurn()
}

// Drop empties the pack onto the current cell
func (g *Game) Drop() {
	if g.over {
		return
	}
	res, n := g.lvl.MoveItemsInto(g.Position(), &g.pack.items, nil)
	if !res.Ok() || n == 0 {
		g.message = "nothing to drop"
		return
	}
	g.message = fmt.Sprintf("dropped %d", n)
	g.play(audio.CueDrop)
	g.endTurn()
}

// Descend takes the down stair under the player to a new level
func (g *Game) Descend() {
	if g.over {
		return
	}
	if g.lvl.At(g.Position()).ID != tile.StairDown {
		g.message = "no stairs down here"
		g.play(audio.CueBump)
		return
	}
	next := g.lvl.ID() + 1
	h := g.lvl.RemoveEntity(g.player)
	g.enter(next, h)
	g.message = fmt.Sprintf("you descend to depth %d", next)
	g.play(audio.CueStairs)
}

func (g *Game) endTurn() {
	g.turn++
	g.monsters()
	if g.hp <= 0 {
		g.over = true
		g.message = "you die"
	}
}

// monsters chase a visible player along the shortest path and wander otherwise
func (g *Game) monsters() {
	pp := g.Position()
	hits, blocked := 0, 0
	g.lvl.TransformEntities(func(id world.EntityInstanceID, p geom.Point) geom.Point {
		if id == g.player {
			return p
		}
		if geom.Chebyshev(p, pp) <= sightRange && g.lvl.HasLineOfSight(p, pp) {
			path := g.lvl.FindPath(p, pp)
			switch {
			case len(path) == 1:
				hits++
				return p
			case len(path) > 1:
				return path[0]
			}
		}
		if g.rnd.UniformInt(0, 2) == 0 {
			return p
		}
		return p.Add(geom.Directions[g.rnd.UniformInt(0, len(geom.Directions)-1)])
	}, func(_ world.EntityInstanceID, res level.PlacementResult, _, _ geom.Point) {
		if res != level.Ok {
			blocked++
		}
	})

	if hits > 0 {
		g.hp -= hits
		g.message = fmt.Sprintf("hit %d time(s)", hits)
	}
	if blocked > 0 {
		log.Printf("turn %d: %d monster moves blocked", g.turn, blocked)
	}
}
