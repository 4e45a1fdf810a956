package main

import (
	"github.com/lixenwraith/vi-dungeon/level"
	"github.com/lixenwraith/vi-dungeon/world"
)

// itemDefs resolves an instance to its definition
type itemDefs interface {
	ItemDef(id world.ItemInstanceID) (world.ItemDefID, bool)
}

// pack is the player's inventory
// Items of one definition share a slot up to the catalog stack size;
// carried containers add their capacity to the base slot count
type pack struct {
	items world.ItemPile
	defs  itemDefs
	db    world.Database
	base  int
}

func newPack(defs itemDefs, db world.Database, base int) *pack {
	return &pack{defs: defs, db: db, base: base}
}

func (p *pack) counts() map[world.ItemDefID]int {
	n := make(map[world.ItemDefID]int)
	for _, id := range p.items.Items() {
		if def, ok := p.defs.ItemDef(id); ok {
			n[def]++
		}
	}
	return n
}

// capacity returns the number of slots
func (p *pack) capacity() int {
	c := p.base
	for def, n := range p.counts() {
		c += n * p.db.ItemCapacity(def)
	}
	return c
}

// used returns the number of occupied slots
func (p *pack) used() int {
	used := 0
	for def, n := range p.counts() {
		stack := p.db.StackSize(def)
		used += (n + stack - 1) / stack
	}
	return used
}

// taker returns a predicate accepting items while they fit
// It tracks what it has already accepted, so one predicate serves one transfer
func (p *pack) taker() level.Pred {
	counts := p.counts()
	free := p.capacity() - p.used()
	return func(id world.ItemInstanceID) bool {
		def, ok := p.defs.ItemDef(id)
		if !ok {
			return false
		}
		if counts[def]%p.db.StackSize(def) == 0 {
			if free <= 0 {
				return false
			}
			free--
		}
		counts[def]++
		return true
	}
}

// add takes ownership of h
func (p *pack) add(h world.UniqueItem) {
	p.items.Add(h.Release())
}

// close frees everything carried
func (p *pack) close(reg world.Registry) {
	for _, id := range p.items.Items() {
		reg.FreeItem(id)
	}
	p.items = world.ItemPile{}
}
