package world

import "slices"

// ItemPile is the ordered stack of items on one cell or in one inventory
// The last item added is the top
type ItemPile struct {
	items []ItemInstanceID
}

// NewItemPile creates a pile holding ids bottom first
func NewItemPile(ids ...ItemInstanceID) ItemPile {
	return ItemPile{items: slices.Clone(ids)}
}

// Key is the bottom item; 0 for an empty pile
func (p *ItemPile) Key() ItemInstanceID {
	if len(p.items) == 0 {
		return 0
	}
	return p.items[0]
}

func (p *ItemPile) Len() int    { return len(p.items) }
func (p *ItemPile) Empty() bool { return len(p.items) == 0 }

// Top returns the most recently added item
func (p *ItemPile) Top() (ItemInstanceID, bool) {
	if len(p.items) == 0 {
		return 0, false
	}
	return p.items[len(p.items)-1], true
}

// Items returns the ids bottom first; the slice aliases the pile
func (p *ItemPile) Items() []ItemInstanceID { return p.items }

// At returns the i-th item from the bottom
func (p *ItemPile) At(i int) ItemInstanceID { return p.items[i] }

// Add places id on top
func (p *ItemPile) Add(id ItemInstanceID) {
	if id == 0 {
		panic("world: add of empty item id")
	}
	p.items = append(p.items, id)
}

// Contains reports whether id is in the pile
func (p *ItemPile) Contains(id ItemInstanceID) bool {
	return slices.Contains(p.items, id)
}

// Remove takes id out of the pile, keeping the order of the rest
func (p *ItemPile) Remove(id ItemInstanceID) bool {
	i := slices.Index(p.items, id)
	if i < 0 {
		return false
	}
	p.items = slices.Delete(p.items, i, i+1)
	return true
}

// RemoveIf removes every item matching pred, in bottom-to-top order, and
// passes each removed id to fn
func (p *ItemPile) RemoveIf(pred func(ItemInstanceID) bool, fn func(ItemInstanceID)) int {
	n := 0
	kept := p.items[:0]
	for _, id := range p.items {
		if pred(id) {
			fn(id)
			n++
			continue
		}
		kept = append(kept, id)
	}
	clear(p.items[len(kept):])
	p.items = kept
	return n
}
