// Package render draws a level onto a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/level"
	"github.com/lixenwraith/vi-dungeon/world"
)

// EntityStyler picks how an entity is drawn
type EntityStyler func(id world.EntityInstanceID) (rune, tcell.Style)

// DefaultEntityStyle draws every entity as a monster
func DefaultEntityStyle(world.EntityInstanceID) (rune, tcell.Style) {
	return 'm', tcell.StyleDefault.Background(RgbBackground).Foreground(RgbMonster)
}

// TerminalRenderer draws the visible window of a level plus one status row
type TerminalRenderer struct {
	screen tcell.Screen
	entity EntityStyler
}

// NewTerminalRenderer creates a renderer; a nil styler uses DefaultEntityStyle
func NewTerminalRenderer(screen tcell.Screen, entity EntityStyler) *TerminalRenderer {
	if entity == nil {
		entity = DefaultEntityStyle
	}
	return &TerminalRenderer{screen: screen, entity: entity}
}

// Viewport returns the level window of at most w x h cells around focus,
// clamped so it never scrolls past the level edge
func Viewport(bounds geom.Rect, w, h int, focus geom.Point) geom.Rect {
	x0, x1 := span(int(bounds.X0), int(bounds.X1), w, int(focus.X))
	y0, y1 := span(int(bounds.Y0), int(bounds.Y1), h, int(focus.Y))
	return geom.Rect{X0: geom.OffsetX(x0), Y0: geom.OffsetY(y0), X1: geom.OffsetX(x1), Y1: geom.OffsetY(y1)}
}

func span(lo, hi, size, focus int) (int, int) {
	if size <= 0 {
		return lo, lo
	}
	if hi-lo <= size {
		return lo, hi
	}
	start := min(max(focus-size/2, lo), hi-size)
	return start, start + size
}

// RenderFrame draws l centred on focus and shows the screen
func (r *TerminalRenderer) RenderFrame(l level.Level, focus geom.Point, status string) {
	width, height := r.screen.Size()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	view := Viewport(l.Bounds(), width, height-1, focus)
	origin := view.TopLeft()
	put := func(p geom.Point, ch rune, style tcell.Style) {
		d := p.Sub(origin)
		r.screen.SetContent(int(d.X), int(d.Y), ch, nil, style)
	}

	view.ForEach(func(p geom.Point) bool {
		v := l.At(p)
		put(p, TileGlyph(v), TileStyle(v))
		return true
	})
	l.ForEachPile(func(pile *world.ItemPile, p geom.Point) {
		if view.Contains(p) {
			ch, style := PileGlyph(pile.Len())
			put(p, ch, style)
		}
	})
	l.ForEachEntity(func(id world.EntityInstanceID, p geom.Point) {
		if view.Contains(p) {
			ch, style := r.entity(id)
			put(p, ch, style)
		}
	})

	r.drawStatusBar(width, height-1, status)
	r.screen.Show()
}

func (r *TerminalRenderer) drawStatusBar(width, y int, text string) {
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBar)
	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
