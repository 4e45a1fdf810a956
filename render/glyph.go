package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-dungeon/level"
	"github.com/lixenwraith/vi-dungeon/tile"
)

// wallGlyphs is indexed by the NESW neighbour mask
var wallGlyphs = [16]rune{
	'■', // isolated
	'─', // W
	'│', // S
	'┐', // S W
	'─', // E
	'─', // E W
	'┌', // E S
	'┬', // E S W
	'│', // N
	'┘', // N W
	'│', // N S
	'┤', // N S W
	'└', // N E
	'┴', // N E W
	'├', // N E S
	'┼', // all
}

// TileGlyph returns the character drawn for a cell
func TileGlyph(v level.TileView) rune {
	if m, ok := tile.WallMask(v.ID); ok {
		return wallGlyphs[m&0xF]
	}
	switch v.ID {
	case tile.Floor:
		return '.'
	case tile.Door:
		return '+'
	case tile.StairUp:
		return '<'
	case tile.StairDown:
		return '>'
	}
	return ' '
}

// TileStyle returns the style drawn for a cell
func TileStyle(v level.TileView) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch v.Type {
	case tile.TypeWall:
		return base.Foreground(RgbWall)
	case tile.TypeDoor:
		return base.Foreground(RgbDoor)
	case tile.TypeStair:
		return base.Foreground(RgbStair).Bold(true)
	case tile.TypeFloor:
		return base.Foreground(RgbFloor)
	}
	return base
}

// PileGlyph returns the character and style for an item pile of n items
func PileGlyph(n int) (rune, tcell.Style) {
	base := tcell.StyleDefault.Background(RgbBackground)
	if n > 1 {
		return '&', base.Foreground(RgbItemPile)
	}
	return '*', base.Foreground(RgbItem)
}
