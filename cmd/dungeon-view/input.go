package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-dungeon/geom"
)

type action int

const (
	actNone action = iota
	actMove
	actWait
	actPickup
	actDrop
	actDescend
	actQuit
)

// vi keys plus the diagonals of roguelike tradition
var moveKeys = map[rune]geom.Vec{
	'h': geom.V(-1, 0),
	'j': geom.V(0, 1),
	'k': geom.V(0, -1),
	'l': geom.V(1, 0),
	'y': geom.V(-1, -1),
	'u': geom.V(1, -1),
	'b': geom.V(-1, 1),
	'n': geom.V(1, 1),
}

var arrowKeys = map[tcell.Key]geom.Vec{
	tcell.KeyLeft:  geom.V(-1, 0),
	tcell.KeyDown:  geom.V(0, 1),
	tcell.KeyUp:    geom.V(0, -1),
	tcell.KeyRight: geom.V(1, 0),
}

// command maps a key press to an action and, for moves, its direction
func command(ev *tcell.EventKey) (action, geom.Vec) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, geom.Vec{}
	case tcell.KeyRune:
	default:
		if v, ok := arrowKeys[ev.Key()]; ok {
			return actMove, v
		}
		return actNone, geom.Vec{}
	}

	r := ev.Rune()
	if v, ok := moveKeys[r]; ok {
		return actMove, v
	}
	switch r {
	case '.':
		return actWait, geom.Vec{}
	case ',', 'g':
		return actPickup, geom.Vec{}
	case 'd':
		return actDrop, geom.Vec{}
	case '>':
		return actDescend, geom.Vec{}
	case 'q':
		return actQuit, geom.Vec{}
	}
	return actNone, geom.Vec{}
}
