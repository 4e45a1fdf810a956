package tile

import (
	"fmt"
	"strconv"
)

// ID names a concrete tile; values are the djb2 hash of the tile name
type ID uint32

// Hash returns the 32-bit djb2 hash of s
func Hash(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}

// Known tile ids
var (
	Invalid   ID = 0
	Empty        = ID(Hash("empty"))
	Floor        = ID(Hash("floor"))
	Door         = ID(Hash("door"))
	StairUp      = ID(Hash("stair_up"))
	StairDown    = ID(Hash("stair_down"))
)

// walls[m] is the wall variant for adjacency mask m
var walls [16]ID

var names = map[ID]string{}

func init() {
	register := func(name string) ID {
		id := ID(Hash(name))
		if prev, ok := names[id]; ok && prev != name {
			panic(fmt.Sprintf("tile: hash collision %q/%q", prev, name))
		}
		names[id] = name
		return id
	}
	register("empty")
	register("floor")
	register("door")
	register("stair_up")
	register("stair_down")
	for m := range walls {
		walls[m] = register(wallName(uint8(m)))
	}
}

// Adjacency mask bits; the wall name spells them N, E, S, W left to right
const (
	MaskN uint8 = 1 << 3
	MaskE uint8 = 1 << 2
	MaskS uint8 = 1 << 1
	MaskW uint8 = 1 << 0
)

// cardinalMask is indexed like geom.Cardinals
var cardinalMask = [4]uint8{MaskN, MaskE, MaskS, MaskW}

// CardinalMask returns the mask bit for geom.Cardinals[i]
func CardinalMask(i int) uint8 { return cardinalMask[i] }

func wallName(m uint8) string {
	b := []byte("wall_0000")
	for i, bit := range cardinalMask {
		if m&bit != 0 {
			b[5+i] = '1'
		}
	}
	return string(b)
}

// Wall returns the wall variant for a 4-bit cardinal adjacency mask
func Wall(mask uint8) ID {
	return walls[mask&0xF]
}

// WallMask returns the adjacency mask of a wall id
func WallMask(id ID) (uint8, bool) {
	for m, w := range walls {
		if w == id {
			return uint8(m), true
		}
	}
	return 0, false
}

// IsWall reports whether id is one of the sixteen wall variants
func (id ID) IsWall() bool {
	_, ok := WallMask(id)
	return ok
}

// ParseID resolves a tile name
func ParseID(name string) (ID, bool) {
	id := ID(Hash(name))
	if _, ok := names[id]; !ok {
		return Invalid, false
	}
	return id, true
}

func (id ID) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	if id == Invalid {
		return "invalid"
	}
	return "tile#" + strconv.FormatUint(uint64(id), 16)
}
