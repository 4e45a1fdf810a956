// Package tile defines the per-cell tile record of a level grid
package tile

// Type is the coarse class of a tile
type Type uint16

const (
	TypeEmpty Type = iota
	TypeWall
	TypeFloor
	TypeDoor
	TypeStair
)

var typeNames = [...]string{"empty", "wall", "floor", "door", "stair"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "type?"
}

// Flags is a bit set of tile properties
type Flags uint32

const (
	FlagSolid Flags = 1 << iota
)

// Has reports whether all bits of f are set
func (fl Flags) Has(f Flags) bool { return fl&f == f }

// None reports whether no flag is set
func (fl Flags) None() bool { return fl == 0 }

// Data is opaque per-tile payload owned by game logic
type Data uint64

// DataSet is the full record of one grid cell
type DataSet struct {
	Data   Data
	Flags  Flags
	ID     ID
	Type   Type
	Index  uint16
	Region uint16
}

// Solid reports whether the cell blocks movement and sight
func (d DataSet) Solid() bool { return d.Flags.Has(FlagSolid) }

// Presets for the generator

func EmptySet(region uint16) DataSet {
	return DataSet{ID: Empty, Type: TypeEmpty, Flags: FlagSolid, Region: region}
}

func FloorSet(region uint16) DataSet {
	return DataSet{ID: Floor, Type: TypeFloor, Region: region}
}

// WallSet builds a wall cell; the id is corrected by auto-tiling
func WallSet(region uint16) DataSet {
	return DataSet{ID: Wall(0), Type: TypeWall, Flags: FlagSolid, Region: region}
}

func DoorSet(region uint16) DataSet {
	return DataSet{ID: Door, Type: TypeDoor, Region: region}
}

func StairSet(id ID, region uint16) DataSet {
	return DataSet{ID: id, Type: TypeStair, Region: region}
}
