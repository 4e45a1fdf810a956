// Package world holds the identifiers and ownership handles that cross into a
// level. Payload (names, stats) stays with the registry; a level only stores
// instance ids and positions.
package world

import "fmt"

// EntityDefID names an entity definition
type EntityDefID uint32

// ItemDefID names an item definition
type ItemDefID uint32

// EntityInstanceID names one live entity; 0 is never issued
type EntityInstanceID uint32

// ItemInstanceID names one live item; 0 is never issued
type ItemInstanceID uint32

func (id EntityInstanceID) String() string { return fmt.Sprintf("e%d", uint32(id)) }
func (id ItemInstanceID) String() string   { return fmt.Sprintf("i%d", uint32(id)) }
