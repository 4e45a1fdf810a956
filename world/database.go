package world

// Database answers property lookups used by item merge policies
type Database interface {
	// ItemCapacity is how many items a container of def can hold, 0 for none
	ItemCapacity(def ItemDefID) int
	// StackSize is how many items of def fit in one stack
	StackSize(def ItemDefID) int
}

// ItemProps are the merge-relevant properties of an item definition
type ItemProps struct {
	Name      string
	Capacity  int
	StackSize int
}

// Catalog is a map-backed Database
type Catalog map[ItemDefID]ItemProps

func (c Catalog) ItemCapacity(def ItemDefID) int { return c[def].Capacity }

// StackSize defaults to 1 for unknown or unset definitions
func (c Catalog) StackSize(def ItemDefID) int {
	if n := c[def].StackSize; n > 0 {
		return n
	}
	return 1
}
