package world

// UniqueEntity owns an entity instance id on behalf of a Registry
// Close returns the id to the registry unless Release consumed it first
// The zero value owns nothing
type UniqueEntity struct {
	id  EntityInstanceID
	reg Registry
}

// NewUniqueEntity binds id to reg; reg must outlive the handle
func NewUniqueEntity(reg Registry, id EntityInstanceID) UniqueEntity {
	if id != 0 && reg == nil {
		panic("world: entity handle without registry")
	}
	return UniqueEntity{id: id, reg: reg}
}

// ID returns the owned id, 0 when empty
func (h *UniqueEntity) ID() EntityInstanceID { return h.id }

// Valid reports whether the handle owns an id
func (h *UniqueEntity) Valid() bool { return h.id != 0 }

// Release transfers ownership to the caller and empties the handle
func (h *UniqueEntity) Release() EntityInstanceID {
	id := h.id
	h.id = 0
	return id
}

// Close frees the owned id, if any
func (h *UniqueEntity) Close() {
	if h.id == 0 {
		return
	}
	h.reg.FreeEntity(h.Release())
}

// UniqueItem owns an item instance id on behalf of a Registry
type UniqueItem struct {
	id  ItemInstanceID
	reg Registry
}

// NewUniqueItem binds id to reg; reg must outlive the handle
func NewUniqueItem(reg Registry, id ItemInstanceID) UniqueItem {
	if id != 0 && reg == nil {
		panic("world: item handle without registry")
	}
	return UniqueItem{id: id, reg: reg}
}

func (h *UniqueItem) ID() ItemInstanceID { return h.id }
func (h *UniqueItem) Valid() bool        { return h.id != 0 }

// Release transfers ownership to the caller and empties the handle
func (h *UniqueItem) Release() ItemInstanceID {
	id := h.id
	h.id = 0
	return id
}

// Close frees the owned id, if any
func (h *UniqueItem) Close() {
	if h.id == 0 {
		return
	}
	h.reg.FreeItem(h.Release())
}
