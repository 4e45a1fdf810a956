package world

import "fmt"

// Registry issues and frees instance ids
type Registry interface {
	NewEntity(def EntityDefID) UniqueEntity
	NewItem(def ItemDefID) UniqueItem
	FreeEntity(id EntityInstanceID)
	FreeItem(id ItemInstanceID)
}

// Store is an in-memory Registry that remembers the definition of every live
// instance. Handles issued by a Store keep a reference to it, so the Store must
// stay alive until every handle has been released or closed.
type Store struct {
	nextEntity EntityInstanceID
	nextItem   ItemInstanceID
	entities   map[EntityInstanceID]EntityDefID
	items      map[ItemInstanceID]ItemDefID
}

// NewRegistry creates an empty Store
func NewRegistry() *Store {
	return &Store{
		entities: make(map[EntityInstanceID]EntityDefID),
		items:    make(map[ItemInstanceID]ItemDefID),
	}
}

func (s *Store) NewEntity(def EntityDefID) UniqueEntity {
	s.nextEntity++
	s.entities[s.nextEntity] = def
	return NewUniqueEntity(s, s.nextEntity)
}

func (s *Store) NewItem(def ItemDefID) UniqueItem {
	s.nextItem++
	s.items[s.nextItem] = def
	return NewUniqueItem(s, s.nextItem)
}

// FreeEntity panics on ids that are not live
func (s *Store) FreeEntity(id EntityInstanceID) {
	if _, ok := s.entities[id]; !ok {
		panic(fmt.Sprintf("world: free of unknown entity %v", id))
	}
	delete(s.entities, id)
}

// FreeItem panics on ids that are not live
func (s *Store) FreeItem(id ItemInstanceID) {
	if _, ok := s.items[id]; !ok {
		panic(fmt.Sprintf("world: free of unknown item %v", id))
	}
	delete(s.items, id)
}

// EntityDef returns the definition of a live entity
func (s *Store) EntityDef(id EntityInstanceID) (EntityDefID, bool) {
	d, ok := s.entities[id]
	return d, ok
}

// ItemDef returns the definition of a live item
func (s *Store) ItemDef(id ItemInstanceID) (ItemDefID, bool) {
	d, ok := s.items[id]
	return d, ok
}

// LiveEntities returns the number of issued, unfreed entity ids
func (s *Store) LiveEntities() int { return len(s.entities) }

// LiveItems returns the number of issued, unfreed item ids
func (s *Store) LiveItems() int { return len(s.items) }
