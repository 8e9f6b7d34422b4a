// Package world provides an explicit indexed entity store for grid games.
// Entities are plain records keyed by stable integer handles; callers get
// typed iteration by kind and position-equality lookup, nothing more.
package world

// Position identifies a tile on the arena grid.
// Equality is exact integer comparison.
type Position struct {
	X, Y int
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Handle uniquely identifies an entity in the store.
type Handle uint64

// NoHandle is the zero value; no valid entity has this handle.
const NoHandle Handle = 0

// Kind classifies entities. The store itself attaches no behavior to
// kinds; games filter iteration and lookups by them.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindWall
)

// Entity is a stored record: a kind and a grid position.
type Entity struct {
	Handle Handle
	Kind   Kind
	Pos    Position
}

// Store owns all entity records. Handles stay valid until Despawn;
// despawned handles are never reused within a store's lifetime.
type Store struct {
	next     Handle
	entities map[Handle]*Entity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		next:     1,
		entities: make(map[Handle]*Entity),
	}
}

// Spawn creates a new entity of the given kind at pos and returns its
// handle. The store does not reject overlapping positions; occupancy
// rules belong to the callers that check before spawning.
func (s *Store) Spawn(kind Kind, pos Position) Handle {
	h := s.next
	s.next++
	s.entities[h] = &Entity{Handle: h, Kind: kind, Pos: pos}
	return h
}

// Despawn removes the entity. Unknown handles are ignored.
func (s *Store) Despawn(h Handle) {
	delete(s.entities, h)
}

// Alive reports whether the handle refers to a live entity.
func (s *Store) Alive(h Handle) bool {
	_, ok := s.entities[h]
	return ok
}

// Get returns a copy of the entity record for h.
func (s *Store) Get(h Handle) (Entity, bool) {
	e, ok := s.entities[h]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// SetPos moves the entity to pos. Unknown handles are ignored.
func (s *Store) SetPos(h Handle, pos Position) {
	if e, ok := s.entities[h]; ok {
		e.Pos = pos
	}
}

// Each calls fn for every live entity of the given kind. Iteration
// order is unspecified. Returning false from fn stops the walk early.
// fn must not spawn or despawn entities.
func (s *Store) Each(kind Kind, fn func(Entity) bool) {
	for _, e := range s.entities {
		if e.Kind != kind {
			continue
		}
		if !fn(*e) {
			return
		}
	}
}

// At returns the handle of an entity of the given kind at pos, or
// (NoHandle, false) if the cell is free of that kind. Games maintain at
// most one entity per kind per cell, so the result is unambiguous.
func (s *Store) At(kind Kind, pos Position) (Handle, bool) {
	found := NoHandle
	s.Each(kind, func(e Entity) bool {
		if e.Pos == pos {
			found = e.Handle
			return false
		}
		return true
	})
	return found, found != NoHandle
}

// Count returns the number of live entities of the given kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	s.Each(kind, func(Entity) bool {
		n++
		return true
	})
	return n
}

// Positions returns the positions of all live entities of the given
// kind, in unspecified order.
func (s *Store) Positions(kind Kind) []Position {
	var out []Position
	s.Each(kind, func(e Entity) bool {
		out = append(out, e.Pos)
		return true
	})
	return out
}
