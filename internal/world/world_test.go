package world

import "testing"

func TestSpawnAndGet(t *testing.T) {
	s := NewStore()

	h := s.Spawn(KindWall, Position{X: 3, Y: 4})
	if h == NoHandle {
		t.Fatal("Spawn returned NoHandle")
	}

	e, ok := s.Get(h)
	if !ok {
		t.Fatal("Get failed for live entity")
	}
	if e.Kind != KindWall {
		t.Errorf("Kind = %d, expected KindWall", e.Kind)
	}
	if e.Pos != (Position{X: 3, Y: 4}) {
		t.Errorf("Pos = %+v, expected (3, 4)", e.Pos)
	}
}

func TestHandlesAreUnique(t *testing.T) {
	s := NewStore()

	seen := make(map[Handle]bool)
	for i := 0; i < 100; i++ {
		h := s.Spawn(KindWall, Position{X: i, Y: 0})
		if seen[h] {
			t.Fatalf("Handle %d issued twice", h)
		}
		seen[h] = true
	}

	// Despawned handles must not come back
	var first Handle
	for h := range seen {
		first = h
		break
	}
	s.Despawn(first)
	h := s.Spawn(KindWall, Position{X: 0, Y: 1})
	if h == first {
		t.Error("Despawned handle was reused")
	}
}

func TestDespawn(t *testing.T) {
	s := NewStore()

	h := s.Spawn(KindWall, Position{X: 1, Y: 1})
	if !s.Alive(h) {
		t.Fatal("Entity should be alive after Spawn")
	}

	s.Despawn(h)
	if s.Alive(h) {
		t.Error("Entity should be dead after Despawn")
	}
	if _, ok := s.Get(h); ok {
		t.Error("Get should fail after Despawn")
	}

	// Double despawn and unknown handles are silent
	s.Despawn(h)
	s.Despawn(Handle(9999))
}

func TestSetPos(t *testing.T) {
	s := NewStore()

	h := s.Spawn(KindPlayer, Position{X: 1, Y: 1})
	s.SetPos(h, Position{X: 2, Y: 1})

	e, _ := s.Get(h)
	if e.Pos != (Position{X: 2, Y: 1}) {
		t.Errorf("Pos = %+v after SetPos, expected (2, 1)", e.Pos)
	}

	// Unknown handle is a no-op
	s.SetPos(Handle(9999), Position{X: 0, Y: 0})
}

func TestEachFiltersByKind(t *testing.T) {
	s := NewStore()

	s.Spawn(KindPlayer, Position{X: 0, Y: 0})
	s.Spawn(KindWall, Position{X: 1, Y: 0})
	s.Spawn(KindWall, Position{X: 2, Y: 0})

	walls := 0
	s.Each(KindWall, func(e Entity) bool {
		if e.Kind != KindWall {
			t.Errorf("Each(KindWall) yielded kind %d", e.Kind)
		}
		walls++
		return true
	})
	if walls != 2 {
		t.Errorf("Each(KindWall) visited %d entities, expected 2", walls)
	}

	if got := s.Count(KindPlayer); got != 1 {
		t.Errorf("Count(KindPlayer) = %d, expected 1", got)
	}
}

func TestEachEarlyStop(t *testing.T) {
	s := NewStore()
	for i := 0; i < 10; i++ {
		s.Spawn(KindWall, Position{X: i, Y: 0})
	}

	visited := 0
	s.Each(KindWall, func(Entity) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("Each visited %d entities after early stop, expected 3", visited)
	}
}

func TestAt(t *testing.T) {
	s := NewStore()

	want := s.Spawn(KindWall, Position{X: 5, Y: 6})
	s.Spawn(KindWall, Position{X: 5, Y: 7})
	s.Spawn(KindPlayer, Position{X: 5, Y: 6}) // different kind, same cell

	h, ok := s.At(KindWall, Position{X: 5, Y: 6})
	if !ok || h != want {
		t.Errorf("At(KindWall, (5,6)) = (%d, %v), expected (%d, true)", h, ok, want)
	}

	if _, ok := s.At(KindWall, Position{X: 0, Y: 0}); ok {
		t.Error("At should report a free cell as unoccupied")
	}

	s.Despawn(want)
	if _, ok := s.At(KindWall, Position{X: 5, Y: 6}); ok {
		t.Error("At should not find despawned entities")
	}
}

func TestPositions(t *testing.T) {
	s := NewStore()
	s.Spawn(KindWall, Position{X: 1, Y: 2})
	s.Spawn(KindWall, Position{X: 3, Y: 4})

	got := s.Positions(KindWall)
	if len(got) != 2 {
		t.Fatalf("Positions returned %d entries, expected 2", len(got))
	}
	found := map[Position]bool{}
	for _, p := range got {
		found[p] = true
	}
	if !found[Position{X: 1, Y: 2}] || !found[Position{X: 3, Y: 4}] {
		t.Errorf("Positions = %v, missing expected entries", got)
	}
}
