package carnival

import (
	"sort"

	"github.com/tchaudhry91/carnival/internal/world"
)

// Snapshot is a value copy of the observable game state, with wall
// positions in a canonical order. Two games that received the same
// seed and inputs produce equal snapshots.
type Snapshot struct {
	Tick       uint64
	Player     world.Position
	Facing     Direction
	Carrying   bool
	RocksDug   int
	WallsBuilt int
	Walls      []world.Position
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	walls := g.store.Positions(world.KindWall)
	sort.Slice(walls, func(i, j int) bool {
		if walls[i].Y != walls[j].Y {
			return walls[i].Y < walls[j].Y
		}
		return walls[i].X < walls[j].X
	})

	return Snapshot{
		Tick:       g.tick,
		Player:     g.playerPos(),
		Facing:     g.facing,
		Carrying:   g.carrying,
		RocksDug:   g.rocksDug,
		WallsBuilt: g.wallsBuilt,
		Walls:      walls,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Player != o.Player || s.Facing != o.Facing ||
		s.Carrying != o.Carrying || s.RocksDug != o.RocksDug ||
		s.WallsBuilt != o.WallsBuilt || len(s.Walls) != len(o.Walls) {
		return false
	}
	for i := range s.Walls {
		if s.Walls[i] != o.Walls[i] {
			return false
		}
	}
	return true
}
