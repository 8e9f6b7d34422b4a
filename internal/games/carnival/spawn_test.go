package carnival

import (
	"testing"

	"github.com/tchaudhry91/carnival/internal/world"
)

const smallArenaYAML = "arena:\n  width: 5\n  height: 5\n" +
	"player:\n  start_x: 2\n  start_y: 2\n" +
	"spawner:\n  interval_seconds: 1.0\n  max_attempts: 4096\n"

func TestBoundaryRing(t *testing.T) {
	g := newTestGame(t, 7)
	w := g.cfg.Arena.Width
	h := g.cfg.Arena.Height

	want := 2*w + 2*(h-2)
	if got := g.store.Count(world.KindWall); got != want {
		t.Fatalf("Wall count = %d, expected %d", got, want)
	}

	g.store.Each(world.KindWall, func(e world.Entity) bool {
		p := e.Pos
		onRing := p.X == 0 || p.X == w-1 || p.Y == 0 || p.Y == h-1
		if !onRing {
			t.Errorf("Initial wall at %+v is not on the perimeter", p)
		}
		return true
	})
}

func TestSpawnWallAvoidsOccupiedCells(t *testing.T) {
	g := newTestGameWith(t, smallArenaYAML, 3)
	player := g.playerPos()

	// 3x3 interior minus the player leaves 8 free cells.
	for i := 0; i < 8; i++ {
		if !g.spawnWall() {
			t.Fatalf("Spawn %d failed with free cells remaining", i)
		}
	}

	seen := make(map[world.Position]bool)
	g.store.Each(world.KindWall, func(e world.Entity) bool {
		if e.Pos == player {
			t.Errorf("Wall spawned on the player at %+v", player)
		}
		if seen[e.Pos] {
			t.Errorf("Two walls share cell %+v", e.Pos)
		}
		seen[e.Pos] = true
		return true
	})
}

func TestSpawnWallOnSaturatedBoard(t *testing.T) {
	g := newTestGameWith(t, smallArenaYAML, 3)
	for i := 0; i < 8; i++ {
		g.spawnWall()
	}
	walls := g.store.Count(world.KindWall)

	if g.spawnWall() {
		t.Error("Spawn on a saturated board should report failure")
	}
	if got := g.store.Count(world.KindWall); got != walls {
		t.Errorf("Wall count = %d, saturated spawn must not add walls", got)
	}
}

func TestSpawnerCadence(t *testing.T) {
	g := newTestGame(t, 5)
	if g.spawnEveryTicks != testTickRate {
		t.Fatalf("spawnEveryTicks = %d, expected %d for a 1s interval", g.spawnEveryTicks, testTickRate)
	}

	start := g.store.Count(world.KindWall)
	for i := 0; i < testTickRate-1; i++ {
		g.Step(frame())
	}
	if got := g.store.Count(world.KindWall); got != start {
		t.Errorf("Wall count = %d before the interval elapsed, expected %d", got, start)
	}

	g.Step(frame())
	if got := g.store.Count(world.KindWall); got != start+1 {
		t.Errorf("Wall count = %d after the interval, expected %d", got, start+1)
	}
}

func TestSpawnerDisabledWithZeroInterval(t *testing.T) {
	yaml := "arena:\n  width: 20\n  height: 20\n" +
		"player:\n  start_x: 1\n  start_y: 1\n" +
		"spawner:\n  interval_seconds: 0\n  max_attempts: 256\n"
	g := newTestGameWith(t, yaml, 5)

	start := g.store.Count(world.KindWall)
	for i := 0; i < 5*testTickRate; i++ {
		g.Step(frame())
	}
	if got := g.store.Count(world.KindWall); got != start {
		t.Errorf("Wall count = %d with spawner off, expected %d", got, start)
	}
}

func TestFrenzySpawnsFaster(t *testing.T) {
	path := writeConfig(t, defaultTestYAML)
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := NewFrenzy()
	g.Reset(coreConfig(11))

	if g.spawnEveryTicks != testTickRate/4 {
		t.Errorf("Frenzy spawnEveryTicks = %d, expected %d", g.spawnEveryTicks, testTickRate/4)
	}
}
