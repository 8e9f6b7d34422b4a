package carnival

import "github.com/tchaudhry91/carnival/internal/world"

// spawnBoundary builds the perimeter wall ring around the arena.
func (g *Game) spawnBoundary() {
	w := g.cfg.Arena.Width
	h := g.cfg.Arena.Height
	for x := 0; x < w; x++ {
		g.store.Spawn(world.KindWall, world.Position{X: x, Y: 0})
		g.store.Spawn(world.KindWall, world.Position{X: x, Y: h - 1})
	}
	for y := 1; y < h-1; y++ {
		g.store.Spawn(world.KindWall, world.Position{X: 0, Y: y})
		g.store.Spawn(world.KindWall, world.Position{X: w - 1, Y: y})
	}
}

// spawnWall drops a new wall on a uniformly random free cell, using
// rejection sampling: draw a cell, retry if the player or a wall
// already sits there. The attempt cap keeps a nearly full board from
// spinning; when it is exhausted the spawn silently does not happen.
func (g *Game) spawnWall() bool {
	playerPos := g.playerPos()
	for attempt := 0; attempt < g.cfg.Spawner.MaxAttempts; attempt++ {
		pos := world.Position{
			X: g.rng.Intn(g.cfg.Arena.Width),
			Y: g.rng.Intn(g.cfg.Arena.Height),
		}
		if pos == playerPos || g.wallAt(pos) {
			continue
		}
		g.store.Spawn(world.KindWall, pos)
		return true
	}
	return false
}
