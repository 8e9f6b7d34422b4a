package carnival

import "github.com/tchaudhry91/carnival/internal/world"

// The three executors run in a fixed order each tick: move, dig,
// build. Each one fires only on its own action kind, then resets the
// action to Idle unconditionally so nothing leaks into the next tick.
// The validator has already demoted impossible actions, so the
// executors only re-check what can change between stages.

// execMove steps the player one cell in the facing direction.
func (g *Game) execMove() {
	if g.action != ActionMove {
		return
	}
	g.store.SetPos(g.player, g.targetCell())
	g.action = ActionIdle
}

// execDig removes the wall ahead of the player and picks up its rock.
// The wall may have vanished since validation, so a miss is a no-op.
func (g *Game) execDig() {
	if g.action != ActionDig {
		return
	}
	if h, ok := g.store.At(world.KindWall, g.targetCell()); ok {
		g.store.Despawn(h)
		g.carrying = true
		g.rocksDug++
	}
	g.action = ActionIdle
}

// execBuild places the carried rock as a wall in the cell ahead.
func (g *Game) execBuild() {
	if g.action != ActionBuild {
		return
	}
	target := g.targetCell()
	if !g.wallAt(target) {
		g.store.Spawn(world.KindWall, target)
		g.carrying = false
		g.wallsBuilt++
	}
	g.action = ActionIdle
}
