package carnival

// validateAction checks the provisional action against the target cell
// (one step ahead of the facing) and demotes it to Idle when it cannot
// succeed. An Idle action is never upgraded.
//
// Dig is handled conservatively: it defaults to Idle and is
// re-promoted only when there is actually a wall to dig, so a use
// press into empty space wastes the tick instead of reaching the
// executor.
func (g *Game) validateAction() {
	switch g.action {
	case ActionMove:
		if g.wallAt(g.targetCell()) {
			g.action = ActionIdle
		}
	case ActionDig:
		g.action = ActionIdle
		if g.wallAt(g.targetCell()) {
			g.action = ActionDig
		}
	case ActionBuild:
		if g.wallAt(g.targetCell()) {
			g.action = ActionIdle
		}
	}
}
