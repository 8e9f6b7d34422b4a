package carnival

import "github.com/tchaudhry91/carnival/internal/core"

// captureInput turns the tick's input frame into a facing and a
// provisional action.
//
// Direction checks run in a fixed order (down, up, right, left) and
// later matches overwrite earlier ones, so when several directions are
// held in one frame the last checked wins. A use press then overrides
// any movement: it commits a dig when empty-handed and a build when
// carrying.
func (g *Game) captureInput(in core.InputFrame) {
	if in.Has(core.ActionDown) {
		g.facing = DirDown
		g.action = ActionMove
	}
	if in.Has(core.ActionUp) {
		g.facing = DirUp
		g.action = ActionMove
	}
	if in.Has(core.ActionRight) {
		g.facing = DirRight
		g.action = ActionMove
	}
	if in.Has(core.ActionLeft) {
		g.facing = DirLeft
		g.action = ActionMove
	}

	if in.Has(core.ActionUse) {
		if g.carrying {
			g.action = ActionBuild
		} else {
			g.action = ActionDig
		}
	}
}
