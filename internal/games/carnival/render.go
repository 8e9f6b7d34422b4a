package carnival

import (
	"fmt"

	"github.com/tchaudhry91/carnival/internal/core"
	"github.com/tchaudhry91/carnival/internal/world"
)

// Render draws the HUD and the arena into the screen buffer.
// World coordinates have y growing upward, so rows are flipped when
// mapped to the screen.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	if screen.Width() != g.screenW || screen.Height() != g.screenH {
		g.screenW = screen.Width()
		g.screenH = screen.Height()
		g.layoutScreen()
	}

	g.renderHUD(screen)

	if g.tooSmall {
		g.renderOverlay(screen, "Window too small", "Resize the terminal to continue")
		return
	}

	g.renderArena(screen)

	if g.paused {
		g.renderOverlay(screen, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderHUD(screen *core.Screen) {
	hand := "empty"
	if g.carrying {
		hand = "rock"
	}
	status := fmt.Sprintf(" %s | Rocks dug: %d | Walls built: %d | Hands: %s",
		g.Title(), g.rocksDug, g.wallsBuilt, hand)
	screen.DrawTextColored(0, 0, status, core.ColorBrightCyan)
	screen.DrawHLine(0, 1, screen.Width(), '─')
}

func (g *Game) renderArena(screen *core.Screen) {
	arenaH := g.cfg.Arena.Height

	g.store.Each(world.KindWall, func(e world.Entity) bool {
		sx := g.mapOffsetX + e.Pos.X
		sy := g.mapOffsetY + (arenaH - 1 - e.Pos.Y)
		screen.SetCell(sx, sy, '#', core.ColorRed)
		return true
	})

	pos := g.playerPos()
	sx := g.mapOffsetX + pos.X
	sy := g.mapOffsetY + (arenaH - 1 - pos.Y)
	screen.SetCell(sx, sy, g.playerGlyph(), core.ColorBrightWhite)
}

// playerGlyph returns the player rune for the current facing.
func (g *Game) playerGlyph() rune {
	switch g.facing {
	case DirUp:
		return '^'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	default:
		return '>'
	}
}

// renderOverlay draws a centered two-line message box over the arena.
func (g *Game) renderOverlay(screen *core.Screen, title, hint string) {
	boxW := core.Max(len(title), len(hint)) + 6
	boxH := 5
	box := core.NewRect((screen.Width()-boxW)/2, (screen.Height()-boxH)/2, boxW, boxH)

	screen.Fill(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	screen.DrawBox(box)
	screen.DrawTextCentered(box.Y+1, title)
	screen.DrawTextCentered(box.Y+3, hint)
}
