// Package carnival implements the Carnival game: a lone digger on a
// walled grid arena. Walls can be dug up and rebuilt one cell away in
// the facing direction; the arena slowly fills with randomly spawned
// walls.
//
// Each tick runs a fixed pipeline over the arena state:
//
//	input capture -> validation -> move -> dig -> build
//
// Every stage finishes before the next starts, so a wall removed by
// the dig stage is gone when the build stage looks at the board. The
// periodic wall spawner runs on its own coarser cadence outside the
// pipeline.
package carnival

import (
	"math/rand"

	"github.com/tchaudhry91/carnival/internal/config"
	"github.com/tchaudhry91/carnival/internal/core"
	"github.com/tchaudhry91/carnival/internal/registry"
	"github.com/tchaudhry91/carnival/internal/world"
)

// Mode selects the spawn pressure variant.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeFrenzy Mode = "frenzy"
)

// In frenzy mode the spawn interval is divided by this factor.
const frenzySpeedup = 4

// Game implements the Carnival game.
type Game struct {
	mode     Mode
	cfg      config.CarnivalConfig
	rng      *rand.Rand
	tick     uint64
	tickRate int

	// World state
	store    *world.Store
	player   world.Handle
	facing   Direction
	action   Action
	carrying bool

	// Spawner schedule (in ticks; 0 disables)
	spawnEveryTicks int
	spawnTicker     int

	// Session counters
	rocksDug   int
	wallsBuilt int

	// Presentation state
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	paused     bool
	tooSmall   bool
}

// Package-level knobs set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a normal-mode Carnival game.
func New() *Game {
	return &Game{mode: ModeNormal}
}

// NewFrenzy creates a frenzy-mode Carnival game (walls spawn 4x faster).
func NewFrenzy() *Game {
	return &Game{mode: ModeFrenzy}
}

func init() {
	registry.Register("carnival", func() registry.Game {
		return New()
	})
	registry.Register("carnival_frenzy", func() registry.Game {
		return NewFrenzy()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFrenzy {
		return "carnival_frenzy"
	}
	return "carnival"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFrenzy {
		return "Carnival (Frenzy)"
	}
	return "Carnival"
}

// Reset initializes/restarts the game: empty board, perimeter ring,
// player at the configured start cell facing up, idle, empty-handed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadCarnival(configPath)
	if err != nil {
		gameCfg = config.DefaultCarnivalConfig()
	}
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyCarnivalPreset(&gameCfg, preset)
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.rocksDug = 0
	g.wallsBuilt = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	interval := gameCfg.Spawner.IntervalSeconds
	if g.mode == ModeFrenzy {
		interval /= frenzySpeedup
	}
	if interval > 0 {
		g.spawnEveryTicks = core.Max(1, int(interval*float64(g.tickRate)))
	} else {
		g.spawnEveryTicks = 0
	}
	g.spawnTicker = 0

	g.layoutScreen()

	g.store = world.NewStore()
	g.spawnBoundary()
	start := world.Position{X: gameCfg.Player.StartX, Y: gameCfg.Player.StartY}
	g.player = g.store.Spawn(world.KindPlayer, start)
	g.facing = DirUp
	g.action = ActionIdle
	g.carrying = false
}

// layoutScreen centers the arena under the HUD and flags undersized
// windows.
func (g *Game) layoutScreen() {
	requiredW := g.cfg.Arena.Width + 2
	requiredH := g.cfg.Arena.Height + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW - g.cfg.Arena.Width) / 2
	g.mapOffsetY = g.hudHeight
}

// Step advances the game by one tick: the full action-resolution
// pipeline, then the spawner ticker.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.captureInput(in)
	g.validateAction()
	g.execMove()
	g.execDig()
	g.execBuild()

	if g.spawnEveryTicks > 0 {
		g.spawnTicker++
		if g.spawnTicker >= g.spawnEveryTicks {
			g.spawnTicker = 0
			g.spawnWall()
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state. Carnival is a sandbox: there
// is no game over, and the score counts rocks dug this session.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.rocksDug,
		GameOver: false,
		Paused:   g.paused,
	}
}

// WallsBuilt returns the number of walls placed this session.
// The platform reads it when banking a finished session.
func (g *Game) WallsBuilt() int {
	return g.wallsBuilt
}

// playerPos returns the player's current cell.
func (g *Game) playerPos() world.Position {
	e, _ := g.store.Get(g.player)
	return e.Pos
}

// targetCell returns the cell one step ahead of the player's facing.
func (g *Game) targetCell() world.Position {
	dx, dy := g.facing.Delta()
	return g.playerPos().Add(dx, dy)
}

// wallAt reports whether a wall occupies pos.
func (g *Game) wallAt(pos world.Position) bool {
	_, ok := g.store.At(world.KindWall, pos)
	return ok
}
