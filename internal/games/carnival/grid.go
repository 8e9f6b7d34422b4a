package carnival

// Direction is one of the four cardinal facings.
// The grid's y axis grows upward; the renderer flips rows for the
// terminal.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit displacement for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Action is the player's committed intent for the current tick.
// Exactly one is active per tick; executors reset it to Idle after
// handling, whether or not they did work.
type Action int

const (
	ActionIdle Action = iota
	ActionMove
	ActionDig
	ActionBuild
)

func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionMove:
		return "move"
	case ActionDig:
		return "dig"
	case ActionBuild:
		return "build"
	default:
		return "unknown"
	}
}
