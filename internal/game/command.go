package game

// Command is a decoded input action delivered by a shell between ticks.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandFire
	CommandQuit // handled by the shell; never changes simulation state
)

func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveRight:
		return "move_right"
	case CommandFire:
		return "fire"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}
