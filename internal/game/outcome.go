package game

// Outcome is why a round ended. The end check itself does not separate
// wins from losses; the outcome is reported alongside for shells and reports.
type Outcome int

const (
	OutcomeNone     Outcome = iota // round still running
	OutcomeBreached                // an invader reached the bottom
	OutcomeDefeated                // the player ran out of lives
	OutcomeCleared                 // every invader was destroyed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeBreached:
		return "breached"
	case OutcomeDefeated:
		return "defeated"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Won reports whether the player cleared the grid.
func (o Outcome) Won() bool {
	return o == OutcomeCleared
}

// Headline is the end-screen banner text.
func (o Outcome) Headline() string {
	switch o {
	case OutcomeCleared:
		return "WAVE CLEARED"
	case OutcomeBreached:
		return "INVADERS LANDED"
	case OutcomeDefeated:
		return "GAME OVER"
	default:
		return ""
	}
}
