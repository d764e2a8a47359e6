package game

import "fmt"

// --- Round constants ---

const (
	Rows           = 5  // invader grid rows
	Columns        = 9  // invader grid columns
	Gap            = 10 // px between invaders, and the player's side margin
	CooldownMin    = 1  // seconds, lower bound of a fire cooldown roll
	CooldownMax    = 5  // seconds, upper bound of a fire cooldown roll
	ShipVelocity   = 3  // px per move command
	TicksPerSecond = 60

	StartingLives = 3

	descentStep      = 5  // px an invader drops when it turns
	projectileSpeed  = 3  // px per tick
	invaderHitScore  = 20 // awarded per destroyed invader
	playerHitPenalty = 50 // deducted each time the player is hit

	// Enemy fire gate: roll Intn(fireRollRange), fire when the roll
	// exceeds fireRollThreshold (9 in 40, 22.5%).
	fireRollRange     = 40
	fireRollThreshold = 30

	// Player shots reload four times faster than the enemy fire gate.
	playerCooldownDivisor = 4

	DefaultWidth         = 700
	DefaultHeight        = 800
	DefaultDespawnMargin = 20 // px beyond the playfield before a projectile is dropped
)

var (
	InvaderSize    = Vector2i{X: 40, Y: 40}
	PlayerSize     = Vector2i{X: 50, Y: 30}
	ProjectileSize = Vector2i{X: 4, Y: 10}
)

// InvaderSprites names the sprite for each row tier; tier 0 is the top row.
var InvaderSprites = [Rows]string{
	"invader-5",
	"invader-4",
	"invader-3",
	"invader-2",
	"invader-1",
}

// Config holds the per-round settings fixed at startup.
type Config struct {
	Width  int // playfield width in px
	Height int // playfield height in px
	Seed   int64

	// DoubleCooldownDecrement makes every player move command also drain
	// the player's fire cooldown, on top of the once-per-tick drain. With
	// it on, cooldown recovers twice as fast while the ship is moving.
	DoubleCooldownDecrement bool

	// DespawnMargin is how far past the top or bottom edge a projectile
	// may travel before it is dropped. Negative disables despawning.
	DespawnMargin int
}

// DefaultConfig returns the stock 700x800 round.
func DefaultConfig() Config {
	return Config{
		Width:                   DefaultWidth,
		Height:                  DefaultHeight,
		Seed:                    1,
		DoubleCooldownDecrement: true,
		DespawnMargin:           DefaultDespawnMargin,
	}
}

// Validate rejects viewports too small to hold the grid above the ship.
func (c Config) Validate() error {
	minW := Columns*(InvaderSize.X+Gap) + Gap
	minH := Rows*(InvaderSize.Y+Gap) + 2*Gap + PlayerSize.Y
	if c.Width < minW || c.Height < minH {
		return fmt.Errorf("viewport %dx%d is smaller than %dx%d", c.Width, c.Height, minW, minH)
	}
	return nil
}

// MaxMovement is how far an invader may drift from its anchor before it
// turns and descends.
func (c Config) MaxMovement() int {
	return c.Width / 7
}
