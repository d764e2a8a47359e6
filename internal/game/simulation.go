package game

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Simulation owns every live entity of a round and advances them one
// fixed step at a time. It is not safe for concurrent use: one goroutine
// applies commands and calls Tick.
type Simulation struct {
	cfg     Config
	rng     Random
	roundID string

	invaders    []*Invader
	projectiles []*Projectile
	player      *Player

	cooldown int // global enemy fire cooldown, in ticks
	score    int
	tick     int
	ended    bool
	outcome  Outcome

	hud   HUD
	stats RoundStats
	log   *SimLog
}

// NewSimulation builds a fresh round: a centred Rows×Columns grid of
// invaders and the player ship at the bottom centre. A nil rng is
// replaced by a source seeded from cfg.Seed.
func NewSimulation(cfg Config, rng Random) *Simulation {
	return newSimulation(cfg, rng, NewSimLog(false))
}

func newSimulation(cfg Config, rng Random, log *SimLog) *Simulation {
	if rng == nil {
		rng = NewRandom(cfg.Seed)
	}
	s := &Simulation{
		cfg:     cfg,
		rng:     rng,
		roundID: uuid.NewString(),
		log:     log,
	}
	s.initInvaders()
	s.player = NewPlayer(
		Vector2i{X: (cfg.Width - PlayerSize.X) / 2, Y: 2 * Gap},
		cfg.Width, rng, cfg.DoubleCooldownDecrement,
	)
	s.hud = HUD{Lives: s.player.Lives(), Score: s.score}
	s.log.Add(0, "--", "round", "start",
		fmt.Sprintf("round=%s invaders=%d seed=%d", s.roundID, len(s.invaders), cfg.Seed), 0)
	return s
}

// initInvaders lays the grid out centred horizontally and flush with the
// top edge. Row 0 is the top row and gets sprite tier 0.
func (s *Simulation) initInvaders() {
	stepX := InvaderSize.X + Gap
	stepY := InvaderSize.Y + Gap
	startX := s.cfg.Width/2 - (Columns-1)*stepX/2 - InvaderSize.X/2
	startY := s.cfg.Height - (Rows*stepY - Gap)
	maxMove := s.cfg.MaxMovement()

	s.invaders = make([]*Invader, 0, Rows*Columns)
	for row := 0; row < Rows; row++ {
		y := startY + (Rows-1-row)*stepY
		for col := 0; col < Columns; col++ {
			pos := Vector2i{X: startX + col*stepX, Y: y}
			s.invaders = append(s.invaders, NewInvader(len(s.invaders), pos, row, maxMove))
		}
	}
}

// --- Queries ---

func (s *Simulation) Config() Config       { return s.cfg }
func (s *Simulation) RoundID() string      { return s.roundID }
func (s *Simulation) Player() *Player      { return s.player }
func (s *Simulation) Score() int           { return s.score }
func (s *Simulation) TickCount() int       { return s.tick }
func (s *Simulation) Ended() bool          { return s.ended }
func (s *Simulation) Outcome() Outcome     { return s.outcome }
func (s *Simulation) Stats() RoundStats    { return s.stats }
func (s *Simulation) Log() *SimLog         { return s.log }
func (s *Simulation) EnemyCooldown() int   { return s.cooldown }
func (s *Simulation) InvaderCount() int    { return len(s.invaders) }
func (s *Simulation) ProjectileCount() int { return len(s.projectiles) }

// Invaders returns the live invaders. The slice is a copy; the invaders are not.
func (s *Simulation) Invaders() []*Invader {
	return slices.Clone(s.invaders)
}

// Projectiles returns the live projectiles. The slice is a copy.
func (s *Simulation) Projectiles() []*Projectile {
	return slices.Clone(s.projectiles)
}

// HUD returns the lives/score readout captured at the start of the most
// recent tick, i.e. the state as it stood at the end of the tick before.
func (s *Simulation) HUD() HUD {
	return s.hud
}

// AddProjectile puts p into play.
func (s *Simulation) AddProjectile(p *Projectile) {
	s.projectiles = append(s.projectiles, p)
}

// --- Input ---

// Apply performs a decoded input command immediately. It reports whether
// the command was one the simulation handles; Quit and anything sent
// after the round has ended are left to the shell.
func (s *Simulation) Apply(cmd Command) bool {
	if s.ended {
		return false
	}
	switch cmd {
	case CommandMoveLeft:
		s.player.MoveLeft()
	case CommandMoveRight:
		s.player.MoveRight()
	case CommandFire:
		s.firePlayer()
	default:
		return false
	}
	return true
}

func (s *Simulation) firePlayer() {
	p := s.player.Shoot()
	if p == nil {
		s.stats.BlockedShots++
		s.log.Add(s.tick, "P", "fire", "player_blocked",
			fmt.Sprintf("cooldown=%d", s.player.Cooldown()), float64(s.player.Cooldown()))
		return
	}
	s.AddProjectile(p)
	s.stats.PlayerShots++
	s.log.Add(s.tick, "P", "fire", "player_shot",
		fmt.Sprintf("at (%d,%d) cooldown=%d", p.Pos.X, p.Pos.Y, s.player.Cooldown()), float64(s.player.Cooldown()))
}

// --- Tick ---

// Tick advances the round by one fixed step. Once the round has ended
// it does nothing.
func (s *Simulation) Tick() {
	if s.ended {
		return
	}

	// 1. HUD: read before anything moves this tick.
	s.hud = HUD{Lives: s.player.Lives(), Score: s.score}

	// 2. END CHECK
	if s.CheckEnd() {
		s.ended = true
		s.outcome = s.endReason()
		s.log.Add(s.tick, "--", "round", "end",
			fmt.Sprintf("%s score=%d lives=%d", s.outcome, s.score, s.player.Lives()), float64(s.score))
		return
	}
	s.tick++

	// 3+4. COOLDOWNS
	if s.player.Cooldown() > 0 {
		s.player.AddCooldown(-1)
	}
	if s.cooldown > 0 {
		s.cooldown--
	}

	// 5. INVADERS
	for _, inv := range s.invaders {
		inv.Move()
	}

	// 6. ENEMY FIRE
	if s.shouldShoot() {
		if src := s.generateSource(); src != nil {
			s.generateAttack(src)
			s.cooldown = TicksPerSecond * uniformInt(s.rng, CooldownMin, CooldownMax)
		}
	}

	// 7. PROJECTILES
	for _, p := range s.projectiles {
		p.Move()
	}
	s.despawnProjectiles()

	// 8. COLLISIONS
	s.resolveCollisions()

	s.log.AddVerbose(s.tick, "P", "player", "state",
		fmt.Sprintf("x=%d cooldown=%d", s.player.Pos.X, s.player.Cooldown()), float64(s.player.Pos.X))
}

// CheckEnd reports whether the round is over: an invader has dropped
// below the bottom edge, the player has no lives left, or no invaders remain.
func (s *Simulation) CheckEnd() bool {
	return s.endReason() != OutcomeNone
}

func (s *Simulation) endReason() Outcome {
	for _, inv := range s.invaders {
		if inv.Pos.Y < 0 {
			return OutcomeBreached
		}
	}
	if s.player.Lives() == 0 {
		return OutcomeDefeated
	}
	if len(s.invaders) == 0 {
		return OutcomeCleared
	}
	return OutcomeNone
}

func (s *Simulation) shouldShoot() bool {
	return s.cooldown == 0 && s.rng.Intn(fireRollRange) > fireRollThreshold
}

// generateSource picks the invader that fires. It returns nil when the
// grid is empty.
func (s *Simulation) generateSource() *Invader {
	if len(s.invaders) == 0 {
		return nil
	}
	return s.invaders[s.rng.Intn(len(s.invaders))]
}

func (s *Simulation) generateAttack(src *Invader) {
	p := src.Shoot()
	s.AddProjectile(p)
	s.stats.EnemyShots++
	s.log.Add(s.tick, src.Label(), "fire", "enemy_shot",
		fmt.Sprintf("at (%d,%d)", p.Pos.X, p.Pos.Y), 0)
}

// despawnProjectiles drops projectiles that have travelled more than
// DespawnMargin past the top or bottom edge.
func (s *Simulation) despawnProjectiles() {
	margin := s.cfg.DespawnMargin
	if margin < 0 {
		return
	}
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.Pos.Y > s.cfg.Height+margin || p.Bounds().Top() < -margin {
			s.stats.Despawned++
			s.log.Add(s.tick, "--", "projectile", "despawn",
				fmt.Sprintf("%s-bound at (%d,%d)", p.Target(), p.Pos.X, p.Pos.Y), 0)
			continue
		}
		kept = append(kept, p)
	}
	clear(s.projectiles[len(kept):])
	s.projectiles = kept
}

// resolveCollisions tests every projectile, in order, against the player
// and then against the invaders. A projectile that hits is dropped; it
// destroys at most one invader. Removal is deferred so the scan never
// skips an entry.
func (s *Simulation) resolveCollisions() {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		hit := false
		box := p.Bounds()

		if p.Target() == s.player.Type() && box.Overlaps(s.player.Bounds()) {
			s.player.AddLives(-1)
			s.score -= playerHitPenalty
			s.stats.PlayerHits++
			hit = true
			s.log.Add(s.tick, "P", "hit", "player_hit",
				fmt.Sprintf("lives=%d score=%d", s.player.Lives(), s.score), float64(s.score))
		}

		for i, inv := range s.invaders {
			if p.Target() != inv.Type() || !box.Overlaps(inv.Bounds()) {
				continue
			}
			s.invaders = slices.Delete(s.invaders, i, i+1)
			s.score += invaderHitScore
			s.stats.InvadersDestroyed++
			hit = true
			s.log.Add(s.tick, inv.Label(), "hit", "invader_destroyed",
				fmt.Sprintf("score=%d remaining=%d", s.score, len(s.invaders)), float64(s.score))
			break
		}

		if !hit {
			kept = append(kept, p)
		}
	}
	clear(s.projectiles[len(kept):])
	s.projectiles = kept
}
