package game

// RoundStats counts what happened during a round.
type RoundStats struct {
	EnemyShots        int // projectiles fired by invaders
	PlayerShots       int // projectiles fired by the player
	BlockedShots      int // fire commands rejected by the cooldown
	InvadersDestroyed int
	PlayerHits        int
	Despawned         int // projectiles dropped after leaving the playfield
}

// Accuracy is the fraction of player shots that destroyed an invader.
func (rs RoundStats) Accuracy() float64 {
	if rs.PlayerShots == 0 {
		return 0
	}
	return float64(rs.InvadersDestroyed) / float64(rs.PlayerShots)
}

// HUD is the lives/score readout shown to the player.
type HUD struct {
	Lives int
	Score int
}
