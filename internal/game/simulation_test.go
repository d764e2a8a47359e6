package game

import (
	"testing"

	"github.com/Garsondee/Invaders/internal/game/mocks"
	"go.uber.org/mock/gomock"
)

const cooldownRoll = CooldownMax - CooldownMin + 1

// newMockSim builds a default round whose draws come from a gomock source.
func newMockSim(t *testing.T, opts ...SimOption) (*TestSim, *mocks.MockRandom) {
	t.Helper()
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandom(ctrl)
	ts := NewTestSim(append([]SimOption{WithRandom(rng)}, opts...)...)
	return ts, rng
}

func TestNewSimulationLayout(t *testing.T) {
	s := NewSimulation(DefaultConfig(), NewRandom(1))

	if s.InvaderCount() != Rows*Columns {
		t.Fatalf("expected %d invaders, got %d", Rows*Columns, s.InvaderCount())
	}
	invaders := s.Invaders()
	first, last := invaders[0], invaders[len(invaders)-1]
	if first.Pos != (Vector2i{X: 130, Y: 760}) || first.Tier() != 0 {
		t.Fatalf("expected top-left invader at (130,760) tier 0, got %v tier %d", first.Pos, first.Tier())
	}
	if last.Pos != (Vector2i{X: 530, Y: 560}) || last.Tier() != Rows-1 {
		t.Fatalf("expected bottom-right invader at (530,560) tier %d, got %v tier %d", Rows-1, last.Pos, last.Tier())
	}
	// Grid is centred: equal margins left and right.
	if left, right := first.Pos.X, DefaultWidth-last.Bounds().Right(); left != right {
		t.Fatalf("expected centred grid, margins %d vs %d", left, right)
	}
	if top := first.Bounds().Top(); top != DefaultHeight {
		t.Fatalf("expected grid flush with top edge, top=%d", top)
	}

	p := s.Player()
	if p.Pos != (Vector2i{X: 325, Y: 20}) || p.Lives() != 3 || p.Cooldown() != 0 {
		t.Fatalf("unexpected player start pos=%v lives=%d cooldown=%d", p.Pos, p.Lives(), p.Cooldown())
	}
	if s.Score() != 0 || s.Ended() || s.ProjectileCount() != 0 {
		t.Fatalf("unexpected fresh round state score=%d ended=%v projectiles=%d", s.Score(), s.Ended(), s.ProjectileCount())
	}
	if s.RoundID() == "" {
		t.Fatal("expected a round ID")
	}
}

func TestScenarioA_QuietTick(t *testing.T) {
	ts, rng := newMockSim(t)
	rng.EXPECT().Intn(fireRollRange).Return(0)

	before := ts.Sim.Invaders()
	startX := make([]int, len(before))
	startY := make([]int, len(before))
	for i, inv := range before {
		startX[i], startY[i] = inv.Pos.X, inv.Pos.Y
	}

	ts.RunTicks(1)

	s := ts.Sim
	if s.InvaderCount() != 45 {
		t.Fatalf("expected 45 invaders, got %d", s.InvaderCount())
	}
	for i, inv := range s.Invaders() {
		dx := inv.Pos.X - startX[i]
		if (dx != 1 && dx != -1) || inv.Pos.Y != startY[i] {
			t.Fatalf("invader %d moved by (%d,%d), expected (±1,0)", i, dx, inv.Pos.Y-startY[i])
		}
	}
	if s.ProjectileCount() != 0 || s.Player().Lives() != 3 || s.Score() != 0 || s.Ended() {
		t.Fatalf("unexpected state projectiles=%d lives=%d score=%d ended=%v",
			s.ProjectileCount(), s.Player().Lives(), s.Score(), s.Ended())
	}
}

func TestScenarioB_EnemyFire(t *testing.T) {
	ts, rng := newMockSim(t)
	gomock.InOrder(
		rng.EXPECT().Intn(fireRollRange).Return(fireRollRange-1),
		rng.EXPECT().Intn(Rows*Columns).Return(0),
		rng.EXPECT().Intn(cooldownRoll).Return(2),
	)
	center := ts.Sim.Invaders()[0].Center()

	ts.RunTicks(1)

	ps := ts.Sim.Projectiles()
	if len(ps) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(ps))
	}
	p := ps[0]
	if p.Target() != AffiliationPlayer || p.Velocity() != (Vector2i{Y: -3}) {
		t.Fatalf("expected player-targeting shot moving (0,-3), got %s %v", p.Target(), p.Velocity())
	}
	// Fired from the invader's post-move center (+1,0), then moved once (0,-3).
	want := Vector2i{X: center.X + 1, Y: center.Y - 3}
	if p.Pos != want {
		t.Fatalf("expected projectile at %v, got %v", want, p.Pos)
	}
	if ts.Sim.EnemyCooldown() != 3*TicksPerSecond {
		t.Fatalf("expected enemy cooldown %d, got %d", 3*TicksPerSecond, ts.Sim.EnemyCooldown())
	}
	if !ts.SimLog.HasEntry("fire", "enemy_shot", "") {
		t.Fatal("expected an enemy_shot log entry")
	}
}

func TestEnemyFireGatedByCooldown(t *testing.T) {
	ts, rng := newMockSim(t)
	gomock.InOrder(
		rng.EXPECT().Intn(fireRollRange).Return(31),
		rng.EXPECT().Intn(Rows*Columns).Return(44),
		rng.EXPECT().Intn(cooldownRoll).Return(0),
	)
	ts.RunTicks(1)
	if ts.Sim.EnemyCooldown() != TicksPerSecond {
		t.Fatalf("expected cooldown %d, got %d", TicksPerSecond, ts.Sim.EnemyCooldown())
	}

	// No draws at all while the cooldown runs down.
	ts.RunTicks(TicksPerSecond - 1)
	if ts.Sim.EnemyCooldown() != 1 {
		t.Fatalf("expected cooldown 1, got %d", ts.Sim.EnemyCooldown())
	}

	// Cooldown hits zero this tick, so the roll happens again.
	rng.EXPECT().Intn(fireRollRange).Return(30)
	ts.RunTicks(1)
	if ts.Sim.EnemyCooldown() != 0 {
		t.Fatalf("expected cooldown 0, got %d", ts.Sim.EnemyCooldown())
	}
	if got := ts.Sim.Stats().EnemyShots; got != 1 {
		t.Fatalf("expected 1 enemy shot (roll of 30 does not fire), got %d", got)
	}
}

func TestScenarioC_PlayerHit(t *testing.T) {
	s := NewSimulation(DefaultConfig(), nil)
	ts, rng := newMockSim(t, WithProjectile(s.Player().Center(), AffiliationPlayer, Vector2i{Y: -3}))
	rng.EXPECT().Intn(fireRollRange).Return(0).AnyTimes()

	ts.RunTicks(1)

	if ts.Sim.Player().Lives() != 2 {
		t.Fatalf("expected lives=2, got %d", ts.Sim.Player().Lives())
	}
	if ts.Sim.Score() != -50 {
		t.Fatalf("expected score=-50, got %d", ts.Sim.Score())
	}
	if ts.Sim.ProjectileCount() != 0 {
		t.Fatalf("expected no projectiles, got %d", ts.Sim.ProjectileCount())
	}
	// HUD lags one tick behind.
	if hud := ts.Sim.HUD(); hud != (HUD{Lives: 3, Score: 0}) {
		t.Fatalf("expected HUD from before the hit {3 0}, got %+v", hud)
	}
	ts.RunTicks(1)
	if hud := ts.Sim.HUD(); hud != (HUD{Lives: 2, Score: -50}) {
		t.Fatalf("expected HUD {2 -50}, got %+v", hud)
	}
}

func TestScenarioD_BreachEndsRound(t *testing.T) {
	ts, _ := newMockSim(t, WithInvaderCount(1))
	ts.Sim.invaders[0].Pos.Y = -1

	ts.RunTicks(1)

	if !ts.Sim.Ended() {
		t.Fatal("expected round to end")
	}
	if ts.Sim.Outcome() != OutcomeBreached {
		t.Fatalf("expected outcome breached, got %s", ts.Sim.Outcome())
	}
	if ts.Sim.Invaders()[0].Pos.Y != -1 {
		t.Fatal("expected no movement on the ending tick")
	}
	if !ts.SimLog.HasEntry("round", "end", "breached") {
		t.Fatal("expected a round end log entry")
	}
}

func TestEndedRoundIsFrozen(t *testing.T) {
	ts, _ := newMockSim(t, WithInvaderCount(0))
	ts.Sim.Tick()
	if !ts.Sim.Ended() || ts.Sim.Outcome() != OutcomeCleared {
		t.Fatalf("expected cleared round, got ended=%v outcome=%s", ts.Sim.Ended(), ts.Sim.Outcome())
	}
	tick := ts.Sim.TickCount()
	x := ts.Sim.Player().Pos.X

	ts.Sim.Tick()
	if ts.Sim.Apply(CommandMoveLeft) {
		t.Fatal("expected commands to be refused after the round ended")
	}
	if ts.Sim.TickCount() != tick || ts.Sim.Player().Pos.X != x {
		t.Fatal("expected no state change after the round ended")
	}
	if n := ts.SimLog.CountCategory("round", "end"); n != 1 {
		t.Fatalf("expected exactly one round end entry, got %d", n)
	}
}

func TestCheckEndOnLivesExhausted(t *testing.T) {
	s := NewSimulation(DefaultConfig(), NewRandom(3))
	if s.CheckEnd() {
		t.Fatal("fresh round should not be over")
	}
	s.Player().AddLives(-3)
	if !s.CheckEnd() {
		t.Fatal("expected round over with no lives")
	}
	s.Tick()
	if s.Outcome() != OutcomeDefeated {
		t.Fatalf("expected defeated, got %s", s.Outcome())
	}
}

func TestInvaderHitScoring(t *testing.T) {
	s := NewSimulation(DefaultConfig(), nil)
	target := s.Invaders()[10].Center()
	ts, rng := newMockSim(t, WithProjectile(target, AffiliationEnemy, Vector2i{Y: 3}))
	rng.EXPECT().Intn(fireRollRange).Return(0)

	ts.RunTicks(1)

	if ts.Sim.Score() != 20 {
		t.Fatalf("expected score=20, got %d", ts.Sim.Score())
	}
	if ts.Sim.InvaderCount() != 44 || ts.Sim.ProjectileCount() != 0 {
		t.Fatalf("expected 44 invaders and 0 projectiles, got %d and %d", ts.Sim.InvaderCount(), ts.Sim.ProjectileCount())
	}
	for _, inv := range ts.Sim.Invaders() {
		if inv.ID() == 10 {
			t.Fatal("expected invader 10 to be removed")
		}
	}
	if e, ok := ts.SimLog.LastOf("hit", "invader_destroyed"); !ok || e.Actor != "I10" {
		t.Fatalf("expected invader_destroyed for I10, got %+v", e)
	}
}

func TestProjectileDestroysAtMostOneInvader(t *testing.T) {
	s := NewSimulation(DefaultConfig(), NewRandom(1))
	s.invaders = []*Invader{
		NewInvader(0, Vector2i{X: 100, Y: 100}, 0, 100),
		NewInvader(1, Vector2i{X: 110, Y: 100}, 0, 100),
	}
	s.AddProjectile(NewProjectile(Vector2i{X: 115, Y: 110}, AffiliationEnemy, Vector2i{Y: 3}))
	s.AddProjectile(NewProjectile(Vector2i{X: 400, Y: 400}, AffiliationEnemy, Vector2i{Y: 3}))

	s.resolveCollisions()

	if len(s.invaders) != 1 || s.invaders[0].ID() != 1 {
		t.Fatalf("expected only the first overlapping invader destroyed, left %d", len(s.invaders))
	}
	if len(s.projectiles) != 1 || s.projectiles[0].Pos.X != 400 {
		t.Fatalf("expected the missing projectile to survive, got %d projectiles", len(s.projectiles))
	}
	if s.Score() != 20 {
		t.Fatalf("expected score 20, got %d", s.Score())
	}
}

func TestFriendlyFireIsImpossible(t *testing.T) {
	s := NewSimulation(DefaultConfig(), NewRandom(1))
	// An invader's own shot overlaps it but targets the player.
	inv := s.invaders[0]
	s.AddProjectile(inv.Shoot())
	// A player shot sitting on the ship targets invaders.
	s.AddProjectile(NewProjectile(s.player.Center(), AffiliationEnemy, Vector2i{Y: 3}))

	s.resolveCollisions()

	if len(s.projectiles) != 2 || len(s.invaders) != Rows*Columns || s.player.Lives() != 3 {
		t.Fatalf("expected no hits, got projectiles=%d invaders=%d lives=%d",
			len(s.projectiles), len(s.invaders), s.player.Lives())
	}
}

func TestEdgeTouchingProjectileDoesNotHitPlayer(t *testing.T) {
	s := NewSimulation(DefaultConfig(), NewRandom(1))
	top := s.player.Bounds().Top()
	s.AddProjectile(NewProjectile(Vector2i{X: s.player.Pos.X + 10, Y: top}, AffiliationPlayer, Vector2i{}))

	s.resolveCollisions()

	if s.player.Lives() != 3 || len(s.projectiles) != 1 {
		t.Fatalf("expected edge contact to miss, got lives=%d projectiles=%d", s.player.Lives(), len(s.projectiles))
	}
}

func TestGenerateSourceGuardsEmptyGrid(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandom(ctrl) // any draw fails the test
	s := NewSimulation(DefaultConfig(), rng)
	s.invaders = nil
	if src := s.generateSource(); src != nil {
		t.Fatalf("expected no source from an empty grid, got %v", src.Label())
	}
}

func TestPlayerFireThroughApply(t *testing.T) {
	ts, rng := newMockSim(t)
	rng.EXPECT().Intn(cooldownRoll).Return(1) // 2s → 30 ticks

	if !ts.Sim.Apply(CommandFire) {
		t.Fatal("expected fire to be handled")
	}
	ts.Sim.Apply(CommandFire)

	st := ts.Sim.Stats()
	if st.PlayerShots != 1 || st.BlockedShots != 1 {
		t.Fatalf("expected 1 shot and 1 blocked, got %d and %d", st.PlayerShots, st.BlockedShots)
	}
	if ts.Sim.Player().Cooldown() != 30 {
		t.Fatalf("expected cooldown 30, got %d", ts.Sim.Player().Cooldown())
	}
	if ts.Sim.Apply(CommandQuit) {
		t.Fatal("expected quit to be left to the shell")
	}
}

func TestDoubleCooldownDecrement(t *testing.T) {
	for _, tc := range []struct {
		name   string
		double bool
		want   int
	}{
		{"moving drains twice", true, 13},
		{"moving drains once", false, 14},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ts, rng := newMockSim(t, WithDoubleCooldownDecrement(tc.double))
			rng.EXPECT().Intn(cooldownRoll).Return(0) // 15 ticks
			rng.EXPECT().Intn(fireRollRange).Return(0).AnyTimes()

			ts.Sim.Apply(CommandFire)
			ts.Queue(CommandMoveRight)
			ts.RunTicks(1)

			if got := ts.Sim.Player().Cooldown(); got != tc.want {
				t.Fatalf("expected cooldown %d, got %d", tc.want, got)
			}
		})
	}
}

func TestProjectilesDespawnPastMargin(t *testing.T) {
	ts, rng := newMockSim(t, WithProjectile(Vector2i{X: 20, Y: 795}, AffiliationEnemy, Vector2i{Y: 3}))
	rng.EXPECT().Intn(fireRollRange).Return(0).AnyTimes()

	ts.RunTicks(8)
	if ts.Sim.ProjectileCount() != 1 {
		t.Fatalf("expected projectile still in play at y=819, got %d", ts.Sim.ProjectileCount())
	}
	ts.RunTicks(1)
	if ts.Sim.ProjectileCount() != 0 {
		t.Fatalf("expected projectile despawned past margin, got %d", ts.Sim.ProjectileCount())
	}
	if ts.Sim.Stats().Despawned != 1 {
		t.Fatalf("expected 1 despawn, got %d", ts.Sim.Stats().Despawned)
	}
}

func TestDespawnDisabled(t *testing.T) {
	ts, rng := newMockSim(t,
		WithDespawnMargin(-1),
		WithProjectile(Vector2i{X: 20, Y: 795}, AffiliationEnemy, Vector2i{Y: 3}),
		WithProjectile(Vector2i{X: 680, Y: 5}, AffiliationPlayer, Vector2i{Y: -3}),
	)
	rng.EXPECT().Intn(fireRollRange).Return(0).AnyTimes()

	ts.RunTicks(100)
	if ts.Sim.ProjectileCount() != 2 {
		t.Fatalf("expected both projectiles kept, got %d", ts.Sim.ProjectileCount())
	}
}

func TestFrameMirrorsState(t *testing.T) {
	ts, rng := newMockSim(t, WithProjectile(Vector2i{X: 20, Y: 300}, AffiliationEnemy, Vector2i{Y: 3}))
	rng.EXPECT().Intn(fireRollRange).Return(0)
	ts.RunTicks(1)

	f := ts.Sim.Frame()
	if len(f.Invaders) != 45 || len(f.Projectiles) != 1 {
		t.Fatalf("expected 45 invaders and 1 projectile, got %d and %d", len(f.Invaders), len(f.Projectiles))
	}
	if f.Invaders[0].Sprite != InvaderSprites[0] || f.Invaders[44].Tier != 4 {
		t.Fatalf("unexpected sprite tiers %q/%d", f.Invaders[0].Sprite, f.Invaders[44].Tier)
	}
	if f.Player.Size != PlayerSize || f.Lives != 3 || f.Score != 0 || f.Ended || f.Tick != 1 {
		t.Fatalf("unexpected frame %+v", f)
	}
	if f.Projectiles[0].Target != AffiliationEnemy || f.Projectiles[0].Pos != (Vector2i{X: 20, Y: 303}) {
		t.Fatalf("unexpected projectile view %+v", f.Projectiles[0])
	}
}
