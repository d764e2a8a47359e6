package game

import "testing"

func TestInvaderTurnsAndDescendsPastDriftBound(t *testing.T) {
	const maxMove = 100
	inv := NewInvader(0, Vector2i{X: 100, Y: 500}, 0, maxMove)

	for i := 0; i < maxMove+1; i++ {
		inv.Move()
	}
	if inv.Pos != (Vector2i{X: 201, Y: 500}) {
		t.Fatalf("expected (201,500) after %d moves, got %v", maxMove+1, inv.Pos)
	}
	if inv.Velocity().X != 1 {
		t.Fatalf("expected velocity +1 before crossing, got %d", inv.Velocity().X)
	}

	// Drift is now 101 > 100: turn, drop and step back in one move.
	inv.Move()
	if inv.Velocity() != (Vector2i{X: -1}) {
		t.Fatalf("expected velocity (-1,0) after turn, got %v", inv.Velocity())
	}
	if inv.Pos != (Vector2i{X: 200, Y: 495}) {
		t.Fatalf("expected (200,495) on the turn tick, got %v", inv.Pos)
	}

	// Next turn happens on the far side at base-101.
	for i := 0; i < 2*maxMove+1; i++ {
		inv.Move()
		if inv.Pos.Y != 495 {
			t.Fatalf("unexpected descent mid-sweep at x=%d", inv.Pos.X)
		}
	}
	inv.Move()
	if inv.Velocity().X != 1 || inv.Pos != (Vector2i{X: 0, Y: 490}) {
		t.Fatalf("expected second turn to (0,490) heading right, got %v vel=%v", inv.Pos, inv.Velocity())
	}
}

func TestInvadersDescendIndependently(t *testing.T) {
	a := NewInvader(0, Vector2i{X: 100, Y: 500}, 0, 100)
	b := NewInvader(1, Vector2i{X: 300, Y: 500}, 0, 100)
	// b starts mid-sweep relative to its own anchor.
	for i := 0; i < 50; i++ {
		b.Move()
	}
	for i := 0; i < 52; i++ {
		a.Move()
		b.Move()
	}
	if a.Pos.Y != 500 {
		t.Fatalf("expected a still at y=500, got %d", a.Pos.Y)
	}
	if b.Pos.Y != 495 {
		t.Fatalf("expected b to have descended alone to y=495, got %d", b.Pos.Y)
	}
}

func TestInvaderShootTargetsPlayer(t *testing.T) {
	inv := NewInvader(3, Vector2i{X: 130, Y: 760}, 0, 100)
	p := inv.Shoot()
	if p.Target() != AffiliationPlayer {
		t.Fatalf("expected invader shot to target player, got %s", p.Target())
	}
	if p.Velocity() != (Vector2i{Y: -3}) {
		t.Fatalf("expected velocity (0,-3), got %v", p.Velocity())
	}
	if p.Pos != (Vector2i{X: 150, Y: 780}) {
		t.Fatalf("expected shot at invader center (150,780), got %v", p.Pos)
	}
	if inv.Type() != AffiliationEnemy {
		t.Fatalf("expected invader type enemy, got %s", inv.Type())
	}
	if inv.Label() != "I03" || inv.Sprite() != "invader-5" {
		t.Fatalf("unexpected label/sprite %q/%q", inv.Label(), inv.Sprite())
	}
}

func TestProjectileMovesWithoutBounds(t *testing.T) {
	p := NewProjectile(Vector2i{X: 5, Y: 2}, AffiliationPlayer, Vector2i{Y: -3})
	p.Move()
	p.Move()
	if p.Pos != (Vector2i{X: 5, Y: -4}) {
		t.Fatalf("expected (5,-4), got %v", p.Pos)
	}
}
