package game

import "fmt"

// Affiliation identifies a side. On a projectile it names whom the
// projectile may damage, not who fired it.
type Affiliation int

const (
	AffiliationPlayer Affiliation = iota
	AffiliationEnemy
)

func (a Affiliation) String() string {
	switch a {
	case AffiliationPlayer:
		return "player"
	case AffiliationEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is the shared shape of everything on the playfield: a position
// (bottom-left corner, y-up) and a fixed, strictly positive size.
type Entity struct {
	Pos  Vector2i
	size Vector2i
}

func newEntity(pos, size Vector2i) Entity {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("game: entity size must be positive, got %v", size))
	}
	return Entity{Pos: pos, size: size}
}

// Size returns the bounding box extents.
func (e *Entity) Size() Vector2i { return e.size }

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() Rect {
	return Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.size.X, H: e.size.Y}
}

// Center returns the midpoint of the bounding box, rounded down.
func (e *Entity) Center() Vector2i {
	return Vector2i{X: e.Pos.X + e.size.X/2, Y: e.Pos.Y + e.size.Y/2}
}
