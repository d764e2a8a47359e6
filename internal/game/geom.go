package game

// Vector2i is an integer (x, y) pair used for positions, sizes and velocities.
type Vector2i struct {
	X, Y int
}

// Add returns the component-wise sum.
func (v Vector2i) Add(o Vector2i) Vector2i {
	return Vector2i{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned box covering [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Right() int { return r.X + r.W }
func (r Rect) Top() int   { return r.Y + r.H }

// Overlaps reports whether r and o share interior area.
// Boxes that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Top() && o.Y < r.Top()
}
