package game

import "math/rand"

//go:generate go tool mockgen -destination=./mocks/random_mock.go -package=mocks . Random

// Random serves every stochastic decision in a round: the enemy fire roll,
// the choice of shooter and cooldown lengths.
type Random interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// NewRandom returns a seeded source. *rand.Rand satisfies Random.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
}

// uniformInt returns a uniform int in [lo, hi].
func uniformInt(rng Random, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
