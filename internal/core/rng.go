package core

import "time"

// RNG is a deterministic pseudo-random number generator (64-bit LCG).
// The engine owns one instance per simulation; reseeding replaces the
// instance rather than mutating any global state.
type RNG struct {
	state uint64
}

// NewRNG creates a generator from the given seed. A negative seed selects
// a time-based seed, giving a different sequence per run.
func NewRNG(seed int64) *RNG {
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// IntBetween returns a random int in [min, max] (both inclusive).
func (r *RNG) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// FloatBetween returns a random float64 in [min, max).
func (r *RNG) FloatBetween(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}

// State exposes the generator state for snapshotting.
func (r *RNG) State() uint64 {
	return r.state
}

// SetState restores the generator state from a snapshot.
func (r *RNG) SetState(state uint64) {
	if state == 0 {
		state = 1
	}
	r.state = state
}
