// Package physics provides collision detection, clamping and random helpers.
package physics

// Rand is the subset of *math/rand.Rand the game needs.
// Tests substitute a deterministic source.
type Rand interface {
	Float64() float64
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RandRange returns a uniformly distributed value in [min, max).
func RandRange(r Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// RandSign returns -1 or 1 with equal probability.
func RandSign(r Rand) float64 {
	if r.Float64() > 0.5 {
		return 1
	}
	return -1
}

// Sign returns -1, 0 or 1 depending on the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap.
// Touching circles (distance exactly r1+r2) do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}
