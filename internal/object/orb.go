package object

import (
	"math"

	"github.com/tomz197/orbrunner/internal/draw"
	"github.com/tomz197/orbrunner/internal/physics"
)

// Orb tuning.
const (
	OrbRadius            = 7.0
	OrbMargin            = 40.0  // Minimum distance from the arena edge
	OrbMinPlayerDistance = 100.0 // Minimum spawn distance from the player

	maxOrbSpawnAttempts = 64
)

// Orb is a collectible worth score.
type Orb struct {
	X, Y   float64
	Radius float64
	Age    float64 // Seconds alive; drives the pulse only
}

// NewOrb places an orb away from the player at (px, py). Sampling is bounded;
// when no candidate is far enough the farthest one is used.
func NewOrb(r physics.Rand, arena Arena, px, py float64) *Orb {
	xlo, xhi := marginRange(arena.Width, OrbMargin)
	ylo, yhi := marginRange(arena.Height, OrbMargin)

	minDist2 := OrbMinPlayerDistance * OrbMinPlayerDistance
	var bestX, bestY, bestDist2 float64
	for i := 0; i < maxOrbSpawnAttempts; i++ {
		x := physics.RandRange(r, xlo, xhi)
		y := physics.RandRange(r, ylo, yhi)
		d2 := physics.DistanceSquared(x, y, px, py)
		if d2 >= minDist2 {
			return &Orb{X: x, Y: y, Radius: OrbRadius}
		}
		if i == 0 || d2 > bestDist2 {
			bestX, bestY, bestDist2 = x, y, d2
		}
	}
	return &Orb{X: bestX, Y: bestY, Radius: OrbRadius}
}

// Update advances the pulse timer.
func (o *Orb) Update(ctx UpdateContext) bool {
	o.Age += ctx.Delta.Seconds()
	return false
}

// Pulse returns the glow amplitude in [0.2, 1].
func (o *Orb) Pulse() float64 {
	return 0.6 + 0.4*math.Sin(o.Age*6)
}

// Draw renders the orb, dimmed in the low half of its pulse.
func (o *Orb) Draw(ctx DrawContext) error {
	ink := draw.InkOrb
	if o.Pulse() < 0.6 {
		ink = draw.InkOrbDim
	}
	ctx.Surface.FillCircle(o.X, o.Y, o.Radius, ink)
	return nil
}

// marginRange returns [margin, size-margin], collapsing to the center
// when the arena is too small for the margin.
func marginRange(size, margin float64) (float64, float64) {
	if size-margin < margin {
		return size / 2, size / 2
	}
	return margin, size - margin
}
