package object

import (
	"github.com/tomz197/orbrunner/internal/draw"
	"github.com/tomz197/orbrunner/internal/physics"
)

// Hazard tuning.
const (
	HazardMinRadius     = 8.0
	HazardMaxRadius     = 14.0
	HazardSpawnSpread   = 120.0 // Extra distance beyond the right edge
	HazardBaseSpeed     = 1.5
	HazardSpeedPerLevel = 0.15
	HazardSpeedSpread   = 1.3
	HazardMaxDrift      = 0.5
)

// Hazard drifts leftward across the arena and costs a life on contact.
type Hazard struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Ink    draw.Ink
}

// NewHazard spawns a hazard beyond the right edge. Its speed scales with level.
func NewHazard(r physics.Rand, arena Arena, level int) *Hazard {
	radius := physics.RandRange(r, HazardMinRadius, HazardMaxRadius)
	x := arena.Width + radius + physics.RandRange(r, 0, HazardSpawnSpread)
	y := physics.RandRange(r, radius, arena.Height-radius)
	base := HazardBaseSpeed + float64(level)*HazardSpeedPerLevel
	return &Hazard{
		X:      x,
		Y:      y,
		VX:     -physics.RandRange(r, base, base+HazardSpeedSpread),
		VY:     physics.RandRange(r, -HazardMaxDrift, HazardMaxDrift),
		Radius: radius,
		Ink:    draw.InkHazard,
	}
}

// Update moves the hazard. The vertical position is clamped, never bounced.
// Returns true once the hazard has left the arena on the left.
func (h *Hazard) Update(ctx UpdateContext) bool {
	h.X += h.VX
	h.Y = physics.Clamp(h.Y+h.VY, h.Radius, ctx.Arena.Height-h.Radius)
	return h.Offscreen()
}

// Offscreen reports whether the hazard is fully past the left edge.
func (h *Hazard) Offscreen() bool {
	return h.X < -h.Radius
}

// Draw renders the hazard in its color tag.
func (h *Hazard) Draw(ctx DrawContext) error {
	ctx.Surface.FillCircle(h.X, h.Y, h.Radius, h.Ink)
	return nil
}
