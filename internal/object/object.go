// Package object defines the arena entities: the player, orbs, hazards and power-ups.
package object

import (
	"time"

	"github.com/tomz197/orbrunner/internal/draw"
	"github.com/tomz197/orbrunner/internal/input"
	"github.com/tomz197/orbrunner/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Arena is the bounded play area in logical units.
type Arena struct {
	Width  float64
	Height float64
}

// ClampCircle keeps a circle of radius r fully inside the arena.
func (a Arena) ClampCircle(x, y, r float64) (float64, float64) {
	return physics.Clamp(x, r, a.Width-r), physics.Clamp(y, r, a.Height-r)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta      time.Duration
	Input      Input
	Arena      Arena
	SlowFactor float64 // Acceleration multiplier; 1 outside slow motion
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface draw.Surface
}

// Object is a drawable and updatable arena entity.
type Object interface {
	// Update advances the object by one frame. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw draws the object onto ctx.Surface. It must not mutate the object.
	Draw(ctx DrawContext) error
}

// Collides reports whether two circles overlap (distance² < (r1+r2)²).
func Collides(x1, y1, r1, x2, y2, r2 float64) bool {
	return physics.CirclesOverlap(x1, y1, r1, x2, y2, r2)
}
