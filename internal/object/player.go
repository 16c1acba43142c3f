package object

import (
	"github.com/tomz197/orbrunner/internal/draw"
	"github.com/tomz197/orbrunner/internal/physics"
)

// Player tuning. Velocities are in logical units per frame.
const (
	PlayerRadius       = 10.0
	PlayerMaxSpeed     = 2.8  // Per-axis speed cap
	PlayerAccel        = 0.35 // Per-frame acceleration at full speed
	PlayerDamping      = 0.92 // Velocity multiplier applied every frame
	PlayerInvulnFrames = 90   // Recovery window after a hit
	KnockbackSpeed     = 3.0
	KnockbackNudge     = 2.0
)

// Player is the entity steered by the keyboard.
type Player struct {
	X, Y   float64 // Position (center)
	VX, VY float64 // Velocity
	Radius float64
	Invuln int // Frames of invulnerability remaining
}

// NewPlayer creates a player at the standard starting point of the arena.
func NewPlayer(arena Arena) *Player {
	return &Player{
		X:      arena.Width * 0.2,
		Y:      arena.Height * 0.5,
		Radius: PlayerRadius,
	}
}

// Update applies input acceleration, speed cap, movement, friction and
// counts down the invulnerability window.
func (p *Player) Update(ctx UpdateContext) bool {
	ax := axis(ctx.Input.Right, ctx.Input.Left)
	ay := axis(ctx.Input.Down, ctx.Input.Up)

	slow := ctx.SlowFactor
	if slow <= 0 {
		slow = 1
	}
	accel := PlayerAccel * slow

	p.VX = physics.Clamp(p.VX+ax*accel, -PlayerMaxSpeed, PlayerMaxSpeed)
	p.VY = physics.Clamp(p.VY+ay*accel, -PlayerMaxSpeed, PlayerMaxSpeed)

	p.X, p.Y = ctx.Arena.ClampCircle(p.X+p.VX, p.Y+p.VY, p.Radius)

	// Friction applies regardless of input
	p.VX *= PlayerDamping
	p.VY *= PlayerDamping

	if p.Invuln > 0 {
		p.Invuln--
	}
	return false
}

// Hit starts the invulnerability window and reports whether damage applies.
// Hits while invulnerable are ignored.
func (p *Player) Hit() bool {
	if p.Invuln > 0 {
		return false
	}
	p.Invuln = PlayerInvulnFrames
	return true
}

// Knockback pushes the player away from a hazard moving with hazardVX.
// vertical is the sign (-1 or 1) of the vertical nudge.
func (p *Player) Knockback(hazardVX, vertical float64) {
	p.VX = physics.Clamp(-physics.Sign(hazardVX)*KnockbackSpeed, -PlayerMaxSpeed, PlayerMaxSpeed)
	p.VY = physics.Clamp(p.VY+vertical*KnockbackNudge, -PlayerMaxSpeed, PlayerMaxSpeed)
}

// Invulnerable reports whether hits are currently ignored.
func (p *Player) Invulnerable() bool {
	return p.Invuln > 0
}

// Draw renders the player, highlighted while invulnerable.
func (p *Player) Draw(ctx DrawContext) error {
	ink := draw.InkPlayer
	if p.Invuln > 0 {
		ink = draw.InkPlayerInvuln
	}
	ctx.Surface.FillCircle(p.X, p.Y, p.Radius, ink)
	return nil
}

// axis converts an opposing key pair to -1, 0 or 1.
func axis(positive, negative bool) float64 {
	var v float64
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
