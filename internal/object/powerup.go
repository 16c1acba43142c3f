package object

import (
	"github.com/tomz197/orbrunner/internal/draw"
	"github.com/tomz197/orbrunner/internal/physics"
)

// PowerKind identifies a power-up effect.
type PowerKind int

const (
	PowerSlow PowerKind = iota // Slow motion
)

// String returns the power-up name.
func (k PowerKind) String() string {
	switch k {
	case PowerSlow:
		return "slow"
	default:
		return "unknown"
	}
}

// Power-up tuning.
const (
	PowerUpRadius = 9.0
	PowerUpMargin = 30.0
	PowerUpTTL    = 10 * 60 // Frames (10s at 60 FPS)
)

// PowerUp is a temporary pickup that expires after its TTL.
type PowerUp struct {
	X, Y   float64
	Radius float64
	Kind   PowerKind
	TTL    int // Frames remaining
}

// NewPowerUp places a power-up of the given kind anywhere in the arena.
func NewPowerUp(r physics.Rand, arena Arena, kind PowerKind) *PowerUp {
	xlo, xhi := marginRange(arena.Width, PowerUpMargin)
	ylo, yhi := marginRange(arena.Height, PowerUpMargin)
	return &PowerUp{
		X:      physics.RandRange(r, xlo, xhi),
		Y:      physics.RandRange(r, ylo, yhi),
		Radius: PowerUpRadius,
		Kind:   kind,
		TTL:    PowerUpTTL,
	}
}

// Update counts down the TTL. Returns true once expired.
func (p *PowerUp) Update(_ UpdateContext) bool {
	p.TTL--
	return p.Expired()
}

// Expired reports whether the TTL ran out.
func (p *PowerUp) Expired() bool {
	return p.TTL <= 0
}

// Draw renders the power-up as a square.
func (p *PowerUp) Draw(ctx DrawContext) error {
	ink := draw.InkPowerOther
	if p.Kind == PowerSlow {
		ink = draw.InkPowerSlow
	}
	ctx.Surface.FillRect(p.X-p.Radius, p.Y-p.Radius, p.Radius*2, p.Radius*2, ink)
	return nil
}
