// Package bot steers the player automatically. The headless snapshot tool
// uses it to play deterministic games without a keyboard.
package bot

import (
	"math"

	"github.com/tomz197/orbrunner/internal/input"
	"github.com/tomz197/orbrunner/internal/loop"
	"github.com/tomz197/orbrunner/internal/object"
	"github.com/tomz197/orbrunner/internal/physics"
)

// Autopilot tuning, in logical units.
const (
	DangerRadius = 90.0 // Hazards closer than this (edge to edge) are dodged
	WallBuffer   = 40.0 // Dodges never head into a wall closer than this
	Deadzone     = 4.0  // Ignore target offsets smaller than this
)

// Autopilot decides movement keys from the world state.
type Autopilot struct{}

// Decide returns the movement for the next frame. Priorities, highest first:
// dodge hazards heading for the player, grab the nearest orb or power-up,
// return to the starting area.
func (Autopilot) Decide(w *loop.World) input.Input {
	p := w.Player

	if h := threat(w); h != nil {
		return dodge(w, h)
	}
	if x, y, ok := nearestPickup(w); ok {
		return toward(p.X, p.Y, x, y)
	}
	return toward(p.X, p.Y, w.Arena.Width*0.2, w.Arena.Height*0.5)
}

// threat returns the closest hazard inside DangerRadius that has not yet
// passed the player.
func threat(w *loop.World) *object.Hazard {
	p := w.Player
	var best *object.Hazard
	bestDist := math.MaxFloat64
	for _, h := range w.Hazards {
		if h.X+h.Radius < p.X-p.Radius && h.VX <= 0 {
			continue
		}
		reach := DangerRadius + p.Radius + h.Radius
		d := physics.DistanceSquared(p.X, p.Y, h.X, h.Y)
		if d < reach*reach && d < bestDist {
			best, bestDist = h, d
		}
	}
	return best
}

// dodge moves vertically away from h, switching direction near a wall.
func dodge(w *loop.World, h *object.Hazard) input.Input {
	p := w.Player
	up := h.Y >= p.Y
	if up && p.Y-p.Radius < WallBuffer {
		up = false
	} else if !up && p.Y+p.Radius > w.Arena.Height-WallBuffer {
		up = true
	}
	return input.Input{Up: up, Down: !up, Left: h.X > p.X && p.X-p.Radius > WallBuffer}
}

func nearestPickup(w *loop.World) (x, y float64, ok bool) {
	p := w.Player
	best := math.MaxFloat64
	for _, o := range w.Orbs {
		if d := physics.DistanceSquared(p.X, p.Y, o.X, o.Y); d < best {
			x, y, best, ok = o.X, o.Y, d, true
		}
	}
	for _, pu := range w.PowerUps {
		if d := physics.DistanceSquared(p.X, p.Y, pu.X, pu.Y); d < best {
			x, y, best, ok = pu.X, pu.Y, d, true
		}
	}
	return x, y, ok
}

func toward(fromX, fromY, toX, toY float64) input.Input {
	dx, dy := toX-fromX, toY-fromY
	return input.Input{
		Left:  dx < -Deadzone,
		Right: dx > Deadzone,
		Up:    dy < -Deadzone,
		Down:  dy > Deadzone,
	}
}
