package loop

import (
	"slices"
	"time"

	"github.com/tomz197/orbrunner/internal/loop/config"
	"github.com/tomz197/orbrunner/internal/object"
	"github.com/tomz197/orbrunner/internal/physics"
)

// All passes walk back-to-front so removing index i never skips or repeats an entity.

// updateOrbs ages each orb and collects the ones touching the player.
func (w *World) updateOrbs(dt time.Duration) {
	ctx := w.updateContext(dt)
	p := w.Player
	for i := len(w.Orbs) - 1; i >= 0; i-- {
		o := w.Orbs[i]
		o.Update(ctx)
		if object.Collides(p.X, p.Y, p.Radius, o.X, o.Y, o.Radius) {
			w.Orbs = slices.Delete(w.Orbs, i, i+1)
			w.Score += config.OrbScore
			w.notifyHUD()
		}
	}
}

// updatePowerUps expires old power-ups and applies the ones the player touches.
func (w *World) updatePowerUps(dt time.Duration) {
	ctx := w.updateContext(dt)
	p := w.Player
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		pu := w.PowerUps[i]
		if pu.Update(ctx) {
			w.PowerUps = slices.Delete(w.PowerUps, i, i+1)
			continue
		}
		if object.Collides(p.X, p.Y, p.Radius, pu.X, pu.Y, pu.Radius) {
			if pu.Kind == object.PowerSlow {
				w.SlowTimer = config.SlowFrames
			}
			w.PowerUps = slices.Delete(w.PowerUps, i, i+1)
		}
	}
}

// updateHazards moves hazards, drops the ones that left the arena and
// resolves hits. Returns OutcomeGameOver as soon as the last life is lost;
// remaining hazards are not processed that frame.
func (w *World) updateHazards(dt time.Duration) Outcome {
	ctx := w.updateContext(dt)
	p := w.Player
	for i := len(w.Hazards) - 1; i >= 0; i-- {
		h := w.Hazards[i]
		if h.Update(ctx) {
			w.Hazards = slices.Delete(w.Hazards, i, i+1)
			continue
		}
		if !object.Collides(p.X, p.Y, p.Radius, h.X, h.Y, h.Radius) {
			continue
		}

		if p.Hit() {
			w.Lives--
			w.notifyHUD()
		}
		if w.Lives <= 0 {
			return OutcomeGameOver
		}
		p.Knockback(h.VX, physics.RandSign(w.rng))
	}
	return OutcomeContinue
}
