package loop

import (
	"time"

	"github.com/tomz197/orbrunner/internal/loop/config"
	"github.com/tomz197/orbrunner/internal/object"
)

// Outcome reports how a step ended.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeGameOver         // Lives reached zero during this step
)

// Step advances the world by one frame. The order of the phases is fixed:
// difficulty, spawning, player, orbs, power-ups, hazards.
func (w *World) Step(dt time.Duration) Outcome {
	w.Frame++

	w.scaleDifficulty()
	w.spawn()
	w.updatePlayer(dt)
	w.updateOrbs(dt)
	w.updatePowerUps(dt)
	return w.updateHazards(dt)
}

// scaleDifficulty raises the level every LevelFrames frames and tightens
// the hazard and orb cadences down to their floors.
func (w *World) scaleDifficulty() {
	if w.Frame%config.LevelFrames != 0 {
		return
	}
	w.Level++
	w.HazardCadence = max(config.HazardCadenceFloor, w.HazardCadence-config.HazardCadenceStep)
	w.OrbCadence = max(config.OrbCadenceFloor, w.OrbCadence-config.OrbCadenceStep)
	w.notifyHUD()
}

// spawn adds entities whose cadence divides the current frame.
// Several types may spawn on the same frame.
func (w *World) spawn() {
	if w.Frame%w.OrbCadence == 0 {
		w.Orbs = append(w.Orbs, object.NewOrb(w.rng, w.Arena, w.Player.X, w.Player.Y))
	}
	if w.Frame%w.HazardCadence == 0 {
		w.Hazards = append(w.Hazards, object.NewHazard(w.rng, w.Arena, w.Level))
	}
	if w.Frame%w.PowerUpCadence == 0 {
		w.PowerUps = append(w.PowerUps, object.NewPowerUp(w.rng, w.Arena, object.PowerSlow))
	}
}

// updatePlayer moves the player with the slow factor in effect at the start
// of the frame, then counts down slow motion.
func (w *World) updatePlayer(dt time.Duration) {
	w.Player.Update(w.updateContext(dt))
	if w.SlowTimer > 0 {
		w.SlowTimer--
	}
}

// updateContext creates an UpdateContext from the current state.
func (w *World) updateContext(dt time.Duration) object.UpdateContext {
	return object.UpdateContext{
		Delta:      dt,
		Input:      w.Input,
		Arena:      w.Arena,
		SlowFactor: w.SlowFactor(),
	}
}
