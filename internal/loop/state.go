// Package loop provides the main game loop, world state and session lifecycle.
package loop

import (
	"github.com/tomz197/orbrunner/internal/loop/config"
	"github.com/tomz197/orbrunner/internal/object"
	"github.com/tomz197/orbrunner/internal/physics"
)

// HUD is notified whenever score, level or lives change.
type HUD interface {
	Refresh(score, level, lives int)
}

type nopHUD struct{}

func (nopHUD) Refresh(int, int, int) {}

// World holds the state of one game: entities, counters, cadences and timers.
// A new World is created for every game; nothing carries over.
type World struct {
	Arena    object.Arena
	Input    object.Input // Snapshot read by the player update
	Player   *object.Player
	Orbs     []*object.Orb
	Hazards  []*object.Hazard
	PowerUps []*object.PowerUp

	Score int
	Level int
	Lives int

	// Frames between spawns of each entity type
	HazardCadence  int
	OrbCadence     int
	PowerUpCadence int

	SlowTimer int // Frames of slow motion remaining
	Frame     int // Steps taken this game

	rng physics.Rand
	hud HUD
}

// NewWorld creates a freshly reset world: a new player, one seed orb,
// base cadences and zeroed timers. The HUD receives the initial counters.
func NewWorld(arena object.Arena, rng physics.Rand, hud HUD) *World {
	if hud == nil {
		hud = nopHUD{}
	}
	player := object.NewPlayer(arena)
	w := &World{
		Arena:          arena,
		Player:         player,
		Orbs:           []*object.Orb{object.NewOrb(rng, arena, player.X, player.Y)},
		Hazards:        []*object.Hazard{},
		PowerUps:       []*object.PowerUp{},
		Level:          1,
		Lives:          config.InitialLives,
		HazardCadence:  config.HazardCadence,
		OrbCadence:     config.OrbCadence,
		PowerUpCadence: config.PowerUpCadence,
		rng:            rng,
		hud:            hud,
	}
	w.notifyHUD()
	return w
}

// SlowFactor returns the acceleration multiplier for the current frame.
func (w *World) SlowFactor() float64 {
	if w.SlowTimer > 0 {
		return config.SlowFactor
	}
	return 1
}

// Objects returns every entity in draw order: orbs, power-ups, hazards, player.
func (w *World) Objects() []object.Object {
	objs := make([]object.Object, 0, len(w.Orbs)+len(w.PowerUps)+len(w.Hazards)+1)
	for _, o := range w.Orbs {
		objs = append(objs, o)
	}
	for _, p := range w.PowerUps {
		objs = append(objs, p)
	}
	for _, h := range w.Hazards {
		objs = append(objs, h)
	}
	return append(objs, w.Player)
}

func (w *World) notifyHUD() {
	w.hud.Refresh(w.Score, w.Level, w.Lives)
}
