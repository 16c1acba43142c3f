// Package config centralizes all tunable game parameters.
package config

import "time"

// Arena dimensions in logical units. Rendering scales to fit the terminal.
const (
	ArenaWidth  = 960
	ArenaHeight = 540
)

// Scoring and lives
const (
	OrbScore     = 10
	InitialLives = 3
)

// Difficulty: every LevelFrames frames the level rises and spawn cadences tighten.
const (
	LevelFrames = 600

	HazardCadence      = 90 // Frames between hazard spawns at level 1
	HazardCadenceStep  = 6
	HazardCadenceFloor = 40

	OrbCadence      = 180
	OrbCadenceStep  = 4
	OrbCadenceFloor = 100

	PowerUpCadence = 900 // Never scaled
)

// Slow motion power-up
const (
	SlowFrames = 6 * 60 // 6s at 60 FPS
	SlowFactor = 0.6
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS

	// MaxFrameDelta caps the elapsed time fed into a single step so a stalled
	// frame cannot tunnel hazards through the player.
	MaxFrameDelta = 32 * time.Millisecond
)
