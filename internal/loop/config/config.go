// Package config centralizes all tunable game parameters.
package config

import "time"

// Default viewport in logical units. Entity sizes and speeds below are in the
// same units; the canvas scales the viewport to whatever the terminal offers.
const (
	ViewWidth  = 960
	ViewHeight = 540
)

// OffscreenMargin is how far past a viewport edge an entity may travel before
// it is removed.
const OffscreenMargin = 50

// Craft
const (
	CraftWidth  = 50
	CraftHeight = 25
	CraftSpeed  = 7
	CraftStartX = 100
	CraftStartY = -20 // Offset from the vertical center
)

// Projectiles
const (
	ProjectileWidth  = 20
	ProjectileHeight = 6
	ProjectileSpeed  = 12
	MaxProjectiles   = 30
)

// Enemies
const (
	MaxEnemies         = 20
	EnemyMinSize       = 30
	EnemySizeRange     = 30
	EnemyBaseSpeed     = 3
	EnemySpeedRange    = 2
	EnemyLevelsPerStep = 3 // Speed +1 every this many levels
)

// Particles
const (
	MaxParticles        = 2000
	ParticleSize        = 3
	ParticleMaxVelocity = 3 // Velocity per axis is in (-max, max)
	ParticleMinLife     = 30
	ParticleLifeRange   = 20
	BurstMaxParticles   = 20
	BurstMinParticles   = 6
)

// Session
const (
	MaxAmmo         = 20
	MaxHealth       = 100
	CollisionDamage = 10
	KillReward      = 10
	PointsPerLevel  = 100
)

// Timers
const (
	ShootCooldown = 150 * time.Millisecond
	ReloadTime    = 10 * time.Second
	SpawnInterval = time.Second
	RestartDelay  = 150 * time.Millisecond
)

// Health bar color bands (percent).
const (
	HealthHigh = 60
	HealthMid  = 30
)

// Render area - terminal space is clamped to this size and centered.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Leaderboard
const (
	TopScoresCount    = 5
	MaxUsernameLength = 16 // Maximum display length for player usernames
)

// Intro
const (
	IntroSeconds = 3.5
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Hub tick rate
const (
	ServerTickRate = 20
	ServerTickTime = time.Second / ServerTickRate
)
