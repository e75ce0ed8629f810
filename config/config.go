package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer every arena entity lives on
const Default ecs.LayerID = 0

// PlayerConfig contains all actor-related configuration values
type PlayerConfig struct {
	// Dimensions (square actors, full edge length)
	Size float64

	// Combat
	Health int

	// Movement
	Speed float64

	// WallMargin inflates the actor half-extents when testing against walls so
	// blocking kicks in slightly before the sprites visually touch.
	WallMargin float64

	// MaxActors is the number of local players an arena supports
	MaxActors int
}

// BulletTypeConfig contains per-kind projectile values
type BulletTypeConfig struct {
	Speed float64
	Color color.RGBA
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Size         float64 // Collision edge length
	SpawnOffset  float64 // Distance from actor center along each facing axis
	BounceBudget int     // Wall contacts a bouncy bullet survives
	CullBuffer   float64 // Distance beyond the arena bounds before a bullet is culled
	Types        map[BulletKind]BulletTypeConfig
}

// ExplosionConfig contains area effect configuration
type ExplosionConfig struct {
	Radius        float64       // Damage radius
	Scale         float64       // Visual edge length (renderers only)
	Frames        int           // Animation frames before despawn
	FrameDuration time.Duration // Time per animation frame
	Damage        int           // Health removed from a non-invulnerable actor
}

// CooldownConfig contains timer durations for the cooldown registry
type CooldownConfig struct {
	Invulnerable  time.Duration
	Stun          time.Duration
	FireRate      time.Duration
	BlinkInterval time.Duration
	BlinkAlpha    float64 // Alpha used for the "off" phase of the blink
}

// PowerUpConfig contains power-up placement and pickup configuration
type PowerUpConfig struct {
	Size                 float64
	EdgeMargin           float64 // Keep-out distance from the arena bounds
	MaxPlacementAttempts int
	FallbackX            float64 // Used when every sample collided
	FallbackY            float64
	RespawnDelay         time.Duration
}

// ArenaConfig contains the bounds of the playable area (top-left origin, y-down)
type ArenaConfig struct {
	Left, Right, Top, Bottom float64
	CellSize                 int // resolv cell size
}

// Width returns the arena width
func (a ArenaConfig) Width() float64 { return a.Right - a.Left }

// Height returns the arena height
func (a ArenaConfig) Height() float64 { return a.Bottom - a.Top }

// SimConfig contains simulation loop configuration
type SimConfig struct {
	TickRate int
	Seed     int64
}

// StepDuration is the fixed simulated time per step
func (s SimConfig) StepDuration() time.Duration {
	if s.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.TickRate)
}

// Config holds general window configuration for the debug viewer
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Bullet BulletConfig
var Explosion ExplosionConfig
var Cooldown CooldownConfig
var PowerUp PowerUpConfig
var Arena ArenaConfig
var Sim SimConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Grey   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1600,
		Height: 1000,
	}

	Player = PlayerConfig{
		Size:       50,
		Health:     3,
		Speed:      2.5,
		WallMargin: 1.15,
		MaxActors:  4,
	}

	Bullet = BulletConfig{
		Size:         10,
		SpawnOffset:  30,
		BounceBudget: 4,
		CullBuffer:   100,
		Types: map[BulletKind]BulletTypeConfig{
			BulletNormal:    {Speed: 10, Color: Red},
			BulletIce:       {Speed: 20, Color: Blue},
			BulletExplosive: {Speed: 6, Color: Yellow},
			BulletBouncy:    {Speed: 15, Color: Green},
		},
	}

	Explosion = ExplosionConfig{
		Radius:        50,
		Scale:         150,
		Frames:        3,
		FrameDuration: 50 * time.Millisecond,
		Damage:        2,
	}

	Cooldown = CooldownConfig{
		Invulnerable:  2 * time.Second,
		Stun:          2 * time.Second,
		FireRate:      250 * time.Millisecond,
		BlinkInterval: 100 * time.Millisecond,
		BlinkAlpha:    0.35,
	}

	PowerUp = PowerUpConfig{
		Size:                 30,
		EdgeMargin:           15,
		MaxPlacementAttempts: 64,
		FallbackX:            800,
		FallbackY:            500,
		RespawnDelay:         5 * time.Second,
	}

	// World coordinates start at the top-left corner, y grows downward
	Arena = ArenaConfig{
		Left:     0,
		Right:    1600,
		Top:      0,
		Bottom:   1000,
		CellSize: 16,
	}

	Sim = SimConfig{
		TickRate: 60,
		Seed:     42,
	}
}
