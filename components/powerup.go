package components

import (
	"math/rand"
	"time"

	cfg "github.com/automoto/blastarena/config"
	"github.com/yohamta/donburi"
)

type PowerUpData struct {
	Kind cfg.BulletKind
}

var PowerUp = donburi.NewComponentType[PowerUpData]()

// PowerUpSpawnerData drives power-up respawns (singleton).
type PowerUpSpawnerData struct {
	Cooldown time.Duration // time left before the next spawn attempt
	RNG      *rand.Rand
	Spawned  int
	Fallback int // spawns that used the fallback location
}

var PowerUpSpawner = donburi.NewComponentType[PowerUpSpawnerData]()
