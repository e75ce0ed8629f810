package systems

import (
	"log"
	"math/rand"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/automoto/blastarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerUps hands power-ups to the actors touching them and respawns a
// new one once the field has been empty for the respawn delay.
func UpdatePowerUps(e *ecs.ECS) {
	collectPowerUps(e)

	spawnerEntry, ok := components.PowerUpSpawner.First(e.World)
	if !ok {
		return
	}
	spawner := components.PowerUpSpawner.Get(spawnerEntry)

	if countPowerUps(e) > 0 {
		return
	}
	spawner.Cooldown -= stepDelta(e)
	if spawner.Cooldown > 0 {
		return
	}

	SpawnPowerUp(e, spawner)
	spawner.Cooldown = cfg.PowerUp.RespawnDelay
}

func collectPowerUps(e *ecs.ECS) {
	type pickup struct {
		actor, powerUp *donburi.Entry
	}
	var pickups []pickup
	taken := map[donburi.Entity]bool{}

	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		if components.Actor.Get(entry).Health <= 0 {
			return
		}
		obj := components.Object.Get(entry)
		for _, c := range findContacts(obj.Object, obj.Rect(), tags.ResolvPowerUp) {
			if taken[c.entry.Entity()] || !c.entry.HasComponent(components.PowerUp) {
				continue
			}
			taken[c.entry.Entity()] = true
			pickups = append(pickups, pickup{actor: entry, powerUp: c.entry})
			return
		}
	})

	for _, p := range pickups {
		GrantPowerUp(e, p.actor, components.PowerUp.Get(p.powerUp).Kind)
		factory.Destroy(e, p.powerUp)

		if spawnerEntry, ok := components.PowerUpSpawner.First(e.World); ok {
			components.PowerUpSpawner.Get(spawnerEntry).Cooldown = cfg.PowerUp.RespawnDelay
		}
	}
}

func countPowerUps(e *ecs.ECS) int {
	n := 0
	tags.PowerUp.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// SpawnPowerUp places a new power-up holding a uniformly drawn special kind.
func SpawnPowerUp(e *ecs.ECS, spawner *components.PowerUpSpawnerData) *donburi.Entry {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	x, y, found := FindPowerUpSpot(space, spawner.RNG, ArenaBounds(e), cfg.PowerUp.MaxPlacementAttempts)
	if !found {
		log.Printf("Warning: no free power-up spot after %d attempts, using fallback (%.0f, %.0f)",
			cfg.PowerUp.MaxPlacementAttempts, x, y)
		spawner.Fallback++
	}

	kind := DrawPowerUpKind(spawner.RNG)
	p := factory.CreatePowerUp(e, kind, x, y)
	spawner.Spawned++

	components.Spawn.Publish(e.World, components.SpawnEvent{
		Kind:       components.SpawnPowerUp,
		Entity:     p.Entity(),
		BulletKind: kind,
		X:          x,
		Y:          y,
	})
	return p
}

// DrawPowerUpKind draws one of the special bullet kinds with equal
// probability.
func DrawPowerUpKind(rng *rand.Rand) cfg.BulletKind {
	return cfg.BulletKindFromDraw(rng.Intn(len(cfg.SpecialBulletKinds)))
}

// FindPowerUpSpot samples power-up centers inside the arena until one
// overlaps no wall, actor, projectile or other power-up. After maxAttempts
// misses it returns the arena's fallback and false.
func FindPowerUpSpot(space *resolv.Space, rng *rand.Rand, bounds components.BoundsData, maxAttempts int) (x, y float64, ok bool) {
	size := cfg.PowerUp.Size
	minX, maxX := bounds.Left+cfg.PowerUp.EdgeMargin, bounds.Right-cfg.PowerUp.EdgeMargin
	minY, maxY := bounds.Top+cfg.PowerUp.EdgeMargin, bounds.Bottom-cfg.PowerUp.EdgeMargin

	// Reuse a single probe for all checks to avoid allocations
	probe := resolv.NewObject(0, 0, size, size, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	for i := 0; i < maxAttempts; i++ {
		cx := minX + rng.Float64()*(maxX-minX)
		cy := minY + rng.Float64()*(maxY-minY)

		probe.X = cx - size/2
		probe.Y = cy - size/2
		probe.Update()

		if len(findContacts(probe, gamemath.CenteredRect(cx, cy, size, size),
			tags.ResolvSolid, tags.ResolvActor, tags.ResolvProjectile, tags.ResolvPowerUp)) == 0 {
			return cx, cy, true
		}
	}

	return bounds.FallbackX, bounds.FallbackY, false
}
