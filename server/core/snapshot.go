package core

import (
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/systems"
	"github.com/automoto/blastarena/tags"
	"github.com/yohamta/donburi"
)

// ItemKind says what a snapshot item is.
type ItemKind int

const (
	ItemWall ItemKind = iota
	ItemPowerUp
	ItemDefeated
	ItemActor
	ItemProjectile
	ItemExplosion
)

// Item is one drawable entity, positioned by its top-left corner. Defeated
// markers are points with no size.
type Item struct {
	Kind         ItemKind
	X, Y, W, H   float64
	Index        int // actor index for actors and defeated markers
	Bullet       cfg.BulletKind
	Health       int
	Stunned      bool
	Invulnerable bool
}

// Snapshot is a copy of the arena state that can be read without holding
// the server lock.
type Snapshot struct {
	Width, Height float64
	Step          uint64
	Finished      bool
	Winner        int
	Items         []Item // in draw order
}

// Snapshot copies the drawable state of the match.
func (s *Server) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w := s.scene.ECS().World
	bounds := systems.ArenaBounds(s.scene.ECS())
	snap := Snapshot{
		Width:    bounds.Width(),
		Height:   bounds.Height(),
		Step:     s.steps,
		Finished: s.scene.Finished(),
		Winner:   -1,
	}
	if entry, ok := components.Match.First(w); ok {
		snap.Winner = components.Match.Get(entry).WinnerIndex
	}

	object := func(kind ItemKind, entry *donburi.Entry) Item {
		o := components.Object.Get(entry)
		return Item{Kind: kind, X: o.X, Y: o.Y, W: o.W, H: o.H}
	}

	tags.Wall.Each(w, func(entry *donburi.Entry) {
		snap.Items = append(snap.Items, object(ItemWall, entry))
	})
	tags.PowerUp.Each(w, func(entry *donburi.Entry) {
		it := object(ItemPowerUp, entry)
		it.Bullet = components.PowerUp.Get(entry).Kind
		snap.Items = append(snap.Items, it)
	})
	tags.Defeated.Each(w, func(entry *donburi.Entry) {
		d := components.Defeated.Get(entry)
		snap.Items = append(snap.Items, Item{Kind: ItemDefeated, X: d.X, Y: d.Y, Index: d.Index})
	})
	tags.Actor.Each(w, func(entry *donburi.Entry) {
		a := components.Actor.Get(entry)
		it := object(ItemActor, entry)
		it.Index = a.Index
		it.Health = a.Health
		it.Stunned = a.Stunned
		it.Invulnerable = a.Invulnerable
		it.Bullet = a.PowerUp
		snap.Items = append(snap.Items, it)
	})
	tags.Projectile.Each(w, func(entry *donburi.Entry) {
		it := object(ItemProjectile, entry)
		it.Bullet = components.Projectile.Get(entry).Kind()
		snap.Items = append(snap.Items, it)
	})
	tags.Explosion.Each(w, func(entry *donburi.Entry) {
		snap.Items = append(snap.Items, object(ItemExplosion, entry))
	})

	return snap
}
