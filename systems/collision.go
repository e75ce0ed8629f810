package systems

import (
	"sort"

	"github.com/automoto/blastarena/components"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// contact is a precise overlap found after the resolv broadphase.
type contact struct {
	entry *donburi.Entry
	obj   *resolv.Object
	side  gamemath.Side // side of the querying rect relative to this collider
}

func (c contact) isActor() bool {
	return c.obj.HasTags(tags.ResolvActor) && c.entry.HasComponent(components.Actor)
}

// findContacts returns the colliders with any of the given tags that
// overlap rect. Cell sharing alone is not enough, so every broadphase
// candidate is confirmed with an exact rectangle test. Results are ordered
// by entity for a stable resolution order.
func findContacts(obj *resolv.Object, rect gamemath.Rect, tagList ...string) []contact {
	check := obj.Check(0, 0, tagList...)
	if check == nil {
		return nil
	}

	var found []contact
	for _, o := range check.Objects {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		side, hit := gamemath.Overlap(rect, gamemath.NewRect(o.X, o.Y, o.W, o.H))
		if !hit {
			continue
		}
		found = append(found, contact{entry: entry, obj: o, side: side})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].entry.Entity() < found[j].entry.Entity()
	})
	return found
}
