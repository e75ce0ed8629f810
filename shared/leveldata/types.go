// Package leveldata provides arena parsing for the simulation and the viewer.
// It depends on go-tiled only, never on ebitengine, donburi or resolv.
package leveldata

// ArenaData holds the static geometry and spawn points of one arena.
type ArenaData struct {
	Name        string
	Walls       []WallRect
	SpawnPoints []SpawnPoint
	Width       float64
	Height      float64
}

// WallRect is a static collider, positioned by its top-left corner.
type WallRect struct {
	X, Y, W, H float64
}

// SpawnPoint is an actor spawn location (actor center).
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn point for an actor index, cycling when the arena
// defines fewer points than actors.
func (a *ArenaData) Spawn(index int) (SpawnPoint, bool) {
	if len(a.SpawnPoints) == 0 {
		return SpawnPoint{}, false
	}
	for _, sp := range a.SpawnPoints {
		if sp.Index == index {
			return sp, true
		}
	}
	return a.SpawnPoints[index%len(a.SpawnPoints)], true
}
