package systems

import (
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// PlaySFX queues a sound effect request for whatever handles audio.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	components.AudioCue.Publish(e.World, components.AudioCueEvent{
		Sound:  sound,
		Path:   cfg.Sound.SFXPaths[sound],
		Volume: cfg.Sound.Volume(sound),
	})
}

// ProcessEvents delivers every queued signal to its subscribers. It runs
// last so subscribers see the state at the end of the step.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
