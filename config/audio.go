package config

// SoundID represents a logical sound effect requested by the combat core.
// Playback itself belongs to whatever consumes the audio cue.
type SoundID int

const (
	SoundNone SoundID = iota
	// Firing
	SoundShot
	SoundSpecialShot
	// Impacts
	SoundHit
	SoundFreeze
	SoundBounce
	SoundExplosion
	SoundWallImpact
	// Match flow
	SoundPickup
	SoundElimination
)

// SoundConfig maps sound IDs to asset paths consumers can load
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Sound SoundConfig

func init() {
	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundShot:        "audio/sfx/shot.wav",
			SoundSpecialShot: "audio/sfx/special_shot.wav",
			SoundHit:         "audio/sfx/hit.wav",
			SoundFreeze:      "audio/sfx/freeze.wav",
			SoundBounce:      "audio/sfx/bounce.wav",
			SoundExplosion:   "audio/sfx/explosion.wav",
			SoundWallImpact:  "audio/sfx/wall_impact.wav",
			SoundPickup:      "audio/sfx/pickup.wav",
			SoundElimination: "audio/sfx/elimination.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:       1.5,
			SoundExplosion: 1.5,
		},
	}
}

// Volume returns the playback multiplier for a sound, 1 when unset.
func (s SoundConfig) Volume(id SoundID) float64 {
	if v, ok := s.VolumeMultipliers[id]; ok {
		return v
	}
	return 1
}
