package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk tuning file. Every field is optional; only the
// values present in the file replace the built-in defaults.
//
// File location is chosen by the caller (arenasim uses -config).
type Overrides struct {
	Player *struct {
		Size       *float64 `yaml:"size"`
		Health     *int     `yaml:"health"`
		Speed      *float64 `yaml:"speed"`
		WallMargin *float64 `yaml:"wallMargin"`
	} `yaml:"player"`

	Bullet *struct {
		Size         *float64           `yaml:"size"`
		SpawnOffset  *float64           `yaml:"spawnOffset"`
		BounceBudget *int               `yaml:"bounceBudget"`
		Speeds       map[string]float64 `yaml:"speeds"`
	} `yaml:"bullet"`

	Explosion *struct {
		Radius        *float64       `yaml:"radius"`
		Frames        *int           `yaml:"frames"`
		FrameDuration *time.Duration `yaml:"frameDuration"`
		Damage        *int           `yaml:"damage"`
	} `yaml:"explosion"`

	Cooldown *struct {
		Invulnerable  *time.Duration `yaml:"invulnerable"`
		Stun          *time.Duration `yaml:"stun"`
		FireRate      *time.Duration `yaml:"fireRate"`
		BlinkInterval *time.Duration `yaml:"blinkInterval"`
	} `yaml:"cooldown"`

	PowerUp *struct {
		Size                 *float64       `yaml:"size"`
		EdgeMargin           *float64       `yaml:"edgeMargin"`
		MaxPlacementAttempts *int           `yaml:"maxPlacementAttempts"`
		RespawnDelay         *time.Duration `yaml:"respawnDelay"`
	} `yaml:"powerUp"`

	Sim *struct {
		TickRate *int   `yaml:"tickRate"`
		Seed     *int64 `yaml:"seed"`
	} `yaml:"sim"`
}

// LoadOverrides reads a YAML tuning file and applies it on top of the current
// configuration. The globals are left untouched when the file is invalid.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config overrides: %w", err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides parses YAML tuning data and applies it.
func ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse config overrides: %w", err)
	}

	snap := snapshot()
	o.apply()
	if err := Validate(); err != nil {
		snap.restore()
		return fmt.Errorf("invalid config overrides: %w", err)
	}
	return nil
}

func (o *Overrides) apply() {
	if p := o.Player; p != nil {
		setIf(&Player.Size, p.Size)
		setIf(&Player.Health, p.Health)
		setIf(&Player.Speed, p.Speed)
		setIf(&Player.WallMargin, p.WallMargin)
	}
	if b := o.Bullet; b != nil {
		setIf(&Bullet.Size, b.Size)
		setIf(&Bullet.SpawnOffset, b.SpawnOffset)
		setIf(&Bullet.BounceBudget, b.BounceBudget)
		if len(b.Speeds) > 0 {
			types := make(map[BulletKind]BulletTypeConfig, len(Bullet.Types))
			for k, v := range Bullet.Types {
				types[k] = v
			}
			for kind, tc := range types {
				if speed, ok := b.Speeds[kind.String()]; ok {
					tc.Speed = speed
					types[kind] = tc
				}
			}
			Bullet.Types = types
		}
	}
	if e := o.Explosion; e != nil {
		setIf(&Explosion.Radius, e.Radius)
		setIf(&Explosion.Frames, e.Frames)
		setIf(&Explosion.FrameDuration, e.FrameDuration)
		setIf(&Explosion.Damage, e.Damage)
	}
	if c := o.Cooldown; c != nil {
		setIf(&Cooldown.Invulnerable, c.Invulnerable)
		setIf(&Cooldown.Stun, c.Stun)
		setIf(&Cooldown.FireRate, c.FireRate)
		setIf(&Cooldown.BlinkInterval, c.BlinkInterval)
	}
	if p := o.PowerUp; p != nil {
		setIf(&PowerUp.Size, p.Size)
		setIf(&PowerUp.EdgeMargin, p.EdgeMargin)
		setIf(&PowerUp.MaxPlacementAttempts, p.MaxPlacementAttempts)
		setIf(&PowerUp.RespawnDelay, p.RespawnDelay)
	}
	if s := o.Sim; s != nil {
		setIf(&Sim.TickRate, s.TickRate)
		setIf(&Sim.Seed, s.Seed)
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks the active configuration for values the simulation cannot run with.
func Validate() error {
	var errs []error
	if Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %.2f", Player.Size))
	}
	if Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player health must be positive, got %d", Player.Health))
	}
	if Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed must not be negative, got %.2f", Player.Speed))
	}
	if Player.WallMargin < 0 {
		errs = append(errs, fmt.Errorf("wall margin must not be negative, got %.2f", Player.WallMargin))
	}
	if Bullet.Size <= 0 {
		errs = append(errs, fmt.Errorf("bullet size must be positive, got %.2f", Bullet.Size))
	}
	if Bullet.BounceBudget <= 0 {
		errs = append(errs, fmt.Errorf("bounce budget must be positive, got %d", Bullet.BounceBudget))
	}
	for kind, tc := range Bullet.Types {
		if tc.Speed <= 0 {
			errs = append(errs, fmt.Errorf("%s bullet speed must be positive, got %.2f", kind, tc.Speed))
		}
	}
	if Explosion.Radius <= 0 || Explosion.Frames <= 0 || Explosion.FrameDuration <= 0 {
		errs = append(errs, errors.New("explosion radius, frames and frame duration must be positive"))
	}
	if Explosion.Damage <= 0 {
		errs = append(errs, fmt.Errorf("explosion damage must be positive, got %d", Explosion.Damage))
	}
	if Cooldown.Invulnerable <= 0 || Cooldown.Stun <= 0 || Cooldown.FireRate <= 0 || Cooldown.BlinkInterval <= 0 {
		errs = append(errs, errors.New("cooldown durations must be positive"))
	}
	if PowerUp.MaxPlacementAttempts <= 0 {
		errs = append(errs, fmt.Errorf("max placement attempts must be positive, got %d", PowerUp.MaxPlacementAttempts))
	}
	if 2*PowerUp.EdgeMargin+PowerUp.Size >= Arena.Width() || 2*PowerUp.EdgeMargin+PowerUp.Size >= Arena.Height() {
		errs = append(errs, errors.New("power-up edge margin leaves no room inside the arena"))
	}
	if Sim.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", Sim.TickRate))
	}
	return errors.Join(errs...)
}

type configSnapshot struct {
	player    PlayerConfig
	bullet    BulletConfig
	explosion ExplosionConfig
	cooldown  CooldownConfig
	powerUp   PowerUpConfig
	sim       SimConfig
}

func snapshot() configSnapshot {
	return configSnapshot{Player, Bullet, Explosion, Cooldown, PowerUp, Sim}
}

func (s configSnapshot) restore() {
	Player, Bullet, Explosion = s.player, s.bullet, s.explosion
	Cooldown, PowerUp, Sim = s.cooldown, s.powerUp, s.sim
}
