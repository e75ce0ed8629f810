package components

import (
	"time"

	cfg "github.com/automoto/blastarena/config"
	"github.com/yohamta/donburi"
)

// CooldownTimerData is one entry of the timer registry. On expiry it applies a
// single effect to Target, if Target still exists.
type CooldownTimerData struct {
	Kind      cfg.TimerKind
	Target    donburi.Entity
	Remaining time.Duration
	Duration  time.Duration
}

var CooldownTimer = donburi.NewComponentType[CooldownTimerData]()
