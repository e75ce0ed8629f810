package components

import (
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BotData stores AI state for a computer-controlled actor
type BotData struct {
	Difficulty    cfg.BotDifficulty
	DecisionTimer int // Steps until the next decision
	WanderTimer   int
	Heading       gamemath.Direction2
	TargetIndex   int // -1 when no target
}

var Bot = donburi.NewComponentType[BotData]()
