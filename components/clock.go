package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the engine clock (singleton). The loop writes Delta before
// each update.
type ClockData struct {
	Delta   time.Duration
	Elapsed time.Duration
	Step    uint64
}

var Clock = donburi.NewComponentType[ClockData]()
