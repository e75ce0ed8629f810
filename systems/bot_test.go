package systems

import (
	"testing"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestLineUp(t *testing.T) {
	tests := []struct {
		name   string
		tx, ty float64
		want   gamemath.Direction2
		ok     bool
	}{
		{"straight right", 300, 105, gamemath.DirRight, true},
		{"straight up", 95, -200, gamemath.DirUp, true},
		{"diagonal down-left", -100, 305, gamemath.DirDownLeft, true},
		{"off line", 300, 180, gamemath.Direction2{}, false},
		{"same spot", 100, 100, gamemath.Direction2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lineUp(100, 100, tt.tx, tt.ty, 10)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNearestTargetSkipsSelf(t *testing.T) {
	actors := []actorInfo{
		{index: 0, x: 0, y: 0},
		{index: 1, x: 500, y: 0},
		{index: 2, x: 100, y: 100},
	}

	got, ok := nearestTarget(0, 0, 0, actors)
	assert.True(t, ok)
	assert.Equal(t, 2, got.index)

	_, ok = nearestTarget(0, 0, 0, actors[:1])
	assert.False(t, ok)
}

func TestBotAimsAtLinedUpTarget(t *testing.T) {
	e := newTestECS(t)
	SeedBots(1)
	bot := factory.CreateBotActor(e, 0, 300, 500, cfg.BotDifficultyHard)
	factory.CreateActor(e, 1, 900, 500)

	UpdateBots(e)

	intent := components.Intent.Get(bot)
	assert.Equal(t, gamemath.AxisPos, intent.MoveX)
	assert.Equal(t, gamemath.AxisNone, intent.MoveY)
	assert.Equal(t, 1, components.Bot.Get(bot).TargetIndex)
}
