package main

import (
	"flag"
	"image"
	"image/color"
	"log"

	"github.com/automoto/blastarena/components"
	"github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/scenes"
	"github.com/automoto/blastarena/server/core"
	"github.com/automoto/blastarena/systems"
	"github.com/automoto/blastarena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

// Game is a debug viewer: actor 0 is keyboard-controlled, the rest are bots.
type Game struct {
	bounds image.Rectangle
	scene  *scenes.ArenaScene
	paused bool
}

func NewGame(match *scenes.MatchConfig) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaSceneWithConfig(match),
	}
}

func (g *Game) Update() error {
	if justPressed(ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.scene.Finished() {
		return nil
	}
	g.scene.SetIntent(0, readIntent())
	g.scene.Update()
	return nil
}

var actorColors = []color.RGBA{config.Green, config.Blue, config.Orange, config.Cyan}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.scene.ECS().World

	tags.Wall.Each(w, func(entry *donburi.Entry) {
		fillObject(screen, entry, config.Grey, 1)
	})
	tags.PowerUp.Each(w, func(entry *donburi.Entry) {
		kind := components.PowerUp.Get(entry).Kind
		fillObject(screen, entry, config.Bullet.Types[kind].Color, 0.6)
	})
	tags.Actor.Each(w, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		clr := actorColors[actor.Index%len(actorColors)]
		if actor.Stunned {
			clr = config.White
		}
		fillObject(screen, entry, clr, components.Blink.Get(entry).Alpha)
	})
	tags.Projectile.Each(w, func(entry *donburi.Entry) {
		kind := components.Projectile.Get(entry).Kind()
		fillObject(screen, entry, config.Bullet.Types[kind].Color, 1)
	})
	tags.Explosion.Each(w, func(entry *donburi.Entry) {
		ex := components.Explosion.Get(entry)
		cx, cy := components.Object.Get(entry).Center()
		// Sprite edge grows with the animation frame; the ring is the damage radius.
		edge := float32(config.Explosion.Scale) * (ex.Current + 1) / float32(config.Explosion.Frames+1)
		vector.FillRect(screen, float32(cx)-edge/2, float32(cy)-edge/2, edge, edge, config.Yellow, false)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(ex.Radius), 2, config.Red, false)
	})
	tags.Defeated.Each(w, func(entry *donburi.Entry) {
		d := components.Defeated.Get(entry)
		vector.StrokeLine(screen, float32(d.X-10), float32(d.Y-10), float32(d.X+10), float32(d.Y+10), 2, config.Red, false)
		vector.StrokeLine(screen, float32(d.X-10), float32(d.Y+10), float32(d.X+10), float32(d.Y-10), 2, config.Red, false)
	})

	if g.scene.Finished() {
		ebitenutil.DebugPrint(screen, winnerText(systems.GetWinner(g.scene.ECS())))
	} else if g.paused {
		ebitenutil.DebugPrint(screen, "paused")
	}
}

func fillObject(screen *ebiten.Image, entry *donburi.Entry, clr color.RGBA, alpha float64) {
	o := components.Object.Get(entry)
	clr.A = uint8(float64(clr.A) * alpha)
	vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), clr, false)
}

func winnerText(winner int) string {
	if winner < 0 {
		return "no survivors"
	}
	return "actor " + string(rune('0'+winner)) + " wins"
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	arenaPath := flag.String("arena", "", "Path to a .tmx arena (empty = built-in arena)")
	configPath := flag.String("config", "", "Path to a YAML config override file")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Printf("Warning: %v, using built-in defaults", err)
		}
	}

	arena, err := core.LoadArena(*arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	match := scenes.DefaultMatchConfig()
	match.Arena = arena
	match.Slots[0] = scenes.ActorSlot{Type: scenes.SlotHuman}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("blastarena")
	ebiten.SetTPS(config.Sim.TickRate)

	if err := ebiten.RunGame(NewGame(match)); err != nil {
		log.Fatal(err)
	}
}
