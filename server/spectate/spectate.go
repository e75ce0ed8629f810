// Package spectate renders a running match in the terminal.
package spectate

import (
	"fmt"
	"math"
	"time"

	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/server/core"
	"github.com/gdamore/tcell/v2"
)

var actorColors = []tcell.Color{tcell.ColorGreen, tcell.ColorBlue, tcell.ColorOrange, tcell.ColorAqua}

var bulletColors = map[cfg.BulletKind]tcell.Color{
	cfg.BulletNormal:    tcell.ColorWhite,
	cfg.BulletIce:       tcell.ColorAqua,
	cfg.BulletExplosive: tcell.ColorYellow,
	cfg.BulletBouncy:    tcell.ColorFuchsia,
}

// View draws snapshots of a server onto a tcell screen.
type View struct {
	screen tcell.Screen
	source func() core.Snapshot
}

// New creates a view reading from source, usually Server.Snapshot.
func New(screen tcell.Screen, source func() core.Snapshot) *View {
	return &View{screen: screen, source: source}
}

// Run redraws at fps until the user quits or done is closed. The screen is
// finalized on return.
func (v *View) Run(fps int, done <-chan struct{}) {
	defer v.screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-done:
			v.Draw(v.source())
			return
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case <-ticker.C:
			v.Draw(v.source())
		}
	}
}

func (v *View) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Draw renders one snapshot scaled to the screen, leaving the last row for
// the status line.
func (v *View) Draw(snap core.Snapshot) {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 1 || snap.Width <= 0 || snap.Height <= 0 {
		v.screen.Show()
		return
	}
	sx := float64(cols) / snap.Width
	sy := float64(rows-1) / snap.Height

	cell := func(x, y float64) (int, int) {
		return int(math.Floor(x * sx)), int(math.Floor(y * sy))
	}
	fill := func(it core.Item, r rune, style tcell.Style) {
		x0, y0 := cell(it.X, it.Y)
		x1, y1 := cell(it.X+it.W, it.Y+it.H)
		for y := y0; y <= y1 && y < rows-1; y++ {
			for x := x0; x <= x1 && x < cols; x++ {
				if x >= 0 && y >= 0 {
					v.screen.SetContent(x, y, r, nil, style)
				}
			}
		}
	}

	for _, it := range snap.Items {
		switch it.Kind {
		case core.ItemWall:
			fill(it, '█', tcell.StyleDefault.Foreground(tcell.ColorGray))
		case core.ItemPowerUp:
			fill(it, '?', tcell.StyleDefault.Foreground(bulletColors[it.Bullet]).Bold(true))
		case core.ItemDefeated:
			x, y := cell(it.X, it.Y)
			v.screen.SetContent(x, y, 'x', nil, tcell.StyleDefault.Foreground(tcell.ColorRed))
		case core.ItemActor:
			style := tcell.StyleDefault.Foreground(actorColors[it.Index%len(actorColors)])
			if it.Stunned {
				style = style.Reverse(true)
			}
			if it.Invulnerable {
				style = style.Dim(true)
			}
			fill(it, rune('0'+it.Index), style)
		case core.ItemProjectile:
			x, y := cell(it.X+it.W/2, it.Y+it.H/2)
			v.screen.SetContent(x, y, '•', nil, tcell.StyleDefault.Foreground(bulletColors[it.Bullet]))
		case core.ItemExplosion:
			fill(it, '*', tcell.StyleDefault.Foreground(tcell.ColorRed))
		}
	}

	v.status(snap, cols, rows-1)
	v.screen.Show()
}

func (v *View) status(snap core.Snapshot, cols, row int) {
	line := fmt.Sprintf("step %d", snap.Step)
	for _, it := range snap.Items {
		if it.Kind == core.ItemActor {
			line += fmt.Sprintf("  P%d hp:%d %s", it.Index, it.Health, it.Bullet)
		}
	}
	if snap.Finished {
		if snap.Winner >= 0 {
			line += fmt.Sprintf("  actor %d wins", snap.Winner)
		} else {
			line += "  no survivors"
		}
	}
	line += "  (q to quit)"

	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		v.screen.SetContent(x, row, r, nil, tcell.StyleDefault)
		x++
	}
}
