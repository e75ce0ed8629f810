package core

import (
	"log"
	"time"
)

// GameLoop drives a Server at a fixed tick rate.
type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
	doneChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Run ticks until Stop is called, the match finishes or maxSteps steps have
// run (0 means no limit).
func (g *GameLoop) Run(maxSteps uint64) {
	defer close(g.doneChan)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if g.tick() || (maxSteps > 0 && g.server.Steps() >= maxSteps) {
				log.Printf("Game loop finished after %d steps", g.server.Steps())
				return
			}
		}
	}
}

// Stop asks Run to return. It is safe to call more than once.
func (g *GameLoop) Stop() {
	select {
	case <-g.stopChan:
	default:
		close(g.stopChan)
	}
}

// Done is closed once Run has returned.
func (g *GameLoop) Done() <-chan struct{} {
	return g.doneChan
}

func (g *GameLoop) tick() bool {
	return g.server.Step(time.Second / time.Duration(g.tickRate))
}
