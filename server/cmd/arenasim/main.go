package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/blastarena/audio"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/scenes"
	"github.com/automoto/blastarena/server/core"
	"github.com/automoto/blastarena/server/spectate"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
)

func main() {
	tickRate := flag.Int("tickrate", 0, "Simulation tick rate (0 = config value)")
	seed := flag.Int64("seed", 0, "RNG seed for bots and power-ups (0 = config value)")
	arenaPath := flag.String("arena", "", "Path to a .tmx arena (empty = built-in arena)")
	configPath := flag.String("config", "", "Path to a YAML config override file")
	steps := flag.Uint64("steps", 36000, "Maximum steps to simulate (0 = until a winner)")
	bots := flag.Int("bots", 4, "Number of bot actors (2-4)")
	difficulty := flag.String("difficulty", "normal", "Bot difficulty: easy, normal or hard")
	realtime := flag.Bool("realtime", false, "Run at the tick rate instead of as fast as possible")
	tui := flag.Bool("tui", false, "Watch the match in the terminal (implies -realtime)")
	sound := flag.Bool("sound", false, "Play synthesized tones for audio cues")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadOverrides(*configPath); err != nil {
			log.Printf("Warning: %v, using built-in defaults", err)
		} else {
			log.Printf("Loaded config overrides from %s", *configPath)
		}
	}
	if *tickRate > 0 {
		cfg.Sim.TickRate = *tickRate
	}
	if *seed != 0 {
		cfg.Sim.Seed = *seed
	}

	arena, err := core.LoadArena(*arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	diff, ok := parseDifficulty(*difficulty)
	if !ok {
		log.Fatalf("Unknown difficulty %q", *difficulty)
	}
	if *bots < 2 || *bots > cfg.Player.MaxActors {
		log.Fatalf("Bot count must be between 2 and %d, got %d", cfg.Player.MaxActors, *bots)
	}

	match := &scenes.MatchConfig{Arena: arena, Seed: cfg.Sim.Seed}
	for i := 0; i < *bots; i++ {
		match.Slots[i] = scenes.ActorSlot{Type: scenes.SlotBot, BotDifficulty: diff}
	}

	server := core.NewServer(cfg.Sim.TickRate, match)

	if *sound {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			// Non-fatal, the match runs silently
			log.Printf("Warning: audio initialization failed: %v", err)
		} else {
			defer player.Close()
			server.Subscribe(func(w donburi.World) { player.Subscribe(w) })
		}
	}

	log.Printf("Starting arena simulation on %q (tick rate: %d/s, seed: %d, bots: %d)",
		arena.Name, cfg.Sim.TickRate, cfg.Sim.Seed, *bots)

	switch {
	case *tui:
		screen, err := tcell.NewScreen()
		if err != nil {
			log.Fatalf("Failed to create terminal screen: %v", err)
		}
		if err := screen.Init(); err != nil {
			log.Fatalf("Failed to initialize terminal screen: %v", err)
		}
		// Log lines would tear the screen while it is active.
		log.SetOutput(io.Discard)
		server.Start(*steps)
		spectate.New(screen, server.Snapshot).Run(30, server.Done())
		server.Stop()
		log.SetOutput(os.Stderr)
	case *realtime:
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		server.Start(*steps)
		select {
		case <-sigChan:
			log.Println("Shutting down simulation...")
			server.Stop()
		case <-server.Done():
		}
	default:
		limit := *steps
		if limit == 0 {
			limit = ^uint64(0)
		}
		server.RunSteps(limit, cfg.Sim.StepDuration())
	}

	server.Result().Log()
}

func parseDifficulty(s string) (cfg.BotDifficulty, bool) {
	switch s {
	case "easy":
		return cfg.BotDifficultyEasy, true
	case "normal":
		return cfg.BotDifficultyNormal, true
	case "hard":
		return cfg.BotDifficultyHard, true
	}
	return cfg.BotDifficultyNormal, false
}
