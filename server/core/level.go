package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/blastarena/shared/leveldata"
)

// LoadArena loads a .tmx arena from disk. An empty path selects the built-in
// arena.
func LoadArena(path string) (*leveldata.ArenaData, error) {
	if path == "" {
		return leveldata.DefaultArena(), nil
	}

	arena, err := leveldata.LoadArena(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load arena %s: %w", path, err)
	}

	log.Printf("Loaded arena %q: %d walls, %d spawn points, %.0fx%.0f",
		arena.Name, len(arena.Walls), len(arena.SpawnPoints), arena.Width, arena.Height)
	return arena, nil
}
