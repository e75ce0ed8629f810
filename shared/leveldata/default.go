package leveldata

const (
	defaultWidth     = 1600
	defaultHeight    = 1000
	wallThickness    = 10
	spawnWallShort   = 100
	spawnWallLong    = 200
	middleWallLength = 350
)

// DefaultArena returns the built-in arena: an outer frame, partial walls
// around each corner spawn and two bars splitting the middle.
func DefaultArena() *ArenaData {
	// centered returns a wall positioned by its center.
	centered := func(cx, cy, w, h float64) WallRect {
		return WallRect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
	}

	walls := []WallRect{
		// Outer frame
		centered(defaultWidth/2, 0, defaultWidth+wallThickness, wallThickness),
		centered(defaultWidth/2, defaultHeight, defaultWidth+wallThickness, wallThickness),
		centered(0, defaultHeight/2, wallThickness, defaultHeight+wallThickness),
		centered(defaultWidth, defaultHeight/2, wallThickness, defaultHeight+wallThickness),

		// Vertical stubs hanging from the top and bottom edges
		centered(1400, 150, wallThickness, spawnWallShort),
		centered(200, 150, wallThickness, spawnWallShort),
		centered(800, 105, wallThickness, spawnWallLong),
		centered(1400, 850, wallThickness, spawnWallShort),
		centered(200, 850, wallThickness, spawnWallShort),
		centered(800, 895, wallThickness, spawnWallLong),

		// Horizontal stubs from the side edges
		centered(1495, 200, spawnWallLong, wallThickness),
		centered(1495, 800, spawnWallLong, wallThickness),
		centered(105, 200, spawnWallLong, wallThickness),
		centered(105, 800, spawnWallLong, wallThickness),

		// Middle bars
		centered(1100, 500, middleWallLength, wallThickness),
		centered(500, 500, middleWallLength, wallThickness),
	}

	return &ArenaData{
		Name:  "default",
		Walls: walls,
		SpawnPoints: []SpawnPoint{
			{X: 100, Y: 100, Index: 0},
			{X: 1500, Y: 100, Index: 1},
			{X: 100, Y: 900, Index: 2},
			{X: 1500, Y: 900, Index: 3},
		},
		Width:  defaultWidth,
		Height: defaultHeight,
	}
}
