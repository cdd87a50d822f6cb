package worldgen

import (
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/random"
)

// ArenaSize is the edge length of every battle grid
const ArenaSize = 8

// Spawn points on the arena, in party and enemy order
var (
	PlayerSpawns = []entities.GridPos{{X: 3, Z: 7}, {X: 2, Z: 6}, {X: 4, Z: 6}}
	EnemySpawns  = []entities.GridPos{{X: 4, Z: 2}, {X: 3, Z: 3}, {X: 5, Z: 2}}
)

// arena layout by [z][x]: 1 is a wall block
var arenaTemplate = [ArenaSize][ArenaSize]int{
	{1, 1, 0, 0, 0, 0, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 0, 0, 0, 0, 1, 1},
}

const (
	floorHeight    = 1.0
	obstacleHeight = 2.0
)

// keepClear covers the spawn blocks of both sides
func keepClear(p entities.GridPos) bool {
	if p.Z >= 6 && p.X >= 2 && p.X <= 4 {
		return true
	}
	if p.Z >= 2 && p.Z <= 3 && p.X >= 3 && p.X <= 4 {
		return true
	}
	for _, s := range EnemySpawns {
		if s == p {
			return true
		}
	}
	return false
}

// GenerateArena builds the battle grid: fixed corner walls plus either four
// pillars or a centre block of cover. Spawn cells are always open.
// Terrain only matters to the renderer.
func GenerateArena(_ entities.TerrainType, src random.Source) *entities.BattleGrid {
	layout := arenaTemplate
	if random.Chance(src, 0.5) {
		layout[2][2], layout[2][5], layout[5][2], layout[5][5] = 1, 1, 1, 1
	} else {
		layout[3][3], layout[3][4], layout[4][3], layout[4][4] = 1, 1, 1, 1
	}

	grid := &entities.BattleGrid{Size: ArenaSize, Cells: make([]entities.BattleCell, 0, ArenaSize*ArenaSize)}
	for z := 0; z < ArenaSize; z++ {
		for x := 0; x < ArenaSize; x++ {
			cell := entities.BattleCell{X: x, Z: z, Height: floorHeight}
			if layout[z][x] == 1 && !keepClear(entities.GridPos{X: x, Z: z}) {
				cell.Height = obstacleHeight
				cell.IsObstacle = true
			}
			grid.Cells = append(grid.Cells, cell)
		}
	}
	return grid
}

// FlatArena is an open grid with no cover
func FlatArena() *entities.BattleGrid {
	grid := &entities.BattleGrid{Size: ArenaSize, Cells: make([]entities.BattleCell, 0, ArenaSize*ArenaSize)}
	for z := 0; z < ArenaSize; z++ {
		for x := 0; x < ArenaSize; x++ {
			grid.Cells = append(grid.Cells, entities.BattleCell{X: x, Z: z, Height: floorHeight})
		}
	}
	return grid
}
