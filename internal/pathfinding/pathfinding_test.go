package pathfinding_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/pathfinding"
	"github.com/KirkDiggler/rpg-tactics/internal/worldgen"
)

func hexMap(w, h int, terrain entities.TerrainType) *entities.HexMap {
	m := &entities.HexMap{Width: w, Height: h}
	for r := 0; r < h; r++ {
		for q := 0; q < w; q++ {
			m.Cells = append(m.Cells, entities.HexCell{Q: q, R: r, Terrain: terrain})
		}
	}
	return m
}

func setTerrain(m *entities.HexMap, t entities.TerrainType, hexes ...entities.Hex) {
	for _, h := range hexes {
		c, _ := m.Cell(h)
		c.Terrain = t
	}
}

type PathfindingTestSuite struct {
	suite.Suite
}

func TestPathfindingSuite(t *testing.T) {
	suite.Run(t, new(PathfindingTestSuite))
}

func (s *PathfindingTestSuite) TestStartIsGoal() {
	m := hexMap(5, 5, entities.TerrainGrass)
	path, ok := pathfinding.FindHexPath(m, entities.Hex{Q: 2, R: 2}, entities.Hex{Q: 2, R: 2})
	s.Assert().True(ok)
	s.Assert().NotNil(path)
	s.Assert().Empty(path)
}

func (s *PathfindingTestSuite) TestImpassableOrMissingGoal() {
	m := hexMap(5, 5, entities.TerrainGrass)
	setTerrain(m, entities.TerrainWater, entities.Hex{Q: 4, R: 4})

	path, ok := pathfinding.FindHexPath(m, entities.Hex{Q: 0, R: 0}, entities.Hex{Q: 4, R: 4})
	s.Assert().False(ok)
	s.Assert().Nil(path)

	path, ok = pathfinding.FindHexPath(m, entities.Hex{Q: 0, R: 0}, entities.Hex{Q: 9, R: 9})
	s.Assert().False(ok)
	s.Assert().Nil(path)
}

func (s *PathfindingTestSuite) TestStraightLine() {
	m := hexMap(6, 1, entities.TerrainGrass)
	path, ok := pathfinding.FindHexPath(m, entities.Hex{Q: 0, R: 0}, entities.Hex{Q: 5, R: 0})
	s.Require().True(ok)
	s.Assert().Equal([]entities.Hex{{Q: 1}, {Q: 2}, {Q: 3}, {Q: 4}, {Q: 5}}, path)
}

func (s *PathfindingTestSuite) TestRoutesAroundWater() {
	m := hexMap(5, 5, entities.TerrainGrass)
	wall := []entities.Hex{{Q: 2, R: 0}, {Q: 2, R: 1}, {Q: 2, R: 2}, {Q: 2, R: 3}}
	setTerrain(m, entities.TerrainWater, wall...)

	start, goal := entities.Hex{Q: 0, R: 1}, entities.Hex{Q: 4, R: 1}
	path, ok := pathfinding.FindHexPath(m, start, goal)
	s.Require().True(ok)
	s.Assert().Equal(goal, path[len(path)-1])

	prev := start
	for _, step := range path {
		c, _ := m.Cell(step)
		s.Assert().True(c.Terrain.Passable(), "path crosses %s at %v", c.Terrain, step)
		s.Assert().Equal(1, prev.Distance(step), "steps must be adjacent")
		prev = step
	}
}

func (s *PathfindingTestSuite) TestUnreachable() {
	m := hexMap(5, 5, entities.TerrainGrass)
	var ring []entities.Hex
	for r := 0; r < 5; r++ {
		ring = append(ring, entities.Hex{Q: 2, R: r})
	}
	setTerrain(m, entities.TerrainWater, ring...)

	path, ok := pathfinding.FindHexPath(m, entities.Hex{Q: 0, R: 0}, entities.Hex{Q: 4, R: 4})
	s.Assert().False(ok)
	s.Assert().Nil(path)
}

func (s *PathfindingTestSuite) TestPrefersCheapTerrain() {
	// mountains along the direct row, road one row down
	m := hexMap(5, 2, entities.TerrainMountain)
	setTerrain(m, entities.TerrainGrass, entities.Hex{Q: 0, R: 0}, entities.Hex{Q: 4, R: 0})
	for q := 0; q < 5; q++ {
		setTerrain(m, entities.TerrainDirtRoad, entities.Hex{Q: q, R: 1})
	}

	grid := pathfinding.NewHexGrid(m)
	start := entities.Hex{Q: 0, R: 0}
	path, ok := pathfinding.FindPath[entities.Hex](grid, start, entities.Hex{Q: 4, R: 0})
	s.Require().True(ok)

	s.Assert().Less(pathfinding.Cost[entities.Hex](grid, start, path), 4*entities.TerrainMountain.MovementCost())
	for _, step := range path[:len(path)-1] {
		c, _ := m.Cell(step)
		s.Assert().Equal(entities.TerrainDirtRoad, c.Terrain)
	}
}

func (s *PathfindingTestSuite) TestDeterministic() {
	m := hexMap(8, 8, entities.TerrainGrass)
	first, ok := pathfinding.FindHexPath(m, entities.Hex{Q: 0, R: 0}, entities.Hex{Q: 7, R: 7})
	s.Require().True(ok)
	for i := 0; i < 5; i++ {
		again, _ := pathfinding.FindHexPath(m, entities.Hex{Q: 0, R: 0}, entities.Hex{Q: 7, R: 7})
		s.Assert().Equal(first, again)
	}
}

func (s *PathfindingTestSuite) TestSquareDiagonal() {
	grid := worldgen.FlatArena()
	path, ok := pathfinding.FindPath[entities.GridPos](pathfinding.NewSquareGrid(grid),
		entities.GridPos{X: 0, Z: 0}, entities.GridPos{X: 3, Z: 3})
	s.Require().True(ok)
	s.Assert().Len(path, 3)
	s.Assert().Equal(entities.GridPos{X: 3, Z: 3}, path[2])
}

func (s *PathfindingTestSuite) TestSquareObstacleGoal() {
	grid := worldgen.FlatArena()
	c, _ := grid.Cell(entities.GridPos{X: 4, Z: 4})
	c.IsObstacle = true

	path, ok := pathfinding.FindPath[entities.GridPos](pathfinding.NewSquareGrid(grid),
		entities.GridPos{X: 0, Z: 0}, entities.GridPos{X: 4, Z: 4})
	s.Assert().False(ok)
	s.Assert().Nil(path)
}

func (s *PathfindingTestSuite) TestSquareClimbLimit() {
	grid := worldgen.FlatArena()
	// a raised column x=3 blocks every route except through its gap
	for z := 0; z < grid.Size; z++ {
		c, _ := grid.Cell(entities.GridPos{X: 3, Z: z})
		c.OffsetY = 1.5
	}
	gap, _ := grid.Cell(entities.GridPos{X: 3, Z: 7})
	gap.OffsetY = 0

	path, ok := pathfinding.FindPath[entities.GridPos](pathfinding.NewSquareGrid(grid),
		entities.GridPos{X: 0, Z: 0}, entities.GridPos{X: 6, Z: 0})
	s.Require().True(ok)
	s.Assert().Contains(path, entities.GridPos{X: 3, Z: 7})

	gap.OffsetY = 1.5
	_, ok = pathfinding.FindPath[entities.GridPos](pathfinding.NewSquareGrid(grid),
		entities.GridPos{X: 0, Z: 0}, entities.GridPos{X: 6, Z: 0})
	s.Assert().False(ok)
}

func (s *PathfindingTestSuite) TestSquareOccupiedCells() {
	grid := worldgen.FlatArena()
	sq := pathfinding.NewSquareGrid(grid).Occupy(entities.GridPos{X: 1, Z: 0}, entities.GridPos{X: 1, Z: 1})

	path, ok := pathfinding.FindPath[entities.GridPos](sq, entities.GridPos{X: 0, Z: 0}, entities.GridPos{X: 2, Z: 0})
	s.Require().True(ok)
	s.Assert().NotContains(path, entities.GridPos{X: 1, Z: 0})
	s.Assert().NotContains(path, entities.GridPos{X: 1, Z: 1})
	s.Assert().Len(path, 4)
}
