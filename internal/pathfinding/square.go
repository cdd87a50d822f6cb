package pathfinding

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

// MaxClimb is the largest elevation change a single step may make
const MaxClimb = 1.0

var squareDirections = [8]entities.GridPos{
	{X: 1, Z: 0}, {X: -1, Z: 0}, {X: 0, Z: 1}, {X: 0, Z: -1},
	{X: 1, Z: 1}, {X: 1, Z: -1}, {X: -1, Z: 1}, {X: -1, Z: -1},
}

// SquareGrid searches the battle arena. Every step costs 1 including
// diagonals.
type SquareGrid struct {
	grid     *entities.BattleGrid
	occupied mapset.Set[entities.GridPos]
}

var _ Graph[entities.GridPos] = (*SquareGrid)(nil)

// NewSquareGrid wraps grid
func NewSquareGrid(grid *entities.BattleGrid) *SquareGrid {
	return &SquareGrid{grid: grid, occupied: mapset.New[entities.GridPos]()}
}

// Occupy marks cells that cannot be stepped through or onto. Leave the goal
// out when searching toward a unit.
func (g *SquareGrid) Occupy(cells ...entities.GridPos) *SquareGrid {
	for _, c := range cells {
		g.occupied.Put(c)
	}
	return g
}

// Contains implements Graph
func (g *SquareGrid) Contains(p entities.GridPos) bool {
	_, ok := g.grid.Cell(p)
	return ok
}

// Passable implements Graph
func (g *SquareGrid) Passable(p entities.GridPos) bool {
	c, ok := g.grid.Cell(p)
	return ok && !c.IsObstacle
}

// Neighbors implements Graph
func (g *SquareGrid) Neighbors(p entities.GridPos) []Edge[entities.GridPos] {
	from, ok := g.grid.Cell(p)
	if !ok {
		return nil
	}
	edges := make([]Edge[entities.GridPos], 0, len(squareDirections))
	for _, d := range squareDirections {
		n := entities.GridPos{X: p.X + d.X, Z: p.Z + d.Z}
		to, ok := g.grid.Cell(n)
		if !ok || to.IsObstacle || g.occupied.Has(n) {
			continue
		}
		if math.Abs(to.Elevation()-from.Elevation()) > MaxClimb {
			continue
		}
		edges = append(edges, Edge[entities.GridPos]{To: n, Cost: 1})
	}
	return edges
}

// Heuristic implements Graph
func (g *SquareGrid) Heuristic(a, b entities.GridPos) float64 {
	return float64(a.Chebyshev(b))
}
