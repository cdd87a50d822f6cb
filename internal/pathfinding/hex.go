package pathfinding

import (
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

var axialDirections = [6]entities.Hex{
	{Q: 1, R: 0}, {Q: -1, R: 0},
	{Q: 0, R: 1}, {Q: 0, R: -1},
	{Q: 1, R: -1}, {Q: -1, R: 1},
}

// cheapest terrain to enter; the heuristic is scaled by it so it never
// overestimates
const minHexCost = 0.8

// HexGrid searches an overworld or town map. Entering a cell costs its
// terrain movement cost.
type HexGrid struct {
	m *entities.HexMap
}

var _ Graph[entities.Hex] = (*HexGrid)(nil)

// NewHexGrid wraps m
func NewHexGrid(m *entities.HexMap) *HexGrid {
	return &HexGrid{m: m}
}

// Contains implements Graph
func (g *HexGrid) Contains(h entities.Hex) bool {
	_, ok := g.m.Cell(h)
	return ok
}

// Passable implements Graph
func (g *HexGrid) Passable(h entities.Hex) bool {
	c, ok := g.m.Cell(h)
	return ok && c.Terrain.Passable()
}

// Neighbors implements Graph
func (g *HexGrid) Neighbors(h entities.Hex) []Edge[entities.Hex] {
	edges := make([]Edge[entities.Hex], 0, len(axialDirections))
	for _, d := range axialDirections {
		n := entities.Hex{Q: h.Q + d.Q, R: h.R + d.R}
		c, ok := g.m.Cell(n)
		if !ok {
			continue
		}
		cost := c.Terrain.MovementCost()
		if cost >= entities.ImpassableCost {
			continue
		}
		edges = append(edges, Edge[entities.Hex]{To: n, Cost: cost})
	}
	return edges
}

// Heuristic implements Graph
func (g *HexGrid) Heuristic(a, b entities.Hex) float64 {
	return float64(a.Distance(b)) * minHexCost
}

// FindHexPath is FindPath over m
func FindHexPath(m *entities.HexMap, start, goal entities.Hex) ([]entities.Hex, bool) {
	return FindPath[entities.Hex](NewHexGrid(m), start, goal)
}
