package entities

// GridPos is a square battle grid coordinate
type GridPos struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// Chebyshev is the 8-directional step distance
func (p GridPos) Chebyshev(o GridPos) int {
	dx := abs(p.X - o.X)
	dz := abs(p.Z - o.Z)
	if dx > dz {
		return dx
	}
	return dz
}

// Manhattan is the 4-directional step distance
func (p GridPos) Manhattan(o GridPos) int {
	return abs(p.X-o.X) + abs(p.Z-o.Z)
}

// BattleCell is one tile of the tactical arena
type BattleCell struct {
	X          int     `json:"x"`
	Z          int     `json:"z"`
	Height     float64 `json:"height"`
	OffsetY    float64 `json:"offset_y"`
	IsObstacle bool    `json:"is_obstacle"`
}

// Elevation is the top surface of the cell
func (c *BattleCell) Elevation() float64 {
	return c.OffsetY + c.Height
}

// BattleGrid is a square arena stored row by row (z major)
type BattleGrid struct {
	Size  int          `json:"size"`
	Cells []BattleCell `json:"cells"`
}

// Cell returns the cell at p
func (g *BattleGrid) Cell(p GridPos) (*BattleCell, bool) {
	if g == nil || p.X < 0 || p.Z < 0 || p.X >= g.Size || p.Z >= g.Size {
		return nil, false
	}
	i := p.Z*g.Size + p.X
	if i >= len(g.Cells) {
		return nil, false
	}
	return &g.Cells[i], true
}

// ActionType is a battle menu choice
type ActionType string

// Battle actions
const (
	ActionNone   ActionType = ""
	ActionMove   ActionType = "MOVE"
	ActionAttack ActionType = "ATTACK"
	ActionMagic  ActionType = "MAGIC"
	ActionItem   ActionType = "ITEM"
	ActionWait   ActionType = "WAIT"
	ActionRun    ActionType = "RUN"
)

// BattleOutcome is the terminal state of an encounter
type BattleOutcome string

// Outcomes
const (
	OutcomeNone    BattleOutcome = ""
	OutcomeVictory BattleOutcome = "VICTORY"
	OutcomeDefeat  BattleOutcome = "DEFEAT"
	OutcomeFled    BattleOutcome = "FLED"
)

// Rewards granted on victory
type Rewards struct {
	XP    int     `json:"xp"`
	Gold  int     `json:"gold"`
	Items []*Item `json:"items,omitempty"`
}
