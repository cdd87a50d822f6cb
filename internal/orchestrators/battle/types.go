package battle

import (
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/schedule"
)

// Encounter is the full state of one battle. The service owns it; callers
// receive copies.
type Encounter struct {
	ID         string                `json:"id"`
	Terrain    entities.TerrainType  `json:"terrain"`
	Weather    entities.Weather      `json:"weather"`
	Dimension  entities.Dimension    `json:"dimension"`
	Difficulty entities.Difficulty   `json:"difficulty"`
	Grid       *entities.BattleGrid  `json:"grid"`
	Entities   []*entities.Combatant `json:"entities"`

	TurnOrder        []string `json:"turn_order"`
	CurrentTurnIndex int      `json:"current_turn_index"`
	Round            int      `json:"round"`

	HasMoved       bool                `json:"has_moved"`
	HasActed       bool                `json:"has_acted"`
	SelectedAction entities.ActionType `json:"selected_action,omitempty"`
	SelectedSpell  *entities.Spell     `json:"selected_spell,omitempty"`
	SelectedTile   *entities.GridPos   `json:"selected_tile,omitempty"`

	EnemyLevel   int                    `json:"enemy_level"`
	RunAvailable bool                   `json:"run_available"`
	Rewards      entities.Rewards       `json:"rewards"`
	Pending      entities.BattleOutcome `json:"pending,omitempty"`
	Outcome      entities.BattleOutcome `json:"outcome,omitempty"`

	queue *schedule.Queue[transition]
}

// CurrentActor is the entity whose turn it is
func (e *Encounter) CurrentActor() *entities.Combatant {
	if e.CurrentTurnIndex < 0 || e.CurrentTurnIndex >= len(e.TurnOrder) {
		return nil
	}
	return e.Entity(e.TurnOrder[e.CurrentTurnIndex])
}

// Entity finds a combatant by id
func (e *Encounter) Entity(id string) *entities.Combatant {
	for _, c := range e.Entities {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// EntityAt returns the living combatant standing on p
func (e *Encounter) EntityAt(p entities.GridPos) *entities.Combatant {
	for _, c := range e.Entities {
		if c.Alive() && c.Position == p {
			return c
		}
	}
	return nil
}

// Living returns living combatants of type t in entity order
func (e *Encounter) Living(t entities.EntityType) []*entities.Combatant {
	var out []*entities.Combatant
	for _, c := range e.Entities {
		if c.Type == t && c.Alive() {
			out = append(out, c)
		}
	}
	return out
}

// Active reports whether the encounter still takes input
func (e *Encounter) Active() bool {
	return e.Outcome == entities.OutcomeNone && e.Pending == entities.OutcomeNone
}

// Tick is the encounter clock
func (e *Encounter) Tick() int64 {
	if e.queue == nil {
		return 0
	}
	return e.queue.Now()
}

// Clone deep-copies everything a caller may look at
func (e *Encounter) Clone() *Encounter {
	if e == nil {
		return nil
	}
	out := *e
	out.queue = nil
	if e.Grid != nil {
		grid := *e.Grid
		grid.Cells = append([]entities.BattleCell(nil), e.Grid.Cells...)
		out.Grid = &grid
	}
	out.Entities = make([]*entities.Combatant, len(e.Entities))
	for i, c := range e.Entities {
		out.Entities[i] = c.Clone()
	}
	out.TurnOrder = append([]string(nil), e.TurnOrder...)
	out.Rewards.Items = append([]*entities.Item(nil), e.Rewards.Items...)
	if e.SelectedSpell != nil {
		spell := *e.SelectedSpell
		out.SelectedSpell = &spell
	}
	if e.SelectedTile != nil {
		tile := *e.SelectedTile
		out.SelectedTile = &tile
	}
	return &out
}

type transitionKind int

const (
	transitionEnemyTurn transitionKind = iota
	transitionEndTurn
	transitionSettle
)

// transition is a delayed state change waiting in the encounter queue
type transition struct {
	kind    transitionKind
	actorID string
	outcome entities.BattleOutcome
}

// StartInput defines the request for starting an encounter
type StartInput struct {
	Party      []*entities.Combatant
	Terrain    entities.TerrainType
	Weather    entities.Weather
	Dimension  entities.Dimension
	Difficulty entities.Difficulty
	// Grid is optional; a fresh arena is generated when nil
	Grid *entities.BattleGrid
}

// EncounterInput addresses an existing encounter
type EncounterInput struct {
	EncounterID string
}

// SelectActionInput defines the request for SelectAction
type SelectActionInput struct {
	EncounterID string
	Action      entities.ActionType
}

// SelectSpellInput defines the request for SelectSpell
type SelectSpellInput struct {
	EncounterID string
	SpellID     string
}

// InteractTileInput defines the request for InteractTile
type InteractTileInput struct {
	EncounterID string
	Position    entities.GridPos
}

// UseItemInput defines the request for UseItem. The caller owns the
// inventory and removes the item only when the use is accepted.
type UseItemInput struct {
	EncounterID string
	Item        *entities.Item
}

// AdvanceInput defines the request for Advance
type AdvanceInput struct {
	EncounterID string
	Ticks       int64
}

// PredictAttackInput defines the request for PredictAttack
type PredictAttackInput struct {
	EncounterID string
	TargetID    string
}

// PredictAttackOutput is what the current actor can expect from a weapon
// attack on the target
type PredictAttackOutput struct {
	HitChance   float64
	CritChance  float64
	AttackBonus int
	MinDamage   int
	MaxDamage   int
}

// ActionOutput is returned by every state transition. Accepted is false
// when the action was not legal; nothing changed in that case.
type ActionOutput struct {
	Encounter *Encounter
	Accepted  bool
	// Confirmed is set by InteractTile when the click resolved an action
	// rather than selecting the tile
	Confirmed bool
	Events    entities.Events
}

// GetEncounterOutput defines the response for GetEncounter
type GetEncounterOutput struct {
	Encounter *Encounter
}
