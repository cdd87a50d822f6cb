package session

import (
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/schedule"
	"github.com/KirkDiggler/rpg-tactics/internal/repositories/chronicle"
)

// live is a session plus its in-flight travel
type live struct {
	sess  *entities.Session
	queue *schedule.Queue[travelStep]
	// path holds the steps not yet taken
	path []entities.Hex
}

type travelStep struct{}

func (l *live) moving() bool {
	return len(l.path) > 0
}

// cancelTravel drops any remaining steps
func (l *live) cancelTravel() {
	l.path = nil
	l.queue.Clear()
}

// NewSessionInput is the request for NewSession. Zero sizes use the world
// generator defaults and an empty difficulty means NORMAL.
type NewSessionInput struct {
	Width      int
	Height     int
	Difficulty entities.Difficulty
}

// SessionInput addresses one session
type SessionInput struct {
	SessionID string
}

// CreateCharacterInput describes the party leader. Scores are the point-buy
// purchase before the +2 and +1 floating bonuses.
type CreateCharacterInput struct {
	SessionID  string
	Name       string
	Race       string
	Class      string
	Scores     entities.Attributes
	PlusTwo    entities.Ability
	PlusOne    entities.Ability
	Difficulty entities.Difficulty
}

// MoveInput is the request for MoveOverworld
type MoveInput struct {
	SessionID string
	Target    entities.Hex
}

// SelectActionInput forwards a battle menu choice
type SelectActionInput struct {
	SessionID string
	Action    entities.ActionType
}

// SelectSpellInput forwards a spell choice
type SelectSpellInput struct {
	SessionID string
	SpellID   string
}

// InteractTileInput forwards a battle grid click
type InteractTileInput struct {
	SessionID string
	Position  entities.GridPos
}

// AdvanceInput moves the session clock
type AdvanceInput struct {
	SessionID string
	Ticks     int64
}

// ConsumeItemInput uses one item from the pack. CharacterID is ignored in
// battle, where the acting player drinks it. Outside battle an empty
// CharacterID means the leader.
type ConsumeItemInput struct {
	SessionID   string
	ItemID      string
	CharacterID string
}

// EquipInput moves an item from the pack onto a party member
type EquipInput struct {
	SessionID   string
	ItemID      string
	CharacterID string
}

// UnequipInput moves a worn item back into the pack
type UnequipInput struct {
	SessionID   string
	CharacterID string
	Slot        entities.EquipmentSlot
}

// ActionOutput is the session after a transition and what it emitted.
// Encounter is set while a battle is open.
type ActionOutput struct {
	Session   *entities.Session
	Encounter *battle.Encounter
	Accepted  bool
	Events    entities.Events
}

// HistoryOutput lists the session's past battles, newest first
type HistoryOutput struct {
	Entries []*chronicle.Entry
}
