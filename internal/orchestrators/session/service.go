// Package session is the top level state machine of a play session:
// character creation, overworld and town exploration, portals and the hand
// off to and from the battle engine.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/logger"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/random"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/schedule"
	"github.com/KirkDiggler/rpg-tactics/internal/repositories/chronicle"
	sessionrepo "github.com/KirkDiggler/rpg-tactics/internal/repositories/session"
	"github.com/KirkDiggler/rpg-tactics/internal/worldgen"
)

// Service defines the session operations
type Service interface {
	// Lifecycle
	NewSession(ctx context.Context, input *NewSessionInput) (*ActionOutput, error)
	GetSession(ctx context.Context, input *SessionInput) (*ActionOutput, error)
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*ActionOutput, error)
	QuitToMenu(ctx context.Context, input *SessionInput) (*ActionOutput, error)

	// Exploration
	MoveOverworld(ctx context.Context, input *MoveInput) (*ActionOutput, error)
	UsePortal(ctx context.Context, input *SessionInput) (*ActionOutput, error)
	EnterSettlement(ctx context.Context, input *SessionInput) (*ActionOutput, error)
	ExitSettlement(ctx context.Context, input *SessionInput) (*ActionOutput, error)

	// Battle
	SelectAction(ctx context.Context, input *SelectActionInput) (*ActionOutput, error)
	SelectSpell(ctx context.Context, input *SelectSpellInput) (*ActionOutput, error)
	InteractTile(ctx context.Context, input *InteractTileInput) (*ActionOutput, error)
	AttemptRun(ctx context.Context, input *SessionInput) (*ActionOutput, error)
	EndTurn(ctx context.Context, input *SessionInput) (*ActionOutput, error)
	ContinueAfterVictory(ctx context.Context, input *SessionInput) (*ActionOutput, error)
	RestartBattle(ctx context.Context, input *SessionInput) (*ActionOutput, error)

	// Party
	ConsumeItem(ctx context.Context, input *ConsumeItemInput) (*ActionOutput, error)
	Equip(ctx context.Context, input *EquipInput) (*ActionOutput, error)
	Unequip(ctx context.Context, input *UnequipInput) (*ActionOutput, error)

	// Time
	Advance(ctx context.Context, input *AdvanceInput) (*ActionOutput, error)

	// Persistence
	Save(ctx context.Context, input *SessionInput) (*ActionOutput, error)
	Load(ctx context.Context, input *SessionInput) (*ActionOutput, error)
	History(ctx context.Context, input *SessionInput) (*HistoryOutput, error)
}

// DefaultStepDelay is the pause between overworld steps, in 100ms ticks
const DefaultStepDelay int64 = 2

// View distances in hexes
const (
	viewRadius       = 2.0
	shadowViewRadius = 1.5
)

// maxLog bounds the session log kept for the presentation layer
const maxLog = 200

// Config holds the dependencies for the session orchestrator
type Config struct {
	Generator   worldgen.Generator
	Battle      battle.Service
	Engine      engine.Engine
	Random      random.Source
	IDGenerator idgen.Generator

	// Repository is optional. Save and Load fail without it.
	Repository sessionrepo.Repository
	// Chronicle is optional. When set every finished battle is recorded.
	Chronicle chronicle.Repository

	// StepDelay defaults to DefaultStepDelay
	StepDelay int64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Battle == nil {
		vb.RequiredField("Battle")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.StepDelay < 0 {
		vb.Field("StepDelay", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	generator worldgen.Generator
	battle    battle.Service
	engine    engine.Engine
	rng       random.Source
	idGen     idgen.Generator
	repo      sessionrepo.Repository
	chronicle chronicle.Repository
	stepDelay int64
	log       *logrus.Entry

	mu       sync.Mutex
	sessions map[string]*live
}

// NewOrchestrator creates a session orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		generator: cfg.Generator,
		battle:    cfg.Battle,
		engine:    cfg.Engine,
		rng:       cfg.Random,
		idGen:     cfg.IDGenerator,
		repo:      cfg.Repository,
		chronicle: cfg.Chronicle,
		stepDelay: cfg.StepDelay,
		log:       logger.Component("session"),
		sessions:  make(map[string]*live),
	}
	if o.stepDelay == 0 {
		o.stepDelay = DefaultStepDelay
	}
	return o, nil
}

// NewSession generates both worlds and waits for character creation
func (o *orchestrator) NewSession(ctx context.Context, input *NewSessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = entities.DifficultyNormal
	}
	if !difficulty.Valid() {
		return nil, errors.InvalidArgumentf("unknown difficulty %q", difficulty)
	}

	worlds, err := o.generator.Generate(ctx, &worldgen.GenerateInput{
		Width:            input.Width,
		Height:           input.Height,
		EncounterRateMod: difficulty.Settings().EncounterRateMod,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate worlds")
	}

	sess := &entities.Session{
		ID:         o.idGen.Generate(),
		Phase:      entities.PhaseCharacterCreation,
		Difficulty: difficulty,
		Dimension:  entities.DimensionNormal,
		Normal:     worlds.Normal,
		Shadow:     worlds.Shadow,
		Position:   worldgen.SpawnHex,
	}

	o.mu.Lock()
	o.sessions[sess.ID] = &live{sess: sess, queue: schedule.New[travelStep]()}
	o.mu.Unlock()

	o.log.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"width":      worlds.Normal.Width,
		"height":     worlds.Normal.Height,
	}).Info("session created")

	return &ActionOutput{Session: sess.Clone(), Accepted: true}, nil
}

func (o *orchestrator) GetSession(ctx context.Context, input *SessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withSession(ctx, input.SessionID, func(*live, *ActionOutput) error { return nil })
}

// CreateCharacter builds the leader from a point-buy array, adds two
// companions chosen by the leader's class and enters the overworld
func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if !dnd5e.ValidRace(input.Race) {
		vb.InvalidField("Race", input.Race)
	}
	if !dnd5e.ValidClass(input.Class) {
		vb.InvalidField("Class", input.Class)
	}
	if input.Difficulty != "" && !input.Difficulty.Valid() {
		vb.InvalidField("Difficulty", string(input.Difficulty))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := dnd5e.ValidatePointBuy(input.Scores, input.PlusTwo, input.PlusOne); err != nil {
		return nil, err
	}

	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		sess := l.sess
		if sess.Phase != entities.PhaseCharacterCreation {
			return nil
		}

		base := dnd5e.ApplyFloatingBonus(input.Scores, input.PlusTwo, input.PlusOne)
		leader := o.newMember(input.Name, input.Race, input.Class, base, dnd5e.StartingEquipment(input.Class))
		party := []*entities.Combatant{leader}
		for _, c := range dnd5e.Companions(input.Class) {
			attrs := dnd5e.BaseStats(c.Class).Plus(dnd5e.RaceBonus(c.Race))
			party = append(party, o.newMember(c.Name, c.Race, c.Class, attrs, dnd5e.CompanionEquipment(c.Class)))
		}

		if input.Difficulty != "" {
			sess.Difficulty = input.Difficulty
		}
		sess.Party = party
		sess.Inventory = dnd5e.StartingInventory(input.Class)
		sess.Gold = 0
		sess.Dimension = entities.DimensionNormal
		sess.Position = worldgen.SpawnHex
		sess.Normal.Reveal(sess.Position, viewRadius)
		sess.Phase = entities.PhaseOverworld

		out.Accepted = true
		out.Events.AddLog(0, entities.LogNarrative, fmt.Sprintf("The party assembles! %s leads %s and %s.",
			leader.Name, party[1].Name, party[2].Name))

		o.log.WithFields(logrus.Fields{
			"session_id": sess.ID,
			"class":      input.Class,
			"race":       input.Race,
		}).Info("party created")
		return nil
	})
}

func (o *orchestrator) newMember(
	name, race, class string,
	base entities.Attributes,
	equipment map[entities.EquipmentSlot]*entities.Item,
) *entities.Combatant {
	hp := o.engine.MaxHitPoints(1, base.CON, dnd5e.HitDie(class))
	c := &entities.Combatant{
		ID:        o.idGen.Generate(),
		Name:      name,
		Type:      entities.EntityPlayer,
		Equipment: equipment,
		Stats: entities.CombatStats{
			Level:          1,
			Class:          class,
			Race:           race,
			XPToNextLevel:  dnd5e.XPToNextLevel(1),
			HP:             hp,
			MaxHP:          hp,
			Speed:          30,
			BaseAttributes: base,
			SpellSlots:     dnd5e.CasterSlots(class, 1),
		},
	}
	c.Stats = o.engine.Recompute(c.Stats, c.Equipment)
	return c
}

// QuitToMenu abandons the party and returns to character creation. The
// worlds and what has been explored of them are kept.
func (o *orchestrator) QuitToMenu(ctx context.Context, input *SessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		if err := o.closeBattle(ctx, l); err != nil {
			return err
		}
		l.cancelTravel()

		sess := l.sess
		sess.Phase = entities.PhaseCharacterCreation
		sess.Party = nil
		sess.Inventory = nil
		sess.Gold = 0
		sess.Town = nil
		sess.LastOverworldPos = nil
		sess.StandingOnPortal = false
		sess.StandingOnSettlement = false
		sess.Log = nil
		out.Accepted = true
		return nil
	})
}

// lookup must be called with mu held
func (o *orchestrator) lookup(id string) (*live, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session id is required")
	}
	l, ok := o.sessions[id]
	if !ok {
		return nil, errors.NotFoundf("session %s not found", id)
	}
	return l, nil
}

// withSession runs fn under the lock and snapshots the result. Events fn
// emits are appended to the session log.
func (o *orchestrator) withSession(ctx context.Context, id string, fn func(l *live, out *ActionOutput) error) (*ActionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	l, err := o.lookup(id)
	if err != nil {
		return nil, err
	}

	out := &ActionOutput{}
	if err := fn(l, out); err != nil {
		return nil, err
	}

	sess := l.sess
	sess.Log = append(sess.Log, out.Events.Log...)
	if n := len(sess.Log); n > maxLog {
		sess.Log = append([]entities.LogEntry(nil), sess.Log[n-maxLog:]...)
	}

	out.Session = sess.Clone()
	if out.Encounter == nil && sess.EncounterID != "" {
		enc, err := o.battle.GetEncounter(ctx, &battle.EncounterInput{EncounterID: sess.EncounterID})
		if err != nil && !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to get encounter")
		}
		if enc != nil {
			out.Encounter = enc.Encounter
		}
	}
	return out, nil
}
