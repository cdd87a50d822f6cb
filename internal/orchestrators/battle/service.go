// Package battle runs tactical encounters: initiative, action legality,
// attack and spell resolution, enemy turns and the victory or defeat
// outcome.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/rpg-tactics/internal/orchestrators/battle Service

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/logger"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/random"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/schedule"
	"github.com/KirkDiggler/rpg-tactics/internal/services/spellbook"
	"github.com/KirkDiggler/rpg-tactics/internal/worldgen"
)

// Service defines the battle operations
type Service interface {
	// Lifecycle
	Start(ctx context.Context, input *StartInput) (*ActionOutput, error)
	GetEncounter(ctx context.Context, input *EncounterInput) (*GetEncounterOutput, error)
	Close(ctx context.Context, input *EncounterInput) error

	// Player input
	SelectAction(ctx context.Context, input *SelectActionInput) (*ActionOutput, error)
	SelectSpell(ctx context.Context, input *SelectSpellInput) (*ActionOutput, error)
	InteractTile(ctx context.Context, input *InteractTileInput) (*ActionOutput, error)
	AttemptRun(ctx context.Context, input *EncounterInput) (*ActionOutput, error)
	UseItem(ctx context.Context, input *UseItemInput) (*ActionOutput, error)
	EndTurn(ctx context.Context, input *EncounterInput) (*ActionOutput, error)

	// Time
	Advance(ctx context.Context, input *AdvanceInput) (*ActionOutput, error)

	// Queries
	PredictAttack(ctx context.Context, input *PredictAttackInput) (*PredictAttackOutput, error)
}

// Timing holds the delays, in ticks, before scheduled transitions fire
type Timing struct {
	// AIDelay is the pause before an enemy acts
	AIDelay int64
	// AIEndDelay is the pause between an enemy acting and the next turn
	AIEndDelay int64
	// SettleDelay is the pause between the last blow and the outcome
	SettleDelay int64
}

// DefaultTiming is tuned for 100ms ticks
var DefaultTiming = Timing{AIDelay: 10, AIEndDelay: 8, SettleDelay: 10}

// Flee succeeds when a uniform draw exceeds this
const fleeThreshold = 0.2

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Engine      engine.Engine
	Spellbook   spellbook.Service
	Random      random.Source
	IDGenerator idgen.Generator
	// EventBus is optional. When set, resolutions published by the engine
	// are traced in the debug log.
	EventBus events.EventBus
	// Timing is optional and defaults to DefaultTiming
	Timing *Timing
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Spellbook == nil {
		vb.RequiredField("Spellbook")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Timing != nil && (c.Timing.AIDelay < 0 || c.Timing.AIEndDelay < 0 || c.Timing.SettleDelay < 0) {
		vb.InvalidField("Timing", "delays must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	engine    engine.Engine
	spellbook spellbook.Service
	rng       random.Source
	idGen     idgen.Generator
	timing    Timing
	log       *logrus.Entry

	mu         sync.Mutex
	encounters map[string]*Encounter
}

// NewOrchestrator creates a battle orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		engine:     cfg.Engine,
		spellbook:  cfg.Spellbook,
		rng:        cfg.Random,
		idGen:      cfg.IDGenerator,
		timing:     DefaultTiming,
		log:        logger.Component("battle"),
		encounters: make(map[string]*Encounter),
	}
	if cfg.Timing != nil {
		o.timing = *cfg.Timing
	}
	if cfg.EventBus != nil {
		for _, et := range []string{engine.EventAttackResolved, engine.EventSpellResolved} {
			cfg.EventBus.SubscribeFunc(et, 0, func(_ context.Context, e events.Event) error {
				o.log.WithField("event", e.Type()).Debug("resolution")
				return nil
			})
		}
	}
	return o, nil
}

// Start builds an encounter from the living party and a freshly spawned
// enemy group and rolls initiative
func (o *orchestrator) Start(ctx context.Context, input *StartInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Party) == 0 {
		return nil, errors.InvalidArgument("party is required")
	}

	enc := &Encounter{
		ID:         o.idGen.Generate(),
		Terrain:    input.Terrain,
		Weather:    input.Weather,
		Dimension:  input.Dimension,
		Difficulty: input.Difficulty,
		Round:      1,
		queue:      schedule.New[transition](),
	}

	for i, member := range input.Party {
		if member == nil || !member.Alive() {
			continue
		}
		c := member.Clone()
		c.Stats = o.engine.Recompute(c.Stats, c.Equipment)
		c.Position = worldgen.PlayerSpawns[0]
		if i < len(worldgen.PlayerSpawns) {
			c.Position = worldgen.PlayerSpawns[i]
		}
		enc.Entities = append(enc.Entities, c)
	}
	if len(enc.Entities) == 0 {
		return nil, errors.FailedPrecondition("party has no living members")
	}

	sp := o.spawnEnemies(input.Party, input.Dimension, input.Difficulty)
	enc.EnemyLevel = sp.level
	enc.RunAvailable = sp.runAvailable
	enc.Rewards = sp.rewards

	enc.Grid = input.Grid
	if enc.Grid == nil {
		enc.Grid = worldgen.GenerateArena(input.Terrain, o.rng)
	}

	for i, enemy := range sp.enemies {
		enemy.ID = o.idGen.Generate()
		enemy.Position = worldgen.EnemySpawns[0]
		if i < len(worldgen.EnemySpawns) {
			enemy.Position = worldgen.EnemySpawns[i]
		}
		enc.Entities = append(enc.Entities, enemy)
	}

	initiative, err := o.engine.RollInitiative(ctx, &engine.RollInitiativeInput{Combatants: enc.Entities})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll initiative")
	}
	enc.TurnOrder = initiative.IDs()

	out := &ActionOutput{Accepted: true}
	out.Events.AddLog(enc.Tick(), entities.LogCombat,
		fmt.Sprintf("Encounter! %d enemies (Lv %d).", len(sp.enemies), sp.level))

	if first := enc.CurrentActor(); first != nil && first.Type == entities.EntityEnemy {
		enc.queue.Schedule(o.timing.AIDelay, transition{kind: transitionEnemyTurn, actorID: first.ID})
	} else {
		enc.SelectedAction = entities.ActionMove
	}

	o.mu.Lock()
	o.encounters[enc.ID] = enc
	o.mu.Unlock()

	o.log.WithFields(logrus.Fields{
		"encounter_id": enc.ID,
		"enemies":      len(sp.enemies),
		"enemy_level":  sp.level,
		"dimension":    enc.Dimension,
	}).Info("encounter started")

	out.Encounter = enc.Clone()
	return out, nil
}

func (o *orchestrator) GetEncounter(_ context.Context, input *EncounterInput) (*GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	enc, err := o.lookup(input.EncounterID)
	if err != nil {
		return nil, err
	}
	return &GetEncounterOutput{Encounter: enc.Clone()}, nil
}

func (o *orchestrator) Close(_ context.Context, input *EncounterInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	enc, err := o.lookup(input.EncounterID)
	if err != nil {
		return err
	}
	enc.queue.Clear()
	delete(o.encounters, input.EncounterID)
	return nil
}

// lookup must be called with mu held
func (o *orchestrator) lookup(id string) (*Encounter, error) {
	if id == "" {
		return nil, errors.InvalidArgument("encounter id is required")
	}
	enc, ok := o.encounters[id]
	if !ok {
		return nil, errors.NotFoundf("encounter %s not found", id)
	}
	return enc, nil
}

// withPlayerTurn runs fn against an active encounter whose current actor is
// a player. Anything else declines without error.
func (o *orchestrator) withPlayerTurn(
	id string,
	fn func(enc *Encounter, actor *entities.Combatant, out *ActionOutput) error,
) (*ActionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	enc, err := o.lookup(id)
	if err != nil {
		return nil, err
	}

	out := &ActionOutput{}
	actor := enc.CurrentActor()
	if enc.Active() && actor != nil && actor.Type == entities.EntityPlayer && actor.Alive() {
		if err := fn(enc, actor, out); err != nil {
			return nil, err
		}
	}
	out.Encounter = enc.Clone()
	return out, nil
}

func (o *orchestrator) spellFor(ctx context.Context, class, spellID string) (*entities.Spell, bool, error) {
	res, err := o.spellbook.Lookup(ctx, &spellbook.LookupInput{Class: class, SpellID: spellID})
	if err != nil {
		if errors.IsNotFound(err) || errors.IsInvalidArgument(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "failed to look up spell")
	}
	return res.Spell, res.Known, nil
}

// baseAttributes for spawned enemies
var enemyAttributes = dnd5e.BaseStats(dnd5e.ClassFighter)
