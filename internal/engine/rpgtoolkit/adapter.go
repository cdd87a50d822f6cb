// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/logger"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	eventBus   events.EventBus
	diceRoller dice.Roller
	log        *logrus.Entry
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		eventBus:   cfg.EventBus,
		diceRoller: cfg.DiceRoller,
		log:        logger.Component("engine"),
	}, nil
}

// Verify that Adapter implements engine.Engine interface and that
// combatants can ride on toolkit events
var (
	_ engine.Engine = (*Adapter)(nil)
	_ core.Entity   = (*entities.Combatant)(nil)
)

// AbilityModifier calculates the D&D 5e ability modifier for a given score
func (a *Adapter) AbilityModifier(score int) int {
	return engine.AbilityModifier(score)
}

// ProficiencyBonus calculates the D&D 5e proficiency bonus for a given level
func (a *Adapter) ProficiencyBonus(level int) int {
	return engine.ProficiencyBonus(level)
}

// MaxHitPoints returns the fixed hit point total for a level
func (a *Adapter) MaxHitPoints(level, con, hitDie int) int {
	return engine.MaxHitPoints(level, con, hitDie)
}

// Recompute derives equipment dependent stats
func (a *Adapter) Recompute(
	stats entities.CombatStats,
	equipment map[entities.EquipmentSlot]*entities.Item,
) entities.CombatStats {
	return engine.Recompute(stats, equipment)
}

// RollDice rolls an NdS+B expression
func (a *Adapter) RollDice(_ context.Context, input *engine.RollDiceInput) (*engine.RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	rolls, total, err := a.roll(input.Dice)
	if err != nil {
		return nil, err
	}
	return &engine.RollDiceOutput{Rolls: rolls, Total: total}, nil
}

func (a *Adapter) roll(d entities.Dice) ([]int, int, error) {
	if d.Count <= 0 {
		return nil, d.Bonus, nil
	}
	rolls, err := a.diceRoller.RollN(d.Count, d.Sides)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to roll %dd%d", d.Count, d.Sides)
	}
	total := d.Bonus
	for _, r := range rolls {
		total += r
	}
	return rolls, total, nil
}

func (a *Adapter) d20() (int, error) {
	r, err := a.diceRoller.Roll(20)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll d20")
	}
	return r, nil
}

// RollInitiative rolls d20 + initiative bonus for every combatant
func (a *Adapter) RollInitiative(
	_ context.Context,
	input *engine.RollInitiativeInput,
) (*engine.RollInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	order := make([]engine.InitiativeRoll, 0, len(input.Combatants))
	for _, c := range input.Combatants {
		if c == nil {
			continue
		}
		r, err := a.d20()
		if err != nil {
			return nil, err
		}
		order = append(order, engine.InitiativeRoll{
			ID:    c.ID,
			Roll:  r,
			Total: r + c.Stats.InitiativeBonus,
		})
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Total > order[j].Total
	})

	return &engine.RollInitiativeOutput{Order: order}, nil
}

// ResolveAttack resolves a weapon attack from attacker against target
func (a *Adapter) ResolveAttack(
	ctx context.Context,
	input *engine.ResolveAttackInput,
) (*engine.ResolveAttackOutput, error) {
	if input == nil || input.Attacker == nil || input.Target == nil {
		return nil, errors.InvalidArgument("attacker and target are required")
	}

	roll, err := a.d20()
	if err != nil {
		return nil, err
	}

	out := &engine.ResolveAttackOutput{
		Roll:        roll,
		AttackBonus: engine.AttackBonus(input.Attacker),
		TargetAC:    input.Target.Stats.AC,
		Critical:    roll == 20,
		Fumble:      roll == 1,
	}
	out.Total = roll + out.AttackBonus
	if out.Fumble {
		out.Total = 1
	}
	out.Hit = !out.Fumble && (out.Critical || out.Total >= out.TargetAC)

	if out.Hit {
		weapon, _ := engine.Weapon(input.Attacker)
		if out.Critical {
			weapon.Count *= 2
		}
		weapon.Bonus += engine.AttackModifier(input.Attacker)
		rolls, total, err := a.roll(weapon)
		if err != nil {
			return nil, err
		}
		out.DamageRolls = rolls
		out.Damage = max(1, total)
	}

	a.publish(ctx, engine.EventAttackResolved, input.Attacker, input.Target)
	a.log.WithFields(logrus.Fields{
		"attacker": input.Attacker.ID,
		"target":   input.Target.ID,
		"roll":     roll,
		"total":    out.Total,
		"ac":       out.TargetAC,
		"damage":   out.Damage,
	}).Debug("attack resolved")

	return out, nil
}

// ResolveSpell rolls a spell's dice plus the caster's casting modifier
func (a *Adapter) ResolveSpell(
	ctx context.Context,
	input *engine.ResolveSpellInput,
) (*engine.ResolveSpellOutput, error) {
	if input == nil || input.Caster == nil || input.Spell == nil {
		return nil, errors.InvalidArgument("caster and spell are required")
	}

	mod := engine.SpellModifier(input.Caster)
	d := input.Spell.Dice
	d.Bonus += mod
	rolls, total, err := a.roll(d)
	if err != nil {
		return nil, err
	}

	a.publish(ctx, engine.EventSpellResolved, input.Caster, input.Target)

	return &engine.ResolveSpellOutput{
		Amount:   max(1, total),
		Modifier: mod,
		Rolls:    rolls,
	}, nil
}

// ResolveEnemyAttack uses the attacker's initiative bonus as the attack
// bonus and the profile's fixed damage line
func (a *Adapter) ResolveEnemyAttack(
	ctx context.Context,
	input *engine.ResolveEnemyAttackInput,
) (*engine.ResolveEnemyAttackOutput, error) {
	if input == nil || input.Attacker == nil || input.Target == nil {
		return nil, errors.InvalidArgument("attacker and target are required")
	}

	roll, err := a.d20()
	if err != nil {
		return nil, err
	}

	out := &engine.ResolveEnemyAttackOutput{
		Roll:     roll,
		Total:    roll + input.Attacker.Stats.InitiativeBonus,
		Critical: roll == 20,
	}
	out.Hit = roll != 1 && (out.Critical || out.Total >= input.Target.Stats.AC)

	if out.Hit {
		_, total, err := a.roll(input.Profile.Damage)
		if err != nil {
			return nil, err
		}
		out.Damage = max(1, total)
	}

	a.publish(ctx, engine.EventAttackResolved, input.Attacker, input.Target)

	return out, nil
}

func (a *Adapter) publish(ctx context.Context, eventType string, source, target *entities.Combatant) {
	var evt events.Event
	if target != nil {
		evt = events.NewGameEvent(eventType, source, target)
	} else {
		evt = events.NewGameEvent(eventType, source, nil)
	}
	if err := a.eventBus.Publish(ctx, evt); err != nil {
		a.log.WithError(err).WithField("event", eventType).Warn("failed to publish event")
	}
}
