package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

// RollEffect returns the strength of a consumable effect, rolling its dice
// when it has them
func RollEffect(ctx context.Context, eng Engine, effect *entities.Effect) (int, error) {
	if effect == nil {
		return 0, errors.InvalidArgument("effect is required")
	}
	if effect.Dice == nil {
		return effect.Amount, nil
	}
	out, err := eng.RollDice(ctx, &RollDiceInput{Dice: *effect.Dice})
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll effect")
	}
	return out.Total, nil
}

// ApplyEffect applies amount of effect to c and returns what actually took
// hold. Healing and slot restores are capped at their maximums; a strength
// buff raises the base score and recomputes.
func ApplyEffect(c *entities.Combatant, effect *entities.Effect, amount int) int {
	switch effect.Type {
	case entities.EffectHealHP:
		before := c.Stats.HP
		c.Stats.HP = min(c.Stats.MaxHP, c.Stats.HP+amount)
		return c.Stats.HP - before
	case entities.EffectRestoreSlots:
		before := c.Stats.SpellSlots.Current
		c.Stats.SpellSlots.Current = min(c.Stats.SpellSlots.Max, c.Stats.SpellSlots.Current+amount)
		return c.Stats.SpellSlots.Current - before
	case entities.EffectBuffSTR:
		c.Stats.BaseAttributes.STR += amount
		c.Stats = Recompute(c.Stats, c.Equipment)
		return amount
	}
	return 0
}
