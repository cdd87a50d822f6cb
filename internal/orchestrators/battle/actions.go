package battle

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

func (o *orchestrator) SelectAction(ctx context.Context, input *SelectActionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withPlayerTurn(input.EncounterID, func(enc *Encounter, actor *entities.Combatant, out *ActionOutput) error {
		switch input.Action {
		case entities.ActionWait:
			out.Accepted = true
			o.advanceTurn(enc, &out.Events)
		case entities.ActionRun:
			return o.attemptRun(enc, out)
		case entities.ActionMove:
			if enc.HasMoved {
				return nil
			}
			o.selectAction(enc, input.Action)
			out.Accepted = true
		case entities.ActionAttack, entities.ActionMagic, entities.ActionItem:
			if enc.HasActed {
				return nil
			}
			o.selectAction(enc, input.Action)
			out.Accepted = true
		}
		return nil
	})
}

func (o *orchestrator) selectAction(enc *Encounter, action entities.ActionType) {
	enc.SelectedAction = action
	enc.SelectedTile = nil
	enc.SelectedSpell = nil
}

func (o *orchestrator) SelectSpell(ctx context.Context, input *SelectSpellInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withPlayerTurn(input.EncounterID, func(enc *Encounter, actor *entities.Combatant, out *ActionOutput) error {
		if enc.HasActed {
			return nil
		}
		spell, known, err := o.spellFor(ctx, actor.Stats.Class, input.SpellID)
		if err != nil {
			return err
		}
		if !known {
			return nil
		}
		enc.SelectedAction = entities.ActionMagic
		enc.SelectedSpell = spell
		enc.SelectedTile = nil
		out.Accepted = true
		out.Events.AddLog(enc.Tick(), entities.LogInfo, "Spell selected.")
		return nil
	})
}

// InteractTile selects a tile on the first click and acts on it when the
// same tile is clicked again
func (o *orchestrator) InteractTile(ctx context.Context, input *InteractTileInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withPlayerTurn(input.EncounterID, func(enc *Encounter, actor *entities.Combatant, out *ActionOutput) error {
		pos := input.Position
		if _, ok := enc.Grid.Cell(pos); !ok {
			return nil
		}
		if enc.SelectedTile == nil || *enc.SelectedTile != pos {
			enc.SelectedTile = &pos
			out.Accepted = true
			return nil
		}

		var err error
		switch enc.SelectedAction {
		case entities.ActionMove:
			out.Accepted = o.move(enc, actor, pos)
		case entities.ActionAttack:
			out.Accepted, err = o.attack(ctx, enc, actor, pos, &out.Events)
		case entities.ActionMagic:
			out.Accepted, err = o.cast(ctx, enc, actor, pos, &out.Events)
		}
		if err != nil {
			return err
		}
		out.Confirmed = out.Accepted
		return nil
	})
}

// moveRange is how many tiles a combatant covers in one move
func moveRange(c *entities.Combatant) int {
	return c.Stats.Speed / 5
}

func (o *orchestrator) move(enc *Encounter, actor *entities.Combatant, pos entities.GridPos) bool {
	if enc.HasMoved {
		return false
	}
	cell, _ := enc.Grid.Cell(pos)
	if cell.IsObstacle || enc.EntityAt(pos) != nil {
		return false
	}
	if actor.Position.Chebyshev(pos) > moveRange(actor) {
		return false
	}
	actor.Position = pos
	enc.HasMoved = true
	enc.SelectedAction = entities.ActionNone
	enc.SelectedTile = nil
	return true
}

func (o *orchestrator) attack(
	ctx context.Context,
	enc *Encounter,
	actor *entities.Combatant,
	pos entities.GridPos,
	ev *entities.Events,
) (bool, error) {
	if enc.HasActed {
		return false, nil
	}
	target := enc.EntityAt(pos)
	if target == nil || target.Type != entities.EntityEnemy || actor.Position.Chebyshev(pos) > 1 {
		return false, nil
	}

	res, err := o.engine.ResolveAttack(ctx, &engine.ResolveAttackInput{Attacker: actor, Target: target})
	if err != nil {
		return false, errors.Wrap(err, "failed to resolve attack")
	}

	tick := enc.Tick()
	if res.Hit {
		if res.Critical {
			ev.AddLog(tick, entities.LogCombat, fmt.Sprintf("%s scores a CRITICAL HIT!", actor.Name))
		}
		ev.AddLog(tick, entities.LogCombat, fmt.Sprintf("%s hits for %d damage! (%d+%d vs AC %d)",
			actor.Name, res.Damage, res.Roll, res.AttackBonus, res.TargetAC))
		o.applyDamage(enc, target, res.Damage, res.Critical, ev)
	} else {
		text := "MISS"
		if res.Fumble {
			text = "FUMBLE"
		}
		ev.AddLog(tick, entities.LogCombat, fmt.Sprintf("%s misses! (%d+%d vs AC %d)",
			actor.Name, res.Roll, res.AttackBonus, res.TargetAC))
		ev.AddPopup(entities.DamagePopup{Position: target.Position, Text: text, Kind: entities.PopupMiss})
	}

	o.finishAction(enc)
	return true, nil
}

func (o *orchestrator) cast(
	ctx context.Context,
	enc *Encounter,
	actor *entities.Combatant,
	pos entities.GridPos,
	ev *entities.Events,
) (bool, error) {
	spell := enc.SelectedSpell
	if enc.HasActed || spell == nil {
		return false, nil
	}
	target := enc.EntityAt(pos)
	if target == nil || actor.Position.Chebyshev(pos) > spell.Range {
		return false, nil
	}
	switch spell.Type {
	case entities.SpellHeal:
		if target.Type != entities.EntityPlayer {
			return false, nil
		}
	default:
		if target.Type != entities.EntityEnemy {
			return false, nil
		}
	}

	tick := enc.Tick()
	if !spell.Cantrip() && actor.Stats.SpellSlots.Current <= 0 {
		ev.AddLog(tick, entities.LogCombat, fmt.Sprintf("%s has no spell slots!", actor.Name))
		return false, nil
	}

	res, err := o.engine.ResolveSpell(ctx, &engine.ResolveSpellInput{Caster: actor, Target: target, Spell: spell})
	if err != nil {
		return false, errors.Wrap(err, "failed to resolve spell")
	}

	ev.AddLog(tick, entities.LogCombat, fmt.Sprintf("%s casts %s!", actor.Name, spell.Name))
	if !spell.Cantrip() {
		actor.Stats.SpellSlots.Current--
	}

	if spell.Type == entities.SpellHeal {
		target.Stats.HP = min(target.Stats.MaxHP, target.Stats.HP+res.Amount)
		ev.AddLog(tick, entities.LogRoll, fmt.Sprintf("Healed %d HP.", res.Amount))
		ev.AddPopup(entities.DamagePopup{
			Position: target.Position,
			Amount:   res.Amount,
			Text:     fmt.Sprintf("+%d", res.Amount),
			Kind:     entities.PopupHeal,
		})
	} else {
		ev.AddLog(tick, entities.LogCombat, fmt.Sprintf("Dealt %d damage.", res.Amount))
		o.applyDamage(enc, target, res.Amount, false, ev)
	}

	o.finishAction(enc)
	return true, nil
}

func (o *orchestrator) finishAction(enc *Encounter) {
	enc.HasActed = true
	enc.SelectedAction = entities.ActionNone
	enc.SelectedTile = nil
	enc.SelectedSpell = nil
}

// applyDamage lowers hp, floored at zero, and schedules the outcome once a
// side has fallen
func (o *orchestrator) applyDamage(enc *Encounter, target *entities.Combatant, amount int, crit bool, ev *entities.Events) {
	target.Stats.HP = max(0, target.Stats.HP-amount)
	ev.AddPopup(entities.DamagePopup{
		Position: target.Position,
		Amount:   amount,
		Text:     fmt.Sprintf("%d", amount),
		Crit:     crit,
		Kind:     entities.PopupDamage,
	})
	if target.Alive() {
		return
	}

	ev.AddLog(enc.Tick(), entities.LogNarrative, fmt.Sprintf("%s defeated!", target.Name))
	if enc.Pending != entities.OutcomeNone {
		return
	}
	switch {
	case len(enc.Living(entities.EntityEnemy)) == 0:
		enc.Pending = entities.OutcomeVictory
	case len(enc.Living(entities.EntityPlayer)) == 0:
		enc.Pending = entities.OutcomeDefeat
	default:
		return
	}
	enc.queue.Schedule(o.timing.SettleDelay, transition{kind: transitionSettle, outcome: enc.Pending})
}

func (o *orchestrator) AttemptRun(ctx context.Context, input *EncounterInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withPlayerTurn(input.EncounterID, func(enc *Encounter, _ *entities.Combatant, out *ActionOutput) error {
		return o.attemptRun(enc, out)
	})
}

func (o *orchestrator) attemptRun(enc *Encounter, out *ActionOutput) error {
	if !enc.RunAvailable {
		return nil
	}
	out.Accepted = true
	if o.rng.Float64() > fleeThreshold {
		out.Events.AddLog(enc.Tick(), entities.LogNarrative, "Escaped!")
		enc.Outcome = entities.OutcomeFled
		enc.queue.Clear()
		return nil
	}
	out.Events.AddLog(enc.Tick(), entities.LogCombat, "Failed escape!")
	o.advanceTurn(enc, &out.Events)
	return nil
}

// UseItem applies a consumable to the acting player
func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withPlayerTurn(input.EncounterID, func(enc *Encounter, actor *entities.Combatant, out *ActionOutput) error {
		if enc.HasActed || !input.Item.Consumable() {
			return nil
		}
		amount, err := engine.RollEffect(ctx, o.engine, input.Item.Effect)
		if err != nil {
			return err
		}
		engine.ApplyEffect(actor, input.Item.Effect, amount)

		out.Events.AddLog(enc.Tick(), entities.LogRoll, fmt.Sprintf("%s used %s. (+%d)", actor.Name, input.Item.Name, amount))
		out.Events.AddPopup(entities.DamagePopup{
			Position: actor.Position,
			Amount:   amount,
			Text:     fmt.Sprintf("+%d", amount),
			Kind:     entities.PopupHeal,
		})
		o.finishAction(enc)
		out.Accepted = true
		return nil
	})
}

func (o *orchestrator) EndTurn(ctx context.Context, input *EncounterInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withPlayerTurn(input.EncounterID, func(enc *Encounter, _ *entities.Combatant, out *ActionOutput) error {
		out.Accepted = true
		o.advanceTurn(enc, &out.Events)
		return nil
	})
}

func (o *orchestrator) PredictAttack(_ context.Context, input *PredictAttackInput) (*PredictAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	enc, err := o.lookup(input.EncounterID)
	if err != nil {
		return nil, err
	}
	actor := enc.CurrentActor()
	if actor == nil {
		return nil, errors.FailedPrecondition("no current actor")
	}
	target := enc.Entity(input.TargetID)
	if target == nil {
		return nil, errors.NotFoundf("combatant %s not found", input.TargetID)
	}

	bonus := engine.AttackBonus(actor)
	mod := engine.AttackModifier(actor)
	dice, _ := engine.Weapon(actor)
	return &PredictAttackOutput{
		HitChance:   engine.HitChance(bonus, target.Stats.AC),
		CritChance:  0.05,
		AttackBonus: bonus,
		MinDamage:   max(1, dice.Count+dice.Bonus+mod),
		MaxDamage:   max(1, dice.Count*dice.Sides+dice.Bonus+mod),
	}, nil
}
