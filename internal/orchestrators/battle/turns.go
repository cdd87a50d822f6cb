package battle

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pathfinding"
)

// advanceTurn moves to the next living combatant, wrapping into a new round,
// and hands enemies to the AI after a pause
func (o *orchestrator) advanceTurn(enc *Encounter, ev *entities.Events) {
	if !enc.Active() || len(enc.TurnOrder) == 0 {
		return
	}

	n := len(enc.TurnOrder)
	var next *entities.Combatant
	idx := enc.CurrentTurnIndex
	for step := 1; step <= n; step++ {
		candidate := (enc.CurrentTurnIndex + step) % n
		if c := enc.Entity(enc.TurnOrder[candidate]); c != nil && c.Alive() {
			next, idx = c, candidate
			break
		}
	}
	if next == nil {
		return
	}
	if idx <= enc.CurrentTurnIndex {
		enc.Round++
	}

	enc.CurrentTurnIndex = idx
	enc.HasMoved = false
	enc.HasActed = false
	enc.SelectedTile = nil
	enc.SelectedSpell = nil
	enc.SelectedAction = entities.ActionNone

	if next.Type == entities.EntityPlayer {
		enc.SelectedAction = entities.ActionMove
		ev.AddLog(enc.Tick(), entities.LogInfo, fmt.Sprintf("%s's turn.", next.Name))
		return
	}
	enc.queue.Schedule(o.timing.AIDelay, transition{kind: transitionEnemyTurn, actorID: next.ID})
}

// Advance moves the encounter clock forward and runs whatever came due
func (o *orchestrator) Advance(ctx context.Context, input *AdvanceInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Ticks < 0 {
		return nil, errors.InvalidArgument("ticks must not be negative")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	enc, err := o.lookup(input.EncounterID)
	if err != nil {
		return nil, err
	}

	out := &ActionOutput{Accepted: true}
	var fireErr error
	enc.queue.Advance(input.Ticks, func(t transition) {
		if fireErr != nil {
			return
		}
		fireErr = o.fire(ctx, enc, t, &out.Events)
	})
	if fireErr != nil {
		return nil, fireErr
	}

	out.Encounter = enc.Clone()
	return out, nil
}

func (o *orchestrator) fire(ctx context.Context, enc *Encounter, t transition, ev *entities.Events) error {
	switch t.kind {
	case transitionSettle:
		if enc.Outcome != entities.OutcomeNone {
			return nil
		}
		enc.Outcome = t.outcome
		enc.queue.Clear()
		o.log.WithFields(logrus.Fields{
			"encounter_id": enc.ID,
			"outcome":      enc.Outcome,
			"round":        enc.Round,
		}).Info("encounter settled")
	case transitionEndTurn:
		o.advanceTurn(enc, ev)
	case transitionEnemyTurn:
		return o.enemyTurn(ctx, enc, t.actorID, ev)
	}
	return nil
}

// enemyTurn attacks the nearest living player when adjacent and otherwise
// steps once toward it
func (o *orchestrator) enemyTurn(ctx context.Context, enc *Encounter, id string, ev *entities.Events) error {
	if !enc.Active() {
		return nil
	}
	me := enc.Entity(id)
	targets := enc.Living(entities.EntityPlayer)
	if me == nil || !me.Alive() || len(targets) == 0 {
		o.advanceTurn(enc, ev)
		return nil
	}

	target := targets[0]
	best := me.Position.Manhattan(target.Position)
	for _, p := range targets[1:] {
		if d := me.Position.Manhattan(p.Position); d < best {
			target, best = p, d
		}
	}

	if me.Position.Chebyshev(target.Position) <= 1 {
		res, err := o.engine.ResolveEnemyAttack(ctx, &engine.ResolveEnemyAttackInput{
			Attacker: me,
			Target:   target,
			Profile:  kindFor(enc.Dimension).profile,
		})
		if err != nil {
			return errors.Wrap(err, "failed to resolve enemy attack")
		}
		if res.Hit {
			ev.AddLog(enc.Tick(), entities.LogCombat, fmt.Sprintf("%s hits %s for %d damage!", me.Name, target.Name, res.Damage))
			o.applyDamage(enc, target, res.Damage, res.Critical, ev)
		} else {
			ev.AddLog(enc.Tick(), entities.LogCombat, fmt.Sprintf("%s misses %s.", me.Name, target.Name))
			ev.AddPopup(entities.DamagePopup{Position: target.Position, Text: "DODGE", Kind: entities.PopupMiss})
		}
	} else {
		grid := pathfinding.NewSquareGrid(enc.Grid)
		for _, c := range enc.Entities {
			if c.Alive() && c.ID != me.ID && c.ID != target.ID {
				grid.Occupy(c.Position)
			}
		}
		path, ok := pathfinding.FindPath[entities.GridPos](grid, me.Position, target.Position)
		if ok && len(path) > 0 && enc.EntityAt(path[0]) == nil {
			me.Position = path[0]
		}
	}

	enc.queue.Schedule(o.timing.AIEndDelay, transition{kind: transitionEndTurn})
	return nil
}
