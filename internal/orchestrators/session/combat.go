package session

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-tactics/internal/repositories/chronicle"
)

func (o *orchestrator) startBattle(
	ctx context.Context,
	l *live,
	terrain entities.TerrainType,
	weather entities.Weather,
	ev *entities.Events,
) error {
	sess := l.sess
	res, err := o.battle.Start(ctx, &battle.StartInput{
		Party:      sess.Party,
		Terrain:    terrain,
		Weather:    weather,
		Dimension:  sess.Dimension,
		Difficulty: sess.Difficulty,
	})
	if err != nil {
		if errors.IsFailedPrecondition(err) {
			// nobody left standing to fight
			return nil
		}
		return errors.Wrap(err, "failed to start battle")
	}

	sess.Phase = entities.PhaseBattle
	sess.EncounterID = res.Encounter.ID
	sess.BattleTerrain = terrain
	sess.BattleWeather = weather
	sess.Rewards = nil
	sess.StandingOnPortal = false
	sess.StandingOnSettlement = false
	ev.Append(res.Events)
	return nil
}

// closeBattle forgets the open encounter, if any
func (o *orchestrator) closeBattle(ctx context.Context, l *live) error {
	id := l.sess.EncounterID
	if id == "" {
		return nil
	}
	l.sess.EncounterID = ""
	l.sess.Rewards = nil
	if err := o.battle.Close(ctx, &battle.EncounterInput{EncounterID: id}); err != nil && !errors.IsNotFound(err) {
		return errors.Wrap(err, "failed to close encounter")
	}
	return nil
}

// inBattle forwards a battle call while the session is fighting and folds
// whatever outcome it produced
func (o *orchestrator) inBattle(
	ctx context.Context,
	id string,
	call func(encounterID string) (*battle.ActionOutput, error),
) (*ActionOutput, error) {
	return o.withSession(ctx, id, func(l *live, out *ActionOutput) error {
		if l.sess.Phase != entities.PhaseBattle {
			return nil
		}
		res, err := call(l.sess.EncounterID)
		if err != nil {
			return err
		}
		out.Accepted = res.Accepted
		out.Events.Append(res.Events)
		out.Encounter = res.Encounter
		return o.fold(ctx, l, res.Encounter, &out.Events)
	})
}

func (o *orchestrator) SelectAction(ctx context.Context, input *SelectActionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.inBattle(ctx, input.SessionID, func(encID string) (*battle.ActionOutput, error) {
		return o.battle.SelectAction(ctx, &battle.SelectActionInput{EncounterID: encID, Action: input.Action})
	})
}

func (o *orchestrator) SelectSpell(ctx context.Context, input *SelectSpellInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.inBattle(ctx, input.SessionID, func(encID string) (*battle.ActionOutput, error) {
		return o.battle.SelectSpell(ctx, &battle.SelectSpellInput{EncounterID: encID, SpellID: input.SpellID})
	})
}

func (o *orchestrator) InteractTile(ctx context.Context, input *InteractTileInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.inBattle(ctx, input.SessionID, func(encID string) (*battle.ActionOutput, error) {
		return o.battle.InteractTile(ctx, &battle.InteractTileInput{EncounterID: encID, Position: input.Position})
	})
}

func (o *orchestrator) AttemptRun(ctx context.Context, input *SessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.inBattle(ctx, input.SessionID, func(encID string) (*battle.ActionOutput, error) {
		return o.battle.AttemptRun(ctx, &battle.EncounterInput{EncounterID: encID})
	})
}

func (o *orchestrator) EndTurn(ctx context.Context, input *SessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.inBattle(ctx, input.SessionID, func(encID string) (*battle.ActionOutput, error) {
		return o.battle.EndTurn(ctx, &battle.EncounterInput{EncounterID: encID})
	})
}

// Advance runs pending travel steps and the open battle's clock
func (o *orchestrator) Advance(ctx context.Context, input *AdvanceInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Ticks < 0 {
		return nil, errors.InvalidArgument("ticks must not be negative")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		out.Accepted = true
		fighting := l.sess.Phase == entities.PhaseBattle

		var stepErr error
		l.queue.Advance(input.Ticks, func(travelStep) {
			if stepErr == nil {
				stepErr = o.step(ctx, l, &out.Events)
			}
		})
		if stepErr != nil {
			return stepErr
		}

		if !fighting || l.sess.Phase != entities.PhaseBattle {
			return nil
		}
		res, err := o.battle.Advance(ctx, &battle.AdvanceInput{EncounterID: l.sess.EncounterID, Ticks: input.Ticks})
		if err != nil {
			return errors.Wrap(err, "failed to advance battle")
		}
		out.Events.Append(res.Events)
		out.Encounter = res.Encounter
		return o.fold(ctx, l, res.Encounter, &out.Events)
	})
}

// fold moves the session on once the encounter has an outcome
func (o *orchestrator) fold(ctx context.Context, l *live, enc *battle.Encounter, ev *entities.Events) error {
	if enc == nil || enc.Outcome == entities.OutcomeNone {
		return nil
	}
	sess := l.sess

	switch enc.Outcome {
	case entities.OutcomeVictory:
		rewards := enc.Rewards
		rewards.Items = append([]*entities.Item(nil), enc.Rewards.Items...)
		sess.Rewards = &rewards
		sess.Phase = entities.PhaseVictory
	case entities.OutcomeDefeat:
		sess.Phase = entities.PhaseDefeat
	case entities.OutcomeFled:
		o.carryBack(sess.Party, enc)
		if err := o.closeBattle(ctx, l); err != nil {
			return err
		}
		sess.Phase = entities.PhaseOverworld
	}

	o.record(ctx, sess, enc)
	o.log.WithFields(logrus.Fields{
		"session_id":   sess.ID,
		"encounter_id": enc.ID,
		"outcome":      enc.Outcome,
	}).Info("battle finished")
	return nil
}

// carryBack copies hit points, spent slots and base scores raised by
// elixirs from the battle copies onto the persistent party
func (o *orchestrator) carryBack(party []*entities.Combatant, enc *battle.Encounter) {
	for _, m := range party {
		if c := enc.Entity(m.ID); c != nil {
			m.Stats.HP = c.Stats.HP
			m.Stats.SpellSlots.Current = c.Stats.SpellSlots.Current
			m.Stats.BaseAttributes = c.Stats.BaseAttributes
			m.Stats = o.engine.Recompute(m.Stats, m.Equipment)
		}
	}
}

func (o *orchestrator) record(ctx context.Context, sess *entities.Session, enc *battle.Encounter) {
	if o.chronicle == nil {
		return
	}
	entry := &chronicle.Entry{
		SessionID:   sess.ID,
		EncounterID: enc.ID,
		Outcome:     enc.Outcome,
		Dimension:   enc.Dimension,
		Terrain:     enc.Terrain,
		EnemyLevel:  enc.EnemyLevel,
		Rounds:      enc.Round,
	}
	if enc.Outcome == entities.OutcomeVictory {
		entry.XP = enc.Rewards.XP
		entry.Gold = enc.Rewards.Gold
	}
	if _, err := o.chronicle.Append(ctx, &chronicle.AppendInput{Entry: entry}); err != nil {
		o.log.WithError(err).WithField("session_id", sess.ID).Warn("failed to record battle")
	}
}

// ContinueAfterVictory pays out the rewards and returns to the overworld.
// Fallen members keep their zero hit points and earn nothing.
func (o *orchestrator) ContinueAfterVictory(ctx context.Context, input *SessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		sess := l.sess
		if sess.Phase != entities.PhaseVictory {
			return nil
		}

		enc, err := o.battle.GetEncounter(ctx, &battle.EncounterInput{EncounterID: sess.EncounterID})
		if err != nil {
			return errors.Wrap(err, "failed to get encounter")
		}
		o.carryBack(sess.Party, enc.Encounter)

		var rewards entities.Rewards
		if sess.Rewards != nil {
			rewards = *sess.Rewards
		}
		for _, m := range sess.Party {
			m.Stats.SpellSlots.Current = m.Stats.SpellSlots.Max
			if !m.Alive() {
				continue
			}
			m.Stats.XP += rewards.XP
			for o.levelUp(m) {
				out.Events.AddLog(0, entities.LogLevelUp, fmt.Sprintf("%s reached level %d!", m.Name, m.Stats.Level))
			}
		}
		sess.Gold += rewards.Gold
		for _, item := range rewards.Items {
			sess.Inventory = sess.Inventory.Add(item, 1)
		}

		if err := o.closeBattle(ctx, l); err != nil {
			return err
		}
		sess.Phase = entities.PhaseOverworld
		out.Accepted = true
		out.Events.AddLog(0, entities.LogNarrative, fmt.Sprintf("Victory! Gained %d XP and %d gold.", rewards.XP, rewards.Gold))
		return nil
	})
}

// levelUp raises m one level when it has the xp for it
func (o *orchestrator) levelUp(m *entities.Combatant) bool {
	st := &m.Stats
	if st.Level >= dnd5e.MaxLevel || st.XP < st.XPToNextLevel {
		return false
	}
	st.Level++
	st.MaxHP += engine.HitPointGain(st.BaseAttributes.CON, dnd5e.HitDie(st.Class))
	st.HP = st.MaxHP
	st.SpellSlots = dnd5e.CasterSlots(st.Class, st.Level)
	if st.Level%4 == 0 {
		st.BaseAttributes.STR++
	}
	st.XPToNextLevel = dnd5e.XPToNextLevel(st.Level)
	m.Stats = o.engine.Recompute(m.Stats, m.Equipment)
	return true
}

// RestartBattle refights a lost battle on the same ground with the party as
// it was before the fight
func (o *orchestrator) RestartBattle(ctx context.Context, input *SessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		sess := l.sess
		if sess.Phase != entities.PhaseDefeat {
			return nil
		}
		if err := o.closeBattle(ctx, l); err != nil {
			return err
		}
		if err := o.startBattle(ctx, l, sess.BattleTerrain, sess.BattleWeather, &out.Events); err != nil {
			return err
		}
		out.Accepted = sess.Phase == entities.PhaseBattle
		return nil
	})
}
