package session

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/battle"
)

// ConsumeItem uses one consumable from the pack. In battle the acting
// player uses it and it costs their action; the item is only removed when
// the battle accepts the use.
func (o *orchestrator) ConsumeItem(ctx context.Context, input *ConsumeItemInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item id is required")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		sess := l.sess
		i := sess.Inventory.Find(input.ItemID)
		if i < 0 || !sess.Inventory[i].Item.Consumable() {
			return nil
		}
		item := sess.Inventory[i].Item

		switch {
		case sess.Phase == entities.PhaseBattle:
			res, err := o.battle.UseItem(ctx, &battle.UseItemInput{EncounterID: sess.EncounterID, Item: item})
			if err != nil {
				return err
			}
			out.Events.Append(res.Events)
			out.Encounter = res.Encounter
			if !res.Accepted {
				return nil
			}
			sess.Inventory, _, _ = sess.Inventory.Take(item.ID)
			out.Accepted = true
			return o.fold(ctx, l, res.Encounter, &out.Events)

		case sess.Phase.Exploring():
			member := o.target(sess, input.CharacterID)
			if member == nil || !member.Alive() {
				return nil
			}
			amount, err := engine.RollEffect(ctx, o.engine, item.Effect)
			if err != nil {
				return err
			}
			gained := engine.ApplyEffect(member, item.Effect, amount)
			sess.Inventory, _, _ = sess.Inventory.Take(item.ID)
			out.Accepted = true
			out.Events.AddLog(0, entities.LogInfo, fmt.Sprintf("%s used %s. (+%d)", member.Name, item.Name, gained))
		}
		return nil
	})
}

// target returns the named member, or the leader when id is empty
func (o *orchestrator) target(sess *entities.Session, id string) *entities.Combatant {
	if id == "" {
		if len(sess.Party) == 0 {
			return nil
		}
		return sess.Party[0]
	}
	return sess.Member(id)
}

// Equip wears an item from the pack. Whatever was in the slot goes back
// into the pack.
func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item id is required")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		sess := l.sess
		if !sess.Phase.Exploring() {
			return nil
		}
		member := o.target(sess, input.CharacterID)
		if member == nil {
			return nil
		}
		i := sess.Inventory.Find(input.ItemID)
		if i < 0 || !sess.Inventory[i].Item.Equippable() {
			return nil
		}

		var item *entities.Item
		sess.Inventory, item, _ = sess.Inventory.Take(input.ItemID)
		slot := item.EquipmentStats.Slot
		if member.Equipment == nil {
			member.Equipment = make(map[entities.EquipmentSlot]*entities.Item)
		}
		if prev := member.Equipment[slot]; prev != nil {
			sess.Inventory = sess.Inventory.Add(prev, 1)
		}
		member.Equipment[slot] = item
		member.Stats = o.engine.Recompute(member.Stats, member.Equipment)

		out.Accepted = true
		out.Events.AddLog(0, entities.LogInfo, fmt.Sprintf("%s equipped %s.", member.Name, item.Name))
		return nil
	})
}

// Unequip moves the item in a slot back into the pack
func (o *orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		sess := l.sess
		if !sess.Phase.Exploring() {
			return nil
		}
		member := o.target(sess, input.CharacterID)
		if member == nil {
			return nil
		}
		item := member.Equipment[input.Slot]
		if item == nil {
			return nil
		}

		delete(member.Equipment, input.Slot)
		sess.Inventory = sess.Inventory.Add(item, 1)
		member.Stats = o.engine.Recompute(member.Stats, member.Equipment)

		out.Accepted = true
		out.Events.AddLog(0, entities.LogInfo, fmt.Sprintf("%s unequipped %s.", member.Name, item.Name))
		return nil
	})
}
