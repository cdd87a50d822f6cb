package engine

import (
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/entities/dnd5e"
)

// AbilityModifier is floor((score-10)/2)
func AbilityModifier(score int) int {
	modifier := (score - 10) / 2
	if score < 10 && (score-10)%2 != 0 {
		modifier--
	}
	return modifier
}

// ProficiencyBonus is +2 at levels 1-4, +3 at 5-8 and so on
func ProficiencyBonus(level int) int {
	if level < 1 {
		return 2
	}
	return 2 + (level-1)/4
}

// HitPointGain is the fixed increase for one level past the first
func HitPointGain(con, hitDie int) int {
	return max(1, hitDie/2+1+AbilityModifier(con))
}

// MaxHitPoints takes the full die at level 1 and the fixed gain after
func MaxHitPoints(level, con, hitDie int) int {
	hp := hitDie + AbilityModifier(con)
	for l := 2; l <= level; l++ {
		hp += HitPointGain(con, hitDie)
	}
	return max(1, hp)
}

// Recompute derives Attributes, AC and InitiativeBonus from BaseAttributes
// and the worn items. Everything else on stats is returned unchanged.
func Recompute(stats entities.CombatStats, equipment map[entities.EquipmentSlot]*entities.Item) entities.CombatStats {
	attrs := stats.BaseAttributes
	armorBase := 10
	shieldBonus := 0

	for _, item := range equipment {
		if !item.Equippable() {
			continue
		}
		es := item.EquipmentStats
		attrs = attrs.Plus(es.Modifiers)
		switch {
		case es.Slot == entities.SlotBody && es.AC > 0:
			armorBase = es.AC
		case es.Slot == entities.SlotOffHand && es.AC > 0:
			shieldBonus = es.AC
		}
	}

	dexMod := AbilityModifier(attrs.DEX)
	acDex := dexMod
	switch {
	case armorBase >= 16:
		acDex = 0
	case armorBase >= 13:
		acDex = min(2, dexMod)
	}

	stats.Attributes = attrs
	stats.AC = armorBase + acDex + shieldBonus
	stats.InitiativeBonus = dexMod
	return stats
}

// Weapon returns the main hand damage dice and whether the finesse rule
// applies. An empty hand is an unarmed strike.
func Weapon(c *entities.Combatant) (entities.Dice, bool) {
	item := c.Equipment[entities.SlotMainHand]
	if item == nil || item.EquipmentStats == nil || item.EquipmentStats.Damage == nil {
		return dnd5e.UnarmedDamage, false
	}
	return *item.EquipmentStats.Damage, item.EquipmentStats.Finesse
}

// AttackModifier is DEX for finesse weapons and STR otherwise
func AttackModifier(c *entities.Combatant) int {
	if _, finesse := Weapon(c); finesse {
		return AbilityModifier(c.Stats.Attributes.DEX)
	}
	return AbilityModifier(c.Stats.Attributes.STR)
}

// AttackBonus is proficiency plus the attack modifier
func AttackBonus(c *entities.Combatant) int {
	return ProficiencyBonus(c.Stats.Level) + AttackModifier(c)
}

// SpellModifier is the casting stat modifier for the caster's class, or 0
// for classes without one
func SpellModifier(c *entities.Combatant) int {
	ab, ok := dnd5e.SpellcastingAbility(c.Stats.Class)
	if !ok {
		return 0
	}
	return AbilityModifier(c.Stats.Attributes.Get(ab))
}

// HitChance is the probability a d20 attack with bonus reaches ac. A natural
// 20 always hits and a natural 1 always misses.
func HitChance(bonus, ac int) float64 {
	need := ac - bonus
	switch {
	case need <= 2:
		need = 2
	case need > 20:
		need = 20
	}
	return float64(21-need) / 20
}
