package dnd5e

import (
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

func spell(id, name string, level, rng int, kind entities.SpellType, count, sides int) *entities.Spell {
	return &entities.Spell{
		ID:    id,
		Name:  name,
		Level: level,
		Range: rng,
		Type:  kind,
		Dice:  entities.Dice{Count: count, Sides: sides},
	}
}

var spells = map[string]*entities.Spell{
	SpellFireBolt:      spell(SpellFireBolt, "Fire Bolt", 0, 12, entities.SpellDamage, 1, 10),
	SpellSacredFlame:   spell(SpellSacredFlame, "Sacred Flame", 0, 6, entities.SpellDamage, 1, 8),
	SpellMagicMissile:  spell(SpellMagicMissile, "Magic Missile", 1, 12, entities.SpellDamage, 3, 4),
	SpellCureWounds:    spell(SpellCureWounds, "Cure Wounds", 1, 1, entities.SpellHeal, 1, 8),
	SpellHealingWord:   spell(SpellHealingWord, "Healing Word", 1, 6, entities.SpellHeal, 1, 4),
	SpellThunderwave:   spell(SpellThunderwave, "Thunderwave", 1, 2, entities.SpellDamage, 2, 8),
	SpellEldritchBlast: spell(SpellEldritchBlast, "Eldritch Blast", 0, 12, entities.SpellDamage, 1, 10),
	SpellIceStorm:      spell(SpellIceStorm, "Ice Storm", 1, 8, entities.SpellDamage, 3, 6),
	SpellEntangle:      spell(SpellEntangle, "Entangle", 1, 8, entities.SpellDamage, 1, 6),
}

// Spell returns a copy of the catalog spell so callers may enrich it
func Spell(id string) (*entities.Spell, bool) {
	s, ok := spells[id]
	if !ok {
		return nil, false
	}
	out := *s
	return &out, true
}

// SRDKey maps a spell id to its key in the 5e SRD API
func SRDKey(id string) string {
	switch id {
	case SpellFireBolt:
		return "fire-bolt"
	default:
		out := []byte(id)
		for i, c := range out {
			if c == '_' {
				out[i] = '-'
			}
		}
		return string(out)
	}
}
