package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/entities/dnd5e"
)

type RulesTestSuite struct {
	suite.Suite
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func (s *RulesTestSuite) TestAbilityModifier() {
	testCases := []struct {
		score int
		want  int
	}{
		{1, -5}, {7, -2}, {8, -1}, {9, -1}, {10, 0}, {11, 0}, {15, 2}, {20, 5},
	}
	for _, tc := range testCases {
		s.Assert().Equal(tc.want, engine.AbilityModifier(tc.score), "score %d", tc.score)
	}
}

func (s *RulesTestSuite) TestProficiencyBonus() {
	s.Assert().Equal(2, engine.ProficiencyBonus(1))
	s.Assert().Equal(2, engine.ProficiencyBonus(4))
	s.Assert().Equal(3, engine.ProficiencyBonus(5))
	s.Assert().Equal(6, engine.ProficiencyBonus(17))
}

func (s *RulesTestSuite) TestMaxHitPoints() {
	// fighter, CON 14: 10+2 then 6+2 a level
	s.Assert().Equal(12, engine.MaxHitPoints(1, 14, 10))
	s.Assert().Equal(20, engine.MaxHitPoints(2, 14, 10))
	// wizard with CON 3 never gains less than 1
	s.Assert().Equal(1, engine.HitPointGain(3, 6))
}

func (s *RulesTestSuite) TestRecompute() {
	longsword, _ := dnd5e.Item(dnd5e.ItemLongsword)
	chain, _ := dnd5e.Item(dnd5e.ItemChainMail)
	shield, _ := dnd5e.Item(dnd5e.ItemShield)
	leather, _ := dnd5e.Item(dnd5e.ItemLeatherArmor)
	shirt, _ := dnd5e.Item(dnd5e.ItemChainShirt)
	shadowDagger, _ := dnd5e.Item(dnd5e.ItemShadowDagger)

	base := entities.CombatStats{
		HP:             7,
		BaseAttributes: entities.Attributes{STR: 15, DEX: 16, CON: 14, INT: 10, WIS: 10, CHA: 10},
	}

	s.Run("no armor", func() {
		got := engine.Recompute(base, nil)
		s.Assert().Equal(13, got.AC)
		s.Assert().Equal(3, got.InitiativeBonus)
		s.Assert().Equal(base.BaseAttributes, got.Attributes)
		s.Assert().Equal(7, got.HP)
	})

	s.Run("heavy armor ignores dex", func() {
		got := engine.Recompute(base, map[entities.EquipmentSlot]*entities.Item{
			entities.SlotMainHand: longsword,
			entities.SlotBody:     chain,
			entities.SlotOffHand:  shield,
		})
		s.Assert().Equal(18, got.AC)
	})

	s.Run("medium armor caps dex at 2", func() {
		got := engine.Recompute(base, map[entities.EquipmentSlot]*entities.Item{
			entities.SlotBody: shirt,
		})
		s.Assert().Equal(15, got.AC)
	})

	s.Run("light armor takes full dex", func() {
		got := engine.Recompute(base, map[entities.EquipmentSlot]*entities.Item{
			entities.SlotBody: leather,
		})
		s.Assert().Equal(14, got.AC)
	})

	s.Run("item modifiers feed attributes and initiative", func() {
		got := engine.Recompute(base, map[entities.EquipmentSlot]*entities.Item{
			entities.SlotMainHand: shadowDagger,
		})
		s.Assert().Equal(17, got.Attributes.DEX)
		s.Assert().Equal(16, got.BaseAttributes.DEX)
		s.Assert().Equal(3, got.InitiativeBonus)
	})
}

func (s *RulesTestSuite) TestAttackModifierUsesFinesse() {
	dagger, _ := dnd5e.Item(dnd5e.ItemDagger)
	mace, _ := dnd5e.Item(dnd5e.ItemMace)
	c := &entities.Combatant{
		Stats: entities.CombatStats{Level: 1, Attributes: entities.Attributes{STR: 8, DEX: 16}},
	}

	c.Equipment = map[entities.EquipmentSlot]*entities.Item{entities.SlotMainHand: dagger}
	s.Assert().Equal(3, engine.AttackModifier(c))
	s.Assert().Equal(5, engine.AttackBonus(c))

	c.Equipment = map[entities.EquipmentSlot]*entities.Item{entities.SlotMainHand: mace}
	s.Assert().Equal(-1, engine.AttackModifier(c))

	c.Equipment = nil
	d, finesse := engine.Weapon(c)
	s.Assert().False(finesse)
	s.Assert().Equal(entities.Dice{Count: 1, Sides: 4}, d)
}

func (s *RulesTestSuite) TestSpellModifier() {
	c := &entities.Combatant{Stats: entities.CombatStats{
		Class:      dnd5e.ClassCleric,
		Attributes: entities.Attributes{INT: 8, WIS: 16, CHA: 12},
	}}
	s.Assert().Equal(3, engine.SpellModifier(c))

	c.Stats.Class = dnd5e.ClassWarlock
	s.Assert().Equal(1, engine.SpellModifier(c))

	c.Stats.Class = dnd5e.ClassFighter
	s.Assert().Equal(0, engine.SpellModifier(c))
}

func (s *RulesTestSuite) TestHitChance() {
	s.Assert().InDelta(0.6, engine.HitChance(4, 13), 1e-9)
	s.Assert().InDelta(0.05, engine.HitChance(0, 30), 1e-9)
	s.Assert().InDelta(0.95, engine.HitChance(20, 5), 1e-9)
}
