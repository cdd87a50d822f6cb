package battle_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tactics/internal/services/spellbook"
	"github.com/KirkDiggler/rpg-tactics/internal/testutils"
	"github.com/KirkDiggler/rpg-tactics/internal/worldgen"
)

func item(id string) *entities.Item {
	it, _ := dnd5e.Item(id)
	return it
}

func fighter(hp int) *entities.Combatant {
	return &entities.Combatant{
		ID:   "fighter",
		Name: "Brom",
		Type: entities.EntityPlayer,
		Equipment: map[entities.EquipmentSlot]*entities.Item{
			entities.SlotMainHand: item(dnd5e.ItemLongsword),
			entities.SlotBody:     item(dnd5e.ItemChainMail),
			entities.SlotOffHand:  item(dnd5e.ItemShield),
		},
		Stats: entities.CombatStats{
			Level:          1,
			Class:          dnd5e.ClassFighter,
			HP:             hp,
			MaxHP:          12,
			Speed:          30,
			BaseAttributes: entities.Attributes{STR: 16, DEX: 12, CON: 14, INT: 10, WIS: 10, CHA: 10},
		},
	}
}

func wizard(slots int) *entities.Combatant {
	return &entities.Combatant{
		ID:   "wizard",
		Name: "Zan",
		Type: entities.EntityPlayer,
		Equipment: map[entities.EquipmentSlot]*entities.Item{
			entities.SlotMainHand: item(dnd5e.ItemQuarterstaff),
		},
		Stats: entities.CombatStats{
			Level:          1,
			Class:          dnd5e.ClassWizard,
			HP:             8,
			MaxHP:          8,
			Speed:          30,
			BaseAttributes: entities.Attributes{STR: 8, DEX: 12, CON: 12, INT: 16, WIS: 13, CHA: 10},
			SpellSlots:     entities.SpellSlots{Current: slots, Max: 2},
		},
	}
}

type BattleTestSuite struct {
	suite.Suite
	ctx     context.Context
	roller  *testutils.ScriptedRoller
	source  *testutils.ScriptedSource
	service battle.Service
}

func TestBattleSuite(t *testing.T) {
	suite.Run(t, new(BattleTestSuite))
}

func (s *BattleTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = testutils.NewScriptedRoller()
	s.source = testutils.NewScriptedSource()

	bus := events.NewBus()
	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: bus, DiceRoller: s.roller})
	s.Require().NoError(err)
	book, err := spellbook.New(&spellbook.Config{})
	s.Require().NoError(err)

	s.service, err = battle.NewOrchestrator(&battle.Config{
		Engine:      eng,
		Spellbook:   book,
		Random:      s.source,
		IDGenerator: idgen.NewSequential("test"),
		EventBus:    bus,
	})
	s.Require().NoError(err)
}

// start opens a level 1 encounter against goblins on an open arena. The
// source draws are enemy level offset, enemy count and gold.
func (s *BattleTestSuite) start(party []*entities.Combatant, goblins int) *battle.Encounter {
	countDraw := 0.0
	if goblins == 2 {
		countDraw = 0.9
	}
	s.source.Push(0.5, countDraw, 0.0)

	out, err := s.service.Start(s.ctx, &battle.StartInput{
		Party:      party,
		Terrain:    entities.TerrainGrass,
		Dimension:  entities.DimensionNormal,
		Difficulty: entities.DifficultyNormal,
		Grid:       worldgen.FlatArena(),
	})
	s.Require().NoError(err)
	s.Require().True(out.Accepted)
	return out.Encounter
}

func (s *BattleTestSuite) click(id string, p entities.GridPos) *battle.ActionOutput {
	out, err := s.service.InteractTile(s.ctx, &battle.InteractTileInput{EncounterID: id, Position: p})
	s.Require().NoError(err)
	s.Require().True(out.Accepted, "first click selects")
	s.Require().False(out.Confirmed)

	out, err = s.service.InteractTile(s.ctx, &battle.InteractTileInput{EncounterID: id, Position: p})
	s.Require().NoError(err)
	return out
}

func (s *BattleTestSuite) selectAction(id string, a entities.ActionType) *battle.ActionOutput {
	out, err := s.service.SelectAction(s.ctx, &battle.SelectActionInput{EncounterID: id, Action: a})
	s.Require().NoError(err)
	return out
}

func (s *BattleTestSuite) advance(id string, ticks int64) *battle.ActionOutput {
	out, err := s.service.Advance(s.ctx, &battle.AdvanceInput{EncounterID: id, Ticks: ticks})
	s.Require().NoError(err)
	return out
}

func logMessages(ev entities.Events) []string {
	var out []string
	for _, l := range ev.Log {
		out = append(out, l.Message)
	}
	return out
}

func (s *BattleTestSuite) TestStartSpawnsGoblins() {
	s.roller.Push(15, 5)
	enc := s.start([]*entities.Combatant{fighter(12)}, 1)

	s.Require().Len(enc.Entities, 2)
	hero := enc.Entity("fighter")
	s.Assert().Equal(worldgen.PlayerSpawns[0], hero.Position)
	s.Assert().Equal(18, hero.Stats.AC, "chain mail, no dex, shield")
	s.Assert().Equal(16, hero.Stats.Attributes.STR)

	goblin := enc.Living(entities.EntityEnemy)[0]
	s.Assert().Equal("Goblin Raider 1", goblin.Name)
	s.Assert().Equal(9, goblin.Stats.HP)
	s.Assert().Equal(13, goblin.Stats.AC)
	s.Assert().Equal(2, goblin.Stats.InitiativeBonus)
	s.Assert().Equal(worldgen.EnemySpawns[0], goblin.Position)

	s.Assert().Equal(1, enc.EnemyLevel)
	s.Assert().False(enc.RunAvailable)
	s.Assert().Equal(100, enc.Rewards.XP)
	s.Assert().Equal(15, enc.Rewards.Gold)
	s.Assert().Equal([]string{"fighter", goblin.ID}, enc.TurnOrder)
	s.Assert().Equal(entities.ActionMove, enc.SelectedAction)
}

func (s *BattleTestSuite) TestStartRequiresLivingParty() {
	_, err := s.service.Start(s.ctx, &battle.StartInput{Party: []*entities.Combatant{fighter(0)}})
	s.Assert().True(errors.IsFailedPrecondition(err))

	_, err = s.service.Start(s.ctx, &battle.StartInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *BattleTestSuite) TestFighterKillsGoblin() {
	s.roller.Push(15, 5)
	enc := s.start([]*entities.Combatant{fighter(12)}, 1)
	goblin := enc.Living(entities.EntityEnemy)[0]

	out := s.click(enc.ID, entities.GridPos{X: 4, Z: 3})
	s.Require().True(out.Confirmed)
	s.Assert().True(out.Encounter.HasMoved)
	s.Assert().Equal(entities.GridPos{X: 4, Z: 3}, out.Encounter.Entity("fighter").Position)

	s.Require().True(s.selectAction(enc.ID, entities.ActionAttack).Accepted)

	// 18 + 2 proficiency + 3 strength against AC 13, then 6 on the d8
	s.roller.Push(18, 6)
	out = s.click(enc.ID, goblin.Position)
	s.Require().True(out.Confirmed)
	s.Assert().Contains(logMessages(out.Events), "Brom hits for 9 damage! (18+5 vs AC 13)")
	s.Assert().Contains(logMessages(out.Events), "Goblin Raider 1 defeated!")
	s.Assert().Equal(0, out.Encounter.Entity(goblin.ID).Stats.HP)
	s.Assert().Equal(entities.OutcomeVictory, out.Encounter.Pending)
	s.Assert().Equal(entities.OutcomeNone, out.Encounter.Outcome)

	// nothing else may happen while the outcome settles
	end, err := s.service.EndTurn(s.ctx, &battle.EncounterInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Assert().False(end.Accepted)

	out = s.advance(enc.ID, battle.DefaultTiming.SettleDelay-1)
	s.Assert().Equal(entities.OutcomeNone, out.Encounter.Outcome)
	out = s.advance(enc.ID, 1)
	s.Assert().Equal(entities.OutcomeVictory, out.Encounter.Outcome)
}

func (s *BattleTestSuite) TestNaturalOneAlwaysMisses() {
	s.roller.Push(15, 5)
	enc := s.start([]*entities.Combatant{fighter(12)}, 1)
	goblin := enc.Living(entities.EntityEnemy)[0]
	s.click(enc.ID, entities.GridPos{X: 4, Z: 3})
	s.selectAction(enc.ID, entities.ActionAttack)

	s.roller.Push(1)
	out := s.click(enc.ID, goblin.Position)
	s.Require().True(out.Confirmed)
	s.Assert().Equal(9, out.Encounter.Entity(goblin.ID).Stats.HP)
	s.Require().Len(out.Events.Popups, 1)
	s.Assert().Equal("FUMBLE", out.Events.Popups[0].Text)
	s.Assert().True(out.Encounter.HasActed)

	// one action per turn
	s.Assert().False(s.selectAction(enc.ID, entities.ActionAttack).Accepted)
}

func (s *BattleTestSuite) TestNaturalTwentyDoublesDice() {
	s.roller.Push(15, 5)
	enc := s.start([]*entities.Combatant{fighter(12)}, 1)
	goblin := enc.Living(entities.EntityEnemy)[0]
	s.click(enc.ID, entities.GridPos{X: 4, Z: 3})
	s.selectAction(enc.ID, entities.ActionAttack)

	s.roller.Push(20, 1, 1)
	out := s.click(enc.ID, goblin.Position)
	s.Require().True(out.Confirmed)
	s.Assert().Contains(logMessages(out.Events), "Brom scores a CRITICAL HIT!")
	s.Assert().Equal(4, out.Encounter.Entity(goblin.ID).Stats.HP, "two d8 of 1 plus 3")
	s.Assert().True(out.Events.Popups[0].Crit)
}

func (s *BattleTestSuite) TestMinimumDamage() {
	weakling := fighter(12)
	weakling.Stats.BaseAttributes.STR = 4
	s.roller.Push(15, 5)
	enc := s.start([]*entities.Combatant{weakling}, 1)
	goblin := enc.Living(entities.EntityEnemy)[0]
	s.click(enc.ID, entities.GridPos{X: 4, Z: 3})
	s.selectAction(enc.ID, entities.ActionAttack)

	s.roller.Push(20, 1, 1)
	out := s.click(enc.ID, goblin.Position)
	s.Require().True(out.Confirmed)
	s.Assert().Equal(8, out.Encounter.Entity(goblin.ID).Stats.HP)
}

func (s *BattleTestSuite) TestIllegalMoves() {
	s.roller.Push(15, 5)
	enc := s.start([]*entities.Combatant{fighter(12)}, 1)
	goblin := enc.Living(entities.EntityEnemy)[0]

	out := s.click(enc.ID, entities.GridPos{X: 3, Z: 0})
	s.Assert().False(out.Accepted, "seven tiles is out of range")

	out = s.click(enc.ID, goblin.Position)
	s.Assert().False(out.Accepted, "occupied")

	out, err := s.service.InteractTile(s.ctx, &battle.InteractTileInput{EncounterID: enc.ID, Position: entities.GridPos{X: 9, Z: 9}})
	s.Require().NoError(err)
	s.Assert().False(out.Accepted, "off the grid")

	s.Assert().False(out.Encounter.HasMoved)
	s.Assert().Equal(worldgen.PlayerSpawns[0], out.Encounter.Entity("fighter").Position)

	// attacking out of reach declines
	s.selectAction(enc.ID, entities.ActionAttack)
	out = s.click(enc.ID, goblin.Position)
	s.Assert().False(out.Accepted)
	s.Assert().False(out.Encounter.HasActed)
}

func (s *BattleTestSuite) TestTurnAdvanceSkipsTheDead() {
	// fighter 16, goblin one 12, goblin two 7
	s.roller.Push(15, 10, 5)
	enc := s.start([]*entities.Combatant{fighter(12)}, 2)
	s.Require().Len(enc.TurnOrder, 3)
	first := enc.Entity(enc.TurnOrder[1])
	second := enc.Entity(enc.TurnOrder[2])
	s.Require().Equal(worldgen.EnemySpawns[0], first.Position)

	s.click(enc.ID, entities.GridPos{X: 4, Z: 3})
	s.selectAction(enc.ID, entities.ActionAttack)
	s.roller.Push(18, 8)
	out := s.click(enc.ID, first.Position)
	s.Require().True(out.Confirmed)
	s.Assert().False(out.Encounter.Entity(first.ID).Alive())
	s.Assert().Equal(entities.OutcomeNone, out.Encounter.Pending, "one goblin still stands")

	end, err := s.service.EndTurn(s.ctx, &battle.EncounterInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Require().True(end.Accepted)
	s.Assert().Equal(second.ID, end.Encounter.CurrentActor().ID)

	// the surviving goblin stands next to the fighter and swings
	s.roller.Push(1)
	out = s.advance(enc.ID, battle.DefaultTiming.AIDelay)
	s.Assert().Contains(logMessages(out.Events), "Goblin Raider 2 misses Brom.")
	s.Assert().Equal("DODGE", out.Events.Popups[0].Text)

	out = s.advance(enc.ID, battle.DefaultTiming.AIEndDelay)
	s.Assert().Equal("fighter", out.Encounter.CurrentActor().ID)
	s.Assert().Equal(2, out.Encounter.Round)
	s.Assert().Contains(logMessages(out.Events), "Brom's turn.")
	s.Assert().False(out.Encounter.HasMoved)
	s.Assert().False(out.Encounter.HasActed)
}

func (s *BattleTestSuite) TestEnemyWinsFirstInitiative() {
	// fighter 2, goblin 22
	s.roller.Push(1, 20)
	enc := s.start([]*entities.Combatant{fighter(1)}, 1)
	goblin := enc.Living(entities.EntityEnemy)[0]
	s.Require().Equal(goblin.ID, enc.CurrentActor().ID)

	out, err := s.service.EndTurn(s.ctx, &battle.EncounterInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Assert().False(out.Accepted, "not the player's turn")

	// the goblin closes in one step
	out = s.advance(enc.ID, battle.DefaultTiming.AIDelay)
	moved := out.Encounter.Entity(goblin.ID).Position
	s.Assert().Equal(1, moved.Chebyshev(goblin.Position))
	s.Assert().Less(moved.Chebyshev(worldgen.PlayerSpawns[0]), goblin.Position.Chebyshev(worldgen.PlayerSpawns[0]))

	out = s.advance(enc.ID, battle.DefaultTiming.AIEndDelay)
	s.Require().Equal("fighter", out.Encounter.CurrentActor().ID)

	// step next to it and pass
	beside := entities.GridPos{X: moved.X, Z: moved.Z + 1}
	s.Require().True(s.click(enc.ID, beside).Confirmed)
	s.Require().True(s.selectAction(enc.ID, entities.ActionWait).Accepted)

	s.roller.Push(20, 4)
	out = s.advance(enc.ID, battle.DefaultTiming.AIDelay)
	s.Assert().Contains(logMessages(out.Events), "Goblin Raider 1 hits Brom for 6 damage!")
	s.Assert().Equal(entities.OutcomeDefeat, out.Encounter.Pending)

	out = s.advance(enc.ID, battle.DefaultTiming.SettleDelay)
	s.Assert().Equal(entities.OutcomeDefeat, out.Encounter.Outcome)
	s.Assert().NotEqual(entities.OutcomeVictory, out.Encounter.Outcome)
}

func (s *BattleTestSuite) TestCantripDoesNotSpendSlots() {
	s.roller.Push(15, 1)
	enc := s.start([]*entities.Combatant{wizard(2)}, 1)
	goblin := enc.Living(entities.EntityEnemy)[0]

	out, err := s.service.SelectSpell(s.ctx, &battle.SelectSpellInput{EncounterID: enc.ID, SpellID: dnd5e.SpellFireBolt})
	s.Require().NoError(err)
	s.Require().True(out.Accepted)
	s.Assert().Equal(entities.ActionMagic, out.Encounter.SelectedAction)

	s.roller.Push(6)
	out = s.click(enc.ID, goblin.Position)
	s.Require().True(out.Confirmed)
	s.Assert().Contains(logMessages(out.Events), "Zan casts Fire Bolt!")
	s.Assert().Contains(logMessages(out.Events), "Dealt 9 damage.")
	s.Assert().Equal(2, out.Encounter.Entity("wizard").Stats.SpellSlots.Current)
	s.Assert().Equal(entities.OutcomeVictory, out.Encounter.Pending)
}

func (s *BattleTestSuite) TestLeveledSpellNeedsSlot() {
	s.roller.Push(15, 1)
	enc := s.start([]*entities.Combatant{wizard(0)}, 1)
	goblin := enc.Living(entities.EntityEnemy)[0]

	out, err := s.service.SelectSpell(s.ctx, &battle.SelectSpellInput{EncounterID: enc.ID, SpellID: dnd5e.SpellMagicMissile})
	s.Require().NoError(err)
	s.Require().True(out.Accepted)

	out = s.click(enc.ID, goblin.Position)
	s.Assert().False(out.Accepted)
	s.Assert().Contains(logMessages(out.Events), "Zan has no spell slots!")
	s.Assert().False(out.Encounter.HasActed, "the turn is not consumed")
	s.Assert().Equal(9, out.Encounter.Entity(goblin.ID).Stats.HP)
}

func (s *BattleTestSuite) TestUnknownSpellDeclined() {
	s.roller.Push(15, 1)
	enc := s.start([]*entities.Combatant{wizard(2)}, 1)

	out, err := s.service.SelectSpell(s.ctx, &battle.SelectSpellInput{EncounterID: enc.ID, SpellID: dnd5e.SpellCureWounds})
	s.Require().NoError(err)
	s.Assert().False(out.Accepted)

	out, err = s.service.SelectSpell(s.ctx, &battle.SelectSpellInput{EncounterID: enc.ID, SpellID: "wish"})
	s.Require().NoError(err)
	s.Assert().False(out.Accepted)
}

func (s *BattleTestSuite) TestRun() {
	s.roller.Push(15, 1)
	// +1 level offset makes the goblins stronger and running possible
	s.source.Push(0.9, 0.0, 0.0)
	out, err := s.service.Start(s.ctx, &battle.StartInput{
		Party:     []*entities.Combatant{fighter(12)},
		Dimension: entities.DimensionNormal,
		Grid:      worldgen.FlatArena(),
	})
	s.Require().NoError(err)
	enc := out.Encounter
	s.Require().True(enc.RunAvailable)
	s.Require().Equal(2, enc.EnemyLevel)

	s.source.Push(0.1)
	out = s.selectAction(enc.ID, entities.ActionRun)
	s.Require().True(out.Accepted)
	s.Assert().Contains(logMessages(out.Events), "Failed escape!")
	s.Assert().Equal(entities.EntityEnemy, out.Encounter.CurrentActor().Type)

	// the goblin is out of reach, steps closer and hands the turn back
	out = s.advance(enc.ID, battle.DefaultTiming.AIDelay+battle.DefaultTiming.AIEndDelay)
	s.Require().Equal("fighter", out.Encounter.CurrentActor().ID)

	s.source.Push(0.5)
	out, err = s.service.AttemptRun(s.ctx, &battle.EncounterInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Require().True(out.Accepted)
	s.Assert().Equal(entities.OutcomeFled, out.Encounter.Outcome)
}

func (s *BattleTestSuite) TestRunUnavailableAgainstEqualLevel() {
	s.roller.Push(15, 1)
	enc := s.start([]*entities.Combatant{fighter(12)}, 1)

	out, err := s.service.AttemptRun(s.ctx, &battle.EncounterInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Assert().False(out.Accepted)
}

func (s *BattleTestSuite) TestUseItem() {
	s.roller.Push(15, 1)
	enc := s.start([]*entities.Combatant{fighter(5)}, 1)

	s.roller.Push(3, 3)
	out, err := s.service.UseItem(s.ctx, &battle.UseItemInput{EncounterID: enc.ID, Item: item(dnd5e.ItemPotionHealing)})
	s.Require().NoError(err)
	s.Require().True(out.Accepted)
	s.Assert().Equal(12, out.Encounter.Entity("fighter").Stats.HP)
	s.Assert().True(out.Encounter.HasActed)

	out, err = s.service.UseItem(s.ctx, &battle.UseItemInput{EncounterID: enc.ID, Item: item(dnd5e.ItemPotionHealing)})
	s.Require().NoError(err)
	s.Assert().False(out.Accepted)

	out, err = s.service.UseItem(s.ctx, &battle.UseItemInput{EncounterID: enc.ID, Item: item(dnd5e.ItemLongsword)})
	s.Require().NoError(err)
	s.Assert().False(out.Accepted)
}

func (s *BattleTestSuite) TestPredictAttack() {
	s.roller.Push(15, 1)
	enc := s.start([]*entities.Combatant{fighter(12)}, 1)
	goblin := enc.Living(entities.EntityEnemy)[0]

	out, err := s.service.PredictAttack(s.ctx, &battle.PredictAttackInput{EncounterID: enc.ID, TargetID: goblin.ID})
	s.Require().NoError(err)
	s.Assert().Equal(5, out.AttackBonus)
	s.Assert().InDelta(0.65, out.HitChance, 1e-9)
	s.Assert().Equal(4, out.MinDamage)
	s.Assert().Equal(11, out.MaxDamage)

	_, err = s.service.PredictAttack(s.ctx, &battle.PredictAttackInput{EncounterID: enc.ID, TargetID: "nobody"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *BattleTestSuite) TestUnknownEncounter() {
	_, err := s.service.EndTurn(s.ctx, &battle.EncounterInput{EncounterID: "missing"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.service.GetEncounter(s.ctx, &battle.EncounterInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *BattleTestSuite) TestCloseRemovesEncounter() {
	s.roller.Push(15, 1)
	enc := s.start([]*entities.Combatant{fighter(12)}, 1)

	s.Require().NoError(s.service.Close(s.ctx, &battle.EncounterInput{EncounterID: enc.ID}))
	_, err := s.service.GetEncounter(s.ctx, &battle.EncounterInput{EncounterID: enc.ID})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *BattleTestSuite) TestSnapshotsAreCopies() {
	s.roller.Push(15, 1)
	enc := s.start([]*entities.Combatant{fighter(12)}, 1)
	enc.Entity("fighter").Stats.HP = 0

	got, err := s.service.GetEncounter(s.ctx, &battle.EncounterInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Assert().Equal(12, got.Encounter.Entity("fighter").Stats.HP)
}

func (s *BattleTestSuite) TestShadowSpawn() {
	s.roller.Push(15, 1, 1)
	// level offset, gold, loot draw then loot pick
	s.source.Push(0.5, 0.0, 0.99, 0.0)
	out, err := s.service.Start(s.ctx, &battle.StartInput{
		Party:     []*entities.Combatant{fighter(12)},
		Dimension: entities.DimensionShadow,
		Grid:      worldgen.FlatArena(),
	})
	s.Require().NoError(err)

	enemies := out.Encounter.Living(entities.EntityEnemy)
	s.Require().Len(enemies, 2)
	s.Assert().Equal("Shadowling 1", enemies[0].Name)
	s.Assert().Equal(22, enemies[0].Stats.HP)
	s.Assert().Equal(14, enemies[0].Stats.AC)
	s.Assert().Equal(3, enemies[0].Stats.InitiativeBonus)
	s.Assert().Equal(200, out.Encounter.Rewards.XP)
	s.Require().Len(out.Encounter.Rewards.Items, 1)
	s.Assert().Equal(dnd5e.ShadowLoot[0], out.Encounter.Rewards.Items[0].ID)
}
